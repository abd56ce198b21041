package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chrisvisintin/pyc-go/internal/app"
	"github.com/chrisvisintin/pyc-go/internal/infrastructure/cli/commands"
	"github.com/chrisvisintin/pyc-go/internal/runtime"
	"github.com/chrisvisintin/pyc-go/internal/version"
)

// Options holds CLI-level configuration, populated from flags.
type Options struct {
	Command     string
	Script      string
	ConfigPath  string
	Language    string
	Shell       string
	Verbose     bool
	PrintVersion bool
}

// NewRootCmd wires the cobra root command. A bare `pyc` starts the
// interactive shell; `pyc -c CMD` runs one command and exits; `pyc SCRIPT`
// runs a script file line by line.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	root := &cobra.Command{
		Use:           "pyc [-c CMD | SCRIPT]",
		Short:         "pyc - transliterating shell wrapper",
		Long:          "pyc transliterates Cyrillic input into Latin before forwarding it to a child shell, and transliterates the shell's output back.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.PrintVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "pyc version %s\n", version.Version)
				return nil
			}
			if len(args) == 1 {
				opts.Script = args[0]
			}
			runPyc(cmd.Context(), opts)
			return nil
		},
	}

	root.Flags().StringVarP(&opts.Command, "c", "c", "", "run a single command and exit")
	root.Flags().StringVarP(&opts.ConfigPath, "C", "C", "", "path to configuration file")
	root.Flags().StringVarP(&opts.Language, "l", "l", "", "override configured language (ru, by, bg, uk, rs)")
	root.Flags().StringVarP(&opts.Shell, "s", "s", "", "override configured shell binary")
	root.Flags().BoolVarP(&opts.PrintVersion, "v", "v", false, "print version and exit")
	root.Flags().BoolVar(&opts.Verbose, "verbose", false, "enable verbose logging")

	container, err := app.BuildContainer(ctx, opts.ConfigPath, opts.Verbose)
	if err != nil {
		return nil, fmt.Errorf("build container: %w", err)
	}

	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewDoctorCommand(container))
	root.AddCommand(commands.NewHistoryCommand(container))
	root.AddCommand(commands.NewVersionCommand())

	return root, nil
}

// runPyc builds a fresh container scoped to the resolved flags (the root
// command's container above exists only to serve the subcommands) and
// drives the runtime to completion, exiting the process with its result.
func runPyc(ctx context.Context, opts Options) {
	container, err := app.BuildContainer(ctx, opts.ConfigPath, opts.Verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pyc: configuration error:", err)
		os.Exit(1)
	}

	exitCode, err := runtime.Run(ctx, container, runtime.Options{
		Command:          opts.Command,
		ScriptPath:       opts.Script,
		LanguageOverride: opts.Language,
		ShellOverride:    opts.Shell,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "pyc:", err)
	}
	os.Exit(exitCode)
}
