// Package runtime drives the three ways pyc can execute: interactive
// (raw-mode prompt loop), oneshot (-c COMMAND), and file (a script path).
// It wires the translator, IOProcessor, shellbridge, prompt renderer, and
// line editor together, exactly as the original process's main loop did.
package runtime

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chrisvisintin/pyc-go/internal/app"
	"github.com/chrisvisintin/pyc-go/internal/domain"
	"github.com/chrisvisintin/pyc-go/internal/history"
	"github.com/chrisvisintin/pyc-go/internal/ioprocessor"
	"github.com/chrisvisintin/pyc-go/internal/lineditor"
	"github.com/chrisvisintin/pyc-go/internal/prompt"
	"github.com/chrisvisintin/pyc-go/internal/shellbridge"
	"github.com/chrisvisintin/pyc-go/internal/translator"
)

// Options carries the resolved CLI flags relevant to picking and
// configuring a run mode.
type Options struct {
	// Command, when non-empty, selects oneshot mode (-c).
	Command string
	// ScriptPath, when non-empty, selects file mode.
	ScriptPath string
	// LanguageOverride overrides the configured language (-l).
	LanguageOverride string
	// ShellOverride overrides the configured shell binary (-s).
	ShellOverride string
}

// Exit codes per the CLI contract: 0 on a clean interactive exit or a
// successful oneshot/file command, the child's own status otherwise, 1 on
// configuration/startup failure, 255 on an internal bridge failure.
const (
	ExitOK            = 0
	ExitConfigError   = 1
	ExitBridgeFailure = 255
)

// runningPollInterval is how often the drain loop checks the FIFO and,
// in interactive mode, the terminal for Ctrl-C while SubprocessRunning.
const runningPollInterval = 10 * time.Millisecond

// Run selects and executes the mode implied by opts and returns the
// process exit code.
func Run(ctx context.Context, container *app.Container, opts Options) (int, error) {
	cfg, err := container.ConfigProvider.Load(ctx)
	if err != nil {
		return ExitConfigError, fmt.Errorf("runtime: load config: %w", err)
	}

	lang := translator.Russian
	langTag := opts.LanguageOverride
	if langTag == "" {
		langTag = cfg.Language
	}
	if langTag != "" {
		lang, err = translator.ParseLanguage(langTag)
		if err != nil {
			return ExitConfigError, fmt.Errorf("runtime: %w", err)
		}
	}

	shellExec := opts.ShellOverride
	if shellExec == "" {
		shellExec = cfg.GetExecShell()
	}
	shellArgs := cfg.GetExecArgs()

	proc := ioprocessor.New(translator.New(lang))

	switch {
	case opts.ScriptPath != "":
		return runFile(ctx, container, cfg, proc, shellExec, shellArgs, opts.ScriptPath)
	case opts.Command != "":
		return runOneshot(ctx, container, cfg, proc, shellExec, shellArgs, opts.Command)
	default:
		return runInteractive(ctx, container, cfg, lang, proc, shellExec, shellArgs)
	}
}

// runOneshot starts the bridge, submits one command, drains until the
// sentinel reports Idle, writes translated output, then closes the
// bridge and returns the recorded exit status. Per spec, a `cd` inside
// command has no observable effect afterward: the bridge is about to be
// torn down, and there is no later command in this process to observe it.
func runOneshot(ctx context.Context, container *app.Container, cfg domain.Config, proc *ioprocessor.Processor, shellExec string, shellArgs []string, command string) (int, error) {
	bridge, err := shellbridge.Start(shellExec, shellArgs, container.Logger)
	if err != nil {
		printErr(cfg, proc, fmt.Sprintf("could not start shell: %v", err))
		return ExitBridgeFailure, nil
	}
	defer bridge.Teardown()

	command = strings.TrimRight(command, "\n;")
	translated := proc.ExpressionToLatin(command)

	if err := bridge.Submit(translated); err != nil {
		printErr(cfg, proc, fmt.Sprintf("could not submit command: %v", err))
		return ExitBridgeFailure, nil
	}

	drainUntilIdleOrTerminated(ctx, bridge, nil, cfg, proc)
	recordHistory(ctx, container, command, bridge)

	return bridge.ExitStatus(), nil
}

// runFile reads command lines from path, skipping blanks and
// "#"-prefixed comments, and submits them one at a time to a single
// bridge session (so a `cd` on one line is observed by the next),
// aborting on the first nonzero exit status.
func runFile(ctx context.Context, container *app.Container, cfg domain.Config, proc *ioprocessor.Processor, shellExec string, shellArgs []string, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		printErr(cfg, proc, fmt.Sprintf("%s: no such file or directory", path))
		return ExitBridgeFailure, nil
	}

	bridge, err := shellbridge.Start(shellExec, shellArgs, container.Logger)
	if err != nil {
		printErr(cfg, proc, fmt.Sprintf("could not start shell: %v", err))
		return ExitBridgeFailure, nil
	}
	defer bridge.Teardown()

	exitCode := ExitOK
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		translated := proc.ExpressionToLatin(line)
		if err := bridge.Submit(translated); err != nil {
			printErr(cfg, proc, fmt.Sprintf("could not submit command: %v", err))
			return ExitBridgeFailure, nil
		}

		drainUntilIdleOrTerminated(ctx, bridge, nil, cfg, proc)
		recordHistory(ctx, container, line, bridge)

		exitCode = bridge.ExitStatus()
		if exitCode != 0 || bridge.State() == shellbridge.Terminated {
			break
		}
	}

	return exitCode, nil
}

// runInteractive drives the render-prompt / read-line / submit / drain
// loop until the user requests termination or the shell exits.
func runInteractive(ctx context.Context, container *app.Container, cfg domain.Config, lang translator.Language, proc *ioprocessor.Processor, shellExec string, shellArgs []string) (int, error) {
	bridge, err := shellbridge.Start(shellExec, shellArgs, container.Logger)
	if err != nil {
		printErr(cfg, proc, fmt.Sprintf("could not start shell: %v", err))
		return ExitBridgeFailure, nil
	}
	defer bridge.Teardown()

	hist := history.NewBuffer(cfg.GetHistorySize())
	histPath := history.DefaultPath()
	if err := hist.LoadFile(histPath); err != nil {
		container.Logger.Warn("could not load history", map[string]interface{}{"error": err.Error()})
	}
	defer func() {
		if err := hist.SaveFile(histPath); err != nil {
			container.Logger.Warn("could not save history", map[string]interface{}{"error": err.Error()})
		}
	}()

	renderer := prompt.New(cfg, lang, proc)

	editor, err := lineditor.Open(os.Stdin, os.Stdout, proc, hist)
	if err != nil {
		printErr(cfg, proc, fmt.Sprintf("could not acquire terminal: %v", err))
		return ExitConfigError, nil
	}
	defer editor.Close()

	for bridge.State() != shellbridge.Terminated {
		promptLine := renderer.Render(prompt.State{
			WorkDir:    bridge.WorkDir(),
			ExitStatus: bridge.ExitStatus(),
			ExecTime:   bridge.ExecTime(),
		})

		result, err := editor.ReadLine(promptLine + " ")
		if err != nil {
			break
		}
		if result.EOF {
			break
		}
		if result.Interrupted {
			// Ctrl-C at an empty prompt just clears the line; Ctrl-C while
			// a command is running is caught inside drainUntilIdleOrTerminated,
			// since ReadLine only returns once the bridge is Idle again.
			continue
		}
		if strings.TrimSpace(result.Line) == "" {
			continue
		}

		hist.Push(result.Line)
		translated := proc.ExpressionToLatin(result.Line)
		resolved := resolveAlias(cfg, translated)

		if err := bridge.Submit(resolved); err != nil {
			printErr(cfg, proc, fmt.Sprintf("could not submit command: %v", err))
			continue
		}

		drainUntilIdleOrTerminated(ctx, bridge, editor, cfg, proc)
		recordHistory(ctx, container, result.Line, bridge)
	}

	return ExitOK, nil
}

// resolveAlias replaces the first whitespace-delimited token of line with
// its configured alias, leaving the rest of the line untouched.
func resolveAlias(cfg domain.Config, line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return line
	}
	resolved := cfg.ResolveAlias(fields[0])
	if resolved == fields[0] {
		return line
	}
	return resolved + strings.TrimPrefix(line, fields[0])
}

// drainUntilIdleOrTerminated pumps Drain until the sentinel frame returns
// the bridge to Idle, or the process dies mid-command. When editor is
// non-nil (interactive mode) it also polls the terminal each tick, so a
// Ctrl-C typed while the command is SubprocessRunning reaches the child as
// SIGINT instead of being queued for the next prompt, per the single
// cooperative loop the rest of the runtime follows: editor and bridge are
// serviced from the same thread, one non-blocking poll each per tick.
func drainUntilIdleOrTerminated(ctx context.Context, bridge *shellbridge.Bridge, editor *lineditor.Editor, cfg domain.Config, proc *ioprocessor.Processor) {
	for {
		stdout, stderr, wentIdle, err := bridge.Drain()
		printChunks(cfg, proc, stdout, stderr)
		if err != nil || wentIdle {
			return
		}
		if bridge.State() == shellbridge.Terminated {
			return
		}

		select {
		case <-ctx.Done():
			return
		default:
		}

		if editor == nil {
			time.Sleep(runningPollInterval)
			continue
		}
		if ev, ok, err := editor.PollKey(runningPollInterval); err == nil && ok {
			forwardRunningInput(bridge, ev)
		}
	}
}

// forwardRunningInput relays a keypress captured while the child is
// SubprocessRunning: Ctrl-C becomes SIGINT on the child, everything else
// is written straight to its stdin so the child can answer its own
// prompts (a `read -p`, a password prompt) rather than having the input
// silently dropped until the next command.
func forwardRunningInput(bridge *shellbridge.Bridge, ev lineditor.KeyEvent) {
	switch {
	case ev.CtrlC:
		bridge.Signal(os.Interrupt)
	case ev.Enter:
		bridge.Write("\n")
	case ev.Backspace:
		bridge.Write("\b")
	case ev.Rune != 0:
		bridge.Write(string(ev.Rune))
	}
}

func printChunks(cfg domain.Config, proc *ioprocessor.Processor, stdout, stderr string) {
	if stdout != "" {
		printOut(cfg, proc, stdout)
	}
	if stderr != "" {
		printErr(cfg, proc, stderr)
	}
}

func printOut(cfg domain.Config, proc *ioprocessor.Processor, text string) {
	if cfg.ShouldTranslateOutput() {
		text = proc.TextToSource(text)
	}
	fmt.Fprint(os.Stdout, text)
}

func printErr(cfg domain.Config, proc *ioprocessor.Processor, text string) {
	if cfg.ShouldTranslateOutput() {
		text = proc.TextToSource(text)
	}
	fmt.Fprintln(os.Stderr, text)
}

func recordHistory(ctx context.Context, container *app.Container, command string, bridge *shellbridge.Bridge) {
	if container.HistoryStore == nil {
		return
	}
	record := domain.HistoryRecord{
		Timestamp:       time.Now(),
		Command:         command,
		WorkingDir:      bridge.WorkDir(),
		ExitCode:        bridge.ExitStatus(),
		ExecutionTimeMS: bridge.ExecTime().Milliseconds(),
	}
	if err := container.HistoryStore.Append(ctx, record); err != nil {
		container.Logger.Warn("could not record history", map[string]interface{}{"error": err.Error()})
	}
}
