package config

import (
	"fmt"
	"os/exec"

	"github.com/chrisvisintin/pyc-go/internal/domain"
	"github.com/chrisvisintin/pyc-go/internal/translator"
)

func resolveExecPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Validate ensures a loaded configuration is structurally consistent
// before it is handed to the runtime. It never mutates cfg.
func Validate(cfg domain.Config) error {
	if _, err := translator.ParseLanguage(cfg.Language); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if cfg.Shell.Exec != "" {
		if _, err := resolveExecPath(cfg.Shell.Exec); err != nil {
			return fmt.Errorf("config: shell.exec: %w", err)
		}
	}
	for _, a := range cfg.Alias {
		if a.Source == "" {
			return fmt.Errorf("config: alias entry missing source")
		}
	}
	if cfg.Prompt.HistorySize < 0 {
		return fmt.Errorf("config: prompt.history_size must be >= 0")
	}
	if cfg.Prompt.Duration.MinElapsedTimeMS < 0 {
		return fmt.Errorf("config: prompt.duration.min_elapsed_time must be >= 0")
	}
	if cfg.Prompt.Git.CommitRefLen < 0 {
		return fmt.Errorf("config: prompt.git.commit_ref_len must be >= 0")
	}
	return nil
}
