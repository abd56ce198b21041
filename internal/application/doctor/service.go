package doctor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/chrisvisintin/pyc-go/internal/domain"
	"github.com/chrisvisintin/pyc-go/internal/pkg/filesystem"
	"github.com/chrisvisintin/pyc-go/internal/ports"
)

// Service runs environment diagnostics: can the configuration load, is
// the configured shell binary present and executable, can the bridge
// create its FIFO temp directory, and is the history path writable.
type Service struct {
	ConfigProvider ports.ConfigProvider
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("language=%s", cfg.Language)))

	checks = append(checks, shellCheck(cfg.GetExecShell()))
	checks = append(checks, fifoDirCheck())
	checks = append(checks, historyPathCheck())

	return domain.HealthReport{Checks: checks}, nil
}

func shellCheck(shellExec string) domain.HealthCheck {
	path, err := exec.LookPath(shellExec)
	if err != nil {
		return fail("Shell binary", fmt.Sprintf("%s not found: %v", shellExec, err))
	}
	info, err := os.Stat(path)
	if err != nil {
		return fail("Shell binary", fmt.Sprintf("stat %s failed: %v", path, err))
	}
	if info.Mode()&0o111 == 0 {
		return fail("Shell binary", fmt.Sprintf("%s is not executable", path))
	}
	return ok("Shell binary", path)
}

func fifoDirCheck() domain.HealthCheck {
	dir, err := os.MkdirTemp("", "pyc-doctor-*")
	if err != nil {
		return fail("FIFO temp dir", err.Error())
	}
	defer os.RemoveAll(dir)
	return ok("FIFO temp dir", dir)
}

func historyPathCheck() domain.HealthCheck {
	dir := filepath.Join(filesystem.UserHomeDir(), ".config", "pyc")
	if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
		return fail("History path", err.Error())
	}
	probe := filepath.Join(dir, ".doctor-probe")
	if err := os.WriteFile(probe, []byte{}, domain.SecureFilePermissions); err != nil {
		return fail("History path", err.Error())
	}
	_ = os.Remove(probe)
	return ok("History path", dir)
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
