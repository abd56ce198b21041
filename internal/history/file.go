package history

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/chrisvisintin/pyc-go/internal/pkg/filesystem"
)

// ErrIO wraps failures reading or writing the history file; callers log
// and continue rather than treating it as fatal.
var ErrIO = errors.New("history: io error")

// DefaultPath returns $HOME/.config/pyc/pyc_history.
func DefaultPath() string {
	return filepath.Join(filesystem.UserHomeDir(), ".config", "pyc", "pyc_history")
}

// LoadFile reads path line by line into the buffer, oldest line first, so
// the most recently written line ends up most recent in the buffer.
// A missing file is not an error; Buffer is left empty.
func (b *Buffer) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Join(ErrIO, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return errors.Join(ErrIO, err)
	}

	b.Load(lines)
	return nil
}

// SaveFile writes the buffer to path, oldest entry first, replacing any
// existing file. It is called once, on clean shutdown.
func (b *Buffer) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Join(ErrIO, err)
	}

	dump := b.Dump()
	var buf strings.Builder
	for i := len(dump) - 1; i >= 0; i-- {
		buf.WriteString(dump[i])
		buf.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(buf.String()), 0o600); err != nil {
		return errors.Join(ErrIO, err)
	}
	return nil
}
