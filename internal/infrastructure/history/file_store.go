package history

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/chrisvisintin/pyc-go/internal/domain"
	"github.com/chrisvisintin/pyc-go/internal/pkg/filesystem"
	"github.com/chrisvisintin/pyc-go/internal/ports"
)

// FileStore appends history records to a jsonl file. It is the fallback
// used when modernc.org/sqlite cannot open its database.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a new history store under
// $HOME/.config/pyc/history.jsonl.
func NewFileStore() *FileStore {
	return &FileStore{
		path: filepath.Join(filesystem.UserHomeDir(), ".config", "pyc", "history.jsonl"),
	}
}

// Append implements ports.HistoryStore.
func (f *FileStore) Append(_ context.Context, record domain.HistoryRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(f.path), domain.DirectoryPermissions); err != nil {
		return err
	}
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = file.Write(data)
	return err
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// Clear removes the history file.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Recent implements ports.HistoryStore.
func (f *FileStore) Recent(_ context.Context, limit int) ([]domain.HistoryRecord, error) {
	records, err := f.allRecords()
	if err != nil {
		return nil, err
	}
	return tail(records, limit), nil
}

// Search implements ports.HistoryStore.
func (f *FileStore) Search(_ context.Context, query string, limit int) ([]domain.HistoryRecord, error) {
	all, err := f.allRecords()
	if err != nil {
		return nil, err
	}
	var matched []domain.HistoryRecord
	for _, rec := range all {
		if strings.Contains(rec.Command, query) {
			matched = append(matched, rec)
		}
	}
	return tail(matched, limit), nil
}

func (f *FileStore) allRecords() ([]domain.HistoryRecord, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	var records []domain.HistoryRecord
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		var rec domain.HistoryRecord
		if err := json.Unmarshal(line, &rec); err == nil {
			records = append(records, rec)
		}
	}
	return records, nil
}

func tail(records []domain.HistoryRecord, limit int) []domain.HistoryRecord {
	if limit <= 0 || limit >= len(records) {
		return records
	}
	return records[len(records)-limit:]
}

var _ ports.HistoryStore = (*FileStore)(nil)
