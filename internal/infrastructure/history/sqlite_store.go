package history

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/chrisvisintin/pyc-go/internal/domain"
	"github.com/chrisvisintin/pyc-go/internal/pkg/filesystem"
	"github.com/chrisvisintin/pyc-go/internal/ports"
)

// SQLiteStore persists history in a SQLite database, queryable beyond the
// line editor's in-memory ring buffer.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) the
// $HOME/.config/pyc/history/history.db database. If the database cannot
// be opened or initialized, the store falls back to a jsonl FileStore at
// the same directory.
func NewSQLiteStore() *SQLiteStore {
	path := filepath.Join(filesystem.UserHomeDir(), ".config", "pyc", "history", "history.db")
	_ = os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		return &SQLiteStore{path: path}
	}
	return store
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS commands (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT,
		command TEXT,
		working_dir TEXT,
		exit_code INTEGER,
		execution_time_ms INTEGER
	);`)
	return err
}

func (s *SQLiteStore) fallback() *FileStore {
	return &FileStore{path: strings.TrimSuffix(s.path, filepath.Ext(s.path)) + ".jsonl"}
}

// Append implements ports.HistoryStore.
func (s *SQLiteStore) Append(ctx context.Context, record domain.HistoryRecord) error {
	if s.db == nil {
		return s.fallback().Append(ctx, record)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO commands
		(timestamp, command, working_dir, exit_code, execution_time_ms)
		VALUES (?, ?, ?, ?, ?)`,
		record.Timestamp.Format(time.RFC3339),
		record.Command,
		record.WorkingDir,
		record.ExitCode,
		record.ExecutionTimeMS,
	)
	return err
}

// Recent implements ports.HistoryStore.
func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]domain.HistoryRecord, error) {
	return s.query(ctx, "", limit)
}

// Search implements ports.HistoryStore.
func (s *SQLiteStore) Search(ctx context.Context, query string, limit int) ([]domain.HistoryRecord, error) {
	return s.query(ctx, query, limit)
}

func (s *SQLiteStore) query(ctx context.Context, search string, limit int) ([]domain.HistoryRecord, error) {
	if s.db == nil {
		if search == "" {
			return s.fallback().Recent(ctx, limit)
		}
		return s.fallback().Search(ctx, search, limit)
	}
	builder := strings.Builder{}
	builder.WriteString("SELECT timestamp, command, working_dir, exit_code, execution_time_ms FROM commands")
	var args []interface{}
	if search != "" {
		builder.WriteString(" WHERE command LIKE ?")
		args = append(args, "%"+search+"%")
	}
	builder.WriteString(" ORDER BY datetime(timestamp) DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var records []domain.HistoryRecord
	for rows.Next() {
		var rec domain.HistoryRecord
		var ts string
		if err := rows.Scan(&ts, &rec.Command, &rec.WorkingDir, &rec.ExitCode, &rec.ExecutionTimeMS); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			rec.Timestamp = t
		}
		records = append(records, rec)
	}
	return records, nil
}

// Clear deletes all history entries.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return s.fallback().Clear()
	}
	_, err := s.db.Exec("DELETE FROM commands")
	return err
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

var _ ports.HistoryStore = (*SQLiteStore)(nil)
