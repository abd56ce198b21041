// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). Following the Ports and Adapters (Hexagonal) pattern,
// these interfaces allow the application to remain independent of specific
// implementations like databases or CLI frameworks.
package ports

import (
	"context"

	"github.com/chrisvisintin/pyc-go/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from $HOME/.config/pyc/pyc.yml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// HistoryStore persists and queries submitted command history.
type HistoryStore interface {
	Append(context.Context, domain.HistoryRecord) error
	Recent(ctx context.Context, limit int) ([]domain.HistoryRecord, error)
	Search(ctx context.Context, query string, limit int) ([]domain.HistoryRecord, error)
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
