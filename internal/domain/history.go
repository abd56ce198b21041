package domain

import "time"

// HistoryRecord captures one submitted command and its outcome.
type HistoryRecord struct {
	Timestamp       time.Time `json:"timestamp"`
	Command         string    `json:"command"`
	WorkingDir      string    `json:"working_dir"`
	ExitCode        int       `json:"exit_code"`
	ExecutionTimeMS int64     `json:"execution_time_ms"`
}
