// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"runtime"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataFile points at the conference dataset (CSV or JSON).
	DataFile string `koanf:"data_file"`

	// DefaultProfile names the preset used when a request omits one.
	DefaultProfile string `koanf:"default_profile"`

	// MinScore is the default inclusive relevance threshold.
	MinScore float64 `koanf:"min_score"`

	// HighPriorityThreshold is the default conflict-detection cutoff.
	HighPriorityThreshold float64 `koanf:"high_priority_threshold"`

	// WorkerCount sets the number of scoring workers.
	WorkerCount int `koanf:"worker_count"`

	// QueueSize bounds the scoring job queue.
	QueueSize int `koanf:"queue_size"`

	// MaxResults caps the sessions returned per schedule request.
	MaxResults int `koanf:"max_results"`
}

// New creates a Config with defaults. The thresholds mirror the original
// planner: minimum score 5 for schedules, 4 for conflict checking.
func New() *Config {
	return &Config{
		LogLevel:              "info",
		Addr:                  ":9080",
		DataFile:              "data/sessions.csv",
		DefaultProfile:        "battery",
		MinScore:              5,
		HighPriorityThreshold: 4,
		WorkerCount:           runtime.NumCPU(),
		QueueSize:             1024,
		MaxResults:            500,
	}
}
