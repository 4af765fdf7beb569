package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrNoSessions = errors.New("no sessions on date")
)
