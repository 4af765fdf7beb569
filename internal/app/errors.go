package service

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrAlreadyStarted = errors.New("service already started")
)
