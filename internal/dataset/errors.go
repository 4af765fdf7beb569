package dataset

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
	ErrMissingHeader     = errors.New("dataset missing header row")
)
