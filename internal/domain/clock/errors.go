package clock

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrMalformedTime = errors.New("malformed clock value")
)
