package profile

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidProfile   = errors.New("invalid profile")
	ErrMissingInterests = errors.New("profile document missing interests")
	ErrUnknownProfile   = errors.New("unknown profile")
)
