package app

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrNotStarted = errors.New("service not started")
	ErrNoIndex    = errors.New("catalog index not built")
)
