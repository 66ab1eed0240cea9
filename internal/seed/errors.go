package seed

import "errors"

// Sentinel kinds for generator errors.
var (
	ErrInvalidGenConfig = errors.New("invalid generator config")
)
