package dataset

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrLoadDataset    = errors.New("load dataset failed")
	ErrSaveDataset    = errors.New("save dataset failed")
	ErrInvalidDataset = errors.New("invalid dataset")
)
