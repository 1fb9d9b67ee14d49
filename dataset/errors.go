package dataset

import "errors"

var (
	ErrDatasetNotFound  = errors.New("dataset not found")
	ErrInvalidDataset   = errors.New("invalid dataset")
	ErrMissingColumn    = errors.New("missing column")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrInvalidStation   = errors.New("invalid station data")
)
