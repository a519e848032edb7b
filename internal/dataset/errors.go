package dataset

import "errors"

var (
	// ErrNoPages is returned when a pages directory holds no page images.
	ErrNoPages = errors.New("no page images found")

	// ErrDatasetNotFound is returned when the dataset file does not exist.
	ErrDatasetNotFound = errors.New("dataset not found")

	// ErrSchemaViolation is returned when the dataset document does not
	// have the expected structure.
	ErrSchemaViolation = errors.New("dataset does not match schema")
)
