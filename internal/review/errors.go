package review

import "errors"

// Sentinel errors for review operations.
var (
	// ErrInvalidDataset is returned when load input cannot form a session.
	ErrInvalidDataset = errors.New("invalid dataset")

	// ErrRecordIndexOutOfRange indicates a record index outside the dataset.
	ErrRecordIndexOutOfRange = errors.New("record index out of range")

	// ErrPageIndexOutOfRange indicates a page index outside [0, pageCount).
	ErrPageIndexOutOfRange = errors.New("page index out of range")

	// ErrInvalidValue is returned when raw input cannot be coerced to the
	// type of the original field value.
	ErrInvalidValue = errors.New("invalid field value")

	// ErrProtectedField is returned when an edit targets a field that ties a
	// record to its page.
	ErrProtectedField = errors.New("field cannot be edited")

	// ErrUnknownExportKind is returned for export kinds other than
	// approved, all and changes.
	ErrUnknownExportKind = errors.New("unknown export kind")
)
