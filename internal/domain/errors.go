package domain

import "errors"

var (
	// ErrNullDocument indicates the results file holds a JSON null.
	ErrNullDocument = errors.New("results document is null")
	// ErrMissingName indicates a failed test record without a name.
	ErrMissingName = errors.New("missing name")
)
