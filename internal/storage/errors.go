package storage

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrNoDataset indicates the directory holds no saved dataset yet.
	ErrNoDataset = errors.New("storage: no dataset saved")

	// ErrMalformed indicates items.csv could not be read back as items.
	ErrMalformed = errors.New("storage: malformed dataset")
)

// RowError locates a rejected items.csv row. Row counts the header as 1.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
