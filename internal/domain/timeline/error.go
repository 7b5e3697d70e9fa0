package timeline

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("timeline event not found")
	ErrInvalidCategory = errors.New("invalid timeline category")
	ErrMissingFileName = errors.New("attachment data without a file name")
)

// PersistenceError reports a durable-store failure. The in-memory
// collection remains valid for the rest of the session.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("timeline persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
