package services

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the named dataset, chart or export does not exist.
var ErrNotFound = errors.New("not found")

// ErrValidation indicates malformed input: a bad name, a non-uniform table or unparsable content.
var ErrValidation = errors.New("validation error")

// ErrStorageUnavailable indicates a store directory could not be read or written.
var ErrStorageUnavailable = errors.New("storage unavailable")

// StoreError records which store operation failed and for which key.
type StoreError struct {
	Op  string // "read", "write", "list", "create"
	Key string
	Err error
}

func (e *StoreError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func newStoreError(op, key string, err error) *StoreError {
	return &StoreError{Op: op, Key: key, Err: err}
}
