package repository

import (
	"errors"
	"fmt"
)

// DuplicateKeyError reports that a write violated the store's unique
// constraint on Field. Stores return it instead of their driver error so the
// usecases can tell which value collided.
type DuplicateKeyError struct {
	Field string
	Err   error
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key on %s: %v", e.Field, e.Err)
}

func (e *DuplicateKeyError) Unwrap() error {
	return e.Err
}

// Unique fields reported in DuplicateKeyError.
const (
	FieldIDNumber  = "idNumber"
	FieldEmail     = "email"
	FieldReference = "reference"
)

// ErrNotFound is returned by Update and Delete when no record has the given id.
var ErrNotFound = errors.New("record not found")
