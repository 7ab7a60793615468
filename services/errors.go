package services

import (
	"fmt"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Error classes; typed errors below unwrap to one of these.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrState      = errors.New("invalid state")
)

// ValidationError is bad or missing input, or a cross-entity rule violation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// HierarchyError is a broken category -> type -> product chain. It is a validation error.
type HierarchyError struct {
	Reason string
}

func (e *HierarchyError) Error() string { return e.Reason }

func (e *HierarchyError) Unwrap() error { return ErrValidation }

type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// StateError is an operation attempted on an entity that has not been persisted.
type StateError struct {
	Reason string
}

func (e *StateError) Error() string { return e.Reason }

func (e *StateError) Unwrap() error { return ErrState }

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// lookupErr turns a missing-row error into a NotFoundError and wraps anything else.
func lookupErr(err error, entity string, id int64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return errors.Wrapf(err, "load %s %d", entity, id)
}
