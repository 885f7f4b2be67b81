// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "fmt"

// ValidationError reports input that fails a documented constraint.
// The operation that produced it performed no mutation.
type ValidationError struct {
	Message string
	Fields  []string // offending question texts, when applicable
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StorageError reports a persistence read or write failure. Writes that
// fail leave the durable state, and therefore the observable state,
// unchanged.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NotFoundError reports an operation targeting an id absent from the
// current list.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}
