package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound     = errors.New("not found")
	ErrLastNotebook = errors.New("last notebook can't be hidden")
	ErrCancelled    = errors.New("cancelled by user")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PolicyError reports a hide request refused because no notebook would stay visible
type PolicyError struct {
	FolderID string
	Reason   string
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("cannot hide %s: %s", e.FolderID, e.Reason)
}

func (e *PolicyError) Is(target error) bool {
	return target == ErrLastNotebook
}
