package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("project not found")
	ErrStorageUnavailable = errors.New("project storage unavailable")
)

// ValidationError reports a missing or malformed required field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid project: %s", e.Message)
}
