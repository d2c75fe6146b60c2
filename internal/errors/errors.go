package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/daykeep/daykeep/internal/logger"
)

// Core error taxonomy. Callers match with errors.Is.
var (
	// ErrValidation marks malformed input; the operation aborts with no
	// partial state change.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an unknown record id.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState marks an illegal status transition, e.g. completing
	// an already-skipped task.
	ErrInvalidState = errors.New("invalid state")

	// ErrStorageWrite marks a rejected write; in-memory state stays
	// authoritative so the next retry has a consistent base.
	ErrStorageWrite = errors.New("storage write failed")

	// ErrStorageRead marks a corrupt or unreadable document. The store
	// treats it as absent and falls back to defaults.
	ErrStorageRead = errors.New("storage read failed")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Validationf wraps a formatted message with ErrValidation.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidation}, args...)...)
}

// NotFoundf wraps a formatted message with ErrNotFound.
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrNotFound}, args...)...)
}

// InvalidStatef wraps a formatted message with ErrInvalidState.
func InvalidStatef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidState}, args...)...)
}

// StorageWritef wraps a formatted message with ErrStorageWrite.
func StorageWritef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrStorageWrite}, args...)...)
}

// StorageReadf wraps a formatted message with ErrStorageRead.
func StorageReadf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrStorageRead}, args...)...)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
