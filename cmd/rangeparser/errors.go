package main

import (
	"errors"
	"fmt"

	"github.com/apstndb/rangeparser"
)

const (
	exitCodeSuccess = 0
	exitCodeError   = 1
	exitCodeUsage   = 2
)

// ExitCodeError represents an error that only carries an exit code without a message.
// It is returned after the message has already been written.
type ExitCodeError struct {
	exitCode int
}

// Error implements the error interface
func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit code: %d", e.exitCode)
}

// NewExitCodeError creates a new ExitCodeError
func NewExitCodeError(exitCode int) error {
	if exitCode == exitCodeSuccess {
		return nil
	}

	return &ExitCodeError{
		exitCode: exitCode,
	}
}

// UsageError reports an invocation problem, such as a bad option value,
// as opposed to an expression that fails to parse.
type UsageError struct {
	err error
}

func newUsageError(err error) error {
	return &UsageError{err: err}
}

func (e *UsageError) Error() string { return e.err.Error() }
func (e *UsageError) Unwrap() error { return e.err }

// GetExitCode returns the exit code for err.
// Usage errors, including separators rejected by the library, map to exitCodeUsage.
// Expression failures map to exitCodeError.
func GetExitCode(err error) int {
	if err == nil {
		return exitCodeSuccess
	}

	var exitCodeErr *ExitCodeError
	if errors.As(err, &exitCodeErr) {
		return exitCodeErr.exitCode
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) || errors.Is(err, rangeparser.ErrInvalidSeparators) {
		return exitCodeUsage
	}

	return exitCodeError
}
