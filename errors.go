package rangeparser

import (
	"errors"
	"fmt"
)

// ErrInvalidSeparators is returned when a separator is empty or the two separators overlap.
var ErrInvalidSeparators = errors.New("invalid separators")

// Error types for proper error handling with errors.Is/As
type (
	// MalformedInputError is returned when the expression does not fit the grammar:
	// empty input, an empty segment, or a segment with too many range separators.
	MalformedInputError struct {
		Segment string
		Reason  string
	}

	// InvalidValueError is returned when an endpoint cannot be decoded.
	InvalidValueError struct {
		Text    string
		Segment string
		Err     error
	}

	// LimitExceededError is returned when the expansion would produce more values than allowed.
	LimitExceededError struct {
		Limit int
	}
)

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input %q: %s", e.Segment, e.Reason)
}

func (e *InvalidValueError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid value %q in %q", e.Text, e.Segment)
	}
	return fmt.Sprintf("invalid value %q in %q: %v", e.Text, e.Segment, e.Err)
}

func (e *InvalidValueError) Unwrap() error {
	return e.Err
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("range expands to more than %d values", e.Limit)
}
