// Package rangeparser expands range expressions such as "1-3,5-8" or "-5--1,0-3"
// into the ordered list of values they denote.
//
// An expression is a list of segments separated by a value separator (default ",").
// Each segment is either a single value or two endpoints joined by a range separator
// (default "-"). A range separator at the start of an endpoint is read as the sign of
// that endpoint, so negative numbers need no quoting:
//
//	values, err := rangeparser.Parse[int]("-8,-5--1,0-3")
//	// values == []int{-8, -5, -4, -3, -2, -1, 0, 1, 2, 3}
//
// Ranges always expand in ascending order regardless of the order of their endpoints.
// Segment order and duplicates are preserved.
package rangeparser

import (
	"fmt"
	"strings"
)

const (
	DefaultValueSeparator = ","
	DefaultRangeSeparator = "-"
)

// Parse expands text using the default separators.
func Parse[T Number](text string) ([]T, error) {
	return ParseWith[T](text, DefaultValueSeparator, DefaultRangeSeparator)
}

// ParseWith expands text using the given separators.
// Only "-" reads as a sign; a leading custom range separator such as "..5" stays part of the endpoint text.
func ParseWith[T Number](text, valueSeparator, rangeSeparator string) ([]T, error) {
	p, err := New(Builtin[T](),
		WithValueSeparator(valueSeparator),
		WithRangeSeparator(rangeSeparator))
	if err != nil {
		return nil, err
	}
	return p.Parse(text)
}

// Parser expands range expressions of T. It is immutable and safe for concurrent use.
type Parser[T any] struct {
	numeric        Numeric[T]
	valueSeparator string
	rangeSeparator string
	limit          int
}

type options struct {
	valueSeparator string
	rangeSeparator string
	limit          int
}

// Option configures a Parser.
type Option func(*options)

// WithValueSeparator sets the separator between segments.
func WithValueSeparator(sep string) Option {
	return func(o *options) { o.valueSeparator = sep }
}

// WithRangeSeparator sets the separator between the endpoints of a range.
func WithRangeSeparator(sep string) Option {
	return func(o *options) { o.rangeSeparator = sep }
}

// WithLimit caps the number of values a single Parse call may produce.
// Zero or a negative limit means unlimited.
func WithLimit(n int) Option {
	return func(o *options) { o.limit = n }
}

// New creates a Parser for the given numeric type.
func New[T any](numeric Numeric[T], opts ...Option) (*Parser[T], error) {
	o := options{
		valueSeparator: DefaultValueSeparator,
		rangeSeparator: DefaultRangeSeparator,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := validateSeparators(o.valueSeparator, o.rangeSeparator); err != nil {
		return nil, err
	}

	return &Parser[T]{
		numeric:        numeric,
		valueSeparator: o.valueSeparator,
		rangeSeparator: o.rangeSeparator,
		limit:          max(o.limit, 0),
	}, nil
}

func validateSeparators(valueSeparator, rangeSeparator string) error {
	switch {
	case valueSeparator == "":
		return fmt.Errorf("%w: value separator is empty", ErrInvalidSeparators)
	case rangeSeparator == "":
		return fmt.Errorf("%w: range separator is empty", ErrInvalidSeparators)
	case valueSeparator == rangeSeparator:
		return fmt.Errorf("%w: value and range separators are both %q", ErrInvalidSeparators, valueSeparator)
	case strings.Contains(valueSeparator, rangeSeparator), strings.Contains(rangeSeparator, valueSeparator):
		return fmt.Errorf("%w: %q and %q overlap", ErrInvalidSeparators, valueSeparator, rangeSeparator)
	}
	return nil
}

// ValueSeparator returns the separator between segments.
func (p *Parser[T]) ValueSeparator() string { return p.valueSeparator }

// RangeSeparator returns the separator between range endpoints.
func (p *Parser[T]) RangeSeparator() string { return p.rangeSeparator }

// Parse expands text. It fails on the first malformed segment and never returns a partial result.
func (p *Parser[T]) Parse(text string) ([]T, error) {
	segments, err := splitSegments(text, p.valueSeparator)
	if err != nil {
		return nil, err
	}

	var values []T
	for _, segment := range segments {
		ep, err := p.decodeSegment(segment)
		if err != nil {
			return nil, err
		}

		values, err = p.expand(values, ep)
		if err != nil {
			return nil, err
		}
	}
	return values, nil
}

type endpoints[T any] struct {
	start   T
	end     T
	isRange bool
}

func (p *Parser[T]) decodeSegment(segment string) (endpoints[T], error) {
	texts, err := splitEndpoints(segment, p.rangeSeparator)
	if err != nil {
		return endpoints[T]{}, err
	}

	start, err := p.decode(texts.start, segment)
	if err != nil {
		return endpoints[T]{}, err
	}
	if !texts.isRange {
		return endpoints[T]{start: start, end: start}, nil
	}

	end, err := p.decode(texts.end, segment)
	if err != nil {
		return endpoints[T]{}, err
	}
	return endpoints[T]{start: start, end: end, isRange: true}, nil
}

func (p *Parser[T]) decode(text, segment string) (T, error) {
	trimmed := strings.TrimSpace(text)
	v, err := p.numeric.Parse(trimmed)
	if err != nil {
		var zero T
		return zero, &InvalidValueError{Text: trimmed, Segment: segment, Err: err}
	}
	return v, nil
}

// expand appends the values of ep to acc in ascending order.
// It stops once the next step would pass the upper bound or fails to increase,
// so it terminates even on overflow at the type's maximum or a zero unit.
func (p *Parser[T]) expand(acc []T, ep endpoints[T]) ([]T, error) {
	lo, hi := ep.start, ep.end
	if p.numeric.Compare(lo, hi) > 0 {
		lo, hi = hi, lo
	}

	unit := p.numeric.Unit()
	for v := lo; ; {
		if p.limit > 0 && len(acc) >= p.limit {
			return nil, &LimitExceededError{Limit: p.limit}
		}
		acc = append(acc, v)

		next := p.numeric.Add(v, unit)
		if p.numeric.Compare(next, hi) > 0 || p.numeric.Compare(next, v) <= 0 {
			return acc, nil
		}
		v = next
	}
}
