package parser

import (
	"errors"
)

// errNoParseFunc is returned by a BaseParser without a ParseFunc.
var errNoParseFunc = errors.New("parse function not implemented")

// Parser converts strings to values of type T.
type Parser[T any] interface {
	// Parse converts a string to T without applying validation.
	Parse(value string) (T, error)

	// Validate checks constraints on an already parsed value.
	Validate(value T) error

	// ParseAndValidate runs Parse followed by Validate.
	ParseAndValidate(value string) (T, error)
}

// BaseParser implements Parser with plain functions.
// A nil ValidateFunc accepts every value.
type BaseParser[T any] struct {
	ParseFunc    func(string) (T, error)
	ValidateFunc func(T) error
}

// Parse implements the Parser interface.
func (p *BaseParser[T]) Parse(value string) (T, error) {
	if p.ParseFunc == nil {
		var zero T
		return zero, errNoParseFunc
	}
	return p.ParseFunc(value)
}

// Validate implements the Parser interface.
func (p *BaseParser[T]) Validate(value T) error {
	if p.ValidateFunc == nil {
		return nil
	}
	return p.ValidateFunc(value)
}

// ParseAndValidate implements the Parser interface.
func (p *BaseParser[T]) ParseAndValidate(value string) (T, error) {
	var zero T

	parsed, err := p.Parse(value)
	if err != nil {
		return zero, err
	}
	if err := p.Validate(parsed); err != nil {
		return zero, err
	}
	return parsed, nil
}

// Validator checks a parsed value.
type Validator[T any] func(value T) error

// ChainValidators returns a validator that runs validators in order and stops at the first failure.
func ChainValidators[T any](validators ...Validator[T]) Validator[T] {
	return func(value T) error {
		for _, validate := range validators {
			if err := validate(value); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithValidation returns a parser that runs the validation of parser and then validators.
func WithValidation[T any](parser Parser[T], validators ...Validator[T]) Parser[T] {
	extra := ChainValidators(validators...)
	return &BaseParser[T]{
		ParseFunc: parser.Parse,
		ValidateFunc: func(value T) error {
			if err := parser.Validate(value); err != nil {
				return err
			}
			return extra(value)
		},
	}
}
