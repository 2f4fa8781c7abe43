package rangeparser

import (
	"cmp"

	"golang.org/x/exp/constraints"

	"github.com/apstndb/rangeparser/internal/parser"
)

// Number is the set of built-in types that Parse and ParseWith accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Numeric is the capability set a range element type must provide.
// Implement it to expand ranges of custom types with New.
type Numeric[T any] interface {
	// Parse decodes a single endpoint. The text has surrounding whitespace removed.
	Parse(s string) (T, error)

	// Add returns a + b.
	Add(a, b T) T

	// Compare returns -1, 0 or +1 following the cmp.Compare convention.
	Compare(a, b T) int

	// Unit returns the step used while expanding a range. It must be strictly positive.
	Unit() T
}

// NumericFuncs adapts plain functions to Numeric.
type NumericFuncs[T any] struct {
	ParseFunc   func(string) (T, error)
	AddFunc     func(a, b T) T
	CompareFunc func(a, b T) int
	UnitValue   T
}

func (f NumericFuncs[T]) Parse(s string) (T, error) { return f.ParseFunc(s) }
func (f NumericFuncs[T]) Add(a, b T) T { return f.AddFunc(a, b) }
func (f NumericFuncs[T]) Compare(a, b T) int { return f.CompareFunc(a, b) }
func (f NumericFuncs[T]) Unit() T { return f.UnitValue }

type builtin[T Number] struct {
	decoder parser.Parser[T]
}

// Builtin returns the Numeric implementation for a Go integer or float type.
// Floats step by 1 like integers. Inf and NaN endpoints are rejected.
func Builtin[T Number]() Numeric[T] {
	return builtin[T]{decoder: parser.WithValidation[T](parser.NewNumberParser[T](), parser.Finite[T])}
}

func (b builtin[T]) Parse(s string) (T, error) { return b.decoder.ParseAndValidate(s) }
func (builtin[T]) Add(a, c T) T { return a + c }
func (builtin[T]) Compare(a, c T) int { return cmp.Compare(a, c) }
func (builtin[T]) Unit() T { return 1 }
