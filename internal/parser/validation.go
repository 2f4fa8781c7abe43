package parser

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any Go integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// CreateRangeValidator creates a validator enforcing optional inclusive bounds.
// A nil bound is not checked.
func CreateRangeValidator[T Number](min, max *T) Validator[T] {
	return func(v T) error {
		if min != nil && v < *min {
			return fmt.Errorf("value %v is less than minimum %v", v, *min)
		}
		if max != nil && v > *max {
			return fmt.Errorf("value %v is greater than maximum %v", v, *max)
		}
		return nil
	}
}

// Finite rejects infinities and NaN. Integer values always pass.
func Finite[T Number](v T) error {
	if f := float64(v); math.IsInf(f, 0) || math.IsNaN(f) {
		return fmt.Errorf("value %v is not finite", v)
	}
	return nil
}
