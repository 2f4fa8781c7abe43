package parser_test

import (
	"math"
	"testing"

	"github.com/apstndb/rangeparser/internal/parser"
)

func TestCreateRangeValidator(t *testing.T) {
	t.Run("no constraints", func(t *testing.T) {
		validator := parser.CreateRangeValidator[int](nil, nil)

		for _, v := range []int{-1000, 0, 1000, 999999} {
			if err := validator(v); err != nil {
				t.Errorf("validator(%d) failed: %v", v, err)
			}
		}
	})

	t.Run("min constraint only", func(t *testing.T) {
		min := 10
		validator := parser.CreateRangeValidator(&min, nil)

		for _, v := range []int{10, 11, 100, 1000} {
			if err := validator(v); err != nil {
				t.Errorf("validator(%d) failed: %v", v, err)
			}
		}

		err := validator(9)
		if err == nil {
			t.Fatal("expected error for value 9")
		}
		if want := "value 9 is less than minimum 10"; err.Error() != want {
			t.Errorf("error = %q, want %q", err.Error(), want)
		}
	})

	t.Run("max constraint only", func(t *testing.T) {
		max := 100
		validator := parser.CreateRangeValidator(nil, &max)

		for _, v := range []int{-100, 0, 50, 100} {
			if err := validator(v); err != nil {
				t.Errorf("validator(%d) failed: %v", v, err)
			}
		}

		err := validator(101)
		if err == nil {
			t.Fatal("expected error for value 101")
		}
		if want := "value 101 is greater than maximum 100"; err.Error() != want {
			t.Errorf("error = %q, want %q", err.Error(), want)
		}
	})

	t.Run("works with different numeric types", func(t *testing.T) {
		minFloat, maxFloat := 1.5, 10.5
		floatValidator := parser.CreateRangeValidator(&minFloat, &maxFloat)

		if err := floatValidator(5.5); err != nil {
			t.Errorf("floatValidator(5.5) failed: %v", err)
		}
		if err := floatValidator(1.0); err == nil {
			t.Error("expected error for float below minimum")
		}

		minUint, maxUint := uint8(1), uint8(200)
		uintValidator := parser.CreateRangeValidator(&minUint, &maxUint)

		if err := uintValidator(0); err == nil {
			t.Error("expected error for uint8 below minimum")
		}
		if err := uintValidator(201); err == nil {
			t.Error("expected error for uint8 above maximum")
		}
	})
}

func TestFinite(t *testing.T) {
	for _, v := range []float64{0, -1.5, math.MaxFloat64, math.SmallestNonzeroFloat64} {
		if err := parser.Finite(v); err != nil {
			t.Errorf("Finite(%v) failed: %v", v, err)
		}
	}

	for _, v := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		if err := parser.Finite(v); err == nil {
			t.Errorf("Finite(%v) should fail", v)
		}
	}

	if err := parser.Finite(float32(math.Inf(1))); err == nil {
		t.Error("Finite(float32 +Inf) should fail")
	}
	if err := parser.Finite[int64](math.MaxInt64); err != nil {
		t.Errorf("Finite(MaxInt64) failed: %v", err)
	}

	p := parser.WithValidation[float64](parser.NewNumberParser[float64](), parser.Finite[float64])
	for _, input := range []string{"Inf", "-inf", "+Infinity", "NaN"} {
		if _, err := p.ParseAndValidate(input); err == nil {
			t.Errorf("ParseAndValidate(%q) should fail", input)
		}
	}
	if got, err := p.ParseAndValidate("1e308"); err != nil || got != 1e308 {
		t.Errorf("ParseAndValidate(1e308) = %v, %v", got, err)
	}
}
