package parser

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// NumberParser parses decimal numbers into T with an optional lower bound.
// The bit size and signedness of T decide which strconv function is used,
// so out-of-range input such as "300" for uint8 is a parse error rather than a wrap-around.
type NumberParser[T Number] struct {
	BaseParser[T]
}

// NewNumberParser creates a parser for T.
func NewNumberParser[T Number]() *NumberParser[T] {
	return &NumberParser[T]{
		BaseParser: BaseParser[T]{
			ParseFunc: parseNumber[T],
		},
	}
}

// WithMin adds minimum value validation.
func (p *NumberParser[T]) WithMin(min T) *NumberParser[T] {
	p.ValidateFunc = CreateRangeValidator(&min, nil)
	return p
}

func parseNumber[T Number](value string) (T, error) {
	s := strings.TrimSpace(value)
	typ := reflect.TypeOf((*T)(nil)).Elem()

	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(s, 10, typ.Bits())
		if err != nil {
			return 0, err
		}
		return T(v), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		v, err := strconv.ParseUint(s, 10, typ.Bits())
		if err != nil {
			return 0, err
		}
		return T(v), nil
	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(s, typ.Bits())
		if err != nil {
			return 0, err
		}
		return T(v), nil
	default:
		return 0, fmt.Errorf("unsupported number kind %v", typ.Kind())
	}
}
