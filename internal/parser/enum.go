package parser

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// EnumParser maps a fixed set of names to values.
// Matching is case-insensitive.
type EnumParser[T comparable] struct {
	BaseParser[T]
	original map[string]T
	values   map[string]T
}

// NewEnumParser creates an enum parser for the given names.
func NewEnumParser[T comparable](values map[string]T) *EnumParser[T] {
	p := &EnumParser[T]{
		original: values,
		values:   lo.MapKeys(values, func(_ T, k string) string { return strings.ToUpper(k) }),
	}
	p.BaseParser = BaseParser[T]{ParseFunc: p.parseEnum}
	return p
}

// Names returns the accepted names in sorted order.
func (p *EnumParser[T]) Names() []string {
	names := lo.Keys(p.original)
	slices.Sort(names)
	return names
}

func (p *EnumParser[T]) parseEnum(value string) (T, error) {
	if v, ok := p.values[strings.ToUpper(strings.TrimSpace(value))]; ok {
		return v, nil
	}

	var zero T
	return zero, fmt.Errorf("invalid value %q, must be one of: %s", value, strings.Join(p.Names(), ", "))
}
