// Package parser provides generic building blocks for decoding typed values
// from strings.
//
// rangeparser decodes range endpoints with it, and the rangeparser command uses
// it to validate option values.
//
// # Core Interfaces
//
//   - Parser[T]: parse a string into T, then validate the result
//   - BaseParser[T]: function-backed Parser used by the concrete parsers
//   - NumberParser[T]: decimal integers and floats of any Go numeric type
//   - EnumParser[T]: fixed set of names mapped to values
//
// Validation is kept separate from parsing and composed with WithValidation:
//
//	p := WithValidation[int8](
//	    NewNumberParser[int8](),
//	    func(v int8) error {
//	        if v == 0 {
//	            return errors.New("zero is not allowed")
//	        }
//	        return nil
//	    },
//	)
package parser
