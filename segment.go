package rangeparser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// splitSegments splits text on sep. Every segment must contain something other than whitespace.
func splitSegments(text, sep string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &MalformedInputError{Segment: text, Reason: "empty input"}
	}

	segments := strings.Split(text, sep)
	for _, segment := range segments {
		if strings.TrimSpace(segment) == "" {
			return nil, &MalformedInputError{Segment: segment, Reason: "empty segment"}
		}
	}
	return segments, nil
}

type scanState int

const (
	// stateEndpointStart is at the beginning of an endpoint, where a range separator is a sign.
	stateEndpointStart scanState = iota

	// stateScanDelimiter is inside an endpoint, where a range separator splits the range.
	stateScanDelimiter
)

// endpointTexts holds the raw text of one or two endpoints of a segment.
type endpointTexts struct {
	start   string
	end     string
	isRange bool
}

// splitEndpoints finds the structural range separator in segment.
//
// A separator met at the start of an endpoint (ignoring whitespace) belongs to that
// endpoint as its sign, so "-5--1" splits into "-5" and "-1" and "-8" is a single value.
func splitEndpoints(segment, sep string) (endpointTexts, error) {
	state := stateEndpointStart
	delim := -1

	for i := 0; i < len(segment); {
		switch state {
		case stateEndpointStart:
			if strings.HasPrefix(segment[i:], sep) {
				i += len(sep)
				state = stateScanDelimiter
				continue
			}

			r, size := utf8.DecodeRuneInString(segment[i:])
			if !unicode.IsSpace(r) {
				state = stateScanDelimiter
			}
			i += size
		case stateScanDelimiter:
			if !strings.HasPrefix(segment[i:], sep) {
				_, size := utf8.DecodeRuneInString(segment[i:])
				i += size
				continue
			}

			if delim >= 0 {
				return endpointTexts{}, &MalformedInputError{Segment: segment, Reason: "too many range separators"}
			}
			delim = i
			i += len(sep)
			state = stateEndpointStart
		}
	}

	if delim < 0 {
		return endpointTexts{start: segment}, nil
	}

	start, end := segment[:delim], segment[delim+len(sep):]
	if strings.TrimSpace(end) == "" {
		return endpointTexts{}, &MalformedInputError{Segment: segment, Reason: "missing range end"}
	}
	return endpointTexts{start: start, end: end, isRange: true}, nil
}
