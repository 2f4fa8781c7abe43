package rangeparser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitEndpoints(t *testing.T) {
	for _, tt := range []struct {
		desc       string
		segment    string
		sep        string
		want       endpointTexts
		wantReason string
	}{
		{desc: "single", segment: "7", sep: "-", want: endpointTexts{start: "7"}},
		{desc: "negative single", segment: "-8", sep: "-", want: endpointTexts{start: "-8"}},
		{desc: "range", segment: "1-3", sep: "-", want: endpointTexts{start: "1", end: "3", isRange: true}},
		{desc: "negative start", segment: "-1-3", sep: "-", want: endpointTexts{start: "-1", end: "3", isRange: true}},
		{desc: "both negative", segment: "-5--1", sep: "-", want: endpointTexts{start: "-5", end: "-1", isRange: true}},
		{desc: "negative end", segment: "3--1", sep: "-", want: endpointTexts{start: "3", end: "-1", isRange: true}},
		{desc: "spaces", segment: " -5 - -1 ", sep: "-", want: endpointTexts{start: " -5 ", end: " -1 ", isRange: true}},
		{desc: "multi-char separator", segment: "-2..-1", sep: "..", want: endpointTexts{start: "-2", end: "-1", isRange: true}},
		{desc: "leading multi-char separator is part of the value", segment: "..5", sep: "..", want: endpointTexts{start: "..5"}},
		{desc: "float", segment: "-1.5-2.5", sep: "-", want: endpointTexts{start: "-1.5", end: "2.5", isRange: true}},
		{desc: "sign only", segment: "-", sep: "-", want: endpointTexts{start: "-"}},
		{desc: "double leading sign", segment: "--1", sep: "-", want: endpointTexts{start: "-", end: "1", isRange: true}},
		{desc: "three endpoints", segment: "1-3-5", sep: "-", wantReason: "too many range separators"},
		{desc: "three negative endpoints", segment: "-1--2--3", sep: "-", wantReason: "too many range separators"},
		{desc: "missing end", segment: "1-", sep: "-", wantReason: "missing range end"},
		{desc: "missing end after spaces", segment: "1- ", sep: "-", wantReason: "missing range end"},
		{desc: "end is sign only", segment: "1--", sep: "-", want: endpointTexts{start: "1", end: "-", isRange: true}},
	} {
		t.Run(tt.desc, func(t *testing.T) {
			got, err := splitEndpoints(tt.segment, tt.sep)
			if tt.wantReason != "" {
				var malformed *MalformedInputError
				if !errors.As(err, &malformed) {
					t.Fatalf("splitEndpoints(%q) error = %v, want MalformedInputError", tt.segment, err)
				}
				if malformed.Reason != tt.wantReason {
					t.Errorf("reason = %q, want %q", malformed.Reason, tt.wantReason)
				}
				return
			}
			if err != nil {
				t.Fatalf("splitEndpoints(%q) unexpected error: %v", tt.segment, err)
			}
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(endpointTexts{})); diff != "" {
				t.Errorf("splitEndpoints(%q) mismatch (-want +got):\n%s", tt.segment, diff)
			}
		})
	}
}

func TestSplitSegments(t *testing.T) {
	got, err := splitSegments("1-3;;x", ";;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"1-3", "x"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	for _, input := range []string{"", " ", "1,", ",1", "1,,2", "1,\t,2"} {
		_, err := splitSegments(input, ",")
		var malformed *MalformedInputError
		if !errors.As(err, &malformed) {
			t.Errorf("splitSegments(%q) error = %v, want MalformedInputError", input, err)
		}
	}
}
