package numlit

import (
	"errors"
	"math"
	"testing"
)

func TestParseAccepted(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"5", 5},
		{"-3", -3},
		{"+7", 7},
		{"08", 8},
		{"0", 0},
		{"2.5", 2.5},
		{".5", 0.5},
		{"5.", 5},
		{"-1.25e2", -125},
		{"1e-3", 0.001},
		{"3E+2", 300},
		{"100000000000000000000000", 1e23},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseNegativeZero(t *testing.T) {
	got, err := Parse("-0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 || !math.Signbit(got) {
		t.Fatalf("expected negative zero, got %v", got)
	}
}

func TestParseRejected(t *testing.T) {
	for _, in := range []string{
		"", "+", "-", ".", "e5", "1e", "1e+", "abc", "q", "--5", "1.2.3", "5 6",
		"inf", "NaN", "1e400",
		// Only plain decimal notation is a number.
		"0x1f", "0X10", "0b101", "0o7", "1_000", "1_0.5", "1e1_0", "0x1.8p1",
	} {
		_, err := Parse(in)
		if err == nil {
			t.Fatalf("Parse(%q) expected error", in)
		}
		if !errors.Is(err, ErrNotNumber) {
			t.Fatalf("Parse(%q) error %v does not wrap ErrNotNumber", in, err)
		}
	}
}

func TestNormalizeKinds(t *testing.T) {
	lit, err := Normalize("-42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lit.Kind != KindInt || !lit.Negative || lit.Normalized != "42" {
		t.Fatalf("unexpected literal %+v", lit)
	}

	lit, err = Normalize(".5e10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lit.Kind != KindFloat || lit.Negative || lit.Normalized != "0.5e10" {
		t.Fatalf("unexpected literal %+v", lit)
	}
}
