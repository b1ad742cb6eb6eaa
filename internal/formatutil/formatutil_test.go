package formatutil

import (
	"math"
	"testing"
)

// Summed at run time; a constant 0.1 + 0.2 folds to exactly 0.3.
var tenth, fifth = 0.1, 0.2

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{8, "8"},
		{2.5, "2.5"},
		{-0.5, "-0.5"},
		{1e21, "1000000000000000000000"},
		{tenth + fifth, "0.30000000000000004"},
		{0.3, "0.3"},
		{math.Copysign(0, -1), "-0"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Fatalf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatStack(t *testing.T) {
	if got := FormatStack(nil); got != "[]" {
		t.Fatalf("expected empty stack, got %q", got)
	}
	if got := FormatStack([]float64{4, 0}); got != "[4, 0]" {
		t.Fatalf("expected [4, 0], got %q", got)
	}
	if got := FormatStack([]float64{1.5, -2, 3}); got != "[1.5, -2, 3]" {
		t.Fatalf("expected [1.5, -2, 3], got %q", got)
	}
}

func TestFormatTable(t *testing.T) {
	got := FormatTable("Keys:", []HelpRow{
		{Key: "+", Text: "add"},
		{Key: "abc", Text: "letters"},
		{Key: "計", Text: "wide"},
	})
	want := "Keys:\n  +    add\n  abc  letters\n  計   wide\n"
	if got != want {
		t.Fatalf("unexpected table:\n%q\nwant:\n%q", got, want)
	}
}
