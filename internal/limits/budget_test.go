package limits

import (
	"errors"
	"testing"
)

func TestDepthCheck(t *testing.T) {
	d := NewDepth(3)
	if err := d.Check(0, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.Check(2, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := d.Check(3, 1)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, ErrStackFull) {
		t.Fatalf("expected ErrStackFull, got %v", err)
	}
	if err.Error() != "stack full (limit 3)" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestDepthUnlimited(t *testing.T) {
	d := NewDepth(0)
	if err := d.Check(1_000_000, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var nilDepth *Depth
	if err := nilDepth.Check(10, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if NewDepth(-4).Limit() != 0 {
		t.Fatalf("negative limit should clamp to 0")
	}
}
