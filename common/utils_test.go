package common

import "testing"

// TestCoalesceReturnsFirstNonZero verifies the first non-zero argument wins.
func TestCoalesceReturnsFirstNonZero(t *testing.T) {
	if got := Coalesce(0, 0, 7, 3); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	if got := Coalesce(float32(0), 0.25); got != 0.25 {
		t.Fatalf("expected 0.25, got %v", got)
	}
	if got := Coalesce("", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

// TestCoalesceAllZero verifies the zero value is returned when every argument
// is zero.
func TestCoalesceAllZero(t *testing.T) {
	if got := Coalesce(0, 0); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := Coalesce[string](); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
