package motion

import (
	"math"
	"testing"
)

func TestEaseEndpoints(t *testing.T) {
	for _, tt := range []struct {
		name string
		fn   Fn
	}{
		{"EaseOutExpo", EaseOutExpo},
		{"EaseInOutCubic", EaseInOutCubic},
	} {
		if got := tt.fn(0); math.Abs(got) > 1e-9 {
			t.Errorf("%s(0) = %v, want 0", tt.name, got)
		}
		if got := tt.fn(1); math.Abs(got-1) > 1e-9 {
			t.Errorf("%s(1) = %v, want 1", tt.name, got)
		}
	}
}

func TestEaseInOutCubicSymmetry(t *testing.T) {
	if got := EaseInOutCubic(0.5); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("EaseInOutCubic(0.5) = %v, want 0.5", got)
	}
}

func TestEaseMonotonic(t *testing.T) {
	for _, tt := range []struct {
		name string
		fn   Fn
	}{
		{"EaseOutExpo", EaseOutExpo},
		{"EaseInOutCubic", EaseInOutCubic},
	} {
		prev := tt.fn(0)
		for p := 0.01; p <= 1.0; p += 0.01 {
			cur := tt.fn(p)
			if cur < prev {
				t.Fatalf("%s decreased at %v: %v < %v", tt.name, p, cur, prev)
			}
			prev = cur
		}
	}
}

func TestClamp01(t *testing.T) {
	if Clamp01(-0.5) != 0 || Clamp01(1.5) != 1 || Clamp01(0.25) != 0.25 {
		t.Error("Clamp01 out of contract")
	}
}
