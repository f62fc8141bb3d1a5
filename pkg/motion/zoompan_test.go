package motion

import (
	"math"
	"testing"
)

func TestScale(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		dir      Direction
		amount   float64
		want     float64
	}{
		{"in start", 0, DirectionIn, 0.2, 1.0},
		{"in end", 1, DirectionIn, 0.2, 1.2},
		{"out start", 0, DirectionOut, 0.2, 1.2},
		{"out end", 1, DirectionOut, 0.2, 1.0},
		{"left constant start", 0, DirectionLeft, 0.1, 1.4},
		{"left constant end", 1, DirectionLeft, 0.1, 1.4},
		{"right constant mid", 0.5, DirectionRight, 0.1, 1.4},
		{"none identity", 0.7, DirectionNone, 0.5, 1.0},
		{"zero amount identity", 0.7, DirectionIn, 0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scale(tt.progress, tt.dir, tt.amount)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Scale(%v, %q, %v) = %v, want %v", tt.progress, tt.dir, tt.amount, got, tt.want)
			}
		})
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		dir      Direction
		amount   float64
		want     float64
	}{
		{"right start", 0, DirectionRight, 0.1, -50},
		{"right center", 0.5, DirectionRight, 0.1, 0},
		{"right end", 1, DirectionRight, 0.1, 50},
		{"left start", 0, DirectionLeft, 0.1, 50},
		{"left end", 1, DirectionLeft, 0.1, -50},
		{"in never translates", 1, DirectionIn, 0.5, 0},
		{"out never translates", 0, DirectionOut, 0.5, 0},
		{"none", 0.3, DirectionNone, 0.5, 0},
		{"zero amount", 1, DirectionRight, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Translate(tt.progress, tt.dir, tt.amount)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Translate(%v, %q, %v) = %v, want %v", tt.progress, tt.dir, tt.amount, got, tt.want)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	if ParseDirection("in") != DirectionIn {
		t.Error(`ParseDirection("in") != DirectionIn`)
	}
	if ParseDirection("sideways") != DirectionNone {
		t.Error("unrecognized direction should fall back to DirectionNone")
	}
	if ParseDirection("") != DirectionNone {
		t.Error("empty direction should fall back to DirectionNone")
	}
}
