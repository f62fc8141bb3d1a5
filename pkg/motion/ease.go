package motion

import "github.com/fogleman/ease"

// Fn reparameterizes linear progress into perceptually smoother motion.
// Implementations must be pure and defined over all of the real line;
// callers intentionally pass pre-clamped or shifted values.
type Fn func(float64) float64

// EaseOutExpo decelerates exponentially toward the end value.
var EaseOutExpo Fn = ease.OutExpo

// EaseInOutCubic accelerates through the first half and decelerates
// symmetrically through the second.
var EaseInOutCubic Fn = ease.InOutCubic

// Clamp01 limits v to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
