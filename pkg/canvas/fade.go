package canvas

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// fadeBand is the relative width of the opaque-to-transparent transition.
const fadeBand = 0.2

// FadeStops returns the gradient offsets bounding the transition band for a
// reveal fraction. At reveal 0 both stops sit at the left edge; at reveal 1
// the band has swept fully off the right edge.
func FadeStops(reveal float64) (lo, hi float64) {
	lo = math.Max(0, reveal*(1+fadeBand)-fadeBand)
	hi = math.Min(1, reveal*(1+fadeBand))
	return lo, hi
}

// Faded returns a copy of obj masked by a horizontal linear alpha gradient:
// opaque up to the transition band, transparent past it, advancing rightward
// as reveal grows. The input object is not mutated.
func Faded(obj *Object, reveal float64) *Object {
	lo, hi := FadeStops(reveal)
	white := colorful.Color{R: 1, G: 1, B: 1}

	out := obj.Clone()
	out.Mask = &Gradient{
		Kind: GradientLinear,
		X1:   0,
		Y1:   0,
		X2:   obj.Width,
		Y2:   0,
		Stops: []Stop{
			{Offset: lo, Color: white, Alpha: 1},
			{Offset: hi, Color: white, Alpha: 0},
		},
	}
	return out
}
