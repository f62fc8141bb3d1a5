package motion

import (
	"errors"
	"fmt"
)

// Props is the set of named numeric values a keyframe pins at its breakpoint.
type Props map[string]float64

func (p Props) clone() Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Keyframe anchors a property set at a breakpoint time in [0,1].
// A sequence of keyframes must carry the same property names at every
// breakpoint and have non-decreasing times.
type Keyframe struct {
	T     float64 `yaml:"t"`
	Props Props   `yaml:"props"`
}

// ErrEmptySequence reports interpolation over a sequence with no keyframes.
// This is a programming-contract violation, not a recoverable condition.
var ErrEmptySequence = errors.New("motion: empty keyframe sequence")

// Interpolate maps progress to the property set defined by the keyframe
// sequence. Progress values before the first breakpoint return the first
// property set unchanged, values past the last breakpoint return the last.
// Within the bracketing pair every property is interpolated linearly.
func Interpolate(seq []Keyframe, progress float64) (Props, error) {
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}

	if progress <= seq[0].T {
		return seq[0].Props.clone(), nil
	}

	last := seq[len(seq)-1]
	if progress >= last.T {
		return last.Props.clone(), nil
	}

	for i := 0; i < len(seq)-1; i++ {
		a, b := seq[i], seq[i+1]
		// A zero-width interval can never bracket progress, so duplicate
		// breakpoint times resolve to the later keyframe's values.
		if progress < a.T || progress >= b.T {
			continue
		}

		t := (progress - a.T) / (b.T - a.T)
		out := make(Props, len(a.Props))
		for name, av := range a.Props {
			bv, ok := b.Props[name]
			if !ok {
				return nil, fmt.Errorf("motion: property %q missing at keyframe t=%v", name, b.T)
			}
			out[name] = lerp(av, bv, t)
		}
		if len(b.Props) > len(a.Props) {
			return nil, fmt.Errorf("motion: keyframe t=%v carries properties absent at t=%v", b.T, a.T)
		}
		return out, nil
	}

	return last.Props.clone(), nil
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
