package motion

// Direction selects how the pan/zoom model moves the camera across a clip.
type Direction string

const (
	// DirectionNone leaves the image static.
	DirectionNone Direction = ""
	// DirectionIn zooms toward the center over the clip.
	DirectionIn Direction = "in"
	// DirectionOut starts zoomed in and settles back to 1:1.
	DirectionOut Direction = "out"
	// DirectionLeft pans horizontally leftward at a fixed over-scale.
	DirectionLeft Direction = "left"
	// DirectionRight pans horizontally rightward at a fixed over-scale.
	DirectionRight Direction = "right"
)

// panHeadroom over-scales panning images so the sweep never reveals an edge.
const panHeadroom = 1.3

// panSpanPx converts a zoom amount into the total horizontal sweep in pixels.
const panSpanPx = 1000.0

// Scale returns the uniform scale factor for a clip at the given progress.
// Horizontal pans hold a constant over-scale; in/out interpolate between
// 1 and 1+amount. Unrecognized directions and amount 0 yield the identity.
func Scale(progress float64, dir Direction, amount float64) float64 {
	switch dir {
	case DirectionLeft, DirectionRight:
		return panHeadroom + amount
	case DirectionIn:
		return 1 + amount*progress
	case DirectionOut:
		return 1 + amount*(1-progress)
	default:
		return 1
	}
}

// Translate returns the horizontal pixel offset for a clip at the given
// progress. The sweep spans amount*1000 pixels centered at progress 0.5;
// only horizontal pans translate.
func Translate(progress float64, dir Direction, amount float64) float64 {
	switch dir {
	case DirectionRight:
		return (progress - 0.5) * amount * panSpanPx
	case DirectionLeft:
		return -(progress - 0.5) * amount * panSpanPx
	default:
		return 0
	}
}

// ParseDirection maps a config string to a Direction. Unknown values fall
// back to DirectionNone, which renders as the identity transform.
func ParseDirection(s string) Direction {
	switch Direction(s) {
	case DirectionIn, DirectionOut, DirectionLeft, DirectionRight:
		return Direction(s)
	default:
		return DirectionNone
	}
}
