package frames

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ivlev/framefx/pkg/canvas"
	"github.com/ivlev/framefx/pkg/config"
)

// Fill paints the whole frame with one flat color.
type Fill struct {
	lifecycle
	width  int
	height int
	color  colorful.Color
}

// NewFill builds a solid-fill frame source.
func NewFill(layer config.Layer, width, height int) (*Fill, error) {
	layer = layer.Normalize()
	c, err := canvas.ParseColor(layer.Color)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return &Fill{width: width, height: height, color: c}, nil
}

// Render emits one frame-sized rectangle.
func (s *Fill) Render(progress float64, sink canvas.Sink) error {
	if err := s.ready(); err != nil {
		return err
	}
	if _, err := checkProgress(progress); err != nil {
		return err
	}
	return sink.Add(canvas.Rect(float64(s.width), float64(s.height), s.color))
}

// gradientStops spreads the configured colors evenly over [0,1].
func gradientStops(hexes []string) ([]canvas.Stop, error) {
	if len(hexes) < 2 {
		return nil, fmt.Errorf("%w: gradient needs at least two colors", ErrConfig)
	}
	stops := make([]canvas.Stop, len(hexes))
	for i, hex := range hexes {
		c, err := canvas.ParseColor(hex)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfig, err)
		}
		stops[i] = canvas.Stop{
			Offset: float64(i) / float64(len(hexes)-1),
			Color:  c,
			Alpha:  1,
		}
	}
	return stops, nil
}

// LinearGradient paints the frame with a diagonal linear gradient.
type LinearGradient struct {
	lifecycle
	width  int
	height int
	stops  []canvas.Stop
}

// NewLinearGradient builds a linear-gradient frame source.
func NewLinearGradient(layer config.Layer, width, height int) (*LinearGradient, error) {
	layer = layer.Normalize()
	stops, err := gradientStops(layer.Colors)
	if err != nil {
		return nil, err
	}
	return &LinearGradient{width: width, height: height, stops: stops}, nil
}

// Render emits one frame-sized gradient rectangle.
func (s *LinearGradient) Render(progress float64, sink canvas.Sink) error {
	if err := s.ready(); err != nil {
		return err
	}
	if _, err := checkProgress(progress); err != nil {
		return err
	}

	w, h := float64(s.width), float64(s.height)
	fill := &canvas.Gradient{
		Kind:  canvas.GradientLinear,
		X1:    0,
		Y1:    0,
		X2:    w,
		Y2:    h,
		Stops: s.stops,
	}
	return sink.Add(canvas.GradientRect(w, h, fill))
}

// RadialGradient paints the frame with a centered radial gradient.
type RadialGradient struct {
	lifecycle
	width  int
	height int
	stops  []canvas.Stop
}

// NewRadialGradient builds a radial-gradient frame source.
func NewRadialGradient(layer config.Layer, width, height int) (*RadialGradient, error) {
	layer = layer.Normalize()
	stops, err := gradientStops(layer.Colors)
	if err != nil {
		return nil, err
	}
	return &RadialGradient{width: width, height: height, stops: stops}, nil
}

// Render emits one frame-sized gradient rectangle. The radius overshoots the
// half-diagonal so the last stop lands outside the visible corners.
func (s *RadialGradient) Render(progress float64, sink canvas.Sink) error {
	if err := s.ready(); err != nil {
		return err
	}
	if _, err := checkProgress(progress); err != nil {
		return err
	}

	w, h := float64(s.width), float64(s.height)
	fill := &canvas.Gradient{
		Kind:  canvas.GradientRadial,
		X1:    w / 2,
		Y1:    h / 2,
		R:     math.Hypot(w, h) / 2 * 1.1,
		Stops: s.stops,
	}
	return sink.Add(canvas.GradientRect(w, h, fill))
}
