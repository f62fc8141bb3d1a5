package frames

import (
	"fmt"

	"github.com/ivlev/framefx/pkg/canvas"
)

// Custom adapts caller-supplied draw logic to the frame-source lifecycle so
// user-defined effects compose with the built-in ones.
type Custom struct {
	lifecycle
	fn OnRenderFunc
}

// NewCustom wraps fn as a frame source.
func NewCustom(fn OnRenderFunc) (*Custom, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: custom layer requires an OnRender func", ErrConfig)
	}
	return &Custom{fn: fn}, nil
}

// Render delegates to the wrapped func after the usual lifecycle checks.
func (s *Custom) Render(progress float64, sink canvas.Sink) error {
	if err := s.ready(); err != nil {
		return err
	}
	p, err := checkProgress(progress)
	if err != nil {
		return err
	}
	return s.fn(p, sink)
}
