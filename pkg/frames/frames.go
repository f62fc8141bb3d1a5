// Package frames implements the frame sources of the composer: configured,
// stateful units that render one visual effect for any requested progress
// in [0,1] by emitting abstract draw commands to a canvas sink.
//
// Every frame source follows the same lifecycle: a New* constructor performs
// the one-time expensive setup (decoding, pre-blurring, text measurement),
// Render may then be called any number of times and in any order, and
// Dispose releases cached artifacts. Rendering after Dispose fails.
package frames

import (
	"errors"
	"fmt"
	"math"

	"github.com/ivlev/framefx/pkg/canvas"
	"github.com/ivlev/framefx/pkg/config"
)

var (
	// ErrConfig reports a required config field missing or invalid at
	// construction. Never raised at render time.
	ErrConfig = errors.New("frames: invalid config")
	// ErrDisposed reports a render on a disposed frame source.
	ErrDisposed = errors.New("frames: frame source disposed")
	// ErrProgress reports a non-finite progress value.
	ErrProgress = errors.New("frames: progress out of contract")
)

// FrameSource renders one visual effect for any requested progress.
// Implementations are not safe for concurrent use of a single instance;
// distinct instances may render concurrently.
type FrameSource interface {
	// Render computes the per-frame parameters for progress and emits zero
	// or more draw commands to sink in back-to-front order.
	Render(progress float64, sink canvas.Sink) error
	// Dispose releases cached setup artifacts. Idempotent.
	Dispose() error
}

// OnRenderFunc adapts caller-supplied draw logic to the FrameSource contract.
type OnRenderFunc func(progress float64, sink canvas.Sink) error

// lifecycle carries the dispose bookkeeping shared by every effect.
type lifecycle struct {
	disposed bool
}

func (l *lifecycle) ready() error {
	if l.disposed {
		return ErrDisposed
	}
	return nil
}

// Dispose marks the frame source terminal. Safe to call twice.
func (l *lifecycle) Dispose() error {
	l.disposed = true
	return nil
}

// checkProgress validates and clamps a progress value. Non-finite values are
// a contract violation; values outside [0,1] clamp so seeking slightly past
// either end stays well defined.
func checkProgress(p float64) (float64, error) {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, fmt.Errorf("%w: %v", ErrProgress, p)
	}
	if p < 0 {
		return 0, nil
	}
	if p > 1 {
		return 1, nil
	}
	return p, nil
}

// New builds the frame source described by layer for a target raster size.
// The layer is normalized first, so missing fields take their defaults.
func New(layer config.Layer, width, height int) (FrameSource, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: frame size %dx%d", ErrConfig, width, height)
	}
	layer = layer.Normalize()

	switch layer.Type {
	case config.TypeImage:
		return NewImage(layer, width, height)
	case config.TypeFillColor:
		return NewFill(layer, width, height)
	case config.TypeLinearGradient:
		return NewLinearGradient(layer, width, height)
	case config.TypeRadialGradient:
		return NewRadialGradient(layer, width, height)
	case config.TypeTitle:
		return NewTitle(layer, width, height)
	case config.TypeSubtitle:
		return NewSubtitle(layer, width, height)
	case config.TypeNewsTitle:
		return NewNewsTitle(layer, width, height)
	case config.TypeSlideInText:
		return NewSlideInText(layer, width, height)
	case config.TypeParagraph:
		return NewParagraph(layer, width, height)
	case config.TypeImageOverlay:
		return NewOverlay(layer, width, height)
	case config.TypeQR:
		return NewQR(layer, width, height)
	default:
		return nil, fmt.Errorf("%w: unknown layer type %q", ErrConfig, layer.Type)
	}
}
