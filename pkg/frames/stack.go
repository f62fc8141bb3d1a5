package frames

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/framefx/internal/system"
	"github.com/ivlev/framefx/pkg/canvas"
	"github.com/ivlev/framefx/pkg/config"
)

// Stack composes several frame sources back-to-front for one clip. Layers
// own independent cached state, so they render concurrently into buffers;
// the buffers flush to the real sink in layer order.
type Stack struct {
	lifecycle
	layers  []FrameSource
	workers int
}

// NewStack builds a stack over the given layers, first (index 0) drawn
// furthest back.
func NewStack(layers ...FrameSource) (*Stack, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("%w: stack requires at least one layer", ErrConfig)
	}
	return &Stack{
		layers:  layers,
		workers: system.WorkerCount(len(layers)),
	}, nil
}

// NewScene builds a stack from a declarative scene description.
func NewScene(scene *config.Scene, width, height int) (*Stack, error) {
	if scene == nil || len(scene.Layers) == 0 {
		return nil, fmt.Errorf("%w: scene has no layers", ErrConfig)
	}

	built := make([]FrameSource, len(scene.Layers))
	for i, layer := range scene.Layers {
		fs, err := New(layer, width, height)
		if err != nil {
			// Release whatever was already constructed.
			for _, b := range built[:i] {
				b.Dispose()
			}
			return nil, fmt.Errorf("layer %d (%s): %w", i, layer.Type, err)
		}
		built[i] = fs
	}

	return NewStack(built...)
}

// Render renders every layer for the same progress and emits the combined
// command stream back-to-front.
func (s *Stack) Render(progress float64, sink canvas.Sink) error {
	if err := s.ready(); err != nil {
		return err
	}
	p, err := checkProgress(progress)
	if err != nil {
		return err
	}

	bufs := make([]canvas.Buffer, len(s.layers))

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, layer := range s.layers {
		g.Go(func() error {
			return layer.Render(p, &bufs[i])
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range bufs {
		if err := bufs[i].FlushTo(sink); err != nil {
			return err
		}
	}
	return nil
}

// Dispose fans out to every layer. Layer dispose never fails, so the stack's
// own dispose is the only result.
func (s *Stack) Dispose() error {
	for _, layer := range s.layers {
		layer.Dispose()
	}
	return s.lifecycle.Dispose()
}
