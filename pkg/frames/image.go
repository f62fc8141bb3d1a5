package frames

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"

	"github.com/ivlev/framefx/pkg/canvas"
	"github.com/ivlev/framefx/pkg/config"
	"github.com/ivlev/framefx/pkg/loader"
	"github.com/ivlev/framefx/pkg/motion"
)

// Image pans and zooms a still image across the clip. Depending on the
// resize mode the source is fitted, covered, or stretched onto the frame;
// contain-blur additionally keeps a pre-blurred backdrop computed once at
// construction and cached for the lifetime of the instance.
type Image struct {
	lifecycle
	width  int
	height int
	dir    motion.Direction
	amount float64
	mode   string

	fg image.Image
	bg image.Image
}

// NewImage loads and prepares the image described by layer. The path is
// required; load and decode failures propagate to the caller.
func NewImage(layer config.Layer, width, height int) (*Image, error) {
	layer = layer.Normalize()
	if layer.Path == "" {
		return nil, fmt.Errorf("%w: image layer requires a path", ErrConfig)
	}

	src, err := loader.Load(layer.Path)
	if err != nil {
		return nil, err
	}

	s := &Image{
		width:  width,
		height: height,
		dir:    motion.ParseDirection(layer.ZoomDirection),
		amount: layer.ZoomAmountOrDefault(),
		mode:   layer.ResizeMode,
	}
	if s.amount < 0 {
		return nil, fmt.Errorf("%w: zoomAmount must be >= 0, got %v", ErrConfig, s.amount)
	}

	switch layer.ResizeMode {
	case config.ResizeContain:
		s.fg = imaging.Fit(src, width, height, imaging.Lanczos)
	case config.ResizeContainBlur:
		s.fg = imaging.Fit(src, width, height, imaging.Lanczos)
		backdrop := imaging.Fill(src, width, height, imaging.Center, imaging.Lanczos)
		s.bg = imaging.Blur(backdrop, blurSigma(width, height))
	case config.ResizeCover:
		s.fg = imaging.Fill(src, width, height, imaging.Center, imaging.Lanczos)
	case config.ResizeStretch:
		// Stretch keeps the source untouched and applies independent X/Y
		// scale at render time; a single fitted bitmap cannot express the
		// non-uniform scale.
		s.fg = src
	default:
		return nil, fmt.Errorf("%w: unknown resize mode %q", ErrConfig, layer.ResizeMode)
	}

	return s, nil
}

// blurSigma scales the backdrop blur with the frame size so small previews
// and full frames read the same.
func blurSigma(width, height int) float64 {
	return math.Max(4, float64(min(width, height))/60)
}

// Render emits the backdrop (if any) and the transformed foreground.
func (s *Image) Render(progress float64, sink canvas.Sink) error {
	if err := s.ready(); err != nil {
		return err
	}
	p, err := checkProgress(progress)
	if err != nil {
		return err
	}

	scale := motion.Scale(p, s.dir, s.amount)
	tx := motion.Translate(p, s.dir, s.amount)
	cx, cy := float64(s.width)/2, float64(s.height)/2

	if s.bg != nil {
		bg := canvas.Image(s.bg)
		bg.OriginX, bg.OriginY = canvas.OriginCenterX, canvas.OriginCenterY
		bg.X, bg.Y = cx+tx, cy
		bg.ScaleX, bg.ScaleY = scale, scale
		if err := sink.Add(bg); err != nil {
			return err
		}
	}

	fg := canvas.Image(s.fg)
	fg.OriginX, fg.OriginY = canvas.OriginCenterX, canvas.OriginCenterY
	fg.X, fg.Y = cx+tx, cy
	if s.mode == config.ResizeStretch {
		b := s.fg.Bounds()
		fg.ScaleX = float64(s.width) / float64(b.Dx()) * scale
		fg.ScaleY = float64(s.height) / float64(b.Dy()) * scale
	} else {
		fg.ScaleX, fg.ScaleY = scale, scale
	}

	return sink.Add(fg)
}

// Dispose drops the cached bitmaps.
func (s *Image) Dispose() error {
	s.fg = nil
	s.bg = nil
	return s.lifecycle.Dispose()
}
