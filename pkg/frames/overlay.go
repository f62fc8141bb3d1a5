package frames

import (
	"fmt"
	"image"
	"math"

	"github.com/ivlev/framefx/pkg/canvas"
	"github.com/ivlev/framefx/pkg/config"
	"github.com/ivlev/framefx/pkg/loader"
	"github.com/ivlev/framefx/pkg/motion"
)

// Default overlay sizes as ratios of the frame width.
const (
	overlayWidthRatio = 0.5
	qrWidthRatio      = 0.2
)

// Overlay draws an image on top of other layers at a configured position and
// relative size, fading in after an optional delay and optionally zooming.
type Overlay struct {
	lifecycle
	width  int
	height int
	img    image.Image
	ratio  float64
	dir    motion.Direction
	amount float64
	delay  float64
	speed  float64
	pos    placement
}

// NewOverlay loads the overlay image. The path is required.
func NewOverlay(layer config.Layer, width, height int) (*Overlay, error) {
	layer = layer.Normalize()
	if layer.Path == "" {
		return nil, fmt.Errorf("%w: image-overlay layer requires a path", ErrConfig)
	}

	img, err := loader.Load(layer.Path)
	if err != nil {
		return nil, err
	}

	return newOverlay(layer, width, height, img)
}

// NewQR synthesizes a QR code encoding the layer text and overlays it.
func NewQR(layer config.Layer, width, height int) (*Overlay, error) {
	layer = layer.Normalize()
	if layer.Text == "" {
		return nil, fmt.Errorf("%w: qr layer requires text content", ErrConfig)
	}
	if layer.Width == nil {
		r := qrWidthRatio
		layer.Width = &r
	}

	sizePx := int(math.Round(*layer.Width * float64(width)))
	img, err := loader.QR(layer.Text, sizePx)
	if err != nil {
		return nil, err
	}

	return newOverlay(layer, width, height, img)
}

func newOverlay(layer config.Layer, width, height int, img image.Image) (*Overlay, error) {
	ratio := overlayWidthRatio
	if layer.Width != nil {
		ratio = *layer.Width
	}
	if ratio <= 0 || ratio > 1 {
		return nil, fmt.Errorf("%w: overlay width ratio %v out of (0,1]", ErrConfig, ratio)
	}
	amount := 0.0
	if layer.ZoomAmount != nil {
		amount = *layer.ZoomAmount
	}
	if amount < 0 {
		return nil, fmt.Errorf("%w: zoomAmount must be >= 0, got %v", ErrConfig, amount)
	}
	speed := layer.SpeedOrDefault()
	if speed <= 0 {
		return nil, fmt.Errorf("%w: speed must be > 0, got %v", ErrConfig, speed)
	}

	return &Overlay{
		width:  width,
		height: height,
		img:    img,
		ratio:  ratio,
		dir:    motion.ParseDirection(layer.ZoomDirection),
		amount: amount,
		delay:  layer.Delay,
		speed:  speed,
		pos:    resolvePlacement(layer, width, height),
	}, nil
}

// Render emits the positioned overlay image.
func (s *Overlay) Render(progress float64, sink canvas.Sink) error {
	if err := s.ready(); err != nil {
		return err
	}
	p, err := checkProgress(progress)
	if err != nil {
		return err
	}

	opacity := motion.EaseOutExpo(motion.Clamp01((p - s.delay) * s.speed * 4))
	if opacity == 0 {
		return nil
	}

	zoom := motion.Scale(p, s.dir, s.amount)
	tx := motion.Translate(p, s.dir, s.amount)

	b := s.img.Bounds()
	base := s.ratio * float64(s.width) / float64(b.Dx())

	obj := canvas.Image(s.img)
	obj.OriginX, obj.OriginY = s.pos.originX, s.pos.originY
	obj.X, obj.Y = s.pos.x+tx, s.pos.y
	obj.ScaleX, obj.ScaleY = base*zoom, base*zoom
	obj.Opacity = opacity
	return sink.Add(obj)
}

// Dispose drops the cached bitmap.
func (s *Overlay) Dispose() error {
	s.img = nil
	return s.lifecycle.Dispose()
}
