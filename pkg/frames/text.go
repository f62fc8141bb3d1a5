package frames

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ivlev/framefx/pkg/canvas"
	"github.com/ivlev/framefx/pkg/config"
	"github.com/ivlev/framefx/pkg/loader"
	"github.com/ivlev/framefx/pkg/motion"
)

// Font sizes as fractions of the frame's short side.
const (
	titleFontRatio = 0.1
	bodyFontRatio  = 0.05
)

// titleZoomAmount is the default zoom applied to titles when the layer does
// not set one; gentler than the image default would be too subtle on text.
const titleZoomAmount = 0.2

// Title renders a centered headline that fades in and slowly zooms.
type Title struct {
	lifecycle
	width  int
	height int
	text   string
	color  colorful.Color
	bold   bool
	dir    motion.Direction
	amount float64
	pos    placement

	fontSize float64
	metrics  loader.TextMetrics
	fade     []motion.Keyframe
}

// NewTitle measures the title text once and prepares its animation.
func NewTitle(layer config.Layer, width, height int) (*Title, error) {
	layer = layer.Normalize()
	if layer.Text == "" {
		return nil, fmt.Errorf("%w: title layer requires text", ErrConfig)
	}
	c, err := canvas.ParseColor(layer.TextColor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	dir := motion.ParseDirection(layer.ZoomDirection)
	if layer.ZoomDirection == "" {
		dir = motion.DirectionIn
	}
	amount := titleZoomAmount
	if layer.ZoomAmount != nil {
		amount = *layer.ZoomAmount
	}
	if amount < 0 {
		return nil, fmt.Errorf("%w: zoomAmount must be >= 0, got %v", ErrConfig, amount)
	}

	fontSize := math.Round(titleFontRatio * float64(min(width, height)))
	metrics, err := loader.Measure(layer.Text, fontSize, true)
	if err != nil {
		return nil, err
	}

	return &Title{
		width:    width,
		height:   height,
		text:     layer.Text,
		color:    c,
		bold:     true,
		dir:      dir,
		amount:   amount,
		pos:      resolvePlacement(layer, width, height),
		fontSize: fontSize,
		metrics:  metrics,
		fade: []motion.Keyframe{
			{T: 0, Props: motion.Props{"opacity": 0}},
			{T: 0.1, Props: motion.Props{"opacity": 1}},
			{T: 1, Props: motion.Props{"opacity": 1}},
		},
	}, nil
}

// Render emits the zoomed, fading headline.
func (s *Title) Render(progress float64, sink canvas.Sink) error {
	if err := s.ready(); err != nil {
		return err
	}
	p, err := checkProgress(progress)
	if err != nil {
		return err
	}

	props, err := motion.Interpolate(s.fade, p)
	if err != nil {
		return err
	}

	scale := motion.Scale(p, s.dir, s.amount)
	tx := motion.Translate(p, s.dir, s.amount)

	obj := canvas.Text(s.text, s.fontSize, s.metrics.Width, s.metrics.Height, s.color)
	obj.Bold = s.bold
	obj.OriginX, obj.OriginY = s.pos.originX, s.pos.originY
	obj.X, obj.Y = s.pos.x+tx, s.pos.y
	obj.ScaleX, obj.ScaleY = scale, scale
	obj.Opacity = props["opacity"]
	return sink.Add(obj)
}

// Subtitle renders a banner of text on a translucent backing strip,
// fading in after an optional delay.
type Subtitle struct {
	lifecycle
	width  int
	height int
	text   string
	color  colorful.Color
	back   colorful.Color
	delay  float64
	speed  float64
	pos    placement

	fontSize float64
	metrics  loader.TextMetrics
	fade     []motion.Keyframe
}

// subtitleBackOpacity is the base opacity of the backing strip.
const subtitleBackOpacity = 0.6

// NewSubtitle measures the subtitle text once and prepares its fade.
func NewSubtitle(layer config.Layer, width, height int) (*Subtitle, error) {
	layer = layer.Normalize()
	if layer.Text == "" {
		return nil, fmt.Errorf("%w: subtitle layer requires text", ErrConfig)
	}
	c, err := canvas.ParseColor(layer.TextColor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	backHex := layer.BackgroundColor
	if backHex == "" {
		backHex = "#000000"
	}
	back, err := canvas.ParseColor(backHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	speed := layer.SpeedOrDefault()
	if speed < 0 {
		return nil, fmt.Errorf("%w: speed must be >= 0, got %v", ErrConfig, speed)
	}

	fontSize := math.Round(bodyFontRatio * float64(min(width, height)))
	metrics, err := loader.Measure(layer.Text, fontSize, false)
	if err != nil {
		return nil, err
	}

	return &Subtitle{
		width:    width,
		height:   height,
		text:     layer.Text,
		color:    c,
		back:     back,
		delay:    layer.Delay,
		speed:    speed,
		pos:      resolvePlacement(layer, width, height),
		fontSize: fontSize,
		metrics:  metrics,
		fade: []motion.Keyframe{
			{T: 0, Props: motion.Props{"opacity": 0}},
			{T: 0.1, Props: motion.Props{"opacity": 1}},
			{T: 1, Props: motion.Props{"opacity": 1}},
		},
	}, nil
}

// Render emits the backing strip then the text.
func (s *Subtitle) Render(progress float64, sink canvas.Sink) error {
	if err := s.ready(); err != nil {
		return err
	}
	p, err := checkProgress(progress)
	if err != nil {
		return err
	}

	local := motion.Clamp01((p - s.delay) * s.speed)
	props, err := motion.Interpolate(s.fade, local)
	if err != nil {
		return err
	}
	opacity := props["opacity"]
	if opacity == 0 {
		return nil
	}

	pad := bodyFontRatio * float64(min(s.width, s.height)) * 0.5
	strip := canvas.Rect(float64(s.width), s.metrics.Height+2*pad, s.back)
	strip.OriginX, strip.OriginY = canvas.OriginCenterX, s.pos.originY
	strip.X, strip.Y = float64(s.width)/2, s.pos.y
	strip.Opacity = subtitleBackOpacity * opacity
	if err := sink.Add(strip); err != nil {
		return err
	}

	txt := canvas.Text(s.text, s.fontSize, s.metrics.Width, s.metrics.Height, s.color)
	txt.OriginX, txt.OriginY = s.pos.originX, s.pos.originY
	txt.X, txt.Y = s.pos.x, s.pos.y-pad
	txt.Opacity = opacity
	return sink.Add(txt)
}
