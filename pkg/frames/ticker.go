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

// newsBackColor is the banner color when the layer does not set one.
const newsBackColor = "#d02a42"

// Staggered ramp offsets: the banner leads, the text follows, the text's
// opacity trails slightly behind its slide.
const (
	newsTextLag    = 0.02
	newsOpacityLag = 0.07
)

// NewsTitle renders a breaking-news banner: a colored bar slides in from the
// left edge, the headline slides in just behind it and fades up as it lands.
type NewsTitle struct {
	lifecycle
	width  int
	height int
	text   string
	color  colorful.Color
	back   colorful.Color
	delay  float64
	speed  float64

	fontSize float64
	metrics  loader.TextMetrics
}

// NewNewsTitle measures the headline once and prepares the banner.
func NewNewsTitle(layer config.Layer, width, height int) (*NewsTitle, error) {
	layer = layer.Normalize()
	if layer.Text == "" {
		return nil, fmt.Errorf("%w: news-title layer requires text", ErrConfig)
	}
	c, err := canvas.ParseColor(layer.TextColor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	backHex := layer.BackgroundColor
	if backHex == "" {
		backHex = newsBackColor
	}
	back, err := canvas.ParseColor(backHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	speed := layer.SpeedOrDefault()
	if speed <= 0 {
		return nil, fmt.Errorf("%w: speed must be > 0, got %v", ErrConfig, speed)
	}

	fontSize := math.Round(bodyFontRatio * float64(min(width, height)))
	metrics, err := loader.Measure(layer.Text, fontSize, true)
	if err != nil {
		return nil, err
	}

	return &NewsTitle{
		width:    width,
		height:   height,
		text:     layer.Text,
		color:    c,
		back:     back,
		delay:    layer.Delay,
		speed:    speed,
		fontSize: fontSize,
		metrics:  metrics,
	}, nil
}

// Render emits the banner bar then the headline.
func (s *NewsTitle) Render(progress float64, sink canvas.Sink) error {
	if err := s.ready(); err != nil {
		return err
	}
	p, err := checkProgress(progress)
	if err != nil {
		return err
	}

	barP := motion.EaseOutExpo(motion.Clamp01((p - s.delay) * s.speed * 3))
	textP := motion.EaseOutExpo(motion.Clamp01((p - s.delay - newsTextLag) * s.speed * 4))
	opacityP := motion.EaseOutExpo(motion.Clamp01((p - s.delay - newsOpacityLag) * s.speed * 4))

	short := float64(min(s.width, s.height))
	padV := 0.07 * short
	padH := 0.03 * short
	top := float64(s.height) * 0.08

	barW := s.metrics.Width + 2*padH
	barH := s.metrics.Height + 2*padV

	bar := canvas.Rect(barW, barH, s.back)
	bar.X = -(1 - barP) * barW
	bar.Y = top
	if err := sink.Add(bar); err != nil {
		return err
	}

	txt := canvas.Text(s.text, s.fontSize, s.metrics.Width, s.metrics.Height, s.color)
	txt.Bold = true
	txt.X = padH - (1-textP)*float64(s.width)
	txt.Y = top + padV
	txt.Opacity = opacityP
	return sink.Add(txt)
}
