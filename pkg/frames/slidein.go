package frames

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ivlev/framefx/pkg/canvas"
	"github.com/ivlev/framefx/pkg/config"
	"github.com/ivlev/framefx/pkg/loader"
	"github.com/ivlev/framefx/pkg/motion"
)

// slideInKeyframes drives both the opacity and the reveal fraction of a
// slide-in from one eased progress value: everything lands by t=0.4 and
// holds for the rest of the clip.
func slideInKeyframes() []motion.Keyframe {
	return []motion.Keyframe{
		{T: 0, Props: motion.Props{"opacity": 0, "reveal": 0}},
		{T: 0.4, Props: motion.Props{"opacity": 1, "reveal": 1}},
		{T: 1, Props: motion.Props{"opacity": 1, "reveal": 1}},
	}
}

// SlideInText renders a line of text sliding in from the left with a soft
// edge fade that advances with the reveal.
type SlideInText struct {
	lifecycle
	width  int
	height int
	text   string
	color  colorful.Color
	delay  float64
	speed  float64
	pos    placement

	fontSize float64
	metrics  loader.TextMetrics
	frames   []motion.Keyframe
}

// NewSlideInText measures the text once and prepares its keyframes.
func NewSlideInText(layer config.Layer, width, height int) (*SlideInText, error) {
	layer = layer.Normalize()
	if layer.Text == "" {
		return nil, fmt.Errorf("%w: slide-in-text layer requires text", ErrConfig)
	}
	c, err := canvas.ParseColor(layer.TextColor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	speed := layer.SpeedOrDefault()
	if speed <= 0 {
		return nil, fmt.Errorf("%w: speed must be > 0, got %v", ErrConfig, speed)
	}

	fontSize := math.Round(bodyFontRatio * float64(min(width, height)))
	metrics, err := loader.Measure(layer.Text, fontSize, false)
	if err != nil {
		return nil, err
	}

	return &SlideInText{
		width:    width,
		height:   height,
		text:     layer.Text,
		color:    c,
		delay:    layer.Delay,
		speed:    speed,
		pos:      resolvePlacement(layer, width, height),
		fontSize: fontSize,
		metrics:  metrics,
		frames:   slideInKeyframes(),
	}, nil
}

// Render emits the faded, sliding text object.
func (s *SlideInText) Render(progress float64, sink canvas.Sink) error {
	if err := s.ready(); err != nil {
		return err
	}
	p, err := checkProgress(progress)
	if err != nil {
		return err
	}

	eased := motion.EaseOutExpo(motion.Clamp01((p - s.delay) * s.speed))
	props, err := motion.Interpolate(s.frames, eased)
	if err != nil {
		return err
	}
	reveal := props["reveal"]
	opacity := props["opacity"]
	if opacity == 0 {
		return nil
	}

	obj := canvas.Text(s.text, s.fontSize, s.metrics.Width, s.metrics.Height, s.color)
	obj.OriginX, obj.OriginY = s.pos.originX, s.pos.originY
	obj.X = s.pos.x - (1-reveal)*s.metrics.Width*0.25
	obj.Y = s.pos.y

	faded := canvas.Faded(obj, reveal)
	faded.Opacity = opacity
	return sink.Add(faded)
}

// paragraphStagger is the progress gap between successive line reveals.
const paragraphStagger = 0.08

// paragraphHighlight is the backing color of the emphasized line when the
// layer does not set one.
const paragraphHighlight = "#f2bb05"

// Paragraph renders a multi-line block whose lines slide in one after
// another, with the line nearest the current progress backed by a highlight
// bar.
type Paragraph struct {
	lifecycle
	width     int
	height    int
	color     colorful.Color
	highlight colorful.Color
	delay     float64
	speed     float64
	pos       placement

	fontSize float64
	metrics  loader.TextMetrics
	frames   []motion.Keyframe
}

// NewParagraph measures the paragraph once and prepares per-line reveals.
func NewParagraph(layer config.Layer, width, height int) (*Paragraph, error) {
	layer = layer.Normalize()
	if strings.TrimSpace(layer.Text) == "" {
		return nil, fmt.Errorf("%w: paragraph layer requires text", ErrConfig)
	}
	c, err := canvas.ParseColor(layer.TextColor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	highlightHex := layer.BackgroundColor
	if highlightHex == "" {
		highlightHex = paragraphHighlight
	}
	highlight, err := canvas.ParseColor(highlightHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	speed := layer.SpeedOrDefault()
	if speed <= 0 {
		return nil, fmt.Errorf("%w: speed must be > 0, got %v", ErrConfig, speed)
	}

	fontSize := math.Round(bodyFontRatio * float64(min(width, height)))
	metrics, err := loader.Measure(layer.Text, fontSize, false)
	if err != nil {
		return nil, err
	}

	return &Paragraph{
		width:     width,
		height:    height,
		color:     c,
		highlight: highlight,
		delay:     layer.Delay,
		speed:     speed,
		pos:       resolvePlacement(layer, width, height),
		fontSize:  fontSize,
		metrics:   metrics,
		frames:    slideInKeyframes(),
	}, nil
}

// Render emits, per line: the highlight bar (for the active line only),
// then the faded sliding text.
func (s *Paragraph) Render(progress float64, sink canvas.Sink) error {
	if err := s.ready(); err != nil {
		return err
	}
	p, err := checkProgress(progress)
	if err != nil {
		return err
	}

	lines := s.metrics.Lines
	active := int(p * float64(len(lines)))
	if active >= len(lines) {
		active = len(lines) - 1
	}

	blockTop := s.pos.y - s.metrics.Height/2
	if s.pos.originY == canvas.OriginTop {
		blockTop = s.pos.y
	} else if s.pos.originY == canvas.OriginBottom {
		blockTop = s.pos.y - s.metrics.Height
	}
	blockLeft := s.pos.x - s.metrics.Width/2
	if s.pos.originX == canvas.OriginLeft {
		blockLeft = s.pos.x
	} else if s.pos.originX == canvas.OriginRight {
		blockLeft = s.pos.x - s.metrics.Width
	}

	for i, line := range lines {
		local := motion.Clamp01((p-s.delay)*s.speed - float64(i)*paragraphStagger)
		eased := motion.EaseOutExpo(local)
		props, err := motion.Interpolate(s.frames, eased)
		if err != nil {
			return err
		}
		reveal := props["reveal"]
		opacity := props["opacity"]
		if opacity == 0 || line.Text == "" {
			continue
		}

		y := blockTop + float64(i)*s.metrics.LineHeight

		if i == active {
			pad := s.fontSize * 0.25
			bar := canvas.Rect(line.Width+2*pad, s.metrics.LineHeight, s.highlight)
			bar.X = blockLeft - pad
			bar.Y = y
			bar.Opacity = opacity
			if err := sink.Add(bar); err != nil {
				return err
			}
		}

		txt := canvas.Text(line.Text, s.fontSize, line.Width, s.metrics.LineHeight, s.color)
		txt.X = blockLeft - (1-reveal)*line.Width*0.25
		txt.Y = y

		faded := canvas.Faded(txt, reveal)
		faded.Opacity = opacity
		if err := sink.Add(faded); err != nil {
			return err
		}
	}

	return nil
}
