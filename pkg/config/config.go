// Package config carries the per-effect parameter bags supplied once at
// frame-source construction. Bags are plain structs with yaml tags so a
// driver can describe clips declaratively; unknown keys are ignored and
// missing keys take the documented defaults.
package config

// Layer type names accepted by frames.New.
const (
	TypeImage          = "image"
	TypeFillColor      = "fill-color"
	TypeLinearGradient = "linear-gradient"
	TypeRadialGradient = "radial-gradient"
	TypeTitle          = "title"
	TypeSubtitle       = "subtitle"
	TypeNewsTitle      = "news-title"
	TypeSlideInText    = "slide-in-text"
	TypeParagraph      = "paragraph"
	TypeImageOverlay   = "image-overlay"
	TypeQR             = "qr"
)

// Resize modes for image layers.
const (
	ResizeContain     = "contain"
	ResizeContainBlur = "contain-blur"
	ResizeCover       = "cover"
	ResizeStretch     = "stretch"
)

// Layer is the effect-specific parameter bag for one frame source.
// It is immutable for the lifetime of the instance that was built from it.
type Layer struct {
	Type string `yaml:"type"`

	// Image layers.
	Path          string   `yaml:"path,omitempty"`
	ZoomDirection string   `yaml:"zoomDirection,omitempty"`
	ZoomAmount    *float64 `yaml:"zoomAmount,omitempty"`
	ResizeMode    string   `yaml:"resizeMode,omitempty"`

	// Text layers.
	Text            string `yaml:"text,omitempty"`
	TextColor       string `yaml:"textColor,omitempty"`
	BackgroundColor string `yaml:"backgroundColor,omitempty"`
	FontBold        bool   `yaml:"fontBold,omitempty"`

	// Fill and gradient layers.
	Color  string   `yaml:"color,omitempty"`
	Colors []string `yaml:"colors,omitempty"`

	// Placement. Position names a screen anchor (top, bottom, center,
	// top-left, ...); X/Y override it with ratios of the frame size.
	Position string   `yaml:"position,omitempty"`
	X        *float64 `yaml:"x,omitempty"`
	Y        *float64 `yaml:"y,omitempty"`

	// Overlay sizing as a ratio of the frame width.
	Width *float64 `yaml:"width,omitempty"`

	// Timing.
	Delay float64  `yaml:"delay,omitempty"`
	Speed *float64 `yaml:"speed,omitempty"`
}

// Defaults, applied by Normalize.
const (
	DefaultZoomDirection = "in"
	DefaultZoomAmount    = 0.1
	DefaultResizeMode    = ResizeContainBlur
	DefaultTextColor     = "#ffffff"
	DefaultFillColor     = "#000000"
	DefaultSpeed         = 1.0
)

// DefaultGradientColors is the stop pair gradient layers fall back to.
var DefaultGradientColors = []string{"#02aab0", "#00cdac"}

// ZoomAmountOrDefault resolves the optional zoom amount.
func (l Layer) ZoomAmountOrDefault() float64 {
	if l.ZoomAmount != nil {
		return *l.ZoomAmount
	}
	return DefaultZoomAmount
}

// SpeedOrDefault resolves the optional speed multiplier.
func (l Layer) SpeedOrDefault() float64 {
	if l.Speed != nil {
		return *l.Speed
	}
	return DefaultSpeed
}

// Normalize fills missing fields with the documented defaults and returns
// the completed bag. The receiver is not modified.
func (l Layer) Normalize() Layer {
	out := l
	switch out.Type {
	case TypeImage:
		if out.ZoomDirection == "" {
			out.ZoomDirection = DefaultZoomDirection
		}
		if out.ResizeMode == "" {
			out.ResizeMode = DefaultResizeMode
		}
	case TypeFillColor:
		if out.Color == "" {
			out.Color = DefaultFillColor
		}
	case TypeLinearGradient, TypeRadialGradient:
		if len(out.Colors) == 0 {
			out.Colors = DefaultGradientColors
		}
	case TypeTitle, TypeSubtitle, TypeNewsTitle, TypeSlideInText, TypeParagraph:
		if out.TextColor == "" {
			out.TextColor = DefaultTextColor
		}
	}
	if out.Position == "" {
		switch out.Type {
		case TypeSubtitle, TypeSlideInText, TypeParagraph:
			out.Position = "bottom"
		case TypeNewsTitle:
			out.Position = "top"
		case TypeQR, TypeImageOverlay:
			out.Position = "center"
		default:
			out.Position = "center"
		}
	}
	return out
}
