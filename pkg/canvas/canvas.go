// Package canvas defines the abstract draw-command model frame sources emit
// against. A rendering backend consumes Objects through a Sink and is
// responsible for rasterization; this package only describes what to draw.
package canvas

import (
	"fmt"
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// OriginX anchors a command's horizontal position to a point on its bounds.
type OriginX string

// OriginY anchors a command's vertical position to a point on its bounds.
type OriginY string

const (
	OriginLeft    OriginX = "left"
	OriginCenterX OriginX = "center"
	OriginRight   OriginX = "right"

	OriginTop     OriginY = "top"
	OriginCenterY OriginY = "center"
	OriginBottom  OriginY = "bottom"
)

// Kind discriminates the draw-command variants a backend must support.
type Kind string

const (
	KindRect  Kind = "rect"
	KindImage Kind = "image"
	KindText  Kind = "text"
	KindGroup Kind = "group"
)

// GradientKind selects the fill geometry of a Gradient.
type GradientKind string

const (
	GradientLinear GradientKind = "linear"
	GradientRadial GradientKind = "radial"
)

// Stop pins a color and alpha at a normalized offset along a gradient.
type Stop struct {
	Offset float64
	Color  colorful.Color
	Alpha  float64
}

// Gradient describes a linear or radial fill in object coordinates.
// For linear gradients the axis runs from (X1,Y1) to (X2,Y2); for radial
// gradients (X1,Y1) is the center and R the outer radius.
type Gradient struct {
	Kind  GradientKind
	X1    float64
	Y1    float64
	X2    float64
	Y2    float64
	R     float64
	Stops []Stop
}

func (g *Gradient) clone() *Gradient {
	if g == nil {
		return nil
	}
	out := *g
	out.Stops = append([]Stop(nil), g.Stops...)
	return &out
}

// Object is one abstract draw command. Position is absolute in frame pixels
// and interpreted against the origin anchors; Mask, when set, is multiplied
// against the object's own pixels (multiply blend).
type Object struct {
	Kind    Kind
	Width   float64
	Height  float64
	X       float64
	Y       float64
	OriginX OriginX
	OriginY OriginY
	Opacity float64
	ScaleX  float64
	ScaleY  float64

	Color colorful.Color
	Fill  *Gradient

	Image image.Image

	Text     string
	FontSize float64
	Bold     bool

	Mask *Gradient

	Children []*Object
}

// Clone returns an independent copy of the object. Children and gradient
// stop slices are copied; pixel data is shared since commands never mutate it.
func (o *Object) Clone() *Object {
	out := *o
	out.Fill = o.Fill.clone()
	out.Mask = o.Mask.clone()
	if len(o.Children) > 0 {
		out.Children = make([]*Object, len(o.Children))
		for i, c := range o.Children {
			out.Children[i] = c.Clone()
		}
	}
	return &out
}

// Rect creates a flat-colored rectangle command.
func Rect(width, height float64, c colorful.Color) *Object {
	o := newObject(KindRect, width, height)
	o.Color = c
	return o
}

// GradientRect creates a rectangle command filled with a gradient.
func GradientRect(width, height float64, fill *Gradient) *Object {
	o := newObject(KindRect, width, height)
	o.Fill = fill
	return o
}

// Image creates an image command sized from the image bounds.
func Image(img image.Image) *Object {
	b := img.Bounds()
	o := newObject(KindImage, float64(b.Dx()), float64(b.Dy()))
	o.Image = img
	return o
}

// Text creates a text command. Width and height come from the caller's
// measurement since layout lives in the loader, not here.
func Text(s string, fontSize, width, height float64, c colorful.Color) *Object {
	o := newObject(KindText, width, height)
	o.Text = s
	o.FontSize = fontSize
	o.Color = c
	return o
}

// Group creates a compound command drawn as one unit, children in order.
func Group(children ...*Object) *Object {
	var w, h float64
	for _, c := range children {
		if c.Width > w {
			w = c.Width
		}
		if c.Height > h {
			h = c.Height
		}
	}
	o := newObject(KindGroup, w, h)
	o.Children = children
	return o
}

func newObject(kind Kind, width, height float64) *Object {
	return &Object{
		Kind:    kind,
		Width:   width,
		Height:  height,
		OriginX: OriginLeft,
		OriginY: OriginTop,
		Opacity: 1,
		ScaleX:  1,
		ScaleY:  1,
	}
}

// Sink accepts draw commands in back-to-front order.
type Sink interface {
	Add(obj *Object) error
}

// ParseColor parses a #rrggbb hex string into a color.
func ParseColor(hex string) (colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("canvas: bad color %q: %w", hex, err)
	}
	return c, nil
}
