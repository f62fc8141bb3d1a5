package frames

import (
	"github.com/ivlev/framefx/pkg/canvas"
	"github.com/ivlev/framefx/pkg/config"
)

// positionMargin keeps edge-anchored content off the exact frame border.
const positionMargin = 0.05

// placement is a resolved absolute-pixel position with origin anchors.
type placement struct {
	x, y    float64
	originX canvas.OriginX
	originY canvas.OriginY
}

// resolvePlacement turns a layer's named position or ratio coordinates into
// frame pixels. Explicit X/Y ratios override the named anchor's coordinates
// but keep its origins.
func resolvePlacement(layer config.Layer, width, height int) placement {
	w, h := float64(width), float64(height)
	m := positionMargin

	p := placement{x: w / 2, y: h / 2, originX: canvas.OriginCenterX, originY: canvas.OriginCenterY}

	switch layer.Position {
	case "top":
		p = placement{x: w / 2, y: h * m, originX: canvas.OriginCenterX, originY: canvas.OriginTop}
	case "bottom":
		p = placement{x: w / 2, y: h * (1 - m), originX: canvas.OriginCenterX, originY: canvas.OriginBottom}
	case "left":
		p = placement{x: w * m, y: h / 2, originX: canvas.OriginLeft, originY: canvas.OriginCenterY}
	case "right":
		p = placement{x: w * (1 - m), y: h / 2, originX: canvas.OriginRight, originY: canvas.OriginCenterY}
	case "top-left":
		p = placement{x: w * m, y: h * m, originX: canvas.OriginLeft, originY: canvas.OriginTop}
	case "top-right":
		p = placement{x: w * (1 - m), y: h * m, originX: canvas.OriginRight, originY: canvas.OriginTop}
	case "bottom-left":
		p = placement{x: w * m, y: h * (1 - m), originX: canvas.OriginLeft, originY: canvas.OriginBottom}
	case "bottom-right":
		p = placement{x: w * (1 - m), y: h * (1 - m), originX: canvas.OriginRight, originY: canvas.OriginBottom}
	case "center", "":
		// Defaults above.
	}

	if layer.X != nil {
		p.x = w * (*layer.X)
	}
	if layer.Y != nil {
		p.y = h * (*layer.Y)
	}

	return p
}
