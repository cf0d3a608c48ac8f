// Package canvas defines the drawing capability the simulation renders into.
// The host environment supplies the concrete Surface; the simulation only
// emits primitives through it.
package canvas

import "github.com/pthm-cable/pond/geom"

// Color is an opaque RGB color with 0-255 channels.
type Color struct {
	R, G, B uint8
}

// Palette used by the entities and the reference grid.
var (
	Black    = Color{0, 0, 0}
	White    = Color{255, 255, 255}
	Red      = Color{255, 0, 0}
	Magenta  = Color{255, 0, 255}
	Yellow   = Color{255, 255, 0}
	SeaGreen = Color{46, 139, 87}
	Gray     = Color{128, 128, 128}
)

// Stroke outlines a filled shape. A zero Width means no outline.
type Stroke struct {
	Color Color
	Width float64
}

// Surface is the minimal drawing capability consumed by the simulation.
// Coordinates are world units with Y pointing up; mapping to pixels is the
// implementation's concern.
type Surface interface {
	// Clear fills the whole frame with c.
	Clear(c Color)
	// Line draws a segment from start to end.
	Line(start, end geom.Point, width float64, c Color)
	// Ellipse draws a filled ellipse of the given full width and height.
	Ellipse(center geom.Point, width, height float64, fill Color, stroke Stroke)
}
