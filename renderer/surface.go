// Package renderer draws canvas primitives into the raylib window.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pond/camera"
	"github.com/pthm-cable/pond/canvas"
	"github.com/pthm-cable/pond/geom"
)

// Surface implements canvas.Surface on top of raylib, mapping world units
// through a camera. Must be used between rl.BeginDrawing and rl.EndDrawing.
type Surface struct {
	cam *camera.Camera
}

var _ canvas.Surface = (*Surface)(nil)

// NewSurface creates a surface that projects through cam.
func NewSurface(cam *camera.Camera) *Surface {
	return &Surface{cam: cam}
}

// Clear fills the frame.
func (s *Surface) Clear(c canvas.Color) {
	rl.ClearBackground(toRL(c))
}

// Line draws a segment. Widths are scaled by zoom but never drop below
// one pixel so the grid stays visible when zoomed out.
func (s *Surface) Line(start, end geom.Point, width float64, c canvas.Color) {
	rl.DrawLineEx(s.project(start), s.project(end), s.thickness(width), toRL(c))
}

// Ellipse draws the outline first as a larger ellipse, then the fill on top.
func (s *Surface) Ellipse(center geom.Point, width, height float64, fill canvas.Color, stroke canvas.Stroke) {
	p := s.project(center)
	cx, cy := int32(p.X), int32(p.Y)
	rx := s.cam.Scale(float32(width / 2))
	ry := s.cam.Scale(float32(height / 2))

	if stroke.Width > 0 {
		half := s.thickness(stroke.Width) / 2
		rl.DrawEllipse(cx, cy, rx+half, ry+half, toRL(stroke.Color))
	}
	rl.DrawEllipse(cx, cy, rx, ry, toRL(fill))
}

func (s *Surface) project(p geom.Point) rl.Vector2 {
	x, y := s.cam.WorldToScreen(float32(p.X), float32(p.Y))
	return rl.NewVector2(x, y)
}

func (s *Surface) thickness(width float64) float32 {
	t := s.cam.Scale(float32(width))
	if t < 1 {
		return 1
	}
	return t
}

func toRL(c canvas.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}
