package world

import (
	"github.com/pthm-cable/pond/canvas"
	"github.com/pthm-cable/pond/geom"
)

const guideWidth = 1.0

// drawBackdrop draws the red axes and the tick marks along them.
// Every MajorEvery-th tick (starting at the origin) is magenta.
func (w *World) drawBackdrop(s canvas.Surface) {
	g := w.cfg.Grid
	size := float64(g.Size)

	s.Line(geom.Point{X: -g.AxisExtent}, geom.Point{X: g.AxisExtent}, guideWidth, canvas.Red)
	s.Line(geom.Point{Y: -g.AxisExtent}, geom.Point{Y: g.AxisExtent}, guideWidth, canvas.Red)

	for n := 0; n < g.Rows; n++ {
		y := float64(n) * size
		s.Line(geom.Point{X: -g.TickHalf, Y: y}, geom.Point{X: g.TickHalf, Y: y}, guideWidth, tickColor(n, g.MajorEvery))
	}
	for n := 0; n < g.Cols; n++ {
		x := float64(n) * size
		s.Line(geom.Point{X: x, Y: -g.TickHalf}, geom.Point{X: x, Y: g.TickHalf}, guideWidth, tickColor(n, g.MajorEvery))
	}
}

func tickColor(n, majorEvery int) canvas.Color {
	if n%majorEvery == 0 {
		return canvas.Magenta
	}
	return canvas.White
}

// drawDebug overlays each frog's gape limits and each fern's height cap.
func (w *World) drawDebug(s canvas.Surface) {
	frogQuery := w.frogFilter.Query()
	for frogQuery.Next() {
		f := frogQuery.Get()
		m := f.Motion()
		s.Line(f.Body, geom.PointOnCircle(f.Body, f.Size, m.MouthMax), guideWidth, canvas.Gray)
		s.Line(f.Body, geom.PointOnCircle(f.Body, f.Size, m.MouthMin), guideWidth, canvas.Gray)
	}

	half := w.cfg.Grid.TickHalf / 2
	fernQuery := w.fernFilter.Query()
	for fernQuery.Next() {
		f := fernQuery.Get()
		capY := f.Base.Y + f.HeightCap
		s.Line(geom.Point{X: f.Base.X - half, Y: capY}, geom.Point{X: f.Base.X + half, Y: capY}, guideWidth, canvas.Gray)
	}
}
