// Package inspector lets the user click an entity and read its state.
package inspector

import (
	"fmt"

	"github.com/pthm-cable/pond/entities"
	"github.com/pthm-cable/pond/geom"
	"github.com/pthm-cable/pond/world"
)

// Row is one labelled value in the inspector panel.
type Row struct {
	Label string
	Value string
}

// Anchor returns the point a click must land near to pick e.
func Anchor(e entities.Entity) geom.Point {
	switch v := e.(type) {
	case *entities.Fly:
		return v.Pos
	case *entities.Frog:
		return v.Body
	case *entities.Fern:
		return v.Top()
	}
	return geom.Point{}
}

// Nearest returns the visiting-order index of the entity whose anchor is
// closest to p and no farther than maxDist.
func Nearest(w *world.World, p geom.Point, maxDist float64) (int, bool) {
	best := -1
	bestDist := maxDist * maxDist
	i := 0
	w.Each(func(_ entities.Kind, e entities.Entity) {
		a := Anchor(e)
		dx, dy := a.X-p.X, a.Y-p.Y
		if d := dx*dx + dy*dy; d <= bestDist {
			best, bestDist = i, d
		}
		i++
	})
	return best, best >= 0
}

// At returns the entity at visiting-order index idx.
func At(w *world.World, idx int) (entities.Kind, entities.Entity, bool) {
	var (
		kind  entities.Kind
		found entities.Entity
	)
	i := 0
	w.Each(func(k entities.Kind, e entities.Entity) {
		if i == idx {
			kind, found = k, e
		}
		i++
	})
	return kind, found, found != nil
}

// Describe lists the displayable state of e.
func Describe(e entities.Entity) []Row {
	switch v := e.(type) {
	case *entities.Fly:
		return []Row{
			{"Position", point(v.Pos)},
			{"Mode", v.Mode.String()},
		}
	case *entities.Frog:
		m := v.Motion()
		return []Row{
			{"Body", point(v.Body)},
			{"Size", fmt.Sprintf("%.0f", v.Size)},
			{"Mouth", fmt.Sprintf("%.1f° (%.0f..%.0f)", v.MouthAngle, m.MouthMin, m.MouthMax)},
			{"Phase", v.Phase.String()},
			{"Resting", fmt.Sprintf("%t", v.Resting())},
		}
	case *entities.Fern:
		return []Row{
			{"Base", point(v.Base)},
			{"Height", fmt.Sprintf("%.0f / %.0f", v.Height, v.HeightCap)},
			{"Age", fmt.Sprintf("%d / %d", v.Age, v.AgeCap)},
			{"Stage", v.Stage.String()},
			{"Color", fmt.Sprintf("(%d, %d, %d)", v.Color.R, v.Color.G, v.Color.B)},
		}
	}
	return nil
}

func point(p geom.Point) string {
	return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
}
