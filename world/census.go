package world

import "github.com/pthm-cable/pond/entities"

// Census is a read-only sample of the population, taken for telemetry.
type Census struct {
	Tick int64

	FlyX []float64
	FlyY []float64

	MouthAngles  []float64
	FrogsResting int

	FernHeights   []float64
	FernsJuvenile int
	FernsAdult    int
	FernsDead     int
}

// Census samples the current population.
func (w *World) Census() Census {
	flies, frogs, ferns := w.Counts()
	c := Census{
		Tick:        w.tick,
		FlyX:        make([]float64, 0, flies),
		FlyY:        make([]float64, 0, flies),
		MouthAngles: make([]float64, 0, frogs),
		FernHeights: make([]float64, 0, ferns),
	}

	w.Each(func(_ entities.Kind, e entities.Entity) {
		switch v := e.(type) {
		case *entities.Fly:
			c.FlyX = append(c.FlyX, v.Pos.X)
			c.FlyY = append(c.FlyY, v.Pos.Y)
		case *entities.Frog:
			c.MouthAngles = append(c.MouthAngles, v.MouthAngle)
			if v.Resting() {
				c.FrogsResting++
			}
		case *entities.Fern:
			c.FernHeights = append(c.FernHeights, v.Height)
			switch v.Stage {
			case entities.Juvenile:
				c.FernsJuvenile++
			case entities.Adult:
				c.FernsAdult++
			case entities.Dead:
				c.FernsDead++
			}
		}
	})

	return c
}
