package world

import (
	"github.com/pthm-cable/pond/canvas"
	"github.com/pthm-cable/pond/config"
	"github.com/pthm-cable/pond/entities"
	"github.com/pthm-cable/pond/geom"
)

// populate creates the initial entities. Random draws are consumed in a
// fixed order so a seed always reproduces the same pond:
//
//	flies: x, y
//	frogs: x, y, mouth angle, size, phase
//	ferns: x, height cap, age cap, red, green, blue
func (w *World) populate() {
	cfg := w.cfg
	lineWidth := cfg.Grid.LineWidth

	mode := entities.Flit
	if cfg.Fly.Mode == config.FlyModeHover {
		mode = entities.Hover
	}
	for i := 0; i < cfg.Population.Flies; i++ {
		pos := w.drawPoint(cfg.Population.FlyArea)
		w.flies.NewEntity(entities.NewFly(pos, mode, cfg.Fly.Jitter, w.src))
	}

	motion := entities.FrogMotion{
		MouthMin:   cfg.Frog.MouthMin,
		MouthMax:   cfg.Frog.MouthMax,
		MouthSpeed: cfg.Frog.MouthSpeed,
		Floor:      cfg.Frog.Floor,
		SinkRate:   cfg.Frog.SinkRate,
	}
	for i := 0; i < cfg.Population.Frogs; i++ {
		body := w.drawPoint(cfg.Population.FrogArea)
		angle := w.draw(cfg.Frog.MouthAngle)
		size := w.draw(cfg.Frog.Size)
		phase := entities.MouthPhase(w.rng.IntN(3))
		w.frogs.NewEntity(entities.NewFrog(body, size, angle, phase, motion, lineWidth))
	}

	for i := 0; i < cfg.Population.Ferns; i++ {
		base := geom.Point{X: w.draw(cfg.Population.FernSpan)}
		heightCap := w.draw(cfg.Fern.HeightCap)
		ageCap := w.drawInt(cfg.Fern.AgeCap)
		color := canvas.Color{
			R: uint8(w.drawInt(cfg.Fern.Red)),
			G: uint8(w.drawInt(cfg.Fern.Green)),
			B: uint8(w.drawInt(cfg.Fern.Blue)),
		}
		w.ferns.NewEntity(entities.NewFern(base, heightCap, ageCap, color, cfg.Fern.GrowthRate, lineWidth))
	}
}

// drawInt returns a uniform integer in [r.Min, r.Max).
func (w *World) drawInt(r config.Range) int {
	return r.Min + w.rng.IntN(r.Max-r.Min)
}

func (w *World) draw(r config.Range) float64 {
	return float64(w.drawInt(r))
}

func (w *World) drawPoint(a config.Area) geom.Point {
	x := w.draw(a.X)
	y := w.draw(a.Y)
	return geom.Point{X: x, Y: y}
}
