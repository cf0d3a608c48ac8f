package entities

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/pthm-cable/pond/canvas"
	"github.com/pthm-cable/pond/geom"
)

// FlightMode selects how a fly moves.
type FlightMode uint8

const (
	Hover FlightMode = iota // Shaky in-place jitter
	Flit                    // Static variant: no motion
)

func (m FlightMode) String() string {
	if m == Flit {
		return "flit"
	}
	return "hover"
}

const flyDiameter = 5.0

// Fly is a yellow speck. Flies never die.
type Fly struct {
	Pos  geom.Point
	Mode FlightMode

	jitter distuv.Uniform
}

// NewFly creates a fly at pos. Each hover tick offsets X then Y by an
// independent draw from [-jitter, jitter] taken from src.
func NewFly(pos geom.Point, mode FlightMode, jitter float64, src rand.Source) *Fly {
	return &Fly{
		Pos:    pos,
		Mode:   mode,
		jitter: distuv.Uniform{Min: -jitter, Max: jitter, Src: src},
	}
}

// Update jitters the fly. Positions are not clamped.
func (f *Fly) Update() {
	if f.Mode != Hover {
		return
	}
	f.Pos.X += f.jitter.Rand()
	f.Pos.Y += f.jitter.Rand()
}

// Display draws the fly as a small filled dot.
func (f *Fly) Display(s canvas.Surface) {
	s.Ellipse(f.Pos, flyDiameter, flyDiameter, canvas.Yellow, canvas.Stroke{})
}
