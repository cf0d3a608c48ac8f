package entities

import (
	"github.com/pthm-cable/pond/canvas"
	"github.com/pthm-cable/pond/geom"
)

// MouthPhase is the direction the mouth is currently moving.
type MouthPhase uint8

const (
	Opening MouthPhase = iota
	Closing
	Static // Only ever an initial phase; the first tick leaves it
)

func (p MouthPhase) String() string {
	switch p {
	case Opening:
		return "opening"
	case Closing:
		return "closing"
	case Static:
		return "static"
	default:
		return "unknown"
	}
}

// FrogMotion holds the animation tunables shared by every frog.
type FrogMotion struct {
	MouthMin   float64 // Closing reverses once the angle drops below this
	MouthMax   float64 // Opening reverses once the angle exceeds this
	MouthSpeed float64 // Degrees per tick
	Floor      float64 // Body sinks while y > Floor
	SinkRate   float64 // Units per sinking tick
}

// DefaultFrogMotion returns the standard 0-40 degree gape.
func DefaultFrogMotion() FrogMotion {
	return FrogMotion{
		MouthMin:   0,
		MouthMax:   40,
		MouthSpeed: 0.2,
		Floor:      1,
		SinkRate:   1,
	}
}

const partDiameter = 10.0

// Frog is three dots joined by two strokes: a body, a foot straight out along
// +X and a head swung up by the mouth angle. Head and foot are never stored;
// they are always derived from the body, size and angle.
type Frog struct {
	Body       geom.Point
	Size       float64
	MouthAngle float64 // Degrees
	Phase      MouthPhase

	motion    FrogMotion
	lineWidth float64
}

// NewFrog creates a frog at body with the given part radius and mouth state.
func NewFrog(body geom.Point, size, mouthAngle float64, phase MouthPhase, motion FrogMotion, lineWidth float64) *Frog {
	return &Frog{
		Body:       body,
		Size:       size,
		MouthAngle: mouthAngle,
		Phase:      phase,
		motion:     motion,
		lineWidth:  lineWidth,
	}
}

// Head returns the head position.
func (f *Frog) Head() geom.Point {
	return geom.PointOnCircle(f.Body, f.Size, f.MouthAngle)
}

// Foot returns the foot position.
func (f *Frog) Foot() geom.Point {
	return geom.PointOnCircle(f.Body, f.Size, 0)
}

// Motion returns the frog's animation tunables.
func (f *Frog) Motion() FrogMotion {
	return f.motion
}

// Resting reports whether the frog has reached the floor.
func (f *Frog) Resting() bool {
	return f.Body.Y <= f.motion.Floor
}

// Update sinks the frog toward the floor and advances the mouth.
func (f *Frog) Update() {
	if f.Body.Y > f.motion.Floor {
		f.Body.Y -= f.motion.SinkRate
	}
	f.stepMouth()
}

// stepMouth advances the mouth by one tick. The opening rules run before the
// closing rules, so a frog that turns at the top starts closing in the same
// tick, while one that turns at the bottom holds for a tick.
func (f *Frog) stepMouth() {
	m := f.motion

	if f.Phase == Opening && f.MouthAngle <= m.MouthMax {
		f.MouthAngle += m.MouthSpeed
	} else if f.Phase == Opening && f.MouthAngle > m.MouthMax {
		f.Phase = Closing
	}

	if f.Phase == Closing && f.MouthAngle >= m.MouthMin {
		f.MouthAngle -= m.MouthSpeed
	} else if f.Phase == Closing && f.MouthAngle < m.MouthMin {
		f.Phase = Opening
	}

	if f.Phase == Static {
		f.Phase = Opening
	}
}

// Display draws the three parts, then the strokes joining them.
func (f *Frog) Display(s canvas.Surface) {
	head, foot := f.Head(), f.Foot()
	stroke := canvas.Stroke{Color: canvas.SeaGreen, Width: f.lineWidth}

	s.Ellipse(f.Body, partDiameter, partDiameter, canvas.SeaGreen, stroke)
	s.Ellipse(head, partDiameter, partDiameter, canvas.SeaGreen, stroke)
	s.Ellipse(foot, partDiameter, partDiameter, canvas.SeaGreen, stroke)

	s.Line(f.Body, head, f.lineWidth, canvas.SeaGreen)
	s.Line(f.Body, foot, f.lineWidth, canvas.SeaGreen)
}
