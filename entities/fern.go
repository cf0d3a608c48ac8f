package entities

import (
	"github.com/pthm-cable/pond/canvas"
	"github.com/pthm-cable/pond/geom"
)

// Stage is a fern's lifecycle stage. Stages only move forward.
type Stage uint8

const (
	Juvenile Stage = iota
	Adult
	Dead
)

func (s Stage) String() string {
	switch s {
	case Juvenile:
		return "juvenile"
	case Adult:
		return "adult"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

// Fern is a single vertical stalk that grows to its height cap and turns red
// when it reaches its age cap. Dead ferns stay in place.
type Fern struct {
	Base      geom.Point
	HeightCap float64
	Height    float64
	Age       int
	AgeCap    int
	Stage     Stage
	Color     canvas.Color

	growthRate float64
	lineWidth  float64
}

// NewFern creates a juvenile fern of zero height.
func NewFern(base geom.Point, heightCap float64, ageCap int, color canvas.Color, growthRate, lineWidth float64) *Fern {
	return &Fern{
		Base:       base,
		HeightCap:  heightCap,
		AgeCap:     ageCap,
		Stage:      Juvenile,
		Color:      color,
		growthRate: growthRate,
		lineWidth:  lineWidth,
	}
}

// Update ages the fern, grows it while juvenile and applies stage changes.
// Age is checked after height, so a fern that hits both caps on the same
// tick ends it dead.
func (f *Fern) Update() {
	f.Age++

	if f.Stage == Juvenile {
		f.Height += f.growthRate
	}

	if f.Stage == Juvenile && f.Height >= f.HeightCap {
		f.Stage = Adult
	}

	if f.Age >= f.AgeCap {
		f.Stage = Dead
		f.Color.R = 255
		f.Color.G = 0
	}
}

// Top returns the tip of the stalk.
func (f *Fern) Top() geom.Point {
	return f.Base.Add(0, f.Height)
}

// Display draws the stalk from its base up to the current height.
func (f *Fern) Display(s canvas.Surface) {
	s.Line(f.Base, f.Top(), f.lineWidth, f.Color)
}
