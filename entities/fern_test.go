package entities

import (
	"testing"

	"github.com/pthm-cable/pond/canvas"
	"github.com/pthm-cable/pond/geom"
)

var fernGreen = canvas.Color{R: 80, G: 220, B: 60}

func TestFernGrowsToAdult(t *testing.T) {
	f := NewFern(geom.Point{X: 300}, 150, 1000, fernGreen, 1.0, 2)

	for i := 0; i < 150; i++ {
		if f.Stage != Juvenile {
			t.Fatalf("tick %d: stage %v before reaching cap", i, f.Stage)
		}
		f.Update()
	}

	if f.Height != 150 {
		t.Errorf("height = %v, want 150", f.Height)
	}
	if f.Stage != Adult {
		t.Errorf("stage = %v, want adult", f.Stage)
	}

	f.Update()
	if f.Height != 150 {
		t.Errorf("height after tick 151 = %v, want 150", f.Height)
	}
	if f.Stage != Adult {
		t.Errorf("stage after tick 151 = %v, want adult", f.Stage)
	}
}

func TestFernDiesAtAgeCap(t *testing.T) {
	f := NewFern(geom.Point{X: 10}, 1000, 10, fernGreen, 1.0, 2)

	for i := 0; i < 9; i++ {
		f.Update()
	}
	if f.Stage != Juvenile {
		t.Fatalf("stage after 9 ticks = %v, want juvenile", f.Stage)
	}

	f.Update()
	if f.Stage != Dead {
		t.Errorf("stage = %v, want dead", f.Stage)
	}
	want := canvas.Color{R: 255, G: 0, B: fernGreen.B}
	if f.Color != want {
		t.Errorf("color = %+v, want %+v", f.Color, want)
	}

	height := f.Height
	for i := 0; i < 20; i++ {
		f.Update()
	}
	if f.Stage != Dead || f.Height != height || f.Color != want {
		t.Errorf("dead fern changed: stage %v height %v color %+v", f.Stage, f.Height, f.Color)
	}
}

func TestFernAdultThenDead(t *testing.T) {
	f := NewFern(geom.Point{}, 5, 8, fernGreen, 1.0, 2)

	stages := make([]Stage, 0, 10)
	for i := 0; i < 10; i++ {
		f.Update()
		stages = append(stages, f.Stage)
	}

	want := []Stage{Juvenile, Juvenile, Juvenile, Juvenile, Adult, Adult, Adult, Dead, Dead, Dead}
	for i := range want {
		if stages[i] != want[i] {
			t.Errorf("tick %d: stage %v, want %v", i+1, stages[i], want[i])
		}
	}
	if f.Height != 5 {
		t.Errorf("height = %v, want 5", f.Height)
	}
}

func TestFernBothCapsSameTick(t *testing.T) {
	f := NewFern(geom.Point{}, 3, 3, fernGreen, 1.0, 2)
	for i := 0; i < 3; i++ {
		f.Update()
	}
	if f.Stage != Dead {
		t.Errorf("stage = %v, want dead when both caps hit together", f.Stage)
	}
}

func TestFernDisplay(t *testing.T) {
	f := NewFern(geom.Point{X: 42}, 150, 1000, fernGreen, 1.0, 2)
	for i := 0; i < 30; i++ {
		f.Update()
	}
	before := *f

	rec := canvas.NewRecorder()
	f.Display(rec)

	if *f != before {
		t.Error("Display mutated the fern")
	}
	if len(rec.Commands) != 1 {
		t.Fatalf("got %d commands, want 1", len(rec.Commands))
	}
	c := rec.Commands[0]
	if c.Op != canvas.OpLine {
		t.Fatalf("op = %v, want line", c.Op)
	}
	if c.From != (geom.Point{X: 42, Y: 0}) || c.To != (geom.Point{X: 42, Y: 30}) {
		t.Errorf("line %v -> %v, want (42,0) -> (42,30)", c.From, c.To)
	}
	if c.Color != fernGreen || c.Width != 2 {
		t.Errorf("unexpected style %+v", c)
	}
}
