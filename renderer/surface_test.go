package renderer

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pond/camera"
	"github.com/pthm-cable/pond/canvas"
	"github.com/pthm-cable/pond/geom"
)

func TestProjectFollowsCamera(t *testing.T) {
	cam := camera.New(800, 600, 100, 100, 0.25, 4)
	s := NewSurface(cam)

	got := s.project(geom.Point{X: 100, Y: 150})
	if got.X != 400 || got.Y != 250 {
		t.Errorf("project = (%v, %v), want (400, 250)", got.X, got.Y)
	}
}

func TestThicknessHasFloor(t *testing.T) {
	cam := camera.New(800, 600, 0, 0, 0.25, 4)
	s := NewSurface(cam)

	cam.SetZoom(0.25)
	if got := s.thickness(2); got != 1 {
		t.Errorf("thickness at 0.25x = %v, want 1", got)
	}
	cam.SetZoom(2)
	if got := s.thickness(2); got != 4 {
		t.Errorf("thickness at 2x = %v, want 4", got)
	}
}

func TestToRLIsOpaque(t *testing.T) {
	got := toRL(canvas.SeaGreen)
	want := rl.Color{R: 46, G: 139, B: 87, A: 255}
	if got != want {
		t.Errorf("toRL(SeaGreen) = %+v, want %+v", got, want)
	}
}
