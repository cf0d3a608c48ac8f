package camera

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) <= 0.01
}

func TestNew(t *testing.T) {
	cam := New(1070, 1070, 400, 400, 0.25, 4)

	if cam.X != 400 || cam.Y != 400 {
		t.Errorf("expected camera at (400, 400), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}

func TestWorldToScreenFlipsY(t *testing.T) {
	cam := New(1000, 800, 0, 0, 0.25, 4)

	tests := []struct {
		name   string
		wx, wy float32
		sx, sy float32
	}{
		{"center", 0, 0, 500, 400},
		{"up is toward the top", 0, 100, 500, 300},
		{"right stays right", 100, 0, 600, 400},
		{"below origin", -50, -50, 450, 450},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := cam.WorldToScreen(tt.wx, tt.wy)
			if !near(sx, tt.sx) || !near(sy, tt.sy) {
				t.Errorf("WorldToScreen(%v, %v) = (%v, %v), want (%v, %v)", tt.wx, tt.wy, sx, sy, tt.sx, tt.sy)
			}
		})
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, 300, 200, 0.25, 4)
	cam.SetZoom(2)

	testCases := []struct{ sx, sy float32 }{
		{640, 360},  // center
		{100, 100},  // top-left
		{1200, 600}, // near bottom-right
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if !near(sx, tc.sx) || !near(sy, tc.sy) {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestPan(t *testing.T) {
	cam := New(800, 800, 0, 0, 0.25, 4)
	cam.SetZoom(2)

	cam.Pan(20, 40)
	if !near(cam.X, 10) || !near(cam.Y, -20) {
		t.Errorf("after pan camera at (%f, %f), want (10, -20)", cam.X, cam.Y)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(800, 800, 0, 0, 0.25, 4)

	cam.SetZoom(10)
	if cam.Zoom != 4 {
		t.Errorf("zoom = %f, want clamp to 4", cam.Zoom)
	}
	cam.SetZoom(0.01)
	if cam.Zoom != 0.25 {
		t.Errorf("zoom = %f, want clamp to 0.25", cam.Zoom)
	}
}

func TestZoomAtKeepsPointFixed(t *testing.T) {
	cam := New(800, 600, 400, 400, 0.25, 4)

	wx, wy := cam.ScreenToWorld(100, 500)
	cam.ZoomAt(100, 500, 1.5)
	sx, sy := cam.WorldToScreen(wx, wy)

	if !near(sx, 100) || !near(sy, 500) {
		t.Errorf("anchor moved to (%f, %f)", sx, sy)
	}
	if !near(cam.Zoom, 1.5) {
		t.Errorf("zoom = %f, want 1.5", cam.Zoom)
	}
}

func TestScale(t *testing.T) {
	cam := New(800, 800, 0, 0, 0.25, 4)
	cam.SetZoom(0.5)
	if got := cam.Scale(10); got != 5 {
		t.Errorf("Scale(10) = %f, want 5", got)
	}
}

func TestReset(t *testing.T) {
	cam := New(800, 800, 400, 400, 0.25, 4)
	cam.Pan(123, -45)
	cam.SetZoom(3)

	cam.Reset()
	if cam.X != 400 || cam.Y != 400 || cam.Zoom != 1 {
		t.Errorf("after reset camera at (%f, %f) zoom %f", cam.X, cam.Y, cam.Zoom)
	}
}
