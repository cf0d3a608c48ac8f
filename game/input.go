package game

import (
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pond/ui"
)

// handleInput processes keyboard input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	if rl.IsKeyPressed(rl.KeyR) {
		g.Reseed(timeSeed())
	}

	if rl.IsKeyPressed(rl.KeyS) {
		g.capture()
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) {
		g.stepsPerUpdate = ui.ClampSteps(g.stepsPerUpdate - 1)
	}
	if rl.IsKeyPressed(rl.KeyPeriod) {
		g.stepsPerUpdate = ui.ClampSteps(g.stepsPerUpdate + 1)
	}

	if rl.IsKeyPressed(rl.KeyD) {
		g.world.SetDebug(!g.world.Debug())
	}

	g.handleCameraInput()
	g.inspector.HandleInput(g.world, g.camera)
}

// applyControls acts on the buttons clicked during the previous Draw.
func (g *Game) applyControls() {
	a := g.pending
	g.pending = ui.ControlActions{}

	if a.TogglePause {
		g.paused = !g.paused
	}
	if a.Reseed {
		g.Reseed(timeSeed())
	}
	if a.Capture {
		g.capture()
	}
	if a.Steps != 0 {
		g.stepsPerUpdate = ui.ClampSteps(a.Steps)
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h
	g.camera.Resize(w, h)
	g.controls.SetScreenWidth(int32(w))
	g.inspector.Resize(int32(w), int32(h))
}

// handleCameraInput processes camera pan/zoom controls.
func (g *Game) handleCameraInput() {
	panSpeed := float32(g.cfg.View.PanSpeed)

	if rl.IsKeyDown(rl.KeyRight) {
		g.camera.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		g.camera.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		g.camera.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		g.camera.Pan(0, -panSpeed)
	}

	// Zoom toward the cursor
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		mouse := rl.GetMousePosition()
		g.camera.ZoomAt(mouse.X, mouse.Y, 1+wheel*0.1)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
	}
}

// capture saves the current frame as <title>.png in the working directory.
func (g *Game) capture() {
	name := g.cfg.Screen.Title + ".png"
	rl.TakeScreenshot(name)
	slog.Info("capture", "file", name, "tick", g.world.Tick(), "seed", g.world.Seed())
}

func timeSeed() uint64 {
	return uint64(time.Now().UnixNano())
}
