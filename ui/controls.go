package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"
)

// Steps-per-update bounds for the slider and the ,/. keys.
const (
	MinSteps = 1
	MaxSteps = 20
)

// ControlActions reports what the user clicked this frame.
type ControlActions struct {
	TogglePause bool
	Reseed      bool
	Capture     bool
	Steps       int // New steps-per-update value, 0 when unchanged
}

// Controls is the raygui button strip along the top-right edge.
type Controls struct {
	theme Theme
	x, y  float32
}

// NewControls creates a control strip anchored to the right edge of a
// screen of the given width.
func NewControls(screenWidth int32) *Controls {
	c := &Controls{theme: DefaultTheme()}
	c.SetScreenWidth(screenWidth)
	return c
}

// SetScreenWidth re-anchors the strip after a resize.
func (c *Controls) SetScreenWidth(screenWidth int32) {
	c.x = float32(screenWidth - c.theme.PanelWidth - c.theme.Padding)
	c.y = float32(c.theme.Padding)
}

// Draw renders the strip and returns the actions triggered this frame.
// steps is the current steps-per-update value.
func (c *Controls) Draw(paused bool, steps int) ControlActions {
	t := c.theme
	h := float32(t.ControlsHeight)
	w := (float32(t.PanelWidth) - 2*float32(t.Padding)) / 3

	t.drawPanel(int32(c.x)-t.Padding/2, int32(c.y)-t.Padding/2, t.PanelWidth, int32(2*h)+2*t.Padding)

	pauseLabel := "Pause"
	if paused {
		pauseLabel = "Resume"
	}

	var actions ControlActions
	actions.TogglePause = gui.Button(rl.Rectangle{X: c.x, Y: c.y, Width: w, Height: h}, pauseLabel)
	actions.Reseed = gui.Button(rl.Rectangle{X: c.x + w + float32(t.Padding), Y: c.y, Width: w, Height: h}, "Reseed")
	actions.Capture = gui.Button(rl.Rectangle{X: c.x + 2*(w+float32(t.Padding)), Y: c.y, Width: w, Height: h}, "Capture")

	sliderY := c.y + h + float32(t.Padding)
	value := gui.SliderBar(
		rl.Rectangle{X: c.x + 50, Y: sliderY, Width: float32(t.PanelWidth) - 120, Height: h - 10},
		"Steps", fmt.Sprintf("%dx", steps),
		float32(steps), MinSteps, MaxSteps,
	)
	if next := ClampSteps(int(value + 0.5)); next != steps {
		actions.Steps = next
	}

	return actions
}

// ClampSteps restricts a steps-per-update value to [MinSteps, MaxSteps].
func ClampSteps(steps int) int {
	if steps < MinSteps {
		return MinSteps
	}
	if steps > MaxSteps {
		return MaxSteps
	}
	return steps
}
