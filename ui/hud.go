package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlsLegend lists the keyboard bindings shown at the bottom of the screen.
const ControlsLegend = "Space: pause | R: reseed | S: capture | ,/.: steps | Arrows: pan | Wheel: zoom | Home: reset view | D: debug"

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title string

	Flies         int
	Frogs         int
	FrogsResting  int
	Ferns         int
	FernsJuvenile int
	FernsAdult    int
	FernsDead     int

	Tick   int64
	Seed   uint64
	Steps  int
	FPS    int32
	Paused bool
	Debug  bool
}

// Lines returns the HUD text rows below the title.
func (d HUDData) Lines() []string {
	return []string{
		fmt.Sprintf("Flies: %d | Frogs: %d (%d resting) | Ferns: %d", d.Flies, d.Frogs, d.FrogsResting, d.Ferns),
		fmt.Sprintf("Ferns: %d juvenile / %d adult / %d dead", d.FernsJuvenile, d.FernsAdult, d.FernsDead),
		fmt.Sprintf("Tick: %d | Steps: %dx | FPS: %d", d.Tick, d.Steps, d.FPS),
		fmt.Sprintf("Seed: %d", d.Seed),
	}
}

// Status returns the run state label.
func (d HUDData) Status() string {
	status := "Running"
	if d.Paused {
		status = "PAUSED"
	}
	if d.Debug {
		status += " | debug"
	}
	return status
}

// StageWidths splits total pixels between the juvenile, adult and dead
// segments of the fern stage bar. Rounding slack goes to the dead segment.
func (d HUDData) StageWidths(total int32) (juvenile, adult, dead int32) {
	sum := d.FernsJuvenile + d.FernsAdult + d.FernsDead
	if sum == 0 {
		return 0, 0, 0
	}
	juvenile = total * int32(d.FernsJuvenile) / int32(sum)
	adult = total * int32(d.FernsAdult) / int32(sum)
	dead = total - juvenile - adult
	return juvenile, adult, dead
}

// HUD renders the main heads-up display.
type HUD struct {
	theme Theme
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{theme: DefaultTheme()}
}

// Draw renders the HUD panel in the top-left corner.
func (h *HUD) Draw(data HUDData) {
	t := h.theme
	lines := data.Lines()
	height := t.Padding*2 + t.LineHeight*int32(len(lines)+2) + t.BarHeight
	t.drawPanel(0, 0, t.PanelWidth, height)

	x, y := t.Padding, t.Padding
	rl.DrawText(data.Title, x, y, t.TitleFontSize, t.Title)
	y += t.LineHeight + 4

	for _, line := range lines {
		rl.DrawText(line, x, y, t.FontSize, t.Text)
		y += t.LineHeight
	}

	barW := t.PanelWidth - 2*t.Padding
	juv, adult, dead := data.StageWidths(barW)
	rl.DrawRectangle(x, y, juv, t.BarHeight, t.Juvenile)
	rl.DrawRectangle(x+juv, y, adult, t.BarHeight, t.Adult)
	rl.DrawRectangle(x+juv+adult, y, dead, t.BarHeight, t.Dead)
	y += t.BarHeight + 4

	rl.DrawText(data.Status(), x, y, t.FontSize, t.Status)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32) {
	rl.DrawText(ControlsLegend, 10, screenHeight-25, 14, h.theme.Legend)
}
