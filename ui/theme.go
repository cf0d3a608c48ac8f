// Package ui draws the pond's HUD and on-screen controls over the scene.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg     rl.Color
	PanelBorder rl.Color
	Title       rl.Color
	Text        rl.Color
	Status      rl.Color
	Legend      rl.Color

	// Fern stage bar segments
	Juvenile rl.Color
	Adult    rl.Color
	Dead     rl.Color

	Padding        int32
	LineHeight     int32
	FontSize       int32
	TitleFontSize  int32
	BarHeight      int32
	PanelWidth     int32
	ControlsHeight int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 200},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		Title:          rl.White,
		Text:           rl.LightGray,
		Status:         rl.Yellow,
		Legend:         rl.Gray,
		Juvenile:       rl.Color{R: 75, G: 225, B: 75, A: 255},
		Adult:          rl.Color{R: 46, G: 139, B: 87, A: 255},
		Dead:           rl.Color{R: 255, G: 0, B: 75, A: 255},
		Padding:        10,
		LineHeight:     20,
		FontSize:       16,
		TitleFontSize:  20,
		BarHeight:      8,
		PanelWidth:     300,
		ControlsHeight: 30,
	}
}

// drawPanel draws a panel background with border.
func (t Theme) drawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, t.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, t.PanelBorder)
}
