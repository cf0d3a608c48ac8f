package inspector

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pond/camera"
	"github.com/pthm-cable/pond/geom"
	"github.com/pthm-cable/pond/world"
)

// Panel dimensions
const (
	PanelWidth   = 260
	PanelPadding = 10
	HeaderHeight = 26
	RowHeight    = 18
	HitRadius    = 12 // Screen pixels around an anchor that select it
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 240}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorLabel       = rl.Color{R: 160, G: 160, B: 175, A: 255}
	ColorValue       = rl.Color{R: 220, G: 220, B: 230, A: 255}
	ColorHighlight   = rl.Color{R: 0, G: 200, B: 255, A: 255}
)

// Inspector manages entity selection and panel rendering.
type Inspector struct {
	selected    int
	hasSelected bool

	screenWidth  int32
	screenHeight int32
}

// NewInspector creates a new inspector instance.
func NewInspector(screenWidth, screenHeight int32) *Inspector {
	return &Inspector{screenWidth: screenWidth, screenHeight: screenHeight}
}

// Resize updates the screen size the panel is anchored to.
func (ins *Inspector) Resize(screenWidth, screenHeight int32) {
	ins.screenWidth = screenWidth
	ins.screenHeight = screenHeight
}

// HandleInput selects the entity under a left click; right click deselects.
func (ins *Inspector) HandleInput(w *world.World, cam *camera.Camera) {
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		ins.Deselect()
		return
	}
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}

	mouse := rl.GetMousePosition()
	wx, wy := cam.ScreenToWorld(mouse.X, mouse.Y)
	maxDist := float64(HitRadius / cam.Zoom)
	if idx, ok := Nearest(w, geom.Point{X: float64(wx), Y: float64(wy)}, maxDist); ok {
		ins.selected = idx
		ins.hasSelected = true
	}
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.hasSelected = false
}

// Selected returns the visiting-order index of the selected entity.
func (ins *Inspector) Selected() (int, bool) {
	return ins.selected, ins.hasSelected
}

// Draw highlights the selected entity and renders its panel in the
// bottom-right corner.
func (ins *Inspector) Draw(w *world.World, cam *camera.Camera) {
	if !ins.hasSelected {
		return
	}
	kind, e, ok := At(w, ins.selected)
	if !ok {
		ins.Deselect()
		return
	}

	a := Anchor(e)
	sx, sy := cam.WorldToScreen(float32(a.X), float32(a.Y))
	rl.DrawCircleLines(int32(sx), int32(sy), HitRadius, ColorHighlight)

	rows := Describe(e)
	height := int32(HeaderHeight + PanelPadding*2 + RowHeight*len(rows))
	x := ins.screenWidth - PanelWidth - PanelPadding
	y := ins.screenHeight - height - 40

	rl.DrawRectangle(x, y, PanelWidth, height, ColorPanelBg)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(x), Y: float32(y), Width: PanelWidth, Height: float32(height)},
		1,
		ColorPanelBorder,
	)
	rl.DrawRectangle(x, y, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawText(kind.String(), x+PanelPadding, y+6, 16, ColorHeaderText)

	rowY := y + HeaderHeight + PanelPadding
	for _, r := range rows {
		rl.DrawText(r.Label, x+PanelPadding, rowY, 14, ColorLabel)
		rl.DrawText(r.Value, x+PanelPadding+80, rowY, 14, ColorValue)
		rowY += RowHeight
	}
}
