package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pond/ui"
)

// Draw renders the pond and the overlays on top of it.
func (g *Game) Draw() {
	rl.BeginDrawing()

	g.world.Render(g.surface)
	g.inspector.Draw(g.world, g.camera)

	g.hud.Draw(g.hudData())
	g.hud.DrawControls(int32(g.screenHeight))
	g.pending = g.controls.Draw(g.paused, g.stepsPerUpdate)

	rl.EndDrawing()
	g.perfCollector.RecordFrame()
}

// hudData gathers what the HUD shows this frame.
func (g *Game) hudData() ui.HUDData {
	census := g.world.Census()
	flies, frogs, ferns := g.world.Counts()
	return ui.HUDData{
		Title:         g.cfg.Screen.Title,
		Flies:         flies,
		Frogs:         frogs,
		FrogsResting:  census.FrogsResting,
		Ferns:         ferns,
		FernsJuvenile: census.FernsJuvenile,
		FernsAdult:    census.FernsAdult,
		FernsDead:     census.FernsDead,
		Tick:          g.world.Tick(),
		Seed:          g.world.Seed(),
		Steps:         g.stepsPerUpdate,
		FPS:           rl.GetFPS(),
		Paused:        g.paused,
		Debug:         g.world.Debug(),
	}
}
