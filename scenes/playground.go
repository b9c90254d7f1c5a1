package scenes

import (
	"sync"

	"github.com/automoto/jumplab/systems"
	"github.com/automoto/jumplab/systems/factory"
	"github.com/automoto/jumplab/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlaygroundScene runs the jump tuning playground: one level, one player,
// and the live tuning panel.
type PlaygroundScene struct {
	ecs      *ecs.ECS
	tuningUI *ui.TuningUI
	once     sync.Once
}

func NewPlaygroundScene() *PlaygroundScene {
	return &PlaygroundScene{}
}

func (ps *PlaygroundScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	tuning := systems.GetOrCreateTuning(ps.ecs)
	if tuning.PanelOpen {
		ps.tuningUI.Update()
	}
}

func (ps *PlaygroundScene) Draw(screen *ebiten.Image) {
	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)

	tuning := systems.GetOrCreateTuning(ps.ecs)
	if tuning.PanelOpen {
		ps.tuningUI.UI.Draw(screen)
	}
}

func (ps *PlaygroundScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateTuning)
	e.AddSystem(systems.UpdateDebug)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateCollisions)
	e.AddSystem(systems.UpdateFloatingPlatforms)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(ecs.LayerDefault, systems.DrawLevel)
	e.AddRenderer(ecs.LayerDefault, systems.DrawArcPreview)
	e.AddRenderer(ecs.LayerDefault, systems.DrawPlayer)
	e.AddRenderer(ecs.LayerDefault, systems.DrawHUD)
	e.AddRenderer(ecs.LayerDefault, systems.DrawDebug)

	ps.ecs = e

	// The space is sized from the map, so parse the map before spawning
	// any geometry.
	levelData, err := factory.LoadLevelData()
	if err != nil {
		panic("failed to load level: " + err.Error())
	}

	factory.CreateSpace(e,
		int(levelData.Width),
		int(levelData.Height),
		16, 16,
	)
	factory.CreateCamera(e)
	factory.CreateLevel(e, levelData)
	factory.CreatePlayer(e, levelData.SpawnX, levelData.SpawnY)

	tuning := systems.GetOrCreateTuning(e)
	if saved, err := systems.LoadTuning(); err == nil && saved != nil {
		systems.ApplySavedTuning(tuning, saved)
	}

	ps.tuningUI = ui.NewTuningUI(tuning)
}
