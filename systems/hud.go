package systems

import (
	"fmt"

	"github.com/automoto/jumplab/components"
	cfg "github.com/automoto/jumplab/config"
	"github.com/automoto/jumplab/fonts"
	"github.com/automoto/jumplab/trajectory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMarginX    = 8
	hudLineHeight = 14
)

// DrawHUD shows the resolved jump numbers for the live tuning, so every
// height/frames edit is immediately visible as impulse and gravity.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	tuning := GetOrCreateTuning(e)
	hudFont := fonts.HUD.Get()

	y := hudLineHeight + 4
	drawProfileLine(screen, "ground", tuning.Ground, y)
	y += hudLineHeight
	drawProfileLine(screen, "double", tuning.Double, y)
	y += hudLineHeight
	drawProfileLine(screen, "wall", tuning.Wall, y)
	y += hudLineHeight

	text.Draw(screen, fmt.Sprintf("fall: %.0f frames", tuning.FallFrames), hudFont, hudMarginX, y, cfg.White)
	y += hudLineHeight

	if tuning.LastError != "" {
		text.Draw(screen, "! "+tuning.LastError, hudFont, hudMarginX, y, cfg.Red)
	}

	drawControlsHint(screen)
}

// drawProfileLine resolves one profile and prints both the designer inputs
// and the derived impulse/gravity pair.
func drawProfileLine(screen *ebiten.Image, name string, profile cfg.JumpProfile, y int) {
	hudFont := fonts.HUD.Get()

	arc, err := trajectory.FromHeightAndTime(profile.Height, profile.ApexFrames)
	if err != nil {
		line := fmt.Sprintf("%-6s h=%.0f t=%.0f  %v", name, profile.Height, profile.ApexFrames, err)
		text.Draw(screen, line, hudFont, hudMarginX, y, cfg.Orange)
		return
	}

	line := fmt.Sprintf("%-6s h=%.0f t=%.0f  v=%.2f g=%.3f",
		name, profile.Height, profile.ApexFrames, arc.Impulse(), arc.Gravity())
	text.Draw(screen, line, hudFont, hudMarginX, y, cfg.White)
}

func drawControlsHint(screen *ebiten.Image) {
	hint := "arrows/wasd move  space jump  tab tuning  c arc  r reset  f1 boxes"
	text.Draw(screen, hint, fonts.Small.Get(), hudMarginX, cfg.C.Height-6, cfg.LightBlue)
}

// GetOrCreateSettings returns the singleton settings component.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		settings := components.Settings.Get(entry)
		settings.Debug = cfg.Debug.ShowCollision
		return settings
	}
	return components.Settings.Get(entry)
}
