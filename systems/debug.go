package systems

import (
	"image/color"

	"github.com/automoto/jumplab/components"
	cfg "github.com/automoto/jumplab/config"
	"github.com/automoto/jumplab/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the collision overlay.
func UpdateDebug(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	settings := GetOrCreateSettings(ecs)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
}

// DrawDebug outlines every collision object in the space.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	camX, camY := cameraOffset(ecs)
	viewW := float64(screen.Bounds().Dx())
	viewH := float64(screen.Bounds().Dy())

	for _, obj := range space.Objects() {
		// Cull objects outside viewport
		if obj.X+obj.W < camX || obj.X > camX+viewW || obj.Y+obj.H < camY || obj.Y > camY+viewH {
			continue
		}

		x := obj.X - camX
		y := obj.Y - camY

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvSolid) {
			c = color.RGBA{100, 100, 100, 255}
		} else if obj.HasTags(tags.ResolvPlatform) {
			c = color.RGBA{0, 255, 0, 255}
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255}
		}

		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
		vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
		vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
	}
}
