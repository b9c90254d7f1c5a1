package systems

import (
	"math"

	"github.com/automoto/jumplab/components"
	"github.com/automoto/jumplab/config"
	"github.com/automoto/jumplab/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)
	playerData := components.Player.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.Current == nil {
		return
	}

	// Ease the look-ahead toward the facing direction
	targetLookAhead := playerData.Direction * config.Camera.LookAheadDistanceX
	camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing

	targetX := playerObject.X + camera.LookAheadX
	targetY := playerObject.Y

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := levelData.Current.Width
	levelHeight := levelData.Current.Height

	// Camera bounds: ensure the level always fills the screen
	minCameraX := screenWidth / 2
	maxCameraX := levelWidth - screenWidth/2
	minCameraY := screenHeight / 2
	maxCameraY := levelHeight - screenHeight/2

	targetX = math.Max(minCameraX, math.Min(maxCameraX, targetX))
	targetY = math.Max(minCameraY, math.Min(maxCameraY, targetY))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// cameraOffset converts world coordinates to screen by subtracting the
// camera's top-left corner.
func cameraOffset(e *ecs.ECS) (float64, float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return camera.Position.X - float64(config.C.Width)/2, camera.Position.Y - float64(config.C.Height)/2
}
