package factory

import (
	"fmt"

	"github.com/automoto/jumplab/archetypes"
	"github.com/automoto/jumplab/assets"
	"github.com/automoto/jumplab/components"
	"github.com/automoto/jumplab/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LoadLevelData parses the bundled TMX map. Kept separate from entity
// creation so the collision space can be sized from the map before any
// geometry spawns.
func LoadLevelData() (*leveldata.LevelData, error) {
	data, err := leveldata.Load(assets.FS, assets.LevelPath)
	if err != nil {
		return nil, fmt.Errorf("loading level: %w", err)
	}
	return data, nil
}

// CreateLevel spawns the level entity and its geometry: walls, one-way
// platforms and floating platforms, all registered in the collision space.
func CreateLevel(ecs *ecs.ECS, data *leveldata.LevelData) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{Current: data})

	for _, wall := range data.Walls {
		CreateWall(ecs, wall.X, wall.Y, wall.W, wall.H)
	}
	for _, platform := range data.Platforms {
		CreatePlatform(ecs, platform.X, platform.Y, platform.W, platform.H)
	}
	for _, floater := range data.Floaters {
		CreateFloatingPlatform(ecs, floater.X, floater.Y, floater.W, floater.H, floater.Travel)
	}

	return level
}
