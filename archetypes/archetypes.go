package archetypes

import (
	"github.com/automoto/jumplab/components"
	"github.com/automoto/jumplab/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Jump,
		components.SquashStretch,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	FloatingPlatform = newArchetype(
		tags.FloatingPlatform,
		components.Object,
		components.Tween,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Level = newArchetype(
		components.Level,
	)
)

// layerDefault is hoisted to package scope because Spawn's receiver shadows
// the ecs package name.
const layerDefault = ecs.LayerDefault

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		layerDefault,
		append(a.components, cs...)...,
	))
	return e
}
