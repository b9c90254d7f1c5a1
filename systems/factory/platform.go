package factory

import (
	"github.com/automoto/jumplab/archetypes"
	"github.com/automoto/jumplab/components"
	"github.com/automoto/jumplab/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform creates a one-way platform that is only solid from above.
func CreatePlatform(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = platform

	components.Object.SetValue(platform, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return platform
}

// CreateFloatingPlatform creates a one-way platform that bobs up and down by
// travel pixels on a looping tween.
func CreateFloatingPlatform(ecs *ecs.ECS, x, y, w, h, travel float64) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = platform

	components.Object.SetValue(platform, components.ObjectData{Object: obj})

	// Back-and-forth sequence over absolute Y positions
	tw := gween.NewSequence()
	tw.Add(
		gween.New(float32(y), float32(y-travel), 2, ease.Linear),
		gween.New(float32(y-travel), float32(y), 2, ease.Linear),
	)
	components.Tween.Set(platform, tw)

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return platform
}
