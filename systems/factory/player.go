package factory

import (
	"github.com/automoto/jumplab/archetypes"
	"github.com/automoto/jumplab/components"
	cfg "github.com/automoto/jumplab/config"
	"github.com/automoto/jumplab/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight)
	obj.AddTags(tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight))
	obj.Data = player

	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Player.SetValue(player, components.PlayerData{
		Direction: cfg.DirectionRight,
		SpawnX:    x,
		SpawnY:    y,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Friction: cfg.Player.Friction,
		MaxSpeed: cfg.Player.MaxSpeed,
	})
	components.SquashStretch.SetValue(player, components.SquashStretchData{
		ScaleX:    1,
		ScaleY:    1,
		TargetX:   1,
		TargetY:   1,
		LerpSpeed: cfg.SquashStretch.LerpSpeed,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}
