package systems

import (
	"github.com/automoto/jumplab/components"
	cfg "github.com/automoto/jumplab/config"
	"github.com/automoto/jumplab/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates friction and gravity into the velocities. Runs
// after UpdatePlayer (which sets intents) and before UpdateCollisions (which
// moves the objects).
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)

		physics.SpeedX = gamemath.ApplyFriction(physics.SpeedX, physics.Friction)
		physics.SpeedX = gamemath.ClampSpeed(physics.SpeedX, physics.MaxSpeed)

		physics.SpeedY += physics.Gravity
		if physics.SpeedY > cfg.Physics.MaxFallSpeed {
			physics.SpeedY = cfg.Physics.MaxFallSpeed
		}

		// Sliding down a wall caps the fall to a crawl
		if physics.WallSliding != nil && physics.SpeedY > cfg.Physics.WallSlideSpeed {
			physics.SpeedY = cfg.Physics.WallSlideSpeed
		}
	})
}
