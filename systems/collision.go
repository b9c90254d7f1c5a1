package systems

import (
	"math"

	"github.com/automoto/jumplab/components"
	"github.com/automoto/jumplab/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCollisions(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		resolveHorizontalCollision(physics, obj.Object)
		resolveVerticalCollision(physics, obj.Object)
		updateWallSliding(player, physics, obj.Object)
	})
}

// resolveHorizontalCollision handles horizontal movement and wall collision
func resolveHorizontalCollision(physics *components.PhysicsData, object *resolv.Object) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}

	check := object.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		object.X += dx
		return
	}

	if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
		physics.SpeedX = 0
		setWallSlidingIfAirborne(physics, solids[0])
		dx = check.ContactWithObject(solids[0]).X()
	}

	object.X += dx
}

// resolveVerticalCollision handles vertical movement and ground/platform
// collision. Ground state is recomputed from scratch every frame.
func resolveVerticalCollision(physics *components.PhysicsData, object *resolv.Object) {
	physics.OnGround = nil
	dy := clampVerticalSpeed(physics.SpeedY)

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := object.Check(0, checkDistance, tags.ResolvSolid, tags.ResolvPlatform)
	if check == nil {
		object.Y += dy
		return
	}

	if dy < 0 {
		dy = handleUpwardCollision(physics, check)
	} else {
		dy = handleDownwardCollision(physics, object, check, dy)
	}

	object.Y += dy
}

// updateWallSliding checks if the player should disengage from wall sliding
func updateWallSliding(player *components.PlayerData, physics *components.PhysicsData, playerObject *resolv.Object) {
	if physics.WallSliding == nil {
		return
	}

	if check := playerObject.Check(player.Direction, 0, tags.ResolvSolid); check == nil {
		physics.WallSliding = nil
	}
}

func setWallSlidingIfAirborne(physics *components.PhysicsData, wall *resolv.Object) {
	if physics.OnGround != nil {
		return
	}
	physics.WallSliding = wall
}

func clampVerticalSpeed(speedY float64) float64 {
	return math.Max(math.Min(speedY, 16), -16)
}

func handleUpwardCollision(physics *components.PhysicsData, check *resolv.Collision) float64 {
	if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
		physics.SpeedY = 0
		return check.ContactWithObject(solids[0]).Y()
	}
	return physics.SpeedY
}

func handleDownwardCollision(physics *components.PhysicsData, object *resolv.Object, check *resolv.Collision, dy float64) float64 {
	if newDy, handled := tryPlatformCollision(physics, object, check); handled {
		return newDy
	}

	if newDy, handled := trySolidCollision(physics, check); handled {
		return newDy
	}

	return dy
}

func tryPlatformCollision(physics *components.PhysicsData, object *resolv.Object, check *resolv.Collision) (float64, bool) {
	platforms := check.ObjectsByTags(tags.ResolvPlatform)
	if len(platforms) == 0 {
		return 0, false
	}

	platform := platforms[0]

	// One-way: only land when coming down onto the top edge, and not while
	// dropping through on purpose
	if platform == physics.IgnorePlatform ||
		physics.SpeedY < 0 ||
		object.Bottom() >= platform.Y+4 {
		return 0, false
	}

	physics.OnGround = platform
	physics.SpeedY = 0
	clearGroundedState(physics)
	return check.ContactWithObject(platform).Y(), true
}

func trySolidCollision(physics *components.PhysicsData, check *resolv.Collision) (float64, bool) {
	solids := check.ObjectsByTags(tags.ResolvSolid)
	if len(solids) == 0 {
		return 0, false
	}

	solid := solids[0]

	if physics.SpeedY >= 0 {
		physics.OnGround = solid
		physics.SpeedY = 0
		clearGroundedState(physics)
		return check.ContactWithObject(solid).Y(), true
	}

	return 0, false
}

func clearGroundedState(physics *components.PhysicsData) {
	if physics.OnGround != nil {
		physics.WallSliding = nil
		physics.IgnorePlatform = nil
	}
}
