package systems

import (
	"github.com/automoto/jumplab/components"
	cfg "github.com/automoto/jumplab/config"
	"github.com/automoto/jumplab/tags"
	"github.com/automoto/jumplab/trajectory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		updateSinglePlayer(ecs, e)
	})
}

func updateSinglePlayer(e *ecs.ECS, playerEntry *donburi.Entry) {
	input := getOrCreateInput(e)
	tuning := GetOrCreateTuning(e)

	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	jump := components.Jump.Get(playerEntry)
	playerObject := components.Object.Get(playerEntry).Object

	handleMovementInput(input, player, physics)
	refreshGroundGravity(tuning, physics, jump)
	handleJumpInput(input, tuning, playerEntry, player, physics, jump, playerObject)
	updateAirPhase(tuning, physics, jump)
	handleLanding(playerEntry, player, physics)

	if GetAction(input, cfg.ActionRespawn).JustPressed {
		respawnPlayer(player, physics, jump, playerObject)
	}
}

func handleMovementInput(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData) {
	if physics.WallSliding != nil {
		return // No direct control while stuck to a wall
	}

	accel := cfg.Player.Acceleration

	if GetAction(input, cfg.ActionMoveRight).Pressed {
		physics.SpeedX += accel
		player.Direction = cfg.DirectionRight
	}
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		physics.SpeedX -= accel
		player.Direction = cfg.DirectionLeft
	}
}

func handleJumpInput(input *components.InputData, tuning *components.TuningData, playerEntry *donburi.Entry, player *components.PlayerData, physics *components.PhysicsData, jump *components.JumpData, playerObject *resolv.Object) {
	jumpAction := GetAction(input, cfg.ActionJump)
	crouchAction := GetAction(input, cfg.ActionCrouch)

	// Early release: cut the rise short by re-resolving the arc from the
	// current upward speed and a short remaining rise time.
	if jumpAction.JustReleased && jump.Rising && physics.SpeedY < 0 {
		shortenRise(tuning, physics, jump)
	}

	if !jumpAction.JustPressed {
		return
	}

	// Drop through one-way platforms with down+jump
	if crouchAction.Pressed && physics.OnGround != nil && physics.OnGround.HasTags(tags.ResolvPlatform) {
		physics.IgnorePlatform = physics.OnGround
		return
	}

	switch {
	case physics.OnGround != nil:
		startJump(tuning, physics, jump, tuning.Ground)
		TriggerSquashStretch(playerEntry, cfg.SquashStretch.JumpScaleX, cfg.SquashStretch.JumpScaleY)

	case physics.WallSliding != nil:
		performWallKick(tuning, player, physics, jump, playerObject)
		TriggerSquashStretch(playerEntry, cfg.SquashStretch.JumpScaleX, cfg.SquashStretch.JumpScaleY)

	case player.AirJumpsUsed < cfg.Player.MaxAirJumps:
		startJump(tuning, physics, jump, tuning.Double)
		player.AirJumpsUsed++
		TriggerSquashStretch(playerEntry, cfg.SquashStretch.JumpScaleX, cfg.SquashStretch.JumpScaleY)
	}
}

// refreshGroundGravity keeps the descent gravity current while grounded, so
// walking off a ledge falls on the tuned clock and tuning edits take effect
// without re-jumping.
func refreshGroundGravity(tuning *components.TuningData, physics *components.PhysicsData, jump *components.JumpData) {
	if physics.OnGround == nil || jump.Rising {
		return
	}
	g, err := trajectory.GravityFromHeightAndTime(tuning.Ground.Height, tuning.FallFrames)
	if err != nil {
		return
	}
	physics.Gravity = -g
}

// startJump resolves a fresh arc from the profile and launches the player on
// it. A degenerate profile surfaces in the HUD instead of crashing.
func startJump(tuning *components.TuningData, physics *components.PhysicsData, jump *components.JumpData, profile cfg.JumpProfile) {
	arc, err := trajectory.FromHeightAndTime(profile.Height, profile.ApexFrames)
	if err != nil {
		tuning.LastError = err.Error()
		return
	}
	tuning.LastError = ""

	// Trajectory space is Y-up, the screen is Y-down.
	physics.SpeedY = -arc.Impulse()
	physics.Gravity = -arc.Gravity()
	jump.Arc = arc
	jump.Rising = true
}

// shortenRise swaps in a steeper gravity that finishes the rise in
// ReleaseFrames from the current speed, keeping the arc continuous.
func shortenRise(tuning *components.TuningData, physics *components.PhysicsData, jump *components.JumpData) {
	arc, err := trajectory.FromTimeAndImpulse(cfg.Player.ReleaseFrames, -physics.SpeedY)
	if err != nil {
		tuning.LastError = err.Error()
		return
	}
	physics.Gravity = -arc.Gravity()
	jump.Arc = arc
}

func performWallKick(tuning *components.TuningData, player *components.PlayerData, physics *components.PhysicsData, jump *components.JumpData, playerObject *resolv.Object) {
	if physics.WallSliding == nil {
		return
	}

	startJump(tuning, physics, jump, tuning.Wall)

	// Kick away from the wall
	wallCenterX := physics.WallSliding.X + physics.WallSliding.W/2
	playerCenterX := playerObject.X + playerObject.W/2
	if wallCenterX > playerCenterX {
		physics.SpeedX = -cfg.Player.WallKickSpeed
		player.Direction = cfg.DirectionLeft
	} else {
		physics.SpeedX = cfg.Player.WallKickSpeed
		player.Direction = cfg.DirectionRight
	}
	physics.WallSliding = nil
}

// updateAirPhase switches to the fall gravity once the apex is crossed. The
// descent reuses the arc's height but runs on its own clock, which is what
// gives the asymmetric arcade feel.
func updateAirPhase(tuning *components.TuningData, physics *components.PhysicsData, jump *components.JumpData) {
	if !jump.Rising || physics.SpeedY < 0 {
		return
	}
	jump.Rising = false

	g, err := trajectory.GravityFromHeightAndTime(jump.Arc.Height(), tuning.FallFrames)
	if err != nil {
		tuning.LastError = err.Error()
		return
	}
	physics.Gravity = -g
}

func handleLanding(playerEntry *donburi.Entry, player *components.PlayerData, physics *components.PhysicsData) {
	airborne := physics.OnGround == nil

	if player.WasAirborne && !airborne {
		player.AirJumpsUsed = 0
		TriggerSquashStretch(playerEntry, cfg.SquashStretch.LandScaleX, cfg.SquashStretch.LandScaleY)
	}

	player.WasAirborne = airborne
}

func respawnPlayer(player *components.PlayerData, physics *components.PhysicsData, jump *components.JumpData, playerObject *resolv.Object) {
	playerObject.X = player.SpawnX
	playerObject.Y = player.SpawnY
	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.WallSliding = nil
	physics.IgnorePlatform = nil
	player.AirJumpsUsed = 0
	jump.Rising = false
}
