package systems

import (
	"github.com/automoto/jumplab/components"
	cfg "github.com/automoto/jumplab/config"
	"github.com/automoto/jumplab/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateTuning returns the singleton tuning component, seeding it from
// the config defaults on first access.
func GetOrCreateTuning(ecs *ecs.ECS) *components.TuningData {
	entry, ok := components.Tuning.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Tuning))
		tuning := components.Tuning.Get(entry)
		tuning.Ground = cfg.Player.GroundJump
		tuning.Double = cfg.Player.DoubleJump
		tuning.Wall = cfg.Player.WallJump
		tuning.FallFrames = cfg.Player.FallFrames
		tuning.ShowArc = true
		return tuning
	}
	return components.Tuning.Get(entry)
}

// UpdateTuning handles the panel toggles and flushes dirty edits to disk.
func UpdateTuning(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	tuning := GetOrCreateTuning(ecs)

	if GetAction(input, cfg.ActionTuningPanel).JustPressed {
		tuning.PanelOpen = !tuning.PanelOpen
	}
	if GetAction(input, cfg.ActionToggleArc).JustPressed {
		tuning.ShowArc = !tuning.ShowArc
	}
	if GetAction(input, cfg.ActionResetTuning).JustPressed {
		ResetTuning(tuning)
	}

	if tuning.Dirty {
		SaveTuning(tuning)
		tuning.Dirty = false
	}
}

// ResetTuning restores the config defaults and marks them for saving.
func ResetTuning(tuning *components.TuningData) {
	tuning.Ground = cfg.Player.GroundJump
	tuning.Double = cfg.Player.DoubleJump
	tuning.Wall = cfg.Player.WallJump
	tuning.FallFrames = cfg.Player.FallFrames
	tuning.LastError = ""
	tuning.Dirty = true
}

// AdjustHeight nudges a profile's peak height within the tuning bounds.
func AdjustHeight(tuning *components.TuningData, profile *cfg.JumpProfile, delta float64) {
	profile.Height = gamemath.Clamp(profile.Height+delta, cfg.Tuning.MinHeight, cfg.Tuning.MaxHeight)
	tuning.Dirty = true
}

// AdjustApexFrames nudges a profile's time-to-apex within the tuning bounds.
func AdjustApexFrames(tuning *components.TuningData, profile *cfg.JumpProfile, delta float64) {
	profile.ApexFrames = gamemath.Clamp(profile.ApexFrames+delta, cfg.Tuning.MinApexFrames, cfg.Tuning.MaxApexFrames)
	tuning.Dirty = true
}

// AdjustFallFrames nudges the shared descent duration within the tuning bounds.
func AdjustFallFrames(tuning *components.TuningData, delta float64) {
	tuning.FallFrames = gamemath.Clamp(tuning.FallFrames+delta, cfg.Tuning.MinApexFrames, cfg.Tuning.MaxApexFrames)
	tuning.Dirty = true
}
