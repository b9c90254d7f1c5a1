package components

import (
	cfg "github.com/automoto/jumplab/config"
	"github.com/yohamta/donburi"
)

// TuningData is the singleton holding the live, designer-editable jump
// parameters. Systems read profiles from here instead of the config
// defaults so the tuning panel can change them at runtime.
type TuningData struct {
	Ground cfg.JumpProfile
	Double cfg.JumpProfile
	Wall   cfg.JumpProfile

	FallFrames float64

	PanelOpen bool
	ShowArc   bool

	// Dirty marks edits that have not been persisted yet.
	Dirty bool

	// LastError holds the trajectory engine's most recent complaint, shown
	// in the HUD instead of crashing the playground.
	LastError string
}

var Tuning = donburi.NewComponentType[TuningData]()
