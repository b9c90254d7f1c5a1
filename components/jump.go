package components

import (
	"github.com/automoto/jumplab/trajectory"
	"github.com/yohamta/donburi"
)

// JumpData carries the arc the player is currently flying. The arc is
// re-resolved whenever a jump starts, the button is released early, or the
// apex is crossed, so gravity always comes out of the trajectory engine
// rather than a hand-tuned constant.
type JumpData struct {
	Arc    trajectory.Trajectory[float64]
	Rising bool
}

var Jump = donburi.NewComponentType[JumpData]()
