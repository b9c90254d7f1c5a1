package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction    float64 // facing: -1 or 1
	SpawnX       float64
	SpawnY       float64
	AirJumpsUsed int

	// WasAirborne tracks the previous frame's grounded state so landing
	// can be detected for the squash effect.
	WasAirborne bool
}

var Player = donburi.NewComponentType[PlayerData]()
