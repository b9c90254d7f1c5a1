package components

import "github.com/yohamta/donburi"

// SquashStretchData lerps draw scale back to normal after jump/land impacts.
type SquashStretchData struct {
	ScaleX    float64
	ScaleY    float64
	TargetX   float64
	TargetY   float64
	LerpSpeed float64
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()

// SettingsData is the singleton of runtime toggles.
type SettingsData struct {
	Debug bool
}

var Settings = donburi.NewComponentType[SettingsData]()
