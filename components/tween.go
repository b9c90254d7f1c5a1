package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween drives floating platform movement with a looping gween sequence.
// The sequence values are absolute Y positions.
var Tween = donburi.NewComponentType[gween.Sequence]()
