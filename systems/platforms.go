package systems

import (
	"github.com/automoto/jumplab/components"
	"github.com/automoto/jumplab/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFloatingPlatforms bobs the floating platforms along their tween
// sequence. The tween value is an absolute Y so platforms never drift.
func UpdateFloatingPlatforms(ecs *ecs.ECS) {
	tags.FloatingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		tween := components.Tween.Get(e)
		obj := components.Object.Get(e)

		y, _, seqDone := tween.Update(1.0 / 60.0)
		obj.Y = float64(y)
		if seqDone {
			tween.Reset()
		}
	})
}
