package systems

import (
	"github.com/automoto/jumplab/components"
	cfg "github.com/automoto/jumplab/config"
	"github.com/automoto/jumplab/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TriggerSquashStretch kicks the draw scale away from 1.0. UpdateEffects
// eases it back.
func TriggerSquashStretch(entry *donburi.Entry, scaleX, scaleY float64) {
	if !entry.HasComponent(components.SquashStretch) {
		return
	}
	ss := components.SquashStretch.Get(entry)
	ss.ScaleX = scaleX
	ss.ScaleY = scaleY
	ss.TargetX = 1.0
	ss.TargetY = 1.0
	ss.LerpSpeed = cfg.SquashStretch.LerpSpeed
}

func UpdateEffects(ecs *ecs.ECS) {
	components.SquashStretch.Each(ecs.World, func(e *donburi.Entry) {
		ss := components.SquashStretch.Get(e)
		ss.ScaleX = gamemath.Lerp(ss.ScaleX, ss.TargetX, ss.LerpSpeed)
		ss.ScaleY = gamemath.Lerp(ss.ScaleY, ss.TargetY, ss.LerpSpeed)
	})
}
