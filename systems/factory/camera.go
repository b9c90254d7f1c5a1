package factory

import (
	"github.com/automoto/jumplab/archetypes"
	"github.com/automoto/jumplab/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}
