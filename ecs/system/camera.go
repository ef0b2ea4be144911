package system

import (
	"github.com/milk9111/monsterfighter/ecs"
	"github.com/milk9111/monsterfighter/ecs/component"
)

// CameraSystem keeps a following camera centered on the player.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	target, ok := ecs.WorldTransform(w, player)
	if !ok {
		return
	}

	ecs.ForEach2(w, component.CameraComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, c *component.Camera, t *component.Transform) {
		if !c.Follow {
			return
		}
		t.X = target.X
		t.Y = target.Y
	})
}
