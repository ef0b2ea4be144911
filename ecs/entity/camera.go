package entity

import (
	"fmt"

	"github.com/milk9111/monsterfighter/ecs"
	"github.com/milk9111/monsterfighter/ecs/component"
)

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	return NewCameraAt(w, 0, 0)
}

func NewCameraAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{
		X:      x,
		Y:      y,
		ScaleX: 1,
		ScaleY: 1,
	}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Zoom:   1,
		Follow: true,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}
	if err := addName(w, camera, "camera"); err != nil {
		return 0, fmt.Errorf("camera: add name: %w", err)
	}
	return camera, nil
}

// CenterCamera stops following and moves the camera to x, y.
func CenterCamera(w *ecs.World, x, y float64) {
	camera, ok := ecs.First(w, component.CameraTagComponent.Kind())
	if !ok {
		return
	}
	if t, ok := ecs.Get(w, camera, component.TransformComponent.Kind()); ok {
		t.X, t.Y = x, y
	}
	if c, ok := ecs.Get(w, camera, component.CameraComponent.Kind()); ok {
		c.Follow = false
	}
}

// FollowPlayer makes the camera track the player again.
func FollowPlayer(w *ecs.World) {
	camera, ok := ecs.First(w, component.CameraTagComponent.Kind())
	if !ok {
		return
	}
	if c, ok := ecs.Get(w, camera, component.CameraComponent.Kind()); ok {
		c.Follow = true
	}
}
