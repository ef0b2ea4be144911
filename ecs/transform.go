package ecs

import "github.com/milk9111/monsterfighter/ecs/component"

func scaleOr1(s float64) float64 {
	if s == 0 {
		return 1
	}
	return s
}

// WorldTransform composes the Transform of e with those of its ancestors.
// Positions are offset and scaled by the parent, Z values add up.
func WorldTransform(w *World, e Entity) (component.Transform, bool) {
	t, ok := Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return component.Transform{}, false
	}
	out := component.Transform{
		X:      t.X,
		Y:      t.Y,
		Z:      t.Z,
		ScaleX: scaleOr1(t.ScaleX),
		ScaleY: scaleOr1(t.ScaleY),
	}
	for p, ok := Parent(w, e); ok; p, ok = Parent(w, p) {
		pt, has := Get(w, p, component.TransformComponent.Kind())
		if !has {
			continue
		}
		sx, sy := scaleOr1(pt.ScaleX), scaleOr1(pt.ScaleY)
		out.X = pt.X + out.X*sx
		out.Y = pt.Y + out.Y*sy
		out.Z += pt.Z
		out.ScaleX *= sx
		out.ScaleY *= sy
	}
	return out, true
}

// InScreenSpace reports whether e or one of its ancestors is marked
// ScreenSpace.
func InScreenSpace(w *World, e Entity) bool {
	for cur, ok := e, true; ok; cur, ok = Parent(w, cur) {
		if Has(w, cur, component.ScreenSpaceComponent.Kind()) {
			return true
		}
	}
	return false
}
