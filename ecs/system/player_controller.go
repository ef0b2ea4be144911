package system

import (
	"github.com/milk9111/monsterfighter/common"
	"github.com/milk9111/monsterfighter/ecs"
	"github.com/milk9111/monsterfighter/ecs/component"
)

// PlayerControllerSystem moves the player from held keys. The X axis is
// resolved against colliders before the Y axis so the player slides along
// walls.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w,
		component.PlayerComponent.Kind(),
		component.TransformComponent.Kind(),
		component.InputComponent.Kind(),
		func(_ ecs.Entity, p *component.Player, t *component.Transform, in *component.Input) {
			p.JustMoved = false
			p.Facing = facingFromInput(p.Facing, in)
			if !p.Active {
				return
			}

			toMove := p.Speed * w.Delta() * common.TileSize

			dx := 0.0
			if in.Left {
				dx = -toMove
			}
			if in.Right {
				dx = toMove
			}
			dy := 0.0
			if in.Up {
				dy = toMove
			}
			if in.Down {
				dy = -toMove
			}

			if dx != 0 && !blocked(w, playerBox(p, t.X+dx, t.Y)) {
				t.X += dx
				p.JustMoved = true
			}
			if dy != 0 && !blocked(w, playerBox(p, t.X, t.Y+dy)) {
				t.Y += dy
				p.JustMoved = true
			}
		})
}

func facingFromInput(current component.Facing, in *component.Input) component.Facing {
	switch {
	case in.DownPressed:
		return component.FacingDown
	case in.UpPressed:
		return component.FacingUp
	case in.RightPressed:
		return component.FacingRight
	case in.LeftPressed:
		return component.FacingLeft
	}
	return current
}
