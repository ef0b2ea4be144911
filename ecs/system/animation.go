package system

import (
	"github.com/milk9111/monsterfighter/ecs"
	"github.com/milk9111/monsterfighter/ecs/component"
)

// AnimationSystem steps the walk cycle of the player's facing while it moves
// and rests on the first frame otherwise.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach3(w,
		component.AnimatedSpriteComponent.Kind(),
		component.SpriteComponent.Kind(),
		component.PlayerComponent.Kind(),
		func(_ ecs.Entity, anim *component.AnimatedSprite, sprite *component.Sprite, p *component.Player) {
			frames := anim.Frames[p.Facing]
			if len(frames) == 0 {
				return
			}
			if !p.JustMoved {
				anim.Frame = 0
				anim.Timer = 0
				sprite.Glyph = frames[0]
				return
			}

			anim.Timer += w.Delta()
			if anim.FrameSeconds > 0 {
				for anim.Timer >= anim.FrameSeconds {
					anim.Timer -= anim.FrameSeconds
					anim.Frame++
				}
			}
			anim.Frame %= len(frames)
			sprite.Glyph = frames[anim.Frame]
		})
}
