package system

import (
	"log"

	"github.com/milk9111/monsterfighter/common"
	"github.com/milk9111/monsterfighter/ecs"
	"github.com/milk9111/monsterfighter/ecs/component"
	"github.com/milk9111/monsterfighter/ecs/entity"
)

// ScreenFadeSystem animates every running fade. At the halfway point a fade
// emits its payload as a one-shot request entity for the game loop; when it
// finishes the fade is destroyed. The player regains control only once no
// fade is left running.
type ScreenFadeSystem struct{}

func NewScreenFadeSystem() *ScreenFadeSystem { return &ScreenFadeSystem{} }

func (s *ScreenFadeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	fades := ecs.Query(w, component.ScreenFadeComponent.Kind())
	if len(fades) == 0 {
		return
	}
	entity.SetPlayerActive(w, false)

	for _, e := range fades {
		fade, ok := ecs.Get(w, e, component.ScreenFadeComponent.Kind())
		if !ok {
			continue
		}
		fade.Elapsed += w.Delta()
		progress := 1.0
		if fade.Duration > 0 {
			progress = common.Clamp01(fade.Elapsed / fade.Duration)
		}
		if progress < 0.5 {
			fade.Alpha = 2 * progress
		} else {
			fade.Alpha = 2 * (1 - progress)
		}
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sprite.Color.A = uint8(common.Lerp(0, 255, common.Clamp01(fade.Alpha)))
		}

		if progress > 0.5 && !fade.Sent {
			fade.Sent = true
			sendFadePayload(w, fade.Payload)
		}

		if progress >= 1 {
			ecs.DestroyRecursive(w, e)
		}
	}

	if len(ecs.Query(w, component.ScreenFadeComponent.Kind())) == 0 {
		entity.SetPlayerActive(w, true)
	}
}

func sendFadePayload(w *ecs.World, payload component.FadePayload) {
	req := ecs.CreateEntity(w)
	var err error
	switch payload.Kind {
	case component.FadeEnterCombat:
		err = ecs.Add(w, req, component.ModeChangeRequestComponent.Kind(), &component.ModeChangeRequest{Mode: component.ModeCombat})
	case component.FadeExitDoor:
		err = ecs.Add(w, req, component.LevelChangeRequestComponent.Kind(), &component.LevelChangeRequest{Door: payload.Door})
	}
	if err != nil {
		log.Printf("screen fade: send payload: %v", err)
	}
}
