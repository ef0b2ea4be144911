package system

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/monsterfighter/common"
	"github.com/milk9111/monsterfighter/ecs"
	"github.com/milk9111/monsterfighter/ecs/component"
	"github.com/milk9111/monsterfighter/ecs/entity"
	"github.com/milk9111/monsterfighter/prefabs"
)

// EncounterSystem starts screen fades when the player walks through grass
// long enough or steps onto a door. It must run after the player controller
// so it sees this frame's JustMoved. Fade lengths are read from spec on
// every trigger, so edits to the spec apply to the next fade.
type EncounterSystem struct {
	rng  *rand.Rand
	spec *prefabs.EncounterSpec
}

func NewEncounterSystem(rng *rand.Rand, spec *prefabs.EncounterSpec) *EncounterSystem {
	return &EncounterSystem{rng: rng, spec: spec}
}

func (s *EncounterSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w,
		component.PlayerComponent.Kind(),
		component.TransformComponent.Kind(),
		component.EncounterTimerComponent.Kind(),
		func(_ ecs.Entity, p *component.Player, t *component.Transform, timer *component.EncounterTimer) {
			if !p.JustMoved {
				return
			}
			box := playerBox(p, t.X, t.Y)

			if err := s.checkGrass(w, box, timer); err != nil {
				log.Printf("encounter: %v", err)
			}
			if err := s.checkDoor(w, box, p); err != nil {
				log.Printf("encounter: %v", err)
			}
		})
}

func (s *EncounterSystem) checkGrass(w *ecs.World, box cp.BB, timer *component.EncounterTimer) error {
	if len(tilesOverlapping(w, box, component.EncounterZoneComponent.Kind())) == 0 {
		return nil
	}
	timer.Elapsed += w.Delta()
	if timer.Elapsed < timer.Target {
		return nil
	}
	timer.Elapsed = 0
	timer.Target = common.RandRange(s.rng, timer.Min, timer.Max)
	if _, err := entity.NewFade(w, component.FadePayload{Kind: component.FadeEnterCombat}, s.spec.FadeSeconds); err != nil {
		return fmt.Errorf("start combat fade: %w", err)
	}
	return nil
}

func (s *EncounterSystem) checkDoor(w *ecs.World, box cp.BB, p *component.Player) error {
	doors := tilesOverlapping(w, box, component.DoorComponent.Kind())
	if len(doors) == 0 {
		return nil
	}
	door, ok := ecs.Get(w, doors[0], component.DoorComponent.Kind())
	if !ok {
		return nil
	}
	p.Active = false
	if _, err := entity.NewFade(w, component.FadePayload{Kind: component.FadeExitDoor, Door: *door}, s.spec.DoorFadeSeconds); err != nil {
		return fmt.Errorf("start door fade: %w", err)
	}
	return nil
}
