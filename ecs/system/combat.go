package system

import (
	"log"

	"github.com/milk9111/monsterfighter/ecs"
	"github.com/milk9111/monsterfighter/ecs/component"
	"github.com/milk9111/monsterfighter/ecs/entity"
)

// HitClip is the clip requested when a fight action lands.
const HitClip = "hit"

// FightSystem consumes FightAction requests, damages the enemy and ends the
// battle once its health runs out.
type FightSystem struct {
	script *DamageScript
}

func NewFightSystem(script *DamageScript) *FightSystem {
	return &FightSystem{script: script}
}

// SetScript swaps the damage script, e.g. after a hot reload.
func (s *FightSystem) SetScript(script *DamageScript) {
	s.script = script
}

func (s *FightSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	actions := ecs.Query(w, component.FightActionComponent.Kind())
	for _, a := range actions {
		ecs.DestroyEntity(w, a)

		enemyEnt, ok := ecs.First(w, component.EnemyComponent.Kind())
		if !ok {
			continue
		}
		enemy, _ := ecs.Get(w, enemyEnt, component.EnemyComponent.Kind())
		if enemy.Health <= 0 {
			continue
		}

		enemy.Health -= s.script.Damage(*enemy)
		if enemy.Health < 0 {
			enemy.Health = 0
		}

		if text, ok := entity.FindText(w, component.HealthTextID); ok {
			at, _ := ecs.Get(w, text, component.AsciiTextComponent.Kind())
			if err := entity.UpdateText(w, text, entity.HealthLabel(enemy.Health), at.Color); err != nil {
				log.Printf("fight: update health text: %v", err)
			}
		}
		requestClip(w, HitClip)

		if enemy.Health <= 0 {
			requestMode(w, component.ModeOverworld)
		}
	}
}

func requestClip(w *ecs.World, clip string) {
	req := ecs.CreateEntity(w)
	if err := ecs.Add(w, req, component.AudioRequestComponent.Kind(), &component.AudioRequest{Clip: clip}); err != nil {
		log.Printf("request clip %s: %v", clip, err)
	}
}
