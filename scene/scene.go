// Package scene wires the overworld and combat modes: their enter and exit
// hooks, their per-mode schedulers and the tuning specs both read.
package scene

import (
	"fmt"
	"math/rand"

	"github.com/milk9111/monsterfighter/ecs"
	"github.com/milk9111/monsterfighter/ecs/component"
	"github.com/milk9111/monsterfighter/ecs/entity"
	"github.com/milk9111/monsterfighter/ecs/system"
	"github.com/milk9111/monsterfighter/levels"
	"github.com/milk9111/monsterfighter/mode"
	"github.com/milk9111/monsterfighter/prefabs"
)

// Specs holds every yaml spec the game tunes itself with. Systems and hooks
// keep pointers into it, so a reload goes through Replace.
type Specs struct {
	Player     *prefabs.PlayerSpec
	Encounter  *prefabs.EncounterSpec
	EnemyTable *prefabs.EnemyTableSpec
	Enemies    *entity.EnemyTable
	UI         *prefabs.UISpec
}

func LoadSpecs() (*Specs, error) {
	var (
		s   Specs
		err error
	)
	if s.Player, err = prefabs.LoadPlayerSpec(); err != nil {
		return nil, err
	}
	if s.Encounter, err = prefabs.LoadEncounterSpec(); err != nil {
		return nil, err
	}
	if s.EnemyTable, err = prefabs.LoadEnemyTableSpec(); err != nil {
		return nil, err
	}
	if s.Enemies, err = entity.NewEnemyTable(s.EnemyTable); err != nil {
		return nil, err
	}
	if s.UI, err = prefabs.LoadUISpec(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Replace copies fresh values into the structs s already points at.
func (s *Specs) Replace(fresh *Specs) {
	*s.Player = *fresh.Player
	*s.Encounter = *fresh.Encounter
	*s.EnemyTable = *fresh.EnemyTable
	*s.Enemies = *fresh.Enemies
	*s.UI = *fresh.UI
}

// Schedulers builds the systems that run only in one mode.
func Schedulers(specs *Specs, rng *rand.Rand, fight *system.FightSystem) map[mode.Mode]*ecs.Scheduler {
	return map[mode.Mode]*ecs.Scheduler{
		mode.Overworld: ecs.NewScheduler(
			system.NewPlayerControllerSystem(),
			system.NewEncounterSystem(rng, specs.Encounter),
			system.NewAnimationSystem(),
			system.NewCameraSystem(),
		),
		mode.Combat: ecs.NewScheduler(
			system.NewCombatMenuSystem(&specs.UI.Menu),
			fight,
		),
	}
}

// Register installs the overworld and combat hooks on m.
func Register(m *mode.Machine, specs *Specs, rng *rand.Rand) {
	m.Register(mode.Overworld, mode.Hooks{
		OnEnter: EnterOverworld,
		OnExit:  ExitOverworld,
	})
	c := &combat{specs: specs, rng: rng}
	m.Register(mode.Combat, mode.Hooks{
		OnEnter: c.enter,
		OnExit:  c.exit,
	})
}

func EnterOverworld(w *ecs.World) error {
	entity.SetMapVisible(w, true)
	entity.SetPlayerVisible(w, true)
	entity.FollowPlayer(w)
	entity.ResetInput(w)
	return nil
}

func ExitOverworld(w *ecs.World) error {
	entity.SetMapVisible(w, false)
	entity.SetPlayerVisible(w, false)
	return nil
}

type combat struct {
	specs *Specs
	rng   *rand.Rand
}

func (c *combat) enter(w *ecs.World) error {
	fmt.Println("Battle Start !")
	entity.CenterCamera(w, 0, 0)

	enemy, err := c.specs.Enemies.Roll(c.rng)
	if err != nil {
		return fmt.Errorf("roll enemy: %w", err)
	}
	if _, err := entity.SpawnEnemy(w, c.specs.EnemyTable, enemy); err != nil {
		return err
	}
	if _, err := entity.SpawnCombatMenu(w, c.specs.UI); err != nil {
		return err
	}
	entity.ResetInput(w)
	return nil
}

func (c *combat) exit(w *ecs.World) error {
	fmt.Println("Battle End !")
	entity.DespawnEnemies(w)
	entity.DespawnCombatMenus(w)
	return nil
}

// ApplyLevelChanges consumes the door requests emitted by screen fades and
// returns the last map loaded, or nil when there was none. Maps loaded
// outside the overworld stay hidden until it is entered again.
func ApplyLevelChanges(w *ecs.World, current mode.Mode) (*levels.Map, error) {
	var loaded *levels.Map
	for _, e := range ecs.Query(w, component.LevelChangeRequestComponent.Kind()) {
		req, ok := ecs.Get(w, e, component.LevelChangeRequestComponent.Kind())
		ecs.DestroyEntity(w, e)
		if !ok {
			continue
		}
		m, err := entity.ApplyLevelChange(w, req.Door, current == mode.Overworld)
		if err != nil {
			return nil, fmt.Errorf("door to %s: %w", req.Door.Path, err)
		}
		loaded = m
	}
	return loaded, nil
}
