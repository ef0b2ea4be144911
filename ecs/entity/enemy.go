package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/milk9111/monsterfighter/common"
	"github.com/milk9111/monsterfighter/ecs"
	"github.com/milk9111/monsterfighter/ecs/component"
	"github.com/milk9111/monsterfighter/prefabs"
)

var ErrEmptyEnemyTable = errors.New("entity: enemy table is empty")

var enemyTypes = map[string]component.EnemyType{
	"bat":    component.EnemyBat,
	"zombie": component.EnemyZombie,
	"ghost":  component.EnemyGhost,
	"demon":  component.EnemyDemon,
	"giant":  component.EnemyGiant,
}

// EnemyTable is the set of wild enemies, each equally likely.
type EnemyTable struct {
	entries []component.Enemy
}

func NewEnemyTable(spec *prefabs.EnemyTableSpec) (*EnemyTable, error) {
	t := &EnemyTable{entries: make([]component.Enemy, 0, len(spec.Enemies))}
	for _, es := range spec.Enemies {
		typ, ok := enemyTypes[es.Type]
		if !ok {
			return nil, fmt.Errorf("enemy table: unknown enemy type %q", es.Type)
		}
		if err := checkGlyph(int(es.Glyph)); err != nil {
			return nil, fmt.Errorf("enemy table: %s: %w", es.Type, err)
		}
		t.entries = append(t.entries, component.Enemy{
			Type:   typ,
			Glyph:  int(es.Glyph),
			Color:  es.Color.NRGBA,
			Health: es.Health,
			Exp:    es.Exp,
		})
	}
	return t, nil
}

func (t *EnemyTable) Len() int {
	return len(t.entries)
}

// Roll picks an enemy uniformly at random.
func (t *EnemyTable) Roll(rng *rand.Rand) (component.Enemy, error) {
	if t == nil || len(t.entries) == 0 {
		return component.Enemy{}, ErrEmptyEnemyTable
	}
	return t.entries[rng.Intn(len(t.entries))], nil
}

// HealthLabel is the text shown under an enemy.
func HealthLabel(health int) string {
	return fmt.Sprintf("Health: %d", health)
}

// SpawnEnemy creates the enemy root with a scaled glyph child and its health
// label.
func SpawnEnemy(w *ecs.World, spec *prefabs.EnemyTableSpec, enemy component.Enemy) (ecs.Entity, error) {
	root := ecs.CreateEntity(w)
	if err := ecs.Add(w, root, component.TransformComponent.Kind(), &component.Transform{
		X: spec.Position.X * common.TileSize,
		Y: spec.Position.Y * common.TileSize,
		Z: 5,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add transform: %w", err)
	}
	e := enemy
	if err := ecs.Add(w, root, component.EnemyComponent.Kind(), &e); err != nil {
		return 0, fmt.Errorf("enemy: add enemy: %w", err)
	}
	if err := addName(w, root, enemy.Type.String()); err != nil {
		return 0, fmt.Errorf("enemy: add name: %w", err)
	}

	scale := spec.Scale
	if scale == 0 {
		scale = 1
	}
	sprite, err := SpawnGlyph(w, enemy.Glyph, enemy.Color, 0, 0, 0, scale)
	if err != nil {
		return 0, fmt.Errorf("enemy: %w", err)
	}
	if err := ecs.SetParent(w, sprite, root); err != nil {
		return 0, fmt.Errorf("enemy: attach sprite: %w", err)
	}

	text, err := SpawnText(w, HealthLabel(enemy.Health),
		spec.HealthText.X*common.TileSize, spec.HealthText.Y*common.TileSize,
		component.HealthTextID, spec.TextColor.NRGBA)
	if err != nil {
		return 0, fmt.Errorf("enemy: health text: %w", err)
	}
	if err := ecs.SetParent(w, text, root); err != nil {
		return 0, fmt.Errorf("enemy: attach health text: %w", err)
	}
	return root, nil
}

// DespawnEnemies destroys every enemy and its children.
func DespawnEnemies(w *ecs.World) {
	for _, e := range ecs.Query(w, component.EnemyComponent.Kind()) {
		ecs.DestroyRecursive(w, e)
	}
}
