package entity

import (
	"fmt"
	"math/rand"

	"github.com/milk9111/monsterfighter/common"
	"github.com/milk9111/monsterfighter/ecs"
	"github.com/milk9111/monsterfighter/ecs/component"
	"github.com/milk9111/monsterfighter/levels"
	"github.com/milk9111/monsterfighter/prefabs"
)

// NewPlayer spawns the player on its spawn cell with a background glyph child
// drawn behind it. The player also carries the shared Input state and the
// wild encounter timer.
func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec, enc *prefabs.EncounterSpec, rng *rand.Rand) (ecs.Entity, error) {
	x, y := levels.GridToWorld(spec.Spawn.X, spec.Spawn.Y)

	player, err := SpawnGlyph(w, int(spec.Sprite.Glyph), spec.Sprite.Color.NRGBA, x, y, spec.Z, 1)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, player, component.PlayerComponent.Kind(), &component.Player{
		Speed:      spec.Speed,
		HitboxSize: spec.HitboxSize,
		Facing:     component.FacingDown,
		Active:     true,
	}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, player, component.EncounterTimerComponent.Kind(), &component.EncounterTimer{
		Target: common.RandRange(rng, enc.MinSeconds, enc.MaxSeconds),
		Min:    enc.MinSeconds,
		Max:    enc.MaxSeconds,
	}); err != nil {
		return 0, fmt.Errorf("player: add encounter timer: %w", err)
	}
	if err := ecs.Add(w, player, component.AnimatedSpriteComponent.Kind(), &component.AnimatedSprite{
		Frames: map[component.Facing][]int{
			component.FacingDown:  glyphInts(spec.Animation.Down),
			component.FacingUp:    glyphInts(spec.Animation.Up),
			component.FacingLeft:  glyphInts(spec.Animation.Left),
			component.FacingRight: glyphInts(spec.Animation.Right),
		},
		FrameSeconds: spec.Animation.FrameSeconds,
	}); err != nil {
		return 0, fmt.Errorf("player: add animation: %w", err)
	}
	if err := addName(w, player, spec.Name); err != nil {
		return 0, fmt.Errorf("player: add name: %w", err)
	}

	bg, err := SpawnGlyph(w, int(spec.Background.Glyph), spec.Background.Color.NRGBA, 0, 0, -1, 1)
	if err != nil {
		return 0, fmt.Errorf("player: background: %w", err)
	}
	if err := addName(w, bg, "player background"); err != nil {
		return 0, fmt.Errorf("player: add background name: %w", err)
	}
	if err := ecs.SetParent(w, bg, player); err != nil {
		return 0, fmt.Errorf("player: attach background: %w", err)
	}
	return player, nil
}

// MovePlayerTo places the player on a grid cell.
func MovePlayerTo(w *ecs.World, col, row int) error {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return fmt.Errorf("player: no player entity")
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("player: %v has no transform", player)
	}
	t.X, t.Y = levels.GridToWorld(col, row)
	return nil
}

// SetPlayerVisible shows or hides the player and its background.
func SetPlayerVisible(w *ecs.World, visible bool) {
	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		SetHidden(w, player, !visible)
	}
}

// SetPlayerActive toggles whether the player accepts movement.
func SetPlayerActive(w *ecs.World, active bool) {
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(_ ecs.Entity, p *component.Player) {
		p.Active = active
	})
}

// ResetInput clears the held and pressed state of every Input.
func ResetInput(w *ecs.World) {
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, in *component.Input) {
		*in = component.Input{}
	})
}

func glyphInts(gs []prefabs.Glyph) []int {
	out := make([]int, len(gs))
	for i, g := range gs {
		out[i] = int(g)
	}
	return out
}
