package entity

import (
	"fmt"

	"github.com/milk9111/monsterfighter/ecs"
	"github.com/milk9111/monsterfighter/ecs/component"
	"github.com/milk9111/monsterfighter/levels"
)

// LoadMap spawns a map root with one child per cell. Walls and water get a
// TileCollider, grass an EncounterZone and doors their destination.
func LoadMap(w *ecs.World, m *levels.Map) (ecs.Entity, error) {
	root := ecs.CreateEntity(w)
	if err := ecs.Add(w, root, component.MapTagComponent.Kind(), &component.MapTag{}); err != nil {
		return 0, fmt.Errorf("map: add map tag: %w", err)
	}
	if err := ecs.Add(w, root, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		return 0, fmt.Errorf("map: add transform: %w", err)
	}
	if err := addName(w, root, "map "+m.Name); err != nil {
		return 0, fmt.Errorf("map: add name: %w", err)
	}

	for _, t := range m.Tiles() {
		if err := spawnTile(w, root, m, t); err != nil {
			return 0, fmt.Errorf("map %s: tile %d,%d: %w", m.Name, t.Col, t.Row, err)
		}
	}
	return root, nil
}

func spawnTile(w *ecs.World, root ecs.Entity, m *levels.Map, t levels.Tile) error {
	def := t.Kind.Def()
	x, y := t.WorldPos()
	e, err := SpawnGlyph(w, def.Glyph, def.Color, x, y, 0, 1)
	if err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.TileComponent.Kind(), &component.Tile{Kind: t.Kind, Col: t.Col, Row: t.Row}); err != nil {
		return fmt.Errorf("add tile: %w", err)
	}
	if def.Collider {
		if err := ecs.Add(w, e, component.TileColliderComponent.Kind(), &component.TileCollider{}); err != nil {
			return fmt.Errorf("add collider: %w", err)
		}
	}
	if def.Encounter {
		if err := ecs.Add(w, e, component.EncounterZoneComponent.Kind(), &component.EncounterZone{}); err != nil {
			return fmt.Errorf("add encounter zone: %w", err)
		}
	}
	if t.Kind == levels.TileDoor {
		door, ok := m.Door(t)
		if !ok {
			return fmt.Errorf("door %d has no destination", t.DoorID)
		}
		if err := ecs.Add(w, e, component.DoorComponent.Kind(), &component.Door{Path: door.Path, X: door.X, Y: door.Y}); err != nil {
			return fmt.Errorf("add door: %w", err)
		}
	}
	return ecs.SetParent(w, e, root)
}

// UnloadMaps destroys every map root and its tiles.
func UnloadMaps(w *ecs.World) {
	for _, root := range ecs.Query(w, component.MapTagComponent.Kind()) {
		ecs.DestroyRecursive(w, root)
	}
}

// SetMapVisible shows or hides every tile of the loaded maps.
func SetMapVisible(w *ecs.World, visible bool) {
	for _, root := range ecs.Query(w, component.MapTagComponent.Kind()) {
		SetHidden(w, root, !visible)
	}
}

// ApplyLevelChange replaces the current map with the door's destination and
// moves the player to the door's target cell. The new map is shown only when
// visible is set, so a door that lands during combat stays off screen.
func ApplyLevelChange(w *ecs.World, door component.Door, visible bool) (*levels.Map, error) {
	fmt.Printf("Loading: %s\n", door.Path)
	m, err := levels.Load(door.Path)
	if err != nil {
		return nil, fmt.Errorf("level change: %w", err)
	}
	UnloadMaps(w)
	if _, err := LoadMap(w, m); err != nil {
		return nil, fmt.Errorf("level change: %w", err)
	}
	SetMapVisible(w, visible)
	if err := MovePlayerTo(w, door.X, door.Y); err != nil {
		return nil, fmt.Errorf("level change: %w", err)
	}
	return m, nil
}
