package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/monsterfighter/common"
	"github.com/milk9111/monsterfighter/ecs"
	"github.com/milk9111/monsterfighter/ecs/component"
)

// SpawnText creates a text root at x, y with one glyph child per character,
// each one tile to the right of the previous.
func SpawnText(w *ecs.World, text string, x, y float64, id int, c color.NRGBA) (ecs.Entity, error) {
	if err := checkText(text); err != nil {
		return 0, err
	}

	root := ecs.CreateEntity(w)
	if err := ecs.Add(w, root, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, Z: 1}); err != nil {
		return 0, fmt.Errorf("text: add transform: %w", err)
	}
	if err := ecs.Add(w, root, component.AsciiTextComponent.Kind(), &component.AsciiText{ID: id, Text: text, Color: c}); err != nil {
		return 0, fmt.Errorf("text: add ascii text: %w", err)
	}
	if err := addName(w, root, "text"); err != nil {
		return 0, fmt.Errorf("text: add name: %w", err)
	}
	if err := spawnTextGlyphs(w, root, text, c); err != nil {
		return 0, err
	}
	return root, nil
}

// UpdateText replaces the glyph children of a text root.
func UpdateText(w *ecs.World, root ecs.Entity, text string, c color.NRGBA) error {
	at, ok := ecs.Get(w, root, component.AsciiTextComponent.Kind())
	if !ok {
		return fmt.Errorf("text: %v has no ascii text", root)
	}
	if err := checkText(text); err != nil {
		return err
	}
	for _, child := range ecs.Children(w, root) {
		ecs.DestroyRecursive(w, child)
	}
	at.Text = text
	at.Color = c
	return spawnTextGlyphs(w, root, text, c)
}

// FindText returns the text root with the given id.
func FindText(w *ecs.World, id int) (ecs.Entity, bool) {
	var found ecs.Entity
	ecs.ForEach(w, component.AsciiTextComponent.Kind(), func(e ecs.Entity, at *component.AsciiText) {
		if !found.Valid() && at.ID == id {
			found = e
		}
	})
	return found, found.Valid()
}

func checkText(text string) error {
	for _, r := range text {
		if err := checkGlyph(int(r)); err != nil {
			return fmt.Errorf("text %q: %w", text, err)
		}
	}
	return nil
}

func spawnTextGlyphs(w *ecs.World, root ecs.Entity, text string, c color.NRGBA) error {
	i := 0
	for _, r := range text {
		g, err := SpawnGlyph(w, int(r), c, float64(i)*common.TileSize, 0, 0, 1)
		if err != nil {
			return fmt.Errorf("text: %w", err)
		}
		if err := ecs.SetParent(w, g, root); err != nil {
			return fmt.Errorf("text: attach glyph: %w", err)
		}
		i++
	}
	return nil
}
