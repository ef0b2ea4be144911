package entity

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/milk9111/monsterfighter/ecs"
	"github.com/milk9111/monsterfighter/ecs/component"
)

// GlyphCount is the number of cells in the glyph sheet.
const GlyphCount = 256

var ErrGlyphOutOfRange = errors.New("entity: glyph outside the sheet")

func checkGlyph(glyph int) error {
	if glyph < 0 || glyph >= GlyphCount {
		return fmt.Errorf("%w: %d", ErrGlyphOutOfRange, glyph)
	}
	return nil
}

// SpawnGlyph creates one tinted glyph sprite centered at x, y.
func SpawnGlyph(w *ecs.World, glyph int, c color.NRGBA, x, y, z, scale float64) (ecs.Entity, error) {
	if err := checkGlyph(glyph); err != nil {
		return 0, fmt.Errorf("glyph: %w", err)
	}
	if scale == 0 {
		scale = 1
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:      x,
		Y:      y,
		Z:      z,
		ScaleX: scale,
		ScaleY: scale,
	}); err != nil {
		return 0, fmt.Errorf("glyph: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Glyph: glyph,
		Color: c,
	}); err != nil {
		return 0, fmt.Errorf("glyph: add sprite: %w", err)
	}
	return e, nil
}

// SetHidden hides or shows root and every descendant that has a sprite.
func SetHidden(w *ecs.World, root ecs.Entity, hidden bool) {
	kind := component.SpriteComponent.Kind()
	if s, ok := ecs.Get(w, root, kind); ok {
		s.Hidden = hidden
	}
	for _, e := range ecs.Descendants(w, root) {
		if s, ok := ecs.Get(w, e, kind); ok {
			s.Hidden = hidden
		}
	}
}

// Recolor tints root and every descendant that has a sprite.
func Recolor(w *ecs.World, root ecs.Entity, c color.NRGBA) {
	kind := component.SpriteComponent.Kind()
	if s, ok := ecs.Get(w, root, kind); ok {
		s.Color = c
	}
	for _, e := range ecs.Descendants(w, root) {
		if s, ok := ecs.Get(w, e, kind); ok {
			s.Color = c
		}
	}
}

func addName(w *ecs.World, e ecs.Entity, name string) error {
	return ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: name})
}
