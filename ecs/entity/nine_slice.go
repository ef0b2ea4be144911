package entity

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/milk9111/monsterfighter/common"
	"github.com/milk9111/monsterfighter/ecs"
	"github.com/milk9111/monsterfighter/ecs/component"
	"github.com/milk9111/monsterfighter/prefabs"
)

var ErrNineSliceTooSmall = errors.New("entity: nine slice needs at least 2x2 cells")

// SpawnNineSlice builds a bordered panel of width x height cells whose
// upper-left cell is centered at x, y. Children are laid out row by row.
func SpawnNineSlice(w *ecs.World, spec prefabs.NineSliceSpec, x, y float64, width, height int, c color.NRGBA) (ecs.Entity, error) {
	if width < 2 || height < 2 {
		return 0, fmt.Errorf("%w: got %dx%d", ErrNineSliceTooSmall, width, height)
	}

	root := ecs.CreateEntity(w)
	if err := ecs.Add(w, root, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("nine slice: add transform: %w", err)
	}
	if err := ecs.Add(w, root, component.NineSliceComponent.Kind(), &component.NineSlice{Width: width, Height: height}); err != nil {
		return 0, fmt.Errorf("nine slice: add nine slice: %w", err)
	}
	if err := addName(w, root, "panel"); err != nil {
		return 0, fmt.Errorf("nine slice: add name: %w", err)
	}

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			glyph := nineSliceGlyph(spec, col, row, width, height)
			if glyph < 0 {
				continue
			}
			cell, err := SpawnGlyph(w, glyph, c, float64(col)*common.TileSize, -float64(row)*common.TileSize, 0, 1)
			if err != nil {
				return 0, fmt.Errorf("nine slice: cell %d,%d: %w", col, row, err)
			}
			if err := ecs.SetParent(w, cell, root); err != nil {
				return 0, fmt.Errorf("nine slice: attach cell: %w", err)
			}
		}
	}
	return root, nil
}

func nineSliceGlyph(spec prefabs.NineSliceSpec, col, row, width, height int) int {
	left, right := col == 0, col == width-1
	top, bottom := row == 0, row == height-1
	switch {
	case top && left:
		return int(spec.UpperLeft)
	case top && right:
		return int(spec.UpperRight)
	case bottom && left:
		return int(spec.LowerLeft)
	case bottom && right:
		return int(spec.LowerRight)
	case top || bottom:
		return int(spec.Horizontal)
	case left || right:
		return int(spec.Vertical)
	default:
		return int(spec.Fill)
	}
}
