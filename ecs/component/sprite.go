package component

import "image/color"

// Sprite draws one cell of the 16x16 glyph sheet tinted by Color.
type Sprite struct {
	Glyph  int
	Color  color.NRGBA
	Size   float64 // world units; 0 means one tile
	Hidden bool
}

var SpriteComponent = NewComponent[Sprite]()
