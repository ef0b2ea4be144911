package component

import "image/color"

// HealthTextID identifies the enemy health label.
const HealthTextID = 2

// AsciiText is the root of a row of glyph sprites. ID 0 means no particular
// text.
type AsciiText struct {
	ID    int
	Text  string
	Color color.NRGBA
}

var AsciiTextComponent = NewComponent[AsciiText]()
