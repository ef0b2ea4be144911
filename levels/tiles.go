package levels

import (
	"image/color"

	"golang.org/x/image/colornames"
)

type TileKind int

const (
	TileUnknown TileKind = iota
	TileWall
	TileWater
	TileFloor
	TileGrass
	TileDoor
	TileRock
	TileTree
	TileStatue
)

// TileDef describes how a map character is drawn and what it does.
type TileDef struct {
	Kind      TileKind
	Char      rune
	Name      string
	Glyph     int
	Color     color.NRGBA
	Collider  bool
	Encounter bool
}

var tileDefs = map[rune]TileDef{
	'#': {Kind: TileWall, Char: '#', Name: "wall", Glyph: 178, Color: nrgba(colornames.Slategray), Collider: true},
	'W': {Kind: TileWater, Char: 'W', Name: "water", Glyph: '~', Color: nrgba(colornames.Royalblue), Collider: true},
	'.': {Kind: TileFloor, Char: '.', Name: "floor", Glyph: '.', Color: nrgba(colornames.Dimgray)},
	'G': {Kind: TileGrass, Char: 'G', Name: "grass", Glyph: '"', Color: nrgba(colornames.Forestgreen), Encounter: true},
	'D': {Kind: TileDoor, Char: 'D', Name: "door", Glyph: '+', Color: nrgba(colornames.Sandybrown)},
	'R': {Kind: TileRock, Char: 'R', Name: "rock", Glyph: '*', Color: nrgba(colornames.Darkgray)},
	'T': {Kind: TileTree, Char: 'T', Name: "tree", Glyph: '^', Color: nrgba(colornames.Seagreen)},
	'@': {Kind: TileStatue, Char: '@', Name: "statue", Glyph: '&', Color: nrgba(colornames.Lightsteelblue)},
}

// unknownDef is used for characters missing from the table. It is drawn in
// a loud color so mapping mistakes are visible in game.
var unknownDef = TileDef{Kind: TileUnknown, Name: "unknown", Glyph: '?', Color: nrgba(colornames.Magenta)}

// Lookup returns the definition for a map character.
func Lookup(c rune) TileDef {
	if def, ok := tileDefs[c]; ok {
		return def
	}
	def := unknownDef
	def.Char = c
	return def
}

// Def returns the definition of a tile kind.
func (k TileKind) Def() TileDef {
	for _, def := range tileDefs {
		if def.Kind == k {
			return def
		}
	}
	return unknownDef
}

func (k TileKind) String() string {
	return k.Def().Name
}

func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
