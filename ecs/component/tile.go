package component

import "github.com/milk9111/monsterfighter/levels"

// Tile is the logical side of one map cell.
type Tile struct {
	Kind levels.TileKind
	Col  int
	Row  int
}

var TileComponent = NewComponent[Tile]()

// Door is the destination attached to a door tile.
type Door struct {
	Path string
	X    int
	Y    int
}

var DoorComponent = NewComponent[Door]()
