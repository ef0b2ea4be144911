package levels

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/milk9111/monsterfighter/common"
)

const commentChar = '/'

var (
	ErrMalformedDoor          = errors.New("levels: malformed door declaration")
	ErrMissingDoorDeclaration = errors.New("levels: more doors in map than declared destinations")
	ErrUnusedDoorDeclaration  = errors.New("levels: more declared destinations than doors in map")
)

// DoorID is the ordinal of a door tile in scan order (top to bottom, left to
// right). NoDoor marks tiles that are not doors.
type DoorID int

const NoDoor DoorID = -1

// Door is the destination of a door: a map path and the grid cell the
// player is placed on.
type Door struct {
	Path string
	X    int
	Y    int
}

type Tile struct {
	Kind   TileKind
	Char   rune
	Col    int
	Row    int
	DoorID DoorID
}

// WorldPos returns the center of the tile in world units (y up).
func (t Tile) WorldPos() (float64, float64) {
	return GridToWorld(t.Col, t.Row)
}

// GridToWorld converts a grid cell to world units (y up).
func GridToWorld(col, row int) (float64, float64) {
	return common.TileSize * float64(col), -common.TileSize * float64(row)
}

// Map is a parsed tilemap. Rows keeps empty lines as empty rows so the grid
// can be written back unchanged.
type Map struct {
	Name  string
	Rows  [][]Tile
	Doors map[DoorID]Door
}

// Parse reads the text map format. Every character of a row is a tile until
// a '/' is met; the rest of that row is a door declaration "<path> <x> <y>".
// Rows that start with '/' do not occupy a tile row.
//
// Door tiles are bound to declarations by order: the Nth 'D' in scan order
// receives the Nth declaration in file order. The counts must match.
func Parse(r io.Reader) (*Map, error) {
	m := &Map{Doors: make(map[DoorID]Door)}
	var (
		decls   []Door
		doorIDs []DoorID
		row     int
	)

	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimRight(scanner.Text(), "\r")

		var tiles []Tile
		comment := -1
		col := 0
		for i, c := range line {
			if c == commentChar {
				comment = i
				break
			}
			def := Lookup(c)
			t := Tile{Kind: def.Kind, Char: c, Col: col, Row: row, DoorID: NoDoor}
			if def.Kind == TileDoor {
				t.DoorID = DoorID(len(doorIDs))
				doorIDs = append(doorIDs, t.DoorID)
			}
			tiles = append(tiles, t)
			col++
		}

		if comment >= 0 {
			door, err := parseDoor(line[comment+1:])
			if err != nil {
				return nil, fmt.Errorf("levels: line %d: %w", lineNo, err)
			}
			decls = append(decls, door)
			if len(tiles) == 0 {
				continue
			}
		}

		m.Rows = append(m.Rows, tiles)
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("levels: read: %w", err)
	}

	if len(doorIDs) > len(decls) {
		return nil, fmt.Errorf("%w: %d doors, %d declarations", ErrMissingDoorDeclaration, len(doorIDs), len(decls))
	}
	if len(decls) > len(doorIDs) {
		return nil, fmt.Errorf("%w: %d doors, %d declarations", ErrUnusedDoorDeclaration, len(doorIDs), len(decls))
	}
	for i, id := range doorIDs {
		m.Doors[id] = decls[i]
	}
	return m, nil
}

func parseDoor(s string) (Door, error) {
	words := strings.Fields(s)
	if len(words) < 3 {
		return Door{}, fmt.Errorf("%w: want \"<path> <x> <y>\", got %q", ErrMalformedDoor, s)
	}
	x, err := strconv.Atoi(words[1])
	if err != nil {
		return Door{}, fmt.Errorf("%w: bad x coordinate %q", ErrMalformedDoor, words[1])
	}
	y, err := strconv.Atoi(words[2])
	if err != nil {
		return Door{}, fmt.Errorf("%w: bad y coordinate %q", ErrMalformedDoor, words[2])
	}
	return Door{Path: words[0], X: x, Y: y}, nil
}

// Format writes the tile grid back in the text format. Door declarations
// are not written.
func Format(m *Map) string {
	if m == nil {
		return ""
	}
	var b strings.Builder
	for _, row := range m.Rows {
		for _, t := range row {
			b.WriteRune(t.Char)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Tiles returns every tile in scan order.
func (m *Map) Tiles() []Tile {
	var out []Tile
	for _, row := range m.Rows {
		out = append(out, row...)
	}
	return out
}

// Door returns the destination bound to a door tile.
func (m *Map) Door(t Tile) (Door, bool) {
	if t.DoorID == NoDoor {
		return Door{}, false
	}
	d, ok := m.Doors[t.DoorID]
	return d, ok
}

// Size returns the widest row and the row count.
func (m *Map) Size() (int, int) {
	w := 0
	for _, row := range m.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w, len(m.Rows)
}
