package levels

import (
	"errors"
	"strings"
	"testing"
)

func TestParseDoorCounts(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		doors   int
	}{
		{
			name:  "declarations_first",
			input: "/house.txt 4 5\n/cave.txt 1 2\n#D#\n#D#\n",
			doors: 2,
		},
		{
			name:  "declarations_trailing",
			input: "#D#\n#D#\n/house.txt 4 5\n/cave.txt 1 2\n",
			doors: 2,
		},
		{
			name:  "no_doors",
			input: "###\n#.#\n###\n",
			doors: 0,
		},
		{
			name:    "more_doors_than_declarations",
			input:   "/house.txt 4 5\n#DD#\n",
			wantErr: ErrMissingDoorDeclaration,
		},
		{
			name:    "more_declarations_than_doors",
			input:   "/house.txt 4 5\n/cave.txt 1 2\n#D#\n",
			wantErr: ErrUnusedDoorDeclaration,
		},
		{
			name:    "door_without_any_declaration",
			input:   "#D#\n",
			wantErr: ErrMissingDoorDeclaration,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := Parse(strings.NewReader(tc.input))
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(m.Doors) != tc.doors {
				t.Fatalf("expected %d doors, got %d", tc.doors, len(m.Doors))
			}
		})
	}
}

func TestParseMalformedDoor(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing_y", "/house.txt 4\n#D#\n"},
		{"missing_everything", "/\n"},
		{"non_numeric_x", "/house.txt four 5\n#D#\n"},
		{"non_numeric_y", "/house.txt 4 5.5\n#D#\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input))
			if !errors.Is(err, ErrMalformedDoor) {
				t.Fatalf("expected ErrMalformedDoor, got %v", err)
			}
			if !strings.Contains(err.Error(), "line 1") {
				t.Fatalf("expected the line number in %q", err)
			}
		})
	}
}

func TestParseDoorBindingFollowsScanOrder(t *testing.T) {
	input := "/first.txt 1 1\n/second.txt 2 2\n/third.txt 3 3\n" +
		"#.D#\n" +
		"#D.D\n"
	m, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	want := map[[2]int]string{
		{2, 0}: "first.txt",
		{1, 1}: "second.txt",
		{3, 1}: "third.txt",
	}
	for _, tile := range m.Tiles() {
		if tile.Kind != TileDoor {
			continue
		}
		d, ok := m.Door(tile)
		if !ok {
			t.Fatalf("door at %d,%d has no destination", tile.Col, tile.Row)
		}
		if d.Path != want[[2]int{tile.Col, tile.Row}] {
			t.Fatalf("door at %d,%d bound to %q", tile.Col, tile.Row, d.Path)
		}
	}
}

func TestParseCommentRowsDoNotShiftTiles(t *testing.T) {
	input := "/a.txt 1 1\n###\n/b.txt 2 2\n#D#\n#D#\n"
	m, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Rows) != 3 {
		t.Fatalf("expected 3 tile rows, got %d", len(m.Rows))
	}
	for r, row := range m.Rows {
		for _, tile := range row {
			if tile.Row != r {
				t.Fatalf("tile %q has row %d, want %d", tile.Char, tile.Row, r)
			}
		}
	}
	x, y := m.Rows[2][1].WorldPos()
	if x != 32 || y != -64 {
		t.Fatalf("expected world (32,-64), got (%v,%v)", x, y)
	}
}

func TestParseTrailingCommentEndsRow(t *testing.T) {
	m, err := Parse(strings.NewReader("#D#/house.txt 1 2\n#.#\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Rows) != 2 || len(m.Rows[0]) != 3 {
		t.Fatalf("unexpected grid %q", Format(m))
	}
	if m.Rows[1][0].Row != 1 {
		t.Fatalf("row after a mixed row should keep its own index")
	}
	if d := m.Doors[0]; d.Path != "house.txt" || d.X != 1 || d.Y != 2 {
		t.Fatalf("unexpected door %+v", d)
	}
}

func TestParseTileKinds(t *testing.T) {
	m, err := Parse(strings.NewReader("#W.GRT@x\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []TileKind{TileWall, TileWater, TileFloor, TileGrass, TileRock, TileTree, TileStatue, TileUnknown}
	for i, tile := range m.Rows[0] {
		if tile.Kind != want[i] {
			t.Fatalf("col %d: expected %v, got %v", i, want[i], tile.Kind)
		}
	}
	if !Lookup('#').Collider || !Lookup('W').Collider || Lookup('.').Collider {
		t.Fatalf("unexpected collider flags")
	}
	if !Lookup('G').Encounter {
		t.Fatalf("grass should be an encounter zone")
	}
	if Lookup('x').Char != 'x' || Lookup('x').Kind != TileUnknown {
		t.Fatalf("unknown characters should keep their char")
	}
}

func TestFormatRoundTrip(t *testing.T) {
	grids := []string{
		"###\n#.#\n###\n",
		"#########\n#..GGG..#\n#.W.T.R.#\n#########\n",
		"##\n\n..\n",
		"#x?#\n",
	}
	for _, grid := range grids {
		m, err := Parse(strings.NewReader(grid))
		if err != nil {
			t.Fatalf("parse %q: %v", grid, err)
		}
		if got := Format(m); got != grid {
			t.Fatalf("round trip mismatch:\nwant %q\ngot  %q", grid, got)
		}
	}
}

func TestFormatDropsDeclarations(t *testing.T) {
	m, err := Parse(strings.NewReader("/house.txt 1 1\n#D#\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := Format(m); got != "#D#\n" {
		t.Fatalf("unexpected format %q", got)
	}
}

func TestShippedMapsLoad(t *testing.T) {
	for _, name := range []string{StartMap, "assets/house.txt", "levels/cave.txt", "house"} {
		m, err := Load(name)
		if err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		for id, d := range m.Doors {
			if _, err := Load(d.Path); err != nil {
				t.Fatalf("%s door %d points at %s: %v", m.Name, id, d.Path, err)
			}
		}
	}
}

func TestLoadMissingMap(t *testing.T) {
	if _, err := Load("does-not-exist.txt"); err == nil {
		t.Fatalf("expected an error for a missing map")
	}
}

func TestCleanName(t *testing.T) {
	tests := map[string]string{
		"assets/map.txt": "map.txt",
		"levels/cave":    "cave.txt",
		"house.txt":      "house.txt",
		"":               "",
	}
	for in, want := range tests {
		if got := CleanName(in); got != want {
			t.Fatalf("CleanName(%q) = %q, want %q", in, got, want)
		}
	}
}
