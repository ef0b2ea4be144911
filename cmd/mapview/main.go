// Command mapview prints a level map in the terminal so doors and tile
// kinds can be checked without starting the game.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/monsterfighter/levels"
)

// glyphRunes maps the sheet glyphs used by the tile table that are outside
// printable ASCII.
var glyphRunes = map[int]rune{
	176: '░',
	177: '▒',
	178: '▓',
	219: '█',
}

// cellRune is the terminal rune drawn for a tile.
func cellRune(def levels.TileDef) rune {
	if r, ok := glyphRunes[def.Glyph]; ok {
		return r
	}
	if def.Glyph >= 32 && def.Glyph < 127 {
		return rune(def.Glyph)
	}
	if def.Char != 0 {
		return def.Char
	}
	return '?'
}

func cellStyle(def levels.TileDef, useColor bool) tcell.Style {
	if !useColor {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(toTcell(def.Color))
}

func toTcell(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// doorLines describes every door of m in scan order.
func doorLines(m *levels.Map) []string {
	var out []string
	for _, t := range m.Tiles() {
		d, ok := m.Door(t)
		if !ok {
			continue
		}
		out = append(out, fmt.Sprintf("door %d at %d,%d -> %s %d,%d", t.DoorID, t.Col, t.Row, d.Path, d.X, d.Y))
	}
	return out
}

type viewer struct {
	screen   tcell.Screen
	m        *levels.Map
	useColor bool
}

func (v *viewer) draw() {
	v.screen.Clear()
	for _, row := range v.m.Rows {
		for _, t := range row {
			def := levels.Lookup(t.Char)
			v.screen.SetContent(t.Col, t.Row, cellRune(def), nil, cellStyle(def, v.useColor))
		}
	}

	_, h := v.m.Size()
	y := h + 1
	header := fmt.Sprintf("%s (q to quit)", v.m.Name)
	v.text(0, y, header)
	for _, line := range doorLines(v.m) {
		y++
		v.text(0, y, line)
	}
	v.screen.Show()
}

func (v *viewer) text(x, y int, s string) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x++
	}
}

func (v *viewer) run() {
	v.draw()
	for {
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return
			}
		case *tcell.EventResize:
			v.screen.Sync()
			v.draw()
		case nil:
			return
		}
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("mapview: ")

	useColor := flag.Bool("color", true, "draw tiles in their map colors")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: mapview [-color] <map>")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	m, err := levels.Load(flag.Arg(0))
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	v := &viewer{screen: screen, m: m, useColor: *useColor}
	v.run()
}
