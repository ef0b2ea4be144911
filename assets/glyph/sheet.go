// Package glyph paints the 16x16 cell glyph sheet used for every sprite.
// Cells are white on transparent so they can be tinted when drawn.
package glyph

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	Cell    = 16
	Columns = 16
	Count   = 256

	Solid      = 0
	Smiley     = 1
	SmileyFull = 2
	ShadeLight = 176
	ShadeMid   = 177
	ShadeDark  = 178
	Vertical   = 179
	DownLeft   = 191
	UpRight    = 192
	Horizontal = 196
	UpLeft     = 217
	DownRight  = 218
	FullBlock  = 219
	LowerHalf  = 220
	LeftHalf   = 221
	RightHalf  = 222
	UpperHalf  = 223
)

// Rect returns the cell of index in the sheet.
func Rect(index int) image.Rectangle {
	x := (index % Columns) * Cell
	y := (index / Columns) * Cell
	return image.Rect(x, y, x+Cell, y+Cell)
}

var (
	sheetOnce sync.Once
	sheet     *image.NRGBA
)

// Sheet returns the shared glyph sheet, painting it on first use.
func Sheet() *image.NRGBA {
	sheetOnce.Do(func() {
		sheet = Paint()
	})
	return sheet
}

// Paint builds a new glyph sheet. Printable ASCII and Latin-1 come from
// basicfont; the block, shade, box and face glyphs are painted by hand.
func Paint() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, Columns*Cell, Count/Columns*Cell))

	d := &font.Drawer{Dst: img, Src: image.White, Face: basicfont.Face7x13}
	for i := 32; i < Count; i++ {
		if i >= 127 && i < 160 {
			continue
		}
		r := Rect(i)
		d.Dot = fixed.P(r.Min.X+(Cell-7)/2, r.Min.Y+(Cell-13)/2+11)
		d.DrawString(string(rune(i)))
	}

	for index, paint := range painters {
		r := Rect(index)
		draw.Draw(img, r, image.Transparent, image.Point{}, draw.Src)
		paint(cell{img: img, r: r})
	}
	return img
}

type cell struct {
	img *image.NRGBA
	r   image.Rectangle
}

func (c cell) set(x, y int) {
	if x < 0 || y < 0 || x >= Cell || y >= Cell {
		return
	}
	c.img.SetNRGBA(c.r.Min.X+x, c.r.Min.Y+y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
}

func (c cell) fill(x0, y0, x1, y1 int) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.set(x, y)
		}
	}
}

// The box lines are two pixels wide through the cell center.
const (
	mid0 = Cell/2 - 1
	mid1 = Cell/2 + 1
)

var painters = map[int]func(cell){
	Solid:     func(c cell) { c.fill(0, 0, Cell, Cell) },
	FullBlock: func(c cell) { c.fill(0, 0, Cell, Cell) },
	LowerHalf: func(c cell) { c.fill(0, Cell/2, Cell, Cell) },
	UpperHalf: func(c cell) { c.fill(0, 0, Cell, Cell/2) },
	LeftHalf:  func(c cell) { c.fill(0, 0, Cell/2, Cell) },
	RightHalf: func(c cell) { c.fill(Cell/2, 0, Cell, Cell) },

	ShadeLight: func(c cell) { shade(c, 4) },
	ShadeMid:   func(c cell) { shade(c, 2) },
	ShadeDark: func(c cell) {
		c.fill(0, 0, Cell, Cell)
		for y := 0; y < Cell; y += 2 {
			for x := y % 4; x < Cell; x += 4 {
				c.img.SetNRGBA(c.r.Min.X+x, c.r.Min.Y+y, color.NRGBA{})
			}
		}
	},

	Vertical:   func(c cell) { c.fill(mid0, 0, mid1, Cell) },
	Horizontal: func(c cell) { c.fill(0, mid0, Cell, mid1) },
	DownRight: func(c cell) {
		c.fill(mid0, mid0, Cell, mid1)
		c.fill(mid0, mid0, mid1, Cell)
	},
	DownLeft: func(c cell) {
		c.fill(0, mid0, mid1, mid1)
		c.fill(mid0, mid0, mid1, Cell)
	},
	UpRight: func(c cell) {
		c.fill(mid0, mid0, Cell, mid1)
		c.fill(mid0, 0, mid1, mid1)
	},
	UpLeft: func(c cell) {
		c.fill(0, mid0, mid1, mid1)
		c.fill(mid0, 0, mid1, mid1)
	},

	Smiley:     func(c cell) { face(c, false) },
	SmileyFull: func(c cell) { face(c, true) },
}

// shade sets one pixel in every step x step block, offset per row.
func shade(c cell, step int) {
	for y := 0; y < Cell; y++ {
		for x := (y / (step / 2)) % 2 * (step / 2); x < Cell; x += step {
			if y%(step/2) == 0 {
				c.set(x, y)
			}
		}
	}
}

// face draws a round face. The outline variant has lit features; the filled
// variant cuts them out.
func face(c cell, filled bool) {
	const cx, cy, r = 7.5, 7.5, 6.5
	for y := 0; y < Cell; y++ {
		for x := 0; x < Cell; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			d2 := dx*dx + dy*dy
			if filled && d2 <= r*r || !filled && d2 <= r*r && d2 >= (r-1.2)*(r-1.2) {
				c.set(x, y)
			}
		}
	}

	features := [][2]int{
		{5, 5}, {5, 6}, {10, 5}, {10, 6}, // eyes
		{4, 9}, {5, 10}, {6, 11}, {7, 11}, {8, 11}, {9, 11}, {10, 10}, {11, 9}, // mouth
	}
	for _, p := range features {
		if filled {
			c.img.SetNRGBA(c.r.Min.X+p[0], c.r.Min.Y+p[1], color.NRGBA{})
		} else {
			c.set(p[0], p[1])
		}
	}
}
