package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/emviz/internal/scene"
)

// Braille cells hold a 2x4 dot matrix:
//
//	1 4
//	2 5
//	3 6
//	7 8
const brailleBase = 0x2800

var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a Braille dot canvas. Each cell also remembers the colour of
// the last dot drawn into it, so painter-ordered drawing leaves the nearest
// primitive's colour on top.
type Canvas struct {
	Width, Height int

	cells  []rune
	colors []scene.Color
}

func NewCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		cells:  make([]rune, w*h),
		colors: make([]scene.Color, w*h),
	}
	c.Clear()
	return c
}

// Dots returns the canvas size in dots.
func (c *Canvas) Dots() (w, h int) { return c.Width * 2, c.Height * 4 }

func (c *Canvas) cell(x, y int) (int, rune, bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return 0, 0, false
	}
	return row*c.Width + col, dotBits[y%4][x%2], true
}

// Set lights the dot at (x, y) in colour col. Out-of-range dots are ignored.
func (c *Canvas) Set(x, y int, col scene.Color) {
	i, bit, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.cells[i] |= bit
	c.colors[i] = col
}

func (c *Canvas) Unset(x, y int) {
	i, bit, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.cells[i] &^= bit
}

// Lit reports whether the dot at (x, y) is set.
func (c *Canvas) Lit(x, y int) bool {
	i, bit, ok := c.cell(x, y)
	return ok && c.cells[i]&bit != 0
}

func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = brailleBase
		c.colors[i] = 0
	}
}

// Line draws from (x0, y0) to (x1, y1) with Bresenham's algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int, col scene.Color) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Cell returns the glyph and colour at a cell position.
func (c *Canvas) Cell(col, row int) (rune, scene.Color) {
	i := row*c.Width + col
	return c.cells[i], c.colors[i]
}

// Filled counts cells with at least one dot.
func (c *Canvas) Filled() int {
	n := 0
	for _, r := range c.cells {
		if r != brailleBase {
			n++
		}
	}
	return n
}

// String renders the canvas without colour.
func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow(c.Height * (c.Width*3 + 1))
	for row := 0; row < c.Height; row++ {
		b.WriteString(string(c.cells[row*c.Width : (row+1)*c.Width]))
		b.WriteByte('\n')
	}
	return b.String()
}

// Render colours each lit cell with its primitive's colour. Runs of the
// same colour share one style.
func (c *Canvas) Render() string {
	var b strings.Builder
	for row := 0; row < c.Height; row++ {
		var run []rune
		var runColor scene.Color
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runColor == 0 {
				b.WriteString(string(run))
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runColor.Hex())).Render(string(run)))
			}
			run = run[:0]
		}
		for col := 0; col < c.Width; col++ {
			r, clr := c.Cell(col, row)
			if r == brailleBase {
				clr = 0
			}
			if clr != runColor {
				flush()
				runColor = clr
			}
			run = append(run, r)
		}
		flush()
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
