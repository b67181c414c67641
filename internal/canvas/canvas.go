// Package canvas provides a styled character-cell grid that renders to
// truecolor ANSI. Widgets draw into it with per-cell writes or bulk
// style fills; the application splices the rendered rows into its view.
package canvas

import (
	"strconv"
	"strings"
)

// Rect is a cell-space rectangle.
type Rect struct {
	X, Y, W, H int
}

// NewRect returns a rectangle with negative dimensions clamped to zero.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: max(w, 0), H: max(h, 0)}
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the cell at (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inner returns r shrunk by margin cells on every side.
func (r Rect) Inner(margin int) Rect {
	return NewRect(r.X+margin, r.Y+margin, r.W-2*margin, r.H-2*margin)
}

// Intersect returns the overlap of r and other, empty when disjoint.
func (r Rect) Intersect(other Rect) Rect {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.X+r.W, other.X+other.W)
	y2 := min(r.Y+r.H, other.Y+other.H)
	return NewRect(x1, y1, x2-x1, y2-y1)
}

// Cell is one character position with its style.
type Cell struct {
	Rune  rune
	Style Style
}

// Surface is the narrow write interface widgets draw through. Canvas
// implements it; tests can substitute a recording stub.
type Surface interface {
	SetCell(x, y int, r rune, style Style)
	SetStyle(r Rect, style Style)
}

var _ Surface = (*Canvas)(nil)

// Canvas is a w×h grid of cells. Writes outside the grid are dropped.
type Canvas struct {
	width  int
	height int
	cells  []Cell
}

// New creates a canvas of the given size filled with blank cells.
// Non-positive dimensions yield an empty canvas.
func New(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	c := &Canvas{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	c.Clear()
	return c
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.height }

// Bounds returns the full canvas rectangle.
func (c *Canvas) Bounds() Rect {
	return Rect{W: c.width, H: c.height}
}

// Clear resets every cell to a blank space with the zero style.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' '}
	}
}

// At returns the cell at (x, y), or a blank cell when out of range.
func (c *Canvas) At(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Cell{Rune: ' '}
	}
	return c.cells[y*c.width+x]
}

// SetCell writes a glyph and style at (x, y). Out-of-range writes are
// silently dropped.
func (c *Canvas) SetCell(x, y int, r rune, style Style) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = Cell{Rune: r, Style: style}
}

// SetStyle patches style over every cell in r, keeping glyphs.
func (c *Canvas) SetStyle(r Rect, style Style) {
	r = r.Intersect(c.Bounds())
	for y := r.Y; y < r.Y+r.H; y++ {
		row := y * c.width
		for x := r.X; x < r.X+r.W; x++ {
			cell := &c.cells[row+x]
			cell.Style = cell.Style.Patch(style)
		}
	}
}

// Fill writes the glyph and style into every cell in r.
func (c *Canvas) Fill(r Rect, glyph rune, style Style) {
	r = r.Intersect(c.Bounds())
	for y := r.Y; y < r.Y+r.H; y++ {
		row := y * c.width
		for x := r.X; x < r.X+r.W; x++ {
			c.cells[row+x] = Cell{Rune: glyph, Style: style}
		}
	}
}

// Render serializes the grid to one ANSI string per row. An SGR
// sequence is emitted only when the style changes from the previous
// cell; every row ends with a reset so the lines compose safely.
func (c *Canvas) Render() []string {
	lines := make([]string, c.height)
	var sb strings.Builder
	for y := 0; y < c.height; y++ {
		sb.Reset()
		var last Style
		styled := false
		for x := 0; x < c.width; x++ {
			cell := c.cells[y*c.width+x]
			if !styled || cell.Style != last {
				writeSGR(&sb, cell.Style)
				last = cell.Style
				styled = true
			}
			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			sb.WriteRune(r)
		}
		if styled {
			sb.WriteString("\x1b[0m")
		}
		lines[y] = sb.String()
	}
	return lines
}

// String returns the rendered canvas joined with newlines.
func (c *Canvas) String() string {
	return strings.Join(c.Render(), "\n")
}

// writeSGR emits a reset followed by the attributes of style.
func writeSGR(sb *strings.Builder, s Style) {
	sb.WriteString("\x1b[0")
	if s.Bold {
		sb.WriteString(";1")
	}
	if s.Reverse {
		sb.WriteString(";7")
	}
	if s.Fg.IsSet() {
		sb.WriteString(";38;2;")
		writeChannels(sb, s.Fg)
	}
	if s.Bg.IsSet() {
		sb.WriteString(";48;2;")
		writeChannels(sb, s.Bg)
	}
	sb.WriteByte('m')
}

func writeChannels(sb *strings.Builder, c Color) {
	sb.WriteString(strconv.Itoa(int(c.R)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.G)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.B)))
}
