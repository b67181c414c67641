package canvas

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/halftone/internal/ui/render"
)

// Box draws a one-cell border with an optional title in the top edge.
// The border glyphs come from a lipgloss border set.
type Box struct {
	Title  string
	Border lipgloss.Border
	Style  Style
}

// NewBox returns a rounded-border box with no title.
func NewBox() Box {
	return Box{Border: lipgloss.RoundedBorder()}
}

// WithTitle returns the box with the given title.
func (b Box) WithTitle(title string) Box {
	b.Title = title
	return b
}

// WithStyle returns the box with the given border style.
func (b Box) WithStyle(style Style) Box {
	b.Style = style
	return b
}

// Draw renders the box edges into s and returns the interior rectangle.
// Rectangles too small for an interior yield an empty rect; the border
// is clipped to whatever fits.
func (b Box) Draw(s Surface, r Rect) Rect {
	if r.Empty() {
		return NewRect(r.X, r.Y, 0, 0)
	}

	top := borderRune(b.Border.Top)
	bottom := borderRune(b.Border.Bottom)
	left := borderRune(b.Border.Left)
	right := borderRune(b.Border.Right)

	for x := r.X + 1; x < r.X+r.W-1; x++ {
		s.SetCell(x, r.Y, top, b.Style)
		s.SetCell(x, r.Y+r.H-1, bottom, b.Style)
	}
	for y := r.Y + 1; y < r.Y+r.H-1; y++ {
		s.SetCell(r.X, y, left, b.Style)
		s.SetCell(r.X+r.W-1, y, right, b.Style)
	}

	s.SetCell(r.X, r.Y, borderRune(b.Border.TopLeft), b.Style)
	s.SetCell(r.X+r.W-1, r.Y, borderRune(b.Border.TopRight), b.Style)
	s.SetCell(r.X, r.Y+r.H-1, borderRune(b.Border.BottomLeft), b.Style)
	s.SetCell(r.X+r.W-1, r.Y+r.H-1, borderRune(b.Border.BottomRight), b.Style)

	if b.Title != "" && r.W > 4 {
		title := " " + render.Truncate(b.Title, r.W-4) + " "
		x := r.X + 1
		for _, tr := range title {
			if x >= r.X+r.W-1 {
				break
			}
			s.SetCell(x, r.Y, tr, b.Style)
			x++
		}
	}

	return r.Inner(1)
}

// borderRune returns the first rune of a border segment, space if empty.
func borderRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}
