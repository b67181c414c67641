package canvas

// Color is a 24-bit terminal color. The zero value is "unset" and
// renders as the terminal default.
type Color struct {
	R, G, B uint8
	set     bool
}

// RGB returns a set color with the given channel values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, set: true}
}

// IsSet reports whether the color carries an explicit RGB value.
func (c Color) IsSet() bool {
	return c.set
}

// Style holds per-cell rendering attributes. Unset fields inherit from
// whatever style was already on the cell when patched over it.
type Style struct {
	Fg      Color
	Bg      Color
	Bold    bool
	Reverse bool
}

// Patch returns s with other's set attributes layered on top.
// Unset colors in other leave s's colors untouched; boolean attributes
// are additive.
func (s Style) Patch(other Style) Style {
	if other.Fg.IsSet() {
		s.Fg = other.Fg
	}
	if other.Bg.IsSet() {
		s.Bg = other.Bg
	}
	if other.Bold {
		s.Bold = true
	}
	if other.Reverse {
		s.Reverse = true
	}
	return s
}

// Foreground returns a copy of s with the foreground replaced.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns a copy of s with the background replaced.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}
