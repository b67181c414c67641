// Package cursor tracks the selected row and scroll window of a list pane.
package cursor

// Cursor keeps a selection index and the scroll offset needed to keep it
// on screen. List length and viewport height are passed to each method
// rather than stored, since both change on every resize and rescan.
type Cursor struct {
	pos    int
	offset int
	margin int
}

// New returns a cursor that keeps margin rows visible above and below
// the selection while scrolling.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the selected index.
func (c Cursor) Pos() int { return c.pos }

// Offset returns the index of the first visible row.
func (c Cursor) Offset() int { return c.offset }

// Move shifts the selection by delta rows, clamped to the list.
func (c *Cursor) Move(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(c.pos+delta, listLen-1)
	c.scrollTo(listLen, height)
}

// Jump selects an absolute index, clamped to the list.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.scrollTo(listLen, height)
}

// JumpStart selects the first row.
func (c *Cursor) JumpStart() {
	c.pos = 0
	c.offset = 0
}

// JumpEnd selects the last row.
func (c *Cursor) JumpEnd(listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = listLen - 1
	c.scrollTo(listLen, height)
}

// EnsureVisible rescrolls after the selection changed through some other
// path, such as a rescan that renumbered the rows.
func (c *Cursor) EnsureVisible(listLen, height int) {
	c.scrollTo(listLen, height)
}

func (c *Cursor) scrollTo(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}
	if c.pos < c.offset+c.margin {
		c.offset = max(c.pos-c.margin, 0)
	}
	if c.pos >= c.offset+height-c.margin {
		c.offset = c.pos - height + c.margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

// Center scrolls so the selection sits mid-viewport, as far as the list
// edges allow. Used when restoring a remembered selection.
func (c *Cursor) Center(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}
	c.offset = min(max(c.pos-height/2, 0), max(listLen-height, 0))
}

// ClampToBounds pulls the selection back into range after the list
// shrank. Reports whether it moved.
func (c *Cursor) ClampToBounds(listLen int) bool {
	if listLen == 0 {
		moved := c.pos != 0 || c.offset != 0
		c.pos = 0
		c.offset = 0
		return moved
	}
	old := c.pos
	c.pos = clamp(c.pos, listLen-1)
	return c.pos != old
}

// VisibleRange returns the half-open row range [start, end) to draw.
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

// Reset returns to the top of a fresh list.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

// HandleKey applies vi-style list navigation and reports whether key is
// one of its bindings. j/k and the arrows move one row, g/G and home/end
// jump to the edges, pgup/pgdown page, ctrl+u/ctrl+d move half a page.
func (c *Cursor) HandleKey(key string, listLen, height int) bool {
	switch key {
	case "j", "down":
		c.Move(1, listLen, height)
	case "k", "up":
		c.Move(-1, listLen, height)
	case "g", "home":
		c.JumpStart()
	case "G", "end":
		c.JumpEnd(listLen, height)
	case "pgdown":
		c.Move(height, listLen, height)
	case "pgup":
		c.Move(-height, listLen, height)
	case "ctrl+d":
		c.Move(height/2, listLen, height)
	case "ctrl+u":
		c.Move(-height/2, listLen, height)
	default:
		return false
	}
	return true
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	return min(v, maxVal)
}
