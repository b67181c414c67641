package ui

// Base carries the focus flag and dimensions every pane component
// needs. Embed it in a component model to inherit the accessors.
type Base struct {
	width   int
	height  int
	focused bool
}

// SetFocused marks the component focused or not.
func (b *Base) SetFocused(focused bool) { b.focused = focused }

// IsFocused reports whether the component has keyboard focus.
func (b Base) IsFocused() bool { return b.focused }

// SetSize records the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

func (b Base) Width() int { return b.width }

func (b Base) Height() int { return b.height }

// ListHeight is the height left for rows after overhead lines (borders,
// headers, footers) are taken out.
func (b Base) ListHeight(overhead int) int { return b.height - overhead }
