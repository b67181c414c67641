// Package ui holds the sizing constants shared across panes plus the
// Base component they embed.
package ui

const (
	// ScrollMargin is how many items stay visible above and below the
	// cursor while scrolling.
	ScrollMargin = 5

	// BorderHeight is the rows a panel border takes.
	BorderHeight = 2

	// HeaderHeight is the rows for a panel title and its separator.
	HeaderHeight = 2

	// PanelOverhead is what a panel consumes around its list, so
	// listHeight = panelHeight - PanelOverhead.
	PanelOverhead = BorderHeight + HeaderHeight

	// The browser pane takes a quarter of the window, clamped to stay
	// usable on narrow terminals and reasonable on wide ones.
	BrowserWidthDivisor = 4
	MinBrowserWidth     = 24
	MaxBrowserWidth     = 48
)
