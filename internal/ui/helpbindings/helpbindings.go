// Package helpbindings shows the key bindings in a scrollable popup.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/halftone/internal/keymap"
	"github.com/llehouerou/halftone/internal/ui"
	"github.com/llehouerou/halftone/internal/ui/popup"
	"github.com/llehouerou/halftone/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// Categories render in this order regardless of the order the contexts
// are passed in.
var categoryOrder = []string{"global", "browser", "viewer"}

var categoryLabels = map[string]string{
	"global":  "Global",
	"browser": "File Browser",
	"viewer":  "Image Viewer",
}

// Model is the help popup state.
type Model struct {
	ui.Base
	bindings     []keymap.Binding
	scrollOffset int
}

func New() Model {
	return Model{}
}

// SetContexts restricts the listing to the given binding contexts and
// resets the scroll position.
func (m *Model) SetContexts(contexts []string) {
	m.bindings = nil
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
		}
	}
	m.scrollOffset = 0
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup. Close keys emit ActionMsg(Close{}),
// j/k scroll the listing.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return m, nil
}

// View implements popup.Popup. The popup manager draws the border.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	lines := m.contentLines()

	// Width is taken over all lines, not just visible ones, so the
	// popup does not change size while scrolling.
	width := 0
	for _, line := range lines {
		width = max(width, lipgloss.Width(line))
	}

	window := m.visibleHeight()
	if window <= 0 {
		window = len(lines)
	}
	start := min(m.scrollOffset, len(lines))
	visible := lines[start:min(start+window, len(lines))]
	for i, line := range visible {
		if w := lipgloss.Width(line); w < width {
			visible[i] = line + strings.Repeat(" ", width-w)
		}
	}

	s := styles.T().S()
	footer := "?/esc close"
	if len(lines) > window {
		footer = "j/k scroll · ?/esc close"
	}

	return s.Title.Render("Help") + "\n\n" +
		strings.Join(visible, "\n") + "\n\n" +
		s.Subtle.Render(footer)
}

// contentLines renders every binding row, grouped under category
// headers, without applying the scroll window.
func (m *Model) contentLines() []string {
	t := styles.T()
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.FgBase)
	headerStyle := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)
	ruleStyle := lipgloss.NewStyle().Foreground(t.FgSubtle)

	keyCol := 0
	for _, b := range m.bindings {
		keyCol = max(keyCol, len(strings.Join(b.Keys, ", ")))
	}

	var lines []string
	context := ""
	for _, b := range m.bindings {
		if b.Context != context {
			if context != "" {
				lines = append(lines, "")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			lines = append(lines,
				headerStyle.Render(label),
				ruleStyle.Render(strings.Repeat("─", keyCol+15)),
			)
			context = b.Context
		}
		keys := strings.Join(b.Keys, ", ")
		row := keyStyle.Render(keys+strings.Repeat(" ", keyCol-len(keys))) +
			"  " + descStyle.Render(b.Description)
		lines = append(lines, row)
	}
	return lines
}

// visibleHeight is the number of listing rows that fit once the title,
// footer and popup chrome are accounted for.
func (m *Model) visibleHeight() int {
	return max(m.Height()-10, 5)
}

func (m *Model) maxScroll() int {
	total := len(m.contentLines())
	if visible := m.visibleHeight(); total > visible {
		return total - visible
	}
	return 0
}
