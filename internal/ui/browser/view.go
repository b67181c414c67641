package browser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/halftone/internal/icons"
	"github.com/llehouerou/halftone/internal/ui"
	"github.com/llehouerou/halftone/internal/ui/render"
	"github.com/llehouerou/halftone/internal/ui/styles"
)

func (m Model) View() string {
	if m.Width() == 0 {
		return "Loading..."
	}

	// Account for border (2 chars each side)
	innerWidth := m.Width() - ui.BorderHeight
	listHeight := m.listHeight()

	header := render.TruncateAndPad(m.displayDir(), innerWidth)
	separator := render.Separator(innerWidth)

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(separator)
	b.WriteString("\n")
	b.WriteString(m.renderList(innerWidth, listHeight))
	b.WriteString("\n")
	b.WriteString(m.renderFooter(innerWidth))

	return styles.PanelStyle(m.IsFocused()).Width(innerWidth).Render(b.String())
}

// displayDir shortens the home directory prefix to ~.
func (m Model) displayDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return m.dir
	}
	if m.dir == home {
		return "~"
	}
	if strings.HasPrefix(m.dir, home+string(filepath.Separator)) {
		return "~" + m.dir[len(home):]
	}
	return m.dir
}

func (m Model) renderList(width, height int) string {
	if height <= 0 {
		return ""
	}

	lines := make([]string, height)
	row := 0

	if m.err != nil {
		lines[row] = styles.T().S().Error.Render(
			render.TruncateAndPad(m.err.Error(), width))
		row++
	} else if len(m.visible) == 0 {
		empty := "no images"
		if m.filter.Value() != "" {
			empty = "no matches"
		}
		lines[row] = styles.T().S().Muted.Render(render.TruncateAndPad(empty, width))
		row++
	} else {
		start, end := m.cur.VisibleRange(len(m.visible), height)
		for i := start; i < end; i++ {
			lines[row] = m.renderEntry(m.visible[i], i, width)
			row++
		}
	}

	for ; row < height; row++ {
		lines[row] = render.EmptyLine(width)
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderEntry(e Entry, idx, width int) string {
	prefix := "  "
	if idx == m.cur.Pos() {
		prefix = "> "
	}

	var line string
	if e.IsDir {
		name := render.Truncate(icons.FormatDir(e.Name), width-2)
		line = render.Pad(prefix+name, width)
	} else {
		size := formatSize(e.Size)
		name := render.Truncate(icons.FormatImage(e.Name), width-2-len(size)-1)
		line = render.Row(prefix+name, size, width)
	}

	if idx == m.cur.Pos() && m.IsFocused() {
		return styles.T().S().Cursor.Render(line)
	}
	return line
}

// renderFooter shows the filter input while filtering, otherwise probe
// info for the selected image or the entry count.
func (m Model) renderFooter(width int) string {
	if m.filtering || m.filter.Value() != "" {
		// The input view carries its own styling; the panel pads the line.
		return m.filter.View()
	}

	if m.info != "" {
		return styles.T().S().Muted.Render(render.TruncateAndPad(m.info, width))
	}

	count := fmt.Sprintf("%d entries", len(m.visible))
	if len(m.visible) == 1 {
		count = "1 entry"
	}
	return styles.T().S().Subtle.Render(render.TruncateAndPad(count, width))
}

// formatSize formats a file size in human-readable form.
// Uses binary calculation (1024) with SI notation (KB, MB, GB).
func formatSize(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	s := humanize.IBytes(uint64(bytes)) //nolint:gosec // bytes is guaranteed non-negative above
	// Convert IEC notation to SI: GiB→GB, MiB→MB, KiB→KB
	s = strings.ReplaceAll(s, "iB", "B")
	return s
}
