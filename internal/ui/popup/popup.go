// Package popup renders modal overlays on top of the pane layout.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/halftone/internal/ui/styles"
)

// Dialog is a small centered message box with an optional title and
// footer line. It sizes itself to the widest line of content.
type Dialog struct {
	Title   string
	Content string
	Footer  string
}

// New returns an empty dialog.
func New() *Dialog {
	return &Dialog{}
}

// Render lays out the dialog and centers it on a termWidth x termHeight
// screen.
func (d *Dialog) Render(termWidth, termHeight int) string {
	t := styles.T()

	inner := max(
		maxLineWidth(d.Content),
		lipgloss.Width(d.Title),
		lipgloss.Width(d.Footer),
	) + 2
	inner = min(inner, termWidth-4)

	var lines []string
	if d.Title != "" {
		lines = append(lines, centerIn(t.S().Title.Render(d.Title), inner), "")
	}
	for _, line := range strings.Split(d.Content, "\n") {
		if lipgloss.Width(line) > inner {
			line = ansi.Cut(line, 0, inner-3) + "..."
		}
		lines = append(lines, padTo(line, inner))
	}
	if d.Footer != "" {
		lines = append(lines, "", centerIn(t.S().Subtle.Render(d.Footer), inner))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Width(inner).
		Render(strings.Join(lines, "\n"))

	return center(box, termWidth, termHeight)
}

// RenderBordered wraps content in the standard rounded border, sized to
// the content but never wider than the screen, and centers the result.
func RenderBordered(content string, screenW, screenH int) string {
	width := min(maxLineWidth(content)+6, screenW-4)
	height := min(strings.Count(content, "\n")+5, screenH-4)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Width(width - 2).
		Height(height - 2).
		Padding(1, 2).
		Render(content)

	return center(box, screenW, screenH)
}

// Compose draws overlay on top of base. Overlay lines that are visually
// blank leave the base untouched, anything else replaces the same
// columns of the base line. Both strings may carry SGR sequences.
func Compose(base, overlay string, width, _ int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(overlay, "\n") {
		if i >= len(baseLines) {
			break
		}
		plain := ansi.Strip(line)
		if strings.TrimSpace(plain) == "" {
			continue
		}
		left := len(plain) - len(strings.TrimLeft(plain, " "))
		right := ansi.StringWidth(strings.TrimRight(plain, " "))
		baseLines[i] = splice(baseLines[i], ansi.Cut(line, left, right), left, right, width)
	}
	return strings.Join(baseLines, "\n")
}

// splice replaces columns [left, right) of baseLine with patch, keeping
// the line exactly width columns. Cutting through a wide rune can leave
// the pieces a column short or long, so both edges are re-measured.
func splice(baseLine, patch string, left, right, width int) string {
	if w := ansi.StringWidth(ansi.Strip(baseLine)); w < width {
		baseLine += strings.Repeat(" ", width-w)
	}

	prefix := ansi.Cut(baseLine, 0, left)
	if w := ansi.StringWidth(ansi.Strip(prefix)); w < left {
		prefix += strings.Repeat(" ", left-w)
	}

	out := prefix + patch
	if right >= width {
		return out
	}

	suffix := ansi.Cut(baseLine, right, width)
	want := width - right
	if w := ansi.StringWidth(ansi.Strip(suffix)); w > want {
		suffix = " " + ansi.Cut(suffix, w-want+1, w)
	} else if w < want {
		out += strings.Repeat(" ", want-w)
	}
	return out + suffix
}

func center(box string, termWidth, termHeight int) string {
	lines := strings.Split(box, "\n")
	width := 0
	for _, line := range lines {
		width = max(width, lipgloss.Width(line))
	}
	top := max((termHeight-len(lines))/2, 0)
	left := max((termWidth-width)/2, 0)

	var b strings.Builder
	blank := strings.Repeat(" ", termWidth)
	for i := 0; i < top; i++ {
		b.WriteString(blank)
		b.WriteByte('\n')
	}
	indent := strings.Repeat(" ", left)
	for _, line := range lines {
		b.WriteString(indent)
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func maxLineWidth(s string) int {
	w := 0
	for _, line := range strings.Split(s, "\n") {
		w = max(w, lipgloss.Width(line))
	}
	return w
}

func centerIn(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

func padTo(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
