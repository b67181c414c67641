// Package render provides plain-text layout helpers for the TUI panes.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Sanitize drops control characters (keeping tab) and invalid UTF-8
// bytes, and turns non-breaking spaces into plain ones. File names with
// odd bytes in them would otherwise corrupt the terminal.
func Sanitize(s string) string {
	if isClean(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
			size = 1
		case r == ' ':
			b.WriteByte(' ')
		case r == '\t' || !unicode.IsControl(r):
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

// isClean reports whether s can skip the sanitize pass. It scans raw
// bytes: ASCII and C1 controls plus UTF-8 error bytes fall in the
// ranges checked here, and 0xc2 0xa0 is the NBSP encoding.
func isClean(s string) bool {
	for i := 0; i < len(s); i++ {
		switch b := s[i]; {
		case b < 0x20 && b != '\t':
			return false
		case b >= 0x80 && b <= 0x9f:
			return false
		case b == 0xc2 && i+1 < len(s) && s[i+1] == 0xa0:
			return false
		}
	}
	return true
}

// Truncate sanitizes s and cuts it to maxWidth columns, appending "..."
// when something was dropped. Wide runes count as two columns.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "...")
}

// TruncateEllipsis cuts s to maxWidth columns with a one-column "…"
// marker, for tight spots like the status bar.
func TruncateEllipsis(s string, maxWidth int) string {
	return runewidth.Truncate(s, maxWidth, "…")
}

// Pad extends s with spaces to exactly width columns.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateAndPad makes s exactly width columns, cutting or padding as
// needed.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Row joins left- and right-aligned fragments with at least one space
// between them. Styled fragments are measured by display width.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator draws a horizontal rule of width columns.
func Separator(width int) string {
	return strings.Repeat("─", width)
}

// EmptyLine returns width spaces.
func EmptyLine(width int) string {
	return strings.Repeat(" ", width)
}
