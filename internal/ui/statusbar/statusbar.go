// Package statusbar renders the single-line bar at the bottom of the
// screen: the displayed image on the left, position and display
// options on the right.
package statusbar

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/halftone/internal/icons"
	"github.com/llehouerou/halftone/internal/ui/render"
	"github.com/llehouerou/halftone/internal/ui/styles"
)

// Height is the fixed height of the status bar (single line).
const Height = 1

const (
	wordmark  = "halftone"
	separator = "  "
	metaSep   = " · "
)

// State holds everything needed to render the status bar.
type State struct {
	Path     string // displayed image path, empty when none
	Width    int    // image pixel width, 0 when unknown
	Height   int    // image pixel height
	Format   string // decoded format, e.g. "jpeg"
	FileSize int64  // bytes on disk, 0 when unknown
	Index    int    // 1-based position among the directory's images
	Total    int    // images in the directory
	Upscale  bool
	Frame    bool
	Filter   string // resampling filter name
	Protocol string // rendering protocol name
	Message  string // transient notice shown instead of the image info
}

// Render returns the status bar string for the given width. The line
// is always exactly width cells wide.
func Render(s State, width int) string {
	if width < 20 {
		return ""
	}

	t := styles.T()

	mark := styles.ApplyBoldGradient(wordmark, t.Primary, t.Secondary)
	markWidth := lipgloss.Width(mark)
	sepWidth := lipgloss.Width(separator)

	// One cell of margin on each end.
	budget := width - 2 - markWidth - sepWidth

	right := renderOptions(s)
	rightWidth := lipgloss.Width(right)
	if rightWidth > budget {
		right = ""
		rightWidth = 0
	}

	avail := budget
	if rightWidth > 0 {
		avail -= rightWidth + sepWidth
	}
	left := renderInfo(s, avail)

	gap := max(width-2-markWidth-sepWidth-lipgloss.Width(left)-rightWidth, 0)

	var sb strings.Builder
	sb.WriteString(" ")
	sb.WriteString(mark)
	sb.WriteString(separator)
	sb.WriteString(left)
	sb.WriteString(strings.Repeat(" ", gap))
	sb.WriteString(right)
	sb.WriteString(" ")
	return sb.String()
}

// renderInfo renders the left section: the transient message when one
// is set, otherwise name and metadata of the displayed image.
func renderInfo(s State, avail int) string {
	if avail <= 0 {
		return ""
	}
	st := styles.T().S()

	if s.Message != "" {
		return st.Warning.Render(render.TruncateEllipsis(s.Message, avail))
	}
	if s.Path == "" {
		return st.Subtle.Render(render.TruncateEllipsis("? for help", avail))
	}

	name := filepath.Base(s.Path)
	meta := formatMeta(s)

	if meta != "" {
		needed := lipgloss.Width(name) + lipgloss.Width(metaSep) + lipgloss.Width(meta)
		if needed <= avail {
			return st.Title.Render(name) + st.Subtle.Render(metaSep) + st.Muted.Render(meta)
		}
	}
	return st.Title.Render(render.TruncateEllipsis(name, avail))
}

// renderOptions renders the right section: position in the directory,
// active display options and the rendering protocol.
func renderOptions(s State) string {
	st := styles.T().S()

	var parts []string
	if s.Index > 0 && s.Total > 0 {
		parts = append(parts, st.Muted.Render(fmt.Sprintf("%d/%d", s.Index, s.Total)))
	}

	var flags []string
	if s.Upscale {
		flags = append(flags, icons.Upscale())
	}
	if s.Frame {
		flags = append(flags, icons.Frame())
	}
	if len(flags) > 0 {
		parts = append(parts, st.Active.Render(strings.Join(flags, " ")))
	}

	if s.Filter != "" {
		filter := s.Filter
		if icon := icons.Filter(); icon != "" {
			filter = icon + " " + filter
		}
		parts = append(parts, st.Muted.Render(filter))
	}
	if s.Protocol != "" {
		parts = append(parts, st.Subtle.Render(s.Protocol))
	}

	return strings.Join(parts, st.Subtle.Render(metaSep))
}

func formatMeta(s State) string {
	var parts []string
	if s.Width > 0 && s.Height > 0 {
		parts = append(parts, fmt.Sprintf("%d×%d", s.Width, s.Height))
	}
	if s.Format != "" {
		parts = append(parts, s.Format)
	}
	if s.FileSize > 0 {
		parts = append(parts, formatSize(s.FileSize))
	}
	return strings.Join(parts, metaSep)
}

// formatSize formats bytes as a human-readable size.
func formatSize(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	s := humanize.IBytes(uint64(bytes)) //nolint:gosec // bytes is guaranteed non-negative above
	// Convert IEC notation to SI: GiB→GB, MiB→MB, KiB→KB
	return strings.ReplaceAll(s, "iB", "B")
}
