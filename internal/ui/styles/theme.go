package styles

import "github.com/charmbracelet/lipgloss"

// Theme is the application palette: neutral grays around the image
// content, a cool accent for focus and a warm one for highlights.
type Theme struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgCursor lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles are the lipgloss styles derived from the palette.
type Styles struct {
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Active  lipgloss.Style
	Cursor  lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#56b6c2"),
	Secondary: lipgloss.Color("#e5c07b"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgCursor: lipgloss.Color("#303030"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#56b6c2"),

	Error:   lipgloss.Color("#e06c75"),
	Warning: lipgloss.Color("#e5c07b"),
}

// T returns the active theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the styles derived from the theme, built on first use.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = &Styles{
			Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
			Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
			Title:   lipgloss.NewStyle().Foreground(t.FgBase).Bold(true),
			Active:  lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
			Cursor:  lipgloss.NewStyle().Background(t.BgCursor).Foreground(t.FgBase),
			Error:   lipgloss.NewStyle().Foreground(t.Error),
			Warning: lipgloss.NewStyle().Foreground(t.Warning),
		}
	}
	return t.styles
}
