package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyBoldGradient renders text in bold with its color fading from one
// end to the other. The fade runs per grapheme cluster so combining
// marks and emoji keep a single color, and blending happens in HCL
// space so the ramp reads evenly.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	clusters := graphemes(text)
	if len(clusters) == 0 {
		return ""
	}

	start, _ := colorful.MakeColor(parseHex(from))
	end, _ := colorful.MakeColor(parseHex(to))

	var b strings.Builder
	for i, cluster := range clusters {
		c := start
		if len(clusters) > 1 {
			c = start.BlendHcl(end, float64(i)/float64(len(clusters)-1))
		}
		b.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Hex())).
			Render(cluster))
	}
	return b.String()
}

func graphemes(text string) []string {
	var clusters []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	return clusters
}

// parseHex reads a #rrggbb lipgloss color, falling back to mid gray for
// anything else (named or ANSI palette values).
func parseHex(c lipgloss.Color) color.Color {
	if s := string(c); len(s) == 7 && s[0] == '#' {
		if col, err := colorful.Hex(s); err == nil {
			return col
		}
	}
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}
