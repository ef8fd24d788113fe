package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// TitleGradient renders the sidebar title in bold, fading from the accent
// color to TitleEnd one grapheme at a time.
func TitleGradient(title string) string {
	var clusters []string
	g := uniseg.NewGraphemes(title)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	if len(clusters) == 0 {
		return ""
	}

	bold := lipgloss.NewStyle().Bold(true)
	stops, ok := gradientStops(len(clusters), palette.Accent, palette.TitleEnd)
	if !ok {
		return bold.Foreground(palette.Accent).Render(title)
	}

	var b strings.Builder
	for i, c := range clusters {
		b.WriteString(bold.Foreground(lipgloss.Color(stops[i].Hex())).Render(c))
	}
	return b.String()
}

// gradientStops blends n colors from one hex color to another in Lab space,
// endpoints included. ok is false when either color is not #rrggbb.
func gradientStops(n int, from, to lipgloss.Color) ([]colorful.Color, bool) {
	start, err := colorful.Hex(string(from))
	if err != nil {
		return nil, false
	}
	end, err := colorful.Hex(string(to))
	if err != nil {
		return nil, false
	}
	if n == 1 {
		return []colorful.Color{start}, true
	}

	stops := make([]colorful.Color, n)
	stops[0], stops[n-1] = start, end
	for i := 1; i < n-1; i++ {
		stops[i] = start.BlendLab(end, float64(i)/float64(n-1))
	}
	return stops, true
}
