package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mobil-koeln/oledview/internal/layout"
	"github.com/mobil-koeln/oledview/internal/models"
)

// Console geometry
const (
	RuleWidth = 50
	BoxWidth  = 46 // interior columns between the side borders

	labelWidth = 25
	valueWidth = 18
	iconIndent = 11
)

// PreviewOptions configures the console preview
type PreviewOptions struct {
	Colors *Colors
}

// iconArt is the icon placeholder, 10 columns wide
func iconArt() []string {
	origin := fmt.Sprintf("@%d,%d", layout.IconBox.Min.X, layout.IconBox.Min.Y)
	return []string{
		"┌────────┐",
		"│  ICON  │",
		"│ 48x48  │",
		fmt.Sprintf("│ %-6s │", origin),
		"└────────┘",
	}
}

// RenderPreview renders the display layout for s as box-drawing text
func RenderPreview(w io.Writer, s models.NavigationState, opts PreviewOptions) {
	c := opts.Colors
	if c == nil {
		c = NewColors(ColorNever)
	}

	rule := c.Muted(strings.Repeat("=", RuleWidth))
	title := fmt.Sprintf("OLED %dx%d Preview", layout.Width, layout.Height)

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, rule)
	_, _ = fmt.Fprintln(w, c.Header(lipgloss.PlaceHorizontal(RuleWidth, lipgloss.Center, title)))
	_, _ = fmt.Fprintln(w, rule)

	for _, line := range previewBox(layout.Build(s, layout.ConsoleEmpty), c) {
		_, _ = fmt.Fprintln(w, line)
	}

	_, _ = fmt.Fprintln(w, rule)
	_, _ = fmt.Fprintln(w)
}

// previewBox returns the bordered lines for one frame. Fields are padded
// before they are colored so escape codes never affect the width.
func previewBox(f layout.Fields, c *Colors) []string {
	row := func(interior string) string {
		return c.Border("│") + interior + c.Border("│")
	}
	blank := row(strings.Repeat(" ", BoxWidth))

	lines := []string{c.Border("┌%s┐", strings.Repeat("─", BoxWidth))}

	if f.Mode != layout.ModeNavigation {
		msg := layout.NoNavigationLine1 + " " + layout.NoNavigationLine2
		lines = append(lines,
			blank,
			row(c.Field("%s", lipgloss.PlaceHorizontal(BoxWidth, lipgloss.Center, msg))),
			blank,
		)
		return append(lines, c.Border("└%s┘", strings.Repeat("─", BoxWidth)))
	}

	empty := strings.Repeat(" ", labelWidth)
	lines = append(lines,
		row(" "+c.Field("%-*s", labelWidth, f.Title)+" "+c.Field("%*s", valueWidth, f.ETA)+" "),
		row(" "+empty+" "+c.Field("%*s", valueWidth, f.Duration)+" "),
		row(" "+empty+" "+c.Field("%*s", valueWidth, f.Distance)+" "),
	)

	for _, art := range iconArt() {
		lines = append(lines, row(fmt.Sprintf("%-*s", BoxWidth, strings.Repeat(" ", iconIndent)+art)))
	}

	lines = append(lines,
		blank,
		row(" "+c.Field("%-*s", BoxWidth-2, f.Directions)+" "),
		c.Border("└%s┘", strings.Repeat("─", BoxWidth)),
	)
	return lines
}
