package output

import (
	"fmt"
	"io"
	"strings"
)

// RenderHeader prints the program title
func RenderHeader(w io.Writer, c *Colors) {
	if c == nil {
		c = NewColors(ColorNever)
	}
	_, _ = fmt.Fprintln(w, c.Header("ESP32 OLED Navigation Display Visualizer"))
	_, _ = fmt.Fprintln(w, c.Muted(strings.Repeat("-", RuleWidth)))
}

// RenderSaved reports where the preview image was written and its size
func RenderSaved(w io.Writer, path string, scale, width, height int, c *Colors) {
	if c == nil {
		c = NewColors(ColorNever)
	}
	_, _ = fmt.Fprintln(w, c.Success("✓ Image saved as: %s", path))
	_, _ = fmt.Fprintf(w, "  (Scaled %dx for visibility: %dx%d)\n", scale, width, height)
}

// RenderOpened reports whether the image viewer was launched. When it was
// not, the user is told to open the file by hand.
func RenderOpened(w io.Writer, path string, opened bool, c *Colors) {
	if c == nil {
		c = NewColors(ColorNever)
	}
	if opened {
		_, _ = fmt.Fprintln(w, c.Success("✓ Opening preview..."))
		return
	}
	_, _ = fmt.Fprintln(w, c.Hint("  → Manually open '%s' to view", path))
}

// RenderFooter prints usage instructions
func RenderFooter(w io.Writer, c *Colors) {
	if c == nil {
		c = NewColors(ColorNever)
	}
	rule := c.Muted(strings.Repeat("=", RuleWidth))

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, rule)
	_, _ = fmt.Fprintln(w, c.Header("HOW TO USE:"))
	_, _ = fmt.Fprintln(w, rule)
	_, _ = fmt.Fprintln(w, "1. Edit SampleState in internal/models/navigation.go")
	_, _ = fmt.Fprintln(w, "2. Run: go run ./cmd/oledview")
	_, _ = fmt.Fprintln(w, "3. Check console ASCII preview + generated PNG image")
	_, _ = fmt.Fprintln(w, rule)
}
