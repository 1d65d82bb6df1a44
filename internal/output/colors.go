package output

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorMode represents the color output mode
type ColorMode int

const (
	// ColorAuto enables colors if output is a TTY
	ColorAuto ColorMode = iota
	// ColorAlways forces colors on
	ColorAlways
	// ColorNever disables colors
	ColorNever
)

// Colors holds the color functions for the preview output
type Colors struct {
	Border  func(format string, a ...interface{}) string
	Field   func(format string, a ...interface{}) string
	Header  func(format string, a ...interface{}) string
	Success func(format string, a ...interface{}) string
	Hint    func(format string, a ...interface{}) string
	Muted   func(format string, a ...interface{}) string
}

// NewColors creates a new Colors instance based on the color mode
func NewColors(mode ColorMode) *Colors {
	useColors := false
	switch mode {
	case ColorAlways:
		useColors = true
		color.NoColor = false // Force colors on
	case ColorNever:
		useColors = false
	case ColorAuto:
		useColors = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	if !useColors {
		noColor := func(format string, a ...interface{}) string {
			if len(a) == 0 {
				return format
			}
			return fmt.Sprintf(format, a...)
		}
		return &Colors{
			Border:  noColor,
			Field:   noColor,
			Header:  noColor,
			Success: noColor,
			Hint:    noColor,
			Muted:   noColor,
		}
	}

	return &Colors{
		Border:  color.New(color.FgHiBlack).SprintfFunc(),
		Field:   color.New(color.FgHiWhite, color.Bold).SprintfFunc(),
		Header:  color.New(color.FgCyan, color.Bold).SprintfFunc(),
		Success: color.New(color.FgGreen).SprintfFunc(),
		Hint:    color.New(color.FgYellow).SprintfFunc(),
		Muted:   color.New(color.FgHiBlack).SprintfFunc(),
	}
}

// ParseColorMode parses a color mode string
func ParseColorMode(s string) ColorMode {
	switch s {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}
