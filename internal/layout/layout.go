// Package layout holds the fixed 128x64 navigation overlay layout shared by
// the raster and console previews.
//
// Both renderers consume the same Fields value: per-field display strings
// after truncation, the selected Mode, and the absolute pixel placement and
// font tier of every text element. Positions are constants; there is no
// reflow or collision detection.
package layout

import (
	"image"

	"github.com/mobil-koeln/oledview/internal/models"
)

// Display geometry
const (
	Width  = 128
	Height = 64
	Scale  = 4
)

// Maximum displayed characters per field
const (
	TitleMax    = 7
	ETAMax      = 8
	DurationMax = 8
	DistanceMax = 8

	DirectionsMax  = 21
	DirectionsKeep = 18
	Ellipsis       = "..."
)

// Fallbacks for empty text fields. The raster preview draws nothing, the
// console preview shows a dash marker.
const (
	RasterEmpty  = ""
	ConsoleEmpty = "---"
)

// Placeholder messages
const (
	NoNavigationLine1 = "No Navigation"
	NoNavigationLine2 = "Active"
)

// IconBox is the icon placeholder outline. Both corners are inclusive.
var IconBox = image.Rect(0, 8, 48, 56)

// Mode selects which layout is drawn.
type Mode int

const (
	// ModePlaceholder shows the "No Navigation Active" message
	ModePlaceholder Mode = iota
	// ModeNavigation shows the navigation fields
	ModeNavigation
)

func (m Mode) String() string {
	if m == ModeNavigation {
		return "navigation"
	}
	return "placeholder"
}

// Tier is a font size bucket.
type Tier int

const (
	TierSmall Tier = iota
	TierMedium
	TierLarge
)

// Points returns the outline font size used for the tier.
func (t Tier) Points() float64 {
	switch t {
	case TierLarge:
		return 16
	case TierMedium:
		return 12
	default:
		return 8
	}
}

func (t Tier) String() string {
	switch t {
	case TierLarge:
		return "large"
	case TierMedium:
		return "medium"
	default:
		return "small"
	}
}

// Fields is the finalized content of one frame.
type Fields struct {
	Mode       Mode
	Title      string
	ETA        string
	Duration   string
	Distance   string
	Directions string
}

// TextElement is a single text draw call. Pos is the top-left corner of the
// line box.
type TextElement struct {
	Name string
	Text string
	Pos  image.Point
	Tier Tier
}

// Build applies the truncation rules to s. Empty title, ETA, duration and
// distance values are replaced with empty. Directions never use the
// fallback.
func Build(s models.NavigationState, empty string) Fields {
	if !s.IsNavigating() {
		return Fields{Mode: ModePlaceholder}
	}

	return Fields{
		Mode:       ModeNavigation,
		Title:      orEmpty(Truncate(s.Title, TitleMax), empty),
		ETA:        orEmpty(Truncate(s.ETA, ETAMax), empty),
		Duration:   orEmpty(Truncate(s.Duration, DurationMax), empty),
		Distance:   orEmpty(Truncate(s.Distance, DistanceMax), empty),
		Directions: TruncateDirections(s.Directions),
	}
}

// TextElements returns the text draw calls for the frame in drawing order.
func (f Fields) TextElements() []TextElement {
	if f.Mode != ModeNavigation {
		return []TextElement{
			{Name: "placeholder", Text: NoNavigationLine1, Pos: image.Pt(10, 24), Tier: TierMedium},
			{Name: "placeholder", Text: NoNavigationLine2, Pos: image.Pt(20, 36), Tier: TierMedium},
		}
	}

	icon := IconBox.Min
	return []TextElement{
		{Name: "title", Text: f.Title, Pos: image.Pt(70, 0), Tier: TierLarge},
		{Name: "eta", Text: f.ETA, Pos: image.Pt(0, 0), Tier: TierSmall},
		{Name: "duration", Text: f.Duration, Pos: image.Pt(70, 30), Tier: TierSmall},
		{Name: "distance", Text: f.Distance, Pos: image.Pt(70, 40), Tier: TierSmall},
		{Name: "icon", Text: "ICON", Pos: icon.Add(image.Pt(10, 20)), Tier: TierSmall},
		{Name: "icon", Text: "48x48", Pos: icon.Add(image.Pt(8, 30)), Tier: TierSmall},
		{Name: "directions", Text: f.Directions, Pos: image.Pt(0, 56), Tier: TierSmall},
	}
}

// Truncate returns the first n characters of s.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// TruncateDirections shortens directions longer than DirectionsMax
// characters to DirectionsKeep characters followed by an ellipsis.
func TruncateDirections(s string) string {
	r := []rune(s)
	if len(r) <= DirectionsMax {
		return s
	}
	return string(r[:DirectionsKeep]) + Ellipsis
}

func orEmpty(s, empty string) string {
	if s == "" {
		return empty
	}
	return s
}
