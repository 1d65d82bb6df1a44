package raster

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/flopp/go-findfont"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"

	"github.com/mobil-koeln/oledview/internal/layout"
)

// DefaultFontFile is the outline font tried first
const DefaultFontFile = "arial.ttf"

// Faces holds one face per font tier. A nil face disables text in that tier.
type Faces struct {
	Small  font.Face
	Medium font.Face
	Large  font.Face
}

// NoFont is used when every provider failed. Shapes are still drawn.
var NoFont = Faces{}

// For returns the face for a tier
func (f Faces) For(t layout.Tier) font.Face {
	switch t {
	case layout.TierLarge:
		return f.Large
	case layout.TierMedium:
		return f.Medium
	default:
		return f.Small
	}
}

// Close releases the faces. Faces shared between tiers are closed once.
func (f Faces) Close() error {
	var firstErr error
	seen := make(map[font.Face]bool, 3)
	for _, face := range []font.Face{f.Small, f.Medium, f.Large} {
		if face == nil || seen[face] {
			continue
		}
		seen[face] = true
		if err := face.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// FontProvider supplies the faces for all three tiers or fails as a whole
type FontProvider interface {
	Name() string
	Faces() (Faces, error)
}

// OutlineProvider loads an installed TrueType/OpenType font by file name
type OutlineProvider struct {
	File string
	// Find resolves File to a path. Defaults to a search of the system font directories.
	Find func(name string) (string, error)
}

// NewOutlineProvider creates a provider for the named font file
func NewOutlineProvider(file string) *OutlineProvider {
	return &OutlineProvider{File: file, Find: findfont.Find}
}

// Name implements FontProvider
func (p *OutlineProvider) Name() string {
	return "outline:" + p.File
}

// Faces implements FontProvider
func (p *OutlineProvider) Faces() (Faces, error) {
	find := p.Find
	if find == nil {
		find = findfont.Find
	}

	path, err := find(p.File)
	if err != nil {
		return NoFont, fmt.Errorf("%w: %s", ErrFontNotFound, p.File)
	}

	// #nosec G304 -- path comes from the font directory search
	data, err := os.ReadFile(path)
	if err != nil {
		return NoFont, fmt.Errorf("failed to read font: %w", err)
	}

	return ParseFaces(data)
}

// ParseFaces builds the three tier faces from an outline font file
func ParseFaces(data []byte) (Faces, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return NoFont, fmt.Errorf("failed to parse font: %w", err)
	}

	newFace := func(t layout.Tier) (font.Face, error) {
		return opentype.NewFace(f, &opentype.FaceOptions{
			Size:    t.Points(),
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	var faces Faces
	if faces.Small, err = newFace(layout.TierSmall); err != nil {
		return NoFont, fmt.Errorf("failed to create %s face: %w", layout.TierSmall, err)
	}
	if faces.Medium, err = newFace(layout.TierMedium); err != nil {
		_ = faces.Close()
		return NoFont, fmt.Errorf("failed to create %s face: %w", layout.TierMedium, err)
	}
	if faces.Large, err = newFace(layout.TierLarge); err != nil {
		_ = faces.Close()
		return NoFont, fmt.Errorf("failed to create %s face: %w", layout.TierLarge, err)
	}
	return faces, nil
}

// BitmapProvider uses the built-in 7x13 bitmap face for every tier
type BitmapProvider struct{}

// Name implements FontProvider
func (BitmapProvider) Name() string {
	return "bitmap:7x13"
}

// Faces implements FontProvider
func (BitmapProvider) Faces() (Faces, error) {
	face := basicfont.Face7x13
	return Faces{Small: face, Medium: face, Large: face}, nil
}

// DefaultProviders returns the font fallback chain: the outline font, then
// the bitmap font
func DefaultProviders() []FontProvider {
	return []FontProvider{
		NewOutlineProvider(DefaultFontFile),
		BitmapProvider{},
	}
}

// ResolveFaces tries the providers in order and returns the faces of the
// first one that succeeds, along with its name. When all fail it returns
// NoFont and "none".
func ResolveFaces(logger *log.Logger, providers ...FontProvider) (Faces, string) {
	if logger == nil {
		logger = log.Default()
	}

	for _, p := range providers {
		faces, err := p.Faces()
		if err != nil {
			logger.Debug("Font provider failed", "err", NewFontError(p.Name(), err))
			continue
		}
		logger.Debug("Using font", "provider", p.Name())
		return faces, p.Name()
	}

	logger.Warn("Text will not be drawn", "err", ErrNoFaces)
	return NoFont, "none"
}
