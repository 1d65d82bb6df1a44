package raster

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/mobil-koeln/oledview/internal/layout"
	"github.com/mobil-koeln/oledview/internal/models"
	"github.com/mobil-koeln/oledview/internal/testutil"
)

func bitmapFaces(t *testing.T) Faces {
	t.Helper()
	faces, err := BitmapProvider{}.Faces()
	testutil.AssertNil(t, err)
	return faces
}

// litPixels counts lit pixels inside r
func litPixels(img *image.Paletted, r image.Rectangle) int {
	n := 0
	r = r.Intersect(img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.ColorIndexAt(x, y) == PixelOn {
				n++
			}
		}
	}
	return n
}

func TestNewCanvas(t *testing.T) {
	img := NewCanvas()

	testutil.AssertSize(t, img, layout.Width, layout.Height)
	testutil.AssertEqual(t, litPixels(img, img.Rect), 0)
}

func TestRender_NoFontDrawsIconOutline(t *testing.T) {
	img := RenderState(testutil.NavigatingState(), NoFont)

	// 49 pixels per edge, corners shared
	testutil.AssertEqual(t, litPixels(img, img.Rect), 192)

	for _, p := range []image.Point{{0, 8}, {48, 8}, {0, 56}, {48, 56}, {24, 8}, {0, 30}} {
		testutil.AssertEqual(t, img.ColorIndexAt(p.X, p.Y), PixelOn)
	}
	testutil.AssertEqual(t, img.ColorIndexAt(24, 30), PixelOff)
	testutil.AssertEqual(t, img.ColorIndexAt(49, 8), PixelOff)
}

func TestRender_NoFontPlaceholderIsBlank(t *testing.T) {
	for name, state := range testutil.PlaceholderStates() {
		t.Run(name, func(t *testing.T) {
			img := RenderState(state, NoFont)
			testutil.AssertEqual(t, litPixels(img, img.Rect), 0)
		})
	}
}

func TestRender_DirectionsLine(t *testing.T) {
	faces := bitmapFaces(t)
	bottom := image.Rect(0, 57, layout.Width, layout.Height)

	img := RenderState(testutil.NavigatingState(), faces)
	testutil.AssertTrue(t, litPixels(img, bottom) > 0)

	for name, state := range testutil.PlaceholderStates() {
		t.Run(name, func(t *testing.T) {
			img := RenderState(state, faces)
			testutil.AssertEqual(t, litPixels(img, bottom), 0)
			testutil.AssertEqual(t, litPixels(img, image.Rect(0, 0, layout.Width, 20)), 0)
			testutil.AssertTrue(t, litPixels(img, image.Rect(0, 20, layout.Width, 52)) > 0)
		})
	}
}

func TestRender_EmptyTitle(t *testing.T) {
	faces := bitmapFaces(t)
	titleArea := image.Rect(70, 0, layout.Width, 16)

	img := RenderState(testutil.NavigatingState(), faces)
	testutil.AssertTrue(t, litPixels(img, titleArea) > 0)

	state := testutil.NavigatingState()
	state.Title = ""
	img = RenderState(state, faces)
	testutil.AssertEqual(t, litPixels(img, titleArea), 0)
}

func TestRender_EmptyState(t *testing.T) {
	img := RenderState(testutil.EmptyState(), bitmapFaces(t))

	// Only the icon box and its captions are drawn
	outside := litPixels(img, image.Rect(50, 0, layout.Width, layout.Height))
	testutil.AssertEqual(t, outside, 0)
	testutil.AssertTrue(t, litPixels(img, image.Rect(1, 9, 48, 56)) > 0)
}

func TestScale(t *testing.T) {
	states := map[string]models.NavigationState{
		"navigating": testutil.NavigatingState(),
		"oversized":  testutil.OversizedState(),
		"empty":      testutil.EmptyState(),
		"idle":       {},
	}

	for name, state := range states {
		t.Run(name, func(t *testing.T) {
			scaled := Scale(RenderState(state, bitmapFaces(t)), layout.Scale)
			testutil.AssertSize(t, scaled, layout.Width*layout.Scale, layout.Height*layout.Scale)
		})
	}
}

func TestScale_NearestNeighbor(t *testing.T) {
	scaled := Scale(RenderState(testutil.NavigatingState(), NoFont), layout.Scale)

	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black := color.NRGBA{A: 255}

	// Source pixel (0,8) is lit, (1,9) is not
	for dy := 0; dy < layout.Scale; dy++ {
		for dx := 0; dx < layout.Scale; dx++ {
			testutil.AssertEqual(t, scaled.NRGBAAt(dx, 8*layout.Scale+dy), white)
			testutil.AssertEqual(t, scaled.NRGBAAt(layout.Scale+dx, 9*layout.Scale+dy), black)
		}
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oled_preview.png")
	scaled := Scale(RenderState(testutil.NavigatingState(), bitmapFaces(t)), layout.Scale)

	testutil.AssertNil(t, Save(scaled, path))
	// Existing files are replaced
	testutil.AssertNil(t, Save(scaled, path))

	f, err := os.Open(path)
	testutil.AssertNil(t, err)
	defer func() { _ = f.Close() }()

	img, err := png.Decode(f)
	testutil.AssertNil(t, err)
	testutil.AssertSize(t, img, 512, 256)
}

func TestSave_Errors(t *testing.T) {
	img := NewCanvas()
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
	}{
		{"missing directory", filepath.Join(dir, "missing", "out.png")},
		{"unknown format", filepath.Join(dir, "out.xyz")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Save(img, tt.path)
			testutil.AssertError(t, err)
			testutil.AssertContains(t, err.Error(), "failed to save")
		})
	}
}
