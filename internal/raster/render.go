// Package raster draws the navigation overlay onto a 1-bit canvas the size
// of the display and writes an upscaled PNG of it.
package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/mobil-koeln/oledview/internal/layout"
	"github.com/mobil-koeln/oledview/internal/models"
)

// Palette of the monochrome display: index 0 is an unlit pixel
var Palette = color.Palette{color.Black, color.White}

// Palette indexes
const (
	PixelOff uint8 = 0
	PixelOn  uint8 = 1
)

// NewCanvas returns a blank display-sized canvas
func NewCanvas() *image.Paletted {
	return image.NewPaletted(image.Rect(0, 0, layout.Width, layout.Height), Palette)
}

// RenderState renders s with the raster fallback for empty fields
func RenderState(s models.NavigationState, faces Faces) *image.Paletted {
	return Render(layout.Build(s, layout.RasterEmpty), faces)
}

// Render draws one frame. Text elements whose tier has no face are skipped.
func Render(f layout.Fields, faces Faces) *image.Paletted {
	img := NewCanvas()

	if f.Mode == layout.ModeNavigation {
		drawOutline(img, layout.IconBox)
	}

	for _, e := range f.TextElements() {
		drawText(img, e, faces.For(e.Tier))
	}

	return img
}

// drawText places the top of the line box at e.Pos
func drawText(img *image.Paletted, e layout.TextElement, face font.Face) {
	if face == nil || e.Text == "" {
		return
	}

	d := font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(e.Pos.X, e.Pos.Y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(e.Text)
}

// drawOutline draws a one pixel border with r.Max inclusive
func drawOutline(img *image.Paletted, r image.Rectangle) {
	for x := r.Min.X; x <= r.Max.X; x++ {
		setPixel(img, x, r.Min.Y)
		setPixel(img, x, r.Max.Y)
	}
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		setPixel(img, r.Min.X, y)
		setPixel(img, r.Max.X, y)
	}
}

func setPixel(img *image.Paletted, x, y int) {
	if image.Pt(x, y).In(img.Rect) {
		img.SetColorIndex(x, y, PixelOn)
	}
}

// Scale enlarges img by factor without interpolation
func Scale(img image.Image, factor int) *image.NRGBA {
	b := img.Bounds()
	return imaging.Resize(img, b.Dx()*factor, b.Dy()*factor, imaging.NearestNeighbor)
}

// Save writes img to path, replacing any existing file. The format follows
// the file extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
