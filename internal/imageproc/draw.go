package imageproc

import (
	"image"
	imgcolor "image/color"

	"golang.org/x/image/draw"

	"skinbridge/internal/color"
)

// FillRect paints a solid rectangle, clipped to dst.
func FillRect(dst *image.NRGBA, c imgcolor.NRGBA, x, y, w, h int) {
	r := image.Rect(x, y, x+w, y+h).Intersect(dst.Rect)
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// Overlay composites src onto dst with its top-left corner at (x, y) using
// source-over blending. Parts outside dst are clipped.
func Overlay(dst *image.NRGBA, src image.Image, x, y int) {
	b := src.Bounds()
	r := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	draw.Draw(dst, r, src, b.Min, draw.Over)
}

// IsUsableBackground reports whether img is large enough and has any visible
// pixel.
func IsUsableBackground(img *image.NRGBA) bool {
	if img == nil || img.Rect.Dx() < 2 || img.Rect.Dy() < 2 {
		return false
	}
	return HasVisiblePixels(img)
}

// StageBackground draws one column-wide stripe per colour at the osu
// playfield height.
func StageBackground(colours []color.RGBA, columnWidth int) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, len(colours)*columnWidth, OsuHeight))
	for i, c := range colours {
		FillRect(canvas, c.NRGBA(), i*columnWidth, 0, columnWidth, OsuHeight)
	}
	return canvas
}
