package imageproc

import "image"

func toleranceByte(tolerance float64) uint8 {
	v := 255 * tolerance
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

func rowHasAlpha(img *image.NRGBA, y int, threshold uint8) bool {
	w := img.Rect.Dx()
	row := img.Pix[y*img.Stride : y*img.Stride+w*4]
	for x := 3; x < len(row); x += 4 {
		if row[x] > threshold {
			return true
		}
	}
	return false
}

// DistFromBottom returns the number of rows between the bottom edge and the
// lowest row with any alpha above tolerance. Fully transparent images return
// their height.
func DistFromBottom(img *image.NRGBA, tolerance float64) int {
	threshold := toleranceByte(tolerance)
	h := img.Rect.Dy()
	for y := h - 1; y >= 0; y-- {
		if rowHasAlpha(img, y, threshold) {
			return h - 1 - y
		}
	}
	return h
}

// DistFromTop returns the index of the first row with any alpha above
// tolerance. Fully transparent images return their height.
func DistFromTop(img *image.NRGBA, tolerance float64) int {
	threshold := toleranceByte(tolerance)
	h := img.Rect.Dy()
	for y := 0; y < h; y++ {
		if rowHasAlpha(img, y, threshold) {
			return y
		}
	}
	return h
}

// HasVisiblePixels reports whether any pixel has non-zero alpha.
func HasVisiblePixels(img *image.NRGBA) bool {
	return DistFromTop(img, 0) < img.Rect.Dy()
}
