package imageproc

import (
	"image"

	"golang.org/x/image/draw"
)

// Filter selects the resampling kernel used by Resize.
type Filter int

const (
	Triangle Filter = iota
	Lanczos
	Nearest
)

func (f Filter) scaler() draw.Scaler {
	switch f {
	case Lanczos:
		return draw.CatmullRom
	case Nearest:
		return draw.NearestNeighbor
	default:
		return draw.BiLinear
	}
}

// Crop copies the rows [top, bottom) into a new image.
func Crop(img *image.NRGBA, top, bottom int) *image.NRGBA {
	w := img.Rect.Dx()
	out := image.NewNRGBA(image.Rect(0, 0, w, bottom-top))
	for y := top; y < bottom; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+w*4]
		copy(out.Pix[(y-top)*out.Stride:], src)
	}
	return out
}

// TrimVertical removes transparent rows above and below the visible region.
// The input is returned unchanged when no visible region exists.
func TrimVertical(img *image.NRGBA, tolerance float64) *image.NRGBA {
	h := img.Rect.Dy()
	top := DistFromTop(img, tolerance)
	bottom := h - DistFromBottom(img, tolerance)
	if top >= bottom {
		return img
	}
	return Crop(img, top, bottom)
}

// PadVertical adds transparent rows above and below img.
func PadVertical(img *image.NRGBA, top, bottom int) *image.NRGBA {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h+top+bottom))
	for y := 0; y < h; y++ {
		copy(out.Pix[(y+top)*out.Stride:], img.Pix[y*img.Stride:y*img.Stride+w*4])
	}
	return out
}

// Resize scales img to exactly w x h.
func Resize(img *image.NRGBA, w, h int, filter Filter) *image.NRGBA {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 || img.Rect.Empty() {
		return out
	}
	filter.scaler().Scale(out, out.Rect, img, img.Rect, draw.Src, nil)
	return out
}

// FlipVertical mirrors img top to bottom in place.
func FlipVertical(img *image.NRGBA) *image.NRGBA {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	tmp := make([]byte, w*4)
	for y := 0; y < h/2; y++ {
		a := img.Pix[y*img.Stride : y*img.Stride+w*4]
		b := img.Pix[(h-1-y)*img.Stride : (h-1-y)*img.Stride+w*4]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
	return img
}

// FlipHorizontal mirrors img left to right in place.
func FlipHorizontal(img *image.NRGBA) *image.NRGBA {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for l, r := 0, w-1; l < r; l, r = l+1, r-1 {
			for c := 0; c < 4; c++ {
				row[l*4+c], row[r*4+c] = row[r*4+c], row[l*4+c]
			}
		}
	}
	return img
}

// Rotate90CW rotates img a quarter turn clockwise.
func Rotate90CW(img *image.NRGBA) *image.NRGBA {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src := img.Pix[y*img.Stride+x*4 : y*img.Stride+x*4+4]
			dx, dy := h-1-y, x
			copy(out.Pix[dy*out.Stride+dx*4:], src)
		}
	}
	return out
}

// Rotate90CCW rotates img a quarter turn counter-clockwise.
func Rotate90CCW(img *image.NRGBA) *image.NRGBA {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src := img.Pix[y*img.Stride+x*4 : y*img.Stride+x*4+4]
			dx, dy := y, w-1-x
			copy(out.Pix[dy*out.Stride+dx*4:], src)
		}
	}
	return out
}
