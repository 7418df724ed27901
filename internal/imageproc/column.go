package imageproc

import "image"

// Playfield dimensions of the two formats.
const (
	OsuWidth            = 512
	OsuHeight           = 384
	OsuReceptorWidth    = 48
	FluXisWidth         = 1024
	FluXisHeight        = 576
	FluXisMaxResolution = 4096
)

// Receptor scaling constants. ReceptorHeight is the trimmed height above
// which a receptor is treated as a double-resolution asset.
const (
	ReceptorScale   = 1.6
	ReceptorScale2x = 3.2
	ReceptorHeight  = 128

	ColumnTrimTolerance = 0.01
)

// ColumnScaler converts receptor art between the osu column convention and
// the intermediate one.
type ColumnScaler struct {
	ReceptorHeight int
	TrimTolerance  float64
}

// DefaultColumnScaler uses the package constants.
func DefaultColumnScaler() ColumnScaler {
	return ColumnScaler{ReceptorHeight: ReceptorHeight, TrimTolerance: ColumnTrimTolerance}
}

func (c ColumnScaler) multiplier(is2x bool) float64 {
	if is2x {
		return ReceptorScale2x
	}
	return ReceptorScale
}

// ToOsu scales a receptor so it fills columnWidth osu pixels, then trims it
// and pads the bottom with receptorOffset transparent rows.
func (c ColumnScaler) ToOsu(img *image.NRGBA, columnWidth, receptorOffset int) *image.NRGBA {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w == 0 || h == 0 {
		return img
	}
	is2x := h > c.ReceptorHeight*2
	newW := int(float64(columnWidth) / c.multiplier(is2x))
	newH := int(float64(h) * (float64(newW) / float64(w)))
	out := Resize(img, newW, newH, Triangle)
	out = TrimVertical(out, c.TrimTolerance)
	return PadVertical(out, 0, receptorOffset)
}

// FromOsu trims an osu receptor and stretches its width to the rendered
// width of a columnWidth osu column, keeping the trimmed height.
func (c ColumnScaler) FromOsu(img *image.NRGBA, columnWidth int) *image.NRGBA {
	trimmed := TrimVertical(img, c.TrimTolerance)
	h := trimmed.Rect.Dy()
	if h == 0 || trimmed.Rect.Dx() == 0 {
		return trimmed
	}
	is2x := h > c.ReceptorHeight
	newW := int(float64(columnWidth) * c.multiplier(is2x))
	return Resize(trimmed, newW, h, Triangle)
}

// ToOsuColumn applies DefaultColumnScaler().ToOsu.
func ToOsuColumn(img *image.NRGBA, columnWidth, receptorOffset int) *image.NRGBA {
	return DefaultColumnScaler().ToOsu(img, columnWidth, receptorOffset)
}

// FromOsuColumn applies DefaultColumnScaler().FromOsu.
func FromOsuColumn(img *image.NRGBA, columnWidth int) *image.NRGBA {
	return DefaultColumnScaler().FromOsu(img, columnWidth)
}
