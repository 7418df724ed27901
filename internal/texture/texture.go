// Package texture binds the asset store to raster images.
//
// Textures decode from any registered container (PNG, JPEG, BMP, WebP, DDS)
// into *image.NRGBA and always re-encode as PNG.
package texture

import (
	"bytes"
	"image"
	"image/draw"
	_ "image/jpeg"
	"image/png"

	_ "github.com/lukegb/dds"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"skinbridge/internal/store"
)

// BlankKey is the store key of the transparent placeholder texture.
const BlankKey = "blank"

// Extensions lists the file extensions imported as textures.
var Extensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".webp", ".dds"}

type Store = store.Store[*image.NRGBA]

// Codec implements binary.Codec for textures.
type Codec struct{}

func (Codec) Decode(data []byte) (*image.NRGBA, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return ToNRGBA(img), nil
}

func (Codec) Encode(img *image.NRGBA) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (Codec) Clone(img *image.NRGBA) *image.NRGBA {
	if img == nil {
		return nil
	}
	out := image.NewNRGBA(img.Rect)
	copy(out.Pix, img.Pix)
	return out
}

func NewStore() *Store {
	return store.New[*image.NRGBA](Codec{})
}

// ToNRGBA converts img to a zero-origin NRGBA image, copying when needed.
func ToNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// Blank returns a fresh 1x1 fully transparent image.
func Blank() *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, 1, 1))
}

// EnsureBlank returns the handle of the placeholder texture, inserting it
// when absent.
func EnsureBlank(s *Store) store.Handle {
	if h, ok := s.Lookup(BlankKey); ok {
		return h
	}
	return s.InsertValue(BlankKey, Blank())
}

// Size returns the pixel dimensions of the texture behind h.
func Size(s *Store, h store.Handle) (int, int, error) {
	var w, hgt int
	err := s.View(h, func(img *image.NRGBA) error {
		w, hgt = img.Rect.Dx(), img.Rect.Dy()
		return nil
	})
	return w, hgt, err
}
