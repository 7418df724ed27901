package texture_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"skinbridge/internal/skinerr"
	"skinbridge/internal/texture"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestStoreDecodesPNG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 3))
	src.Set(1, 1, color.RGBA{R: 255, A: 255})
	s := texture.NewStore()
	h := s.InsertBytes("mania-note1", encodePNG(t, src))
	w, hgt, err := texture.Size(s, h)
	if err != nil {
		t.Fatalf("size: %v", err)
	}
	if w != 4 || hgt != 3 {
		t.Fatalf("size = %dx%d", w, hgt)
	}
}

func TestStoreRejectsGarbage(t *testing.T) {
	s := texture.NewStore()
	h := s.InsertBytes("broken", []byte("definitely not an image"))
	_, _, err := texture.Size(s, h)
	if !errors.Is(err, skinerr.ErrDecode) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestEnsureBlankIsStable(t *testing.T) {
	s := texture.NewStore()
	h1 := texture.EnsureBlank(s)
	h2 := texture.EnsureBlank(s)
	if h1 != h2 {
		t.Fatalf("blank inserted twice: %d %d", h1, h2)
	}
	w, hgt, err := texture.Size(s, h1)
	if err != nil || w != 1 || hgt != 1 {
		t.Fatalf("blank size %dx%d err %v", w, hgt, err)
	}
}

func TestToNRGBAResetsOrigin(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 8, 9))
	out := texture.ToNRGBA(src)
	if out.Rect.Min != (image.Point{}) || out.Rect.Dx() != 3 || out.Rect.Dy() != 4 {
		t.Fatalf("rect = %v", out.Rect)
	}
}

func TestEncodeProducesPNG(t *testing.T) {
	data, err := texture.Codec{}.Encode(texture.Blank())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("output is not png: %v", err)
	}
}
