package testsupport

import (
	"encoding/binary"
	"image"
	"image/color"
)

// Solid returns a w x h image filled with c.
func Solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// Band returns a w x h image that is transparent for the first top rows and
// the last bottom rows and opaque white in between.
func Band(w, h, top, bottom int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := top; y < h-bottom; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	return img
}

// WAV returns a mono 16-bit 44.1kHz PCM file holding frames silent frames.
func WAV(frames int) []byte {
	const (
		sampleRate    = 44100
		channels      = 1
		bitsPerSample = 16
	)
	blockAlign := channels * bitsPerSample / 8
	dataSize := frames * blockAlign

	buf := make([]byte, 0, 44+dataSize)
	le := binary.LittleEndian
	buf = append(buf, "RIFF"...)
	buf = le.AppendUint32(buf, uint32(36+dataSize))
	buf = append(buf, "WAVE"...)
	buf = append(buf, "fmt "...)
	buf = le.AppendUint32(buf, 16)
	buf = le.AppendUint16(buf, 1)
	buf = le.AppendUint16(buf, channels)
	buf = le.AppendUint32(buf, sampleRate)
	buf = le.AppendUint32(buf, uint32(sampleRate*blockAlign))
	buf = le.AppendUint16(buf, uint16(blockAlign))
	buf = le.AppendUint16(buf, bitsPerSample)
	buf = append(buf, "data"...)
	buf = le.AppendUint32(buf, uint32(dataSize))
	buf = append(buf, make([]byte, dataSize)...)
	return buf
}
