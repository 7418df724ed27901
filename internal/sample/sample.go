// Package sample binds the asset store to sound files.
//
// Sound payloads are never re-encoded: decoding only checks the container
// with beep to record format metadata, and encoding hands back the original
// bytes.
package sample

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"skinbridge/internal/store"
)

// Extensions lists the file extensions imported as samples.
var Extensions = []string{".wav", ".ogg", ".mp3", ".flac"}

// Sample is a sniffed and verified sound file.
type Sample struct {
	Format     string
	SampleRate int
	Channels   int
	Frames     int
	Data       []byte
}

func (s Sample) Duration() time.Duration {
	if s.SampleRate <= 0 {
		return 0
	}
	return beep.SampleRate(s.SampleRate).D(s.Frames)
}

type Store = store.Store[Sample]

// Codec implements binary.Codec for samples.
type Codec struct{}

func (Codec) Decode(data []byte) (Sample, error) {
	format := Sniff(data)
	if format == "" {
		return Sample{}, fmt.Errorf("unrecognised audio container")
	}
	rc := io.NopCloser(bytes.NewReader(data))
	var (
		stream beep.StreamSeekCloser
		info   beep.Format
		err    error
	)
	switch format {
	case "wav":
		stream, info, err = wav.Decode(rc)
	case "ogg":
		stream, info, err = vorbis.Decode(rc)
	case "mp3":
		stream, info, err = mp3.Decode(rc)
	case "flac":
		stream, info, err = flac.Decode(rc)
	}
	if err != nil {
		return Sample{}, fmt.Errorf("decode %s: %w", format, err)
	}
	defer stream.Close()
	return Sample{
		Format:     format,
		SampleRate: int(info.SampleRate),
		Channels:   info.NumChannels,
		Frames:     stream.Len(),
		Data:       data,
	}, nil
}

func (Codec) Encode(s Sample) ([]byte, error) {
	if len(s.Data) == 0 {
		return nil, fmt.Errorf("sample has no bytes")
	}
	return s.Data, nil
}

func (Codec) Clone(s Sample) Sample {
	s.Data = bytes.Clone(s.Data)
	return s
}

func NewStore() *Store {
	return store.New[Sample](Codec{})
}

// Sniff identifies an audio container from its magic bytes. It returns ""
// for unknown data.
func Sniff(data []byte) string {
	switch {
	case len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WAVE":
		return "wav"
	case len(data) >= 4 && string(data[0:4]) == "OggS":
		return "ogg"
	case len(data) >= 4 && string(data[0:4]) == "fLaC":
		return "flac"
	case len(data) >= 3 && string(data[0:3]) == "ID3":
		return "mp3"
	case len(data) >= 2 && data[0] == 0xFF && data[1]&0xE0 == 0xE0:
		return "mp3"
	default:
		return ""
	}
}

// Extension returns the file extension to export data with. Unknown
// containers are written as .wav.
func Extension(data []byte) string {
	if format := Sniff(data); format != "" {
		return "." + format
	}
	return ".wav"
}
