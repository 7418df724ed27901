// Package osu models the osu mania skin format: skin.ini plus loose image and
// sound files addressed by extension-less keys.
package osu

import (
	"bufio"
	"bytes"
	"strings"

	"gopkg.in/ini.v1"

	"skinbridge/internal/sample"
	"skinbridge/internal/skinerr"
	"skinbridge/internal/texture"
)

// SkinIni is the parsed skin.ini.
type SkinIni struct {
	General  General
	Keymodes []Keymode
}

func NewSkinIni() *SkinIni {
	return &SkinIni{General: DefaultGeneral()}
}

var loadOptions = ini.LoadOptions{
	InsensitiveSections:     true,
	InsensitiveKeys:         true,
	IgnoreInlineComment:     true,
	IgnoreContinuation:      true,
	SkipUnrecognizableLines: true,
	AllowNonUniqueSections:  true,
	KeyValueDelimiters:      ":",
}

// stripComments drops // comment lines, which ini.v1 does not recognise.
func stripComments(data []byte) []byte {
	var out bytes.Buffer
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}
	return out.Bytes()
}

// ParseSkinIni reads skin.ini. Sections other than [General] and [Mania] are
// ignored, as are [Mania] sections without a Keys entry.
func ParseSkinIni(data []byte) (*SkinIni, error) {
	f, err := ini.LoadSources(loadOptions, stripComments(data))
	if err != nil {
		return nil, skinerr.Wrap(skinerr.ErrParse, "skin.ini", "load", "", err)
	}
	out := NewSkinIni()
	if sec, err := f.GetSection("general"); err == nil {
		if out.General, err = parseGeneral(sec); err != nil {
			return nil, err
		}
	}
	secs, err := f.SectionsByName("mania")
	if err != nil {
		return out, nil
	}
	for _, sec := range secs {
		km, ok, err := parseKeymode(sec)
		if err != nil {
			return nil, err
		}
		if ok {
			out.Keymodes = append(out.Keymodes, km)
		}
	}
	return out, nil
}

// Keymode returns the first [Mania] section with n keys.
func (s *SkinIni) Keymode(n int) (*Keymode, bool) {
	for i := range s.Keymodes {
		if s.Keymodes[i].Keys == n {
			return &s.Keymodes[i], true
		}
	}
	return nil, false
}

// String renders skin.ini.
func (s *SkinIni) String() string {
	var w writer
	w.b.WriteString("[General]\n")
	s.General.write(&w)
	w.b.WriteByte('\n')
	for _, km := range s.Keymodes {
		w.b.WriteString("[Mania]\n")
		km.write(&w)
		w.b.WriteByte('\n')
	}
	return w.String()
}

// Skin is an osu skin held in memory.
type Skin struct {
	Ini      *SkinIni
	Textures *texture.Store
	Samples  *sample.Store
}

func NewSkin(cfg *SkinIni) *Skin {
	if cfg == nil {
		cfg = NewSkinIni()
	}
	return &Skin{Ini: cfg, Textures: texture.NewStore(), Samples: sample.NewStore()}
}
