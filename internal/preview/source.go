package preview

import (
	"fmt"
	"image"

	"skinbridge/internal/imageproc"
	"skinbridge/internal/skin/fluxis"
	"skinbridge/internal/skin/generic"
	"skinbridge/internal/skinerr"
	"skinbridge/internal/store"
	"skinbridge/internal/texture"
	"skinbridge/internal/textutil"
)

func missing4k(format string) error {
	return skinerr.Wrap(skinerr.ErrMissingAsset, "preview", format, fmt.Sprintf("no %dk keymode", PreviewKeys), nil)
}

// snapshot copies the texture behind h so rendering never aliases the store.
func snapshot(textures *texture.Store, h store.Handle) *image.NRGBA {
	if !h.Valid() {
		return nil
	}
	var out *image.NRGBA
	err := textures.View(h, func(img *image.NRGBA) error {
		out = texture.Codec{}.Clone(img)
		return nil
	})
	if err != nil {
		return nil
	}
	return out
}

// FromFluXis builds a scene from the 4k keymode of skin.json.
func FromFluXis(skin *fluxis.Skin) (*Scene, error) {
	km, ok := skin.JSON.Keymode(PreviewKeys)
	if !ok {
		return nil, missing4k("fluxis")
	}
	index := textutil.NewFoldedIndex(skin.Textures.Keys())
	load := func(key string) *image.NRGBA {
		if key == "" {
			return nil
		}
		h, ok := skin.Textures.Lookup(key)
		if !ok {
			folded, found := index.Lookup(key)
			if !found {
				return nil
			}
			h, _ = skin.Textures.Lookup(folded)
		}
		return snapshot(skin.Textures, h)
	}

	s := &Scene{
		ColumnWidth: float64(km.ColumnWidth),
		Background:  load(skin.JSON.Overrides.Stage.Background),
	}
	for col := range PreviewKeys {
		s.Lanes[col] = Lane{
			Receptor: load(at(km.ReceptorImages, col)),
			Note:     load(at(km.NoteImages, col)),
			Head:     load(at(km.LongNoteHeadImages, col)),
			Body:     load(at(km.LongNoteBodyImages, col)),
			Tail:     load(at(km.LongNoteTailImages, col)),
		}
	}
	return s, nil
}

// FromGeneric builds a scene from the 4k keymode of an intermediate skin.
func FromGeneric(skin *generic.Skin) (*Scene, error) {
	km, ok := skin.Keymode(PreviewKeys)
	if !ok {
		return nil, missing4k("generic")
	}
	load := func(hs []store.Handle, col int) *image.NRGBA {
		if col >= len(hs) {
			return nil
		}
		return snapshot(skin.Textures, hs[col])
	}

	s := &Scene{
		ColumnWidth: km.Layout.AverageColumnWidth() * imageproc.FluXisWidth,
		Background:  snapshot(skin.Textures, skin.Gameplay.Stage.Background),
	}
	for col := range PreviewKeys {
		s.Lanes[col] = Lane{
			Receptor: load(km.ReceptorUp, col),
			Note:     load(km.NormalNote, col),
			Head:     load(km.LongNoteHead, col),
			Body:     load(km.LongNoteBody, col),
			Tail:     load(km.LongNoteTail, col),
		}
	}
	return s, nil
}

func at(s []string, i int) string {
	if i < 0 || i >= len(s) {
		return ""
	}
	return s[i]
}
