package generic_test

import (
	"errors"
	"testing"

	"skinbridge/internal/skin/generic"
	"skinbridge/internal/skinerr"
	"skinbridge/internal/testsupport"
)

func TestKeymodeValidate(t *testing.T) {
	km := generic.NewKeymode(4)
	if err := km.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	km.NormalNote = km.NormalNote[:3]
	if err := km.Validate(); !errors.Is(err, skinerr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPrimaryKeymode(t *testing.T) {
	s := generic.New()
	if _, ok := s.PrimaryKeymode(); ok {
		t.Fatalf("expected no keymode")
	}
	s.Keymodes = append(s.Keymodes, generic.NewKeymode(7), generic.NewKeymode(4))
	km, ok := s.PrimaryKeymode()
	if !ok || km.KeyCount != 4 {
		t.Fatalf("expected 4k keymode, got %+v", km)
	}
}

func TestAverageColumnWidth(t *testing.T) {
	l := generic.Layout{ColumnWidths: []float64{0.1, 0.2, 0.3}}
	if got := l.AverageColumnWidth(); got < 0.1999 || got > 0.2001 {
		t.Fatalf("average = %v", got)
	}
	if (generic.Layout{}).AverageColumnWidth() != 0 {
		t.Fatalf("empty layout should average to 0")
	}
}

func TestMerge(t *testing.T) {
	base := generic.New()
	base.Metadata.Name = "Base"
	base.Keymodes = append(base.Keymodes, generic.NewKeymode(4))
	baseNote := base.Textures.InsertValue("note", testsupport.Band(2, 2, 0, 0))
	base.Keymodes[0].NormalNote[0] = baseNote

	other := generic.New()
	other.Metadata = generic.Metadata{Creator: "Other", CenterCursor: false}
	other.Keymodes = append(other.Keymodes, generic.NewKeymode(7), generic.NewKeymode(4))
	otherNote := other.Textures.InsertValue("note-other", testsupport.Band(2, 2, 0, 0))
	other.Keymodes[1].NormalNote[1] = otherNote
	other.Keymodes[1].Layout.HitPosition = 0.8
	other.Gameplay.HealthBar.Fill = otherNote
	other.Samples.InsertBytes("hit", testsupport.WAV(10))
	other.Sounds.Mania.Hit = "hit"

	if err := base.Merge(other); err != nil {
		t.Fatalf("Merge: %v", err)
	}

	if base.Metadata.Name != "Base" || base.Metadata.Creator != "Other" || base.Metadata.CenterCursor {
		t.Fatalf("metadata = %+v", base.Metadata)
	}
	if len(base.Keymodes) != 2 || base.Keymodes[0].KeyCount != 4 || base.Keymodes[1].KeyCount != 7 {
		t.Fatalf("keymodes not merged and sorted: %d", len(base.Keymodes))
	}
	km := base.Keymodes[0]
	if km.NormalNote[0] != baseNote {
		t.Fatalf("unset handle must not overwrite")
	}
	if key := base.TextureKey(km.NormalNote[1]); key != "note-other" {
		t.Fatalf("merged handle key = %q", key)
	}
	if km.Layout.HitPosition != 0.8 {
		t.Fatalf("layout not merged")
	}
	if base.TextureKey(base.Gameplay.HealthBar.Fill) != "note-other" {
		t.Fatalf("health bar not remapped")
	}
	if base.Gameplay.HealthBar.Fill != km.NormalNote[1] {
		t.Fatalf("one source handle must map to one destination handle")
	}
	if base.Sounds.Mania.Hit != "hit" || !base.Samples.Contains("hit") {
		t.Fatalf("sound not merged")
	}
}
