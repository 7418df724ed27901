package fluxis_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"skinbridge/internal/color"
	"skinbridge/internal/skin/fluxis"
	"skinbridge/internal/skinerr"
)

const sampleSkin = `{
  "info": {"name": "Arrows", "creator": "someone"},
  "4k": {"column_width": 120, "hit_position": 60, "receptors_first": false, "receptor_offset": 12, "colors": ["#FF0000"]},
  "12k": {"column_width": 90},
  "judgements": {"flawless": "#112233"},
  "snap-colors": {"1/4": "#AABBCC"},
  "overrides": {
    "Receptor/4k-1-up": "Receptor/left",
    "Receptor/4k-1-down": "Receptor/left-down",
    "HitObjects/Note/4k-2": "Notes/down",
    "HitObjects/Tick/4k-3-small": "Notes/tick",
    "HitObjects/LongNoteEnd/7k-7": "Notes/end",
    "Stage/hitline": "Stage/line",
    "Custom/thing": "custom"
  }
}`

func TestParseSkinJSON(t *testing.T) {
	doc, err := fluxis.ParseSkinJSON([]byte(sampleSkin))
	if err != nil {
		t.Fatalf("ParseSkinJSON: %v", err)
	}
	if doc.Info.Name != "Arrows" || doc.Info.Creator != "someone" || doc.Info.Accent != "#FFFFFF" {
		t.Fatalf("unexpected info %+v", doc.Info)
	}
	if len(doc.Keymodes) != fluxis.MaxKeymode {
		t.Fatalf("expected %d keymodes, got %d", fluxis.MaxKeymode, len(doc.Keymodes))
	}
	if _, ok := doc.Keymode(12); ok {
		t.Fatalf("keymodes above the maximum should be ignored")
	}

	km, ok := doc.Keymode(4)
	if !ok {
		t.Fatalf("missing 4k")
	}
	if km.ColumnWidth != 120 || km.HitPosition != 60 || km.ReceptorsFirst || km.ReceptorOffset != 12 {
		t.Fatalf("unexpected 4k layout %+v", km)
	}
	if len(km.Colors) != 1 || km.Colors[0] != "#FF0000" {
		t.Fatalf("unexpected colors %v", km.Colors)
	}
	if km.ReceptorImages[0] != "Receptor/left" || km.ReceptorImagesDown[0] != "Receptor/left-down" {
		t.Fatalf("unexpected receptors %v %v", km.ReceptorImages, km.ReceptorImagesDown)
	}
	if km.NoteImages[1] != "Notes/down" || km.TickImagesSmall[2] != "Notes/tick" {
		t.Fatalf("unexpected note images %v %v", km.NoteImages, km.TickImagesSmall)
	}

	seven, _ := doc.Keymode(7)
	if seven.ColumnWidth != 150 || !seven.ReceptorsFirst {
		t.Fatalf("7k should keep defaults, got %+v", seven)
	}
	if seven.LongNoteTailImages[6] != "Notes/end" {
		t.Fatalf("unexpected 7k tails %v", seven.LongNoteTailImages)
	}

	if doc.Overrides.Stage.Hitline != "Stage/line" {
		t.Fatalf("hitline not routed to stage field")
	}
	if _, ok := doc.Overrides.Raw.Get("Stage/hitline"); ok {
		t.Fatalf("stage keys should not land in the raw map")
	}
	if v, _ := doc.Overrides.Raw.Get("Custom/thing"); v != "custom" {
		t.Fatalf("raw override lost, got %q", v)
	}
	if doc.Judgements.Flawless != color.MustHex("#112233") || doc.Judgements.Miss != color.MustHex("#FF5555") {
		t.Fatalf("unexpected judgements %+v", doc.Judgements)
	}
	if doc.SnapColors["1/4"] != color.MustHex("#AABBCC") || doc.SnapColors["1/3"] != color.MustHex("#FF5555") {
		t.Fatalf("unexpected snap colors %v", doc.SnapColors)
	}
}

func TestParseSkinJSONRejectsInvalid(t *testing.T) {
	for _, input := range []string{"{", "[1,2]", ""} {
		if _, err := fluxis.ParseSkinJSON([]byte(input)); !errors.Is(err, skinerr.ErrParse) {
			t.Fatalf("input %q: expected ErrParse, got %v", input, err)
		}
	}
}

func TestMarshalKeyOrderAndRoundTrip(t *testing.T) {
	doc, err := fluxis.ParseSkinJSON([]byte(sampleSkin))
	if err != nil {
		t.Fatalf("ParseSkinJSON: %v", err)
	}
	out, err := doc.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !json.Valid(out) {
		t.Fatalf("output is not valid JSON:\n%s", out)
	}
	text := string(out)
	prev := -1
	for _, key := range []string{`"info"`, `"1k"`, `"4k"`, `"10k"`, `"judgements"`, `"snap-colors"`, `"overrides"`} {
		idx := strings.Index(text, key)
		if idx <= prev {
			t.Fatalf("key %s out of order in:\n%s", key, text)
		}
		prev = idx
	}
	if strings.Index(text, `"Custom/thing"`) > strings.Index(text, `"Stage/hitline"`) {
		t.Fatalf("overrides should be sorted by key")
	}

	again, err := fluxis.ParseSkinJSON(out)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	km, _ := again.Keymode(4)
	if km.ColumnWidth != 120 || km.ReceptorImages[0] != "Receptor/left" || km.NoteImages[1] != "Notes/down" {
		t.Fatalf("round trip lost 4k data: %+v", km)
	}
	if again.Overrides.Stage.Hitline != "Stage/line" || again.SnapColors["1/4"] != color.MustHex("#AABBCC") {
		t.Fatalf("round trip lost overrides or snap colours")
	}
}

func TestSyncOverridesWritesKeymodeImages(t *testing.T) {
	doc := fluxis.NewSkinJSON()
	km := doc.EnsureKeymode(4)
	km.SetImage(fluxis.SlotLongNoteHead, 3, "Notes/head")
	km.SetImage(fluxis.SlotReceptorDown, 0, "Receptor/down")
	km.SetImage(fluxis.SlotNote, 9, "ignored")
	doc.SyncOverrides()

	if v, _ := doc.Overrides.Raw.Get("HitObjects/LongNoteStart/4k-4"); v != "Notes/head" {
		t.Fatalf("head override missing, got %q", v)
	}
	if v, _ := doc.Overrides.Raw.Get("Receptor/4k-1-down"); v != "Receptor/down" {
		t.Fatalf("receptor override missing, got %q", v)
	}
	if doc.Overrides.Raw.Len() != 2 {
		t.Fatalf("expected 2 raw overrides, got %v", doc.Overrides.Raw.Keys())
	}
}

func TestOverrideKeyRoundTrip(t *testing.T) {
	for _, slot := range fluxis.Slots {
		key := fluxis.OverrideKey(slot, 7, 4)
		got, keys, col, ok := fluxis.ParseOverrideKey(key)
		if !ok || got != slot || keys != 7 || col != 4 {
			t.Fatalf("%s parsed to %+v %d %d %v", key, got, keys, col, ok)
		}
	}
	for _, key := range []string{"Stage/hitline", "HitObjects/Note/4k-0", "Receptor/xk-1-up", "icon"} {
		if _, _, _, ok := fluxis.ParseOverrideKey(key); ok {
			t.Fatalf("%q should not parse", key)
		}
	}
}

func TestTexturePaths(t *testing.T) {
	doc, err := fluxis.ParseSkinJSON([]byte(sampleSkin))
	if err != nil {
		t.Fatalf("ParseSkinJSON: %v", err)
	}
	paths := doc.TexturePaths()
	want := map[string]bool{"Receptor/left": true, "Notes/end": true, "Stage/line": true, "custom": true}
	for _, p := range paths {
		delete(want, p)
	}
	if len(want) != 0 {
		t.Fatalf("missing texture paths %v in %v", want, paths)
	}
	if len(doc.SamplePaths()) != len(fluxis.SampleAssets) {
		t.Fatalf("expected every sample key")
	}
}

func TestDefaultLayout(t *testing.T) {
	layout := fluxis.DefaultLayout()
	if layout.Name != "Layout" || layout.Author != "Unknown" {
		t.Fatalf("unexpected header %q %q", layout.Name, layout.Author)
	}
	if len(layout.Gameplay) != 13 {
		t.Fatalf("expected 13 components, got %v", layout.Names())
	}
	combo := layout.Gameplay[fluxis.ComponentCombo]
	if combo.Position.Y != -32 || combo.Anchor != 18 || !combo.AnchorToPlayfield || combo.Scale != 1 {
		t.Fatalf("unexpected combo %+v", combo)
	}
	var settings map[string]bool
	if err := json.Unmarshal(combo.Settings, &settings); err != nil || !settings["scale-additive"] {
		t.Fatalf("unexpected combo settings %s (%v)", combo.Settings, err)
	}
	if string(layout.Gameplay[fluxis.ComponentHealth].Settings) != "{}" {
		t.Fatalf("health should have empty settings")
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	layout := fluxis.NewLayout("mine", "me")
	layout.Set(fluxis.ComponentJudgement, fluxis.Component{Position: fluxis.Position{X: 1, Y: 2}, Anchor: 9, Origin: 9, Scale: 2})
	out, err := layout.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	parsed, err := fluxis.ParseLayout(out)
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	j := parsed.Gameplay[fluxis.ComponentJudgement]
	if j.Position.X != 1 || j.Position.Y != 2 || j.Scale != 2 || string(j.Settings) != "{}" {
		t.Fatalf("unexpected judgement %+v", j)
	}
	if parsed.Name != "mine" || len(parsed.Gameplay) != 13 {
		t.Fatalf("unexpected layout %+v", parsed)
	}

	partial, err := fluxis.ParseLayout([]byte(`{"Name":"x","Author":"y"}`))
	if err != nil {
		t.Fatalf("ParseLayout partial: %v", err)
	}
	if c, ok := partial.Component(fluxis.ComponentAccuracy); !ok || c.Origin != 17 {
		t.Fatalf("missing components should fall back to defaults")
	}
	if _, err := fluxis.ParseLayout([]byte("nope")); !errors.Is(err, skinerr.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}
