package fluxis

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"skinbridge/internal/color"
	"skinbridge/internal/skinerr"
)

type Info struct {
	Name    string
	Creator string
	Accent  string
}

// JudgementColors tints the judgement text, best grade first.
type JudgementColors struct {
	Flawless color.RGBA
	Perfect  color.RGBA
	Great    color.RGBA
	Alright  color.RGBA
	Okay     color.RGBA
	Miss     color.RGBA
}

func DefaultJudgementColors() JudgementColors {
	return JudgementColors{
		Flawless: color.MustHex("#00C3FF"),
		Perfect:  color.MustHex("#22FFB5"),
		Great:    color.MustHex("#4BFF3B"),
		Alright:  color.MustHex("#FFF12B"),
		Okay:     color.MustHex("#F7AD40"),
		Miss:     color.MustHex("#FF5555"),
	}
}

func (j *JudgementColors) fields() []struct {
	name string
	c    *color.RGBA
} {
	return []struct {
		name string
		c    *color.RGBA
	}{
		{"flawless", &j.Flawless}, {"perfect", &j.Perfect}, {"great", &j.Great},
		{"alright", &j.Alright}, {"okay", &j.Okay}, {"miss", &j.Miss},
	}
}

// SnapNames lists the snap divisors in serialization order.
var SnapNames = []string{"1/3", "1/4", "1/6", "1/8", "1/12", "1/16", "1/24", "1/48"}

// SnapColors maps a snap divisor from SnapNames to its colour.
type SnapColors map[string]color.RGBA

func DefaultSnapColors() SnapColors {
	return SnapColors{
		"1/3":  color.MustHex("#FF5555"),
		"1/4":  color.MustHex("#558EFF"),
		"1/6":  color.MustHex("#8EFF55"),
		"1/8":  color.MustHex("#FFE355"),
		"1/12": color.MustHex("#C655FF"),
		"1/16": color.MustHex("#55FFAA"),
		"1/24": color.MustHex("#FF55AA"),
		"1/48": color.MustHex("#BFBFBF"),
	}
}

// SkinJSON is the parsed skin.json.
type SkinJSON struct {
	Info       Info
	Keymodes   []Keymode
	Judgements JudgementColors
	SnapColors SnapColors
	Overrides  Overrides
}

// NewSkinJSON returns a document with defaults and no keymodes.
func NewSkinJSON() *SkinJSON {
	return &SkinJSON{
		Info:       Info{Accent: "#FFFFFF"},
		Judgements: DefaultJudgementColors(),
		SnapColors: DefaultSnapColors(),
	}
}

// Keymode returns the keymode with n keys.
func (s *SkinJSON) Keymode(n int) (*Keymode, bool) {
	for i := range s.Keymodes {
		if s.Keymodes[i].Keys == n {
			return &s.Keymodes[i], true
		}
	}
	return nil, false
}

// EnsureKeymode returns the keymode with n keys, adding a default one.
func (s *SkinJSON) EnsureKeymode(n int) *Keymode {
	if km, ok := s.Keymode(n); ok {
		return km
	}
	s.Keymodes = append(s.Keymodes, NewKeymode(n))
	sort.SliceStable(s.Keymodes, func(i, j int) bool { return s.Keymodes[i].Keys < s.Keymodes[j].Keys })
	km, _ := s.Keymode(n)
	return km
}

func keymodeCount(key string) (int, bool) {
	num, ok := strings.CutSuffix(key, "k")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(num)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// ParseSkinJSON reads skin.json. Keymodes 1 through MaxKeymode always exist
// in the result; "<N>k" objects set their layout and overrides fill their
// images.
func ParseSkinJSON(data []byte) (*SkinJSON, error) {
	if !gjson.ValidBytes(data) {
		return nil, skinerr.Wrap(skinerr.ErrParse, "skin.json", "parse", "invalid JSON", nil)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, skinerr.Wrap(skinerr.ErrParse, "skin.json", "parse", "top level is not an object", nil)
	}
	s := NewSkinJSON()
	for k := 1; k <= MaxKeymode; k++ {
		s.Keymodes = append(s.Keymodes, NewKeymode(k))
	}

	info := doc.Get("info")
	s.Info.Name = info.Get("name").String()
	s.Info.Creator = info.Get("creator").String()
	if v := info.Get("accent"); v.Exists() {
		s.Info.Accent = v.String()
	}

	for _, f := range s.Judgements.fields() {
		parseHexInto(doc.Get("judgements."+f.name), f.c)
	}
	doc.Get("snap-colors").ForEach(func(key, value gjson.Result) bool {
		var c color.RGBA
		if parseHexInto(value, &c) {
			s.SnapColors[key.String()] = c
		}
		return true
	})

	doc.ForEach(func(key, value gjson.Result) bool {
		n, ok := keymodeCount(key.String())
		if !ok || !value.IsObject() {
			return true
		}
		km, ok := s.Keymode(n)
		if !ok {
			return true
		}
		km.applyJSON(value)
		return true
	})

	doc.Get("overrides").ForEach(func(key, value gjson.Result) bool {
		s.Overrides.Set(key.String(), value.String())
		return true
	})
	s.KeymodesFromOverrides()
	return s, nil
}

func parseHexInto(v gjson.Result, dst *color.RGBA) bool {
	if !v.Exists() {
		return false
	}
	c, err := color.ParseHex(v.String())
	if err != nil {
		return false
	}
	*dst = c
	return true
}

func (k *Keymode) applyJSON(v gjson.Result) {
	if f := v.Get("column_width"); f.Exists() {
		k.ColumnWidth = int(f.Int())
	}
	if f := v.Get("hit_position"); f.Exists() {
		k.HitPosition = int(f.Int())
	}
	k.TintNotes = v.Get("tint_notes").Bool()
	k.TintLNs = v.Get("tint_lns").Bool()
	k.TintReceptors = v.Get("tint_receptors").Bool()
	if f := v.Get("colors"); f.IsArray() {
		k.Colors = k.Colors[:0]
		for _, c := range f.Array() {
			k.Colors = append(k.Colors, c.String())
		}
	}
	if f := v.Get("receptors_first"); f.Exists() {
		k.ReceptorsFirst = f.Bool()
	}
	if f := v.Get("receptor_offset"); f.Exists() {
		k.ReceptorOffset = int(f.Int())
	}
}

// KeymodesFromOverrides assigns every keymode image override to its
// keymode column.
func (s *SkinJSON) KeymodesFromOverrides() {
	for _, key := range s.Overrides.Raw.Keys() {
		slot, n, col, ok := ParseOverrideKey(key)
		if !ok {
			continue
		}
		km, ok := s.Keymode(n)
		if !ok {
			continue
		}
		v, _ := s.Overrides.Raw.Get(key)
		km.SetImage(slot, col, v)
	}
}

// SyncOverrides writes every non-empty keymode image into the raw overrides.
func (s *SkinJSON) SyncOverrides() {
	for i := range s.Keymodes {
		km := &s.Keymodes[i]
		for _, slot := range Slots {
			for col, img := range km.Images(slot) {
				if img != "" {
					s.Overrides.Raw.Set(OverrideKey(slot, km.Keys, col), img)
				}
			}
		}
	}
}

// TexturePaths returns every texture key the document references.
func (s *SkinJSON) TexturePaths() []string {
	set := make(map[string]struct{})
	add := func(v string) {
		if v != "" {
			set[v] = struct{}{}
		}
	}
	for i := range s.Keymodes {
		for _, slot := range Slots {
			for _, img := range s.Keymodes[i].Images(slot) {
				add(img)
			}
		}
	}
	for _, k := range s.Overrides.Raw.Keys() {
		v, _ := s.Overrides.Raw.Get(k)
		add(v)
	}
	for _, kv := range s.Overrides.Stage.Fields() {
		add(kv[1])
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// SamplePaths returns every sample key fluXis looks up.
func (s *SkinJSON) SamplePaths() []string {
	out := append([]string(nil), SampleAssets...)
	sort.Strings(out)
	return out
}

// escapePath escapes the characters sjson treats as path syntax.
func escapePath(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\', ':', '!', '=', '<', '>', '%':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Marshal renders skin.json with keys in the order info, keymodes,
// judgements, snap-colors, overrides.
func (s *SkinJSON) Marshal() ([]byte, error) {
	doc := []byte("{}")
	var err error
	set := func(path string, value any) {
		if err != nil {
			return
		}
		doc, err = sjson.SetBytes(doc, path, value)
	}
	setRaw := func(path string, raw string) {
		if err != nil {
			return
		}
		doc, err = sjson.SetRawBytes(doc, path, []byte(raw))
	}

	set("info.name", s.Info.Name)
	set("info.creator", s.Info.Creator)
	set("info.accent", s.Info.Accent)

	for i := range s.Keymodes {
		km := &s.Keymodes[i]
		p := fmt.Sprintf("%dk.", km.Keys)
		set(p+"column_width", km.ColumnWidth)
		set(p+"hit_position", km.HitPosition)
		set(p+"tint_notes", km.TintNotes)
		set(p+"tint_lns", km.TintLNs)
		set(p+"tint_receptors", km.TintReceptors)
		colors := km.Colors
		if colors == nil {
			colors = []string{}
		}
		set(p+"colors", colors)
		set(p+"receptors_first", km.ReceptorsFirst)
		set(p+"receptor_offset", km.ReceptorOffset)
	}

	for _, f := range s.Judgements.fields() {
		set("judgements."+f.name, f.c.Hex())
	}

	setRaw("snap-colors", "{}")
	for _, name := range s.snapOrder() {
		set("snap-colors."+escapePath(name), s.SnapColors[name].Hex())
	}

	setRaw("overrides", "{}")
	for _, kv := range s.Overrides.Entries() {
		set("overrides."+escapePath(kv[0]), kv[1])
	}
	if err != nil {
		return nil, skinerr.Wrap(skinerr.ErrEncode, "skin.json", "marshal", "", err)
	}
	return pretty.PrettyOptions(doc, &pretty.Options{Width: 80, Indent: "  "}), nil
}

func (s *SkinJSON) snapOrder() []string {
	out := make([]string, 0, len(s.SnapColors))
	known := make(map[string]bool, len(SnapNames))
	for _, n := range SnapNames {
		known[n] = true
		if _, ok := s.SnapColors[n]; ok {
			out = append(out, n)
		}
	}
	var extra []string
	for n := range s.SnapColors {
		if !known[n] {
			extra = append(extra, n)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}
