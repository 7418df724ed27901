package fluxis

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// StageOverrides are the override keys that have a dedicated field.
type StageOverrides struct {
	HealthForeground  string
	HealthBackground  string
	BorderLeft        string
	BorderRight       string
	BorderRightTop    string
	BorderRightBottom string
	BorderLeftTop     string
	BorderLeftBottom  string
	BackgroundTop     string
	BackgroundBottom  string
	Hitline           string
	ColumnLighting    string
	FailFlash         string
	Background        string
}

func (s *StageOverrides) field(key string) *string {
	switch key {
	case HealthForeground:
		return &s.HealthForeground
	case HealthBackground:
		return &s.HealthBackground
	case StageBorderLeft:
		return &s.BorderLeft
	case StageBorderRight:
		return &s.BorderRight
	case StageBorderRightTop:
		return &s.BorderRightTop
	case StageBorderRightBottom:
		return &s.BorderRightBottom
	case StageBorderLeftTop:
		return &s.BorderLeftTop
	case StageBorderLeftBottom:
		return &s.BorderLeftBottom
	case StageBackgroundTop:
		return &s.BackgroundTop
	case StageBackgroundBottom:
		return &s.BackgroundBottom
	case StageHitline:
		return &s.Hitline
	case ColumnLighting:
		return &s.ColumnLighting
	case FailFlash:
		return &s.FailFlash
	case StageBackground:
		return &s.Background
	}
	return nil
}

var stageKeys = []string{
	HealthForeground, HealthBackground,
	StageBorderLeft, StageBorderRight,
	StageBorderRightTop, StageBorderRightBottom, StageBorderLeftTop, StageBorderLeftBottom,
	StageBackgroundTop, StageBackgroundBottom,
	StageHitline, ColumnLighting, FailFlash, StageBackground,
}

// Fields returns every stage override in a fixed order, empty ones included.
func (s *StageOverrides) Fields() [][2]string {
	out := make([][2]string, len(stageKeys))
	for i, k := range stageKeys {
		out[i] = [2]string{k, *s.field(k)}
	}
	return out
}

// RawOverrides keeps the non-stage overrides in insertion order.
type RawOverrides struct {
	keys   []string
	values map[string]string
}

func (r *RawOverrides) Set(key, value string) {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

func (r *RawOverrides) Get(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

func (r *RawOverrides) Len() int { return len(r.keys) }

// Keys returns keys in insertion order.
func (r *RawOverrides) Keys() []string { return append([]string(nil), r.keys...) }

// Overrides is the "overrides" object of skin.json.
type Overrides struct {
	Stage StageOverrides
	Raw   RawOverrides
}

// Set routes key to its stage field or to the raw map.
func (o *Overrides) Set(key, value string) {
	if f := o.Stage.field(key); f != nil {
		*f = value
		return
	}
	o.Raw.Set(key, value)
}

// Get looks key up in the stage fields and then the raw map.
func (o *Overrides) Get(key string) string {
	if f := o.Stage.field(key); f != nil {
		return *f
	}
	v, _ := o.Raw.Get(key)
	return v
}

// Entries returns every non-empty override sorted by key.
func (o *Overrides) Entries() [][2]string {
	var out [][2]string
	for _, kv := range o.Stage.Fields() {
		if kv[1] != "" {
			out = append(out, kv)
		}
	}
	for _, k := range o.Raw.keys {
		if v := o.Raw.values[k]; v != "" {
			out = append(out, [2]string{k, v})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}

// OverrideKey builds the override key of a keymode image. col is 0-based.
func OverrideKey(slot Slot, keys, col int) string {
	prefix := slot.Element
	if slot.Type != "" {
		prefix += "/" + slot.Type
	}
	return fmt.Sprintf("%s/%dk-%d%s", prefix, keys, col+1, slot.Suffix)
}

var identifierSuffixes = []string{"-up", "-down", "-small"}

// ParseOverrideKey splits an override key such as HitObjects/Note/4k-2 into
// its slot, key count and 0-based column.
func ParseOverrideKey(key string) (Slot, int, int, bool) {
	parts := strings.Split(key, "/")
	if len(parts) < 2 {
		return Slot{}, 0, 0, false
	}
	slot := Slot{Element: parts[0]}
	if len(parts) > 2 {
		slot.Type = parts[1]
	}
	ident := parts[len(parts)-1]
	for _, s := range identifierSuffixes {
		if rest, ok := strings.CutSuffix(ident, s); ok {
			slot.Suffix = s
			ident = rest
			break
		}
	}
	ks, cs, ok := strings.Cut(ident, "k-")
	if !ok {
		return Slot{}, 0, 0, false
	}
	keys, err := strconv.Atoi(ks)
	if err != nil || keys <= 0 {
		return Slot{}, 0, 0, false
	}
	col, err := strconv.Atoi(cs)
	if err != nil || col <= 0 {
		return Slot{}, 0, 0, false
	}
	return slot, keys, col - 1, true
}
