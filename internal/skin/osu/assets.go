package osu

import "sort"

// MaxKeys is the largest key count osu accepts in a [Mania] section.
const MaxKeys = 18

// Mania element defaults.
const (
	Hit0         = "mania-hit0"
	Hit50        = "mania-hit50"
	Hit100       = "mania-hit100"
	Hit200       = "mania-hit200"
	Hit300       = "mania-hit300"
	Hit300g      = "mania-hit300g"
	ComboBurst   = "comboburst-mania"
	StageLeft    = "mania-stage-left"
	StageRight   = "mania-stage-right"
	StageBottom  = "mania-stage-bottom"
	StageLight   = "mania-stage-light"
	StageHint    = "mania-stage-hint"
	WarningArrow = "mania-warningarrow"
	LightingL    = "lightingL"
	LightingN    = "lightingN"
)

// Interface textures.
const (
	Star           = "star"
	Star2          = "star2"
	ScorebarBG     = "scorebar-bg"
	ScorebarColour = "scorebar-colour"
	ScorebarMarker = "scorebar-marker"
)

// Samples the converters read or write.
const (
	SampleMenuBack        = "menuback"
	SampleMenuClick       = "menuclick"
	SampleMenuHit         = "menuhit"
	SampleClickShort      = "click-short"
	SampleComboBreak      = "combobreak"
	SampleFailSound       = "failsound"
	SamplePauseRetryClick = "pause-retry-click"
	SampleNormalHitNormal = "normal-hitnormal"
)

// Lane selects one of the three default texture sets.
type Lane int

const (
	LanePrimary Lane = iota
	LaneSecondary
	LaneMiddle
)

// LaneOf returns the default texture set for column i of an n key stage.
// Columns alternate outward from the edges, and the centre column of an odd
// stage uses the middle set.
func LaneOf(i, n int) Lane {
	if n%2 == 1 && i == n/2 {
		return LaneMiddle
	}
	m := min(i, n-1-i)
	if m%2 == 0 {
		return LanePrimary
	}
	return LaneSecondary
}

// LaneFallback holds the default texture keys of one lane.
type LaneFallback struct {
	Receptor     string
	ReceptorDown string
	Note         string
	NoteHead     string
	NoteBody     string
	NoteTail     string
}

func laneFallback(tag string) LaneFallback {
	return LaneFallback{
		Receptor:     "mania-key" + tag,
		ReceptorDown: "mania-key" + tag + "D",
		Note:         "mania-note" + tag,
		NoteHead:     "mania-note" + tag + "H",
		NoteBody:     "mania-note" + tag + "L",
		NoteTail:     "mania-note" + tag + "T",
	}
}

// Fallback returns the default textures of lane l.
func (l Lane) Fallback() LaneFallback {
	switch l {
	case LaneSecondary:
		return laneFallback("2")
	case LaneMiddle:
		return laneFallback("S")
	default:
		return laneFallback("1")
	}
}

// ColumnFallback returns the default textures of column i of keymode km.
func (km *Keymode) ColumnFallback(i int) LaneFallback {
	return LaneOf(i, km.Keys).Fallback()
}

// ManiaAssets lists every mania texture osu looks up by default.
var ManiaAssets = []string{
	Hit0, Hit50, Hit100, Hit200, Hit300, Hit300g, ComboBurst,
	"mania-key1", "mania-key1D", "mania-key2", "mania-key2D", "mania-keyS", "mania-keySD",
	"mania-note1", "mania-note2", "mania-noteS",
	"mania-note1H", "mania-note2H", "mania-noteSH",
	"mania-note1L", "mania-note2L", "mania-noteSL",
	"mania-note1T", "mania-note2T", "mania-noteST",
	StageLeft, StageRight, StageBottom, StageLight, StageHint, WarningArrow,
	LightingL, LightingN,
}

// InterfaceAssets lists the non-mania textures the converters use.
var InterfaceAssets = []string{Star, Star2, ScorebarBG, ScorebarColour, ScorebarMarker}

// SampleAssets lists every sample name osu looks up.
var SampleAssets = []string{
	"heartbeat", "seeya", "welcome",
	"key-confirm", "key-delete", "key-movement", "key-press-1", "key-press-2", "key-press-3", "key-press-4",
	"back-button-click", "check-on", "check-off", "click-close", "click-short-confirm",
	SampleMenuBack, SampleMenuHit, "menu-back-click", "menu-direct-click", "menu-edit-click",
	"menu-exit-click", "menu-freeplay-click", "menu-multiplayer-click", "menu-options-click",
	"menu-play-click", "pause-back-click", "pause-continue-click", SamplePauseRetryClick,
	"select-expand", "select-difficulty", "shutter",
	"back-button-hover", SampleClickShort, SampleMenuClick, "menu-back-hover", "menu-direct-hover",
	"menu-edit-hover", "menu-exit-hover", "menu-freeplay-hover", "menu-multiplayer-hover",
	"menu-options-hover", "menu-play-hover", "pause-hover", "pause-back-hover",
	"pause-continue-hover", "pause-retry-hover",
	"sliderbar", "whoosh",
	"match-confirm", "match-join", "match-leave", "match-notready", "match-ready", "match-start",
	"metronomelow",
	"count", "count1s", "count2s", "count3s", "gos", "readys",
	"comboburst", SampleComboBreak, SampleFailSound, "sectionpass", "sectionfail",
	"applause", "pause-loop",
	"drum-hitnormal", "drum-hitclap", "drum-hitfinish", "drum-hitwhistle",
	"drum-slidertick", "drum-sliderslide", "drum-sliderwhistle",
	SampleNormalHitNormal, "normal-hitclap", "normal-hitfinish", "normal-hitwhistle",
	"normal-slidertick", "normal-sliderslide", "normal-sliderwhistle",
	"soft-hitnormal", "soft-hitclap", "soft-hitfinish", "soft-hitwhistle",
	"soft-slidertick", "soft-sliderslide", "soft-sliderwhistle",
	"spinnerspin", "spinnerbonus", "spinnerbonus-max",
	"nightcore-kick", "nightcore-clap", "nightcore-hat", "nightcore-finish",
	"taiko-normal-hitnormal", "taiko-normal-hitclap", "taiko-normal-hitfinish", "taiko-normal-hitwhistle",
	"taiko-soft-hitnormal", "taiko-soft-hitclap", "taiko-soft-hitfinish", "taiko-soft-hitwhistle",
	"taiko-drum-hitnormal", "taiko-drum-hitclap", "taiko-drum-hitfinish", "taiko-drum-hitwhistle",
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// TexturePaths returns the texture keys this keymode may reference.
func (km *Keymode) TexturePaths() []string {
	set := make(map[string]struct{})
	add := func(vs ...string) {
		for _, v := range vs {
			if v != "" {
				set[v] = struct{}{}
			}
		}
	}
	add(km.ReceptorImages...)
	add(km.ReceptorImagesDown...)
	add(km.NoteImages...)
	add(km.NoteImagesHead...)
	add(km.NoteImagesBody...)
	add(km.NoteImagesTail...)
	add(
		orDefault(km.StageLeft, StageLeft),
		orDefault(km.StageRight, StageRight),
		orDefault(km.StageLight, StageLight),
		orDefault(km.StageHint, StageHint),
		orDefault(km.StageBottom, StageBottom),
		orDefault(km.LightingN, LightingN),
		orDefault(km.LightingL, LightingL),
		orDefault(km.Hit0, Hit0),
		orDefault(km.Hit50, Hit50),
		orDefault(km.Hit100, Hit100),
		orDefault(km.Hit200, Hit200),
		orDefault(km.Hit300, Hit300),
		orDefault(km.Hit300g, Hit300g),
		orDefault(km.WarningArrow, WarningArrow),
	)
	add("lighting", "lightingA", LightingL, LightingN, "comboburst", StageHint, Star, Star2, ScorebarBG, ScorebarColour)
	return sortedKeys(set)
}

// TexturePaths returns every texture key the skin may reference.
func (s *SkinIni) TexturePaths() []string {
	set := make(map[string]struct{})
	for i := range s.Keymodes {
		for _, p := range s.Keymodes[i].TexturePaths() {
			set[p] = struct{}{}
		}
	}
	for _, p := range ManiaAssets {
		set[p] = struct{}{}
	}
	for _, p := range InterfaceAssets {
		set[p] = struct{}{}
	}
	return sortedKeys(set)
}

// SamplePaths returns every sample key the skin may reference.
func (s *SkinIni) SamplePaths() []string {
	out := append([]string(nil), SampleAssets...)
	sort.Strings(out)
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
