package osu

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"

	"skinbridge/internal/color"
	"skinbridge/internal/skinerr"
)

// ComboBurstStyle values.
const (
	ComboBurstLeft  = 0
	ComboBurstRight = 1
	ComboBurstBoth  = 2
)

var (
	defaultColour      = color.Black
	defaultColourLight = color.RGBA{R: 55, G: 255, B: 255, A: 255}
)

// Keymode is one [Mania] section of skin.ini. Image fields hold store keys
// with forward slashes.
type Keymode struct {
	Keys int

	KeysUnderNotes  bool
	JudgementLine   bool
	UpsideDown      bool
	SpecialStyle    int
	ComboBurstStyle int
	SplitStages     *bool
	StageSeparation float64
	SeparateScore   bool

	HitPosition   int
	LightPosition int
	ScorePosition *int
	ComboPosition *int

	ColumnStart     float64
	ColumnRight     float64
	ColumnLineWidth []float64
	ColumnWidth     []float64
	ColumnSpacing   []float64

	BarlineHeight           float64
	LightingNWidth          []float64
	LightingLWidth          []float64
	WidthForNoteHeightScale *float64
	LightFramePerSecond     int

	KeyFlipWhenUpsideDown  bool
	KeyFlipColumns         []bool
	KeyFlipDownColumns     []bool
	NoteFlipWhenUpsideDown bool
	NoteFlipColumns        []bool
	NoteFlipHeadColumns    []bool
	NoteFlipBodyColumns    []bool
	NoteFlipTailColumns    []bool
	NoteBodyStyle          int
	NoteBodyStyleColumns   []int

	Colours             []color.RGBA
	ColourLights        []color.RGBA
	ColourColumnLine    color.RGBA
	ColourBarline       color.RGBA
	ColourJudgementLine color.RGBA
	ColourKeyWarning    color.RGBA
	ColourHold          color.RGBA
	ColourBreak         color.RGBA

	ReceptorImages     []string
	ReceptorImagesDown []string
	NoteImages         []string
	NoteImagesHead     []string
	NoteImagesBody     []string
	NoteImagesTail     []string

	StageLeft    string
	StageRight   string
	StageBottom  string
	StageHint    string
	StageLight   string
	LightingN    string
	LightingL    string
	WarningArrow string

	Hit0    string
	Hit50   string
	Hit100  string
	Hit200  string
	Hit300  string
	Hit300g string
}

// DefaultKeymode returns the osu defaults for a stage of n keys.
func DefaultKeymode(n int) Keymode {
	km := Keymode{
		Keys:                n,
		ComboBurstStyle:     ComboBurstRight,
		StageSeparation:     40,
		SeparateScore:       true,
		HitPosition:         458,
		LightPosition:       413,
		ColumnStart:         136,
		ColumnRight:         19,
		ColumnLineWidth:     filled(n+1, 2.0),
		ColumnWidth:         filled(n, 30.0),
		ColumnSpacing:       filled(n, 0.0),
		BarlineHeight:       1.2,
		LightFramePerSecond: 24,
		NoteBodyStyle:       1,
		Colours:             filled(n, defaultColour),
		ColourLights:        filled(n, defaultColourLight),
		ColourColumnLine:    color.White,
		ColourBarline:       color.White,
		ColourJudgementLine: color.White,
		ColourKeyWarning:    color.Black,
		ColourHold:          color.RGBA{R: 255, G: 191, B: 51, A: 255},
		ColourBreak:         color.RGBA{R: 255, A: 255},
		ReceptorImages:      make([]string, n),
		ReceptorImagesDown:  make([]string, n),
		NoteImages:          make([]string, n),
		NoteImagesHead:      make([]string, n),
		NoteImagesBody:      make([]string, n),
		NoteImagesTail:      make([]string, n),
	}
	return km
}

func filled[T any](n int, v T) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func setIndexed[T any](dst []T, i int, v T) {
	if i < len(dst) {
		dst[i] = v
	}
}

func growSet[T any](dst []T, i int, v T) []T {
	for len(dst) <= i {
		var zero T
		dst = append(dst, zero)
	}
	dst[i] = v
	return dst
}

func parseKeymode(sec *ini.Section) (Keymode, bool, error) {
	if !sec.HasKey("Keys") {
		return Keymode{}, false, nil
	}
	n, err := parseInt("Mania", "Keys", strings.TrimSpace(sec.Key("Keys").String()))
	if err != nil {
		return Keymode{}, false, err
	}
	if n <= 0 || n > MaxKeys {
		return Keymode{}, false, skinerr.Wrap(skinerr.ErrParse, "skin.ini", "Mania", fmt.Sprintf("Keys: %d out of range", n), nil)
	}
	km := DefaultKeymode(n)
	for _, k := range sec.Keys() {
		if err := km.apply(k.Name(), strings.TrimSpace(k.String())); err != nil {
			return Keymode{}, false, err
		}
	}
	return km, true, nil
}

func parseColour(v string, fallback color.RGBA) color.RGBA {
	c, err := color.ParseList(v)
	if err != nil {
		return fallback
	}
	return c
}

func (km *Keymode) apply(key, v string) error {
	var err error
	switch strings.ToLower(key) {
	case "keys":
	case "keysundernotes":
		km.KeysUnderNotes = parseBool(v)
	case "judgementline":
		km.JudgementLine = parseBool(v)
	case "upsidedown":
		km.UpsideDown = parseBool(v)
	case "specialstyle":
		km.SpecialStyle = parseIntOr(v, 0)
	case "comboburststyle":
		switch strings.ToLower(v) {
		case "left":
			km.ComboBurstStyle = ComboBurstLeft
		case "right":
			km.ComboBurstStyle = ComboBurstRight
		case "both":
			km.ComboBurstStyle = ComboBurstBoth
		default:
			km.ComboBurstStyle = parseIntOr(v, ComboBurstRight)
		}
	case "splitstages":
		b := parseBool(v)
		km.SplitStages = &b
	case "stageseparation":
		km.StageSeparation = parseFloatOr(v, 40)
	case "separatescore":
		km.SeparateScore = parseBool(v)
	case "hitposition":
		km.HitPosition, err = parseInt("Mania", key, v)
	case "lightposition":
		km.LightPosition = parseIntOr(v, 413)
	case "scoreposition":
		var n int
		if n, err = parseInt("Mania", key, v); err == nil {
			km.ScorePosition = &n
		}
	case "comboposition":
		var n int
		if n, err = parseInt("Mania", key, v); err == nil {
			km.ComboPosition = &n
		}
	case "columnstart":
		km.ColumnStart, err = parseFloat("Mania", key, v)
	case "columnright":
		km.ColumnRight, err = parseFloat("Mania", key, v)
	case "columnlinewidth":
		km.ColumnLineWidth = parseFloatList(v)
	case "columnwidth":
		km.ColumnWidth = fitFloats(parseFloatList(v), km.Keys, 30)
	case "columnspacing":
		km.ColumnSpacing = fitFloats(parseFloatList(v), km.Keys, 0)
	case "barlineheight":
		km.BarlineHeight = parseFloatOr(v, 1.2)
	case "lightingnwidth":
		km.LightingNWidth = parseFloatList(v)
	case "lightinglwidth":
		km.LightingLWidth = parseFloatList(v)
	case "widthfornoteheightscale":
		var f float64
		if f, err = parseFloat("Mania", key, v); err == nil {
			km.WidthForNoteHeightScale = &f
		}
	case "lightframepersecond":
		km.LightFramePerSecond = parseIntOr(v, 24)
	case "keyflipwhenupsidedown":
		km.KeyFlipWhenUpsideDown = parseBool(v)
	case "noteflipwhenupsidedown":
		km.NoteFlipWhenUpsideDown = parseBool(v)
	case "notebodystyle":
		km.NoteBodyStyle = parseIntOr(v, 1)
	case "colourcolumnline":
		km.ColourColumnLine = parseColour(v, km.ColourColumnLine)
	case "colourbarline":
		km.ColourBarline = parseColour(v, km.ColourBarline)
	case "colourjudgementline":
		km.ColourJudgementLine = parseColour(v, km.ColourJudgementLine)
	case "colourkeywarning":
		km.ColourKeyWarning = parseColour(v, km.ColourKeyWarning)
	case "colourhold":
		km.ColourHold = parseColour(v, km.ColourHold)
	case "colourbreak":
		km.ColourBreak = parseColour(v, km.ColourBreak)
	case "stageleft":
		km.StageLeft = ToUnixPath(v)
	case "stageright":
		km.StageRight = ToUnixPath(v)
	case "stagebottom":
		km.StageBottom = ToUnixPath(v)
	case "stagehint":
		km.StageHint = ToUnixPath(v)
	case "stagelight":
		km.StageLight = ToUnixPath(v)
	case "lightingn":
		km.LightingN = ToUnixPath(v)
	case "lightingl":
		km.LightingL = ToUnixPath(v)
	case "warningarrow":
		km.WarningArrow = ToUnixPath(v)
	case "hit0":
		km.Hit0 = ToUnixPath(v)
	case "hit50":
		km.Hit50 = ToUnixPath(v)
	case "hit100":
		km.Hit100 = ToUnixPath(v)
	case "hit200":
		km.Hit200 = ToUnixPath(v)
	case "hit300":
		km.Hit300 = ToUnixPath(v)
	case "hit300g":
		km.Hit300g = ToUnixPath(v)
	default:
		km.applyIndexed(key, v)
	}
	return err
}

func (km *Keymode) applyIndexed(key, v string) {
	if i, ok := indexOf(key, "KeyImage", "D"); ok {
		setIndexed(km.ReceptorImagesDown, i, ToUnixPath(v))
		return
	}
	if i, ok := indexOf(key, "KeyImage", ""); ok {
		setIndexed(km.ReceptorImages, i, ToUnixPath(v))
		return
	}
	for _, slot := range []struct {
		suffix string
		dst    []string
	}{{"H", km.NoteImagesHead}, {"L", km.NoteImagesBody}, {"T", km.NoteImagesTail}, {"", km.NoteImages}} {
		if i, ok := indexOf(key, "NoteImage", slot.suffix); ok {
			setIndexed(slot.dst, i, ToUnixPath(v))
			return
		}
	}
	if i, ok := indexOf(key, "ColourLight", ""); ok && i > 0 {
		if c, err := color.ParseList(v); err == nil {
			setIndexed(km.ColourLights, i-1, c)
		}
		return
	}
	if i, ok := indexOf(key, "Colour", ""); ok && i > 0 {
		if c, err := color.ParseList(v); err == nil {
			setIndexed(km.Colours, i-1, c)
		}
		return
	}
	if i, ok := indexOf(key, "KeyFlipWhenUpsideDown", "D"); ok {
		km.KeyFlipDownColumns = growSet(km.KeyFlipDownColumns, i, parseBool(v))
		return
	}
	if i, ok := indexOf(key, "KeyFlipWhenUpsideDown", ""); ok {
		km.KeyFlipColumns = growSet(km.KeyFlipColumns, i, parseBool(v))
		return
	}
	for _, slot := range []struct {
		suffix string
		dst    *[]bool
	}{{"H", &km.NoteFlipHeadColumns}, {"L", &km.NoteFlipBodyColumns}, {"T", &km.NoteFlipTailColumns}, {"", &km.NoteFlipColumns}} {
		if i, ok := indexOf(key, "NoteFlipWhenUpsideDown", slot.suffix); ok {
			*slot.dst = growSet(*slot.dst, i, parseBool(v))
			return
		}
	}
	if i, ok := indexOf(key, "NoteBodyStyle", ""); ok {
		if n, err := strconv.Atoi(v); err == nil {
			km.NoteBodyStyleColumns = growSet(km.NoteBodyStyleColumns, i, n)
		}
	}
}

// fitFloats pads or truncates vs to n entries.
func fitFloats(vs []float64, n int, pad float64) []float64 {
	out := filled(n, pad)
	copy(out, vs)
	return out
}

func (km Keymode) write(w *writer) {
	def := DefaultKeymode(km.Keys)
	n := km.Keys

	w.kv("Keys", strconv.Itoa(n))
	w.b.WriteByte('\n')

	w.section("Toggles", n, func(s *writer) {
		s.kv("KeysUnderNotes", formatBool(km.KeysUnderNotes))
		s.kvIf(km.JudgementLine != def.JudgementLine, "JudgementLine", formatBool(km.JudgementLine))
		s.kvIf(km.UpsideDown != def.UpsideDown, "UpsideDown", formatBool(km.UpsideDown))
		s.kvIf(km.SeparateScore != def.SeparateScore, "SeparateScore", formatBool(km.SeparateScore))
		if km.SplitStages != nil {
			s.kv("SplitStages", formatBool(*km.SplitStages))
		}
		s.kvIf(km.KeyFlipWhenUpsideDown != def.KeyFlipWhenUpsideDown, "KeyFlipWhenUpsideDown", formatBool(km.KeyFlipWhenUpsideDown))
		s.kvIf(km.NoteFlipWhenUpsideDown != def.NoteFlipWhenUpsideDown, "NoteFlipWhenUpsideDown", formatBool(km.NoteFlipWhenUpsideDown))
	})

	w.section("Position", n, func(s *writer) {
		s.kv("HitPosition", strconv.Itoa(km.HitPosition))
		s.kvIf(km.LightPosition != def.LightPosition, "LightPosition", strconv.Itoa(km.LightPosition))
		if km.ScorePosition != nil {
			s.kv("ScorePosition", strconv.Itoa(*km.ScorePosition))
		}
		if km.ComboPosition != nil {
			s.kv("ComboPosition", strconv.Itoa(*km.ComboPosition))
		}
		s.kvIf(km.BarlineHeight != def.BarlineHeight, "BarlineHeight", formatFloat(km.BarlineHeight))
	})

	w.section("Column", n, func(s *writer) {
		s.kvIf(km.ColumnStart != def.ColumnStart, "ColumnStart", formatFloat(km.ColumnStart))
		s.kvIf(km.ColumnRight != def.ColumnRight, "ColumnRight", formatFloat(km.ColumnRight))
		if km.WidthForNoteHeightScale != nil {
			s.kv("WidthForNoteHeightScale", formatFloat(*km.WidthForNoteHeightScale))
		}
		s.kvIf(!floatsEqual(km.ColumnLineWidth, def.ColumnLineWidth), "ColumnLineWidth", formatFloatList(km.ColumnLineWidth))
		s.kvIf(!floatsEqual(km.ColumnWidth, def.ColumnWidth), "ColumnWidth", formatFloatList(km.ColumnWidth))
		s.kvIf(!floatsEqual(km.ColumnSpacing, def.ColumnSpacing), "ColumnSpacing", formatFloatList(km.ColumnSpacing))
	})

	w.section("Stage", n, func(s *writer) {
		s.kvIf(km.StageSeparation != def.StageSeparation, "StageSeparation", formatFloat(km.StageSeparation))
		s.kvIf(true, "StageLeft", ToWindowsPath(km.StageLeft))
		s.kvIf(true, "StageRight", ToWindowsPath(km.StageRight))
		s.kvIf(true, "StageBottom", ToWindowsPath(km.StageBottom))
		s.kvIf(true, "StageHint", ToWindowsPath(km.StageHint))
		s.kvIf(true, "StageLight", ToWindowsPath(km.StageLight))
	})

	w.section("Style", n, func(s *writer) {
		s.kvIf(km.NoteBodyStyle != def.NoteBodyStyle, "NoteBodyStyle", strconv.Itoa(km.NoteBodyStyle))
		s.kvIf(km.SpecialStyle != def.SpecialStyle, "SpecialStyle", strconv.Itoa(km.SpecialStyle))
		s.kvIf(km.ComboBurstStyle != def.ComboBurstStyle, "ComboBurstStyle", strconv.Itoa(km.ComboBurstStyle))
		for i, v := range km.NoteBodyStyleColumns {
			s.kv("NoteBodyStyle"+strconv.Itoa(i), strconv.Itoa(v))
		}
	})

	w.section("Lighting", n, func(s *writer) {
		s.kvIf(len(km.LightingNWidth) > 0, "LightingNWidth", formatFloatList(km.LightingNWidth))
		s.kvIf(len(km.LightingLWidth) > 0, "LightingLWidth", formatFloatList(km.LightingLWidth))
		s.kvIf(true, "LightingN", ToWindowsPath(km.LightingN))
		s.kvIf(true, "LightingL", ToWindowsPath(km.LightingL))
		s.kvIf(km.LightFramePerSecond != def.LightFramePerSecond, "LightFramePerSecond", strconv.Itoa(km.LightFramePerSecond))
	})

	w.section("Colors", n, func(s *writer) {
		for i, c := range km.Colours {
			s.kvIf(c != defaultColour, "Colour"+strconv.Itoa(i+1), c.List())
		}
		for i, c := range km.ColourLights {
			s.kvIf(c != defaultColourLight, "ColourLight"+strconv.Itoa(i+1), c.List())
		}
		s.kvIf(km.ColourColumnLine != def.ColourColumnLine, "ColourColumnLine", km.ColourColumnLine.List())
		s.kvIf(km.ColourBarline != def.ColourBarline, "ColourBarline", km.ColourBarline.List())
		s.kvIf(km.ColourJudgementLine != def.ColourJudgementLine, "ColourJudgementLine", km.ColourJudgementLine.List())
		s.kvIf(km.ColourKeyWarning != def.ColourKeyWarning, "ColourKeyWarning", km.ColourKeyWarning.List())
		s.kvIf(km.ColourHold != def.ColourHold, "ColourHold", km.ColourHold.List())
		s.kvIf(km.ColourBreak != def.ColourBreak, "ColourBreak", km.ColourBreak.List())
	})

	w.section("Receptors", n, func(s *writer) {
		writeImages(s, "KeyImage", "", km.ReceptorImages)
		writeImages(s, "KeyImage", "D", km.ReceptorImagesDown)
	})

	w.section("Notes", n, func(s *writer) {
		writeImages(s, "NoteImage", "", km.NoteImages)
		writeImages(s, "NoteImage", "H", km.NoteImagesHead)
		writeImages(s, "NoteImage", "L", km.NoteImagesBody)
		writeImages(s, "NoteImage", "T", km.NoteImagesTail)
	})

	w.section("Judgements", n, func(s *writer) {
		s.kvIf(true, "Hit0", ToWindowsPath(km.Hit0))
		s.kvIf(true, "Hit50", ToWindowsPath(km.Hit50))
		s.kvIf(true, "Hit100", ToWindowsPath(km.Hit100))
		s.kvIf(true, "Hit200", ToWindowsPath(km.Hit200))
		s.kvIf(true, "Hit300", ToWindowsPath(km.Hit300))
		s.kvIf(true, "Hit300g", ToWindowsPath(km.Hit300g))
	})

	w.section("Flips", n, func(s *writer) {
		writeFlags(s, "KeyFlipWhenUpsideDown", "", km.KeyFlipColumns)
		writeFlags(s, "KeyFlipWhenUpsideDown", "D", km.KeyFlipDownColumns)
		writeFlags(s, "NoteFlipWhenUpsideDown", "", km.NoteFlipColumns)
		writeFlags(s, "NoteFlipWhenUpsideDown", "H", km.NoteFlipHeadColumns)
		writeFlags(s, "NoteFlipWhenUpsideDown", "L", km.NoteFlipBodyColumns)
		writeFlags(s, "NoteFlipWhenUpsideDown", "T", km.NoteFlipTailColumns)
	})

	w.section("Misc", n, func(s *writer) {
		s.kvIf(true, "WarningArrow", ToWindowsPath(km.WarningArrow))
	})
}

func writeImages(w *writer, prefix, suffix string, images []string) {
	for i, img := range images {
		w.kvIf(true, prefix+strconv.Itoa(i)+suffix, ToWindowsPath(img))
	}
}

func writeFlags(w *writer, prefix, suffix string, flags []bool) {
	for i, f := range flags {
		w.kv(prefix+strconv.Itoa(i)+suffix, formatBool(f))
	}
}
