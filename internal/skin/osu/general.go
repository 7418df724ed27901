package osu

import (
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// General is the [General] section of skin.ini.
type General struct {
	Name                        string
	Author                      string
	Version                     string
	AnimationFramerate          int
	AllowSliderBallTint         bool
	ComboBurstRandom            bool
	CursorCentre                bool
	CursorExpand                bool
	CursorRotate                bool
	CursorTrailRotate           bool
	CustomComboBurstSounds      []int
	HitCircleOverlayAboveNumber bool
	LayeredHitSounds            bool
	SliderBallFlip              bool
	SpinnerFadePlayfield        bool
	SpinnerFrequencyModulate    bool
	SpinnerNoBlink              bool
}

func DefaultGeneral() General {
	return General{
		Name:                        "Unknown",
		Version:                     "latest",
		AnimationFramerate:          -1,
		CursorCentre:                true,
		CursorExpand:                true,
		CursorRotate:                true,
		CursorTrailRotate:           true,
		HitCircleOverlayAboveNumber: true,
		LayeredHitSounds:            true,
		SliderBallFlip:              true,
		SpinnerFrequencyModulate:    true,
	}
}

func parseGeneral(sec *ini.Section) (General, error) {
	g := DefaultGeneral()
	for _, k := range sec.Keys() {
		v := strings.TrimSpace(k.String())
		switch strings.ToLower(k.Name()) {
		case "name":
			g.Name = v
		case "author":
			g.Author = v
		case "version":
			g.Version = v
		case "animationframerate":
			n, err := parseInt("General", k.Name(), v)
			if err != nil {
				return g, err
			}
			g.AnimationFramerate = n
		case "allowsliderballtint":
			g.AllowSliderBallTint = parseBool(v)
		case "comboburstrandom":
			g.ComboBurstRandom = parseBool(v)
		case "cursorcentre":
			g.CursorCentre = parseBool(v)
		case "cursorexpand":
			g.CursorExpand = parseBool(v)
		case "cursorrotate":
			g.CursorRotate = parseBool(v)
		case "cursortrailrotate":
			g.CursorTrailRotate = parseBool(v)
		case "customcomboburstsounds":
			g.CustomComboBurstSounds = parseIntList(v)
		case "hitcircleoverlayabovenumber", "hitcircleoverlayabovenumer":
			g.HitCircleOverlayAboveNumber = parseBool(v)
		case "layeredhitsounds":
			g.LayeredHitSounds = parseBool(v)
		case "sliderballflip":
			g.SliderBallFlip = parseBool(v)
		case "spinnerfadeplayfield":
			g.SpinnerFadePlayfield = parseBool(v)
		case "spinnerfrequencymodulate":
			g.SpinnerFrequencyModulate = parseBool(v)
		case "spinnernoblink":
			g.SpinnerNoBlink = parseBool(v)
		}
	}
	return g, nil
}

func (g General) write(w *writer) {
	w.kv("Name", g.Name)
	w.kv("Author", g.Author)
	w.kv("Version", g.Version)
	w.kv("AnimationFramerate", strconv.Itoa(g.AnimationFramerate))
	w.kv("AllowSliderBallTint", formatBool(g.AllowSliderBallTint))
	w.kv("ComboBurstRandom", formatBool(g.ComboBurstRandom))
	w.kv("CursorCentre", formatBool(g.CursorCentre))
	w.kv("CursorExpand", formatBool(g.CursorExpand))
	w.kv("CursorRotate", formatBool(g.CursorRotate))
	w.kv("CursorTrailRotate", formatBool(g.CursorTrailRotate))
	if len(g.CustomComboBurstSounds) > 0 {
		w.kv("CustomComboBurstSounds", formatIntList(g.CustomComboBurstSounds))
	}
	w.kv("HitCircleOverlayAboveNumber", formatBool(g.HitCircleOverlayAboveNumber))
	w.kv("LayeredHitSounds", formatBool(g.LayeredHitSounds))
	w.kv("SliderBallFlip", formatBool(g.SliderBallFlip))
	w.kv("SpinnerFadePlayfield", formatBool(g.SpinnerFadePlayfield))
	w.kv("SpinnerFrequencyModulate", formatBool(g.SpinnerFrequencyModulate))
	w.kv("SpinnerNoBlink", formatBool(g.SpinnerNoBlink))
}
