// Package generic defines the format-neutral skin that every converter reads
// from or writes to.
//
// Element slots hold store handles. The textures and samples themselves live
// in the skin's stores, so converters that share an image between slots share
// the handle, and a transform applied through one slot is visible through all
// of them.
package generic

import (
	"fmt"
	"sort"

	"skinbridge/internal/alignment"
	"skinbridge/internal/sample"
	"skinbridge/internal/skinerr"
	"skinbridge/internal/store"
	"skinbridge/internal/texture"
)

// Skin is the intermediate representation.
type Skin struct {
	Resolution alignment.Vec2
	Metadata   Metadata
	Sounds     Sounds
	Gameplay   Gameplay
	Keymodes   []Keymode

	Textures *texture.Store
	Samples  *sample.Store
}

// New returns an empty skin with default metadata and fresh stores.
func New() *Skin {
	return &Skin{
		Resolution: alignment.Vec2{X: 1920, Y: 1080},
		Metadata:   DefaultMetadata(),
		Gameplay:   Gameplay{HUD: DefaultHUD()},
		Textures:   texture.NewStore(),
		Samples:    sample.NewStore(),
	}
}

// Keymode returns the keymode with n keys.
func (s *Skin) Keymode(n int) (*Keymode, bool) {
	for i := range s.Keymodes {
		if s.Keymodes[i].KeyCount == n {
			return &s.Keymodes[i], true
		}
	}
	return nil, false
}

// PrimaryKeymode returns the 4-key keymode, falling back to the first one.
// HUD and stage elements shared across keymodes are read from it.
func (s *Skin) PrimaryKeymode() (*Keymode, bool) {
	if km, ok := s.Keymode(4); ok {
		return km, true
	}
	if len(s.Keymodes) == 0 {
		return nil, false
	}
	return &s.Keymodes[0], true
}

// SortKeymodes orders keymodes by key count.
func (s *Skin) SortKeymodes() {
	sort.SliceStable(s.Keymodes, func(i, j int) bool {
		return s.Keymodes[i].KeyCount < s.Keymodes[j].KeyCount
	})
}

// Validate checks every keymode.
func (s *Skin) Validate() error {
	seen := make(map[int]bool, len(s.Keymodes))
	for i := range s.Keymodes {
		km := &s.Keymodes[i]
		if seen[km.KeyCount] {
			return skinerr.Wrap(skinerr.ErrValidation, "skin", "validate", fmt.Sprintf("duplicate %dk keymode", km.KeyCount), nil)
		}
		seen[km.KeyCount] = true
		if err := km.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// TextureKey returns the store key behind h, or "" for the zero handle.
func (s *Skin) TextureKey(h store.Handle) string {
	if !h.Valid() {
		return ""
	}
	key, _ := s.Textures.Key(h)
	return key
}

// Metadata describes the skin.
type Metadata struct {
	Name         string
	Creator      string
	Version      string
	CenterCursor bool
}

func DefaultMetadata() Metadata {
	return Metadata{Name: "Unknown", Creator: "Unknown", Version: "latest", CenterCursor: true}
}

// Sounds holds sample-store keys. An empty key means no sound.
type Sounds struct {
	UI       UISounds
	Gameplay GameplaySounds
	Mania    ManiaSounds
}

type UISounds struct {
	MenuBackClick string
	UIClick       string
	UISelect      string
	UIHover       string
}

type GameplaySounds struct {
	Miss    string
	Fail    string
	Restart string
}

type ManiaSounds struct {
	Hit string
}

// SoundSlot names one sound of the intermediate skin.
type SoundSlot int

const (
	SoundMenuBackClick SoundSlot = iota
	SoundUIClick
	SoundUISelect
	SoundUIHover
	SoundMiss
	SoundFail
	SoundRestart
	SoundHit
)

// SoundSlots lists every slot in declaration order.
var SoundSlots = []SoundSlot{
	SoundMenuBackClick, SoundUIClick, SoundUISelect, SoundUIHover,
	SoundMiss, SoundFail, SoundRestart, SoundHit,
}

func (s SoundSlot) String() string {
	switch s {
	case SoundMenuBackClick:
		return "menu-back-click"
	case SoundUIClick:
		return "ui-click"
	case SoundUISelect:
		return "ui-select"
	case SoundUIHover:
		return "ui-hover"
	case SoundMiss:
		return "miss"
	case SoundFail:
		return "fail"
	case SoundRestart:
		return "restart"
	case SoundHit:
		return "hit"
	default:
		return fmt.Sprintf("sound(%d)", int(s))
	}
}

// Slot returns a pointer to the key stored for slot.
func (s *Sounds) Slot(slot SoundSlot) *string {
	switch slot {
	case SoundMenuBackClick:
		return &s.UI.MenuBackClick
	case SoundUIClick:
		return &s.UI.UIClick
	case SoundUISelect:
		return &s.UI.UISelect
	case SoundUIHover:
		return &s.UI.UIHover
	case SoundMiss:
		return &s.Gameplay.Miss
	case SoundFail:
		return &s.Gameplay.Fail
	case SoundRestart:
		return &s.Gameplay.Restart
	case SoundHit:
		return &s.Mania.Hit
	}
	return nil
}

// Gameplay groups the elements that do not belong to a keymode.
type Gameplay struct {
	HealthBar  HealthBar
	Stage      Stage
	Judgements Judgements
	HUD        HUD
}

type HealthBar struct {
	Fill       store.Handle
	Background store.Handle
}

type Stage struct {
	BorderLeft  store.Handle
	BorderRight store.Handle
	Hitline     store.Handle
	Background  store.Handle
}

// Judgements holds one texture per hit grade, best first.
type Judgements struct {
	Flawless store.Handle
	Perfect  store.Handle
	Great    store.Handle
	Alright  store.Handle
	Okay     store.Handle
	Miss     store.Handle
}

// Grades returns pointers to every judgement slot, best first.
func (j *Judgements) Grades() []*store.Handle {
	return []*store.Handle{&j.Flawless, &j.Perfect, &j.Great, &j.Alright, &j.Okay, &j.Miss}
}
