package fluxis

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"

	"skinbridge/internal/skinerr"
)

// Gameplay component names used by the converters.
const (
	ComponentAccuracy          = "Accuracy"
	ComponentCombo             = "Combo"
	ComponentPerformanceRating = "PerformanceRating"
	ComponentKeysPerSecond     = "KeysPerSecond"
	ComponentHealth            = "Health"
	ComponentHitError          = "HitError"
	ComponentJudgement         = "Judgement"
	ComponentJudgementCounter  = "JudgementCounter"
	ComponentProgress          = "Progress"
)

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Component is one gameplay HUD element of layout.json. Anchor and Origin
// are packed alignment bytes.
type Component struct {
	Position          Position        `json:"Position"`
	Anchor            uint8           `json:"Anchor"`
	Origin            uint8           `json:"Origin"`
	Scale             float64         `json:"Scale"`
	AnchorToPlayfield bool            `json:"AnchorToPlayfield"`
	Settings          json.RawMessage `json:"Settings"`
}

// Layout is layout.json.
type Layout struct {
	Name     string               `json:"Name"`
	Author   string               `json:"Author"`
	Gameplay map[string]Component `json:"Gameplay"`
}

type attributeText struct {
	Type     int     `json:"type"`
	Text     *string `json:"text"`
	Size     float64 `json:"size"`
	MaxWidth float64 `json:"max-width"`
}

func settings(v any) json.RawMessage {
	if v == nil {
		return json.RawMessage("{}")
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage("{}")
	}
	return raw
}

func component(x, y float64, anchor, origin uint8, toPlayfield bool, s any) Component {
	return Component{
		Position:          Position{X: x, Y: y},
		Anchor:            anchor,
		Origin:            origin,
		Scale:             1,
		AnchorToPlayfield: toPlayfield,
		Settings:          settings(s),
	}
}

func text(v string) *string { return &v }

func defaultComponents() map[string]Component {
	return map[string]Component{
		ComponentAccuracy: component(0, 0, 18, 17, true, nil),
		"AttributeText#Title": component(20, -10, 12, 12, false,
			attributeText{Type: 0, Size: 32, MaxWidth: 512}),
		"AttributeText#Artist": component(20, -52, 12, 12, false,
			attributeText{Type: 1, Text: text("by {value}"), Size: 24, MaxWidth: 512}),
		"AttributeText#Difficulty": component(-20, -10, 36, 36, false,
			attributeText{Type: 2, Size: 32, MaxWidth: 512}),
		"AttributeText#Mapper": component(-20, -50, 36, 36, false,
			attributeText{Type: 3, Text: text("mapped by {value}"), Size: 24, MaxWidth: 512}),
		ComponentCombo: component(0, -32, 18, 18, true,
			map[string]bool{"scale-additive": true}),
		ComponentPerformanceRating: component(0, 15, 18, 18, false,
			map[string]bool{"suffix": true, "decimals": false}),
		ComponentKeysPerSecond: component(0, 105, 18, 18, false,
			map[string]bool{"suffix": true}),
		ComponentHealth:           component(20, -40, 36, 12, true, nil),
		ComponentHitError:         component(0, 50, 18, 17, true, nil),
		ComponentJudgement:        component(0, 150, 18, 18, true, nil),
		ComponentJudgementCounter: component(-20, 0, 34, 34, false, nil),
		ComponentProgress:         component(0, 0, 9, 9, false, nil),
	}
}

// DefaultComponent returns the stock settings for a named component.
func DefaultComponent(name string) (Component, bool) {
	c, ok := defaultComponents()[name]
	return c, ok
}

// NewLayout returns a layout with every default component.
func NewLayout(name, author string) *Layout {
	return &Layout{Name: name, Author: author, Gameplay: defaultComponents()}
}

func DefaultLayout() *Layout { return NewLayout("Layout", "Unknown") }

// Component returns the named component, falling back to its default.
func (l *Layout) Component(name string) (Component, bool) {
	if c, ok := l.Gameplay[name]; ok {
		return c, true
	}
	return DefaultComponent(name)
}

// Set stores c under name.
func (l *Layout) Set(name string, c Component) {
	if l.Gameplay == nil {
		l.Gameplay = make(map[string]Component)
	}
	if len(c.Settings) == 0 {
		c.Settings = settings(nil)
	}
	l.Gameplay[name] = c
}

// Names returns the component names sorted.
func (l *Layout) Names() []string {
	return slices.Sorted(maps.Keys(l.Gameplay))
}

func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&l); err != nil {
		return nil, skinerr.Wrap(skinerr.ErrParse, "layout.json", "parse", "", err)
	}
	if l.Gameplay == nil {
		l.Gameplay = make(map[string]Component)
	}
	for name, c := range l.Gameplay {
		if len(c.Settings) == 0 || string(c.Settings) == "null" {
			c.Settings = settings(nil)
			l.Gameplay[name] = c
		}
	}
	return &l, nil
}

func (l *Layout) Marshal() ([]byte, error) {
	out, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, skinerr.Wrap(skinerr.ErrEncode, "layout.json", "marshal", "", err)
	}
	return out, nil
}
