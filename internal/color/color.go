// Package color parses and formats the two colour notations used by skins:
// "#RRGGBB[AA]" hex strings and "R,G,B[,A]" decimal lists.
package color

import (
	"encoding/json"
	"fmt"
	imgcolor "image/color"
	"strconv"
	"strings"

	"skinbridge/internal/skinerr"
)

// RGBA is a straight-alpha 8-bit colour.
type RGBA struct {
	R, G, B, A uint8
}

var (
	White = RGBA{255, 255, 255, 255}
	Black = RGBA{0, 0, 0, 255}
)

// ParseHex accepts 6 or 8 hex digits with an optional leading '#'. Alpha
// defaults to opaque.
func ParseHex(s string) (RGBA, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(digits) != 6 && len(digits) != 8 {
		return RGBA{}, skinerr.Wrap(skinerr.ErrParse, "color", "hex", fmt.Sprintf("expected 6 or 8 hex digits, got %q", s), nil)
	}
	var parts [4]uint8
	parts[3] = 255
	for i := 0; i < len(digits)/2; i++ {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGBA{}, skinerr.Wrap(skinerr.ErrParse, "color", "hex", fmt.Sprintf("invalid hex digit in %q", s), nil)
		}
		parts[i] = uint8(v)
	}
	return RGBA{parts[0], parts[1], parts[2], parts[3]}, nil
}

// MustHex is ParseHex for compile-time constants.
func MustHex(s string) RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats c in upper case, omitting alpha when opaque.
func (c RGBA) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// ParseList parses "R,G,B" or "R,G,B,A".
func ParseList(s string) (RGBA, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 && len(fields) != 4 {
		return RGBA{}, skinerr.Wrap(skinerr.ErrParse, "color", "list", fmt.Sprintf("expected 3 or 4 components, got %d", len(fields)), nil)
	}
	parts := [4]uint8{0, 0, 0, 255}
	for i, f := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(f), 10, 8)
		if err != nil {
			return RGBA{}, skinerr.Wrap(skinerr.ErrParse, "color", "list", fmt.Sprintf("invalid component %q", f), nil)
		}
		parts[i] = uint8(v)
	}
	return RGBA{parts[0], parts[1], parts[2], parts[3]}, nil
}

// List formats c as "R,G,B,A".
func (c RGBA) List() string {
	return fmt.Sprintf("%d,%d,%d,%d", c.R, c.G, c.B, c.A)
}

func (c RGBA) NRGBA() imgcolor.NRGBA {
	return imgcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (c RGBA) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Hex())
}

func (c *RGBA) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseHex(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
