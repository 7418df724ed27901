package color_test

import (
	"encoding/json"
	"errors"
	"testing"

	"skinbridge/internal/color"
	"skinbridge/internal/skinerr"
)

func TestParseHex(t *testing.T) {
	c, err := color.ParseHex("#00c3ff")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c != (color.RGBA{0, 0xC3, 0xFF, 255}) {
		t.Fatalf("got %+v", c)
	}
	c, err = color.ParseHex("11223344")
	if err != nil || c.A != 0x44 {
		t.Fatalf("alpha form: %+v %v", c, err)
	}
	for _, bad := range []string{"#123", "#GGHHII", "", "#1234567"} {
		if _, err := color.ParseHex(bad); !errors.Is(err, skinerr.ErrParse) {
			t.Errorf("ParseHex(%q) err = %v", bad, err)
		}
	}
}

func TestHexFormatting(t *testing.T) {
	if got := (color.RGBA{255, 85, 85, 255}).Hex(); got != "#FF5555" {
		t.Fatalf("opaque = %s", got)
	}
	if got := (color.RGBA{1, 2, 3, 4}).Hex(); got != "#01020304" {
		t.Fatalf("translucent = %s", got)
	}
}

func TestParseList(t *testing.T) {
	c, err := color.ParseList("255, 191, 51")
	if err != nil || c != (color.RGBA{255, 191, 51, 255}) {
		t.Fatalf("three parts: %+v %v", c, err)
	}
	if _, err := color.ParseList("1,2"); !errors.Is(err, skinerr.ErrParse) {
		t.Fatalf("expected parse error, got %v", err)
	}
	if _, err := color.ParseList("1,2,300,4"); err == nil {
		t.Fatal("out of range component accepted")
	}
	if got := c.List(); got != "255,191,51,255" {
		t.Fatalf("list = %s", got)
	}
}

func TestJSON(t *testing.T) {
	var v struct {
		Miss color.RGBA `json:"miss"`
	}
	if err := json.Unmarshal([]byte(`{"miss":"#FF5555"}`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"miss":"#FF5555"}` {
		t.Fatalf("json = %s", out)
	}
}
