// Package skinio reads skin directories into memory and writes converted
// skins back to disk.
package skinio

import (
	"fmt"
	"os"
	"strings"

	"skinbridge/internal/skinerr"
	"skinbridge/internal/textutil"
)

// Format names a skin directory layout.
type Format string

const (
	FormatOsu    Format = "osu"
	FormatFluXis Format = "fluxis"
)

const (
	skinIniName    = "skin.ini"
	skinJSONName   = "skin.json"
	layoutJSONName = "layout.json"
)

// ParseFormat accepts a format name in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "osu", "osu!":
		return FormatOsu, nil
	case "fluxis":
		return FormatFluXis, nil
	}
	return "", skinerr.Wrap(skinerr.ErrValidation, "skinio", "format", fmt.Sprintf("unknown skin format %q", s), nil)
}

// DetectFormat reports the format of dir from its definition file. A
// directory holding both is treated as fluXis.
func DetectFormat(dir string) (Format, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read skin directory: %w", err)
	}
	var hasIni bool
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch {
		case textutil.KeyEqual(e.Name(), skinJSONName):
			return FormatFluXis, nil
		case textutil.KeyEqual(e.Name(), skinIniName):
			hasIni = true
		}
	}
	if hasIni {
		return FormatOsu, nil
	}
	return "", skinerr.Wrap(skinerr.ErrMissingAsset, "skinio", "detect", "no skin.ini or skin.json in "+dir, nil)
}
