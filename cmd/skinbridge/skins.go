package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"skinbridge/internal/convert"
	"skinbridge/internal/skin/fluxis"
	"skinbridge/internal/skin/generic"
	"skinbridge/internal/skin/osu"
	"skinbridge/internal/skinio"
)

// loadedSkin holds whichever format-specific skin was imported from a
// directory. Exactly one of osu and fluxis is set.
type loadedSkin struct {
	dir    string
	format skinio.Format
	osu    *osu.Skin
	fluxis *fluxis.Skin
}

// loadSkin imports dir. An empty format is detected from the files present.
func loadSkin(ctx context.Context, dir string, format skinio.Format, logger *slog.Logger) (*loadedSkin, error) {
	if format == "" {
		detected, err := skinio.DetectFormat(dir)
		if err != nil {
			return nil, err
		}
		format = detected
	}
	loaded := &loadedSkin{dir: dir, format: format}
	switch format {
	case skinio.FormatOsu:
		skin, err := skinio.ImportOsu(ctx, dir, logger)
		if err != nil {
			return nil, err
		}
		loaded.osu = skin
	case skinio.FormatFluXis:
		skin, err := skinio.ImportFluXis(ctx, dir, logger)
		if err != nil {
			return nil, err
		}
		loaded.fluxis = skin
	default:
		return nil, fmt.Errorf("unsupported skin format %q", format)
	}
	return loaded, nil
}

func (l *loadedSkin) toGeneric(opts convert.Options) (*generic.Skin, error) {
	if l.osu != nil {
		return convert.OsuToGeneric(l.osu, opts)
	}
	return convert.FluXisToGeneric(l.fluxis, opts)
}

func parseFormatFlag(value string) (skinio.Format, error) {
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	return skinio.ParseFormat(value)
}
