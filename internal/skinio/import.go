package skinio

import (
	"context"
	"image"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"skinbridge/internal/logging"
	"skinbridge/internal/sample"
	"skinbridge/internal/skin/fluxis"
	"skinbridge/internal/skin/osu"
	"skinbridge/internal/skinerr"
	"skinbridge/internal/texture"
	"skinbridge/internal/textutil"
)

// ImportOsu reads an osu skin directory. Textures and samples are looked up
// for every path skin.ini and the osu defaults reference.
func ImportOsu(ctx context.Context, dir string, logger *slog.Logger) (*osu.Skin, error) {
	logger = logging.NewComponentLogger(logger, "osu-import")
	f := newFinder(dir)

	ini := osu.NewSkinIni()
	if p, ok := f.file(skinIniName); ok {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, skinerr.Wrap(skinerr.ErrParse, "skinio", "read skin.ini", p, err)
		}
		if ini, err = osu.ParseSkinIni(data); err != nil {
			return nil, err
		}
	} else {
		logging.WarnWithContext(logger, "skin.ini not found, using defaults", "missing_definition",
			logging.String("dir", dir))
	}

	skin := osu.NewSkin(ini)
	var textures, samples int
	for _, key := range ini.TexturePaths() {
		if p, ok := f.find(key, texture.Extensions); ok {
			data, err := os.ReadFile(p)
			if err != nil {
				return nil, skinerr.Wrap(skinerr.ErrDecode, "skinio", "read texture", p, err)
			}
			skin.Textures.InsertBytes(key, data)
			textures++
		}
	}
	for _, key := range ini.SamplePaths() {
		if p, ok := f.find(key, sample.Extensions); ok {
			data, err := os.ReadFile(p)
			if err != nil {
				return nil, skinerr.Wrap(skinerr.ErrDecode, "skinio", "read sample", p, err)
			}
			skin.Samples.InsertBytes(key, data)
			samples++
		}
	}
	dropped, err := decodeTextures(ctx, skin.Textures, logger)
	if err != nil {
		return nil, skinerr.Wrap(skinerr.ErrDecode, "skinio", "decode textures", dir, err)
	}
	textures -= dropped
	logger.Info("osu skin imported",
		logging.Format("osu"),
		logging.String("name", ini.General.Name),
		logging.Int("keymodes", len(ini.Keymodes)),
		logging.Int("textures", textures),
		logging.Int("samples", samples),
	)
	return skin, nil
}

// ImportFluXis reads a fluXis skin directory. Every image below dir is
// imported under its relative path; samples are looked up by their fixed
// names with any audio extension.
func ImportFluXis(ctx context.Context, dir string, logger *slog.Logger) (*fluxis.Skin, error) {
	logger = logging.NewComponentLogger(logger, "fluxis-import")
	f := newFinder(dir)

	p, ok := f.file(skinJSONName)
	if !ok {
		return nil, skinerr.Wrap(skinerr.ErrMissingAsset, "skinio", "read skin.json", dir, nil)
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, skinerr.Wrap(skinerr.ErrParse, "skinio", "read skin.json", p, err)
	}
	doc, err := fluxis.ParseSkinJSON(data)
	if err != nil {
		return nil, err
	}

	var layout *fluxis.Layout
	if p, ok := f.file(layoutJSONName); ok {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, skinerr.Wrap(skinerr.ErrParse, "skinio", "read layout.json", p, err)
		}
		if layout, err = fluxis.ParseLayout(data); err != nil {
			return nil, err
		}
	}

	skin := fluxis.NewSkin(doc, layout)
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(p))
		if !slices.Contains(texture.Extensions, ext) {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		skin.Textures.InsertBytes(textutil.NormalizeKey(filepath.ToSlash(rel), texture.Extensions...), data)
		return nil
	})
	if err != nil {
		return nil, skinerr.Wrap(skinerr.ErrDecode, "skinio", "read textures", dir, err)
	}

	var samples int
	for _, key := range doc.SamplePaths() {
		if p, ok := f.find(key, sample.Extensions); ok {
			data, err := os.ReadFile(p)
			if err != nil {
				return nil, skinerr.Wrap(skinerr.ErrDecode, "skinio", "read sample", p, err)
			}
			skin.Samples.InsertBytes(key, data)
			samples++
		}
	}
	if _, err := decodeTextures(ctx, skin.Textures, logger); err != nil {
		return nil, skinerr.Wrap(skinerr.ErrDecode, "skinio", "decode textures", dir, err)
	}
	logger.Info("fluxis skin imported",
		logging.Format("fluxis"),
		logging.String("name", doc.Info.Name),
		logging.Int("textures", skin.Textures.Len()),
		logging.Int("samples", samples),
	)
	return skin, nil
}

// decodeTextures decodes every texture in parallel. An entry that fails to
// decode is logged and removed so its slots resolve through the fallback
// chain; it returns how many were removed.
func decodeTextures(ctx context.Context, textures *texture.Store, logger *slog.Logger) (int, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	var mu sync.Mutex
	var bad []string
	for _, key := range textures.Keys() {
		h, ok := textures.Lookup(key)
		if !ok {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			err := textures.View(h, func(*image.NRGBA) error { return nil })
			if err == nil {
				return nil
			}
			if !skinerr.IsRecoverable(err) {
				return err
			}
			logging.WarnWithContext(logger, "texture could not be decoded, skipping", "texture_decode_failed",
				logging.Asset(key), logging.Error(err))
			mu.Lock()
			bad = append(bad, key)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	for _, key := range bad {
		textures.Remove(key)
	}
	return len(bad), nil
}
