package skinio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/gofrs/flock"
	"golang.org/x/sync/errgroup"

	"skinbridge/internal/fileutil"
	"skinbridge/internal/logging"
	"skinbridge/internal/sample"
	"skinbridge/internal/skin/fluxis"
	"skinbridge/internal/skin/osu"
	"skinbridge/internal/skinerr"
	"skinbridge/internal/texture"
	"skinbridge/internal/textutil"
)

// LockFileName is created in the output directory while an export runs.
const LockFileName = ".skinbridge.lock"

// ErrOutputLocked reports a concurrent export into the same directory.
var ErrOutputLocked = errors.New("output directory is locked by another export")

// ExportOptions controls where and how skins are written.
type ExportOptions struct {
	Logger *slog.Logger
	// Lock guards outDir with LockFileName for the duration of the export.
	Lock bool
}

// ExportOsu writes skin to <outDir>/<name>/ and returns that directory.
func ExportOsu(ctx context.Context, skin *osu.Skin, outDir string, opts ExportOptions) (string, error) {
	logger := logging.NewComponentLogger(opts.Logger, "osu-export")
	return export(ctx, outDir, skin.Ini.General.Name, opts, logger, func(target string) error {
		if err := fileutil.WriteFileAtomic(filepath.Join(target, skinIniName), []byte(skin.Ini.String()), 0o644); err != nil {
			return skinerr.Wrap(skinerr.ErrEncode, "skinio", "write skin.ini", target, err)
		}
		return writeAssets(ctx, target, skin.Textures, skin.Samples, logger)
	})
}

// ExportFluXis writes skin.json, layout.json and the assets of skin to
// <outDir>/<name>/ and returns that directory.
func ExportFluXis(ctx context.Context, skin *fluxis.Skin, outDir string, opts ExportOptions) (string, error) {
	logger := logging.NewComponentLogger(opts.Logger, "fluxis-export")
	return export(ctx, outDir, skin.JSON.Info.Name, opts, logger, func(target string) error {
		doc, err := skin.JSON.Marshal()
		if err != nil {
			return err
		}
		if err := fileutil.WriteFileAtomic(filepath.Join(target, skinJSONName), doc, 0o644); err != nil {
			return skinerr.Wrap(skinerr.ErrEncode, "skinio", "write skin.json", target, err)
		}
		if skin.Layout != nil {
			layout, err := skin.Layout.Marshal()
			if err != nil {
				return err
			}
			if err := fileutil.WriteFileAtomic(filepath.Join(target, layoutJSONName), layout, 0o644); err != nil {
				return skinerr.Wrap(skinerr.ErrEncode, "skinio", "write layout.json", target, err)
			}
		}
		return writeAssets(ctx, target, skin.Textures, skin.Samples, logger)
	})
}

func export(ctx context.Context, outDir, name string, opts ExportOptions, logger *slog.Logger, write func(target string) error) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	if opts.Lock {
		lock := flock.New(filepath.Join(outDir, LockFileName))
		ok, err := lock.TryLock()
		if err != nil {
			return "", fmt.Errorf("acquire output lock: %w", err)
		}
		if !ok {
			return "", ErrOutputLocked
		}
		defer func() {
			if err := lock.Unlock(); err != nil {
				logger.Warn("failed to release output lock", logging.Error(err))
			}
		}()
	}

	dirName := textutil.SanitizeFileName(name)
	if dirName == "" {
		dirName = "skin"
	}
	target := filepath.Join(outDir, dirName)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := write(target); err != nil {
		return "", err
	}
	logger.Info("skin exported", logging.String("path", target))
	return target, nil
}

// assetPath maps a store key below target, rejecting keys that would escape
// it.
func assetPath(target, key, ext string) (string, bool) {
	rel := filepath.FromSlash(key) + ext
	if !filepath.IsLocal(rel) {
		return "", false
	}
	return filepath.Join(target, rel), true
}

func writeAssets(ctx context.Context, target string, textures *texture.Store, samples *sample.Store, logger *slog.Logger) error {
	if err := textures.LoadAll(ctx); err != nil {
		return skinerr.Wrap(skinerr.ErrDecode, "skinio", "decode textures", target, err)
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, key := range textures.Keys() {
		h, ok := textures.Lookup(key)
		if !ok {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, ok := assetPath(target, key, ".png")
			if !ok {
				logging.WarnWithContext(logger, "texture key escapes the skin directory", "unsafe_key", logging.Asset(key))
				return nil
			}
			data, err := textures.Encoded(h)
			if err != nil {
				return skinerr.Wrap(skinerr.ErrEncode, "skinio", "encode texture", key, err)
			}
			return writeAsset(p, data, logger)
		})
	}
	for _, key := range samples.Keys() {
		h, ok := samples.Lookup(key)
		if !ok {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := samples.Encoded(h)
			if err != nil {
				return skinerr.Wrap(skinerr.ErrEncode, "skinio", "encode sample", key, err)
			}
			p, ok := assetPath(target, key, sample.Extension(data))
			if !ok {
				logging.WarnWithContext(logger, "sample key escapes the skin directory", "unsafe_key", logging.Asset(key))
				return nil
			}
			return writeAsset(p, data, logger)
		})
	}
	return g.Wait()
}

func writeAsset(path string, data []byte, logger *slog.Logger) error {
	wrote, err := fileutil.WriteFileIfChanged(path, data, 0o644)
	if err != nil {
		return err
	}
	if !wrote {
		logger.Debug("asset unchanged", logging.String("path", path))
	}
	return nil
}
