package convert

import (
	"log/slog"

	"skinbridge/internal/logging"
	"skinbridge/internal/sample"
	"skinbridge/internal/store"
	"skinbridge/internal/texture"
	"skinbridge/internal/textutil"
)

// resolver maps texture references to handles, ignoring case and unicode
// normalisation differences between references and stored keys.
type resolver struct {
	textures *texture.Store
	index    textutil.FoldedIndex
	blank    store.Handle
	logger   *slog.Logger
}

func newResolver(textures *texture.Store, logger *slog.Logger) *resolver {
	blank := texture.EnsureBlank(textures)
	return &resolver{
		textures: textures,
		index:    textutil.NewFoldedIndex(textures.Keys()),
		blank:    blank,
		logger:   logger,
	}
}

func (r *resolver) lookup(ref string) (store.Handle, bool) {
	if ref == "" {
		return 0, false
	}
	if h, ok := r.textures.Lookup(ref); ok {
		return h, true
	}
	if key, ok := r.index.Lookup(ref); ok {
		return r.textures.Lookup(key)
	}
	return 0, false
}

// resolve returns the first reference in chain that is present, or blank.
// An explicit reference (the first one) that resolves to nothing is logged.
func (r *resolver) resolve(chain ...string) store.Handle {
	for _, ref := range chain {
		if h, ok := r.lookup(ref); ok {
			return h
		}
	}
	if len(chain) > 0 && chain[0] != "" {
		logging.WarnWithContext(r.logger, "texture not found, using blank", "missing_texture",
			logging.Asset(chain[0]))
	}
	return r.blank
}

// fallback resolves a default key without logging when it is absent.
func (r *resolver) fallback(key string) store.Handle {
	if h, ok := r.lookup(key); ok {
		return h
	}
	return r.blank
}

// key returns the store key of h, or "" for the zero handle.
func (r *resolver) key(h store.Handle) string {
	if !h.Valid() {
		return ""
	}
	k, _ := r.textures.Key(h)
	return k
}

// keyNoBlank is key with the blank placeholder mapped to "".
func (r *resolver) keyNoBlank(h store.Handle) string {
	k := r.key(h)
	if k == texture.BlankKey {
		return ""
	}
	return k
}

// copyAs stores a copy of the texture behind h under dst, replacing any
// previous dst entry. Blank and missing handles are skipped.
func (r *resolver) copyAs(h store.Handle, dst string) {
	src := r.keyNoBlank(h)
	if src == "" || src == dst {
		return
	}
	r.textures.Remove(dst)
	if _, err := r.textures.CopyHandle(h, dst); err != nil {
		r.logger.Warn("texture copy failed", logging.Asset(dst), logging.Error(err))
	}
}

func lookupSample(samples *sample.Store, ref string) (string, bool) {
	if ref == "" {
		return "", false
	}
	if samples.Contains(ref) {
		return ref, true
	}
	return textutil.NewFoldedIndex(samples.Keys()).Lookup(ref)
}

// copySample stores a copy of the sample src under dst.
func copySample(samples *sample.Store, src, dst string, logger *slog.Logger) {
	if src == "" || src == dst || !samples.Contains(src) {
		return
	}
	samples.Remove(dst)
	if _, err := samples.Copy(src, dst); err != nil {
		logger.Warn("sample copy failed", logging.Asset(dst), logging.Error(err))
	}
}

func at[T any](s []T, i int) T {
	var zero T
	if i < 0 || i >= len(s) {
		return zero
	}
	return s[i]
}

func fit(s []float64, n int) []float64 {
	out := make([]float64, n)
	copy(out, s)
	return out
}
