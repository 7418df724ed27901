package imageproc

import (
	"image"
	"sync"

	"skinbridge/internal/store"
	"skinbridge/internal/texture"
)

// TransformFunc rewrites a texture and returns an integer side result, such
// as a measured offset, that later calls for the same handle reuse.
type TransformFunc func(img *image.NRGBA) (*image.NRGBA, int, error)

// Processor runs transforms at most once per texture handle. The processed
// bit lives in the store, so two processors over one store still agree on
// which textures were already rewritten.
type Processor struct {
	textures *texture.Store

	mu      sync.Mutex
	results map[store.Handle]int
}

func NewProcessor(textures *texture.Store) *Processor {
	return &Processor{textures: textures, results: make(map[store.Handle]int)}
}

// Once applies fn to the texture behind h unless it was processed before, in
// which case the cached side result is returned. The zero handle and the
// blank placeholder are never touched.
func (p *Processor) Once(h store.Handle, fn TransformFunc) (int, error) {
	if !h.Valid() || p.isBlank(h) {
		return 0, nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if v, ok := p.results[h]; ok {
		return v, nil
	}
	if !p.textures.MarkProcessed(h) {
		return 0, nil
	}
	var result int
	err := p.textures.Update(h, func(img *image.NRGBA) (*image.NRGBA, error) {
		out, v, err := fn(img)
		if err != nil {
			return nil, err
		}
		result = v
		return out, nil
	})
	if err != nil {
		p.results[h] = 0
		return 0, err
	}
	p.results[h] = result
	return result, nil
}

// Result returns the cached side result for h.
func (p *Processor) Result(h store.Handle) (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.results[h]
	return v, ok
}

func (p *Processor) isBlank(h store.Handle) bool {
	key, ok := p.textures.Key(h)
	return ok && key == texture.BlankKey
}

// Transform adapts a plain image rewrite into a TransformFunc.
func Transform(fn func(*image.NRGBA) *image.NRGBA) TransformFunc {
	return func(img *image.NRGBA) (*image.NRGBA, int, error) {
		return fn(img), 0, nil
	}
}
