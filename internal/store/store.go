// Package store keeps the assets of one skin in an arena addressed by Handle.
//
// Element slots throughout the converters hold a Handle rather than the asset
// itself, so many slots can alias one texture while the store remains the only
// owner of the payload. Each arena slot carries its own lock and a processed
// bit used by transform memoization.
package store

import (
	"context"
	"fmt"
	"path"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"skinbridge/internal/binary"
	"skinbridge/internal/skinerr"
)

// Handle identifies an arena slot. The zero Handle refers to nothing.
type Handle int

// Valid reports whether h may refer to an asset.
func (h Handle) Valid() bool { return h > 0 }

type slot[T any] struct {
	mu        sync.RWMutex
	key       string
	asset     *binary.Binary[T]
	processed bool
	removed   bool
}

// Store maps logical keys to arena slots.
type Store[T any] struct {
	mu    sync.RWMutex
	codec binary.Codec[T]
	slots []*slot[T]
	index map[string]Handle
}

func New[T any](codec binary.Codec[T]) *Store[T] {
	return &Store[T]{
		codec: codec,
		slots: []*slot[T]{nil},
		index: make(map[string]Handle),
	}
}

func (s *Store[T]) Codec() binary.Codec[T] { return s.codec }

// Insert stores asset under key. An existing key keeps its handle and has its
// payload replaced, so every slot aliasing it observes the new data.
func (s *Store[T]) Insert(key string, asset *binary.Binary[T]) Handle {
	if asset == nil {
		asset = binary.Empty(s.codec)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if h, ok := s.index[key]; ok {
		sl := s.slots[h]
		sl.mu.Lock()
		sl.asset = asset
		sl.processed = false
		sl.mu.Unlock()
		return h
	}
	return s.appendLocked(key, asset)
}

func (s *Store[T]) InsertBytes(key string, data []byte) Handle {
	return s.Insert(key, binary.FromBytes(s.codec, data))
}

func (s *Store[T]) InsertValue(key string, value T) Handle {
	return s.Insert(key, binary.FromValue(s.codec, value))
}

func (s *Store[T]) appendLocked(key string, asset *binary.Binary[T]) Handle {
	s.slots = append(s.slots, &slot[T]{key: key, asset: asset})
	h := Handle(len(s.slots) - 1)
	s.index[key] = h
	return h
}

func (s *Store[T]) Lookup(key string) (Handle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.index[key]
	return h, ok
}

func (s *Store[T]) Contains(key string) bool {
	_, ok := s.Lookup(key)
	return ok
}

// Key returns the logical key a handle is stored under.
func (s *Store[T]) Key(h Handle) (string, bool) {
	sl, err := s.slot(h)
	if err != nil {
		return "", false
	}
	sl.mu.RLock()
	defer sl.mu.RUnlock()
	return sl.key, true
}

// Remove drops key from the store. The arena slot is tombstoned so stale
// handles fail instead of resolving to a different asset.
func (s *Store[T]) Remove(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(key)
}

func (s *Store[T]) removeLocked(key string) bool {
	h, ok := s.index[key]
	if !ok {
		return false
	}
	delete(s.index, key)
	sl := s.slots[h]
	sl.mu.Lock()
	sl.removed = true
	sl.asset = nil
	sl.mu.Unlock()
	return true
}

// MakeUnique inserts asset under key, or under the first free
// "<stem>_<n><ext>" variant when key is taken. It never overwrites.
func (s *Store[T]) MakeUnique(key string, asset *binary.Binary[T]) (Handle, string) {
	if asset == nil {
		asset = binary.Empty(s.codec)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	actual := key
	if _, taken := s.index[actual]; taken {
		ext := path.Ext(key)
		stem := key[:len(key)-len(ext)]
		for n := 1; ; n++ {
			actual = fmt.Sprintf("%s_%d%s", stem, n, ext)
			if _, taken := s.index[actual]; !taken {
				break
			}
		}
	}
	return s.appendLocked(actual, asset), actual
}

// Copy clones the payload stored under src into a new entry dst. The two
// entries are independent afterwards.
func (s *Store[T]) Copy(src, dst string) (Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.index[dst]; exists {
		return 0, skinerr.Wrap(skinerr.ErrKeyCollision, "store", "copy", fmt.Sprintf("%s -> %s", src, dst), nil)
	}
	h, ok := s.index[src]
	if !ok {
		return 0, skinerr.Wrap(skinerr.ErrMissingAsset, "store", "copy", src, nil)
	}
	sl := s.slots[h]
	sl.mu.RLock()
	clone := sl.asset.Clone()
	sl.mu.RUnlock()
	return s.appendLocked(dst, clone), nil
}

// CopyHandle clones the payload behind h into dst.
func (s *Store[T]) CopyHandle(h Handle, dst string) (Handle, error) {
	key, ok := s.Key(h)
	if !ok {
		return 0, skinerr.Wrap(skinerr.ErrMissingAsset, "store", "copy", fmt.Sprintf("handle %d", h), nil)
	}
	if key == dst {
		return h, nil
	}
	return s.Copy(key, dst)
}

// Retain drops every entry whose key fails keep and returns the number of
// removed entries.
func (s *Store[T]) Retain(keep func(key string) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var drop []string
	for key := range s.index {
		if !keep(key) {
			drop = append(drop, key)
		}
	}
	for _, key := range drop {
		s.removeLocked(key)
	}
	return len(drop)
}

// Keys returns the live keys in lexical order.
func (s *Store[T]) Keys() []string {
	s.mu.RLock()
	keys := make([]string, 0, len(s.index))
	for key := range s.index {
		keys = append(keys, key)
	}
	s.mu.RUnlock()
	sort.Strings(keys)
	return keys
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.index)
}

func (s *Store[T]) slot(h Handle) (*slot[T], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !h.Valid() || int(h) >= len(s.slots) {
		return nil, skinerr.Wrap(skinerr.ErrMissingAsset, "store", "resolve", fmt.Sprintf("handle %d", h), nil)
	}
	sl := s.slots[h]
	if sl.removed {
		return nil, skinerr.Wrap(skinerr.ErrMissingAsset, "store", "resolve", sl.key, nil)
	}
	return sl, nil
}

// State reports the lifecycle state of the asset behind h.
func (s *Store[T]) State(h Handle) binary.State {
	sl, err := s.slot(h)
	if err != nil {
		return binary.StateEmpty
	}
	sl.mu.RLock()
	defer sl.mu.RUnlock()
	if sl.asset == nil {
		return binary.StateEmpty
	}
	return sl.asset.State()
}

// View decodes the asset if needed and calls fn with the value under a read
// lock. Concurrent views of one handle share the lock.
func (s *Store[T]) View(h Handle, fn func(T) error) error {
	sl, err := s.slot(h)
	if err != nil {
		return err
	}
	for {
		sl.mu.RLock()
		if sl.removed {
			sl.mu.RUnlock()
			return skinerr.Wrap(skinerr.ErrMissingAsset, "store", "view", sl.key, nil)
		}
		if value, ok := sl.asset.Value(); ok {
			defer sl.mu.RUnlock()
			return fn(value)
		}
		sl.mu.RUnlock()

		sl.mu.Lock()
		err := sl.asset.Load()
		sl.mu.Unlock()
		if err != nil {
			return fmt.Errorf("%s: %w", sl.key, err)
		}
	}
}

// Update runs fn with exclusive access and stores the value it returns.
func (s *Store[T]) Update(h Handle, fn func(T) (T, error)) error {
	sl, err := s.slot(h)
	if err != nil {
		return err
	}
	sl.mu.Lock()
	defer sl.mu.Unlock()
	if err := sl.asset.Load(); err != nil {
		return fmt.Errorf("%s: %w", sl.key, err)
	}
	value, _ := sl.asset.Value()
	next, err := fn(value)
	if err != nil {
		return fmt.Errorf("%s: %w", sl.key, err)
	}
	sl.asset.Set(next)
	return nil
}

// Replace stores value behind h without decoding the previous payload.
func (s *Store[T]) Replace(h Handle, value T) error {
	sl, err := s.slot(h)
	if err != nil {
		return err
	}
	sl.mu.Lock()
	sl.asset.Set(value)
	sl.mu.Unlock()
	return nil
}

// Encoded returns container bytes for h, encoding decoded values on the fly.
func (s *Store[T]) Encoded(h Handle) ([]byte, error) {
	sl, err := s.slot(h)
	if err != nil {
		return nil, err
	}
	sl.mu.RLock()
	defer sl.mu.RUnlock()
	data, err := sl.asset.Encoded()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sl.key, err)
	}
	return data, nil
}

// Asset returns an independent copy of the payload behind h.
func (s *Store[T]) Asset(h Handle) (*binary.Binary[T], error) {
	sl, err := s.slot(h)
	if err != nil {
		return nil, err
	}
	sl.mu.RLock()
	defer sl.mu.RUnlock()
	return sl.asset.Clone(), nil
}

// MarkProcessed sets the processed bit of h and reports whether this call
// was the one that set it.
func (s *Store[T]) MarkProcessed(h Handle) bool {
	sl, err := s.slot(h)
	if err != nil {
		return false
	}
	sl.mu.Lock()
	defer sl.mu.Unlock()
	if sl.processed {
		return false
	}
	sl.processed = true
	return true
}

func (s *Store[T]) Processed(h Handle) bool {
	sl, err := s.slot(h)
	if err != nil {
		return false
	}
	sl.mu.RLock()
	defer sl.mu.RUnlock()
	return sl.processed
}

// ResetProcessed clears every processed bit, starting a new conversion pass.
func (s *Store[T]) ResetProcessed() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sl := range s.slots[1:] {
		sl.mu.Lock()
		sl.processed = false
		sl.mu.Unlock()
	}
}

func (s *Store[T]) live() []*slot[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*slot[T], 0, len(s.index))
	for _, h := range s.index {
		out = append(out, s.slots[h])
	}
	return out
}

// LoadAll decodes every unloaded asset, distinct handles in parallel. Empty
// assets are skipped.
func (s *Store[T]) LoadAll(ctx context.Context) error {
	return s.each(ctx, func(sl *slot[T]) error {
		if sl.asset.State() != binary.StateUnloaded {
			return nil
		}
		if err := sl.asset.Load(); err != nil {
			return fmt.Errorf("%s: %w", sl.key, err)
		}
		return nil
	})
}

// UnloadAll re-encodes every decoded asset, distinct handles in parallel.
func (s *Store[T]) UnloadAll(ctx context.Context) error {
	return s.each(ctx, func(sl *slot[T]) error {
		if err := sl.asset.Unload(); err != nil {
			return fmt.Errorf("%s: %w", sl.key, err)
		}
		return nil
	})
}

func (s *Store[T]) each(ctx context.Context, fn func(*slot[T]) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, sl := range s.live() {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sl.mu.Lock()
			defer sl.mu.Unlock()
			if sl.removed {
				return nil
			}
			return fn(sl)
		})
	}
	return g.Wait()
}
