package store_test

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"

	"skinbridge/internal/binary"
	"skinbridge/internal/skinerr"
	"skinbridge/internal/store"
)

type textCodec struct{}

func (textCodec) Decode(data []byte) (string, error) {
	if strings.HasPrefix(string(data), "bad") {
		return "", errors.New("corrupt payload")
	}
	return string(data), nil
}
func (textCodec) Encode(v string) ([]byte, error) { return []byte(v), nil }
func (textCodec) Clone(v string) string           { return v }

func newStore() *store.Store[string] { return store.New[string](textCodec{}) }

func TestInsertOverwritesInPlace(t *testing.T) {
	s := newStore()
	h1 := s.InsertBytes("mania-key1", []byte("a"))
	h2 := s.InsertBytes("mania-key1", []byte("b"))
	if h1 != h2 {
		t.Fatalf("overwrite allocated a new handle: %d vs %d", h1, h2)
	}
	var got string
	if err := s.View(h1, func(v string) error { got = v; return nil }); err != nil {
		t.Fatalf("view: %v", err)
	}
	if got != "b" {
		t.Fatalf("got %q, want b", got)
	}
	if s.Len() != 1 {
		t.Fatalf("len = %d", s.Len())
	}
}

func TestMakeUniqueNeverOverwrites(t *testing.T) {
	s := newStore()
	s.InsertBytes("note.png", []byte("orig"))
	h1, k1 := s.MakeUnique("note.png", binary.FromBytes[string](textCodec{}, []byte("x")))
	h2, k2 := s.MakeUnique("note.png", binary.FromBytes[string](textCodec{}, []byte("y")))
	if k1 != "note_1.png" || k2 != "note_2.png" {
		t.Fatalf("keys = %q, %q", k1, k2)
	}
	if h1 == h2 {
		t.Fatal("distinct keys must resolve to distinct handles")
	}
	h, _ := s.Lookup("note.png")
	var got string
	_ = s.View(h, func(v string) error { got = v; return nil })
	if got != "orig" {
		t.Fatalf("original overwritten: %q", got)
	}
}

func TestMakeUniqueWithoutExtension(t *testing.T) {
	s := newStore()
	s.InsertBytes("blank", []byte("a"))
	_, key := s.MakeUnique("blank", nil)
	if key != "blank_1" {
		t.Fatalf("key = %q", key)
	}
}

func TestCopyClonesData(t *testing.T) {
	s := newStore()
	src := s.InsertBytes("scorebar-colour", []byte("fill"))
	dst, err := s.Copy("scorebar-colour", "Health/foreground")
	if err != nil {
		t.Fatalf("copy: %v", err)
	}
	if err := s.Update(dst, func(string) (string, error) { return "changed", nil }); err != nil {
		t.Fatalf("update: %v", err)
	}
	var got string
	_ = s.View(src, func(v string) error { got = v; return nil })
	if got != "fill" {
		t.Fatalf("source mutated through copy: %q", got)
	}
}

func TestCopyCollisionAndMissing(t *testing.T) {
	s := newStore()
	s.InsertBytes("a", []byte("1"))
	s.InsertBytes("b", []byte("2"))
	if _, err := s.Copy("a", "b"); !errors.Is(err, skinerr.ErrKeyCollision) {
		t.Fatalf("expected collision, got %v", err)
	}
	if _, err := s.Copy("missing", "c"); !errors.Is(err, skinerr.ErrMissingAsset) {
		t.Fatalf("expected missing asset, got %v", err)
	}
}

func TestRetainKeepsExactlyMatchingKeys(t *testing.T) {
	s := newStore()
	keys := []string{"mania-key1", "mania-key2", "junk", "star", "unused"}
	for _, k := range keys {
		s.InsertBytes(k, []byte(k))
	}
	keep := map[string]bool{"mania-key1": true, "mania-key2": true, "star": true}
	removed := s.Retain(func(k string) bool { return keep[k] })
	if removed != 2 {
		t.Fatalf("removed = %d", removed)
	}
	for _, k := range s.Keys() {
		if !keep[k] {
			t.Fatalf("key %q survived", k)
		}
	}
	for k := range keep {
		if !s.Contains(k) {
			t.Fatalf("key %q removed", k)
		}
	}
}

func TestRemovedHandleFails(t *testing.T) {
	s := newStore()
	h := s.InsertBytes("gone", []byte("x"))
	if !s.Remove("gone") {
		t.Fatal("remove reported false")
	}
	err := s.View(h, func(string) error { return nil })
	if !errors.Is(err, skinerr.ErrMissingAsset) {
		t.Fatalf("expected missing asset, got %v", err)
	}
	h2 := s.InsertBytes("gone", []byte("y"))
	if h2 == h {
		t.Fatal("tombstoned handle reused")
	}
}

func TestViewDecodeError(t *testing.T) {
	s := newStore()
	h := s.InsertBytes("broken", []byte("bad bytes"))
	err := s.View(h, func(string) error { return nil })
	if !errors.Is(err, skinerr.ErrDecode) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestMarkProcessedOnce(t *testing.T) {
	s := newStore()
	h := s.InsertBytes("k", []byte("v"))
	if !s.MarkProcessed(h) {
		t.Fatal("first mark should succeed")
	}
	if s.MarkProcessed(h) {
		t.Fatal("second mark should report already processed")
	}
	s.ResetProcessed()
	if s.Processed(h) {
		t.Fatal("reset did not clear bit")
	}
}

func TestConcurrentUpdatesSerialize(t *testing.T) {
	s := newStore()
	h := s.InsertBytes("counter", []byte("0"))
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Update(h, func(v string) (string, error) {
				n, _ := strconv.Atoi(v)
				return strconv.Itoa(n + 1), nil
			})
		}()
	}
	wg.Wait()
	var got string
	_ = s.View(h, func(v string) error { got = v; return nil })
	if got != "32" {
		t.Fatalf("counter = %s", got)
	}
}

func TestLoadAllAndUnloadAll(t *testing.T) {
	s := newStore()
	a := s.InsertBytes("a", []byte("1"))
	s.Insert("empty", nil)
	if err := s.LoadAll(context.Background()); err != nil {
		t.Fatalf("load all: %v", err)
	}
	if s.State(a) != binary.StateLoaded {
		t.Fatalf("state = %s", s.State(a))
	}
	if err := s.UnloadAll(context.Background()); err != nil {
		t.Fatalf("unload all: %v", err)
	}
	if s.State(a) != binary.StateUnloaded {
		t.Fatalf("state = %s", s.State(a))
	}
}
