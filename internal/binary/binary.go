// Package binary models the load state of a single asset payload.
//
// An asset starts either Empty, Unloaded (raw container bytes) or Loaded
// (decoded value). Load and Unload move between the last two states through a
// Codec; Empty is only reachable at construction.
package binary

import (
	"bytes"

	"skinbridge/internal/skinerr"
)

// State enumerates the lifecycle positions of a Binary.
type State int

const (
	StateEmpty State = iota
	StateUnloaded
	StateLoaded
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateUnloaded:
		return "unloaded"
	case StateLoaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// Codec converts between container bytes and a decoded value.
type Codec[T any] interface {
	Decode(data []byte) (T, error)
	Encode(value T) ([]byte, error)
	Clone(value T) T
}

// Binary holds one asset payload in one of three states.
type Binary[T any] struct {
	codec Codec[T]
	state State
	data  []byte
	value T
}

func Empty[T any](codec Codec[T]) *Binary[T] {
	return &Binary[T]{codec: codec}
}

func FromBytes[T any](codec Codec[T], data []byte) *Binary[T] {
	if len(data) == 0 {
		return Empty(codec)
	}
	return &Binary[T]{codec: codec, state: StateUnloaded, data: data}
}

func FromValue[T any](codec Codec[T], value T) *Binary[T] {
	return &Binary[T]{codec: codec, state: StateLoaded, value: value}
}

func (b *Binary[T]) State() State { return b.state }

// HasData reports whether the asset carries bytes or a decoded value.
func (b *Binary[T]) HasData() bool { return b.state != StateEmpty }

// Load decodes the raw bytes. Loading an already loaded asset is a no-op.
func (b *Binary[T]) Load() error {
	switch b.state {
	case StateEmpty:
		return skinerr.Wrap(skinerr.ErrNoData, "binary", "load", "asset has no data", nil)
	case StateLoaded:
		return nil
	}
	value, err := b.codec.Decode(b.data)
	if err != nil {
		return skinerr.Wrap(skinerr.ErrDecode, "binary", "load", "", err)
	}
	b.value = value
	b.data = nil
	b.state = StateLoaded
	return nil
}

// Unload re-encodes a decoded value to bytes. Empty and unloaded assets are
// left untouched.
func (b *Binary[T]) Unload() error {
	if b.state != StateLoaded {
		return nil
	}
	data, err := b.codec.Encode(b.value)
	if err != nil {
		return skinerr.Wrap(skinerr.ErrEncode, "binary", "unload", "", err)
	}
	var zero T
	b.value = zero
	b.data = data
	b.state = StateUnloaded
	return nil
}

// Value returns the decoded payload when loaded.
func (b *Binary[T]) Value() (T, bool) {
	if b.state != StateLoaded {
		var zero T
		return zero, false
	}
	return b.value, true
}

// Bytes returns the raw payload when unloaded.
func (b *Binary[T]) Bytes() ([]byte, bool) {
	if b.state != StateUnloaded {
		return nil, false
	}
	return b.data, true
}

// Encoded returns container bytes regardless of state, encoding a loaded
// value without changing the state.
func (b *Binary[T]) Encoded() ([]byte, error) {
	switch b.state {
	case StateUnloaded:
		return b.data, nil
	case StateLoaded:
		data, err := b.codec.Encode(b.value)
		if err != nil {
			return nil, skinerr.Wrap(skinerr.ErrEncode, "binary", "encode", "", err)
		}
		return data, nil
	default:
		return nil, skinerr.Wrap(skinerr.ErrNoData, "binary", "encode", "asset has no data", nil)
	}
}

// Set replaces the payload with a decoded value.
func (b *Binary[T]) Set(value T) {
	b.value = value
	b.data = nil
	b.state = StateLoaded
}

// Clone returns an independent copy of the payload in the same state.
func (b *Binary[T]) Clone() *Binary[T] {
	out := &Binary[T]{codec: b.codec, state: b.state}
	switch b.state {
	case StateUnloaded:
		out.data = bytes.Clone(b.data)
	case StateLoaded:
		out.value = b.codec.Clone(b.value)
	}
	return out
}

func (b *Binary[T]) Codec() Codec[T] { return b.codec }
