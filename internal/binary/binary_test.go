package binary_test

import (
	"errors"
	"strconv"
	"testing"

	"skinbridge/internal/binary"
	"skinbridge/internal/skinerr"
)

type intCodec struct{ encodeErr error }

func (intCodec) Decode(data []byte) (int, error) { return strconv.Atoi(string(data)) }

func (c intCodec) Encode(v int) ([]byte, error) {
	if c.encodeErr != nil {
		return nil, c.encodeErr
	}
	return []byte(strconv.Itoa(v)), nil
}

func (intCodec) Clone(v int) int { return v }

func TestLoadEmptyFailsWithNoData(t *testing.T) {
	b := binary.Empty[int](intCodec{})
	if err := b.Load(); !errors.Is(err, skinerr.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
	if err := b.Unload(); err != nil {
		t.Fatalf("unload on empty should be a no-op, got %v", err)
	}
	if b.State() != binary.StateEmpty {
		t.Fatalf("state changed to %s", b.State())
	}
}

func TestLoadUnloadRoundTrip(t *testing.T) {
	b := binary.FromBytes[int](intCodec{}, []byte("42"))
	if b.State() != binary.StateUnloaded {
		t.Fatalf("expected unloaded, got %s", b.State())
	}
	if err := b.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	v, ok := b.Value()
	if !ok || v != 42 {
		t.Fatalf("value = %d, %v", v, ok)
	}
	b.Set(7)
	if err := b.Unload(); err != nil {
		t.Fatalf("unload: %v", err)
	}
	raw, ok := b.Bytes()
	if !ok || string(raw) != "7" {
		t.Fatalf("bytes = %q, %v", raw, ok)
	}
	if err := b.Unload(); err != nil {
		t.Fatalf("second unload should be a no-op, got %v", err)
	}
}

func TestLoadMalformedFailsWithDecode(t *testing.T) {
	b := binary.FromBytes[int](intCodec{}, []byte("not a number"))
	if err := b.Load(); !errors.Is(err, skinerr.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
	if b.State() != binary.StateUnloaded {
		t.Fatalf("failed load must keep bytes, state %s", b.State())
	}
}

func TestUnloadEncoderFailure(t *testing.T) {
	b := binary.FromValue[int](intCodec{encodeErr: errors.New("boom")}, 3)
	if err := b.Unload(); !errors.Is(err, skinerr.ErrEncode) {
		t.Fatalf("expected ErrEncode, got %v", err)
	}
	if b.State() != binary.StateLoaded {
		t.Fatalf("failed unload must keep value, state %s", b.State())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := binary.FromBytes[int](intCodec{}, []byte("1"))
	c := b.Clone()
	if err := c.Load(); err != nil {
		t.Fatalf("load clone: %v", err)
	}
	c.Set(99)
	if b.State() != binary.StateUnloaded {
		t.Fatalf("source state changed to %s", b.State())
	}
	raw, _ := b.Bytes()
	if string(raw) != "1" {
		t.Fatalf("source bytes changed to %q", raw)
	}
}
