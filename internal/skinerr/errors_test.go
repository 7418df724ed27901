package skinerr_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"skinbridge/internal/skinerr"
)

func TestWrapKeepsMarkerAndCause(t *testing.T) {
	err := skinerr.Wrap(skinerr.ErrDecode, "texture", "load", "mania-key1", io.ErrUnexpectedEOF)
	if !errors.Is(err, skinerr.ErrDecode) {
		t.Fatalf("expected ErrDecode marker, got %v", err)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected cause to be preserved, got %v", err)
	}
	if !strings.Contains(err.Error(), "texture: load: mania-key1") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestWrapWithoutDetail(t *testing.T) {
	err := skinerr.Wrap(nil, " ", "", "", nil)
	if !errors.Is(err, skinerr.ErrValidation) {
		t.Fatalf("expected default marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "conversion failure") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestIsRecoverable(t *testing.T) {
	if !skinerr.IsRecoverable(skinerr.Wrap(skinerr.ErrNoData, "", "", "", nil)) {
		t.Fatal("no data should be recoverable")
	}
	if skinerr.IsRecoverable(skinerr.Wrap(skinerr.ErrParse, "ini", "", "", nil)) {
		t.Fatal("parse errors must abort")
	}
}
