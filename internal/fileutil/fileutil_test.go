package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "skin.ini")

	if err := WriteFileAtomic(path, []byte("[General]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFileAtomic(path, []byte("[Mania]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "[Mania]\n" {
		t.Fatalf("content mismatch: got %q", got)
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("temporary files left behind: %v", entries)
	}
}

func TestSameContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.bin")
	if same, err := SameContent(path, []byte("x")); err != nil || same {
		t.Fatalf("missing file should differ, got %v %v", same, err)
	}
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
	if same, err := SameContent(path, []byte("data")); err != nil || !same {
		t.Fatalf("expected same content, got %v %v", same, err)
	}
	if same, _ := SameContent(path, []byte("date")); same {
		t.Fatal("expected different content")
	}
}

func TestWriteFileIfChangedSkipsIdentical(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skin.json")
	wrote, err := WriteFileIfChanged(path, []byte("{}"), 0o644)
	if err != nil || !wrote {
		t.Fatalf("first write: wrote=%v err=%v", wrote, err)
	}
	wrote, err = WriteFileIfChanged(path, []byte("{}"), 0o644)
	if err != nil || wrote {
		t.Fatalf("identical write: wrote=%v err=%v", wrote, err)
	}
	wrote, err = WriteFileIfChanged(path, []byte("{\"a\":1}"), 0o644)
	if err != nil || !wrote {
		t.Fatalf("changed write: wrote=%v err=%v", wrote, err)
	}
}
