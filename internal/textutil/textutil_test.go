package textutil_test

import (
	"testing"

	"skinbridge/internal/textutil"
)

func TestNormalizeKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`Arrows\left.png`, "Arrows/left"},
		{"./Notes/down.PNG", "Notes/down"},
		{"/abs/path", "abs/path"},
		{"Notes/odd.name", "Notes/odd.name"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := textutil.NormalizeKey(tc.in, ".png"); got != tc.want {
			t.Fatalf("NormalizeKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFoldKeyMatchesCaseAndNormalization(t *testing.T) {
	if !textutil.KeyEqual("Mania-Key1", "mania-key1") {
		t.Fatalf("case-only difference should match")
	}
	if !textutil.KeyEqual("caf\u00e9", "cafe\u0301") {
		t.Fatalf("composed and decomposed forms should match")
	}
	if textutil.KeyEqual("mania-key1", "mania-key2") {
		t.Fatalf("different keys should not match")
	}
}

func TestFoldedSetAndIndex(t *testing.T) {
	set := textutil.NewFoldedSet("Stage/Hitline", "", "blank")
	if !set.Contains("stage/hitline") || set.Contains("") || len(set) != 2 {
		t.Fatalf("unexpected set %v", set)
	}
	idx := textutil.NewFoldedIndex([]string{"Notes/Down", "notes/down"})
	got, ok := idx.Lookup("NOTES/DOWN")
	if !ok || got != "Notes/Down" {
		t.Fatalf("expected first spelling, got %q %v", got, ok)
	}
}

func TestSanitizeFileName(t *testing.T) {
	if got := textutil.SanitizeFileName(`  my: skin/v2?  `); got != "my- skin-v2" {
		t.Fatalf("unexpected %q", got)
	}
}
