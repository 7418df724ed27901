package textutil

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var folder = cases.Fold()

// NormalizeKey converts a file reference into key form: NFC, forward
// slashes, no leading "./" or "/", and no trailing extension when ext is
// one of the given extensions.
func NormalizeKey(ref string, exts ...string) string {
	key := norm.NFC.String(strings.TrimSpace(ref))
	key = strings.ReplaceAll(key, "\\", "/")
	key = strings.TrimPrefix(path.Clean("/"+key), "/")
	if key == "." {
		return ""
	}
	if ext := path.Ext(key); ext != "" {
		for _, e := range exts {
			if strings.EqualFold(ext, e) {
				return strings.TrimSuffix(key, ext)
			}
		}
	}
	return key
}

// FoldKey returns the comparison form of key.
func FoldKey(key string) string {
	return folder.String(norm.NFC.String(NormalizeKey(key)))
}

// KeyEqual reports whether a and b name the same asset.
func KeyEqual(a, b string) bool {
	return FoldKey(a) == FoldKey(b)
}

// FoldedSet is a set of keys compared by FoldKey.
type FoldedSet map[string]struct{}

func NewFoldedSet(keys ...string) FoldedSet {
	s := make(FoldedSet, len(keys))
	for _, k := range keys {
		s.Add(k)
	}
	return s
}

func (s FoldedSet) Add(key string) {
	if key == "" {
		return
	}
	s[FoldKey(key)] = struct{}{}
}

func (s FoldedSet) Contains(key string) bool {
	_, ok := s[FoldKey(key)]
	return ok
}

// FoldedIndex maps folded keys back to the spelling first added.
type FoldedIndex map[string]string

func NewFoldedIndex(keys []string) FoldedIndex {
	idx := make(FoldedIndex, len(keys))
	for _, k := range keys {
		f := FoldKey(k)
		if _, ok := idx[f]; !ok {
			idx[f] = k
		}
	}
	return idx
}

// Lookup returns the original spelling of key.
func (idx FoldedIndex) Lookup(key string) (string, bool) {
	k, ok := idx[FoldKey(key)]
	return k, ok
}
