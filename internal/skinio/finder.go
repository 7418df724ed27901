package skinio

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"skinbridge/internal/textutil"
)

// finder locates files by extension-less key, ignoring case, and caches
// directory listings.
type finder struct {
	root    string
	listing map[string][]os.DirEntry
}

func newFinder(root string) *finder {
	return &finder{root: root, listing: make(map[string][]os.DirEntry)}
}

func (f *finder) entries(rel string) []os.DirEntry {
	if e, ok := f.listing[rel]; ok {
		return e
	}
	e, err := os.ReadDir(filepath.Join(f.root, filepath.FromSlash(rel)))
	if err != nil {
		e = nil
	}
	f.listing[rel] = e
	return e
}

// resolveDir maps a slash separated directory to its on-disk spelling,
// matching each element ignoring case.
func (f *finder) resolveDir(rel string) (string, bool) {
	if rel == "." || rel == "" {
		return ".", true
	}
	cur := "."
	for _, elem := range strings.Split(rel, "/") {
		found := false
		for _, e := range f.entries(cur) {
			if e.IsDir() && textutil.KeyEqual(e.Name(), elem) {
				cur = path.Join(cur, e.Name())
				found = true
				break
			}
		}
		if !found {
			return "", false
		}
	}
	return cur, true
}

// file returns the path of the file called name in the root, ignoring case.
func (f *finder) file(name string) (string, bool) {
	for _, e := range f.entries(".") {
		if !e.IsDir() && textutil.KeyEqual(e.Name(), name) {
			return filepath.Join(f.root, e.Name()), true
		}
	}
	return "", false
}

// find resolves key to a file whose stem matches the last key element and
// whose extension is one of exts. Earlier extensions win.
func (f *finder) find(key string, exts []string) (string, bool) {
	parent, stem := path.Split(key)
	dir, ok := f.resolveDir(strings.TrimSuffix(parent, "/"))
	if !ok {
		return "", false
	}
	entries := f.entries(dir)
	for _, ext := range exts {
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			name := e.Name()
			x := filepath.Ext(name)
			if strings.EqualFold(x, ext) && textutil.KeyEqual(strings.TrimSuffix(name, x), stem) {
				return filepath.Join(f.root, filepath.FromSlash(dir), name), true
			}
		}
	}
	return "", false
}
