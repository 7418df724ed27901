// Package textutil normalises asset keys and directory names.
//
// Keys are the logical paths skins use to reference assets: forward slashes,
// no extension. Two keys match when their folded forms are equal, which
// covers case differences and composed versus decomposed unicode.
package textutil
