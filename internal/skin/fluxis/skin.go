package fluxis

import (
	"skinbridge/internal/sample"
	"skinbridge/internal/texture"
)

// Skin is a fluXis skin held in memory.
type Skin struct {
	JSON     *SkinJSON
	Layout   *Layout
	Textures *texture.Store
	Samples  *sample.Store
}

// NewSkin wraps doc and layout with empty stores. Nil arguments take their
// defaults.
func NewSkin(doc *SkinJSON, layout *Layout) *Skin {
	if doc == nil {
		doc = NewSkinJSON()
	}
	if layout == nil {
		layout = DefaultLayout()
	}
	return &Skin{JSON: doc, Layout: layout, Textures: texture.NewStore(), Samples: sample.NewStore()}
}
