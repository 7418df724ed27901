package convert

import (
	"skinbridge/internal/sample"
	"skinbridge/internal/skin/fluxis"
	"skinbridge/internal/skin/osu"
	"skinbridge/internal/store"
	"skinbridge/internal/texture"
	"skinbridge/internal/textutil"
)

func retainFolded[T any](s *store.Store[T], required []string) int {
	keep := textutil.NewFoldedSet(required...)
	return s.Retain(keep.Contains)
}

// CleanupTextures drops every texture whose key is not in required, ignoring
// case. It returns the number of removed entries.
func CleanupTextures(textures *texture.Store, required []string) int {
	return retainFolded(textures, required)
}

// CleanupSamples is CleanupTextures for samples.
func CleanupSamples(samples *sample.Store, required []string) int {
	return retainFolded(samples, required)
}

// CleanupOsu prunes the stores of skin down to what skin.ini and osu's
// default lookups reference.
func CleanupOsu(skin *osu.Skin) (textures, samples int) {
	return CleanupTextures(skin.Textures, skin.Ini.TexturePaths()),
		CleanupSamples(skin.Samples, skin.Ini.SamplePaths())
}

var fluxisStaticTextures = []string{
	fluxis.Icon, fluxis.UserInterfaceBackground,
	fluxis.HealthBackground, fluxis.HealthForeground,
	fluxis.ColumnLighting, fluxis.FailFlash,
}

// CleanupFluXis prunes the stores of skin down to what skin.json references
// plus the textures fluXis loads by fixed name.
func CleanupFluXis(skin *fluxis.Skin) (textures, samples int) {
	required := skin.JSON.TexturePaths()
	for _, group := range [][]string{fluxis.JudgementAssets, fluxis.StageAssets, fluxis.ResultAssets, fluxisStaticTextures} {
		required = append(required, group...)
	}
	return CleanupTextures(skin.Textures, required),
		CleanupSamples(skin.Samples, skin.JSON.SamplePaths())
}
