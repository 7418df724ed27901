// Package convert translates skins between the osu and fluXis models through
// the intermediate generic.Skin.
//
// Every direction walks the keymodes column by column and resolves each slot
// to a texture handle, falling back to format defaults and finally to the
// blank placeholder. Texture rewrites go through imageproc.Processor so a
// texture shared by several slots is transformed once. Converters take over
// the stores of their input; the input skin must not be used afterwards.
package convert
