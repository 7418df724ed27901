// Package main implements the skinbridge command-line interface.
//
// The CLI converts mania skins between the osu skin.ini layout and the fluXis
// skin.json/layout.json layout, renders 4k previews and prints a summary of a
// skin directory. Configuration is read from the TOML file selected with
// --config, falling back to the XDG location and then to built-in defaults.
package main
