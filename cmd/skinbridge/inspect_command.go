package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"skinbridge/internal/textutil"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <skin-dir>",
		Short: "Summarize a skin directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}
			runCtx, logger := ctx.runLogger(cmd, "inspect")
			src, err := loadSkin(runCtx, args[0], "", logger)
			if err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable("Skin", []string{"Field", "Value"}, src.metadataRows(), nil))
			fmt.Fprintln(out, renderTable("Keymodes", []string{"Keys", "Column width", "Hit position"},
				src.keymodeRows(), []columnAlignment{alignRight, alignRight, alignRight}))
			fmt.Fprintln(out, renderTable("Assets", []string{"Kind", "Stored", "Referenced", "Missing"},
				src.assetRows(), []columnAlignment{alignLeft, alignRight, alignRight, alignRight}))
			return nil
		},
	}
}

func (l *loadedSkin) metadataRows() [][]string {
	rows := [][]string{{"Format", string(l.format)}, {"Directory", l.dir}}
	if l.osu != nil {
		g := l.osu.Ini.General
		return append(rows,
			[]string{"Name", g.Name},
			[]string{"Author", g.Author},
			[]string{"Version", g.Version},
		)
	}
	info := l.fluxis.JSON.Info
	return append(rows,
		[]string{"Name", info.Name},
		[]string{"Creator", info.Creator},
		[]string{"Accent", info.Accent},
		[]string{"Layout", l.fluxis.Layout.Name},
		[]string{"Layout components", strconv.Itoa(len(l.fluxis.Layout.Gameplay))},
	)
}

func (l *loadedSkin) keymodeRows() [][]string {
	var rows [][]string
	if l.osu != nil {
		for _, km := range l.osu.Ini.Keymodes {
			widths := make([]string, len(km.ColumnWidth))
			for i, w := range km.ColumnWidth {
				widths[i] = strconv.FormatFloat(w, 'f', -1, 64)
			}
			rows = append(rows, []string{strconv.Itoa(km.Keys), strings.Join(widths, ","), strconv.Itoa(km.HitPosition)})
		}
		return rows
	}
	for _, km := range l.fluxis.JSON.Keymodes {
		rows = append(rows, []string{strconv.Itoa(km.Keys), strconv.Itoa(km.ColumnWidth), strconv.Itoa(km.HitPosition)})
	}
	return rows
}

func (l *loadedSkin) assetRows() [][]string {
	var texKeys, sampleKeys, texRefs, sampleRefs []string
	if l.osu != nil {
		texKeys, sampleKeys = l.osu.Textures.Keys(), l.osu.Samples.Keys()
		texRefs, sampleRefs = l.osu.Ini.TexturePaths(), l.osu.Ini.SamplePaths()
	} else {
		texKeys, sampleKeys = l.fluxis.Textures.Keys(), l.fluxis.Samples.Keys()
		texRefs, sampleRefs = l.fluxis.JSON.TexturePaths(), l.fluxis.JSON.SamplePaths()
	}
	return [][]string{
		assetRow("Textures", texKeys, texRefs),
		assetRow("Samples", sampleKeys, sampleRefs),
	}
}

func assetRow(kind string, stored, referenced []string) []string {
	have := textutil.NewFoldedSet(stored...)
	missing := 0
	for _, ref := range referenced {
		if !have.Contains(ref) {
			missing++
		}
	}
	return []string{kind, strconv.Itoa(len(stored)), strconv.Itoa(len(referenced)), strconv.Itoa(missing)}
}
