package main

import (
	"bytes"
	"fmt"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"skinbridge/internal/convert"
	"skinbridge/internal/fileutil"
	"skinbridge/internal/logging"
	"skinbridge/internal/preview"
)

func newPreviewCommand(ctx *commandContext) *cobra.Command {
	var outFlag string

	cmd := &cobra.Command{
		Use:   "preview <skin-dir>",
		Short: "Render a 4k gameplay preview as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			runCtx, logger := ctx.runLogger(cmd, "preview")

			src, err := loadSkin(runCtx, args[0], "", logger)
			if err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}

			var scene *preview.Scene
			if src.fluxis != nil {
				scene, err = preview.FromFluXis(src.fluxis)
			} else {
				skin, convErr := src.toGeneric(convert.OptionsFromConfig(cfg, logger))
				if convErr != nil {
					return convErr
				}
				scene, err = preview.FromGeneric(skin)
			}
			if err != nil {
				return err
			}

			img := preview.Render(scene, preview.GeometryFromConfig(cfg))
			var buf bytes.Buffer
			if err := png.Encode(&buf, img); err != nil {
				return fmt.Errorf("encode preview: %w", err)
			}

			target := strings.TrimSpace(outFlag)
			if target == "" {
				target = filepath.Join(cfg.Paths.OutputDir, "preview.png")
			}
			if err := fileutil.WriteFileAtomic(target, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write preview: %w", err)
			}
			logger.Info("preview rendered", logging.String("path", target), logging.Int("width", img.Bounds().Dx()), logging.Int("height", img.Bounds().Dy()))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote preview to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "Destination PNG (defaults to <output_dir>/preview.png)")
	return cmd
}
