package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"skinbridge/internal/convert"
	"skinbridge/internal/logging"
	"skinbridge/internal/skin/generic"
	"skinbridge/internal/skinio"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var fromFlag string
	var toFlag string
	var outFlag string

	cmd := &cobra.Command{
		Use:   "convert <src-dir>...",
		Short: "Convert a skin directory to another format",
		Long: "Convert imports each source directory, merges them in order into one\n" +
			"intermediate skin, and exports the result in the target format.\n" +
			"Later sources override earlier ones.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			from, err := parseFormatFlag(fromFlag)
			if err != nil {
				return err
			}
			if strings.TrimSpace(toFlag) == "" {
				return fmt.Errorf("--to is required (osu or fluxis)")
			}
			to, err := skinio.ParseFormat(toFlag)
			if err != nil {
				return err
			}
			outDir := strings.TrimSpace(outFlag)
			if outDir == "" {
				outDir = cfg.Paths.OutputDir
			}

			runCtx, logger := ctx.runLogger(cmd, "convert")
			opts := convert.OptionsFromConfig(cfg, logger)

			var merged *generic.Skin
			for _, dir := range args {
				src, err := loadSkin(runCtx, dir, from, logger)
				if err != nil {
					return fmt.Errorf("import %s: %w", dir, err)
				}
				skin, err := src.toGeneric(opts)
				if err != nil {
					return fmt.Errorf("convert %s: %w", dir, err)
				}
				if merged == nil {
					merged = skin
					continue
				}
				if err := merged.Merge(skin); err != nil {
					return fmt.Errorf("merge %s: %w", dir, err)
				}
			}

			exportOpts := skinio.ExportOptions{Logger: logger, Lock: cfg.Conversion.LockOutput}
			var target string
			switch to {
			case skinio.FormatOsu:
				out, err := convert.GenericToOsu(merged, opts)
				if err != nil {
					return err
				}
				textures, samples := convert.CleanupOsu(out)
				logger.Debug("pruned unreferenced assets", logging.Stage("cleanup"), logging.Format(string(to)), logging.Int("textures", textures), logging.Int("samples", samples))
				target, err = skinio.ExportOsu(runCtx, out, outDir, exportOpts)
				if err != nil {
					return err
				}
			case skinio.FormatFluXis:
				out, err := convert.GenericToFluXis(merged, opts)
				if err != nil {
					return err
				}
				textures, samples := convert.CleanupFluXis(out)
				logger.Debug("pruned unreferenced assets", logging.Stage("cleanup"), logging.Format(string(to)), logging.Int("textures", textures), logging.Int("samples", samples))
				target, err = skinio.ExportFluXis(runCtx, out, outDir, exportOpts)
				if err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s skin to %s\n", to, target)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", "", "Source format (osu or fluxis); detected when omitted")
	cmd.Flags().StringVar(&toFlag, "to", "", "Target format (osu or fluxis)")
	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "Output directory (defaults to paths.output_dir)")
	return cmd
}
