package config

const (
	defaultOutputDir             = "."
	defaultLogFormat             = "auto"
	defaultLogLevel              = "info"
	defaultReceptorHeight        = 128
	defaultTrimTolerance         = 0.01
	defaultOffsetTolerance       = 0.1
	defaultPreviewWidth          = 1920
	defaultPreviewHeight         = 1080
	defaultStageWidthFraction    = 0.85
	defaultNoteSpacingFraction   = 0.3
	defaultNoteGap               = 20
	defaultBottomMarginFraction  = 0.05
	defaultLongNoteExtraFraction = 0.1
)

// Default returns a Config populated with skinbridge defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Conversion: Conversion{
			ReceptorHeight:  defaultReceptorHeight,
			TrimTolerance:   defaultTrimTolerance,
			OffsetTolerance: defaultOffsetTolerance,
			LockOutput:      true,
		},
		Preview: Preview{
			Width:                 defaultPreviewWidth,
			Height:                defaultPreviewHeight,
			StageWidthFraction:    defaultStageWidthFraction,
			NoteSpacingFraction:   defaultNoteSpacingFraction,
			NoteGap:               defaultNoteGap,
			BottomMarginFraction:  defaultBottomMarginFraction,
			LongNoteExtraFraction: defaultLongNoteExtraFraction,
		},
	}
}
