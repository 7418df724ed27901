package convert

import (
	"log/slog"

	"skinbridge/internal/config"
	"skinbridge/internal/imageproc"
	"skinbridge/internal/logging"
)

// DefaultOffsetTolerance is the alpha fraction used to measure the empty band
// under a receptor.
const DefaultOffsetTolerance = 0.1

// Options tunes the converters.
type Options struct {
	Logger          *slog.Logger
	Scaler          imageproc.ColumnScaler
	OffsetTolerance float64
}

func DefaultOptions() Options {
	return Options{
		Scaler:          imageproc.DefaultColumnScaler(),
		OffsetTolerance: DefaultOffsetTolerance,
	}
}

// OptionsFromConfig reads the [conversion] section of cfg.
func OptionsFromConfig(cfg *config.Config, logger *slog.Logger) Options {
	opts := DefaultOptions()
	opts.Logger = logger
	if cfg == nil {
		return opts
	}
	opts.Scaler = imageproc.ColumnScaler{
		ReceptorHeight: cfg.Conversion.ReceptorHeight,
		TrimTolerance:  cfg.Conversion.TrimTolerance,
	}
	opts.OffsetTolerance = cfg.Conversion.OffsetTolerance
	return opts
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = logging.NewNop()
	}
	if o.Scaler.ReceptorHeight <= 0 {
		o.Scaler.ReceptorHeight = imageproc.ReceptorHeight
	}
	if o.Scaler.TrimTolerance <= 0 {
		o.Scaler.TrimTolerance = imageproc.ColumnTrimTolerance
	}
	if o.OffsetTolerance <= 0 {
		o.OffsetTolerance = DefaultOffsetTolerance
	}
	return o
}
