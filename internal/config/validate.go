package config

import (
	"errors"
	"fmt"

	"skinbridge/internal/skinerr"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	for _, check := range []func() error{c.validateLogging, c.validateConversion, c.validatePreview} {
		if err := check(); err != nil {
			return skinerr.Wrap(skinerr.ErrConfiguration, "config", "validate", "", err)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json", "auto":
	default:
		return fmt.Errorf("logging.format must be console, json or auto, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateConversion() error {
	if c.Conversion.ReceptorHeight <= 0 {
		return errors.New("conversion.receptor_height must be positive")
	}
	if !unitInterval(c.Conversion.TrimTolerance) {
		return errors.New("conversion.trim_tolerance must be between 0 and 1")
	}
	if !unitInterval(c.Conversion.OffsetTolerance) {
		return errors.New("conversion.offset_tolerance must be between 0 and 1")
	}
	return nil
}

func (c *Config) validatePreview() error {
	p := c.Preview
	if p.Width <= 0 || p.Height <= 0 {
		return errors.New("preview.width and preview.height must be positive")
	}
	if p.StageWidthFraction <= 0 || p.StageWidthFraction > 1 {
		return errors.New("preview.stage_width_fraction must be in (0, 1]")
	}
	if !unitInterval(p.NoteSpacingFraction) || !unitInterval(p.BottomMarginFraction) || !unitInterval(p.LongNoteExtraFraction) {
		return errors.New("preview fractions must be between 0 and 1")
	}
	if p.NoteGap < 0 {
		return errors.New("preview.note_gap must not be negative")
	}
	return nil
}

func unitInterval(v float64) bool { return v >= 0 && v <= 1 }
