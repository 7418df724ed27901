// Package config loads, normalizes, and validates skinbridge configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), and
// reads TOML files from an explicit path or the XDG config directory. The
// Config type carries the output and log locations, the log format, and the
// tunables of the converters and the preview compositor.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
