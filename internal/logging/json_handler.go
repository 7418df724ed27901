package logging

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"
)

// newJSONHandler writes one object per record. Timestamps are UTC with
// millisecond precision, keymodes render as "<n>k" and asset keys always
// use forward slashes, so records from osu and fluXis runs line up.
func newJSONHandler(w io.Writer, lvl *slog.LevelVar, addSource bool) (slog.Handler, error) {
	opts := slog.HandlerOptions{
		Level:       lvl,
		AddSource:   addSource,
		ReplaceAttr: replaceJSONAttr,
	}
	return slog.NewJSONHandler(w, &opts), nil
}

func replaceJSONAttr(groups []string, attr slog.Attr) slog.Attr {
	switch attr.Key {
	case slog.TimeKey:
		if len(groups) > 0 {
			return attr
		}
		attr.Key = "ts"
		if attr.Value.Kind() == slog.KindTime {
			attr.Value = slog.StringValue(attr.Value.Time().UTC().Format("2006-01-02T15:04:05.000Z07:00"))
		}
	case slog.LevelKey:
		attr.Value = slog.StringValue(strings.ToLower(attr.Value.String()))
	case slog.SourceKey:
		if src, ok := attr.Value.Any().(*slog.Source); ok && src != nil {
			attr.Value = slog.StringValue(fmt.Sprintf("%s:%d", filepath.Base(src.File), src.Line))
		}
	case FieldKeymode:
		if attr.Value.Kind() == slog.KindInt64 {
			attr.Value = slog.StringValue(fmt.Sprintf("%dk", attr.Value.Int64()))
		}
	case FieldAsset:
		attr.Value = slog.StringValue(strings.ReplaceAll(attr.Value.String(), `\`, "/"))
	case FieldRunID:
		if attr.Value.String() == "" {
			return slog.Attr{}
		}
	}
	return attr
}
