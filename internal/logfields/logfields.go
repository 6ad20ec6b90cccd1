package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyFormat     = "format"
	KeyPath       = "path"
	KeyLocale     = "locale"
	KeyPlugin     = "plugin"
	KeyEntries    = "entries"
	KeyFiles      = "files"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

func Format(f string) slog.Attr    { return slog.String(KeyFormat, f) }
func Path(p string) slog.Attr      { return slog.String(KeyPath, p) }
func Locale(l string) slog.Attr    { return slog.String(KeyLocale, l) }
func Plugin(name string) slog.Attr { return slog.String(KeyPlugin, name) }
func Entries(n int) slog.Attr      { return slog.Int(KeyEntries, n) }
func Files(n int) slog.Attr        { return slog.Int(KeyFiles, n) }

// Duration reports d in fractional milliseconds.
func Duration(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMS, float64(d.Microseconds())/1000)
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
