package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyLocale     = "locale"
	KeyLang       = "lang"
	KeyField      = "field"
	KeyFormat     = "format"
	KeySnapshot   = "snapshot"
	KeyLink       = "link"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Locale(key string) slog.Attr     { return slog.String(KeyLocale, key) }
func Lang(tag string) slog.Attr       { return slog.String(KeyLang, tag) }
func Field(f string) slog.Attr        { return slog.String(KeyField, f) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Snapshot(s string) slog.Attr     { return slog.String(KeySnapshot, s) }
func Link(l string) slog.Attr         { return slog.String(KeyLink, l) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
