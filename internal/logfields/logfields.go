package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyRoute      = "route"
	KeyLocale     = "locale"
	KeyPages      = "pages"
	KeyDurationMS = "duration_ms"
	KeyComponent  = "component"
	KeySubject    = "subject"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func Route(r string) slog.Attr         { return slog.String(KeyRoute, r) }
func Locale(l string) slog.Attr        { return slog.String(KeyLocale, l) }
func Pages(n int) slog.Attr            { return slog.Int(KeyPages, n) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Component(name string) slog.Attr  { return slog.String(KeyComponent, name) }
func Subject(s string) slog.Attr       { return slog.String(KeySubject, s) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
