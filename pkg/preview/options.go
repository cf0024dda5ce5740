// Package preview renders bounded HTML previews of spreadsheet workbooks and
// serves repeated requests from a bounded cache.
package preview

import (
	"log/slog"

	"golang.org/x/text/language"
)

// Default request limits.
const (
	DefaultMaxRows = 100
	DefaultMaxCols = 30
)

// Options configures a Service.
type Options struct {
	// DefaultRows and DefaultCols apply when a request leaves a limit at zero.
	DefaultRows int
	DefaultCols int
	// RowCeiling and ColCeiling clamp requested limits. Zero means unbounded.
	RowCeiling int
	ColCeiling int
	// Locale drives number grouping in rendered values.
	Locale language.Tag
	// DateLayout is the Go time layout for date cells.
	DateLayout string
	// Logger receives diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns default service options.
func DefaultOptions() Options {
	return Options{
		DefaultRows: DefaultMaxRows,
		DefaultCols: DefaultMaxCols,
		Locale:      language.AmericanEnglish,
	}
}

// resolveLimits fills defaults and applies ceilings.
func (o Options) resolveLimits(rows, cols int) (int, int) {
	if rows == 0 {
		rows = o.DefaultRows
	}
	if cols == 0 {
		cols = o.DefaultCols
	}
	if o.RowCeiling > 0 && rows > o.RowCeiling {
		rows = o.RowCeiling
	}
	if o.ColCeiling > 0 && cols > o.ColCeiling {
		cols = o.ColCeiling
	}
	return rows, cols
}
