package parser

import (
	"html"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/sheetpreview-go/pkg/preview/models"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultDateLayout renders dates as month/day/year without a time component.
const DefaultDateLayout = "1/2/2006"

// FormatOptions configures value formatting.
type FormatOptions struct {
	// Locale drives digit grouping. Defaults to en-US.
	Locale language.Tag
	// DateLayout is a Go time layout for date cells. Defaults to DefaultDateLayout.
	DateLayout string
	// Date1904 selects the 1904 date epoch for serial dates.
	Date1904 bool
}

// Formatter turns raw cell values into HTML-safe display strings.
type Formatter struct {
	printer    *message.Printer
	dateLayout string
	date1904   bool
}

// NewFormatter creates a Formatter from opts, filling in defaults.
func NewFormatter(opts FormatOptions) *Formatter {
	tag := opts.Locale
	if tag == language.Und {
		tag = language.AmericanEnglish
	}
	layout := opts.DateLayout
	if layout == "" {
		layout = DefaultDateLayout
	}
	return &Formatter{
		printer:    message.NewPrinter(tag),
		dateLayout: layout,
		date1904:   opts.Date1904,
	}
}

// Format renders cell as an HTML-safe display string.
func (f *Formatter) Format(cell models.RawCell) string {
	switch cell.Type {
	case models.ValueEmpty:
		return ""
	case models.ValueError:
		code := cell.Value
		if code == "" {
			code = cell.Display
		}
		return `<span class="cell-error">` + html.EscapeString(code) + `</span>`
	case models.ValueDate:
		if s, ok := f.formatDate(cell.Value); ok {
			return s
		}
	case models.ValueNumber:
		if cell.NumFmt != "" {
			if v, err := strconv.ParseFloat(cell.Value, 64); err == nil {
				return f.formatNumber(v, cell.NumFmt)
			}
		}
	}

	text := cell.Display
	if text == "" {
		text = cell.Value
	}
	return html.EscapeString(text)
}

// formatNumber applies the number-format heuristics for patterned numeric cells.
func (f *Formatter) formatNumber(v float64, pattern string) string {
	if sym := currencySymbol(pattern); sym != "" {
		sign := ""
		if v < 0 {
			sign, v = "-", -v
		}
		return sign + sym + f.printer.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(2)))
	}
	p := stripLiterals(pattern)
	if strings.Contains(p, "%") {
		return strconv.FormatFloat(v*100, 'f', 1, 64) + "%"
	}
	if strings.Contains(p, ",") {
		return f.printer.Sprintf("%v", number.Decimal(math.Round(v), number.MaxFractionDigits(0)))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// dateLayouts are tried for date cells stored as ISO 8601 text.
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func (f *Formatter) formatDate(raw string) (string, bool) {
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, f.date1904)
		if err != nil {
			return "", false
		}
		return t.Format(f.dateLayout), true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(f.dateLayout), true
		}
	}
	return "", false
}
