package parser

import (
	"regexp"
	"strings"
)

// builtinNumFmts maps the implicit number format ids defined by OOXML to
// their en-US patterns. Ids that are absent render as General.
var builtinNumFmts = map[int]string{
	1:  "0",
	2:  "0.00",
	3:  "#,##0",
	4:  "#,##0.00",
	5:  "$#,##0_);($#,##0)",
	6:  "$#,##0_);[Red]($#,##0)",
	7:  "$#,##0.00_);($#,##0.00)",
	8:  "$#,##0.00_);[Red]($#,##0.00)",
	9:  "0%",
	10: "0.00%",
	11: "0.00E+00",
	12: "# ?/?",
	13: "# ??/??",
	14: "mm-dd-yy",
	15: "d-mmm-yy",
	16: "d-mmm",
	17: "mmm-yy",
	18: "h:mm AM/PM",
	19: "h:mm:ss AM/PM",
	20: "h:mm",
	21: "h:mm:ss",
	22: "m/d/yy h:mm",
	37: "#,##0 ;(#,##0)",
	38: "#,##0 ;[Red](#,##0)",
	39: "#,##0.00;(#,##0.00)",
	40: "#,##0.00;[Red](#,##0.00)",
	45: "mm:ss",
	46: "[h]:mm:ss",
	47: "mmss.0",
	48: "##0.0E+0",
	49: "@",
}

var (
	// localeTagRe matches locale prefixes such as [$-409] which carry no currency.
	localeTagRe = regexp.MustCompile(`\[\$-[0-9A-Fa-f]+\]`)
	// literalRe matches quoted literals, bracketed sections and escaped characters.
	literalRe = regexp.MustCompile(`"[^"]*"|\[[^\]]*\]|\\.`)
)

// numFmtPattern resolves the pattern for a builtin id or custom format.
// General yields "".
func numFmtPattern(id int, custom *string) string {
	if custom != nil && *custom != "" && !strings.EqualFold(*custom, "General") {
		return *custom
	}
	return builtinNumFmts[id]
}

// stripLiterals removes locale tags, quoted text, bracketed sections and
// escaped characters from a number format pattern.
func stripLiterals(pattern string) string {
	pattern = localeTagRe.ReplaceAllString(pattern, "")
	return literalRe.ReplaceAllString(pattern, "")
}

// isDatePattern reports whether a number format renders a calendar date.
// Time-only patterns (h:mm, mm:ss) are not dates.
func isDatePattern(pattern string) bool {
	if pattern == "" {
		return false
	}
	p := strings.ToLower(stripLiterals(pattern))
	if strings.ContainsAny(p, "yd") {
		return true
	}
	return strings.Contains(p, "m") && !strings.ContainsAny(p, "hs")
}

// currencySymbol returns the currency symbol used by a number format pattern, or "".
func currencySymbol(pattern string) string {
	p := localeTagRe.ReplaceAllString(pattern, "")
	best, bestIdx := "", -1
	for _, sym := range []string{"$", "€", "£", "¥"} {
		if idx := strings.Index(p, sym); idx >= 0 && (bestIdx < 0 || idx < bestIdx) {
			best, bestIdx = sym, idx
		}
	}
	return best
}
