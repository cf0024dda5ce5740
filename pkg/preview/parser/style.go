package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetpreview-go/pkg/preview/models"
)

var hexColorRe = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// ExtractStyle reduces a raw cell's fill, font and alignment to a CellStyle.
// Missing or unusable style information yields zero fields.
func ExtractStyle(cell models.RawCell) models.CellStyle {
	var st models.CellStyle

	if fill := cell.Fill; fill != nil && fill.Pattern == "solid" && fill.FgColor != "" {
		st.Background = normalizeColor(fill.FgColor)
	}

	if font := cell.Font; font != nil {
		st.Bold = font.Bold
		if font.Color != "" {
			st.Color = normalizeColor(font.Color)
		}
		if font.SizePt > 0 {
			px := PointsToPixels(font.SizePt)
			st.FontSizePx = &px
		}
	}

	if align := cell.Alignment; align != nil {
		switch align.Horizontal {
		case "left", "center", "right", "justify":
			st.Align = align.Horizontal
		}
	}

	return st
}

// normalizeColor converts an 8-digit ARGB hex (as used in XLSX) or a 6-digit
// RGB hex to "#RRGGBB". Anything else yields "".
func normalizeColor(hex string) string {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 8 {
		hex = hex[2:]
	}
	if !hexColorRe.MatchString(hex) {
		return ""
	}
	return "#" + strings.ToUpper(hex)
}

// styleToCSS renders the inline style for a cell. Keys are emitted in a fixed
// order: background-color, color, font-size, text-align.
func styleToCSS(st models.CellStyle) string {
	var b strings.Builder
	if st.Background != "" {
		b.WriteString("background-color:" + st.Background + ";")
	}
	if st.Color != "" {
		b.WriteString("color:" + st.Color + ";")
	}
	if st.FontSizePx != nil {
		b.WriteString("font-size:" + strconv.Itoa(*st.FontSizePx) + "px;")
	}
	if st.Align != "" {
		b.WriteString("text-align:" + st.Align + ";")
	}
	return b.String()
}
