package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/ukaji3/sheetpreview-go/pkg/preview/models"
)

// FallbackCompany is used when neither the document properties nor the
// header cells provide a usable label.
const FallbackCompany = "Spreadsheet"

// companyProbes are the (col, row) header cells probed for a label, in order: A1, B1, A2, B2.
var companyProbes = [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}}

// ExtractMetadata derives sheet names and a company label from a workbook.
func ExtractMetadata(wb Workbook) models.Metadata {
	names := wb.SheetNames()
	md := models.Metadata{
		SheetNames:  names,
		TotalSheets: len(names),
		Company:     companyLabel(wb, names),
	}
	if md.SheetNames == nil {
		md.SheetNames = []string{}
	}
	return md
}

func companyLabel(wb Workbook, names []string) string {
	if company := strings.TrimSpace(wb.Company()); company != "" {
		return company
	}
	if len(names) == 0 {
		return FallbackCompany
	}
	ws, err := wb.Sheet(names[0])
	if err != nil {
		return FallbackCompany
	}
	for _, probe := range companyProbes {
		cell, err := ws.Cell(probe[0], probe[1])
		if err != nil {
			continue
		}
		text := cell.Display
		if text == "" {
			text = cell.Value
		}
		text = strings.TrimSpace(text)
		if n := utf8.RuneCountInString(text); n > 2 && n < 100 {
			return text
		}
	}
	return FallbackCompany
}
