package parser

import (
	"strings"

	"github.com/ukaji3/sheetpreview-go/pkg/preview/models"
)

const (
	headerFill   = "#14406B"
	datelineFill = "#D9D9D9"
	inputColor   = "#0000FF"
)

// roleRule pairs a semantic role with the predicate that selects it.
type roleRule struct {
	role  models.SemanticRole
	match func(st models.CellStyle, cell models.RawCell) bool
}

// roleRules are evaluated top to bottom; the first match wins.
var roleRules = []roleRule{
	{models.RoleHeader, func(st models.CellStyle, _ models.RawCell) bool {
		return st.Background == headerFill && st.Bold
	}},
	{models.RoleDateline, func(st models.CellStyle, _ models.RawCell) bool {
		return st.Background == datelineFill
	}},
	{models.RoleInput, func(st models.CellStyle, cell models.RawCell) bool {
		return st.Color == inputColor && !cell.HasFormula()
	}},
	{models.RoleLink, func(_ models.CellStyle, cell models.RawCell) bool {
		return cell.HasFormula() && (strings.Contains(cell.Formula, "!") || strings.Contains(cell.Formula, "HYPERLINK"))
	}},
	{models.RoleError, func(_ models.CellStyle, cell models.RawCell) bool {
		return cell.Type == models.ValueError
	}},
}

// Classify assigns exactly one semantic role to a cell.
func Classify(st models.CellStyle, cell models.RawCell) models.SemanticRole {
	for _, r := range roleRules {
		if r.match(st, cell) {
			return r.role
		}
	}
	return models.RoleStandard
}
