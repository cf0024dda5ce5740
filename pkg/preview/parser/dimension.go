package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/sheetpreview-go/pkg/preview/models"
	"github.com/xuri/excelize/v2"
)

// parseRangeToArea parses a range string like $A$1:$D$10 (or a single cell
// reference) into an Area.
func parseRangeToArea(rangeStr string) (models.Area, bool) {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(strings.TrimSpace(rangeStr), "$", "")
	if rangeStr == "" {
		return models.Area{}, false
	}

	from, to, found := strings.Cut(rangeStr, ":")
	if !found {
		to = from
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(from)
	if err != nil {
		return models.Area{}, false
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(to)
	if err != nil {
		return models.Area{}, false
	}

	return models.Area{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, true
}

// formatArea renders an Area in A1:B2 notation.
func formatArea(a models.Area) string {
	from, to := CellRef(a.C1, a.R1), CellRef(a.C2, a.R2)
	if from == to {
		return from
	}
	return fmt.Sprintf("%s:%s", from, to)
}

// findDataBounds finds the bounding box of non-empty cells (0-based).
// minRow is -1 when every cell is empty.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
