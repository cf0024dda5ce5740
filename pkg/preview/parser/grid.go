package parser

import (
	"context"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetpreview-go/pkg/preview/models"
)

// Limits bounds the window of a worksheet that is rendered.
type Limits struct {
	MaxRows int
	MaxCols int
}

// Grid is the output of RenderGrid.
type Grid struct {
	// SheetName is the worksheet that was rendered.
	SheetName string
	HTML      string
	// CellCount counts rendered grid positions, empty ones included.
	CellCount   int
	HasFormulas bool
	// Dimension is the used range of the worksheet in A1 notation ("" if empty).
	Dimension string
	// Truncated is true when the used range extends past the limits.
	Truncated bool
}

// RenderGrid renders a bounded window of a worksheet as an HTML table.
// An empty sheetName selects the first worksheet. Rows past limits.MaxRows and
// columns past limits.MaxCols are never read.
func RenderGrid(ctx context.Context, wb Workbook, sheetName string, limits Limits, fm *Formatter) (Grid, error) {
	if sheetName == "" {
		names := wb.SheetNames()
		if len(names) == 0 {
			return Grid{}, fmt.Errorf("%w: workbook has no worksheets", ErrSheetNotFound)
		}
		sheetName = names[0]
	}
	ws, err := wb.Sheet(sheetName)
	if err != nil {
		return Grid{}, err
	}

	grid := Grid{SheetName: ws.Name()}
	rowCount := 0
	if area, ok := ws.Dimension(); ok {
		grid.Dimension = formatArea(area)
		grid.Truncated = !area.Contains(limits.MaxRows, limits.MaxCols)
		rowCount = min(area.R2, limits.MaxRows)
	}
	colCount := max(limits.MaxCols, 0)

	var b strings.Builder
	fmt.Fprintf(&b, "<table class=\"sheet-preview\" data-sheet=\"%s\">\n", html.EscapeString(grid.SheetName))

	// Column header row
	b.WriteString("<thead><tr><th class=\"corner\"></th>")
	for col := 1; col <= colCount; col++ {
		b.WriteString("<th class=\"col-header\">" + ColumnLetter(col) + "</th>")
	}
	b.WriteString("</tr></thead>\n<tbody>\n")

	for row := 1; row <= rowCount; row++ {
		if err := ctx.Err(); err != nil {
			return Grid{}, err
		}
		b.WriteString("<tr><th class=\"row-header\">" + strconv.Itoa(row) + "</th>")
		for col := 1; col <= colCount; col++ {
			cell, err := ws.Cell(col, row)
			if err != nil {
				return Grid{}, fmt.Errorf("cell %s: %w", CellRef(col, row), err)
			}
			if cell.HasFormula() {
				grid.HasFormulas = true
			}
			writeCell(&b, cell, fm)
			grid.CellCount++
		}
		b.WriteString("</tr>\n")
	}

	b.WriteString("</tbody>\n</table>\n")
	grid.HTML = b.String()
	return grid, nil
}

// writeCell emits the <td> markup for one grid position.
func writeCell(b *strings.Builder, cell models.RawCell, fm *Formatter) {
	style := ExtractStyle(cell)
	role := Classify(style, cell)
	value := fm.Format(cell)

	b.WriteString(`<td class="cell`)
	if role != models.RoleStandard {
		b.WriteString(" " + string(role))
	}
	b.WriteByte('"')
	if css := styleToCSS(style); css != "" {
		b.WriteString(` style="` + css + `"`)
	}
	if cell.HasFormula() {
		b.WriteString(` data-f="` + html.EscapeString(cell.Formula) + `"`)
	}
	b.WriteByte('>')
	b.WriteString(value)
	b.WriteString("</td>")
}
