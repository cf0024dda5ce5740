package parser

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/ukaji3/sheetpreview-go/pkg/preview/models"
	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates the requested worksheet does not exist.
var ErrSheetNotFound = errors.New("worksheet not found")

// ErrInvalidFormat indicates the input bytes are not a readable workbook.
var ErrInvalidFormat = errors.New("invalid workbook format")

// Workbook is the read-only workbook view the renderer works against.
type Workbook interface {
	// SheetNames lists worksheet names in workbook order.
	SheetNames() []string
	// Sheet returns the named worksheet or an error wrapping ErrSheetNotFound.
	Sheet(name string) (Worksheet, error)
	// Company returns the company document property, or "".
	Company() string
	// Date1904 reports whether date serials use the 1904 epoch.
	Date1904() bool
}

// Worksheet is a single named grid of cells.
type Worksheet interface {
	Name() string
	// Dimension returns the used range of the sheet. ok is false for sheets without data.
	Dimension() (area models.Area, ok bool)
	// Cell reads the cell at 1-indexed (col, row).
	Cell(col, row int) (models.RawCell, error)
}

// fillPatterns follows the pattern index order used by excelize styles.
var fillPatterns = []string{
	"none", "solid", "mediumGray", "darkGray", "lightGray", "darkHorizontal",
	"darkVertical", "darkDown", "darkUp", "darkGrid", "darkTrellis",
	"lightHorizontal", "lightVertical", "lightDown", "lightUp", "lightGrid",
	"lightTrellis", "gray125", "gray0625",
}

// ExcelizeWorkbook adapts an excelize file to Workbook.
type ExcelizeWorkbook struct {
	file   *excelize.File
	styles map[int]*excelize.Style
}

// OpenWorkbook parses workbook bytes from r.
func OpenWorkbook(r io.Reader) (*ExcelizeWorkbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return NewExcelizeWorkbook(f), nil
}

// NewExcelizeWorkbook wraps an already opened excelize file.
func NewExcelizeWorkbook(f *excelize.File) *ExcelizeWorkbook {
	return &ExcelizeWorkbook{
		file:   f,
		styles: make(map[int]*excelize.Style),
	}
}

// Close releases the underlying file.
func (w *ExcelizeWorkbook) Close() error {
	return w.file.Close()
}

// SheetNames lists worksheet names in workbook order.
func (w *ExcelizeWorkbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// Sheet returns the named worksheet.
func (w *ExcelizeWorkbook) Sheet(name string) (Worksheet, error) {
	idx, err := w.file.GetSheetIndex(name)
	if err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}
	// Lookups ignore case; keep the workbook's own spelling.
	return &excelizeSheet{wb: w, name: w.file.GetSheetName(idx)}, nil
}

// Company returns the Company application property.
func (w *ExcelizeWorkbook) Company() string {
	props, err := w.file.GetAppProps()
	if err != nil || props == nil {
		return ""
	}
	return props.Company
}

// Date1904 reports whether the workbook uses the 1904 date system.
func (w *ExcelizeWorkbook) Date1904() bool {
	props, err := w.file.GetWorkbookProps()
	if err != nil {
		return false
	}
	return props.Date1904 != nil && *props.Date1904
}

func (w *ExcelizeWorkbook) style(id int) (*excelize.Style, error) {
	if st, ok := w.styles[id]; ok {
		return st, nil
	}
	st, err := w.file.GetStyle(id)
	if err != nil {
		return nil, err
	}
	w.styles[id] = st
	return st, nil
}

type excelizeSheet struct {
	wb   *ExcelizeWorkbook
	name string
}

func (s *excelizeSheet) Name() string { return s.name }

func (s *excelizeSheet) Dimension() (models.Area, bool) {
	f := s.wb.file
	// Writers that never update the dimension record leave it at "A1".
	if ref, err := f.GetSheetDimension(s.name); err == nil {
		if area, ok := parseRangeToArea(ref); ok && area != (models.Area{R1: 1, C1: 1, R2: 1, C2: 1}) {
			return area, true
		}
	}

	// No usable dimension record: scan the populated cells instead.
	rows, err := f.GetRows(s.name)
	if err != nil {
		return models.Area{}, false
	}
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return models.Area{}, false
	}
	return models.Area{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}, true
}

func (s *excelizeSheet) Cell(col, row int) (models.RawCell, error) {
	f := s.wb.file
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return models.RawCell{}, err
	}
	cell := models.RawCell{Ref: ref}

	cellType, err := f.GetCellType(s.name, ref)
	if err != nil {
		return cell, fmt.Errorf("reading type of %s: %w", ref, err)
	}
	if cell.Value, err = f.GetCellValue(s.name, ref, excelize.Options{RawCellValue: true}); err != nil {
		return cell, fmt.Errorf("reading value of %s: %w", ref, err)
	}
	if cell.Display, err = f.GetCellValue(s.name, ref); err != nil {
		return cell, fmt.Errorf("reading text of %s: %w", ref, err)
	}
	if cell.Formula, err = f.GetCellFormula(s.name, ref); err != nil {
		return cell, fmt.Errorf("reading formula of %s: %w", ref, err)
	}

	styleID, err := f.GetCellStyle(s.name, ref)
	if err != nil {
		return cell, fmt.Errorf("reading style of %s: %w", ref, err)
	}
	st, err := s.wb.style(styleID)
	if err != nil {
		return cell, fmt.Errorf("resolving style %d of %s: %w", styleID, ref, err)
	}
	if styleID == 0 {
		// The default format carries no explicit formatting.
		cell.NumFmt = numFmtPattern(st.NumFmt, st.CustomNumFmt)
	} else {
		applyStyle(&cell, st, s.wb.defaultFontSize())
	}
	cell.Type = valueType(cellType, cell.Value, cell.NumFmt)

	return cell, nil
}

// defaultFontSize returns the size of the workbook's default font, or zero
// when it cannot be resolved.
func (w *ExcelizeWorkbook) defaultFontSize() float64 {
	st, err := w.style(0)
	if err != nil || st == nil || st.Font == nil {
		return 0
	}
	return st.Font.Size
}

// applyStyle copies the preview-relevant parts of an excelize style onto cell.
// A font size equal to defaultSize is inherited, not explicit.
func applyStyle(cell *models.RawCell, st *excelize.Style, defaultSize float64) {
	if st == nil {
		return
	}
	cell.NumFmt = numFmtPattern(st.NumFmt, st.CustomNumFmt)

	if st.Fill.Type == "pattern" && len(st.Fill.Color) > 0 {
		fill := &models.Fill{FgColor: st.Fill.Color[0]}
		if st.Fill.Pattern >= 0 && st.Fill.Pattern < len(fillPatterns) {
			fill.Pattern = fillPatterns[st.Fill.Pattern]
		}
		cell.Fill = fill
	}
	if st.Font != nil {
		cell.Font = &models.Font{
			Bold:  st.Font.Bold,
			Color: st.Font.Color,
		}
		if st.Font.Size != defaultSize {
			cell.Font.SizePt = st.Font.Size
		}
	}
	if st.Alignment != nil && st.Alignment.Horizontal != "" {
		cell.Alignment = &models.Alignment{Horizontal: st.Alignment.Horizontal}
	}
}

// valueType maps an excelize cell type and raw value to a ValueType.
func valueType(t excelize.CellType, raw, pattern string) models.ValueType {
	if raw == "" {
		return models.ValueEmpty
	}
	switch t {
	case excelize.CellTypeError:
		return models.ValueError
	case excelize.CellTypeBool:
		return models.ValueBool
	case excelize.CellTypeDate:
		return models.ValueDate
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return models.ValueString
	}

	// Numbers are usually stored without an explicit type.
	if _, err := strconv.ParseFloat(raw, 64); err != nil {
		return models.ValueString
	}
	if isDatePattern(pattern) {
		return models.ValueDate
	}
	return models.ValueNumber
}
