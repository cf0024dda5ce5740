package parser

import (
	"fmt"

	"github.com/ukaji3/sheetpreview-go/pkg/preview/models"
)

type fakeSheet struct {
	name    string
	cells   map[string]models.RawCell
	area    *models.Area
	failRef string
	reads   int
}

func (s *fakeSheet) Name() string { return s.name }

func (s *fakeSheet) Dimension() (models.Area, bool) {
	if s.area == nil {
		return models.Area{}, false
	}
	return *s.area, true
}

func (s *fakeSheet) Cell(col, row int) (models.RawCell, error) {
	s.reads++
	ref := CellRef(col, row)
	if ref == s.failRef {
		return models.RawCell{}, fmt.Errorf("malformed cell")
	}
	cell, ok := s.cells[ref]
	if !ok {
		return models.RawCell{Ref: ref, Type: models.ValueEmpty}, nil
	}
	cell.Ref = ref
	return cell, nil
}

type fakeWorkbook struct {
	sheets  []*fakeSheet
	company string
}

func (w *fakeWorkbook) SheetNames() []string {
	var names []string
	for _, s := range w.sheets {
		names = append(names, s.name)
	}
	return names
}

func (w *fakeWorkbook) Sheet(name string) (Worksheet, error) {
	for _, s := range w.sheets {
		if s.name == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
}

func (w *fakeWorkbook) Company() string { return w.company }

func (w *fakeWorkbook) Date1904() bool { return false }

// filledSheet returns a sheet whose rows x cols cells all hold text.
func filledSheet(name string, rows, cols int) *fakeSheet {
	s := &fakeSheet{
		name:  name,
		cells: make(map[string]models.RawCell),
		area:  &models.Area{R1: 1, C1: 1, R2: rows, C2: cols},
	}
	for r := 1; r <= rows; r++ {
		for c := 1; c <= cols; c++ {
			ref := CellRef(c, r)
			s.cells[ref] = models.RawCell{Value: ref, Display: ref, Type: models.ValueString}
		}
	}
	return s
}
