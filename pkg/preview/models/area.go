package models

// Area represents cell coordinate bounds within a worksheet.
type Area struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Contains reports whether the area fits within rows 1..maxRows and columns 1..maxCols.
func (a Area) Contains(maxRows, maxCols int) bool {
	return a.R2 <= maxRows && a.C2 <= maxCols
}
