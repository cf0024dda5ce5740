package parser

import "strconv"

// ColumnLetter converts a 1-indexed column number to spreadsheet letters:
// 1 -> "A", 26 -> "Z", 27 -> "AA". Non-positive input yields "".
func ColumnLetter(col int) string {
	var buf [8]byte
	i := len(buf)
	for col > 0 {
		col--
		i--
		buf[i] = byte('A' + col%26)
		col /= 26
	}
	return string(buf[i:])
}

// CellRef builds an A1-style reference from 1-indexed coordinates.
func CellRef(col, row int) string {
	return ColumnLetter(col) + strconv.Itoa(row)
}
