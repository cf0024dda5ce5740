// Package models defines data structures for spreadsheet previews.
package models

// ValueType classifies the value stored in a cell.
type ValueType string

const (
	ValueEmpty  ValueType = "empty"
	ValueString ValueType = "string"
	ValueNumber ValueType = "number"
	ValueBool   ValueType = "bool"
	ValueDate   ValueType = "date"
	ValueError  ValueType = "error"
)

// Fill describes a cell's background fill as stored in the workbook.
type Fill struct {
	// Pattern is the OOXML pattern type name (e.g. "solid", "gray125").
	Pattern string
	// FgColor is the foreground color, ARGB ("FF14406B") or RGB ("14406B").
	FgColor string
}

// Font describes the font attributes relevant for previews.
type Font struct {
	Bold bool
	// SizePt is the font size in points; zero means no explicit size.
	SizePt float64
	// Color is the font color, ARGB or RGB. Empty when not set explicitly.
	Color string
}

// Alignment describes a cell's alignment.
type Alignment struct {
	// Horizontal is the OOXML horizontal alignment (left, center, right, justify, general, ...).
	Horizontal string
}

// RawCell is the reader-level view of one cell before styling and formatting.
type RawCell struct {
	// Ref is the A1-style reference of the cell.
	Ref string
	// Value is the raw stored value (serial number for dates, error code for errors).
	Value string
	// Type is the value type tag.
	Type ValueType
	// Formula is the formula source without the leading '='. Empty if none.
	Formula string
	// Display is the value as rendered by the workbook reader using its number format.
	Display string
	// NumFmt is the number format pattern. Empty for "General".
	NumFmt string

	Fill      *Fill
	Font      *Font
	Alignment *Alignment
}

// HasFormula reports whether the cell carries a formula.
func (c RawCell) HasFormula() bool {
	return c.Formula != ""
}
