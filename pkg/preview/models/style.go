package models

// CellStyle is the normalized style of a rendered cell.
// Empty strings and nil pointers mean "inherit default".
type CellStyle struct {
	// Background is the fill color as #RRGGBB.
	Background string `json:"background,omitempty"`
	// Color is the font color as #RRGGBB.
	Color string `json:"color,omitempty"`
	// Bold is the font's bold flag.
	Bold bool `json:"bold,omitempty"`
	// FontSizePx is the font size in display pixels (nil if not set).
	FontSizePx *int `json:"font_size_px,omitempty"`
	// Align is the horizontal alignment: left, center, right or justify.
	Align string `json:"align,omitempty"`
}

// SemanticRole classifies what a cell is for in the preview.
type SemanticRole string

const (
	RoleStandard SemanticRole = "standard"
	RoleHeader   SemanticRole = "header"
	RoleDateline SemanticRole = "dateline"
	RoleInput    SemanticRole = "input"
	RoleLink     SemanticRole = "link"
	RoleError    SemanticRole = "error"
)
