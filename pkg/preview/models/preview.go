package models

// Metadata describes the workbook a preview was rendered from.
type Metadata struct {
	// SheetNames lists all worksheet names in workbook order.
	SheetNames []string `json:"sheetNames"`
	// Company is the document title/company label.
	Company string `json:"company"`
	// TotalSheets is the number of worksheets.
	TotalSheets int `json:"totalSheets"`
	// SheetName is the worksheet that was rendered.
	SheetName string `json:"sheetName"`
	// Dimension is the used range of the rendered worksheet (e.g. "A1:E5").
	Dimension string `json:"dimension,omitempty"`
}

// PreviewResult is a rendered preview. It is immutable once produced.
type PreviewResult struct {
	HTML        string   `json:"html"`
	Metadata    Metadata `json:"metadata"`
	CellCount   int      `json:"cellCount"`
	HasFormulas bool     `json:"hasFormulas"`
	// Truncated is true when the worksheet extends past the rendered window.
	Truncated bool `json:"truncated"`
}

// SizeBytes returns the size the preview occupies in a cache.
func (r PreviewResult) SizeBytes() int {
	return len(r.HTML)
}
