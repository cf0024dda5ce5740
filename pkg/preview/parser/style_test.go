package parser

import (
	"testing"

	"github.com/ukaji3/sheetpreview-go/pkg/preview/models"
)

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"FF14406B", "#14406B"},
		{"ff0000ff", "#0000FF"},
		{"D9D9D9", "#D9D9D9"},
		{"#FF112233", "#112233"},
		{"", ""},
		{"XYZ", ""},
		{"FFGG0000", ""},
	}
	for _, tt := range tests {
		if got := normalizeColor(tt.input); got != tt.expected {
			t.Errorf("normalizeColor(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestExtractStyle(t *testing.T) {
	cell := models.RawCell{
		Fill:      &models.Fill{Pattern: "solid", FgColor: "FF14406B"},
		Font:      &models.Font{Bold: true, SizePt: 12, Color: "FFFFFFFF"},
		Alignment: &models.Alignment{Horizontal: "center"},
	}
	st := ExtractStyle(cell)
	if st.Background != "#14406B" {
		t.Errorf("Background = %q, expected #14406B", st.Background)
	}
	if st.Color != "#FFFFFF" {
		t.Errorf("Color = %q, expected #FFFFFF", st.Color)
	}
	if !st.Bold {
		t.Error("expected bold")
	}
	if st.FontSizePx == nil || *st.FontSizePx != 9 {
		t.Errorf("FontSizePx = %v, expected 9", st.FontSizePx)
	}
	if st.Align != "center" {
		t.Errorf("Align = %q, expected center", st.Align)
	}
}

func TestExtractStyle_Missing(t *testing.T) {
	st := ExtractStyle(models.RawCell{})
	if st != (models.CellStyle{}) {
		t.Errorf("expected empty style, got %+v", st)
	}
}

func TestExtractStyle_IgnoresNonSolidFill(t *testing.T) {
	st := ExtractStyle(models.RawCell{Fill: &models.Fill{Pattern: "gray125", FgColor: "FF14406B"}})
	if st.Background != "" {
		t.Errorf("expected no background for gray125 fill, got %q", st.Background)
	}
}

func TestExtractStyle_Alignment(t *testing.T) {
	tests := []struct {
		horizontal string
		expected   string
	}{
		{"left", "left"},
		{"right", "right"},
		{"justify", "justify"},
		{"general", ""},
		{"centerContinuous", ""},
	}
	for _, tt := range tests {
		st := ExtractStyle(models.RawCell{Alignment: &models.Alignment{Horizontal: tt.horizontal}})
		if st.Align != tt.expected {
			t.Errorf("horizontal %q: Align = %q, expected %q", tt.horizontal, st.Align, tt.expected)
		}
	}
}

func TestStyleToCSS_Order(t *testing.T) {
	px := 8
	st := models.CellStyle{
		Background: "#14406B",
		Color:      "#FFFFFF",
		FontSizePx: &px,
		Align:      "right",
	}
	expected := "background-color:#14406B;color:#FFFFFF;font-size:8px;text-align:right;"
	if got := styleToCSS(st); got != expected {
		t.Errorf("styleToCSS = %q, expected %q", got, expected)
	}
	if got := styleToCSS(models.CellStyle{Bold: true}); got != "" {
		t.Errorf("expected empty css, got %q", got)
	}
}
