package parser

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ukaji3/eparse-go/pkg/eparse/grid"
	"github.com/xuri/excelize/v2"
)

func TestLoadSheet(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	// Set some test data
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "C2", true)
	f.SetCellValue(sheetName, "D2", time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC))
	f.SetCellValue(sheetName, "A3", "Text")
	f.SetCellValue(sheetName, "B3", "007")

	// Save to temp file
	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	// Open and load
	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	g, err := LoadSheet(f2, sheetName)
	if err != nil {
		t.Fatalf("LoadSheet failed: %v", err)
	}

	if g.Rows() != 3 || g.Cols() != 4 {
		t.Fatalf("Expected 3x4 grid, got %dx%d", g.Rows(), g.Cols())
	}

	tests := []struct {
		row   int
		col   int
		kind  grid.Kind
		value interface{}
	}{
		{0, 0, grid.Text, "Header1"},
		{1, 0, grid.Number, int64(100)},
		{1, 1, grid.Number, 200.5},
		{1, 2, grid.Boolean, true},
		{2, 0, grid.Text, "Text"},
		{2, 1, grid.Text, "007"},
		{2, 2, grid.Empty, nil},
	}

	for _, tt := range tests {
		c := g.At(tt.row, tt.col)
		if c.Kind() != tt.kind {
			t.Errorf("At(%d, %d).Kind() = %v, expected %v", tt.row, tt.col, c.Kind(), tt.kind)
		}
		if c.Value() != tt.value {
			t.Errorf("At(%d, %d).Value() = %v (type: %T), expected %v (type: %T)",
				tt.row, tt.col, c.Value(), c.Value(), tt.value, tt.value)
		}
	}

	date := g.At(1, 3)
	if date.Kind() != grid.Timestamp {
		t.Fatalf("Expected timestamp, got %v", date.Kind())
	}
	ts := date.Value().(time.Time)
	if ts.Year() != 2022 || ts.Month() != time.March || ts.Day() != 1 {
		t.Errorf("Expected 2022-03-01, got %v", ts)
	}
}

func TestLoadSheetMissing(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := LoadSheet(f, "nope"); err == nil {
		t.Error("Expected error for missing sheet")
	}
}

func TestIsDateFormatCode(t *testing.T) {
	tests := []struct {
		code     string
		expected bool
	}{
		{"yyyy-mm-dd", true},
		{"d/m/yy h:mm", true},
		{"[$-409]mmmm d, yyyy", true},
		{"hh:mm:ss", true},
		{"General", false},
		{"@", false},
		{"0.00", false},
		{"0.00E+00", false},
		{"#,##0 \"days\"", false},
		{"[Red]0.00", false},
		{"0\\d", false},
	}

	for _, tt := range tests {
		if result := isDateFormatCode(tt.code); result != tt.expected {
			t.Errorf("isDateFormatCode(%q) = %v, expected %v", tt.code, result, tt.expected)
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestInferCell(t *testing.T) {
	tests := []struct {
		input string
		kind  grid.Kind
	}{
		{" 42 ", grid.Number},
		{"4.5", grid.Number},
		{"abc", grid.Text},
		{"", grid.Empty},
		{"   ", grid.Empty},
	}

	for _, tt := range tests {
		if k := inferCell(tt.input).Kind(); k != tt.kind {
			t.Errorf("inferCell(%q).Kind() = %v, expected %v", tt.input, k, tt.kind)
		}
	}
}
