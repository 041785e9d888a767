package grid

import (
	"math"
	"testing"
	"time"
)

func TestAddressString(t *testing.T) {
	tests := []struct {
		row      int
		col      int
		expected string
	}{
		{0, 0, "A1"},
		{2, 2, "C3"},
		{102, 2, "C103"},
		{0, 25, "Z1"},
		{0, 26, "AA1"},
		{9, 27, "AB10"},
		{0, 16383, "XFD1"},
		{0, 16384, "XFE1"},
	}

	for _, tt := range tests {
		result := Address{Row: tt.row, Col: tt.col}.String()
		if result != tt.expected {
			t.Errorf("Address{%d, %d}.String() = %q, expected %q", tt.row, tt.col, result, tt.expected)
		}
	}
}

func TestColumnName(t *testing.T) {
	tests := []struct {
		col      int
		expected string
	}{
		{0, "A"},
		{25, "Z"},
		{26, "AA"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
	}

	for _, tt := range tests {
		if result := ColumnName(tt.col); result != tt.expected {
			t.Errorf("ColumnName(%d) = %q, expected %q", tt.col, result, tt.expected)
		}
	}
}

func TestCellConstructors(t *testing.T) {
	ts := time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		cell  Cell
		kind  Kind
		value interface{}
		str   string
	}{
		{"empty", EmptyCell, Empty, nil, ""},
		{"blank text", TextCell(""), Empty, nil, ""},
		{"text", TextCell("ID"), Text, "ID", "ID"},
		{"integer", NumberCell(42), Number, int64(42), "42"},
		{"decimal", NumberCell(200.5), Number, 200.5, "200.5"},
		{"nan", NumberCell(math.NaN()), Empty, nil, ""},
		{"bool", BoolCell(true), Boolean, true, "TRUE"},
		{"date", TimeCell(ts), Timestamp, ts, "2022-03-01"},
		{"zero time", TimeCell(time.Time{}), Empty, nil, ""},
	}

	for _, tt := range tests {
		if tt.cell.Kind() != tt.kind {
			t.Errorf("%s: Kind() = %v, expected %v", tt.name, tt.cell.Kind(), tt.kind)
		}
		if tt.cell.IsEmpty() != (tt.kind == Empty) {
			t.Errorf("%s: IsEmpty() = %v", tt.name, tt.cell.IsEmpty())
		}
		if v := tt.cell.Value(); v != tt.value {
			t.Errorf("%s: Value() = %v (type: %T), expected %v (type: %T)", tt.name, v, v, tt.value, tt.value)
		}
		if s := tt.cell.String(); s != tt.str {
			t.Errorf("%s: String() = %q, expected %q", tt.name, s, tt.str)
		}
	}
}

func TestKindString(t *testing.T) {
	if Number.String() != "number" {
		t.Errorf("Number.String() = %q", Number.String())
	}
	if Kind(99).String() != "kind(99)" {
		t.Errorf("Kind(99).String() = %q", Kind(99).String())
	}
}

func TestMatrixPadsRaggedRows(t *testing.T) {
	m := FromStrings([][]string{
		{"a"},
		{"b", "c", "d"},
	})

	if m.Rows() != 2 || m.Cols() != 3 {
		t.Fatalf("Expected 2x3, got %dx%d", m.Rows(), m.Cols())
	}
	if !m.At(0, 2).IsEmpty() {
		t.Errorf("Expected padded cell to be empty, got %v", m.At(0, 2))
	}
	if m.At(1, 2).String() != "d" {
		t.Errorf("Expected 'd', got %q", m.At(1, 2).String())
	}
}

func TestMatrixOutOfRange(t *testing.T) {
	m := FromStrings([][]string{{"a", "b"}})

	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 2}, {100, 100}} {
		if !m.At(rc[0], rc[1]).IsEmpty() {
			t.Errorf("At(%d, %d) expected empty", rc[0], rc[1])
		}
	}
}

func TestNewEmptyMatrixPanicsOnNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for negative dimensions")
		}
	}()
	NewEmptyMatrix(-1, 2)
}

func TestTableView(t *testing.T) {
	m := FromStrings([][]string{
		{"", "", "", ""},
		{"", "ID", "Name", ""},
		{"", "1", "Ann", ""},
		{"", "2", "Bob", "x"},
	})

	tbl := NewTable(m, 1, 1, 4, 3)

	if r, c := tbl.Shape(); r != 3 || c != 2 {
		t.Fatalf("Expected shape (3, 2), got (%d, %d)", r, c)
	}
	if tbl.At(0, 0).String() != "ID" {
		t.Errorf("Expected 'ID', got %q", tbl.At(0, 0).String())
	}
	if tbl.At(2, 1).String() != "Bob" {
		t.Errorf("Expected 'Bob', got %q", tbl.At(2, 1).String())
	}
	// (3, 3) is filled in the grid but outside the box
	if !tbl.At(2, 2).IsEmpty() {
		t.Errorf("Expected cell outside the box to be empty")
	}
	if tbl.Anchor().String() != "B2" {
		t.Errorf("Expected anchor B2, got %s", tbl.Anchor())
	}
	if tbl.Range() != "B2:C4" {
		t.Errorf("Expected range B2:C4, got %s", tbl.Range())
	}
}

func TestNewTablePanicsOnDegenerateBox(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for degenerate box")
		}
	}()
	NewTable(NewEmptyMatrix(2, 2), 1, 1, 1, 2)
}
