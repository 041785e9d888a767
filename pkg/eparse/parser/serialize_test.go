package parser

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/ukaji3/eparse-go/pkg/eparse/grid"
	"github.com/ukaji3/eparse-go/pkg/eparse/models"
)

func TestSerializeTable(t *testing.T) {
	tbl, err := ParseTable(fixtureGrid(), 2, 2, DefaultTableParams())
	if err != nil {
		t.Fatalf("ParseTable failed: %v", err)
	}

	records := SerializeTable(tbl, models.Metadata{Name: "ID", Sheet: "Sheet1", FName: "book.xlsx"})
	if len(records) != 3*2 {
		t.Fatalf("Expected 6 records, got %d", len(records))
	}

	rec := records[3]
	if rec.Row != 1 || rec.Column != 1 {
		t.Errorf("Expected offset (1, 1), got (%d, %d)", rec.Row, rec.Column)
	}
	if rec.Value != "Ann" {
		t.Errorf("Expected 'Ann', got %v", rec.Value)
	}
	if rec.CHeader != "Name" || rec.RHeader != "1" {
		t.Errorf("Expected headers Name/1, got %s/%s", rec.CHeader, rec.RHeader)
	}
	if rec.ExcelRC != "D4" {
		t.Errorf("Expected D4, got %s", rec.ExcelRC)
	}
	if rec.Type != "text" {
		t.Errorf("Expected type text, got %s", rec.Type)
	}
	if rec.Name != "ID" || rec.Sheet != "Sheet1" || rec.FName != "book.xlsx" {
		t.Errorf("Metadata not copied: %+v", rec)
	}
}

func TestSerializeTableHeaders(t *testing.T) {
	g := grid.FromStrings([][]string{
		{"", "", ""},
		{"", "k", "a", "b"},
		{"", "x", "1", ""},
		{"", "y", "", "2"},
		{"", "", "outside", "outside"},
	})
	tbl := grid.NewTable(g, 1, 1, 4, 4)

	for _, rec := range SerializeTable(tbl, models.Metadata{}) {
		if rec.CHeader != tbl.At(0, rec.Column).String() {
			t.Errorf("(%d, %d): c_header %q, expected %q", rec.Row, rec.Column, rec.CHeader, tbl.At(0, rec.Column).String())
		}
		if rec.RHeader != tbl.At(rec.Row, 0).String() {
			t.Errorf("(%d, %d): r_header %q, expected %q", rec.Row, rec.Column, rec.RHeader, tbl.At(rec.Row, 0).String())
		}
	}
}

func TestSerializeTableValues(t *testing.T) {
	ts := time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)
	g := grid.NewMatrix([][]grid.Cell{
		{grid.TextCell("k"), grid.TextCell("v")},
		{grid.NumberCell(3), grid.NumberCell(2.5)},
		{grid.BoolCell(false), grid.TimeCell(ts)},
		{grid.EmptyCell, grid.TextCell("z")},
	})

	records := SerializeTable(g, models.Metadata{})

	tests := []struct {
		idx   int
		value interface{}
		typ   string
	}{
		{2, int64(3), "number"},
		{3, 2.5, "number"},
		{4, false, "boolean"},
		{5, ts, "timestamp"},
		{6, nil, "empty"},
	}

	for _, tt := range tests {
		rec := records[tt.idx]
		if rec.Value != tt.value {
			t.Errorf("record %d: value %v (type: %T), expected %v (type: %T)", tt.idx, rec.Value, rec.Value, tt.value, tt.value)
		}
		if rec.Type != tt.typ {
			t.Errorf("record %d: type %s, expected %s", tt.idx, rec.Type, tt.typ)
		}
	}
	// a plain grid is its own origin
	if records[5].ExcelRC != "B3" {
		t.Errorf("Expected B3, got %s", records[5].ExcelRC)
	}
}

func TestSerializeTableOmitsAbsentMetadata(t *testing.T) {
	g := grid.FromStrings([][]string{{"a", "b"}, {"c", "d"}})

	data, err := json.Marshal(SerializeTable(g, models.Metadata{Name: "a"})[0])
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	out := string(data)
	for _, key := range []string{`"row"`, `"column"`, `"value"`, `"type"`, `"c_header"`, `"r_header"`, `"excel_RC"`, `"name"`} {
		if !strings.Contains(out, key) {
			t.Errorf("Expected %s in %s", key, out)
		}
	}
	for _, key := range []string{`"sheet"`, `"f_name"`, `"timestamp"`} {
		if strings.Contains(out, key) {
			t.Errorf("Did not expect %s in %s", key, out)
		}
	}
}

func TestNormalizeRecord(t *testing.T) {
	ts := time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)
	rec := NormalizeRecord(map[string]interface{}{
		"row":       int64(2),
		"column":    "3",
		"value":     1.5,
		"type":      "number",
		"c_header":  "Date",
		"excel_RC":  "D4",
		"name":      "t",
		"timestamp": ts,
		"foo":       "bar",
	})

	if rec.Row != 2 || rec.Column != 3 {
		t.Errorf("Expected (2, 3), got (%d, %d)", rec.Row, rec.Column)
	}
	if rec.Value != "1.5" {
		t.Errorf("Expected value '1.5', got %v", rec.Value)
	}
	if rec.CHeader != "Date" || rec.ExcelRC != "D4" || rec.Name != "t" {
		t.Errorf("Unexpected record: %+v", rec)
	}
	if rec.Timestamp == nil || !rec.Timestamp.Equal(ts) {
		t.Errorf("Expected timestamp %v, got %v", ts, rec.Timestamp)
	}

	if NormalizeRecord(map[string]interface{}{"timestamp": "2023-01-02"}).Timestamp != nil {
		t.Error("Expected non-time timestamp to be dropped")
	}
}
