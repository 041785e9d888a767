package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/ukaji3/eparse-go/pkg/eparse/models"
)

const htmlDoc = `<html><body>
<p>intro</p>
<table>
  <tr><th>ID</th><th>Name</th><th>Qty</th></tr>
  <tr><td>1</td><td>Ann</td><td></td></tr>
  <tr><td rowspan="2">2</td><td colspan="2">Bob</td></tr>
  <tr><td>Cid</td><td>5</td></tr>
</table>
<table><tbody><tr><td>x</td></tr></tbody></table>
</body></html>`

func TestLoadHTML(t *testing.T) {
	grids, err := LoadHTML(strings.NewReader(htmlDoc))
	if err != nil {
		t.Fatalf("LoadHTML failed: %v", err)
	}
	if len(grids) != 2 {
		t.Fatalf("Expected 2 tables, got %d", len(grids))
	}

	g := grids[0]
	if g.Rows() != 4 || g.Cols() != 3 {
		t.Fatalf("Expected 4x3 grid, got %dx%d", g.Rows(), g.Cols())
	}

	tests := []struct {
		row      int
		col      int
		expected string
	}{
		{0, 0, "ID"},
		{1, 1, "Ann"},
		{1, 2, ""},
		{2, 1, "Bob"},
		{2, 2, "Bob"},
		{3, 0, "2"},
		{3, 1, "Cid"},
		{3, 2, "5"},
	}
	for _, tt := range tests {
		if s := g.At(tt.row, tt.col).String(); s != tt.expected {
			t.Errorf("At(%d, %d) = %q, expected %q", tt.row, tt.col, s, tt.expected)
		}
	}
}

func TestLoadHTMLSpanLimits(t *testing.T) {
	tests := []struct {
		doc  string
		rows int
		cols int
	}{
		{`<table><tr><td rowspan="3000000">a</td><td>b</td></tr></table>`, 65534, 2},
		{`<table><tr><td colspan="5000">a</td></tr></table>`, 1, 1000},
		{`<table><tr><td rowspan="0" colspan="-2">a</td><td>b</td></tr></table>`, 1, 2},
	}

	for _, tt := range tests {
		grids, err := LoadHTML(strings.NewReader(tt.doc))
		if err != nil {
			t.Fatalf("LoadHTML(%q) failed: %v", tt.doc, err)
		}
		if g := grids[0]; g.Rows() != tt.rows || g.Cols() != tt.cols {
			t.Errorf("LoadHTML(%q) = %dx%d grid, expected %dx%d", tt.doc, g.Rows(), g.Cols(), tt.rows, tt.cols)
		}
	}
}

func TestLoadHTMLNoTables(t *testing.T) {
	if _, err := LoadHTML(strings.NewReader("<p>nothing</p>")); !errors.Is(err, ErrNoTables) {
		t.Errorf("Expected ErrNoTables, got %v", err)
	}
}

func TestHTMLToRecords(t *testing.T) {
	records, err := HTMLToRecords(strings.NewReader(htmlDoc), models.Metadata{Name: "web"})
	if err != nil {
		t.Fatalf("HTMLToRecords failed: %v", err)
	}
	if len(records) != 4*3 {
		t.Fatalf("Expected 12 records, got %d", len(records))
	}
	if records[4].CHeader != "Name" || records[4].Value != "Ann" || records[4].Name != "web" {
		t.Errorf("Unexpected record: %+v", records[4])
	}
}
