package models

import "github.com/ukaji3/eparse-go/pkg/eparse/grid"

// ParsedTable is a resolved table together with where it was found.
type ParsedTable struct {
	// Table is the bounding-box view. It borrows the sheet grid.
	Table grid.Table `json:"-"`
	// ExcelRC is the reference of the corner the table was found at.
	ExcelRC string `json:"excel_RC"`
	// Name is the corner's anchor text.
	Name string `json:"name"`
	// Sheet is the sheet the table belongs to.
	Sheet string `json:"sheet"`
	// File is the base name of the source file.
	File string `json:"file,omitempty"`
}

// Shape returns the table's (rows, cols).
func (p ParsedTable) Shape() (int, int) {
	return p.Table.Shape()
}

// Metadata returns the record metadata for serializing this table.
func (p ParsedTable) Metadata() Metadata {
	return Metadata{Name: p.Name, Sheet: p.Sheet, FName: p.File}
}
