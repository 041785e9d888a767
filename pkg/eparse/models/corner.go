// Package models defines data structures for table extraction.
package models

// TableCorner is a candidate top-left anchor of a table.
type TableCorner struct {
	// Row is the anchor row (0-based).
	Row int `json:"row"`
	// Col is the anchor column (0-based).
	Col int `json:"col"`
	// ExcelRC is the spreadsheet reference of the anchor, e.g. "C3".
	ExcelRC string `json:"excel_RC"`
	// Value is the anchor cell's text.
	Value string `json:"value"`
}
