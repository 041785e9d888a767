package models

// FileInfo summarizes a spreadsheet file.
type FileInfo struct {
	// Name is the file name (no path).
	Name string `json:"name"`
	// SizeMB is the file size in megabytes (bytes / 1,024,000).
	SizeMB float64 `json:"size_mb"`
	// Sheets lists sheet names in workbook order.
	Sheets []string `json:"sheets"`
	// Sheet is set when a single sheet was inspected.
	Sheet *SheetInfo `json:"sheet,omitempty"`
}

// SheetInfo describes one inspected sheet.
type SheetInfo struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Rows is the grid row count.
	Rows int `json:"rows"`
	// Cols is the grid column count.
	Cols int `json:"cols"`
	// Corners holds the table corners, when requested.
	Corners []TableCorner `json:"corners,omitempty"`
}
