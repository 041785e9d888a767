package models

import (
	"fmt"
	"strconv"
	"time"
)

// Metadata is caller-supplied context copied into every SerializedCell.
// Empty fields are omitted from the records.
type Metadata struct {
	// Name is the table name.
	Name string
	// Sheet is the sheet name.
	Sheet string
	// FName is the source file name.
	FName string
	// Timestamp is an optional extraction time.
	Timestamp *time.Time
}

// SerializedCell is one flattened, header-annotated cell of a table.
type SerializedCell struct {
	// Row is the row offset within the table (0-based).
	Row int `json:"row"`
	// Column is the column offset within the table (0-based).
	Column int `json:"column"`
	// Value is the native cell value: nil, string, int64, float64, bool or time.Time.
	Value interface{} `json:"value"`
	// Type is the cell's value kind name.
	Type string `json:"type"`
	// CHeader is the table's row-0 value in this column.
	CHeader string `json:"c_header"`
	// RHeader is the table's column-0 value in this row.
	RHeader string `json:"r_header"`
	// ExcelRC is the absolute spreadsheet reference of the cell.
	ExcelRC string `json:"excel_RC"`
	// Name is the table name.
	Name string `json:"name,omitempty"`
	// Sheet is the sheet name.
	Sheet string `json:"sheet,omitempty"`
	// FName is the source file name.
	FName string `json:"f_name,omitempty"`
	// Timestamp is the extraction time, if supplied.
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// ValueString renders a record value as text. nil renders as "".
func ValueString(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		if x {
			return "TRUE"
		}
		return "FALSE"
	case time.Time:
		return x.Format("2006-01-02 15:04:05")
	}
	return fmt.Sprint(v)
}
