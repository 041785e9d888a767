package models

import (
	"time"

	"gorm.io/gorm"
)

// ExcelParse is the persisted form of a SerializedCell. Every value is
// stored as text.
type ExcelParse struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Row       int       `gorm:"column:row;not null" json:"row"`
	Column    int       `gorm:"column:column;not null" json:"column"`
	Value     string    `gorm:"column:value;size:255" json:"value"`
	Type      string    `gorm:"column:type;size:255" json:"type"`
	CHeader   string    `gorm:"column:c_header;size:255;index:idx_excelparse_c_header" json:"c_header"`
	RHeader   string    `gorm:"column:r_header;size:255;index:idx_excelparse_r_header" json:"r_header"`
	ExcelRC   string    `gorm:"column:excel_RC;size:255;index:idx_excelparse_excel_rc" json:"excel_RC"`
	Name      string    `gorm:"column:name;size:255;index:idx_excelparse_name;index:excelparse_f_name_sheet_name,priority:3" json:"name"`
	Sheet     string    `gorm:"column:sheet;size:255;index:idx_excelparse_sheet;index:excelparse_f_name_sheet_name,priority:2" json:"sheet"`
	FName     string    `gorm:"column:f_name;size:255;index:idx_excelparse_f_name;index:excelparse_f_name_sheet_name,priority:1" json:"f_name"`
	Timestamp time.Time `gorm:"column:timestamp" json:"timestamp"`
}

// TableName pins the table name used by every backend.
func (ExcelParse) TableName() string {
	return "excelparse"
}

// BeforeCreate stamps rows that carry no timestamp with the current UTC time.
func (e *ExcelParse) BeforeCreate(tx *gorm.DB) error {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	return nil
}

// NewExcelParse converts a record into its persisted form.
func NewExcelParse(rec SerializedCell) ExcelParse {
	e := ExcelParse{
		Row:     rec.Row,
		Column:  rec.Column,
		Value:   ValueString(rec.Value),
		Type:    rec.Type,
		CHeader: rec.CHeader,
		RHeader: rec.RHeader,
		ExcelRC: rec.ExcelRC,
		Name:    rec.Name,
		Sheet:   rec.Sheet,
		FName:   rec.FName,
	}
	if rec.Timestamp != nil {
		e.Timestamp = *rec.Timestamp
	}
	return e
}

// ColumnSummary is one row of a distinct-values query over a column.
type ColumnSummary struct {
	Value          string `json:"value"`
	TotalRows      int64  `json:"Total Rows"`
	DataTypes      int64  `json:"Data Types"`
	DistinctValues int64  `json:"Distinct Values"`
}
