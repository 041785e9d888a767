package models

import "time"

// DataSource locates a table inside its source file.
type DataSource struct {
	ExcelRC   string `json:"excel_RC"`
	TableName string `json:"table_name"`
}

// ElementMetadata carries the element's provenance.
type ElementMetadata struct {
	TextAsHTML   string      `json:"text_as_html,omitempty"`
	PageName     string      `json:"page_name,omitempty"`
	PageNumber   int         `json:"page_number,omitempty"`
	Filename     string      `json:"filename,omitempty"`
	LastModified *time.Time  `json:"last_modified,omitempty"`
	DataSource   *DataSource `json:"data_source,omitempty"`
}

// Element is a document element produced from one table.
type Element struct {
	Type     string          `json:"type"`
	Text     string          `json:"text"`
	Metadata ElementMetadata `json:"metadata"`
}
