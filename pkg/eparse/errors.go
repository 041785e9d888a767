package eparse

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file could not be read as a workbook.
var ErrInvalidFormat = errors.New("invalid workbook format")

// ErrUnsupportedFormat indicates a file extension no loader handles.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ExtractionError represents an error during extraction.
type ExtractionError struct {
	File      string
	SheetName string
	Component string // "open", "sheet", "tables"
	Err       error
}

func (e *ExtractionError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("extraction error in %s (%s): %v", e.File, e.Component, e.Err)
	}
	return fmt.Sprintf("extraction error in %s sheet %q (%s): %v", e.File, e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(file, sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		File:      file,
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
