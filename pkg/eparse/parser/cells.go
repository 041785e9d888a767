package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/eparse-go/pkg/eparse/grid"
	"github.com/xuri/excelize/v2"
)

// ErrSheetNotExist is re-exported from excelize and indicates that a
// requested sheet does not exist in the workbook.
type ErrSheetNotExist = excelize.ErrSheetNotExist

// Sheet is a named grid loaded from a workbook.
type Sheet struct {
	Name string
	Grid grid.Grid
}

// LoadSheet loads a sheet of an xlsx workbook into a grid.
// Cell kinds follow the stored cell type; numbers carrying a date number
// format become timestamps.
func LoadSheet(f *excelize.File, sheetName string) (*grid.Matrix, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	l := &sheetLoader{f: f, sheet: sheetName, dateStyles: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		l.date1904 = *props.Date1904
	}

	cells := make([][]grid.Cell, len(rows))
	for rowIdx, row := range rows {
		cells[rowIdx] = make([]grid.Cell, len(row))
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cellName, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			cells[rowIdx][colIdx] = l.cell(cellName, raw)
		}
	}

	return grid.NewMatrix(cells), nil
}

type sheetLoader struct {
	f          *excelize.File
	sheet      string
	date1904   bool
	dateStyles map[int]bool
}

func (l *sheetLoader) cell(cellName, raw string) grid.Cell {
	typ, err := l.f.GetCellType(l.sheet, cellName)
	if err != nil {
		return grid.TextCell(raw)
	}

	switch typ {
	case excelize.CellTypeBool:
		if b, err := strconv.ParseBool(raw); err == nil {
			return grid.BoolCell(b)
		}
		return grid.TextCell(raw)
	case excelize.CellTypeDate:
		if t, ok := parseTime(raw); ok {
			return grid.TimeCell(t)
		}
		return grid.TextCell(raw)
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return grid.TextCell(raw)
	}

	var num float64
	switch v := parseValue(raw).(type) {
	case int64:
		num = float64(v)
	case float64:
		num = v
	default:
		return grid.TextCell(raw)
	}

	if l.isDateStyle(cellName) {
		if t, err := excelize.ExcelDateToTime(num, l.date1904); err == nil {
			return grid.TimeCell(t)
		}
	}
	return grid.NumberCell(num)
}

// isDateStyle reports whether the cell's number format renders a date.
func (l *sheetLoader) isDateStyle(cellName string) bool {
	styleID, err := l.f.GetCellStyle(l.sheet, cellName)
	if err != nil || styleID == 0 {
		return false
	}
	if isDate, ok := l.dateStyles[styleID]; ok {
		return isDate
	}

	isDate := false
	if style, err := l.f.GetStyle(styleID); err == nil && style != nil {
		isDate = isDateNumFmt(style.NumFmt)
		if style.CustomNumFmt != nil {
			isDate = isDateFormatCode(*style.CustomNumFmt)
		}
	}
	l.dateStyles[styleID] = isDate
	return isDate
}

// isDateNumFmt reports whether a built-in number format id is a date or time.
func isDateNumFmt(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormatCode reports whether a custom format code contains date or
// time tokens outside quoted literals and bracketed sections.
func isDateFormatCode(code string) bool {
	code = strings.ToLower(code)
	if code == "general" || code == "@" {
		return false
	}

	inQuote, inBracket, escaped := false, false, false
	for _, r := range code {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			inQuote = !inQuote
		case inQuote:
		case r == '[':
			inBracket = true
		case r == ']':
			inBracket = false
		case inBracket:
		case strings.ContainsRune("dmyhs", r):
			return true
		}
	}
	return false
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTime(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}

// inferCell types a plain text value: numbers become Number cells, the
// rest Text.
func inferCell(s string) grid.Cell {
	s = strings.TrimSpace(s)
	switch v := parseValue(s).(type) {
	case int64:
		return grid.NumberCell(float64(v))
	case float64:
		return grid.NumberCell(v)
	}
	return grid.TextCell(s)
}
