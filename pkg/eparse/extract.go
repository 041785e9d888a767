package eparse

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/eparse-go/pkg/eparse/models"
	"github.com/ukaji3/eparse-go/pkg/eparse/parser"
	"github.com/xuri/excelize/v2"
)

// Workbook is a spreadsheet file loaded into grids.
type Workbook struct {
	// Name is the file name (no path).
	Name string
	// SheetNames lists every sheet of the file in workbook order.
	SheetNames []string
	// Sheets holds the loaded sheets, in workbook order.
	Sheets []parser.Sheet
}

// IsSpreadsheet reports whether a file name has an extension Open handles.
func IsSpreadsheet(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm", ".xls", ".csv":
		return true
	}
	return false
}

// Open loads the sheets selected by opts from a spreadsheet file.
func Open(path string, opts Options) (*Workbook, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return OpenReader(f, filepath.Base(path), opts)
}

// OpenReader loads a spreadsheet from r. name selects the format by its
// extension; a name without extension is read as xlsx.
func OpenReader(r io.Reader, name string, opts Options) (*Workbook, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case "", ".xlsx", ".xlsm", ".xltx", ".xltm":
		return openXLSX(r, name, opts)
	case ".xls":
		return openXLS(r, name, opts)
	case ".csv":
		return openCSV(r, name, opts)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
}

func openXLSX(r io.Reader, name string, opts Options) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, NewExtractionError(name, "", "open", fmt.Errorf("%w: %w", ErrInvalidFormat, err))
	}
	defer f.Close()

	wb := &Workbook{Name: name, SheetNames: f.GetSheetList()}
	selected, err := selectSheets(name, wb.SheetNames, opts.Sheets)
	if err != nil {
		return nil, err
	}

	for _, sheetName := range selected {
		g, err := parser.LoadSheet(f, sheetName)
		if err != nil {
			if len(opts.Sheets) > 0 {
				return nil, NewExtractionError(name, sheetName, "sheet", err)
			}
			// Log warning and continue
			opts.logger().Warn("skipping sheet", "file", name, "sheet", sheetName, "error", err)
			continue
		}
		wb.Sheets = append(wb.Sheets, parser.Sheet{Name: sheetName, Grid: g})
	}

	return wb, nil
}

func openXLS(r io.Reader, name string, opts Options) (*Workbook, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		rs = bytes.NewReader(data)
	}

	sheets, err := parser.LoadXLS(rs, opts.Encoding)
	if err != nil {
		return nil, NewExtractionError(name, "", "open", fmt.Errorf("%w: %w", ErrInvalidFormat, err))
	}
	return filterSheets(name, sheets, opts.Sheets)
}

func openCSV(r io.Reader, name string, opts Options) (*Workbook, error) {
	g, err := parser.LoadCSV(r, opts.Encoding)
	if err != nil {
		return nil, NewExtractionError(name, "", "open", fmt.Errorf("%w: %w", ErrInvalidFormat, err))
	}
	sheet := strings.TrimSuffix(name, filepath.Ext(name))
	return filterSheets(name, []parser.Sheet{{Name: sheet, Grid: g}}, opts.Sheets)
}

func filterSheets(name string, sheets []parser.Sheet, requested []string) (*Workbook, error) {
	wb := &Workbook{Name: name}
	byName := make(map[string]parser.Sheet, len(sheets))
	for _, s := range sheets {
		wb.SheetNames = append(wb.SheetNames, s.Name)
		byName[s.Name] = s
	}

	selected, err := selectSheets(name, wb.SheetNames, requested)
	if err != nil {
		return nil, err
	}
	for _, s := range selected {
		wb.Sheets = append(wb.Sheets, byName[s])
	}
	return wb, nil
}

// selectSheets returns the requested sheets in request order, or every
// sheet when none are requested.
func selectSheets(file string, names, requested []string) ([]string, error) {
	if len(requested) == 0 {
		return names, nil
	}

	known := make(map[string]bool, len(names))
	for _, n := range names {
		known[n] = true
	}
	for _, s := range requested {
		if !known[s] {
			return nil, NewExtractionError(file, s, "sheet", parser.ErrSheetNotExist{SheetName: s})
		}
	}
	return requested, nil
}

// Tables finds and resolves the tables of every loaded sheet, in sheet
// order then scan order.
func (wb *Workbook) Tables(opts Options) ([]models.ParsedTable, error) {
	params := opts.TableParams()
	filter := strings.ToLower(opts.Table)

	var result []models.ParsedTable
	for _, sheet := range wb.Sheets {
		for _, corner := range parser.FindCorners(sheet.Grid, opts.Loose) {
			if filter != "" && !strings.Contains(strings.ToLower(corner.Value), filter) {
				continue
			}

			tbl, err := parser.ParseTable(sheet.Grid, corner.Row, corner.Col, params)
			if err != nil {
				return nil, NewExtractionError(wb.Name, sheet.Name, "tables", err)
			}
			result = append(result, models.ParsedTable{
				Table:   tbl,
				ExcelRC: corner.ExcelRC,
				Name:    corner.Value,
				Sheet:   sheet.Name,
				File:    wb.Name,
			})
		}
	}

	opts.logger().Debug("tables found", "file", wb.Name, "count", len(result))
	return result, nil
}

// Extract returns the tables found in a spreadsheet file.
func Extract(path string, opts Options) ([]models.ParsedTable, error) {
	wb, err := Open(path, opts)
	if err != nil {
		return nil, err
	}
	return wb.Tables(opts)
}

// ExtractReader returns the tables found in a spreadsheet read from r.
func ExtractReader(r io.Reader, name string, opts Options) ([]models.ParsedTable, error) {
	wb, err := OpenReader(r, name, opts)
	if err != nil {
		return nil, err
	}
	return wb.Tables(opts)
}

// Scan summarizes a spreadsheet file. When sheet is set, that sheet's shape
// is reported and, with withTables, its table corners.
func Scan(path, sheet string, withTables bool, opts Options) (*models.FileInfo, error) {
	st, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	} else if err != nil {
		return nil, err
	}

	if sheet != "" {
		opts.Sheets = []string{sheet}
	}
	wb, err := Open(path, opts)
	if err != nil {
		return nil, err
	}

	info := &models.FileInfo{
		Name:   wb.Name,
		SizeMB: float64(st.Size()) / 1_024_000,
		Sheets: wb.SheetNames,
	}

	if sheet != "" && len(wb.Sheets) == 1 {
		g := wb.Sheets[0].Grid
		info.Sheet = &models.SheetInfo{Name: sheet, Rows: g.Rows(), Cols: g.Cols()}
		if withTables {
			info.Sheet.Corners = parser.FindCorners(g, opts.Loose)
		}
	}

	return info, nil
}
