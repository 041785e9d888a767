package parser

import (
	"io"

	"github.com/extrame/xls"
	"github.com/ukaji3/eparse-go/pkg/eparse/grid"
)

// LoadXLS loads every sheet of a legacy .xls workbook. The library renders
// all values as text, so numbers are recovered by inference.
func LoadXLS(r io.ReadSeeker, charset string) ([]Sheet, error) {
	if charset == "" {
		charset = "utf-8"
	}
	wb, err := xls.OpenReader(r, charset)
	if err != nil {
		return nil, err
	}

	var result []Sheet
	for i := 0; i < wb.NumSheets(); i++ {
		ws := wb.GetSheet(i)
		if ws == nil {
			continue
		}
		result = append(result, Sheet{Name: ws.Name, Grid: xlsGrid(ws)})
	}

	return result, nil
}

func xlsGrid(ws *xls.WorkSheet) *grid.Matrix {
	cells := make([][]grid.Cell, int(ws.MaxRow)+1)
	for rowIdx := range cells {
		row := ws.Row(rowIdx)
		if row == nil {
			continue
		}
		// LastCol is one past the last used column
		last := row.LastCol()
		cells[rowIdx] = make([]grid.Cell, last)
		for colIdx := row.FirstCol(); colIdx < last; colIdx++ {
			cells[rowIdx][colIdx] = inferCell(row.Col(colIdx))
		}
	}
	return grid.NewMatrix(cells)
}
