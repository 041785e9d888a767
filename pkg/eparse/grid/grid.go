package grid

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Grid is a read-only matrix of cells addressed by zero-based (row, col).
// At returns EmptyCell for out-of-range coordinates.
type Grid interface {
	Rows() int
	Cols() int
	At(row, col int) Cell
}

// Matrix is a dense in-memory Grid.
type Matrix struct {
	rows  int
	cols  int
	cells [][]Cell
}

// NewMatrix builds a Matrix from ragged rows. Short rows are padded with
// EmptyCell up to the widest row. The rows are copied.
func NewMatrix(rows [][]Cell) *Matrix {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	cells := make([][]Cell, len(rows))
	for i, row := range rows {
		cells[i] = make([]Cell, cols)
		copy(cells[i], row)
	}

	return &Matrix{rows: len(rows), cols: cols, cells: cells}
}

// NewEmptyMatrix returns a rows x cols matrix of empty cells.
// Negative dimensions panic.
func NewEmptyMatrix(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("grid: negative dimensions %dx%d", rows, cols))
	}
	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
	}
	return &Matrix{rows: rows, cols: cols, cells: cells}
}

// Set stores a cell. It is meant for grid construction by loaders and
// panics when the coordinates are out of range.
func (m *Matrix) Set(row, col int, c Cell) {
	m.cells[row][col] = c
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// At returns the cell at (row, col), or EmptyCell when out of range.
func (m *Matrix) At(row, col int) Cell {
	if row < 0 || col < 0 || row >= m.rows || col >= m.cols {
		return EmptyCell
	}
	return m.cells[row][col]
}

// Address is a zero-based grid coordinate.
type Address struct {
	Row int
	Col int
}

// String returns the spreadsheet reference, e.g. (2, 2) -> "C3".
func (a Address) String() string {
	if name, err := excelize.CoordinatesToCellName(a.Col+1, a.Row+1); err == nil {
		return name
	}
	// excelize stops at column XFD; keep counting past it.
	return ColumnName(a.Col) + strconv.Itoa(a.Row+1)
}

// ColumnName returns the letters of a zero-based column: 0 -> "A", 26 -> "AA".
func ColumnName(col int) string {
	var buf []byte
	for n := col + 1; n > 0; n = (n - 1) / 26 {
		buf = append([]byte{byte('A' + (n-1)%26)}, buf...)
	}
	return string(buf)
}

// Table is a rectangular view [R0, R1) x [C0, C1) over a Grid. It borrows
// the Grid and is itself a Grid addressed relative to its top-left corner.
type Table struct {
	grid Grid
	R0   int
	C0   int
	R1   int
	C1   int
}

// NewTable returns a view over g. The box must be non-degenerate.
func NewTable(g Grid, r0, c0, r1, c1 int) Table {
	if r1 <= r0 || c1 <= c0 {
		panic(fmt.Sprintf("grid: degenerate table [%d,%d)x[%d,%d)", r0, r1, c0, c1))
	}
	return Table{grid: g, R0: r0, C0: c0, R1: r1, C1: c1}
}

// Rows returns the table height.
func (t Table) Rows() int { return t.R1 - t.R0 }

// Cols returns the table width.
func (t Table) Cols() int { return t.C1 - t.C0 }

// At returns the cell at table-relative (row, col). Cells outside the box
// are EmptyCell.
func (t Table) At(row, col int) Cell {
	if row < 0 || col < 0 || row >= t.Rows() || col >= t.Cols() {
		return EmptyCell
	}
	return t.grid.At(t.R0+row, t.C0+col)
}

// Anchor returns the absolute address of the top-left cell.
func (t Table) Anchor() Address {
	return Address{Row: t.R0, Col: t.C0}
}

// Absolute maps a table-relative coordinate to its grid address.
func (t Table) Absolute(row, col int) Address {
	return Address{Row: t.R0 + row, Col: t.C0 + col}
}

// Range returns the A1 range of the table, e.g. "C3:J13".
func (t Table) Range() string {
	return t.Anchor().String() + ":" + t.Absolute(t.Rows()-1, t.Cols()-1).String()
}

// Shape returns (rows, cols).
func (t Table) Shape() (int, int) {
	return t.Rows(), t.Cols()
}

// FromStrings builds a Matrix of Text cells; "" becomes EmptyCell.
func FromStrings(rows [][]string) *Matrix {
	cells := make([][]Cell, len(rows))
	for i, row := range rows {
		cells[i] = make([]Cell, len(row))
		for j, s := range row {
			cells[i][j] = TextCell(s)
		}
	}
	return NewMatrix(cells)
}
