package parser

import (
	"errors"
	"fmt"

	"github.com/ukaji3/eparse-go/pkg/eparse/grid"
	"github.com/ukaji3/eparse-go/pkg/eparse/models"
)

// ErrInvalidTolerance indicates an NA tolerance below 1.
var ErrInvalidTolerance = errors.New("na tolerance must be at least 1")

// ErrAnchorOutOfRange indicates a table anchor outside the grid.
var ErrAnchorOutOfRange = errors.New("anchor out of range")

// TableParams holds parameters for resolving a table's extent.
type TableParams struct {
	// NAToleranceR stops the row scan after this many consecutive blanks.
	NAToleranceR int
	// NAToleranceC stops the column scan after this many consecutive blanks.
	NAToleranceC int
	// NAStrip drops a wholly empty last row and last column.
	NAStrip bool
}

// DefaultTableParams returns default table extent parameters.
func DefaultTableParams() TableParams {
	return TableParams{
		NAToleranceR: 1,
		NAToleranceC: 1,
		NAStrip:      true,
	}
}

// FindCorners returns the top-left corners of the tables in g in row-major
// scan order.
//
// A corner is a non-empty cell whose left and upper neighbors are empty (or
// off the grid) and whose 2x2 block to the right and below confirms a
// minimum table. In strict mode all three neighbors must be filled; in loose
// mode two of three suffice. Cells in the last row or column never qualify.
func FindCorners(g grid.Grid, loose bool) []models.TableCorner {
	var result []models.TableCorner

	rows, cols := g.Rows(), g.Cols()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			value := g.At(r, c)
			if value.IsEmpty() {
				continue
			}
			if c > 0 && !g.At(r, c-1).IsEmpty() {
				continue
			}
			if r > 0 && !g.At(r-1, c).IsEmpty() {
				continue
			}
			if !hasMinSize(g, r, c, loose) {
				continue
			}

			result = append(result, models.TableCorner{
				Row:     r,
				Col:     c,
				ExcelRC: grid.Address{Row: r, Col: c}.String(),
				Value:   value.String(),
			})
		}
	}

	return result
}

// hasMinSize checks the 2x2 block rooted at (r, c).
func hasMinSize(g grid.Grid, r, c int, loose bool) bool {
	if r+1 >= g.Rows() || c+1 >= g.Cols() {
		return false
	}

	right := !g.At(r, c+1).IsEmpty()
	down := !g.At(r+1, c).IsEmpty()
	corner := !g.At(r+1, c+1).IsEmpty()

	if loose {
		return (right && down) || (right && corner) || (down && corner)
	}
	return right && down && corner
}

// isRowspan detects a label spanning the header row only: filled to the
// right, empty below.
func isRowspan(g grid.Grid, r, c int) bool {
	if r+1 >= g.Rows() || c+1 >= g.Cols() {
		return false
	}
	return g.At(r+1, c).IsEmpty() && !g.At(r, c+1).IsEmpty()
}

// hasEmptyCorner detects a label one row below a merged header: empty above,
// filled diagonally up-right.
func hasEmptyCorner(g grid.Grid, r, c int) bool {
	if r < 1 || c+1 >= g.Cols() {
		return false
	}
	return g.At(r-1, c).IsEmpty() && !g.At(r-1, c+1).IsEmpty()
}

// ParseTable resolves the bounding box of the table anchored at (r, c).
//
// The anchor is first corrected for merged-cell patterns, row-span before
// empty-corner, each applied at most once. The row extent then walks down
// column c and the column extent walks right along row r, each stopping once
// the configured number of consecutive blanks is seen. With NAStrip a wholly
// empty last row, then a wholly empty last column, is dropped once.
func ParseTable(g grid.Grid, r, c int, params TableParams) (grid.Table, error) {
	if params.NAToleranceR < 1 || params.NAToleranceC < 1 {
		return grid.Table{}, fmt.Errorf("%w: got r=%d c=%d", ErrInvalidTolerance, params.NAToleranceR, params.NAToleranceC)
	}
	rows, cols := g.Rows(), g.Cols()
	if r < 0 || c < 0 || r >= rows || c >= cols {
		return grid.Table{}, fmt.Errorf("%w: (%d, %d) in %dx%d grid", ErrAnchorOutOfRange, r, c, rows, cols)
	}

	if isRowspan(g, r, c) {
		c++
	}
	if hasEmptyCorner(g, r, c) {
		r--
	}

	r1 := r + 1
	naCount := 0
	for row := r + 1; row < rows; row++ {
		if g.At(row, c).IsEmpty() {
			naCount++
		} else {
			naCount = 0
		}
		if naCount == params.NAToleranceR {
			break
		}
		r1++
	}

	c1 := c + 1
	naCount = 0
	for col := c + 1; col < cols; col++ {
		if g.At(r, col).IsEmpty() {
			naCount++
		} else {
			naCount = 0
		}
		if naCount == params.NAToleranceC {
			break
		}
		c1++
	}

	if params.NAStrip {
		if r1-r > 1 && rowEmpty(g, r1-1, c, c1) {
			r1--
		}
		if c1-c > 1 && colEmpty(g, c1-1, r, r1) {
			c1--
		}
	}

	return grid.NewTable(g, r, c, r1, c1), nil
}

func rowEmpty(g grid.Grid, row, c0, c1 int) bool {
	for col := c0; col < c1; col++ {
		if !g.At(row, col).IsEmpty() {
			return false
		}
	}
	return true
}

func colEmpty(g grid.Grid, col, r0, r1 int) bool {
	for row := r0; row < r1; row++ {
		if !g.At(row, col).IsEmpty() {
			return false
		}
	}
	return true
}
