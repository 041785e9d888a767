package output

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/ukaji3/eparse-go/pkg/eparse/grid"
)

// TableToText renders at most maxRows x maxCols of t as aligned columns.
// A limit of 0 means no limit. Cut rows and columns are marked with "...".
func TableToText(t grid.Grid, maxRows, maxCols int) string {
	rows, cols := t.Rows(), t.Cols()
	if maxRows > 0 && rows > maxRows {
		rows = maxRows
	}
	if maxCols > 0 && cols > maxCols {
		cols = maxCols
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	for r := 0; r < rows; r++ {
		fields := make([]string, 0, cols+1)
		for c := 0; c < cols; c++ {
			s := t.At(r, c).String()
			if s == "" {
				s = "NaN"
			}
			fields = append(fields, s)
		}
		if cols < t.Cols() {
			fields = append(fields, "...")
		}
		fmt.Fprintln(w, strings.Join(fields, "\t"))
	}
	if rows < t.Rows() {
		fmt.Fprintln(w, "...")
	}
	w.Flush()

	return strings.TrimRight(b.String(), "\n")
}
