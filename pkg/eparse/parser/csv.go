package parser

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/ukaji3/eparse-go/pkg/eparse/grid"
	"golang.org/x/text/encoding/htmlindex"
)

// LoadCSV loads a delimited text file as a single grid. charset names any
// WHATWG encoding label ("latin1", "shift_jis", ...); empty means UTF-8.
func LoadCSV(r io.Reader, charset string) (*grid.Matrix, error) {
	if charset != "" {
		enc, err := htmlindex.Get(charset)
		if err != nil {
			return nil, fmt.Errorf("unknown charset %q: %w", charset, err)
		}
		r = enc.NewDecoder().Reader(r)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	cells := make([][]grid.Cell, len(records))
	for i, rec := range records {
		cells[i] = make([]grid.Cell, len(rec))
		for j, field := range rec {
			cells[i][j] = inferCell(field)
		}
	}

	return grid.NewMatrix(cells), nil
}
