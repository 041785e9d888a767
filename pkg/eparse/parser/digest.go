package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/eparse-go/pkg/eparse/models"
)

// ErrInvalidInput indicates there is nothing to describe.
var ErrInvalidInput = errors.New("invalid input")

// TableDigest returns a one-sentence summary of a serialized table.
// filename and sheet are optional and may be empty.
func TableDigest(records []models.SerializedCell, tableName, filename, sheet string) (string, error) {
	if len(records) == 0 {
		return "", fmt.Errorf("%w: no records to describe", ErrInvalidInput)
	}

	rows := make(map[int]struct{})
	cols := make(map[int]struct{})
	var cHeaders, rHeaders, types distinct

	for _, rec := range records {
		rows[rec.Row] = struct{}{}
		cols[rec.Column] = struct{}{}
		cHeaders.add(rec.CHeader)
		rHeaders.add(rec.RHeader)
		types.add(rec.Type)
	}

	var b strings.Builder
	b.WriteString(tableName)
	b.WriteString(" is a table")
	if sheet != "" {
		fmt.Fprintf(&b, " in sheet %s", sheet)
	}
	if filename != "" {
		fmt.Fprintf(&b, " of Excel file %s", filename)
	}
	fmt.Fprintf(&b, " with %d column(s) having names like %s", len(cols), cHeaders)
	fmt.Fprintf(&b, " and %d row(s) having names like %s", len(rows), rHeaders)
	fmt.Fprintf(&b, " and contains %d cells of %s type(s)", len(rows)*len(cols), types)

	return b.String(), nil
}

// distinct collects unique non-empty strings in first-seen order.
type distinct struct {
	seen   map[string]struct{}
	values []string
}

func (d *distinct) add(s string) {
	if s == "" {
		return
	}
	if d.seen == nil {
		d.seen = make(map[string]struct{})
	}
	if _, ok := d.seen[s]; ok {
		return
	}
	d.seen[s] = struct{}{}
	d.values = append(d.values, s)
}

func (d distinct) String() string {
	return strings.Join(d.values, ", ")
}
