// Package eparse finds and extracts the tables embedded in spreadsheet files.
package eparse

import (
	"io"
	"log/slog"

	"github.com/ukaji3/eparse-go/pkg/eparse/parser"
)

// Options configures extraction behavior.
type Options struct {
	// Loose accepts corners whose 2x2 block has one blank cell.
	Loose bool
	// Sheets restricts extraction to these sheets. Empty means all sheets.
	Sheets []string
	// Table keeps only tables whose anchor text contains this value
	// (case-insensitive). Empty keeps all.
	Table string
	// NAToleranceR is the number of consecutive blank rows that ends a table.
	NAToleranceR int
	// NAToleranceC is the number of consecutive blank columns that ends a table.
	NAToleranceC int
	// NAStrip drops a trailing blank row and column from each table.
	// If nil, defaults to true.
	NAStrip *bool
	// Encoding is the charset of csv and xls input. Empty means the format default.
	Encoding string
	// Logger receives warnings about skipped sheets. If nil, nothing is logged.
	Logger *slog.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Loose:        true,
		NAToleranceR: 1,
		NAToleranceC: 1,
	}
}

// ShouldStrip returns whether trailing blank rows and columns are dropped.
func (o Options) ShouldStrip() bool {
	if o.NAStrip != nil {
		return *o.NAStrip
	}
	return true
}

// TableParams returns the extent parameters, with tolerances normalized to
// at least 1.
func (o Options) TableParams() parser.TableParams {
	params := parser.DefaultTableParams()
	if o.NAToleranceR > 1 {
		params.NAToleranceR = o.NAToleranceR
	}
	if o.NAToleranceC > 1 {
		params.NAToleranceC = o.NAToleranceC
	}
	params.NAStrip = o.ShouldStrip()
	return params
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
