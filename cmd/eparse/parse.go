package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/eparse-go/pkg/eparse"
	"github.com/ukaji3/eparse-go/pkg/eparse/grid"
	"github.com/ukaji3/eparse-go/pkg/eparse/parser"
)

func newParseCmd(a *app) *cobra.Command {
	var (
		sheets    []string
		serialize bool
		table     string
		nacount   int
	)

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse table(s) found in sheet for target(s)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			opts := a.extractOptions()
			opts.Sheets = sheets
			opts.Table = table
			opts.NAToleranceR = nacount + 1
			opts.NAToleranceC = nacount + 1

			for _, path := range a.spreadsheets() {
				name := filepath.Base(path)
				fmt.Fprintln(out, name)

				tables, err := eparse.Extract(path, opts)
				if err != nil {
					if err := a.handle(cmd, err, false, "skipping %s - %v", path, err); err != nil {
						return err
					}
					continue
				}

				for _, t := range tables {
					if a.verbose > 0 {
						rows, cols := t.Shape()
						fmt.Fprintf(out, "%s table %s (%d, %d) found at %s in %s\n",
							name, t.Name, rows, cols, t.ExcelRC, t.Sheet)
					}

					var data interface{} = values(t.Table)
					if serialize {
						data = parser.SerializeTable(t.Table, t.Metadata())
					}

					if err := a.out.Output(cmd.Context(), data); err != nil {
						if err := a.handle(cmd, err, false, "output to %s failed - %v", a.output, err); err != nil {
							return err
						}
						break
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&sheets, "sheet", "s", nil, "name of sheet(s) to parse")
	cmd.Flags().BoolVarP(&serialize, "serialize", "z", false, "serialize table output")
	cmd.Flags().StringVarP(&table, "table", "t", "", "name of table to parse")
	cmd.Flags().IntVar(&nacount, "nacount", 0, "allow for this many NA values when spanning rows and columns")
	return cmd
}

// values returns the native cell values of g, row-major.
func values(g grid.Grid) [][]interface{} {
	rows := make([][]interface{}, g.Rows())
	for r := range rows {
		rows[r] = make([]interface{}, g.Cols())
		for c := range rows[r] {
			rows[r][c] = g.At(r, c).Value()
		}
	}
	return rows
}
