package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/eparse-go/pkg/eparse"
	"github.com/ukaji3/eparse-go/pkg/eparse/models"
)

func newScanCmd(a *app) *cobra.Command {
	var (
		number int
		sheet  string
		tables bool
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan for excel files in target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			printed := 0

			for _, path := range a.spreadsheets() {
				info, err := eparse.Scan(path, sheet, tables, a.extractOptions())
				if err != nil {
					if err := a.handle(cmd, err, false, "skipping %s - %v", path, err); err != nil {
						return err
					}
					continue
				}

				fmt.Fprintln(out, scanLine(info, sheet, tables, a.verbose))
				a.logger.Debug("scanned", "file", path, "sheets", info.Sheets)

				printed++
				if number > 0 && printed >= number {
					break
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&number, "number", "n", 0, "stop after n excel files")
	cmd.Flags().StringVarP(&sheet, "sheet", "s", "", "name of sheet to scan for")
	cmd.Flags().BoolVarP(&tables, "tables", "t", false, "count tables in scanned sheets")
	return cmd
}

func scanLine(info *models.FileInfo, sheet string, tables bool, verbose int) string {
	var b strings.Builder
	b.WriteString(info.Name)

	if verbose > 0 {
		fmt.Fprintf(&b, " %.2fMB", info.SizeMB)
	}

	if sheet != "" {
		if info.Sheet == nil {
			return b.String()
		}
		fmt.Fprintf(&b, " with %s (%d, %d)", sheet, info.Sheet.Rows, info.Sheet.Cols)
		if tables {
			fmt.Fprintf(&b, " containing %d tables", len(info.Sheet.Corners))
			if verbose > 1 {
				corners := make([]string, len(info.Sheet.Corners))
				for i, c := range info.Sheet.Corners {
					corners[i] = fmt.Sprintf("%s %s", c.ExcelRC, c.Value)
				}
				fmt.Fprintf(&b, " (%s)", strings.Join(corners, ", "))
			}
		}
		return b.String()
	}

	if verbose > 0 {
		fmt.Fprintf(&b, " with %d sheets", len(info.Sheets))
	}
	if verbose > 1 && len(info.Sheets) > 0 {
		fmt.Fprintf(&b, " %s", strings.Join(info.Sheets, ","))
	}
	return b.String()
}
