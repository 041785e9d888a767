package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/eparse-go/pkg/eparse/models"
	"github.com/ukaji3/eparse-go/pkg/eparse/parser"
	"github.com/ukaji3/eparse-go/pkg/eparse/store"
)

func newQueryCmd(a *app) *cobra.Command {
	var (
		filters   []string
		method    string
		serialize bool
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query eparse output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := parseFilters(filters)
			if err != nil {
				return a.handle(cmd, err, true, "filter error - %v", err)
			}

			rows, err := a.in.Input(cmd.Context(), method, f)
			if err != nil {
				return a.handle(cmd, err, true, "input from %s failed with %v", a.input, err)
			}

			var data interface{} = rows
			if serialize {
				records := make([]models.SerializedCell, 0, len(rows))
				for _, r := range rows {
					records = append(records, parser.NormalizeRecord(r))
				}
				data = records
			}

			if err := a.out.Output(cmd.Context(), data); err != nil {
				return a.handle(cmd, err, true, "output to %s failed with %v", a.output, err)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&filters, "filter", "F", nil, "django-style filter FIELD=VALUE to apply to base queryset")
	cmd.Flags().StringVarP(&method, "method", "m", "get_queryset", "method to call on eparse model")
	cmd.Flags().BoolVarP(&serialize, "serialize", "z", false, "serialize query output")
	return cmd
}

func parseFilters(pairs []string) (store.Filters, error) {
	f := make(store.Filters, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("%w: expected FIELD=VALUE, got %q", store.ErrInvalidFilter, p)
		}
		f[k] = v
	}
	return f, nil
}
