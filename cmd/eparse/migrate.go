package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMigrateCmd(a *app) *cobra.Command {
	var names []string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrate eparse table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range names {
				if err := a.in.Migrate(cmd.Context(), name); err != nil {
					return a.handle(cmd, err, true, "migration error - %v", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", name)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&names, "migration", "m", nil, "database migration(s) to apply")
	cmd.MarkFlagRequired("migration")
	return cmd
}
