package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ncobase/todosheet/data"
)

func newMigrateCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Bring the worksheet schema up to date",
		Long:  "Writes the canonical header to an empty sheet or migrates a sheet created by an earlier release. Safe to run repeatedly.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, cleanup, err := setup(configFile)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx := cmd.Context()
			d, err := data.New(ctx, cfg, log)
			if err != nil {
				return err
			}

			if err := d.Todo.EnsureSchema(ctx); err != nil {
				return err
			}
			fmt.Println("worksheet schema is up to date")
			return nil
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file path")
	return cmd
}
