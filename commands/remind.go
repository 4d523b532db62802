package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ncobase/todosheet/data"
	"github.com/ncobase/todosheet/notify"
	"github.com/ncobase/todosheet/service"
)

func newRemindCmd() *cobra.Command {
	var configFile string
	var hours int

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Run one reminder sweep and exit",
		Long:  "Finds open todos due within the reminder window, pushes one LINE message listing them and records the reminder time on each.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, cleanup, err := setup(configFile)
			if err != nil {
				return err
			}
			defer cleanup()

			if hours > 0 {
				cfg.Reminder.WindowHours = hours
			}

			ctx := cmd.Context()
			d, err := data.New(ctx, cfg, log)
			if err != nil {
				return err
			}

			svc := service.New(d, cfg, log, notify.New(cfg.Line))
			count, err := svc.Reminder.Sweep(ctx, time.Now())
			if err != nil {
				return err
			}

			fmt.Printf("notified %d todo(s)\n", count)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file path")
	cmd.Flags().IntVar(&hours, "hours", 0, "override the reminder window in hours")
	return cmd
}
