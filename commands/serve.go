package commands

import (
	"github.com/spf13/cobra"

	"github.com/ncobase/todosheet/config"
	"github.com/ncobase/todosheet/data"
	"github.com/ncobase/todosheet/handler"
	"github.com/ncobase/todosheet/notify"
	"github.com/ncobase/todosheet/server"
	"github.com/ncobase/todosheet/service"
)

func newServeCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
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
			// The sheet may be briefly unreachable at boot; requests
			// will surface errors if it stays down.
			if err := d.Ping(ctx); err != nil {
				log.Warn(ctx, "sheet unreachable at startup", "error", err)
			}

			if !cfg.Line.Enabled() {
				log.Warn(ctx, "line messaging not configured, reminders will fail")
			}

			svc := service.New(d, cfg, log, notify.New(cfg.Line))
			h := handler.New(svc, cfg, log)
			srv := server.New(cfg, log, h)

			cfg.Watch(func(updated *config.Config) {
				log.Info(ctx, "config file changed, restart to apply", "app_name", updated.AppName)
			})

			return srv.Run()
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file path")
	return cmd
}
