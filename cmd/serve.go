package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mochilabs/mochi/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := buildApp(ctx, cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		srv := server.New(server.Config{
			Generator: a.generator,
			Enricher:  a.enricher,
			Feedback:  a.feedback,
			Store:     a.store,
			Log:       a.log,
		})
		router := server.NewRouter(srv, a.cfg.Server.CORS.AllowedOrigins)

		addr := fmt.Sprintf(":%d", a.cfg.Server.Port)
		a.log.Info("starting server", "addr", addr)
		return router.Run(addr)
	},
}
