package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gmolchanov/quadrant/internal/server"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := server.New(app.Tasks, app.Stats, app.Logger)
			return srv.ListenAndServe(ctx, addr, app.Config.CORSOrigins)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", app.Config.Addr, "Listen address")

	return cmd
}
