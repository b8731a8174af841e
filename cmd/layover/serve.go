package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/layover/server"
)

func newServeCmd(load func() (*runtime, error)) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve GET /route over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := load()
			if err != nil {
				return err
			}
			if addr != "" {
				rt.cfg.HTTP.Addr = addr
			}

			gin.SetMode(gin.ReleaseMode)
			router := server.NewRouter(rt.logger, server.RouterDependencies{
				Handlers:       server.NewHandlers(rt.logger, rt.graph),
				AllowedOrigins: rt.cfg.HTTP.AllowedOrigins,
			})
			srv := server.New(rt.logger, rt.cfg.HTTP, router)

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start()
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			select {
			case <-ctx.Done():
				rt.logger.Info("received shutdown signal")
			case err := <-errCh:
				return err
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), rt.cfg.HTTP.ShutdownTimeout)
			defer cancel()

			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}
