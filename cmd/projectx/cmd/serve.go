package cmd

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"projectx/internal/app/server/api"
)

const shutdownTimeout = 10 * time.Second

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the workspace over HTTP",
	Long: `Starts the HTTP API on RUN_ADDRESS (or --addr). The OpenAPI document is
served at /openapi.json and interactive docs at /docs.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		addr := cfg.Server.RunAddress
		if serveAddr != "" {
			addr = serveAddr
		}

		if cfg.Server.APIToken == "" && cfg.IsProd() {
			log.Warn("serving without API_TOKEN, the API is open to anyone who can reach it", "addr", addr)
		}

		server := &http.Server{
			Addr:              addr,
			Handler:           api.New(ws, cfg.Server.APIToken, log),
			ReadHeaderTimeout: 5 * time.Second,
			IdleTimeout:       time.Minute,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info("HTTP server listening", "addr", addr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-cmd.Context().Done():
		}

		log.Info("shutting down HTTP server")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address, overrides RUN_ADDRESS")
}
