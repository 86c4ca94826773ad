package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"evalgo.org/webapp/internal/api"
	"evalgo.org/webapp/internal/sysinfo"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the web server",
	Long:  `Start the HTTP server on all interfaces at the configured port`,
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, args []string) error {
	collector := sysinfo.NewCollector(cmd.Context(), sysinfo.WithLogger(logger))
	server := api.New(cfg, collector, logger)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(cmd.Context(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		return nil

	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}
}
