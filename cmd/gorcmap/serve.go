package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/gorcmap/config"
	"github.com/c360studio/gorcmap/export"
	matrixapi "github.com/c360studio/gorcmap/processor/matrix-api"
)

func serveCmd(global *globalOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, *global, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	return cmd
}

func runServe(cmd *cobra.Command, global globalOptions, addr string) error {
	cfg, logger, err := setup(cmd, global)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	// Setup signal handling
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return serve(ctx, cfg, logger)
}

// serve runs the matrix-api component until ctx is done or the server fails.
func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	engine, err := newEngine(cfg, logger)
	if err != nil {
		return err
	}

	comp, err := matrixapi.NewComponent(matrixapi.ConfigFrom(cfg), engine, logger)
	if err != nil {
		return fmt.Errorf("create matrix-api: %w", err)
	}
	if err := comp.Initialize(); err != nil {
		return fmt.Errorf("initialize matrix-api: %w", err)
	}
	if err := comp.Start(ctx); err != nil {
		return fmt.Errorf("start matrix-api: %w", err)
	}

	logger.Info("Gorcmap ready",
		"version", Version,
		"addr", comp.Addr().String())

	waitErr := waitForShutdown(ctx, comp.Done(), logger)

	if err := comp.Stop(cfg.Server.ShutdownTimeout); err != nil {
		return fmt.Errorf("stop matrix-api: %w", err)
	}
	return waitErr
}

// errServerExited reports an HTTP server that stopped without a shutdown request.
var errServerExited = errors.New("http server exited unexpectedly")

// waitForShutdown blocks until ctx is done or the server stops on its own.
func waitForShutdown(ctx context.Context, serverDone <-chan struct{}, logger *slog.Logger) error {
	select {
	case <-ctx.Done():
		logger.Info("Received shutdown signal")
		return nil
	case <-serverDone:
		logger.Error("HTTP server exited")
		return errServerExited
	}
}

// newEngine builds the export engine from the export configuration.
func newEngine(cfg *config.Config, logger *slog.Logger) (*export.Engine, error) {
	loc, err := cfg.Export.Location()
	if err != nil {
		return nil, fmt.Errorf("export timezone: %w", err)
	}
	return export.NewEngine(
		export.WithLocation(loc),
		export.WithLogger(logger),
		export.WithCommentAuthor(cfg.Export.CommentAuthor),
	), nil
}
