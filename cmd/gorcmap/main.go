// Package main provides the gorcmap binary entry point.
// Gorcmap serves and exports the GORC-MaLDReTH correlation matrix.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/gorcmap/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "gorcmap"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// globalOptions are flags shared by every subcommand. Empty values defer to
// the loaded configuration.
type globalOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

func rootCmd() *cobra.Command {
	var (
		global globalOptions
		addr   string
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "GORC-MaLDReTH correlation matrix server and exporter",
		Long: `Gorcmap publishes the correlation between GORC service categories and the
MaLDReTH research data lifecycle stages.

It provides:
- An interactive matrix page and a JSON data API
- A styled three-sheet Excel workbook export
- Flat CSV extracts of the matrix and the stage summary

Running gorcmap without a subcommand starts the HTTP server.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, global, addr)
		},
	}

	cmd.PersistentFlags().StringVarP(&global.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&global.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&global.logFormat, "log-format", "", "Log format (text, json)")
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")

	cmd.AddCommand(
		serveCmd(&global),
		exportCmd(&global),
		dataCmd(&global),
		configCmd(&global),
		versionCmd(),
	)

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	}
}

// setup loads configuration, applies flag overrides, and installs the
// default logger.
func setup(cmd *cobra.Command, global globalOptions) (*config.Config, *slog.Logger, error) {
	cfg, err := loadConfig(global.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if global.logLevel != "" {
		cfg.Log.Level = strings.ToLower(global.logLevel)
	}
	if global.logFormat != "" {
		cfg.Log.Format = strings.ToLower(global.logFormat)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Log)
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func loadConfig(configPath string) (*config.Config, error) {
	loader := config.NewLoader(slog.Default())
	if configPath != "" {
		return loader.LoadFile(configPath)
	}
	return loader.Load()
}

// newLogger builds the process logger from the log configuration.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
