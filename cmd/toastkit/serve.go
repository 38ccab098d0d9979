package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/toastkit-go/toastkit/internal/config"
	"github.com/toastkit-go/toastkit/internal/playground"
)

func serveCmd() *cobra.Command {
	var (
		addr       string
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the playground server",
		Long: `Run the playground: a demo page exercising every toast variant.

Examples:
  toastkit serve
  toastkit serve --addr=:8080
  toastkit serve --config=./toastkit.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, configPath, verbose)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from toastkit.json)")
	cmd.Flags().StringVarP(&configPath, "config", "c", config.ConfigFileName, "Path to config file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func runServe(addr, configPath string, verbose bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Addr = addr
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return playground.NewServer(cfg, logger).ListenAndServe(ctx)
}
