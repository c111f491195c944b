package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nlaakso/agentpulse/internal/config"
	"github.com/nlaakso/agentpulse/internal/server"
)

var (
	servePort   int
	serveConfig string
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVar(&servePort, "port", 0, "HTTP listen port (overrides config)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to config YAML")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard API server",
	Long:  "Runs the read-only JSON API.\nSupports hot-reload of the config file; a changed port needs a restart.",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(serveConfig)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	srv := server.New(cfg, serveConfig)

	reloader, err := server.NewReloader(srv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: hot-reload disabled: %v\n", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if reloader != nil {
		go reloader.Run(ctx)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nShutting down API server...")
		cancel()
	}()

	fmt.Fprintf(os.Stderr, "agentpulse API listening on :%d (seed %d, batch %d)\n", cfg.Port, cfg.Seed, cfg.BatchSize)
	if serveConfig != "" {
		fmt.Fprintf(os.Stderr, "Config: %s (hot-reload enabled)\n", serveConfig)
	}

	return srv.Start(ctx)
}
