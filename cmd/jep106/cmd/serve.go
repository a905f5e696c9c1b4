package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/jep106/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve manufacturer lookups over HTTP",
	Long: `Start an HTTP server exposing the JEP106 table as JSON.

Routes:
  GET /healthz
  GET /metrics
  GET /v1/banks
  GET /v1/banks/:bank
  GET /v1/manufacturers?q=QUERY
  GET /v1/manufacturers/:bank/:code
  GET /v1/idcodes/:idcode`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	scfg := cfg.Server
	if serveAddr != "" {
		scfg.Addr = serveAddr
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting server", zap.String("addr", scfg.Addr), zap.Bool("metrics", scfg.Metrics))
	return server.New(scfg, logger).Run(ctx)
}
