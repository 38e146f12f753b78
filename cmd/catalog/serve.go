package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nieomylnieja/jsonview/internal/catalog"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the catalog HTTP service",
	Long: `Run the catalog HTTP service.

Every resource accepts the include, exclude, pretty, root and alias query parameters, e.g.:

  GET /orders/1?include=customer,lines,lines.product&exclude=lines.product.sku&pretty=true`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := cfg.Log.NewLogger()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		handler := catalog.NewHandler(
			catalog.NewSampleStore(),
			logger,
			catalog.View{Indented: cfg.Render.Indented},
		)
		server := catalog.NewServer(cfg.Server.Address(), handler, logger)
		if err = server.Run(ctx); err != nil {
			logger.Error("server failed", zap.Error(err))
			return err
		}
		return nil
	},
}
