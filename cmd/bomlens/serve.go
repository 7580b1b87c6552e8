package main

import (
	"github.com/bomlens/bomlens/config"
	httpDelivery "github.com/bomlens/bomlens/internal/delivery/http"
	"github.com/bomlens/bomlens/internal/infrastructure/mouser"
	"github.com/bomlens/bomlens/internal/logger"
	"github.com/bomlens/bomlens/internal/usecase"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the BOM enrichment HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.NewStructured(cfg.Log.Level, cfg.Log.Format)

	client := mouser.NewClient(cfg.Mouser.APIKey, cfg.Mouser.BaseURL, log)
	resolver := usecase.NewResolver(client, log)

	// Batches from concurrent uploads share one limiter, so aggregate catalog
	// traffic stays inside the rate contract regardless of batch count.
	throttle := usecase.LimiterThrottle{
		Limiter: rate.NewLimiter(rate.Limit(cfg.Throttle.PerSecond), 5),
	}
	enricher := usecase.NewEnricher(resolver, throttle, log)

	handler := httpDelivery.NewHandler(enricher, log)
	router := httpDelivery.SetupRouter(cfg, handler, log)

	addr := ":" + cfg.Server.Port
	log.Info("server listening", map[string]interface{}{
		"addr":        addr,
		"environment": cfg.Server.Environment,
	})

	return router.Run(addr)
}
