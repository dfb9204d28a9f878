package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/pages-deploy-gateway/internal/api"
	"github.com/DanielPopoola/pages-deploy-gateway/internal/config"
	"github.com/DanielPopoola/pages-deploy-gateway/internal/infrastructure/cloudflare"
	"github.com/DanielPopoola/pages-deploy-gateway/internal/metrics"
	"github.com/DanielPopoola/pages-deploy-gateway/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting gateway service",
		"env", cfg.Primary.Env,
		"port", cfg.Server.Port,
		"admin_port", cfg.Admin.Port,
		"log_level", cfg.Logger.Level,
	)

	if _, err := api.SpecJSON(); err != nil {
		logger.Error("invalid api description", "error", err)
		os.Exit(1)
	}

	m := metrics.New()

	vendorClient := cloudflare.NewInstrumentedClient(
		cloudflare.NewClient(cfg.Cloudflare),
		m,
		logger,
	)

	publicServer := server.New("0.0.0.0:"+cfg.Server.Port, server.NewPublicHandler(cfg, vendorClient, m, logger), cfg.Server)
	adminServer := server.New("0.0.0.0:"+cfg.Admin.Port, server.NewAdminHandler(m, logger), cfg.Server)

	for _, srv := range []*http.Server{publicServer, adminServer} {
		go func(srv *http.Server) {
			logger.Info("server starting", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("server error", "addr", srv.Addr, "error", err)
				os.Exit(1)
			}
		}(srv)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, srv := range []*http.Server{publicServer, adminServer} {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server forced to shutdown", "addr", srv.Addr, "error", err)
		}
	}

	logger.Info("server exited")
}
