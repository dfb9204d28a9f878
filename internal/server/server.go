// Package server assembles the public and admin HTTP handlers from their
// parts.
package server

import (
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/pages-deploy-gateway/internal/api"
	"github.com/DanielPopoola/pages-deploy-gateway/internal/application"
	"github.com/DanielPopoola/pages-deploy-gateway/internal/application/services"
	"github.com/DanielPopoola/pages-deploy-gateway/internal/config"
	"github.com/DanielPopoola/pages-deploy-gateway/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/pages-deploy-gateway/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/pages-deploy-gateway/internal/metrics"
)

// NewPublicHandler wires the publish flow behind the middleware chain. The
// vendor client is wrapped with instrumentation by the caller.
func NewPublicHandler(cfg *config.Config, vendor application.VendorClient, m *metrics.Metrics, logger *slog.Logger) http.Handler {
	deployService := services.NewDeployService(vendor, cfg.Cloudflare.ProductionBranch, logger)
	accessService := services.NewAccessService(vendor, cfg.Cloudflare.PagesDomain, cfg.Access.SessionDuration, logger)
	publishService := services.NewPublishService(deployService, accessService, m, cfg.Cloudflare.PagesDomain, logger)

	var handler http.Handler = handlers.NewDeployHandler(publishService, cfg.Server.MaxUploadBytes, logger)
	handler = middleware.Timeout(cfg.Server.RequestTimeout)(handler)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.Logging(logger, m)(handler)
	handler = middleware.CORS()(handler)
	handler = middleware.RequestID()(handler)

	return handler
}

func NewAdminHandler(m *metrics.Metrics, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", m.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	api.RegisterDocsRoutes(mux)

	return middleware.Recovery(logger)(mux)
}

func New(addr string, handler http.Handler, cfg config.ServerConfig) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}
