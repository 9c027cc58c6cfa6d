// internal/server/router.go
// Router chi untuk binary mcp-router: hanya permukaan MCP (route, katalog, tool langsung).

package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	hh "nodal-oilgas/internal/handlers/http"
	"nodal-oilgas/internal/mcp"
	"nodal-oilgas/internal/metrics"
	"nodal-oilgas/internal/middleware"
)

// NewMCPRouter mengasumsikan tool sudah diregister (app.RegisterMCPTools / app.New).
func NewMCPRouter(apiKey string, log *slog.Logger, m *metrics.Recorder) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP, chimw.Recoverer)
	r.Use(middleware.RequestID, middleware.CORS, middleware.AccessLog(log, m))

	// Healthcheck (biar gampang cek port/path)
	r.Get("/healthz", hh.HealthHandler)
	r.Get("/readyz", hh.ReadyHandler)
	r.Method(http.MethodGet, "/metrics", hh.MetricsHandler(m))

	r.Group(func(r chi.Router) {
		r.Use(middleware.APIKey(apiKey), chimw.Timeout(30*time.Second))
		r.Post("/route", mcp.RouterHandler)
		r.Get("/tools", mcp.ToolsHandler)
		r.HandleFunc("/tools/{name}", func(w http.ResponseWriter, r *http.Request) {
			mcp.Serve(w, r, chi.URLParam(r, "name"))
		})
	})
	return r
}
