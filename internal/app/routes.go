// internal/app/routes.go
package app

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"nodal-oilgas/internal/config"
	hh "nodal-oilgas/internal/handlers/http"
	mcphandlers "nodal-oilgas/internal/handlers/mcp"
	"nodal-oilgas/internal/mcp"
	"nodal-oilgas/internal/metrics"
	"nodal-oilgas/internal/middleware"
)

var anyMethod = []string{http.MethodGet, http.MethodPost, http.MethodOptions}

// RegisterRoutes menambahkan semua route HTTP: ops, /api, /mcp dan /admin.
func RegisterRoutes(r *mux.Router, cfg *config.Config, log *slog.Logger, m *metrics.Recorder) {
	r.Use(middleware.RequestID, middleware.CORS, middleware.AccessLog(log, m))

	// --- no prefix ---
	r.HandleFunc("/healthz", hh.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/readyz", hh.ReadyHandler).Methods(http.MethodGet)
	r.Handle("/metrics", hh.MetricsHandler(m)).Methods(http.MethodGet)
	r.HandleFunc("/login", hh.LoginHandler(cfg.Admin)).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/debug/repos", hh.ReposStatusHandler).Methods(http.MethodGet)

	// --- /api prefix (supaya FE bisa pakai /api/...) ---
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.APIKey(cfg.APIKey))
	api.HandleFunc("/healthz", hh.HealthHandler).Methods(http.MethodGet)
	api.HandleFunc("/readyz", hh.ReadyHandler).Methods(http.MethodGet)
	api.HandleFunc("/login", hh.LoginHandler(cfg.Admin)).Methods(http.MethodPost, http.MethodOptions)

	// Domain endpoints (MCP tools exposed via HTTP)
	api.HandleFunc("/ipr/curve", mcphandlers.IPRCurveHandler).Methods(anyMethod...)
	api.HandleFunc("/ipr/summary", mcphandlers.IPRSummaryHandler).Methods(anyMethod...)
	api.HandleFunc("/ipr/productivity", mcphandlers.IPRProductivityHandler).Methods(anyMethod...)
	api.HandleFunc("/vlp", mcphandlers.VLPTableHandler).Methods(anyMethod...)
	api.HandleFunc("/nodal", mcphandlers.NodalAnalysisHandler).Methods(anyMethod...)
	api.HandleFunc("/nodal/explain", mcphandlers.ExplainNodalHandler).Methods(anyMethod...)
	api.HandleFunc("/production", mcphandlers.GetProductionHandler).Methods(anyMethod...)
	api.HandleFunc("/production/watercut", mcphandlers.GetWaterCutHandler).Methods(anyMethod...)
	api.HandleFunc("/production/anomalies", mcphandlers.DetectProductionAnomaliesHandler).
		Methods(http.MethodPost, http.MethodOptions)

	// Preflight catch-all
	api.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(hh.PreflightHandler)

	// --- MCP ---
	mc := r.PathPrefix("/mcp").Subrouter()
	mc.Use(middleware.APIKey(cfg.APIKey))
	mc.HandleFunc("/route", mcp.RouterHandler).Methods(http.MethodPost, http.MethodOptions)
	mc.HandleFunc("/tools", mcp.ToolsHandler).Methods(http.MethodGet)
	// Endpoint HTTP langsung per tool (memudahkan debug/manual curl)
	mc.HandleFunc("/tools/{name}", func(w http.ResponseWriter, r *http.Request) {
		mcp.Serve(w, r, mux.Vars(r)["name"])
	}).Methods(anyMethod...)

	// --- Admin (JWT atau Basic, role admin) ---
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Admin(cfg.Admin), middleware.RequireRole("admin"))
	admin.HandleFunc("/production/upload", hh.AdminUploadProduction).Methods(http.MethodPost)
}
