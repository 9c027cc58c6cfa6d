// internal/handlers/http/health_handler.go
// Handler sederhana untuk health check

package http

import (
	"net/http"

	mcphandlers "nodal-oilgas/internal/handlers/mcp"
	"nodal-oilgas/internal/util"
)

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	util.WriteJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// ReadyHandler: 503 sampai analyzer terpasang. Repo produksi opsional (tanpa DB tetap ready).
func ReadyHandler(w http.ResponseWriter, r *http.Request) {
	st := mcphandlers.ReposStatus()
	status := http.StatusOK
	if !st["analysis"] {
		status = http.StatusServiceUnavailable
	}
	util.WriteJSON(w, status, map[string]any{"ready": status == http.StatusOK, "deps": st})
}
