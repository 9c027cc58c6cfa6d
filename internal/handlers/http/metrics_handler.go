// internal/handlers/http/metrics_handler.go
// Handler untuk metrics Prometheus

package http

import (
	"fmt"
	"net/http"

	"nodal-oilgas/internal/metrics"
)

// MetricsHandler mengekspos registry Recorder; tanpa Recorder hanya app_up.
func MetricsHandler(m *metrics.Recorder) http.Handler {
	if m != nil {
		return m.Handler()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4")
		fmt.Fprintf(w, "# HELP nodal_app_up 1 if the app is up\n# TYPE nodal_app_up gauge\nnodal_app_up 1\n")
	})
}
