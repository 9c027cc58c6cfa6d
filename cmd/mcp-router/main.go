// cmd/mcp-router/main.go
// Router MCP mandiri (chi): /route, /tools, /tools/{name} tanpa endpoint /api dan /admin.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nodal-oilgas/internal/app"
	"nodal-oilgas/internal/config"
	"nodal-oilgas/internal/server"
	"nodal-oilgas/internal/util"
)

func main() {
	cfg := config.Load()
	log := util.NewLogger(cfg.LogFormat, cfg.LogLevel)
	cfg.Warn(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := app.Bootstrap(ctx, cfg, log)
	defer deps.Close()
	app.New(cfg, log, deps) // inject handler + registrasi tool

	srv := &http.Server{
		Addr:              ":" + cfg.MCPPort,
		Handler:           server.NewMCPRouter(cfg.APIKey, log, deps.Metrics),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("MCP Router listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("listen", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shCtx)
}
