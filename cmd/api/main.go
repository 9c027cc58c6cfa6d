// cmd/api/main.go
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
	"nodal-oilgas/internal/util"
)

// BuildVersion diisi saat ldflags
var BuildVersion = "dev"

func main() {
	cfg := config.Load()
	log := util.NewLogger(cfg.LogFormat, cfg.LogLevel)
	cfg.Warn(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := app.Bootstrap(ctx, cfg, log) // <-- DB + LLM opsional
	defer deps.Close()

	a := app.New(cfg, log, deps) // <-- inisialisasi + inject semua repos
	srv := a.Server(":" + cfg.AppPort)

	go func() {
		log.Info("API running", "addr", srv.Addr, "version", BuildVersion, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("listen", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server...")
	shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
}
