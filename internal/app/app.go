// internal/app/app.go
package app

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"nodal-oilgas/internal/config"
	hh "nodal-oilgas/internal/handlers/http"
	mcphandlers "nodal-oilgas/internal/handlers/mcp"
	"nodal-oilgas/internal/llm"
	"nodal-oilgas/internal/mcp"
	"nodal-oilgas/internal/metrics"
	mysqlrepo "nodal-oilgas/internal/repositories/mysql"
	"nodal-oilgas/internal/services"
	"nodal-oilgas/pkg/db"
)

// Deps adalah dependency eksternal opsional; nil = fitur terkait nonaktif.
type Deps struct {
	DB      *sql.DB
	LLM     llm.Client
	Metrics *metrics.Recorder
}

// Close menutup koneksi DB bila ada.
func (d Deps) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}

// Bootstrap membuka MySQL dan client LLM sesuai config.
// Kegagalan keduanya hanya di-log: kalkulasi IPR/VLP/nodal tidak butuh DB maupun LLM.
func Bootstrap(ctx context.Context, cfg *config.Config, log *slog.Logger) Deps {
	deps := Deps{Metrics: metrics.New()}

	if cfg.MySQL.DSN == "" && cfg.MySQL.Host == "" {
		log.Warn("mysql not configured; skipping DB init")
	} else {
		conn, err := db.Open(ctx, db.Options{
			DSN:          cfg.MySQL.DSN,
			Host:         cfg.MySQL.Host,
			Port:         cfg.MySQL.Port,
			Name:         cfg.MySQL.DB,
			User:         cfg.MySQL.User,
			Password:     cfg.MySQL.Password,
			MaxOpen:      cfg.MySQL.MaxOpen,
			MaxIdle:      cfg.MySQL.MaxIdle,
			PingAttempts: 20,
		}, log)
		if err != nil {
			log.Error("mysql not ready; production tools disabled", "error", err)
		} else {
			deps.DB = conn
		}
	}

	client, err := llm.New(cfg.LLM)
	switch {
	case errors.Is(err, llm.ErrNoAPIKey):
		// fallback ekstraktif, sudah diperingatkan oleh cfg.Warn
	case err != nil:
		log.Warn("init llm client failed", "error", err)
	default:
		deps.LLM = client
	}
	return deps
}

// App menampung router utama
type App struct {
	Router  *mux.Router
	Config  *config.Config
	Log     *slog.Logger
	Metrics *metrics.Recorder
}

// New meng-inject dependency ke handler + registrasi semua routes (HTTP & MCP).
func New(cfg *config.Config, log *slog.Logger, deps Deps) *App {
	if log == nil {
		log = slog.Default()
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}

	// === Inject services ke handler MCP ===
	mcphandlers.SetAnalyzer(services.NewAnalyzer(cfg.Analysis, log, deps.Metrics))
	mcphandlers.SetNarrator(&services.Narrator{Client: deps.LLM, Log: log})
	if deps.DB != nil {
		repo := &mysqlrepo.ProductionRepo{DB: deps.DB}
		mcphandlers.SetProductionRepo(repo)
		hh.SetProductionWriter(repo)
	} else {
		mcphandlers.SetProductionRepo(nil)
		hh.SetProductionWriter(nil)
	}

	// ---- MCP (Model Context Protocol) ----
	mcp.SetLogger(log)
	mcp.SetChooser(deps.LLM)
	RegisterMCPTools()

	r := mux.NewRouter()
	RegisterRoutes(r, cfg, log, deps.Metrics)

	return &App{Router: r, Config: cfg, Log: log, Metrics: deps.Metrics}
}

// Server membungkus Router dengan timeout standar.
func (a *App) Server(addr string) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      a.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// ----------------- MCP Wiring -----------------

// RegisterMCPTools mendaftarkan semua tool MCP ke registry lalu memastikan
// setiap tool di katalog mcp-tools.json punya handler (fail-fast saat startup).
func RegisterMCPTools() {
	// IPR
	mcp.RegisterFunc("ipr_curve", mcphandlers.IPRCurveHandler)
	mcp.RegisterFunc("ipr_summary", mcphandlers.IPRSummaryHandler)
	mcp.RegisterFunc("ipr_productivity", mcphandlers.IPRProductivityHandler)

	// VLP & nodal
	mcp.RegisterFunc("vlp_table", mcphandlers.VLPTableHandler)
	mcp.RegisterFunc("nodal_analysis", mcphandlers.NodalAnalysisHandler)
	mcp.RegisterFunc("explain_nodal", mcphandlers.ExplainNodalHandler)

	// Produksi & analitik
	mcp.RegisterFunc("get_production", mcphandlers.GetProductionHandler)
	mcp.RegisterFunc("get_water_cut", mcphandlers.GetWaterCutHandler)
	mcp.RegisterFunc("detect_production_anomalies", mcphandlers.DetectProductionAnomaliesHandler)

	defs, err := mcp.LoadToolDefs()
	if err != nil {
		panic("mcp: load tool catalog: " + err.Error())
	}
	for _, d := range defs {
		mcp.MustGet(d.Name)
	}
}
