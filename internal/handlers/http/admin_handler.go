// internal/handlers/http/admin_handler.go
// Upload CSV produksi harian (admin) -> upsert prod_allocation_daily

package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"nodal-oilgas/internal/ingest"
	mysqlrepo "nodal-oilgas/internal/repositories/mysql"
	"nodal-oilgas/internal/util"
)

const maxUpload = 32 << 20

// ProductionWriter dipenuhi *mysqlrepo.ProductionRepo.
type ProductionWriter interface {
	UpsertDaily(ctx context.Context, in []mysqlrepo.ProdRow) (int, error)
}

var productionWriter ProductionWriter

func SetProductionWriter(w ProductionWriter) { productionWriter = w }

type uploadResp struct {
	OK       bool   `json:"ok"`
	Filename string `json:"filename"`
	Rows     int    `json:"rows"`
	Wells    int    `json:"wells"`
	From     string `json:"from,omitempty"`
	To       string `json:"to,omitempty"`
}

func AdminUploadProduction(w http.ResponseWriter, r *http.Request) {
	if productionWriter == nil {
		http.Error(w, "production repo not configured", http.StatusServiceUnavailable)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
	f, hdr, err := r.FormFile("file")
	if err != nil {
		util.WriteError(w, util.BadInput("file missing"))
		return
	}
	defer f.Close()

	rows, err := ingest.ReadProductionCSV(f)
	if err != nil {
		util.WriteError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()
	n, err := productionWriter.UpsertDaily(ctx, rows)
	if err != nil {
		slog.Error("admin.upload_production", "file", hdr.Filename, "error", err)
		util.WriteJSON(w, http.StatusBadGateway, map[string]any{"error": "db_error", "message": err.Error()})
		return
	}

	out := uploadResp{OK: true, Filename: hdr.Filename, Rows: n}
	wells := map[string]struct{}{}
	for i, row := range rows {
		wells[row.WellID] = struct{}{}
		d := row.ProdDate.Format(time.DateOnly)
		if i == 0 || d < out.From {
			out.From = d
		}
		if d > out.To {
			out.To = d
		}
	}
	out.Wells = len(wells)
	slog.Info("admin.upload_production", "file", hdr.Filename, "rows", n, "wells", out.Wells)
	util.WriteJSON(w, http.StatusOK, out)
}
