// internal/handlers/mcp/get_production.go
// MCP Tool: get_production - ambil data produksi harian (minyak & air)

package mcp

import (
	"context"
	"net/http"
	"strings"
	"time"

	mysqlrepo "nodal-oilgas/internal/repositories/mysql"
	"nodal-oilgas/internal/services"
	"nodal-oilgas/internal/util"
)

// ProductionLister dipenuhi *mysqlrepo.ProductionRepo (dan fake di test).
type ProductionLister interface {
	ListDaily(ctx context.Context, f mysqlrepo.ProdFilter) ([]mysqlrepo.ProdRow, error)
}

// inject dari app
var (
	productionRepo ProductionLister
	clock          util.Clock = util.RealClock{}
)

func SetProductionRepo(r ProductionLister) {
	productionRepo = r
	readyProduction = r != nil
}

// SetClock dipakai test untuk rentang tanggal default yang deterministik.
func SetClock(c util.Clock) { clock = c }

type ProductionRow struct {
	Date     string   `json:"date"` // YYYY-MM-DD
	WellID   string   `json:"well_id"`
	OilVol   *float64 `json:"oil_vol,omitempty"`
	WaterVol *float64 `json:"water_vol,omitempty"`
	WaterCut *float64 `json:"water_cut,omitempty"`
}

type prodReq struct {
	WellID string `json:"well_id,omitempty"`
	Well   string `json:"well,omitempty"`  // alias
	Start  string `json:"start,omitempty"` // "2025-09-01"
	End    string `json:"end,omitempty"`   // "2025-09-20" (exclusive)
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`

	exact bool // well_id dicocokkan persis (jalur water cut)
}

func (in *prodReq) normalize() {
	in.WellID = strings.TrimSpace(in.WellID)
	if in.WellID == "" {
		in.WellID = strings.TrimSpace(in.Well)
	}
	in.Start = strings.TrimSpace(in.Start)
	in.End = strings.TrimSpace(in.End)
	// Default: 30 hari terakhir jika kosong
	if in.Start == "" && in.End == "" {
		in.Start, in.End = util.DayRange(clock, 30)
	}
}

func (in prodReq) filter() (mysqlrepo.ProdFilter, error) {
	parseDate := func(name, s string) (*time.Time, error) {
		if s == "" {
			return nil, nil
		}
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return nil, util.BadInput(name + " must be YYYY-MM-DD")
		}
		return &t, nil
	}
	start, err := parseDate("start", in.Start)
	if err != nil {
		return mysqlrepo.ProdFilter{}, err
	}
	end, err := parseDate("end", in.End)
	if err != nil {
		return mysqlrepo.ProdFilter{}, err
	}
	return mysqlrepo.ProdFilter{
		WellID: in.WellID, ExactWell: in.exact,
		Start: start, End: end, Limit: in.Limit, Offset: in.Offset,
	}, nil
}

// loadProduction mengambil baris dari repo dan mengubahnya ke services.DailyProd.
// Nilai NULL dibaca sebagai 0 dan barisnya ditandai Partial.
func loadProduction(ctx context.Context, in prodReq) ([]mysqlrepo.ProdRow, []services.DailyProd, error) {
	f, err := in.filter()
	if err != nil {
		return nil, nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, 6*time.Second)
	defer cancel()

	rows, err := productionRepo.ListDaily(ctx, f)
	if err != nil {
		return nil, nil, err
	}
	daily := make([]services.DailyProd, 0, len(rows))
	for _, rr := range rows {
		daily = append(daily, services.DailyProd{
			Date:    rr.ProdDate.Format(time.DateOnly),
			WellID:  rr.WellID,
			Oil:     rr.OilVol.Float64,
			Water:   rr.WaterVol.Float64,
			Partial: !rr.OilVol.Valid || !rr.WaterVol.Valid,
		})
	}
	return rows, daily, nil
}

func GetProductionHandler(w http.ResponseWriter, r *http.Request) {
	if productionRepo == nil {
		http.Error(w, "production repo not configured", http.StatusServiceUnavailable)
		return
	}

	var in prodReq
	if err := decodeInto(r, &in); err != nil {
		util.WriteError(w, err)
		return
	}
	in.normalize()

	rows, _, err := loadProduction(r.Context(), in)
	if err != nil {
		if util.CodeOf(err) != "" {
			util.WriteError(w, err)
			return
		}
		util.WriteJSON(w, http.StatusBadGateway, map[string]any{
			"error":   "db_error",
			"message": err.Error(),
			"input":   in,
		})
		return
	}

	out := make([]ProductionRow, 0, len(rows))
	for _, rr := range rows {
		rec := ProductionRow{
			Date:   rr.ProdDate.Format(time.DateOnly),
			WellID: rr.WellID,
		}
		if rr.OilVol.Valid {
			v := rr.OilVol.Float64
			rec.OilVol = &v
		}
		if rr.WaterVol.Valid {
			v := rr.WaterVol.Float64
			rec.WaterVol = &v
		}
		if rec.OilVol != nil && rec.WaterVol != nil && *rec.OilVol+*rec.WaterVol > 0 {
			wc := *rec.WaterVol / (*rec.OilVol + *rec.WaterVol)
			rec.WaterCut = &wc
		}
		out = append(out, rec)
	}

	util.WriteJSON(w, http.StatusOK, out)
}
