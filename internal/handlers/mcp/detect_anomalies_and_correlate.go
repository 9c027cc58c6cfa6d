// internal/handlers/mcp/detect_anomalies_and_correlate.go
// MCP Tool: detect_production_anomalies - anomali z-score minyak/air + korelasi keduanya

package mcp

import (
	"net/http"
	"sort"

	"nodal-oilgas/internal/services"
	"nodal-oilgas/internal/util"
)

type detectReq struct {
	prodReq
	MinZScore float64 `json:"min_zscore,omitempty"`
}

type DetectOutput struct {
	WellID      string             `json:"well_id"`
	Days        int                `json:"days"`
	MinZScore   float64            `json:"min_zscore"`
	Anomalies   []services.Anomaly `json:"anomalies"`
	Correlation *float64           `json:"oil_water_r,omitempty"`
}

func DetectProductionAnomaliesHandler(w http.ResponseWriter, r *http.Request) {
	if productionRepo == nil {
		http.Error(w, "production repo not configured", http.StatusServiceUnavailable)
		return
	}
	var in detectReq
	if err := decodeInto(r, &in); err != nil {
		util.WriteError(w, err)
		return
	}
	in.normalize()
	if in.WellID == "" {
		util.WriteError(w, util.BadInput("well_id is required"))
		return
	}
	zmin := in.MinZScore
	if zmin <= 0 {
		zmin = 2.5 // default
	}

	_, daily, err := loadProduction(r.Context(), in.prodReq)
	if err != nil {
		util.WriteError(w, err)
		return
	}
	// repo mengembalikan urutan tanggal menurun
	sort.SliceStable(daily, func(i, j int) bool { return daily[i].Date < daily[j].Date })

	out := DetectOutput{WellID: in.WellID, Days: len(daily), MinZScore: zmin, Anomalies: []services.Anomaly{}}
	// perlu minimal 3 titik
	if len(daily) >= 3 {
		for _, s := range []services.Series{services.OilSeries(daily), services.WaterSeries(daily)} {
			an, err := services.ZScoreAnomalies(s, zmin)
			if err != nil {
				util.WriteError(w, err)
				return
			}
			out.Anomalies = append(out.Anomalies, an...)
		}
		if rr, err := services.PearsonCorrelation(services.OilSeries(daily), services.WaterSeries(daily)); err == nil {
			out.Correlation = &rr
		}
	}
	util.WriteJSON(w, http.StatusOK, out)
}
