// internal/handlers/mcp/get_water_cut.go
// MCP Tool: get_water_cut - deret water cut harian + nilai terbaru per sumur

package mcp

import (
	"net/http"

	"nodal-oilgas/internal/services"
	"nodal-oilgas/internal/util"
)

type waterCutResp struct {
	WellID string                   `json:"well_id"`
	Latest services.WaterCutPoint   `json:"latest"`
	Series []services.WaterCutPoint `json:"series"`
}

func GetWaterCutHandler(w http.ResponseWriter, r *http.Request) {
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
	in.exact = true
	if in.WellID == "" {
		util.WriteError(w, util.BadInput("well_id is required"))
		return
	}

	_, daily, err := loadProduction(r.Context(), in)
	if err != nil {
		util.WriteError(w, err)
		return
	}
	latest, err := services.LatestWaterCut(daily)
	if err != nil {
		util.WriteError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, waterCutResp{
		WellID: in.WellID,
		Latest: latest,
		Series: services.WaterCutSeries(daily),
	})
}
