// internal/handlers/mcp/nodal_tools.go
// MCP Tools: nodal_analysis, explain_nodal

package mcp

import (
	"context"
	"net/http"

	"nodal-oilgas/internal/config"
	"nodal-oilgas/internal/services"
	"nodal-oilgas/internal/util"
)

var narrator *services.Narrator

func SetNarrator(n *services.Narrator) {
	narrator = n
	readyNarrator = n != nil && n.Client != nil
}

type nodalReq struct {
	config.NodalCase
	// Bila true, water_cut diambil dari produksi terbaru well_id (30 hari terakhir).
	UseLatestWaterCut bool   `json:"use_latest_water_cut,omitempty"`
	WellID            string `json:"well_id,omitempty"`
}

type nodalResp struct {
	services.NodalResult
	WaterCutFrom *services.WaterCutPoint `json:"water_cut_from,omitempty"`
	Explanation  *services.Explanation   `json:"explanation,omitempty"`
}

func decodeNodal(r *http.Request) (nodalReq, error) {
	in := nodalReq{NodalCase: config.DefaultNodalCase()}
	if err := decodeInto(r, &in); err != nil {
		return nodalReq{}, err
	}
	return in, nil
}

// applyLatestWaterCut mengganti water_cut kasus dengan water cut produksi terbaru.
func applyLatestWaterCut(ctx context.Context, in *nodalReq) (*services.WaterCutPoint, error) {
	if !in.UseLatestWaterCut {
		return nil, nil
	}
	if productionRepo == nil {
		return nil, util.BadInput("use_latest_water_cut requires the production repo")
	}
	if in.WellID == "" {
		return nil, util.BadInput("use_latest_water_cut requires well_id")
	}
	q := prodReq{WellID: in.WellID, exact: true}
	q.normalize()
	_, daily, err := loadProduction(ctx, q)
	if err != nil {
		return nil, err
	}
	p, err := services.LatestWaterCut(daily)
	if err != nil {
		return nil, err
	}
	in.WaterCut = p.WaterCut
	return &p, nil
}

func runNodal(w http.ResponseWriter, r *http.Request, explain bool) {
	if analyzer == nil {
		notConfigured(w, "analyzer")
		return
	}
	in, err := decodeNodal(r)
	if err != nil {
		util.WriteError(w, err)
		return
	}
	from, err := applyLatestWaterCut(r.Context(), &in)
	if err != nil {
		util.WriteError(w, err)
		return
	}
	res, err := analyzer.Nodal(in.NodalCase)
	if err != nil {
		util.WriteError(w, err)
		return
	}
	out := nodalResp{NodalResult: res, WaterCutFrom: from}
	if explain {
		e := narrator.Explain(r.Context(), res)
		out.Explanation = &e
	}
	util.WriteJSON(w, http.StatusOK, out)
}

// NodalAnalysisHandler: tabel sistem IPR vs VLP + titik operasi.
func NodalAnalysisHandler(w http.ResponseWriter, r *http.Request) { runNodal(w, r, false) }

// ExplainNodalHandler: seperti nodal_analysis + narasi (LLM atau ekstraktif).
func ExplainNodalHandler(w http.ResponseWriter, r *http.Request) { runNodal(w, r, true) }
