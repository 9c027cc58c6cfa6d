// internal/handlers/mcp/vlp_table.go
// MCP Tool: vlp_table - tabel outflow (THP, Pgravity, f, F, Pf, Pwf) per laju

package mcp

import (
	"net/http"

	"nodal-oilgas/internal/config"
	"nodal-oilgas/internal/util"
	"nodal-oilgas/internal/vlp"
)

type vlpResp struct {
	Gradient float64      `json:"gradient_psi_ft"`
	Rows     []vlp.Result `json:"rows"`
}

func VLPTableHandler(w http.ResponseWriter, r *http.Request) {
	if analyzer == nil {
		notConfigured(w, "analyzer")
		return
	}
	c := config.DefaultNodalCase()
	if err := decodeInto(r, &c); err != nil {
		util.WriteError(w, err)
		return
	}
	rows, err := analyzer.VLP(c)
	if err != nil {
		util.WriteError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, vlpResp{Gradient: c.Well().Fluid.Gradient(), Rows: rows})
}
