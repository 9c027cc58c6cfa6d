// internal/handlers/mcp/ipr_tools.go
// MCP Tools: ipr_curve, ipr_summary, ipr_productivity

package mcp

import (
	"net/http"

	"nodal-oilgas/internal/config"
	"nodal-oilgas/internal/services"
	"nodal-oilgas/internal/util"
)

// inject dari app
var analyzer *services.Analyzer

func SetAnalyzer(a *services.Analyzer) {
	analyzer = a
	readyAnalysis = a != nil
}

// IPRCurveHandler: kurva IPR (samples + spline) dan ringkasan.
func IPRCurveHandler(w http.ResponseWriter, r *http.Request) {
	if analyzer == nil {
		notConfigured(w, "analyzer")
		return
	}
	c := config.DefaultIPRCase()
	if err := decodeInto(r, &c); err != nil {
		util.WriteError(w, err)
		return
	}
	out, err := analyzer.IPRCurve(c)
	if err != nil {
		util.WriteError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, out)
}

func IPRSummaryHandler(w http.ResponseWriter, r *http.Request) {
	if analyzer == nil {
		notConfigured(w, "analyzer")
		return
	}
	c := config.DefaultIPRCase()
	if err := decodeInto(r, &c); err != nil {
		util.WriteError(w, err)
		return
	}
	out, err := analyzer.IPRSummary(c)
	if err != nil {
		util.WriteError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, out)
}

// IPRProductivityHandler: J dari ko, h, bo, uo, re, rw, s.
func IPRProductivityHandler(w http.ResponseWriter, r *http.Request) {
	if analyzer == nil {
		notConfigured(w, "analyzer")
		return
	}
	c := config.DefaultProductivityCase()
	if err := decodeInto(r, &c); err != nil {
		util.WriteError(w, err)
		return
	}
	out, err := analyzer.Productivity(c)
	if err != nil {
		util.WriteError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, out)
}
