// internal/mcp/plan.go
package mcp

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Route: satu pemanggilan tool di dalam plan multi-route.
type Route struct {
	Tool   string          `json:"tool"`
	Params json.RawMessage `json:"params,omitempty"` // payload JSON utk handler tool (RAW)
}

type Plan struct {
	Routes []Route `json:"routes"`
	Reason string  `json:"reason,omitempty"`
}

// maxRoutes membatasi jumlah rute per request (override via SetMaxRoutes).
var maxRoutes = 8

func SetMaxRoutes(n int) {
	if n > 0 {
		maxRoutes = n
	}
}

// NormalizePlan merapikan plan dari client/LLM:
// nama tool di-trim + lowercase, rute tanpa tool dibuang, params kosong/null jadi {},
// dan jumlah rute dipotong ke maxRoutes.
func NormalizePlan(p Plan) Plan {
	out := Plan{Reason: p.Reason, Routes: make([]Route, 0, len(p.Routes))}
	for _, r := range p.Routes {
		r.Tool = strings.ToLower(strings.TrimSpace(r.Tool))
		if r.Tool == "" {
			continue
		}
		if isJSONNullOrEmpty(r.Params) {
			r.Params = json.RawMessage(`{}`)
		}
		out.Routes = append(out.Routes, r)
		if len(out.Routes) == maxRoutes {
			break
		}
	}
	return out
}

func isJSONNullOrEmpty(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}
