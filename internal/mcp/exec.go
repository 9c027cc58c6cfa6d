// internal/mcp/exec.go
package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type ExecResult struct {
	Route  Route  `json:"route"`
	Status int    `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

// simple recorder untuk menangkap output handler per-route
type respRecorder struct {
	status int
	hdr    http.Header
	buf    bytes.Buffer
}

func (r *respRecorder) Header() http.Header {
	if r.hdr == nil {
		r.hdr = http.Header{}
	}
	return r.hdr
}
func (r *respRecorder) WriteHeader(code int) {
	if r.status == 0 {
		r.status = code
	}
}
func (r *respRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.buf.Write(b)
}

// ExecuteRoutes menjalankan semua rute in-process secara berurutan.
// Error per rute dicatat di ExecResult; rute lain tetap dijalankan.
func ExecuteRoutes(ctx context.Context, routes []Route) []ExecResult {
	out := make([]ExecResult, 0, len(routes))
	for _, rt := range routes {
		h, ok := Get(rt.Tool)
		if !ok {
			out = append(out, ExecResult{Route: rt, Status: http.StatusNotFound, Error: "tool not found: " + rt.Tool})
			continue
		}

		body := []byte("{}")
		if !isJSONNullOrEmpty(rt.Params) {
			body = rt.Params
		}
		req, _ := http.NewRequestWithContext(ctx, http.MethodPost, "/mcp/internal/"+rt.Tool, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		rr := &respRecorder{}
		h.ServeHTTP(rr, req)
		if rr.status == 0 {
			rr.status = http.StatusOK
		}

		res := ExecResult{Route: rt, Status: rr.status}
		var data any
		if rr.buf.Len() > 0 {
			if err := json.Unmarshal(rr.buf.Bytes(), &data); err != nil {
				data = rr.buf.String() // fallback non-JSON
			}
		}
		if rr.status >= 400 {
			res.Error = errorText(data)
		} else {
			res.Data = data
		}
		out = append(out, res)
	}
	return out
}

// errorText mengambil "message" dari body {error,message} bila ada.
func errorText(data any) string {
	switch v := data.(type) {
	case map[string]any:
		if m, ok := v["message"].(string); ok && m != "" {
			return m
		}
		b, _ := json.Marshal(v)
		return string(b)
	case string:
		return strings.TrimSpace(v)
	}
	return "tool failed"
}
