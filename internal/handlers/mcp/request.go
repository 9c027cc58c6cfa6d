// internal/handlers/mcp/request.go
// Decode input tool: body JSON (POST) lalu query string (GET) di atas nilai default.

package mcp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"nodal-oilgas/internal/util"
)

const maxBody = 1 << 20

// Kunci query yang selalu string walau isinya angka (mis. well_id=101).
var stringKeys = map[string]bool{
	"method": true, "grid": true, "regime": true,
	"well_id": true, "well": true, "start": true, "end": true,
}

func decodeInto(r *http.Request, dst any) error {
	if r.Body != nil && r.Method != http.MethodGet {
		raw, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
		if err != nil {
			return util.BadInput("read body: " + err.Error())
		}
		if len(bytes.TrimSpace(raw)) > 0 {
			if err := json.Unmarshal(raw, dst); err != nil {
				return util.BadInput("invalid json: " + err.Error())
			}
		}
	}

	q := r.URL.Query()
	if len(q) == 0 {
		return nil
	}
	m := make(map[string]any, len(q))
	for k, vs := range q {
		v := strings.TrimSpace(vs[0])
		switch {
		case v == "":
			continue
		case stringKeys[k]:
			m[k] = v
		case strings.Contains(v, ","):
			list, err := floatList(v)
			if err != nil {
				return util.BadInput(fmt.Sprintf("query %s: %v", k, err))
			}
			m[k] = list
		case v == "true" || v == "false":
			m[k] = v == "true"
		default:
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return util.BadInput(fmt.Sprintf("query %s: %q is not a number", k, v))
			}
			m[k] = f
		}
	}
	buf, _ := json.Marshal(m)
	if err := json.Unmarshal(buf, dst); err != nil {
		return util.BadInput("invalid query: " + err.Error())
	}
	return nil
}

func floatList(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", p)
		}
		out = append(out, f)
	}
	return out, nil
}

func notConfigured(w http.ResponseWriter, what string) {
	util.WriteJSON(w, http.StatusServiceUnavailable, map[string]any{
		"error":   "not_configured",
		"message": what + " not configured",
	})
}
