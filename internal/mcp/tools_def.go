// internal/mcp/tools_def.go
package mcp

import (
	_ "embed"
	"encoding/json"
	"net/http"
	"sync"
)

// letakkan file di paket ini (tanpa "..")
//
//go:embed mcp-tools.json
var toolsJSON []byte

type ToolDef struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"input_schema,omitempty"`
}
type ToolCatalog struct {
	Tools []ToolDef `json:"tools"`
}

var (
	toolDefs     []ToolDef
	toolDefsOnce sync.Once
	toolDefsErr  error
)

func LoadToolDefs() ([]ToolDef, error) {
	toolDefsOnce.Do(func() {
		var cat ToolCatalog
		if err := json.Unmarshal(toolsJSON, &cat); err != nil {
			toolDefsErr = err
			return
		}
		toolDefs = cat.Tools
	})
	return toolDefs, toolDefsErr
}

type toolInfo struct {
	ToolDef
	Registered bool `json:"registered"`
}

// ToolsHandler mengembalikan katalog tool beserta status registrasinya.
func ToolsHandler(w http.ResponseWriter, r *http.Request) {
	defs, err := LoadToolDefs()
	if err != nil {
		http.Error(w, "tool catalog error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	out := make([]toolInfo, 0, len(defs))
	for _, d := range defs {
		_, ok := Get(d.Name)
		out = append(out, toolInfo{ToolDef: d, Registered: ok})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"tools": out})
}
