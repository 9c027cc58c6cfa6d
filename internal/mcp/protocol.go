// mcp/protocol.go
// Definisi struktur dasar MCP protocol

package mcp

import "encoding/json"

// ToolRequest adalah envelope /mcp/route.
// Tool kosong = router memilih sendiri dari Question (keyword, lalu LLM).
type ToolRequest struct {
	Tool     string          `json:"tool,omitempty"`
	Question string          `json:"question,omitempty"`
	Params   json.RawMessage `json:"params,omitempty"`
}

type ToolResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}
