// internal/handlers/mcp/ready_flags.go
package mcp

// Flag readiness per dependency; diset dari Set*(..) masing-masing handler.
var (
	readyAnalysis   bool
	readyProduction bool
	readyNarrator   bool
)

// ReposStatus mengembalikan status siap/tidaknya setiap dependency tool.
func ReposStatus() map[string]bool {
	return map[string]bool{
		"analysis":   readyAnalysis,
		"production": readyProduction,
		"narrator":   readyNarrator,
	}
}
