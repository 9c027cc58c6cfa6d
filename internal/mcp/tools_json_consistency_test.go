// internal/mcp/tools_json_consistency_test.go

package mcp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apppkg "nodal-oilgas/internal/app"
	"nodal-oilgas/internal/mcp"
)

// Pastikan semua tool di mcp-tools.json SUDAH diregister, dan sebaliknya.
func TestToolsJSONMatchesRegistry(t *testing.T) {
	apppkg.RegisterMCPTools()

	defs, err := mcp.LoadToolDefs()
	require.NoError(t, err)
	require.NotEmpty(t, defs, "no tools found in mcp-tools.json")

	inCatalog := map[string]bool{}
	for _, d := range defs {
		inCatalog[d.Name] = true
		_, ok := mcp.Get(d.Name)
		assert.True(t, ok, "tool %q exists in mcp-tools.json but NOT registered", d.Name)
		assert.NotEmpty(t, d.Description, d.Name)
		assert.NotEmpty(t, d.InputSchema, d.Name)
	}
	for _, name := range mcp.List() {
		assert.True(t, inCatalog[name], "tool %q registered but missing from mcp-tools.json", name)
	}
}
