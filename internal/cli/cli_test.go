package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "")
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestIPRCommand(t *testing.T) {
	out, err := run(t, "ipr")
	require.NoError(t, err)
	assert.Contains(t, out, "Composite")
	assert.Contains(t, out, "Qb:          750.00 bpd")
	assert.Contains(t, out, "bubble point: pb=2500.0 psia")

	out, err = run(t, "ipr", "--summary", "--json", "--method", "Darcy")
	require.NoError(t, err)
	var s map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, "Darcy", s["method"])
	assert.InDelta(t, 0.5, s["j"], 1e-9)
}

func TestNodalCommandWithCaseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "well.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: w1\nnodal:\n  thp: 200\n  grid: reference\n"), 0o600))

	out, err := run(t, "nodal", "--case", path, "--explain")
	require.NoError(t, err)
	assert.Contains(t, out, "grid: reference")
	assert.Contains(t, out, "closest:")
	assert.Contains(t, out, "[extractive]")

	out, err = run(t, "vlp", "--case", path, "--json")
	require.NoError(t, err)
	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 11)
	assert.Equal(t, 200.0, rows[0]["thp"])
}

func TestCommandErrors(t *testing.T) {
	_, err := run(t, "ipr", "--method", "Jones")
	assert.Error(t, err)

	_, err = run(t, "nodal", "--case", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	out, err := run(t, "productivity", "--regime", "steady")
	require.NoError(t, err)
	assert.Contains(t, out, "J (steady)")
}

func TestCaseCommandRoundTrips(t *testing.T) {
	out, err := run(t, "case")
	require.NoError(t, err)
	assert.Contains(t, out, "q_test: 500")

	path := filepath.Join(t.TempDir(), "case.yaml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o600))
	again, err := run(t, "case", "--case", path)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}
