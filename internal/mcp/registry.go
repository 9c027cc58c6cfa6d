// internal/mcp/registry.go
// Registri tool nodal/produksi: nama tool -> http.Handler.
// Nama dinormalisasi (trim + lowercase) sama seperti di router.

package mcp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
)

type Registry struct {
	mu   sync.RWMutex
	data map[string]http.Handler
}

func NewRegistry() *Registry {
	return &Registry{data: make(map[string]http.Handler)}
}

// registri default yang diisi app.RegisterMCPTools saat startup
var reg = NewRegistry()

func toolKey(name string) string { return strings.ToLower(strings.TrimSpace(name)) }

// Register menimpa handler lama dengan nama yang sama. Nama kosong ditolak.
func (g *Registry) Register(name string, h http.Handler) {
	k := toolKey(name)
	if k == "" || h == nil {
		panic(fmt.Sprintf("mcp: invalid tool registration %q", name))
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.data[k] = h
}

func (g *Registry) Get(name string) (http.Handler, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	h, ok := g.data[toolKey(name)]
	return h, ok
}

// List: nama tool terurut, dipakai katalog /tools dan log router.
func (g *Registry) List() []string {
	g.mu.RLock()
	keys := make([]string, 0, len(g.data))
	for k := range g.data {
		keys = append(keys, k)
	}
	g.mu.RUnlock()
	sort.Strings(keys)
	return keys
}

func (g *Registry) Serve(w http.ResponseWriter, r *http.Request, name string) {
	if h, ok := g.Get(name); ok {
		w.Header().Set("X-MCP-Tool", toolKey(name))
		h.ServeHTTP(w, r)
		return
	}
	writeToolNotFound(w, name)
}

func writeToolNotFound(w http.ResponseWriter, name string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_ = json.NewEncoder(w).Encode(ToolResponse{Success: false, Error: "tool not found: " + name})
}

// ===== Fungsi paket di atas registri default =====

func Register(name string, h http.Handler) { reg.Register(name, h) }

func RegisterFunc(name string, fn func(http.ResponseWriter, *http.Request)) {
	Register(name, http.HandlerFunc(fn))
}

func Get(name string) (http.Handler, bool) { return reg.Get(name) }

// MustGet panic bila tool belum terdaftar (cek katalog saat startup).
func MustGet(name string) http.Handler {
	if h, ok := Get(name); ok {
		return h
	}
	panic(fmt.Sprintf("mcp: tool not found: %s", name))
}

func List() []string { return reg.List() }

// Serve dipakai route /tools/{name} (mux dan chi).
func Serve(w http.ResponseWriter, r *http.Request, name string) { reg.Serve(w, r, name) }
