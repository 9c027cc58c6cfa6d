// internal/mcp/router.go
// Router MCP: menerima request lalu memilih & mengeksekusi tool.

package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"nodal-oilgas/internal/llm"
)

const maxRouteBody = 1 << 20

// DefaultTool dipakai bila pertanyaan tidak cocok dengan heuristik apa pun.
const DefaultTool = "explain_nodal"

// inject dari app
var (
	chooser llm.Client
	logger  = slog.Default()
)

// SetChooser memasang client LLM untuk memilih tool; nil = hanya keyword + default.
func SetChooser(c llm.Client) { chooser = c }

func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

// ====== Heuristik keyword ======

type keywordRule struct {
	tool string
	re   *regexp.Regexp
}

// Urutan penting: aturan yang lebih spesifik di atas.
var keywordRules = []keywordRule{
	{"explain_nodal", regexp.MustCompile(`\b(jelaskan|explain|narasi|interpret\w*)\b.*\b(nodal|operasi|operating)\b`)},
	{"nodal_analysis", regexp.MustCompile(`\bnodal\b|titik operasi|operating point|\bipr\b.*\bvlp\b`)},
	{"vlp_table", regexp.MustCompile(`\bvlp\b|\btubing\b|\boutflow\b|hazen|friction|gesekan`)},
	{"ipr_productivity", regexp.MustCompile(`productivity index|indeks produktivitas|permeab|\bskin\b|darcy radial`)},
	{"ipr_summary", regexp.MustCompile(`\baof\b|absolute open flow|bubble point rate|\bqb\b|ringkas\w*.*\bipr\b`)},
	{"ipr_curve", regexp.MustCompile(`\bipr\b|kurva|inflow|vogel|standing|composite`)},
	{"detect_production_anomalies", regexp.MustCompile(`anomal\w*|korelasi|correlat\w*|z-?score`)},
	{"get_water_cut", regexp.MustCompile(`water ?cut|kadar air|\bwc\b`)},
	{"get_production", regexp.MustCompile(`produksi|production|\bminyak\b|\boil\b`)},
}

func chooseByKeyword(question string) string {
	q := strings.ToLower(question)
	for _, r := range keywordRules {
		if r.re.MatchString(q) {
			return r.tool
		}
	}
	return ""
}

// reWellID: nama sumur seperti "W-01", "PDK-12", "well_id=W-01".
var reWellID = regexp.MustCompile(`\b([A-Z]{1,4}-\d{1,4})\b`)

// tool yang menerima well_id
var wellTools = map[string]bool{
	"get_production":              true,
	"get_water_cut":               true,
	"detect_production_anomalies": true,
}

// enrichParams melengkapi params dari pertanyaan (well_id) tanpa menimpa nilai eksplisit.
func enrichParams(tool, question string, params json.RawMessage) json.RawMessage {
	pm := map[string]any{}
	if !isJSONNullOrEmpty(params) {
		if err := json.Unmarshal(params, &pm); err != nil {
			return params // biarkan handler melaporkan JSON yang salah
		}
	}
	if wellTools[tool] {
		if _, ok := pm["well_id"]; !ok {
			if m := reWellID.FindStringSubmatch(question); m != nil {
				pm["well_id"] = m[1]
			}
		}
	}
	buf, err := json.Marshal(pm)
	if err != nil {
		return params
	}
	return buf
}

// ====== Router Handler ======

type routeEnvelope struct {
	ToolRequest
	Plan   *Plan   `json:"plan,omitempty"`
	Routes []Route `json:"routes,omitempty"`
}

func RouterHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	reqID := r.Header.Get("X-Request-ID")

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxRouteBody))
	if err != nil {
		http.Error(w, "read body error", http.StatusBadRequest)
		logger.Error("mcp.route", "request_id", reqID, "error", fmt.Sprintf("read body: %v", err))
		return
	}
	defer r.Body.Close()

	var env routeEnvelope
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			logger.Error("mcp.route", "request_id", reqID, "error", fmt.Sprintf("unmarshal: %v", err))
			return
		}
	}

	// ===== 0) Multi-route: plan.routes atau routes di root =====
	routes := env.Routes
	if env.Plan != nil && len(env.Plan.Routes) > 0 {
		routes = env.Plan.Routes
	}
	if len(routes) > 0 {
		p := NormalizePlan(Plan{Routes: routes})
		items := ExecuteRoutes(r.Context(), p.Routes)
		failed := 0
		for _, it := range items {
			if it.Error != "" {
				failed++
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"mode":            "mcp",
			"routes_executed": len(items),
			"items":           items,
		})
		logger.Info("mcp.route",
			"request_id", reqID,
			"decision_by", "explicit-plan",
			"routes", len(items),
			"failed", failed,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return
	}

	// ===== 1) Pilih tool =====
	question := strings.TrimSpace(env.Question)
	if question == "" {
		question = questionFromParams(env.Params)
	}
	tool := strings.ToLower(strings.TrimSpace(env.Tool))
	decision := "explicit"
	if tool == "" {
		tool, decision = chooseTool(r.Context(), question)
	}

	h, ok := Get(tool)
	if !ok {
		writeToolNotFound(w, tool)
		logger.Warn("mcp.route",
			"request_id", reqID,
			"question", question,
			"request_tool", env.Tool,
			"chosen_tool", tool,
			"decision_by", decision,
			"registered_count", len(List()),
			"duration_ms", time.Since(start).Milliseconds(),
			"error", "tool not found",
		)
		return
	}

	// ===== 2) Forward: handler menerima hanya params JSON (tanpa envelope) =====
	forward := enrichParams(tool, question, env.Params)
	r2 := r.Clone(r.Context())
	r2.Method = http.MethodPost
	r2.URL.RawQuery = ""
	r2.Body = io.NopCloser(bytes.NewReader(forward))
	r2.ContentLength = int64(len(forward))
	r2.Header.Set("Content-Type", "application/json")
	w.Header().Set("X-MCP-Tool", tool)

	h.ServeHTTP(w, r2)

	logger.Info("mcp.route",
		"request_id", reqID,
		"question", question,
		"request_tool", env.Tool,
		"chosen_tool", tool,
		"decision_by", decision,
		"registered_count", len(List()),
		"has_llm", chooser != nil,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

// chooseTool: keyword -> LLM -> default.
func chooseTool(ctx context.Context, question string) (tool, decision string) {
	if question == "" {
		return DefaultTool, "default"
	}
	if t := chooseByKeyword(question); t != "" {
		if _, ok := Get(t); ok {
			return t, "keyword"
		}
	}
	if t := chooseToolWithLLM(ctx, question); t != "" {
		return t, "llm"
	}
	return DefaultTool, "default"
}

func questionFromParams(params json.RawMessage) string {
	if isJSONNullOrEmpty(params) {
		return ""
	}
	var m struct {
		Question string `json:"question"`
	}
	_ = json.Unmarshal(params, &m)
	return strings.TrimSpace(m.Question)
}

// ====== Chooser LLM ======

func chooseToolWithLLM(ctx context.Context, question string) string {
	if chooser == nil {
		return ""
	}
	defs, err := LoadToolDefs()
	if err != nil || len(defs) == 0 {
		return ""
	}

	// Filter hanya tool yang terdaftar di registry runtime
	var filtered []ToolDef
	for _, d := range defs {
		if _, ok := Get(d.Name); ok {
			filtered = append(filtered, d)
		}
	}
	if len(filtered) == 0 {
		return ""
	}

	// Timeout singkat agar responsif
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 4*time.Second)
		defer cancel()
	}

	out, err := chooser.Complete(ctx, llmSystemPromptID(), buildChooserUserPrompt(question, filtered))
	if err != nil {
		logger.Debug("mcp.choose_llm failed", "error", err)
		return ""
	}

	out = sanitizeToolToken(out)
	for _, d := range filtered {
		if strings.EqualFold(out, d.Name) {
			return d.Name
		}
	}
	return ""
}

func llmSystemPromptID() string {
	return `Anda adalah agen router untuk analisis sumur minyak.
- Pilih tepat SATU nama tool dari daftar.
- Balas hanya dengan nama tool (misal: nodal_analysis).
- Jika ragu, pilih "` + DefaultTool + `".`
}

func buildChooserUserPrompt(question string, defs []ToolDef) string {
	var b strings.Builder
	b.WriteString("Pertanyaan user:\n")
	b.WriteString(question)
	b.WriteString("\n\nDaftar tool tersedia:\n")
	for i, d := range defs {
		desc := strings.TrimSpace(d.Description)
		if len(desc) > 300 {
			desc = desc[:300] + "…"
		}
		fmt.Fprintf(&b, "%d) %s: %s\n", i+1, d.Name, desc)
	}
	b.WriteString("\nBalas hanya dengan nama tool.")
	return b.String()
}

var nonWord = regexp.MustCompile(`[^a-zA-Z0-9_\-]`)

func sanitizeToolToken(s string) string {
	s = strings.TrimSpace(s)
	s = nonWord.ReplaceAllString(s, "")
	return strings.ToLower(s)
}
