// internal/services/narrator_service.go
// Narasi hasil nodal: LLM bila tersedia, fallback ekstraktif (deterministik) bila tidak.

package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"nodal-oilgas/internal/llm"
)

type Explanation struct {
	Text   string `json:"text"`
	Source string `json:"source"` // llm|extractive
	Model  string `json:"model,omitempty"`
}

type Narrator struct {
	Client llm.Client // nil = selalu ekstraktif
	Log    *slog.Logger
}

func (n *Narrator) Explain(ctx context.Context, res NodalResult) Explanation {
	facts := ExtractiveSummary(res)
	if n == nil || n.Client == nil {
		return Explanation{Text: facts, Source: "extractive"}
	}

	system := `Anda adalah petroleum engineer. Jelaskan hasil analisis nodal secara singkat (maks 5 kalimat).
- Gunakan hanya angka yang diberikan.
- Jika kurva tidak berpotongan, katakan sumur tidak dapat mengalir alami pada kondisi ini.`
	out, err := n.Client.Complete(ctx, system, facts)
	if err != nil || strings.TrimSpace(out) == "" {
		if n.Log != nil {
			n.Log.Warn("nodal explanation fell back to extractive", "error", err)
		}
		return Explanation{Text: facts, Source: "extractive"}
	}
	return Explanation{Text: out, Source: "llm", Model: n.Client.Model()}
}

// ExtractiveSummary merangkum SystemCurve menjadi beberapa kalimat fakta.
func ExtractiveSummary(res NodalResult) string {
	sc := res.Curve
	var b strings.Builder
	fmt.Fprintf(&b, "Nodal analysis (%s IPR, %d rates from 0 to %.0f bpd).", res.Method, len(sc.Points), res.MaxRate)
	if len(sc.Points) > 0 {
		p0 := sc.Points[0]
		fmt.Fprintf(&b, " At q=%.0f bpd IPR pwf is %.1f psia and tubing requires %.1f psia.", p0.Q, p0.PwfInflow, p0.PwfOutflow)
	}
	if sc.Intersection != nil {
		fmt.Fprintf(&b, " Operating point: q≈%.0f bpd at pwf≈%.1f psia.", sc.Intersection.Q, sc.Intersection.Pwf)
	} else {
		b.WriteString(" IPR and VLP do not intersect on this grid; the well cannot flow naturally at these conditions.")
	}
	fmt.Fprintf(&b, " Closest grid point: q=%.0f bpd (gap %.1f psi).", sc.Closest.Q, sc.Closest.Gap)
	return b.String()
}
