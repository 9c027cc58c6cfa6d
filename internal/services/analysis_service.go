// internal/services/analysis_service.go
// Layanan analisis: menerjemahkan kasus sumur (config.*Case) ke paket ipr/vlp/nodal,
// mencatat log + metrics per perhitungan.

package services

import (
	"log/slog"
	"math"
	"strings"
	"time"

	"nodal-oilgas/internal/config"
	"nodal-oilgas/internal/ipr"
	"nodal-oilgas/internal/metrics"
	"nodal-oilgas/internal/nodal"
	"nodal-oilgas/internal/util"
	"nodal-oilgas/internal/vlp"
)

type Analyzer struct {
	settings config.Analysis
	log      *slog.Logger
	metrics  *metrics.Recorder
}

func NewAnalyzer(settings config.Analysis, log *slog.Logger, m *metrics.Recorder) *Analyzer {
	if log == nil {
		log = slog.Default()
	}
	if settings.PressureStep <= 0 {
		settings.PressureStep = ipr.DefaultPressureStep
	}
	if settings.CurveResolution <= 0 {
		settings.CurveResolution = ipr.DefaultResolution
	}
	if settings.NodalMaxRate <= 0 {
		settings.NodalMaxRate = nodal.DefaultMaxRate
	}
	if settings.NodalGridPoints <= 0 {
		settings.NodalGridPoints = nodal.DefaultGridPoints
	}
	return &Analyzer{settings: settings, log: log, metrics: m}
}

func (a *Analyzer) Settings() config.Analysis { return a.settings }

// observe dipanggil lewat defer dengan alamat err.
func (a *Analyzer) observe(op string, start time.Time, err *error) {
	outcome := "ok"
	if *err != nil {
		outcome = util.CodeOf(*err)
		if outcome == "" {
			outcome = util.CodeInternal
		}
		a.log.Debug("analysis failed", "operation", op, "error", *err)
	}
	a.metrics.Observe(op, outcome, time.Since(start))
}

type IPRCurveResult struct {
	ID      string      `json:"id"`
	Curve   ipr.Curve   `json:"curve"`
	Summary ipr.Summary `json:"summary"`
}

// IPRCurve membangun kurva IPR + ringkasan untuk satu kasus.
func (a *Analyzer) IPRCurve(c config.IPRCase) (out IPRCurveResult, err error) {
	defer a.observe("ipr_curve", time.Now(), &err)

	if err = c.Validate(); err != nil {
		return IPRCurveResult{}, err
	}
	method, err := ipr.ParseMethod(c.Method)
	if err != nil {
		return IPRCurveResult{}, err
	}
	pressures := c.Pressures
	if len(pressures) == 0 {
		step := c.PressureStep
		if step <= 0 {
			step = a.settings.PressureStep
		}
		if pressures, err = ipr.PressureGrid(c.Pr, step); err != nil {
			return IPRCurveResult{}, err
		}
	}
	res := c.Resolution
	if res <= 0 {
		res = a.settings.CurveResolution
	}

	curve, err := ipr.Build(c.WellTest(), c.Reservoir(), pressures, method, c.Efficiency(), ipr.WithResolution(res))
	if err != nil {
		return IPRCurveResult{}, err
	}
	sum, err := a.summary(c, method)
	if err != nil {
		return IPRCurveResult{}, err
	}

	out = IPRCurveResult{ID: util.NewAnalysisID("ipr"), Curve: curve, Summary: sum}
	a.log.Info("ipr.curve",
		"id", out.ID, "method", method, "regime", curve.Regime,
		"samples", len(curve.Samples), "aof", sum.AOF)
	return out, nil
}

// IPRSummary: J, Qb, AOF dan Qo pada tekanan referensi.
func (a *Analyzer) IPRSummary(c config.IPRCase) (s ipr.Summary, err error) {
	defer a.observe("ipr_summary", time.Now(), &err)
	if err = c.Validate(); err != nil {
		return ipr.Summary{}, err
	}
	method, err := ipr.ParseMethod(c.Method)
	if err != nil {
		return ipr.Summary{}, err
	}
	return a.summary(c, method)
}

func (a *Analyzer) summary(c config.IPRCase, method ipr.Method) (ipr.Summary, error) {
	ref := c.ReferencePwf
	if ref <= 0 {
		// tanpa referensi eksplisit: 2000 psia, dibatasi pr untuk reservoir bertekanan rendah
		ref = min(ipr.DefaultReferencePwf, c.Pr)
	}
	return ipr.Summarize(c.WellTest(), c.Reservoir(), c.Efficiency(), method, ref)
}

type ProductivityResult struct {
	J      float64                 `json:"j"`
	Regime ipr.FlowRegime          `json:"regime"`
	Input  ipr.ReservoirProperties `json:"input"`
}

func (a *Analyzer) Productivity(c config.ProductivityCase) (out ProductivityResult, err error) {
	defer a.observe("ipr_productivity", time.Now(), &err)
	regime, err := ipr.ParseFlowRegime(c.Regime)
	if err != nil {
		return ProductivityResult{}, err
	}
	j, err := ipr.ProductivityFromReservoir(c.ReservoirProperties, regime)
	if err != nil {
		return ProductivityResult{}, err
	}
	return ProductivityResult{J: j, Regime: regime, Input: c.ReservoirProperties}, nil
}

// VLP: tabel outflow pada grid laju kasus.
func (a *Analyzer) VLP(c config.NodalCase) (rows []vlp.Result, err error) {
	defer a.observe("vlp", time.Now(), &err)
	rates, err := a.rates(c, math.Inf(1))
	if err != nil {
		return nil, err
	}
	return c.Well().Table(rates)
}

type NodalResult struct {
	ID      string            `json:"id"`
	Method  ipr.Method        `json:"method"`
	Grid    string            `json:"grid"`
	MaxRate float64           `json:"max_rate"`
	Curve   nodal.SystemCurve `json:"system"`
}

// Nodal menggabungkan IPR dan VLP. Untuk model selain Darcy grid dibatasi
// laju maksimum reservoir (Rate pada pwf=0).
func (a *Analyzer) Nodal(c config.NodalCase) (out NodalResult, err error) {
	defer a.observe("nodal", time.Now(), &err)

	if err = c.Validate(); err != nil {
		return NodalResult{}, err
	}
	method := ipr.MethodDarcy
	if strings.TrimSpace(c.Method) != "" {
		if method, err = ipr.ParseMethod(c.Method); err != nil {
			return NodalResult{}, err
		}
	}
	model, err := ipr.ModelFor(method)
	if err != nil {
		return NodalResult{}, err
	}
	in := nodal.IPR{Model: model, Test: c.WellTest(), Reservoir: c.Reservoir(), Efficiency: c.Efficiency()}
	limit, err := in.MaxRate()
	if err != nil {
		return NodalResult{}, err
	}
	rates, err := a.rates(c, limit)
	if err != nil {
		return NodalResult{}, err
	}

	sc, err := nodal.Solve(in, c.Well(), rates)
	if err != nil {
		return NodalResult{}, err
	}
	out = NodalResult{
		ID:      util.NewAnalysisID("nodal"),
		Method:  method,
		Grid:    gridName(c),
		MaxRate: rates[len(rates)-1],
		Curve:   sc,
	}
	attrs := []any{"id", out.ID, "method", method, "points", len(sc.Points), "closest_q", sc.Closest.Q}
	if sc.Intersection != nil {
		attrs = append(attrs, "operating_q", sc.Intersection.Q, "operating_pwf", sc.Intersection.Pwf)
	}
	a.log.Info("nodal.solve", attrs...)
	return out, nil
}

func gridName(c config.NodalCase) string {
	switch {
	case len(c.Rates) > 0:
		return "custom"
	case strings.EqualFold(c.Grid, "reference"):
		return "reference"
	}
	return "linspace"
}

// rates memilih grid laju: eksplisit, referensi, atau linspace(0, max, n) dengan max <= limit.
func (a *Analyzer) rates(c config.NodalCase, limit float64) ([]float64, error) {
	switch gridName(c) {
	case "custom":
		return c.Rates, nil
	case "reference":
		return nodal.ReferenceRateGrid(), nil
	}
	max := c.MaxRate
	if max <= 0 {
		max = a.settings.NodalMaxRate
	}
	max = math.Min(max, limit)
	n := c.GridPoints
	if n <= 0 {
		n = a.settings.NodalGridPoints
	}
	return nodal.RateGrid(max, n)
}
