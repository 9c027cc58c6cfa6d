// internal/vlp/vlp.go
// Vertical lift performance: tekanan dasar sumur yang dibutuhkan tubing pada laju q
// (gradien hidrostatik campuran + friksi Hazen-Williams).

package vlp

import (
	"math"

	"nodal-oilgas/internal/util"
)

const (
	FreshWaterGradient    = 0.433 // psi/ft
	DefaultHazenWilliamsC = 120.0
)

// Tubing: geometri tubing. HazenWilliamsC kosong = 120.
type Tubing struct {
	InternalDiameterIn  float64 `json:"id_in" yaml:"id_in"`
	MeasuredDepthFt     float64 `json:"md_ft" yaml:"md_ft"`
	TrueVerticalDepthFt float64 `json:"tvd_ft" yaml:"tvd_ft"`
	HazenWilliamsC      float64 `json:"c,omitempty" yaml:"c,omitempty"`
}

type Fluid struct {
	APIGravity float64 `json:"api" yaml:"api"`
	WaterCut   float64 `json:"water_cut" yaml:"water_cut"` // fraksi 0..1
	WaterSG    float64 `json:"sg_water" yaml:"sg_water"`
}

// Result adalah satu baris tabel VLP.
type Result struct {
	Q              float64 `json:"q"`
	THP            float64 `json:"thp"`
	Pgravity       float64 `json:"p_gravity"`
	FrictionFactor float64 `json:"f"`
	FrictionHead   float64 `json:"friction_head_ft"`
	FrictionLoss   float64 `json:"p_friction"`
	Pwf            float64 `json:"pwf"`
}

func (t Tubing) c() float64 {
	if t.HazenWilliamsC == 0 {
		return DefaultHazenWilliamsC
	}
	return t.HazenWilliamsC
}

func (t Tubing) validate() error {
	switch {
	case !positive(t.InternalDiameterIn):
		return util.Domain("tubing internal diameter must be positive, got %g", t.InternalDiameterIn)
	case !positive(t.TrueVerticalDepthFt):
		return util.Domain("true vertical depth must be positive, got %g", t.TrueVerticalDepthFt)
	case !positive(t.MeasuredDepthFt):
		return util.Domain("measured depth must be positive, got %g", t.MeasuredDepthFt)
	case t.MeasuredDepthFt < t.TrueVerticalDepthFt:
		return util.Domain("measured depth %g is shorter than vertical depth %g", t.MeasuredDepthFt, t.TrueVerticalDepthFt)
	case !positive(t.c()):
		return util.Domain("hazen-williams C must be positive, got %g", t.HazenWilliamsC)
	}
	return nil
}

func (f Fluid) validate() error {
	switch {
	case !positive(f.APIGravity):
		return util.Domain("API gravity must be positive, got %g", f.APIGravity)
	case !positive(f.WaterSG):
		return util.Domain("water specific gravity must be positive, got %g", f.WaterSG)
	case math.IsNaN(f.WaterCut) || f.WaterCut < 0 || f.WaterCut > 1:
		return util.Domain("water cut must be within [0, 1], got %g", f.WaterCut)
	}
	return nil
}

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 0) }

// SGOil: specific gravity minyak dari API.
func SGOil(api float64) float64 { return 141.5 / (131.5 + api) }

// MixtureSG = wc·SG_w + (1-wc)·SG_oil
func (f Fluid) MixtureSG() float64 {
	return f.WaterCut*f.WaterSG + (1-f.WaterCut)*SGOil(f.APIGravity)
}

// Gradient fluida campuran, psi/ft.
func (f Fluid) Gradient() float64 { return f.MixtureSG() * FreshWaterGradient }

// FrictionFactor Hazen-Williams (ft head per ft pipa); q dalam bpd, id dalam inch.
func FrictionFactor(q, id, c float64) float64 {
	return 2.083 * math.Pow(100*q/(34.3*c), 1.85) * math.Pow(1/id, 4.8655) / 1000
}

// Outflow menghitung pwf yang dibutuhkan tubing: THP + Pgravity + Pf.
// Pf = g·F, bukan f·MD: F = f·MD adalah head gesekan dalam ft, jadi harus dikali
// gradien fluida (psi/ft) agar bersatuan psi seperti Pgravity.
func Outflow(q float64, t Tubing, f Fluid, thp float64) (Result, error) {
	if math.IsNaN(q) || math.IsInf(q, 0) || q < 0 {
		return Result{}, util.Domain("rate must be non-negative, got %g", q)
	}
	if math.IsNaN(thp) || math.IsInf(thp, 0) || thp < 0 {
		return Result{}, util.Domain("tubing head pressure must be non-negative, got %g", thp)
	}
	if err := t.validate(); err != nil {
		return Result{}, err
	}
	if err := f.validate(); err != nil {
		return Result{}, err
	}

	g := f.Gradient()
	ff := FrictionFactor(q, t.InternalDiameterIn, t.c())
	head := ff * t.MeasuredDepthFt
	r := Result{
		Q:              q,
		THP:            thp,
		Pgravity:       g * t.TrueVerticalDepthFt,
		FrictionFactor: ff,
		FrictionHead:   head,
		FrictionLoss:   g * head,
	}
	r.Pwf = r.THP + r.Pgravity + r.FrictionLoss
	return r, nil
}

// Well mengikat tubing, fluida dan THP menjadi sisi outflow analisis nodal.
type Well struct {
	Tubing Tubing  `json:"tubing" yaml:"tubing"`
	Fluid  Fluid   `json:"fluid" yaml:"fluid"`
	THP    float64 `json:"thp" yaml:"thp"`
}

func (w Well) Outflow(q float64) (Result, error) { return Outflow(q, w.Tubing, w.Fluid, w.THP) }

func (w Well) PwfAt(q float64) (float64, error) {
	r, err := w.Outflow(q)
	if err != nil {
		return 0, err
	}
	return r.Pwf, nil
}

// Table mengevaluasi Outflow pada setiap laju.
func (w Well) Table(rates []float64) ([]Result, error) {
	out := make([]Result, 0, len(rates))
	for _, q := range rates {
		r, err := w.Outflow(q)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
