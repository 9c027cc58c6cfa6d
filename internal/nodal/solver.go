// internal/nodal/solver.go
// Analisis nodal: gabungkan sisi inflow (IPR) dan outflow (VLP) pada grid laju bersama,
// hitung kurva sistem, lalu cari titik operasi.

package nodal

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"nodal-oilgas/internal/ipr"
	"nodal-oilgas/internal/util"
	"nodal-oilgas/internal/vlp"
)

const (
	DefaultMaxRate    = 7500.0 // bpd
	DefaultGridPoints = 10
)

// Inflow: pwf yang dipasok reservoir pada laju q.
type Inflow interface {
	PwfAt(q float64) (float64, error)
}

// Outflow: pwf yang dibutuhkan tubing pada laju q.
type Outflow interface {
	PwfAt(q float64) (float64, error)
}

// breakdowner diimplementasikan vlp.Well; dipakai untuk mengisi kolom tabel VLP.
type breakdowner interface {
	Outflow(q float64) (vlp.Result, error)
}

// IPR mengadaptasi model laju ipr menjadi Inflow.
type IPR struct {
	Model      ipr.Model
	Test       ipr.WellTest
	Reservoir  ipr.Reservoir
	Efficiency ipr.Efficiency
}

func (i IPR) PwfAt(q float64) (float64, error) {
	return ipr.PwfAt(i.Model, i.Test, i.Reservoir, q, i.Efficiency)
}

// MaxRate: laju pada pwf=0. Darcy diekstrapolasi lurus sehingga tidak dibatasi (+Inf).
func (i IPR) MaxRate() (float64, error) {
	if i.Model.Method() == ipr.MethodDarcy {
		return math.Inf(1), nil
	}
	return i.Model.Rate(i.Test, i.Reservoir, 0, i.Efficiency)
}

// SystemPoint adalah satu baris tabel nodal.
type SystemPoint struct {
	Q          float64     `json:"q"`
	PwfInflow  float64     `json:"pwf"`
	PwfOutflow float64     `json:"po"`
	PSystem    float64     `json:"p_system"` // Po - Pwf
	VLP        *vlp.Result `json:"vlp,omitempty"`
}

type OperatingPoint struct {
	Q   float64 `json:"q"`
	Pwf float64 `json:"pwf"`
	// Gap = PwfInflow - PwfOutflow; nol untuk perpotongan hasil interpolasi.
	Gap float64 `json:"gap"`
}

type SystemCurve struct {
	Points  []SystemPoint   `json:"points"`
	Closest OperatingPoint  `json:"closest"`
	// nil bila kedua kurva tidak berpotongan di dalam grid.
	Intersection *OperatingPoint `json:"intersection,omitempty"`
}

// RateGrid: n titik berjarak sama di [0, max].
func RateGrid(max float64, n int) ([]float64, error) {
	if math.IsNaN(max) || math.IsInf(max, 0) || max <= 0 {
		return nil, util.Domain("maximum rate must be positive, got %g", max)
	}
	if n < 2 {
		return nil, util.Domain("rate grid needs at least 2 points, got %d", n)
	}
	return floats.Span(make([]float64, n), 0, max), nil
}

// DefaultRateGrid = linspace(0, 7500, 10).
func DefaultRateGrid() []float64 {
	return floats.Span(make([]float64, DefaultGridPoints), 0, DefaultMaxRate)
}

// ReferenceRateGrid adalah grid tabel nodal lama (AOF dibagi kira-kira 10 langkah).
func ReferenceRateGrid() []float64 {
	return []float64{0, 750, 1400, 2250, 3000, 3750, 4500, 5250, 6000, 6750, 7500}
}

func checkRates(rates []float64) error {
	if len(rates) < 2 {
		return util.Domain("nodal analysis needs at least 2 rates, got %d", len(rates))
	}
	for i, q := range rates {
		if math.IsNaN(q) || math.IsInf(q, 0) || q < 0 {
			return util.Domain("rate must be non-negative, got %g", q)
		}
		if i > 0 && q <= rates[i-1] {
			return util.Domain("rates must be strictly increasing (%g after %g)", q, rates[i-1])
		}
	}
	return nil
}

// Solve mengevaluasi kedua sisi di setiap laju. Kolom PSystem mengikuti tabel lama
// (Po - Pwf); titik operasi dicari dari selisih Pwf_IPR - Pwf_VLP.
func Solve(in Inflow, out Outflow, rates []float64) (SystemCurve, error) {
	if err := checkRates(rates); err != nil {
		return SystemCurve{}, err
	}

	bd, hasBreakdown := out.(breakdowner)
	points := make([]SystemPoint, 0, len(rates))
	for _, q := range rates {
		pwf, err := in.PwfAt(q)
		if err != nil {
			return SystemCurve{}, err
		}
		p := SystemPoint{Q: q, PwfInflow: pwf}
		if hasBreakdown {
			r, err := bd.Outflow(q)
			if err != nil {
				return SystemCurve{}, err
			}
			p.PwfOutflow = r.Pwf
			p.VLP = &r
		} else {
			po, err := out.PwfAt(q)
			if err != nil {
				return SystemCurve{}, err
			}
			p.PwfOutflow = po
		}
		p.PSystem = p.PwfOutflow - p.PwfInflow
		points = append(points, p)
	}

	sc := SystemCurve{Points: points}
	best := math.Inf(1)
	for _, p := range points {
		gap := p.PwfInflow - p.PwfOutflow
		if math.Abs(gap) < best {
			best = math.Abs(gap)
			sc.Closest = OperatingPoint{Q: p.Q, Pwf: p.PwfInflow, Gap: gap}
		}
	}
	sc.Intersection = intersect(points)
	return sc, nil
}

// intersect: perpotongan pertama (perubahan tanda gap) diinterpolasi linier.
func intersect(points []SystemPoint) *OperatingPoint {
	for i, p := range points {
		g1 := p.PwfInflow - p.PwfOutflow
		if g1 == 0 {
			return &OperatingPoint{Q: p.Q, Pwf: p.PwfInflow}
		}
		if i == 0 {
			continue
		}
		prev := points[i-1]
		g0 := prev.PwfInflow - prev.PwfOutflow
		if math.Signbit(g0) == math.Signbit(g1) {
			continue
		}
		t := g0 / (g0 - g1)
		return &OperatingPoint{
			Q:   prev.Q + t*(p.Q-prev.Q),
			Pwf: prev.PwfInflow + t*(p.PwfInflow-prev.PwfInflow),
		}
	}
	return nil
}
