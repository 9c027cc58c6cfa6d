package nodal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nodal-oilgas/internal/ipr"
	"nodal-oilgas/internal/nodal"
	"nodal-oilgas/internal/util"
	"nodal-oilgas/internal/vlp"
)

type linear struct{ a, b float64 }

func (l linear) PwfAt(q float64) (float64, error) { return l.a + l.b*q, nil }

func TestRateGrids(t *testing.T) {
	g := nodal.DefaultRateGrid()
	require.Len(t, g, 10)
	assert.Equal(t, 0.0, g[0])
	assert.Equal(t, 7500.0, g[9])
	assert.InDelta(t, 7500.0/9, g[1], 1e-9)

	ref := nodal.ReferenceRateGrid()
	assert.Len(t, ref, 11)
	assert.Equal(t, 1400.0, ref[2])

	g, err := nodal.RateGrid(1000, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 250, 500, 750, 1000}, g)

	_, err = nodal.RateGrid(0, 5)
	assert.True(t, util.IsDomain(err))
	_, err = nodal.RateGrid(1000, 1)
	assert.True(t, util.IsDomain(err))
}

func TestSolveFindsInterpolatedIntersection(t *testing.T) {
	in := linear{3000, -0.4}
	out := linear{1200, 0.2}

	sc, err := nodal.Solve(in, out, nodal.DefaultRateGrid())
	require.NoError(t, err)
	require.Len(t, sc.Points, 10)

	require.NotNil(t, sc.Intersection)
	assert.InDelta(t, 3000, sc.Intersection.Q, 1e-6)
	assert.InDelta(t, 1800, sc.Intersection.Pwf, 1e-6)

	assert.InDelta(t, 7500.0*4/9, sc.Closest.Q, 1e-9)
	assert.InDelta(t, -200, sc.Closest.Gap, 1e-6)

	for _, p := range sc.Points {
		assert.InDelta(t, p.PwfOutflow-p.PwfInflow, p.PSystem, 1e-12)
		assert.Nil(t, p.VLP)
	}
}

func TestSolveExactHitOnGrid(t *testing.T) {
	sc, err := nodal.Solve(linear{1000, -0.1}, linear{500, 0.1}, []float64{0, 1000, 2500, 5000})
	require.NoError(t, err)
	require.NotNil(t, sc.Intersection)
	assert.Equal(t, 2500.0, sc.Intersection.Q)
	assert.Equal(t, 750.0, sc.Intersection.Pwf)
	assert.Equal(t, 2500.0, sc.Closest.Q)
}

// Data contoh tabel nodal lama: outflow selalu di atas inflow.
func TestSolveReferenceCase(t *testing.T) {
	in := nodal.IPR{
		Model:      ipr.Darcy{},
		Test:       ipr.WellTest{QTest: 1500, PwfTest: 2400},
		Reservoir:  ipr.Reservoir{Pr: 3000, Pb: 2300},
		Efficiency: ipr.Baseline(),
	}
	out := vlp.Well{
		Tubing: vlp.Tubing{InternalDiameterIn: 3.5, MeasuredDepthFt: 10500, TrueVerticalDepthFt: 9000, HazenWilliamsC: 120},
		Fluid:  vlp.Fluid{APIGravity: 20, WaterCut: 0.9, WaterSG: 1.09},
		THP:    360,
	}

	sc, err := nodal.Solve(in, out, nodal.ReferenceRateGrid())
	require.NoError(t, err)
	require.Len(t, sc.Points, 11)

	for _, p := range sc.Points {
		assert.InDelta(t, 3000-p.Q/2.5, p.PwfInflow, 1e-9)
		require.NotNil(t, p.VLP)
		assert.Equal(t, p.VLP.Pwf, p.PwfOutflow)
		assert.Greater(t, p.PSystem, 0.0)
	}
	assert.Nil(t, sc.Intersection)
	assert.Equal(t, 0.0, sc.Closest.Q)
}

func TestSolveRejectsBadGrid(t *testing.T) {
	in, out := linear{3000, -0.4}, linear{1200, 0.2}
	for name, rates := range map[string][]float64{
		"single":     {100},
		"negative":   {-1, 100},
		"unsorted":   {0, 500, 400},
		"duplicated": {0, 500, 500},
		"nan":        {0, math.NaN()},
	} {
		_, err := nodal.Solve(in, out, rates)
		assert.True(t, util.IsDomain(err), name)
	}
}

func TestIPRMaxRate(t *testing.T) {
	base := nodal.IPR{
		Test:       ipr.WellTest{QTest: 500, PwfTest: 3000},
		Reservoir:  ipr.Reservoir{Pr: 4000, Pb: 2500},
		Efficiency: ipr.Baseline(),
	}

	d := base
	d.Model = ipr.Darcy{}
	m, err := d.MaxRate()
	require.NoError(t, err)
	assert.True(t, math.IsInf(m, 1))

	v := base
	v.Model = ipr.Vogel{}
	m, err = v.MaxRate()
	require.NoError(t, err)
	assert.InDelta(t, 2000, m, 1e-6)

	_, err = v.PwfAt(m + 10)
	assert.True(t, util.IsDomain(err))

	// inflow error diteruskan oleh Solve
	_, err = nodal.Solve(v, linear{0, 0}, []float64{0, 2500})
	assert.True(t, util.IsDomain(err))
}
