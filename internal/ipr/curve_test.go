package ipr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nodal-oilgas/internal/ipr"
	"nodal-oilgas/internal/util"
)

func TestPressureGrid(t *testing.T) {
	grid, err := ipr.PressureGrid(4000, ipr.DefaultPressureStep)
	require.NoError(t, err)
	assert.Equal(t, []float64{4000, 3600, 3200, 2800, 2400, 2000, 1600, 1200, 800, 400}, grid)

	_, err = ipr.PressureGrid(4000, 0)
	assert.True(t, util.IsDomain(err))
	_, err = ipr.PressureGrid(-1, 400)
	assert.True(t, util.IsDomain(err))
}

func TestBuildCompositeCurve(t *testing.T) {
	grid, err := ipr.PressureGrid(subsatRes.Pr, 400)
	require.NoError(t, err)

	curve, err := ipr.Build(testAbove, subsatRes, grid, ipr.MethodComposite, ipr.Baseline())
	require.NoError(t, err)

	require.Len(t, curve.Samples, len(grid))
	require.Len(t, curve.Smooth, ipr.DefaultResolution)
	assert.Equal(t, "subsaturated", curve.Regime)

	// samples: qo naik, pwf turun
	for i := 1; i < len(curve.Samples); i++ {
		assert.Greater(t, curve.Samples[i].Qo, curve.Samples[i-1].Qo)
		assert.Less(t, curve.Samples[i].Pwf, curve.Samples[i-1].Pwf)
	}

	// spline melewati knot ujung dan tetap monoton
	first, last := curve.Samples[0], curve.Samples[len(curve.Samples)-1]
	assert.InDelta(t, first.Qo, curve.Smooth[0].Qo, 1e-9)
	assert.InDelta(t, first.Pwf, curve.Smooth[0].Pwf, 1e-6)
	assert.InDelta(t, last.Qo, curve.Smooth[len(curve.Smooth)-1].Qo, 1e-9)
	assert.InDelta(t, last.Pwf, curve.Smooth[len(curve.Smooth)-1].Pwf, 1e-6)
	for i := 1; i < len(curve.Smooth); i++ {
		assert.LessOrEqual(t, curve.Smooth[i].Pwf, curve.Smooth[i-1].Pwf+1e-9)
	}

	require.NotNil(t, curve.BubblePoint)
	assert.InDelta(t, 750, curve.BubblePoint.Qo, tol)
	assert.Equal(t, 2500.0, curve.BubblePoint.Pwf)
}

func TestBuildAnnotatesBubblePointOnlyWhenMeaningful(t *testing.T) {
	grid := []float64{4000, 3000, 2000, 1000, 0}

	for _, m := range []ipr.Method{ipr.MethodDarcy, ipr.MethodVogel} {
		curve, err := ipr.Build(testAbove, subsatRes, grid, m, ipr.Baseline())
		require.NoError(t, err)
		assert.Nil(t, curve.BubblePoint, m)
	}

	curve, err := ipr.Build(testAbove, subsatRes, grid, ipr.MethodStanding, ipr.Efficiency{EF: 0.8})
	require.NoError(t, err)
	assert.NotNil(t, curve.BubblePoint)

	// reservoir saturated: Qb tidak bermakna, tanpa anotasi
	curve, err = ipr.Build(testSat, saturatedRs, []float64{2000, 1500, 1000, 500, 0}, ipr.MethodComposite, ipr.Baseline())
	require.NoError(t, err)
	assert.Nil(t, curve.BubblePoint)
	assert.Equal(t, "saturated", curve.Regime)
}

func TestBuildRejectsDegenerateInput(t *testing.T) {
	_, err := ipr.Build(testAbove, subsatRes, []float64{3000}, ipr.MethodComposite, ipr.Baseline())
	require.Error(t, err)
	assert.True(t, util.IsDomain(err))

	_, err = ipr.Build(testAbove, subsatRes, nil, ipr.MethodDarcy, ipr.Baseline())
	assert.True(t, util.IsDomain(err))

	// tekanan duplikat → laju duplikat
	_, err = ipr.Build(testAbove, subsatRes, []float64{3000, 2000, 3000}, ipr.MethodDarcy, ipr.Baseline())
	assert.True(t, util.IsDomain(err))

	// tekanan di luar [0, pr]
	_, err = ipr.Build(testAbove, subsatRes, []float64{4500, 2000}, ipr.MethodDarcy, ipr.Baseline())
	assert.True(t, util.IsDomain(err))

	_, err = ipr.Build(testAbove, subsatRes, []float64{3000, 2000}, ipr.Method("Jones"), ipr.Baseline())
	assert.True(t, util.IsConfiguration(err))
}

func TestBuildWithResolution(t *testing.T) {
	grid := []float64{4000, 2000, 0}
	curve, err := ipr.Build(testAbove, subsatRes, grid, ipr.MethodDarcy, ipr.Baseline(), ipr.WithResolution(800))
	require.NoError(t, err)
	assert.Len(t, curve.Smooth, 800)

	curve, err = ipr.Build(testAbove, subsatRes, grid, ipr.MethodDarcy, ipr.Baseline(), ipr.WithResolution(10))
	require.NoError(t, err)
	assert.Len(t, curve.Smooth, ipr.DefaultResolution)

	// data Darcy linier: spline tetap garis lurus
	mid := curve.Smooth[len(curve.Smooth)/2]
	assert.InDelta(t, 4000-mid.Qo/0.5, mid.Pwf, 1e-6)
}

func TestPwfAtInvertsRate(t *testing.T) {
	for _, sc := range scenarios() {
		for _, m := range allModels {
			for _, pwf := range []float64{sc.res.Pr * 0.9, sc.res.Pr * 0.6, sc.res.Pr * 0.4} {
				q, err := m.Rate(sc.test, sc.res, pwf, sc.eff)
				require.NoError(t, err)

				got, err := ipr.PwfAt(m, sc.test, sc.res, q, sc.eff)
				require.NoError(t, err, "%s/%s", sc.name, m.Method())
				assert.InDelta(t, pwf, got, 1e-3, "%s/%s q=%g", sc.name, m.Method(), q)
			}
		}
	}
}

func TestPwfAtLimits(t *testing.T) {
	p, err := ipr.PwfAt(ipr.Darcy{}, testAbove, subsatRes, 0, ipr.Baseline())
	require.NoError(t, err)
	assert.Equal(t, 4000.0, p)

	// Darcy mengekstrapolasi di atas J·pr
	p, err = ipr.PwfAt(ipr.Darcy{}, testAbove, subsatRes, 2500, ipr.Baseline())
	require.NoError(t, err)
	assert.InDelta(t, -1000, p, tol)

	p, err = ipr.PwfAt(ipr.Vogel{}, testAbove, subsatRes, 2000, ipr.Baseline())
	require.NoError(t, err)
	assert.InDelta(t, 0, p, tol)

	_, err = ipr.PwfAt(ipr.Vogel{}, testAbove, subsatRes, 2001, ipr.Baseline())
	assert.True(t, util.IsDomain(err))

	qmax, err := ipr.Composite{}.Rate(testAbove, subsatRes, 0, ipr.Baseline())
	require.NoError(t, err)
	_, err = ipr.PwfAt(ipr.Composite{}, testAbove, subsatRes, qmax+1, ipr.Baseline())
	assert.True(t, util.IsDomain(err))

	p, err = ipr.PwfAt(ipr.Standing{}, testAbove, subsatRes, 0, ipr.Efficiency{EF: 0.8})
	require.NoError(t, err)
	assert.Equal(t, 4000.0, p)

	_, err = ipr.PwfAt(ipr.Standing{}, testAbove, subsatRes, -5, ipr.Baseline())
	assert.True(t, util.IsDomain(err))
}

func TestProductivityFromReservoir(t *testing.T) {
	props := ipr.ReservoirProperties{Ko: 50, H: 50, Bo: 1.2, Uo: 2, Re: 1000, Rw: 0.5, Skin: 0}

	j, err := ipr.ProductivityFromReservoir(props, ipr.PseudoSteady)
	require.NoError(t, err)
	assert.InDelta(t, 2500/(141.2*1.2*2*(math.Log(2000)-0.75)), j, 1e-9)

	j, err = ipr.ProductivityFromReservoir(props, ipr.Steady)
	require.NoError(t, err)
	assert.InDelta(t, 2500/(141.2*1.2*2*math.Log(2000)), j, 1e-9)

	bad := props
	bad.Rw = 2000
	_, err = ipr.ProductivityFromReservoir(bad, ipr.Steady)
	assert.True(t, util.IsDomain(err))

	bad = props
	bad.Skin = -20
	_, err = ipr.ProductivityFromReservoir(bad, ipr.PseudoSteady)
	assert.True(t, util.IsDomain(err))

	_, err = ipr.ProductivityFromReservoir(props, ipr.FlowRegime("radial"))
	assert.True(t, util.IsConfiguration(err))

	r, err := ipr.ParseFlowRegime("continuo")
	require.NoError(t, err)
	assert.Equal(t, ipr.Steady, r)
	_, err = ipr.ParseFlowRegime("transient")
	assert.True(t, util.IsConfiguration(err))
}

func TestSummarize(t *testing.T) {
	s, err := ipr.Summarize(testAbove, subsatRes, ipr.Baseline(), ipr.MethodComposite, ipr.DefaultReferencePwf)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, s.J, tol)
	require.NotNil(t, s.Qb)
	assert.InDelta(t, 750, *s.Qb, tol)
	assert.InDelta(t, 2000, s.AOF, tol)
	assert.InDelta(t, 750+0.5*2500/1.8*vogelFrac(0.8), s.Qo, tol)
	assert.Equal(t, "baseline", s.EfficiencyCase)

	s, err = ipr.Summarize(testSat, saturatedRs, ipr.Baseline(), ipr.MethodVogel, 1000)
	require.NoError(t, err)
	assert.Nil(t, s.Qb)
	assert.InDelta(t, 500, s.Qo, tol)
}
