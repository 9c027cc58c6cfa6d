package services_test

import (
	"bytes"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nodal-oilgas/internal/config"
	"nodal-oilgas/internal/ipr"
	"nodal-oilgas/internal/metrics"
	"nodal-oilgas/internal/services"
	"nodal-oilgas/internal/util"
)

func newAnalyzer(t *testing.T) (*services.Analyzer, *metrics.Recorder) {
	t.Helper()
	m := metrics.New()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return services.NewAnalyzer(config.Analysis{}, log, m), m
}

func TestAnalyzerDefaults(t *testing.T) {
	a, _ := newAnalyzer(t)
	s := a.Settings()
	assert.Equal(t, 400.0, s.PressureStep)
	assert.Equal(t, 500, s.CurveResolution)
	assert.Equal(t, 7500.0, s.NodalMaxRate)
	assert.Equal(t, 10, s.NodalGridPoints)
}

func TestIPRCurveDefaultCase(t *testing.T) {
	a, m := newAnalyzer(t)
	out, err := a.IPRCurve(config.DefaultIPRCase())
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, ipr.MethodComposite, out.Curve.Method)
	assert.Len(t, out.Curve.Samples, 10) // 4000, 3600, ..., 400
	assert.Len(t, out.Curve.Smooth, 500)
	require.NotNil(t, out.Curve.BubblePoint)
	assert.InDelta(t, 750, out.Curve.BubblePoint.Qo, 1e-6)
	assert.InDelta(t, 2000, out.Summary.AOF, 1e-6)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ComputationCounter("ipr_curve", "ok")))
}

func TestIPRCurveExplicitPressures(t *testing.T) {
	a, _ := newAnalyzer(t)
	c := config.DefaultIPRCase()
	c.Method = "Darcy"
	c.Pressures = []float64{4000, 2000, 0}
	c.Resolution = 600
	out, err := a.IPRCurve(c)
	require.NoError(t, err)
	assert.Len(t, out.Curve.Samples, 3)
	assert.Len(t, out.Curve.Smooth, 600)
	assert.Nil(t, out.Curve.BubblePoint)
}

func TestIPRCurveLowPressureReservoir(t *testing.T) {
	a, _ := newAnalyzer(t)
	c := config.IPRCase{QTest: 300, PwfTest: 1200, Pr: 1800, Pb: 1000}
	out, err := a.IPRCurve(c)
	require.NoError(t, err)
	assert.NotEmpty(t, out.Curve.Samples)
	assert.Equal(t, 1800.0, out.Summary.ReferencePwf)
	assert.InDelta(t, 0, out.Summary.Qo, 1e-9)

	// referensi eksplisit di luar [0, pr] tetap ditolak
	c.ReferencePwf = 2000
	_, err = a.IPRSummary(c)
	assert.True(t, util.IsDomain(err), "got %v", err)

	s, err := a.IPRSummary(config.DefaultIPRCase())
	require.NoError(t, err)
	assert.Equal(t, ipr.DefaultReferencePwf, s.ReferencePwf)
}

func TestExplicitZeroEFIsRejected(t *testing.T) {
	a, _ := newAnalyzer(t)
	zero := 0.0

	c := config.DefaultIPRCase()
	c.EF = &zero
	_, err := a.IPRCurve(c)
	assert.True(t, util.IsDomain(err), "got %v", err)
	_, err = a.IPRSummary(c)
	assert.True(t, util.IsDomain(err), "got %v", err)

	n := config.DefaultNodalCase()
	n.EF = &zero
	_, err = a.Nodal(n)
	assert.True(t, util.IsDomain(err), "got %v", err)

	// tanpa ef sama dengan ef = 1
	one := 1.0
	c = config.DefaultIPRCase()
	base, err := a.IPRSummary(c)
	require.NoError(t, err)
	c.EF = &one
	explicit, err := a.IPRSummary(c)
	require.NoError(t, err)
	assert.Equal(t, base, explicit)
}

func TestIPRCurveErrorsAreCounted(t *testing.T) {
	a, m := newAnalyzer(t)

	c := config.DefaultIPRCase()
	c.Method = "Jones"
	_, err := a.IPRCurve(c)
	assert.True(t, util.IsConfiguration(err))

	c = config.DefaultIPRCase()
	c.Pr = -5
	_, err = a.IPRCurve(c)
	assert.True(t, util.IsDomain(err))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ComputationCounter("ipr_curve", "configuration")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ComputationCounter("ipr_curve", "domain")))
}

func TestProductivity(t *testing.T) {
	a, _ := newAnalyzer(t)
	out, err := a.Productivity(config.DefaultProductivityCase())
	require.NoError(t, err)
	assert.Equal(t, ipr.PseudoSteady, out.Regime)
	assert.InDelta(t, 2500/(141.2*2.4*(math.Log(2000)-0.75)), out.J, 1e-9)

	c := config.DefaultProductivityCase()
	c.Regime = "radial"
	_, err = a.Productivity(c)
	assert.True(t, util.IsConfiguration(err))
}

func TestVLPTable(t *testing.T) {
	a, _ := newAnalyzer(t)
	c := config.DefaultNodalCase()
	c.Grid = "reference"
	rows, err := a.VLP(c)
	require.NoError(t, err)
	require.Len(t, rows, 11)
	assert.Equal(t, 0.0, rows[0].FrictionLoss)
	assert.InDelta(t, 360+rows[0].Pgravity, rows[0].Pwf, 1e-9)
}

func TestNodalDefaultCase(t *testing.T) {
	a, _ := newAnalyzer(t)
	out, err := a.Nodal(config.DefaultNodalCase())
	require.NoError(t, err)

	assert.Equal(t, ipr.MethodDarcy, out.Method)
	assert.Equal(t, "linspace", out.Grid)
	assert.Equal(t, 7500.0, out.MaxRate)
	assert.Len(t, out.Curve.Points, 10)
	assert.Nil(t, out.Curve.Intersection)
}

func TestNodalGridCappedByInflow(t *testing.T) {
	a, _ := newAnalyzer(t)
	c := config.DefaultNodalCase()
	c.Method = "Vogel"
	out, err := a.Nodal(c)
	require.NoError(t, err)

	qmax, err := ipr.AOF(c.WellTest(), c.Reservoir(), c.Efficiency())
	require.NoError(t, err)
	assert.InDelta(t, math.Min(7500, qmax), out.MaxRate, 1e-9)
	last := out.Curve.Points[len(out.Curve.Points)-1]
	assert.InDelta(t, 0, last.PwfInflow, 1e-6)
}

func TestNodalCustomRates(t *testing.T) {
	a, _ := newAnalyzer(t)
	c := config.DefaultNodalCase()
	c.Rates = []float64{0, 100, 200}
	out, err := a.Nodal(c)
	require.NoError(t, err)
	assert.Equal(t, "custom", out.Grid)
	assert.Len(t, out.Curve.Points, 3)

	c.Rates = []float64{200, 100}
	_, err = a.Nodal(c)
	assert.True(t, util.IsDomain(err))
}

func TestAnalyzerLogsNodal(t *testing.T) {
	var buf bytes.Buffer
	a := services.NewAnalyzer(config.Analysis{}, util.NewLoggerTo(&buf, "json", "info"), nil)
	_, err := a.Nodal(config.DefaultNodalCase())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"nodal.solve"`)
}
