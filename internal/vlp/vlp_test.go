package vlp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nodal-oilgas/internal/util"
	"nodal-oilgas/internal/vlp"
)

var (
	tubing = vlp.Tubing{InternalDiameterIn: 3.5, MeasuredDepthFt: 10500, TrueVerticalDepthFt: 9000, HazenWilliamsC: 120}
	fluid  = vlp.Fluid{APIGravity: 20, WaterCut: 0.9, WaterSG: 1.09}
)

func TestOutflowAtZeroRate(t *testing.T) {
	r, err := vlp.Outflow(0, tubing, fluid, 360)
	require.NoError(t, err)

	sg := 0.9*1.09 + 0.1*(141.5/151.5)
	assert.InDelta(t, sg*0.433*9000, r.Pgravity, 1e-9)
	assert.InDelta(t, 4186.93, r.Pgravity, 0.01)
	assert.Equal(t, 0.0, r.FrictionFactor)
	assert.Equal(t, 0.0, r.FrictionLoss)
	assert.InDelta(t, 360+r.Pgravity, r.Pwf, 1e-9)
}

func TestOutflowFriction(t *testing.T) {
	r, err := vlp.Outflow(3000, tubing, fluid, 360)
	require.NoError(t, err)

	f := 2.083 * math.Pow(100*3000/(34.3*120), 1.85) * math.Pow(1/3.5, 4.8655) / 1000
	assert.InDelta(t, f, r.FrictionFactor, 1e-12)
	assert.InDelta(t, f*10500, r.FrictionHead, 1e-9)
	assert.InDelta(t, fluid.Gradient()*f*10500, r.FrictionLoss, 1e-9)
	assert.InDelta(t, r.THP+r.Pgravity+r.FrictionLoss, r.Pwf, 1e-9)
}

func TestOutflowIncreasesWithRate(t *testing.T) {
	w := vlp.Well{Tubing: tubing, Fluid: fluid, THP: 360}
	rows, err := w.Table([]float64{0, 750, 1500, 3000, 7500})
	require.NoError(t, err)
	for i := 1; i < len(rows); i++ {
		assert.Greater(t, rows[i].Pwf, rows[i-1].Pwf)
		assert.Equal(t, rows[0].Pgravity, rows[i].Pgravity)
	}
}

func TestDefaultHazenWilliamsC(t *testing.T) {
	noC := tubing
	noC.HazenWilliamsC = 0
	a, err := vlp.Outflow(1500, noC, fluid, 360)
	require.NoError(t, err)
	b, err := vlp.Outflow(1500, tubing, fluid, 360)
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

func TestOutflowDomainErrors(t *testing.T) {
	cases := map[string]func() error{
		"negative rate": func() error { _, err := vlp.Outflow(-1, tubing, fluid, 360); return err },
		"nan rate":      func() error { _, err := vlp.Outflow(math.NaN(), tubing, fluid, 360); return err },
		"negative thp":  func() error { _, err := vlp.Outflow(10, tubing, fluid, -1); return err },
		"zero id": func() error {
			bad := tubing
			bad.InternalDiameterIn = 0
			_, err := vlp.Outflow(10, bad, fluid, 360)
			return err
		},
		"md shorter than tvd": func() error {
			bad := tubing
			bad.MeasuredDepthFt = 8000
			_, err := vlp.Outflow(10, bad, fluid, 360)
			return err
		},
		"water cut above one": func() error {
			bad := fluid
			bad.WaterCut = 1.2
			_, err := vlp.Outflow(10, tubing, bad, 360)
			return err
		},
		"zero api": func() error {
			bad := fluid
			bad.APIGravity = 0
			_, err := vlp.Outflow(10, tubing, bad, 360)
			return err
		},
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			err := fn()
			require.Error(t, err)
			assert.True(t, util.IsDomain(err))
		})
	}
}

func TestWellPwfAt(t *testing.T) {
	w := vlp.Well{Tubing: tubing, Fluid: fluid, THP: 360}
	p, err := w.PwfAt(1500)
	require.NoError(t, err)
	r, err := vlp.Outflow(1500, tubing, fluid, 360)
	require.NoError(t, err)
	assert.Equal(t, r.Pwf, p)

	_, err = w.PwfAt(-3)
	assert.True(t, util.IsDomain(err))
}

func TestSGOil(t *testing.T) {
	assert.InDelta(t, 1.0, vlp.SGOil(10), 1e-12)
	assert.InDelta(t, 0.9340, vlp.SGOil(20), 1e-4)
}
