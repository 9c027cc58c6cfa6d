package ipr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Di pwf_test == pb kedua cabang J harus memberi hasil yang sama.
func TestProductivityIndexContinuousAtBubblePoint(t *testing.T) {
	res := Reservoir{Pr: 4000, Pb: 2500}
	test := WellTest{QTest: 500, PwfTest: 2500}

	for _, ef := range []float64{1, 0.7, 1.3} {
		darcyDen := res.Pr - test.PwfTest
		assert.InDelta(t, darcyDen, saturatedDenominator(test, res, ef), 1e-9, "ef=%g", ef)
	}
}

func TestEfficiencyFractions(t *testing.T) {
	// e == 1: Standing dan Vogel identik
	for _, x := range []float64{0, 0.25, 0.5, 0.9, 1} {
		assert.InDelta(t, vogel(x), 1.8*(1-x)-0.8*(1-x)*(1-x), 1e-12)
	}
	// di atas puncak (e > 1.125) fraksi tertahan di 1.0125
	assert.InDelta(t, 1.0125, standingCapped(2, 0), 1e-12)
	assert.InDelta(t, 1.0125, standingCapped(2, 0.3), 1e-12)
	assert.Less(t, standingCapped(2, 0.6), 1.0125)
}
