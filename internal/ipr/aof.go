// internal/ipr/aof.go
// AOF (absolute open flow) / Qmax: laju maksimum teoritis pada pwf = 0.

package ipr

import "nodal-oilgas/internal/util"

// AOF memilih koefisien dari aofRules berdasarkan kasus efisiensi,
// lalu bercabang pada regime reservoir dan posisi titik uji terhadap pb.
func AOF(test WellTest, res Reservoir, eff Efficiency) (float64, error) {
	if err := validate(test, res, eff); err != nil {
		return 0, err
	}
	c, err := ClassifyEfficiency(eff)
	if err != nil {
		return 0, err
	}
	return aof(test, res, eff, c)
}

func aof(test WellTest, res Reservoir, eff Efficiency, c EfficiencyCase) (float64, error) {
	rule := aofRules[c]
	ef, ef2 := eff.Current(), eff.Target()

	if res.Regime() == Subsaturated {
		j, err := productivityIndex(test, res, eff)
		if err != nil {
			return 0, err
		}
		if test.PwfTest >= res.Pb {
			return j * res.Pr, nil
		}
		qb := j * (res.Pr - res.Pb)
		return qb + j*res.Pb/1.8*rule.belowBubble(ef, ef2), nil
	}

	den := standing(ef, test.PwfTest/res.Pr)
	if den <= 0 || !finite(den) {
		return 0, util.Domain("AOF denominator is %g for ef=%g at pwf_test=%g", den, ef, test.PwfTest)
	}
	return test.QTest / den * rule.saturated(ef, ef2), nil
}
