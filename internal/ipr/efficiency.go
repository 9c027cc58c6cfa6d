// internal/ipr/efficiency.go
// Tabel keputusan faktor efisiensi (Vogel/Standing) untuk AOF dan kurva komposit.

package ipr

import (
	"strconv"

	"nodal-oilgas/internal/util"
)

type EfficiencyCase int

const (
	CaseBaseline   EfficiencyCase = iota // ef == 1, tanpa ef2
	CaseDamaged                          // ef < 1
	CaseImproved                         // ef > 1
	CaseStimulated                       // ef < 1, ef2 >= 1
	CaseHigherSkin                       // ef > 1, ef2 <= 1
)

func (c EfficiencyCase) String() string {
	switch c {
	case CaseBaseline:
		return "baseline"
	case CaseDamaged:
		return "damaged"
	case CaseImproved:
		return "improved"
	case CaseStimulated:
		return "stimulated"
	case CaseHigherSkin:
		return "higher_skin"
	}
	return "unknown"
}

// ClassifyEfficiency memetakan (ef, ef2) ke salah satu dari lima kasus.
// Kombinasi lain (ef == 1 dengan ef2, ef<1 & ef2<1, ef>1 & ef2>1) adalah ConfigurationError.
func ClassifyEfficiency(eff Efficiency) (EfficiencyCase, error) {
	ef := eff.Current()
	if !eff.HasTarget() {
		switch {
		case ef == 1:
			return CaseBaseline, nil
		case ef < 1:
			return CaseDamaged, nil
		default:
			return CaseImproved, nil
		}
	}
	ef2 := *eff.EF2
	switch {
	case ef < 1 && ef2 >= 1:
		return CaseStimulated, nil
	case ef > 1 && ef2 <= 1:
		return CaseHigherSkin, nil
	}
	return 0, util.Configuration("invalid combination of ef=%s and ef2=%s",
		strconv.FormatFloat(ef, 'g', -1, 64), strconv.FormatFloat(ef2, 'g', -1, 64))
}

// aofRule adalah set koefisien satu kasus efisiensi.
type aofRule struct {
	// pengali J·pb/1.8 untuk reservoir subsaturated dengan titik uji di bawah pb
	belowBubble func(ef, ef2 float64) float64
	// pengali q_test/S_ef(pwf_test/pr) untuk reservoir saturated
	saturated func(ef, ef2 float64) float64
}

func one(_, _ float64) float64 { return 1 }

var aofRules = map[EfficiencyCase]aofRule{
	CaseBaseline: {belowBubble: one, saturated: one},
	CaseDamaged: {
		belowBubble: func(ef, _ float64) float64 { return 1.8 - 0.8*ef },
		saturated:   func(ef, _ float64) float64 { return 1.8*ef - 0.8*ef*ef },
	},
	CaseImproved: {
		belowBubble: func(ef, _ float64) float64 { return 0.624 + 0.376*ef },
		saturated:   func(ef, _ float64) float64 { return 0.624 + 0.376*ef },
	},
	CaseStimulated: {
		belowBubble: func(_, ef2 float64) float64 { return 0.624 + 0.376*ef2 },
		saturated:   func(_, ef2 float64) float64 { return 0.624 + 0.376*ef2 },
	},
	CaseHigherSkin: {
		belowBubble: func(_, ef2 float64) float64 { return 1.8 - 0.8*ef2 },
		saturated:   func(_, ef2 float64) float64 { return 1.8 - 0.8*ef2*ef2 },
	},
}

// vogel: 1 - 0.2x - 0.8x², x = pwf/pr.
func vogel(x float64) float64 {
	return 1 - 0.2*x - 0.8*x*x
}

// standing: 1.8e(1-x) - 0.8e²(1-x)². e == 1 jatuh ke bentuk Vogel.
func standing(e, x float64) float64 {
	if e == 1 {
		return vogel(x)
	}
	y := 1 - x
	return 1.8*e*y - 0.8*e*e*y*y
}

// standingCapped sama dengan standing, tetapi ditahan di puncaknya
// saat (1-x) melewati 1.125/e sehingga laju tidak turun ketika pwf turun.
func standingCapped(e, x float64) float64 {
	if e == 1 {
		return vogel(x)
	}
	y := 1 - x
	if peak := 1.125 / e; y > peak {
		y = peak
	}
	return 1.8*e*y - 0.8*e*e*y*y
}

// belowBubbleFraction: 1.8(1-x) - 0.8e(1-x)², x = pwf/pb, dengan batas puncak yang sama.
func belowBubbleFraction(e, x float64) float64 {
	if e == 1 {
		return vogel(x)
	}
	y := 1 - x
	if peak := 1.125 / e; y > peak {
		y = peak
	}
	return 1.8*y - 0.8*e*y*y
}
