// internal/ipr/productivity.go
// Indeks produktivitas (J), laju di titik gelembung (Qb), dan J dari sifat reservoir (hukum Darcy).

package ipr

import (
	"math"
	"strings"

	"nodal-oilgas/internal/util"
)

// ProductivityIndex menghitung J (stb/d/psi) dari satu titik uji.
func ProductivityIndex(test WellTest, res Reservoir, eff Efficiency) (float64, error) {
	if err := validate(test, res, eff); err != nil {
		return 0, err
	}
	return productivityIndex(test, res, eff)
}

func productivityIndex(test WellTest, res Reservoir, eff Efficiency) (float64, error) {
	ef := eff.Current()

	var den float64
	if test.PwfTest >= res.Pb {
		den = res.Pr - test.PwfTest
	} else {
		den = saturatedDenominator(test, res, ef)
	}
	if den <= 0 || !finite(den) {
		return 0, util.Domain("productivity index denominator is %g (pr=%g, pb=%g, pwf_test=%g)",
			den, res.Pr, res.Pb, test.PwfTest)
	}

	j := test.QTest / den
	if ef != 1 && eff.HasTarget() {
		j = j / ef * *eff.EF2
	}
	return j, nil
}

// saturatedDenominator: (pr - pb) + (pb/1.8)·bracket, bracket Vogel (ef == 1) atau Standing.
func saturatedDenominator(test WellTest, res Reservoir, ef float64) float64 {
	x := test.PwfTest / res.Pb
	var bracket float64
	if ef == 1 {
		bracket = vogel(x)
	} else {
		bracket = 1.8*(1-x) - 0.8*ef*(1-x)*(1-x)
	}
	return (res.Pr - res.Pb) + res.Pb/1.8*bracket
}

// BubblePointRate: Qb = J·(pr - pb). Hanya bermakna untuk reservoir subsaturated.
func BubblePointRate(test WellTest, res Reservoir, eff Efficiency) (float64, error) {
	if err := validate(test, res, eff); err != nil {
		return 0, err
	}
	if res.Regime() != Subsaturated {
		return 0, util.Domain("bubble-point rate is undefined for a saturated reservoir (pr=%g <= pb=%g)", res.Pr, res.Pb)
	}
	j, err := productivityIndex(test, res, eff)
	if err != nil {
		return 0, err
	}
	return j * (res.Pr - res.Pb), nil
}

// ReservoirProperties: input J Darcy (ko mD, h ft, bo rb/stb, uo cp, re/rw ft, s skin).
type ReservoirProperties struct {
	Ko   float64 `json:"ko" yaml:"ko"`
	H    float64 `json:"h" yaml:"h"`
	Bo   float64 `json:"bo" yaml:"bo"`
	Uo   float64 `json:"uo" yaml:"uo"`
	Re   float64 `json:"re" yaml:"re"`
	Rw   float64 `json:"rw" yaml:"rw"`
	Skin float64 `json:"s" yaml:"s"`
}

type FlowRegime string

const (
	PseudoSteady FlowRegime = "pseudo-steady"
	Steady       FlowRegime = "steady"
)

// ParseFlowRegime menerima juga nama lama "seudocontinuo"/"continuo". Kosong = pseudo-steady.
func ParseFlowRegime(s string) (FlowRegime, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pseudo-steady", "pseudosteady", "pss", "seudocontinuo":
		return PseudoSteady, nil
	case "steady", "ss", "continuo":
		return Steady, nil
	}
	return "", util.Configuration("unknown flow regime %q (want pseudo-steady or steady)", s)
}

// ProductivityFromReservoir: J = ko·h / (141.2·bo·uo·(ln(re/rw) [- 0.75] + s)).
func ProductivityFromReservoir(p ReservoirProperties, regime FlowRegime) (float64, error) {
	for name, v := range map[string]float64{"ko": p.Ko, "h": p.H, "bo": p.Bo, "uo": p.Uo, "re": p.Re, "rw": p.Rw} {
		if !finite(v) || v <= 0 {
			return 0, util.Domain("%s must be positive, got %g", name, v)
		}
	}
	if p.Re <= p.Rw {
		return 0, util.Domain("drainage radius re=%g must exceed wellbore radius rw=%g", p.Re, p.Rw)
	}

	term := math.Log(p.Re/p.Rw) + p.Skin
	switch regime {
	case PseudoSteady:
		term -= 0.75
	case Steady:
	default:
		return 0, util.Configuration("unknown flow regime %q", regime)
	}

	den := 141.2 * p.Bo * p.Uo * term
	if den <= 0 || !finite(den) {
		return 0, util.Domain("darcy productivity denominator is %g (skin %g too negative?)", den, p.Skin)
	}
	return p.Ko * p.H / den, nil
}
