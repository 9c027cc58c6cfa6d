// internal/ipr/types.go
// Tipe nilai (value types) untuk perhitungan IPR: data uji sumur, kondisi reservoir, faktor efisiensi.

package ipr

import (
	"math"
	"strings"

	"nodal-oilgas/internal/util"
)

// WellTest adalah satu titik uji produksi: laju q_test (stb/d) pada tekanan alir pwf_test (psia).
type WellTest struct {
	QTest   float64 `json:"q_test" yaml:"q_test"`
	PwfTest float64 `json:"pwf_test" yaml:"pwf_test"`
}

// Reservoir menyimpan tekanan statik (pr) dan tekanan titik gelembung (pb), psia.
type Reservoir struct {
	Pr float64 `json:"pr" yaml:"pr"`
	Pb float64 `json:"pb" yaml:"pb"`
}

type Regime int

const (
	Subsaturated Regime = iota // pr > pb, satu fasa di reservoir
	Saturated                  // pr <= pb, dua fasa
)

func (r Regime) String() string {
	if r == Subsaturated {
		return "subsaturated"
	}
	return "saturated"
}

func (r Reservoir) Regime() Regime {
	if r.Pr > r.Pb {
		return Subsaturated
	}
	return Saturated
}

// Efficiency: EF = faktor efisiensi aliran saat ini (nol dianggap 1),
// EF2 = efisiensi target (opsional).
type Efficiency struct {
	EF  float64  `json:"ef,omitempty" yaml:"ef,omitempty"`
	EF2 *float64 `json:"ef2,omitempty" yaml:"ef2,omitempty"`
}

// Baseline: ef = 1 tanpa target (Darcy/Vogel murni).
func Baseline() Efficiency { return Efficiency{EF: 1} }

// WithTarget membuat Efficiency dengan ef saat ini dan ef2 target.
func WithTarget(ef, ef2 float64) Efficiency {
	return Efficiency{EF: ef, EF2: &ef2}
}

func (e Efficiency) Current() float64 {
	if e.EF == 0 {
		return 1
	}
	return e.EF
}

func (e Efficiency) HasTarget() bool { return e.EF2 != nil }

// Target mengembalikan ef2 bila ada, jika tidak ef saat ini.
func (e Efficiency) Target() float64 {
	if e.EF2 != nil {
		return *e.EF2
	}
	return e.Current()
}

// Point adalah satu sampel kurva inflow.
type Point struct {
	Pwf float64 `json:"pwf"`
	Qo  float64 `json:"qo"`
}

type Method string

const (
	MethodDarcy     Method = "Darcy"
	MethodVogel     Method = "Vogel"
	MethodStanding  Method = "Standing"
	MethodComposite Method = "Composite"
)

// ParseMethod menerima nama metode (case-insensitive). String kosong = Composite.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "composite", "ipr_compuesto", "compuesto":
		return MethodComposite, nil
	case "darcy":
		return MethodDarcy, nil
	case "vogel":
		return MethodVogel, nil
	case "standing":
		return MethodStanding, nil
	}
	return "", util.Configuration("unknown IPR method %q (want Darcy, Vogel, Standing or Composite)", s)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func validate(test WellTest, res Reservoir, eff Efficiency) error {
	for _, v := range []float64{test.QTest, test.PwfTest, res.Pr, res.Pb, eff.Current(), eff.Target()} {
		if !finite(v) {
			return util.Domain("non-finite input value %g", v)
		}
	}
	if res.Pr <= 0 {
		return util.Domain("reservoir pressure must be positive, got %g", res.Pr)
	}
	if res.Pb < 0 {
		return util.Domain("bubble-point pressure must not be negative, got %g", res.Pb)
	}
	if test.QTest <= 0 {
		return util.Domain("test rate must be positive, got %g", test.QTest)
	}
	if test.PwfTest < 0 {
		return util.Domain("test flowing pressure must not be negative, got %g", test.PwfTest)
	}
	if test.PwfTest >= res.Pr {
		return util.Domain("test flowing pressure %g must be below reservoir pressure %g", test.PwfTest, res.Pr)
	}
	if eff.Current() <= 0 {
		return util.Domain("efficiency factor ef must be positive, got %g", eff.EF)
	}
	if eff.HasTarget() && *eff.EF2 <= 0 {
		return util.Domain("target efficiency factor ef2 must be positive, got %g", *eff.EF2)
	}
	return nil
}

func checkPwf(res Reservoir, pwf float64) error {
	if !finite(pwf) || pwf < 0 || pwf > res.Pr {
		return util.Domain("flowing pressure %g outside [0, %g]", pwf, res.Pr)
	}
	return nil
}
