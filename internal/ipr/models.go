// internal/ipr/models.go
// Model laju (rate models): Darcy, Vogel, Standing, Composite.

package ipr

import "nodal-oilgas/internal/util"

// Model menghitung laju minyak qo (stb/d) pada tekanan alir pwf.
type Model interface {
	Method() Method
	Rate(test WellTest, res Reservoir, pwf float64, eff Efficiency) (float64, error)
}

type (
	Darcy     struct{}
	Vogel     struct{}
	Standing  struct{}
	Composite struct{}
)

var models = map[Method]Model{
	MethodDarcy:     Darcy{},
	MethodVogel:     Vogel{},
	MethodStanding:  Standing{},
	MethodComposite: Composite{},
}

// ModelFor mengembalikan model untuk method; method tak dikenal = ConfigurationError.
func ModelFor(m Method) (Model, error) {
	if mdl, ok := models[m]; ok {
		return mdl, nil
	}
	return nil, util.Configuration("unknown IPR method %q", m)
}

func checkInputs(test WellTest, res Reservoir, pwf float64, eff Efficiency) error {
	if err := validate(test, res, eff); err != nil {
		return err
	}
	return checkPwf(res, pwf)
}

func (Darcy) Method() Method { return MethodDarcy }

// Rate: qo = J·(pr - pwf). Linear; valid di atas pb.
func (Darcy) Rate(test WellTest, res Reservoir, pwf float64, eff Efficiency) (float64, error) {
	if err := checkInputs(test, res, pwf, eff); err != nil {
		return 0, err
	}
	j, err := productivityIndex(test, res, eff)
	if err != nil {
		return 0, err
	}
	return j * (res.Pr - pwf), nil
}

func (Vogel) Method() Method { return MethodVogel }

// Rate: qo = AOF·(1 - 0.2(pwf/pr) - 0.8(pwf/pr)²).
func (Vogel) Rate(test WellTest, res Reservoir, pwf float64, eff Efficiency) (float64, error) {
	if err := checkInputs(test, res, pwf, eff); err != nil {
		return 0, err
	}
	c, err := ClassifyEfficiency(eff)
	if err != nil {
		return 0, err
	}
	qmax, err := aof(test, res, eff, c)
	if err != nil {
		return 0, err
	}
	return qmax * vogel(pwf/res.Pr), nil
}

func (Standing) Method() Method { return MethodStanding }

// Rate: Vogel yang dikoreksi efisiensi. Fraksi Standing dinormalisasi terhadap nilainya
// di pwf = 0 sehingga Rate(0) == AOF(eff); e = efisiensi target.
func (Standing) Rate(test WellTest, res Reservoir, pwf float64, eff Efficiency) (float64, error) {
	if err := checkInputs(test, res, pwf, eff); err != nil {
		return 0, err
	}
	c, err := ClassifyEfficiency(eff)
	if err != nil {
		return 0, err
	}
	qmax, err := aof(test, res, eff, c)
	if err != nil {
		return 0, err
	}
	e := eff.Target()
	return qmax * standingCapped(e, pwf/res.Pr) / standingCapped(e, 0), nil
}

func (Composite) Method() Method { return MethodComposite }

// Rate: pr > pb → Darcy di atas pb, koreksi bertumpu Qb di bawah pb.
// pr <= pb → Vogel (baseline) atau Standing (ef != 1).
func (Composite) Rate(test WellTest, res Reservoir, pwf float64, eff Efficiency) (float64, error) {
	if err := checkInputs(test, res, pwf, eff); err != nil {
		return 0, err
	}
	c, err := ClassifyEfficiency(eff)
	if err != nil {
		return 0, err
	}

	if res.Regime() == Saturated {
		if c == CaseBaseline {
			return Vogel{}.Rate(test, res, pwf, eff)
		}
		return Standing{}.Rate(test, res, pwf, eff)
	}

	j, err := productivityIndex(test, res, eff)
	if err != nil {
		return 0, err
	}
	if pwf >= res.Pb {
		return j * (res.Pr - pwf), nil
	}
	qb := j * (res.Pr - res.Pb)
	// bobot di bawah pb selalu memakai ef saat ini, ef2 hanya masuk lewat J
	return qb + j*res.Pb/1.8*belowBubbleFraction(eff.Current(), pwf/res.Pb), nil
}
