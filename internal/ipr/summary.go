// internal/ipr/summary.go
// Ringkasan hasil: J, Qb, AOF dan Qo pada tekanan referensi.

package ipr

const DefaultReferencePwf = 2000.0 // psia

type Summary struct {
	Method         Method   `json:"method"`
	Regime         string   `json:"regime"`
	EfficiencyCase string   `json:"efficiency_case"`
	J              float64  `json:"j"`
	Qb             *float64 `json:"qb,omitempty"` // nil untuk reservoir saturated
	AOF            float64  `json:"aof"`
	ReferencePwf   float64  `json:"reference_pwf"`
	Qo             float64  `json:"qo"`
}

func Summarize(test WellTest, res Reservoir, eff Efficiency, method Method, referencePwf float64) (Summary, error) {
	model, err := ModelFor(method)
	if err != nil {
		return Summary{}, err
	}
	c, err := ClassifyEfficiency(eff)
	if err != nil {
		return Summary{}, err
	}
	j, err := ProductivityIndex(test, res, eff)
	if err != nil {
		return Summary{}, err
	}
	qmax, err := AOF(test, res, eff)
	if err != nil {
		return Summary{}, err
	}
	qo, err := model.Rate(test, res, referencePwf, eff)
	if err != nil {
		return Summary{}, err
	}

	s := Summary{
		Method:         method,
		Regime:         res.Regime().String(),
		EfficiencyCase: c.String(),
		J:              j,
		AOF:            qmax,
		ReferencePwf:   referencePwf,
		Qo:             qo,
	}
	if res.Regime() == Subsaturated {
		qb, err := BubblePointRate(test, res, eff)
		if err != nil {
			return Summary{}, err
		}
		s.Qb = &qb
	}
	return s, nil
}
