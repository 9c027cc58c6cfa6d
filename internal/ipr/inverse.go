// internal/ipr/inverse.go
// Inversi kurva IPR: pwf pada laju q (dipakai sisi inflow analisis nodal).

package ipr

import (
	"math"

	"nodal-oilgas/internal/util"
)

const (
	bisectTolerance = 1e-9 // psia
	bisectMaxIter   = 200
)

// PwfAt mengembalikan tekanan alir di mana model menghasilkan laju q.
//   - Darcy: pwf = pr - q/J (bentuk tertutup; untuk q > J·pr hasilnya negatif, sama seperti tabel nodal lama)
//   - Vogel: pwf = 0.125·pr·(-1 + sqrt(81 - 80q/AOF))
//   - Standing/Composite: bisection pada [0, pr], kurva monoton tidak naik
func PwfAt(m Model, test WellTest, res Reservoir, q float64, eff Efficiency) (float64, error) {
	if err := validate(test, res, eff); err != nil {
		return 0, err
	}
	if !finite(q) || q < 0 {
		return 0, util.Domain("rate must be non-negative, got %g", q)
	}

	switch m.Method() {
	case MethodDarcy:
		j, err := productivityIndex(test, res, eff)
		if err != nil {
			return 0, err
		}
		return res.Pr - q/j, nil

	case MethodVogel:
		c, err := ClassifyEfficiency(eff)
		if err != nil {
			return 0, err
		}
		qmax, err := aof(test, res, eff, c)
		if err != nil {
			return 0, err
		}
		disc := 81 - 80*q/qmax
		if disc < 0 {
			return 0, util.Domain("rate %g exceeds AOF %g", q, qmax)
		}
		return 0.125 * res.Pr * (-1 + math.Sqrt(disc)), nil
	}

	return bisectPwf(m, test, res, q, eff)
}

func bisectPwf(m Model, test WellTest, res Reservoir, q float64, eff Efficiency) (float64, error) {
	qmax, err := m.Rate(test, res, 0, eff)
	if err != nil {
		return 0, err
	}
	if q > qmax {
		return 0, util.Domain("rate %g exceeds maximum %s rate %g", q, m.Method(), qmax)
	}
	if q == 0 {
		return res.Pr, nil
	}

	// Rate(lo) >= q >= Rate(hi)
	lo, hi := 0.0, res.Pr
	for i := 0; i < bisectMaxIter && hi-lo > bisectTolerance; i++ {
		mid := (lo + hi) / 2
		r, err := m.Rate(test, res, mid, eff)
		if err != nil {
			return 0, err
		}
		if r > q {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, nil
}
