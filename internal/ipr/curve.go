// internal/ipr/curve.go
// Pembangun kurva IPR: sampling model, fitting spline monoton, resampling grid rapat,
// dan anotasi titik gelembung.

package ipr

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"nodal-oilgas/internal/util"
)

const (
	DefaultResolution   = 500
	DefaultPressureStep = 400.0 // psia
)

// Curve adalah hasil Build. Samples terurut qo naik (pwf turun); Smooth adalah grid rapat
// hasil spline untuk renderer.
type Curve struct {
	Method      Method  `json:"method"`
	Regime      string  `json:"regime"`
	Samples     []Point `json:"samples"`
	Smooth      []Point `json:"smooth"`
	BubblePoint *Point  `json:"bubble_point,omitempty"`
}

type buildOptions struct {
	resolution int
}

type BuildOption func(*buildOptions)

// WithResolution mengatur jumlah titik grid rapat; nilai di bawah DefaultResolution diabaikan.
func WithResolution(n int) BuildOption {
	return func(o *buildOptions) {
		if n > DefaultResolution {
			o.resolution = n
		}
	}
}

// PressureGrid: pr, pr-step, pr-2·step, ... selama > 0.
func PressureGrid(pr, step float64) ([]float64, error) {
	if !finite(pr) || pr <= 0 {
		return nil, util.Domain("reservoir pressure must be positive, got %g", pr)
	}
	if !finite(step) || step <= 0 {
		return nil, util.Domain("pressure step must be positive, got %g", step)
	}
	out := make([]float64, 0, int(pr/step)+1)
	for p := pr; p > 0; p -= step {
		out = append(out, p)
	}
	return out, nil
}

// Build mengevaluasi model di setiap tekanan lalu memfit kurva halus qo → pwf.
func Build(test WellTest, res Reservoir, pressures []float64, method Method, eff Efficiency, opts ...BuildOption) (Curve, error) {
	o := buildOptions{resolution: DefaultResolution}
	for _, opt := range opts {
		opt(&o)
	}

	model, err := ModelFor(method)
	if err != nil {
		return Curve{}, err
	}
	if len(pressures) < 2 {
		return Curve{}, util.Domain("at least 2 pressures are needed to fit an IPR curve, got %d", len(pressures))
	}

	samples := make([]Point, 0, len(pressures))
	for _, pwf := range pressures {
		qo, err := model.Rate(test, res, pwf, eff)
		if err != nil {
			return Curve{}, fmt.Errorf("%s rate at pwf=%g: %w", method, pwf, err)
		}
		samples = append(samples, Point{Pwf: pwf, Qo: qo})
	}

	sort.SliceStable(samples, func(i, j int) bool { return samples[i].Qo < samples[j].Qo })
	for i := 1; i < len(samples); i++ {
		prev, cur := samples[i-1], samples[i]
		if cur.Qo <= prev.Qo {
			return Curve{}, util.Domain("duplicate rate %g at pwf=%g and pwf=%g; rates must be strictly monotonic", cur.Qo, prev.Pwf, cur.Pwf)
		}
		if cur.Pwf >= prev.Pwf {
			return Curve{}, util.Domain("rate is not monotonic in pwf between %g and %g psia", prev.Pwf, cur.Pwf)
		}
	}

	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	for i, s := range samples {
		xs[i], ys[i] = s.Qo, s.Pwf
	}

	var spline interp.FritschButland
	if err := spline.Fit(xs, ys); err != nil {
		return Curve{}, util.Domain("fit IPR spline: %v", err)
	}

	grid := floats.Span(make([]float64, o.resolution), xs[0], xs[len(xs)-1])
	smooth := make([]Point, len(grid))
	for i, q := range grid {
		smooth[i] = Point{Pwf: spline.Predict(q), Qo: q}
	}

	curve := Curve{
		Method:  method,
		Regime:  res.Regime().String(),
		Samples: samples,
		Smooth:  smooth,
	}

	// Anotasi titik gelembung hanya untuk Standing/Composite dan reservoir subsaturated.
	if (method == MethodStanding || method == MethodComposite) && res.Regime() == Subsaturated {
		qb, err := BubblePointRate(test, res, eff)
		if err != nil {
			return Curve{}, err
		}
		curve.BubblePoint = &Point{Pwf: res.Pb, Qo: qb}
	}
	return curve, nil
}
