// internal/config/case.go
// Berkas kasus sumur (YAML) untuk CLI dan body default handler.

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"nodal-oilgas/internal/ipr"
	"nodal-oilgas/internal/util"
	"nodal-oilgas/internal/vlp"
)

// IPRCase: data uji sumur + opsi kurva.
type IPRCase struct {
	QTest   float64  `json:"q_test" yaml:"q_test"`
	PwfTest float64  `json:"pwf_test" yaml:"pwf_test"`
	Pr      float64  `json:"pr" yaml:"pr"`
	Pb      float64  `json:"pb" yaml:"pb"`
	EF      *float64 `json:"ef,omitempty" yaml:"ef,omitempty"` // nil = 1; nilai eksplisit harus > 0
	EF2     *float64 `json:"ef2,omitempty" yaml:"ef2,omitempty"`
	Method  string   `json:"method,omitempty" yaml:"method,omitempty"`

	// Pressures eksplisit; kosong = PressureGrid(pr, PressureStep).
	Pressures    []float64 `json:"pressures,omitempty" yaml:"pressures,omitempty"`
	PressureStep float64   `json:"pressure_step,omitempty" yaml:"pressure_step,omitempty"`
	Resolution   int       `json:"resolution,omitempty" yaml:"resolution,omitempty"`
	ReferencePwf float64   `json:"reference_pwf,omitempty" yaml:"reference_pwf,omitempty"` // 0 = min(2000, pr)
}

func (c IPRCase) WellTest() ipr.WellTest { return ipr.WellTest{QTest: c.QTest, PwfTest: c.PwfTest} }
func (c IPRCase) Reservoir() ipr.Reservoir { return ipr.Reservoir{Pr: c.Pr, Pb: c.Pb} }
func (c IPRCase) Efficiency() ipr.Efficiency { return efficiency(c.EF, c.EF2) }

// Validate menolak ef eksplisit <= 0 (ipr.Efficiency membaca nol sebagai 1).
func (c IPRCase) Validate() error { return checkEF(c.EF) }

// ProductivityCase: J dari sifat reservoir (hukum Darcy).
type ProductivityCase struct {
	ipr.ReservoirProperties `yaml:",inline"`
	Regime                  string `json:"regime,omitempty" yaml:"regime,omitempty"`
}

// NodalCase: data IPR + tubing/fluida untuk tabel nodal.
type NodalCase struct {
	QTest   float64  `json:"q_test" yaml:"q_test"`
	PwfTest float64  `json:"pwf_test" yaml:"pwf_test"`
	Pr      float64  `json:"pr" yaml:"pr"`
	Pb      float64  `json:"pb" yaml:"pb"`
	EF      *float64 `json:"ef,omitempty" yaml:"ef,omitempty"` // nil = 1; nilai eksplisit harus > 0
	EF2     *float64 `json:"ef2,omitempty" yaml:"ef2,omitempty"`
	Method  string   `json:"method,omitempty" yaml:"method,omitempty"`

	THP      float64 `json:"thp" yaml:"thp"`
	WaterCut float64 `json:"water_cut" yaml:"water_cut"`
	API      float64 `json:"api" yaml:"api"`
	WaterSG  float64 `json:"sg_water" yaml:"sg_water"`
	ID       float64 `json:"id_in" yaml:"id_in"`
	TVD      float64 `json:"tvd_ft" yaml:"tvd_ft"`
	MD       float64 `json:"md_ft" yaml:"md_ft"`
	C        float64 `json:"c" yaml:"c"`

	// Rates eksplisit; kosong = Grid ("linspace" | "reference").
	Rates      []float64 `json:"rates,omitempty" yaml:"rates,omitempty"`
	Grid       string    `json:"grid,omitempty" yaml:"grid,omitempty"`
	MaxRate    float64   `json:"max_rate,omitempty" yaml:"max_rate,omitempty"`
	GridPoints int       `json:"grid_points,omitempty" yaml:"grid_points,omitempty"`
}

func (c NodalCase) WellTest() ipr.WellTest { return ipr.WellTest{QTest: c.QTest, PwfTest: c.PwfTest} }
func (c NodalCase) Reservoir() ipr.Reservoir { return ipr.Reservoir{Pr: c.Pr, Pb: c.Pb} }
func (c NodalCase) Efficiency() ipr.Efficiency { return efficiency(c.EF, c.EF2) }

func (c NodalCase) Validate() error { return checkEF(c.EF) }

func efficiency(ef, ef2 *float64) ipr.Efficiency {
	e := ipr.Efficiency{EF: 1, EF2: ef2}
	if ef != nil {
		e.EF = *ef
	}
	return e
}

func checkEF(ef *float64) error {
	if ef != nil && !(*ef > 0) {
		return util.Domain("efficiency factor ef must be positive, got %g", *ef)
	}
	return nil
}

func (c NodalCase) Well() vlp.Well {
	return vlp.Well{
		Tubing: vlp.Tubing{InternalDiameterIn: c.ID, MeasuredDepthFt: c.MD, TrueVerticalDepthFt: c.TVD, HazenWilliamsC: c.C},
		Fluid:  vlp.Fluid{APIGravity: c.API, WaterCut: c.WaterCut, WaterSG: c.WaterSG},
		THP:    c.THP,
	}
}

type Case struct {
	Name         string           `json:"name,omitempty" yaml:"name,omitempty"`
	IPR          IPRCase          `json:"ipr" yaml:"ipr"`
	Productivity ProductivityCase `json:"productivity" yaml:"productivity"`
	Nodal        NodalCase        `json:"nodal" yaml:"nodal"`
}

// DefaultIPRCase: nilai awal panel IPR.
func DefaultIPRCase() IPRCase {
	return IPRCase{
		QTest:        500,
		PwfTest:      3000,
		Pr:           4000,
		Pb:           2500,
		Method:       string(ipr.MethodComposite),
	}
}

func DefaultProductivityCase() ProductivityCase {
	return ProductivityCase{
		ReservoirProperties: ipr.ReservoirProperties{Ko: 50, H: 50, Bo: 1.2, Uo: 2, Re: 1000, Rw: 0.5, Skin: 0},
		Regime:              string(ipr.PseudoSteady),
	}
}

// DefaultNodalCase: contoh tabel nodal (sumur air tinggi, tubing 3.5 in).
func DefaultNodalCase() NodalCase {
	return NodalCase{
		QTest:    1500,
		PwfTest:  2400,
		Pr:       3000,
		Pb:       2300,
		Method:   string(ipr.MethodDarcy),
		THP:      360,
		WaterCut: 0.9,
		API:      20,
		WaterSG:  1.09,
		ID:       3.5,
		TVD:      9000,
		MD:       10500,
		C:        vlp.DefaultHazenWilliamsC,
		Grid:     "linspace",
	}
}

func DefaultCase() Case {
	return Case{
		Name:         "default",
		IPR:          DefaultIPRCase(),
		Productivity: DefaultProductivityCase(),
		Nodal:        DefaultNodalCase(),
	}
}

// LoadCase membaca YAML di atas DefaultCase: field yang tidak ditulis tetap default.
func LoadCase(path string) (Case, error) {
	c := DefaultCase()
	if path == "" {
		return c, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Case{}, fmt.Errorf("read case file: %w", err)
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Case{}, util.BadInput(fmt.Sprintf("parse case file %s: %v", path, err))
	}
	return c, nil
}
