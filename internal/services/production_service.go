// internal/services/production_service.go
// Layanan produksi: water cut harian dari data alokasi (minyak + air).
// Water cut terbaru dipakai sebagai default water_cut pada analisis nodal.

package services

import (
	"sort"

	"nodal-oilgas/internal/util"
)

type DailyProd struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	WellID string  `json:"well_id"`
	Oil    float64 `json:"oil_vol"`   // bbl
	Water  float64 `json:"water_vol"` // bbl
	// Partial: salah satu volume NULL di sumber (dibaca 0), tidak dipakai untuk water cut.
	Partial bool `json:"-"`
}

type WaterCutPoint struct {
	Date     string  `json:"date"`
	WellID   string  `json:"well_id"`
	Liquid   float64 `json:"liquid_vol"`
	WaterCut float64 `json:"water_cut"` // fraksi 0..1
}

// WaterCutSeries: wc = water/(oil+water), urut tanggal naik. Hari tanpa cairan
// atau dengan volume tidak lengkap dilewati.
func WaterCutSeries(rows []DailyProd) []WaterCutPoint {
	out := make([]WaterCutPoint, 0, len(rows))
	for _, r := range rows {
		liq := r.Oil + r.Water
		if r.Partial || liq <= 0 || r.Oil < 0 || r.Water < 0 {
			continue
		}
		out = append(out, WaterCutPoint{
			Date:     r.Date,
			WellID:   r.WellID,
			Liquid:   liq,
			WaterCut: r.Water / liq,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// LatestWaterCut mengembalikan titik water cut dengan tanggal paling baru.
func LatestWaterCut(rows []DailyProd) (WaterCutPoint, error) {
	s := WaterCutSeries(rows)
	if len(s) == 0 {
		return WaterCutPoint{}, util.NotFound("no production with positive liquid volume")
	}
	return s[len(s)-1], nil
}
