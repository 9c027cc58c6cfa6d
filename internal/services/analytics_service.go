// internal/services/analytics_service.go
// Layanan analitik produksi: deteksi anomali z-score & korelasi minyak vs air.

package services

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

type SeriesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type Series struct {
	Name   string
	Points []SeriesPoint
}

type Anomaly struct {
	Series string  `json:"series"`
	Date   string  `json:"date"`
	Value  float64 `json:"value"`
	ZScore float64 `json:"z"`
}

// OilSeries / WaterSeries memotong data harian menjadi deret satu besaran.
func OilSeries(rows []DailyProd) Series {
	s := Series{Name: "oil_vol", Points: make([]SeriesPoint, 0, len(rows))}
	for _, r := range rows {
		s.Points = append(s.Points, SeriesPoint{Date: r.Date, Value: r.Oil})
	}
	return s
}

func WaterSeries(rows []DailyProd) Series {
	s := Series{Name: "water_vol", Points: make([]SeriesPoint, 0, len(rows))}
	for _, r := range rows {
		s.Points = append(s.Points, SeriesPoint{Date: r.Date, Value: r.Water})
	}
	return s
}

// ZScoreAnomalies mendeteksi anomali berbasis z-score (mean & stddev populasi).
func ZScoreAnomalies(s Series, minZ float64) ([]Anomaly, error) {
	if len(s.Points) == 0 {
		return nil, errors.New("empty series")
	}
	mean, std := stat.PopMeanStdDev(s.values(), nil)
	if std == 0 {
		return []Anomaly{}, nil
	}

	out := []Anomaly{}
	for _, p := range s.Points {
		z := (p.Value - mean) / std
		if math.Abs(z) >= minZ {
			out = append(out, Anomaly{Series: s.Name, Date: p.Date, Value: p.Value, ZScore: z})
		}
	}
	return out, nil
}

// PearsonCorrelation menghitung korelasi Pearson antar 2 series (berdasarkan index sejajar).
// Deret konstan -> 0.
func PearsonCorrelation(a, b Series) (float64, error) {
	n := min(len(a.Points), len(b.Points))
	if n < 2 {
		return 0, errors.New("insufficient points for correlation")
	}
	r := stat.Correlation(a.values()[:n], b.values()[:n], nil)
	if math.IsNaN(r) {
		return 0, nil
	}
	return r, nil
}

func (s Series) values() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Value
	}
	return out
}
