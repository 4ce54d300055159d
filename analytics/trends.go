package analytics

import (
	"fmt"
	"sort"

	"github.com/sapdash/proyectos_datamart/database"
)

// TrendPoint es un punto de la serie temporal de retrasos
type TrendPoint struct {
	Period   string  `json:"period"`
	Count    int     `json:"count"`
	MeanDays float64 `json:"meanDays"`
}

type trendAcc struct {
	count   int
	sumDays int
}

func buildTrend(points map[string]*trendAcc) []TrendPoint {
	out := make([]TrendPoint, 0, len(points))
	for period, a := range points {
		p := TrendPoint{Period: period, Count: a.count}
		if a.count > 0 {
			p.MeanDays = round2(float64(a.sumDays) / float64(a.count))
		}
		out = append(out, p)
	}
	// Los períodos se generan con relleno de ceros, el orden
	// lexicográfico coincide con el cronológico
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}

// MonthlyTrend agrupa los proyectos retrasados por mes (Año-Mes)
func MonthlyTrend(rows []database.ExceptionRow) []TrendPoint {
	points := make(map[string]*trendAcc)
	for _, r := range rows {
		if r.DiasRetraso <= 0 || r.Anio == 0 {
			continue
		}
		key := fmt.Sprintf("%04d-%02d", r.Anio, r.Mes)
		a, ok := points[key]
		if !ok {
			a = &trendAcc{}
			points[key] = a
		}
		a.count++
		a.sumDays += r.DiasRetraso
	}
	return buildTrend(points)
}

// QuarterlyTrend agrupa por trimestre (Año-Tn)
func QuarterlyTrend(rows []database.ExceptionRow) []TrendPoint {
	points := make(map[string]*trendAcc)
	for _, r := range rows {
		if r.DiasRetraso <= 0 || r.Anio == 0 {
			continue
		}
		key := fmt.Sprintf("%04d-T%d", r.Anio, r.Trimestre)
		a, ok := points[key]
		if !ok {
			a = &trendAcc{}
			points[key] = a
		}
		a.count++
		a.sumDays += r.DiasRetraso
	}
	return buildTrend(points)
}

// YearlyTrend agrupa por año
func YearlyTrend(rows []database.ExceptionRow) []TrendPoint {
	points := make(map[string]*trendAcc)
	for _, r := range rows {
		if r.DiasRetraso <= 0 || r.Anio == 0 {
			continue
		}
		key := fmt.Sprintf("%04d", r.Anio)
		a, ok := points[key]
		if !ok {
			a = &trendAcc{}
			points[key] = a
		}
		a.count++
		a.sumDays += r.DiasRetraso
	}
	return buildTrend(points)
}
