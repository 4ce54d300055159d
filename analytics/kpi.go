package analytics

import (
	"math"

	"github.com/sapdash/proyectos_datamart/database"
)

// OperationalKPIs son los indicadores de cabecera de la vista de retrasos
type OperationalKPIs struct {
	TotalProyectos int     `json:"totalProyectos"`
	Retrasados     int     `json:"retrasados"`
	TasaRetraso    float64 `json:"tasaRetraso"`
	PromedioDias   float64 `json:"promedioDias"`
	Criticos       int     `json:"criticos"`
	RegionTop      string  `json:"regionTop"`
	RegionTopDias  int     `json:"regionTopDias"`
}

// ExecutiveKPIs son los indicadores de cabecera de la vista de paradas
type ExecutiveKPIs struct {
	TotalProyectos   int     `json:"totalProyectos"`
	Criticos         int     `json:"criticos"`
	PctConRetraso    float64 `json:"pctConRetraso"`
	PromedioDias     float64 `json:"promedioDias"`
	DuracionPromedio float64 `json:"duracionPromedio"`
	VentasEnRiesgo   float64 `json:"ventasEnRiesgo"`
}

// ComputeOperationalKPIs calcula los KPIs de la vista operativa:
// totales, tasa de retraso, promedio de días, críticos y la región
// con más días acumulados
func ComputeOperationalKPIs(rows []database.ExceptionRow) OperationalKPIs {
	k := OperationalKPIs{TotalProyectos: len(rows)}

	sumDays := 0
	regionDays := make(map[string]int)

	for _, r := range rows {
		if r.Retrasado {
			k.Retrasados++
			sumDays += r.DiasRetraso
			regionDays[r.CustomerRegion] += r.DiasRetraso
		}
		if r.DiasRetraso > 31 {
			k.Criticos++
		}
	}

	if k.TotalProyectos > 0 {
		k.TasaRetraso = round2(float64(k.Retrasados) / float64(k.TotalProyectos) * 100)
	}
	if k.Retrasados > 0 {
		k.PromedioDias = round2(float64(sumDays) / float64(k.Retrasados))
	}

	for region, days := range regionDays {
		if days > k.RegionTopDias || (days == k.RegionTopDias && region < k.RegionTop) {
			k.RegionTop = region
			k.RegionTopDias = days
		}
	}

	return k
}

// ComputeExecutiveKPIs calcula los indicadores de la vista ejecutiva de
// paradas, incluyendo la duración promedio y las ventas en riesgo
func ComputeExecutiveKPIs(rows []database.ExceptionRow) ExecutiveKPIs {
	k := ExecutiveKPIs{TotalProyectos: len(rows)}

	sumDays := 0
	sumDuration := 0
	delayed := 0

	for _, r := range rows {
		if r.DiasRetraso > 31 {
			k.Criticos++
		}
		if r.DiasRetraso > 0 {
			delayed++
			sumDays += r.DiasRetraso
			k.VentasEnRiesgo += r.ImpactoVenta
		}
		sumDuration += r.DuracionDias
	}

	if k.TotalProyectos > 0 {
		k.PctConRetraso = round2(float64(delayed) / float64(k.TotalProyectos) * 100)
		k.DuracionPromedio = round2(float64(sumDuration) / float64(k.TotalProyectos))
	}
	if delayed > 0 {
		k.PromedioDias = round2(float64(sumDays) / float64(delayed))
	}

	return k
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
