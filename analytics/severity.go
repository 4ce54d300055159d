// Package analytics contiene los cálculos de los tableros de retrasos y
// paradas: clasificación de severidad, KPIs, agregaciones, tendencias y
// tablas pivote sobre las filas de excepción del datamart
package analytics

import (
	"time"

	"github.com/sapdash/proyectos_datamart/database"
)

// Bandas de severidad operativa (vista de retrasos)
const (
	SeverityCritico    = "Crítico"
	SeverityModerado   = "Moderado"
	SeverityLeve       = "Leve"
	SeveritySinRetraso = "Sin retraso"
)

// Rangos de impacto comercial (vista de paradas)
const (
	ImpactAlto     = ">$500K"
	ImpactMedio    = "$100K-$500K"
	ImpactBajo     = "$1-$100K"
	ImpactSinValor = "Sin impacto"
)

// OperationalSeverity clasifica los días de retraso en bandas operativas:
// Crítico >31, Moderado 8-31, Leve 1-7
func OperationalSeverity(delayDays int) string {
	switch {
	case delayDays > 31:
		return SeverityCritico
	case delayDays > 7:
		return SeverityModerado
	case delayDays > 0:
		return SeverityLeve
	default:
		return SeveritySinRetraso
	}
}

// ExecutiveSeverity clasifica con las bandas ejecutivas de la vista de
// paradas: Crítico >31, Moderado >0
func ExecutiveSeverity(delayDays int) string {
	switch {
	case delayDays > 31:
		return SeverityCritico
	case delayDays > 0:
		return SeverityModerado
	default:
		return SeveritySinRetraso
	}
}

// ImpactRange clasifica el impacto comercial en rangos cerrados
func ImpactRange(impact float64) string {
	switch {
	case impact > 500000:
		return ImpactAlto
	case impact > 100000:
		return ImpactMedio
	case impact > 0:
		return ImpactBajo
	default:
		return ImpactSinValor
	}
}

// RecomputeDelays recalcula los días de retraso contra la fecha "hoy"
// elegida por el usuario, para proyectos aún sin go-live confirmado
// Devuelve una copia: las filas originales no se modifican
func RecomputeDelays(rows []database.ExceptionRow, hoy time.Time) []database.ExceptionRow {
	out := make([]database.ExceptionRow, len(rows))
	copy(out, rows)

	for i := range out {
		if out[i].PlannedGoLive.IsZero() {
			continue
		}

		days := int(hoy.Sub(out[i].PlannedGoLive).Hours() / 24)
		if days < 0 {
			days = 0
		}

		out[i].DiasRetraso = days
		out[i].Retrasado = days > 0
		out[i].CriticalityLevel = OperationalSeverity(days)
	}

	return out
}
