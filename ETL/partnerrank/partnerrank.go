// Package partnerrank calcula un puntaje de riesgo por partner de
// implementación a partir de la carga de retrasos de sus proyectos
package partnerrank

import (
	"database/sql"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// Pesos de las componentes del puntaje de riesgo
const (
	weightDelayedShare  = 0.5 // proporción de proyectos retrasados
	weightMeanDelay     = 0.3 // promedio de días de retraso, normalizado
	weightCriticalShare = 0.2 // proporción de proyectos críticos

	// Días de retraso promedio a partir de los cuales la componente
	// de retraso medio satura en 1.0
	meanDelaySaturationDays = 90.0
)

// Run calcula y persiste el ranking de riesgo por partner
func Run(db *sql.DB, logger *utils.ETLLogger) error {
	dataService := NewDataService(db, logger)
	repository := NewRepository(db, logger)

	if err := repository.CreateRankTable(); err != nil {
		return fmt.Errorf("error al preparar la tabla del ranking: %w", err)
	}

	stats, err := dataService.GetPartnerDelayStats()
	if err != nil {
		return fmt.Errorf("error al obtener los agregados por partner: %w", err)
	}

	if len(stats) == 0 {
		logger.Info("Sin partners con proyectos en el datamart, ranking omitido")
		return nil
	}

	ranking := ComputeRanking(stats, time.Now())
	return repository.SaveRanking(ranking)
}

// ComputeRanking calcula el puntaje de riesgo de cada partner y los
// ordena de mayor a menor riesgo
func ComputeRanking(stats []PartnerDelayStats, calculatedAt time.Time) []PartnerRisk {
	ranking := make([]PartnerRisk, 0, len(stats))

	for _, st := range stats {
		ranking = append(ranking, PartnerRisk{
			PartnerID:     st.PartnerID,
			MainPartner:   st.MainPartner,
			RiskScore:     RiskScore(st),
			TotalProjects: st.TotalProjects,
			DelayedCount:  st.DelayedCount,
			CriticalCount: st.CriticalCount,
			SumDelayDays:  st.SumDelayDays,
			MeanDelayDays: st.MeanDelayDays,
			CalculatedAt:  calculatedAt,
		})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].RiskScore != ranking[j].RiskScore {
			return ranking[i].RiskScore > ranking[j].RiskScore
		}
		// Desempate estable por suma de días de retraso
		return ranking[i].SumDelayDays > ranking[j].SumDelayDays
	})

	for i := range ranking {
		ranking[i].Rank = i + 1
	}

	return ranking
}

// RiskScore calcula el puntaje 0-100 de un partner
// Combina la proporción de retrasados, el retraso medio normalizado
// y la proporción de críticos
func RiskScore(st PartnerDelayStats) float64 {
	if st.TotalProjects == 0 {
		return 0
	}

	total := float64(st.TotalProjects)
	delayedShare := float64(st.DelayedCount) / total
	criticalShare := float64(st.CriticalCount) / total
	meanDelayNorm := math.Min(st.MeanDelayDays/meanDelaySaturationDays, 1.0)

	score := weightDelayedShare*delayedShare +
		weightMeanDelay*meanDelayNorm +
		weightCriticalShare*criticalShare

	return math.Round(score*100*100) / 100
}
