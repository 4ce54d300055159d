package partnerrank

import (
	"database/sql"
	"fmt"

	"github.com/sapdash/proyectos_datamart/ETL/models"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// DataService obtiene los agregados de retraso por partner del datamart
type DataService struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewDataService crea un nuevo DataService
func NewDataService(db *sql.DB, logger *utils.ETLLogger) *DataService {
	return &DataService{
		db:     db,
		logger: logger,
	}
}

// GetPartnerDelayStats agrega los hechos limpios por partner
func (s *DataService) GetPartnerDelayStats() ([]PartnerDelayStats, error) {
	s.logger.Debug("Consulta de agregados de retraso por partner")

	query := `
		SELECT f.PartnerID, dp.MainPartner,
			COUNT(*) AS total_projects,
			SUM(f.IndicadorRetraso) AS delayed_count,
			SUM(CASE WHEN f.CriticalityLevel = ? THEN 1 ELSE 0 END) AS critical_count,
			SUM(f.DiasRetraso) AS sum_delay_days,
			AVG(CASE WHEN f.IndicadorRetraso = 1 THEN f.DiasRetraso END) AS mean_delay_days
		FROM Fact_Proyectos_LIMPIA f
		JOIN Dim_Partner dp ON f.PartnerID = dp.PartnerID
		GROUP BY f.PartnerID, dp.MainPartner
	`

	rows, err := s.db.Query(query, models.CriticalityCritico)
	if err != nil {
		return nil, fmt.Errorf("error al consultar los agregados por partner: %w", err)
	}
	defer rows.Close()

	var stats []PartnerDelayStats
	for rows.Next() {
		var st PartnerDelayStats
		var meanDelay sql.NullFloat64
		if err := rows.Scan(
			&st.PartnerID,
			&st.MainPartner,
			&st.TotalProjects,
			&st.DelayedCount,
			&st.CriticalCount,
			&st.SumDelayDays,
			&meanDelay,
		); err != nil {
			return nil, fmt.Errorf("error al leer los agregados de un partner: %w", err)
		}
		if meanDelay.Valid {
			st.MeanDelayDays = meanDelay.Float64
		}
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error tras iterar los agregados por partner: %w", err)
	}

	s.logger.Debug("Agregados obtenidos para %d partners", len(stats))
	return stats, nil
}
