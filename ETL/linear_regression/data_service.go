package linear_regression

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// DataService obtiene las series mensuales de retraso del datamart
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

// GetMonthlyDelaySeries obtiene la evolución mensual de proyectos retrasados
// de los últimos analysisMonths meses, ordenada cronológicamente
func (s *DataService) GetMonthlyDelaySeries(analysisMonths int) ([]MonthlyDelaySeries, error) {
	s.logger.Debug("Consulta de la serie mensual de retrasos (%d meses)", analysisMonths)

	query := `
		SELECT dt.Año, dt.Mes,
			COUNT(*) AS delayed_count,
			AVG(f.DiasRetraso) AS mean_delay
		FROM Fact_Proyectos_LIMPIA f
		JOIN Dim_Tiempo dt ON f.DateKey = dt.DateKey
		WHERE f.IndicadorRetraso = 1
		GROUP BY dt.Año, dt.Mes
		ORDER BY dt.Año, dt.Mes
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error al consultar la serie mensual de retrasos: %w", err)
	}
	defer rows.Close()

	var series []MonthlyDelaySeries
	for rows.Next() {
		var year, month, count int
		var meanDelay float64
		if err := rows.Scan(&year, &month, &count, &meanDelay); err != nil {
			return nil, fmt.Errorf("error al leer la serie mensual: %w", err)
		}

		series = append(series, MonthlyDelaySeries{
			Month:         time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC),
			DelayedCount:  count,
			MeanDelayDays: meanDelay,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error tras iterar la serie mensual: %w", err)
	}

	// Nos quedamos con los últimos meses del período de análisis
	if len(series) > analysisMonths {
		series = series[len(series)-analysisMonths:]
	}

	s.logger.Debug("Serie mensual obtenida: %d meses con retrasos", len(series))
	return series, nil
}
