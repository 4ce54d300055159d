package database

import (
	"database/sql"
	"fmt"
)

// LoadSummaryMetrics calcula los KPIs globales sobre los hechos limpios
func LoadSummaryMetrics(db *sql.DB) (*SummaryMetrics, error) {
	query := `
		SELECT COUNT(*),
			COALESCE(SUM(IndicadorRetraso), 0),
			COALESCE(AVG(CASE WHEN IndicadorRetraso = 1 THEN DiasRetraso END), 0),
			COALESCE(SUM(CASE WHEN IndicadorRetraso = 1 THEN ImpactoVenta ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN CriticalityLevel = 'Crítico' THEN 1 ELSE 0 END), 0)
		FROM Fact_Proyectos_LIMPIA
	`

	var m SummaryMetrics
	err := db.QueryRow(query).Scan(
		&m.TotalProjects,
		&m.DelayedProjects,
		&m.AvgDelayDays,
		&m.SalesAtRisk,
		&m.CriticalProjects,
	)
	if err != nil {
		return nil, fmt.Errorf("error al calcular los KPIs globales: %w", err)
	}

	if m.TotalProjects > 0 {
		m.PctAffected = float64(m.DelayedProjects) / float64(m.TotalProjects) * 100
	}

	return &m, nil
}

// LoadETLStatus obtiene la última corrida registrada en el journal ETL
// Devuelve nil si el journal todavía no existe o está vacío
func LoadETLStatus(db *sql.DB) (*ETLStatus, error) {
	query := `
		SELECT run_id, status, start_time, end_time,
			projects_processed, facts_loaded, COALESCE(error_message, '')
		FROM etl_run_log
		ORDER BY start_time DESC
		LIMIT 1
	`

	var status ETLStatus
	var endTime sql.NullTime
	err := db.QueryRow(query).Scan(
		&status.RunID,
		&status.Status,
		&status.StartTime,
		&endTime,
		&status.ProjectsProcessed,
		&status.FactsLoaded,
		&status.ErrorMessage,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al consultar el estado del ETL: %w", err)
	}

	if endTime.Valid {
		status.EndTime = endTime.Time
	}

	return &status, nil
}
