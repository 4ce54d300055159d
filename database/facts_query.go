package database

import (
	"database/sql"
	"fmt"
)

// LoadProjectFacts carga todos los hechos limpios unidos al proyecto y al tiempo
func LoadProjectFacts(db *sql.DB) ([]ProjectFactRow, error) {
	query := `
		SELECT f.ProjectID,
			dp.ProjectName, dp.ProjectStatus,
			f.DuracionDias, f.DiasRetraso, f.IndicadorRetraso, f.ImpactoVenta,
			dt.PlannedGoLive, dt.Año, dt.Mes, dt.Trimestre
		FROM Fact_Proyectos_LIMPIA f
		LEFT JOIN Dim_Proyecto dp ON f.ProjectID = dp.ProjectID
		LEFT JOIN Dim_Tiempo dt ON f.DateKey = dt.DateKey
		ORDER BY f.ProjectID
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error al consultar los hechos de proyecto: %w", err)
	}
	defer rows.Close()

	var facts []ProjectFactRow
	for rows.Next() {
		var f ProjectFactRow
		var plannedGoLive sql.NullTime
		if err := rows.Scan(
			&f.ProjectID,
			&f.ProjectName, &f.ProjectStatus,
			&f.DuracionDias, &f.DiasRetraso, &f.Retrasado, &f.ImpactoVenta,
			&plannedGoLive, &f.Anio, &f.Mes, &f.Trimestre,
		); err != nil {
			return nil, fmt.Errorf("error al leer un hecho de proyecto: %w", err)
		}

		if plannedGoLive.Valid {
			f.PlannedGoLive = plannedGoLive.Time
		}

		facts = append(facts, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error tras iterar los hechos: %w", err)
	}

	return facts, nil
}
