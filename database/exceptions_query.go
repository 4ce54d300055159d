package database

import (
	"database/sql"
	"fmt"
)

// LoadExceptions carga los proyectos de excepción: retrasados o pausados
// Es la consulta central del dashboard, un hecho limpio unido a seis dimensiones
func LoadExceptions(db *sql.DB) ([]ExceptionRow, error) {
	query := `
		SELECT f.ProjectID,
			dp.ProjectName, dp.ProjectStatus,
			f.DuracionDias, f.DiasRetraso, f.IndicadorRetraso, f.ImpactoVenta,
			f.CriticalityLevel, f.StatusReason_Category, f.ProjectStatus_Flag,
			dt.ContractSigned, dt.PlannedGoLive, dt.Año, dt.Mes, dt.Trimestre,
			COALESCE(dc.CustomerRegion, ''),
			COALESCE(ds.SolutionArea, ''),
			COALESCE(di.IndustryName, ''), COALESCE(di.ISS, ''),
			COALESCE(dpa.MainPartner, ''),
			f.FechaActualizacion
		FROM Fact_Proyectos_LIMPIA f
		LEFT JOIN Dim_Proyecto dp ON f.ProjectID = dp.ProjectID
		LEFT JOIN Dim_Tiempo dt ON f.DateKey = dt.DateKey
		LEFT JOIN Dim_Cliente dc ON f.CustomerID = dc.CustomerID
		LEFT JOIN Dim_Solucion ds ON f.SolutionID = ds.SolutionID
		LEFT JOIN Dim_Industria di ON f.IndustryID = di.IndustryID
		LEFT JOIN Dim_Partner dpa ON f.PartnerID = dpa.PartnerID
		WHERE f.IndicadorRetraso = 1 OR dp.ProjectStatus = 'Pausado'
		ORDER BY f.DiasRetraso DESC
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error al consultar las excepciones: %w", err)
	}
	defer rows.Close()

	var exceptions []ExceptionRow
	for rows.Next() {
		var e ExceptionRow
		var contractSigned, plannedGoLive sql.NullTime
		if err := rows.Scan(
			&e.ProjectID,
			&e.ProjectName, &e.ProjectStatus,
			&e.DuracionDias, &e.DiasRetraso, &e.Retrasado, &e.ImpactoVenta,
			&e.CriticalityLevel, &e.StatusReasonCategory, &e.ProjectStatusFlag,
			&contractSigned, &plannedGoLive, &e.Anio, &e.Mes, &e.Trimestre,
			&e.CustomerRegion,
			&e.SolutionArea,
			&e.IndustryName, &e.ISS,
			&e.MainPartner,
			&e.FechaActualizacion,
		); err != nil {
			return nil, fmt.Errorf("error al leer una fila de excepción: %w", err)
		}

		if contractSigned.Valid {
			e.ContractSigned = contractSigned.Time
		}
		if plannedGoLive.Valid {
			e.PlannedGoLive = plannedGoLive.Time
		}

		exceptions = append(exceptions, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error tras iterar las excepciones: %w", err)
	}

	return exceptions, nil
}
