package extractors

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sapdash/proyectos_datamart/ETL/models"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// ProjectExtractor extrae los proyectos de rollout del staging
type ProjectExtractor struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewProjectExtractor crea un nuevo ProjectExtractor
func NewProjectExtractor(db *sql.DB, logger *utils.ETLLogger) *ProjectExtractor {
	return &ProjectExtractor{
		db:     db,
		logger: logger,
	}
}

const projectColumns = `
	id, name, status, phase,
	COALESCE(executive_summary, ''), COALESCE(scope_description, ''),
	contract_ended, validation_flag, strategic_deployment,
	customer_id, solution_id, wave_id, partner_id, industry_id,
	contract_signed, contract_start, contract_end,
	kickoff, planned_golive, confirmed_golive,
	COALESCE(escalation_level, ''), COALESCE(status_reason, ''),
	COALESCE(wave_partner_status, ''), status_match, manual_override,
	COALESCE(impacto_venta, 0), updated_at
`

// ExtractProjects extrae los proyectos modificados desde la última corrida
// Si lastRunTime es cero se extraen todos los proyectos (corrida completa)
func (e *ProjectExtractor) ExtractProjects(lastRunTime time.Time, lastProcessedProjectID, batchSize int) ([]models.ProjectStaging, error) {
	e.logger.Debug("Inicio de extracción de proyectos")

	query := fmt.Sprintf(`
		SELECT %s
		FROM projects
		WHERE updated_at > ? OR id > ?
		ORDER BY id
		LIMIT ?
	`, projectColumns)
	params := []interface{}{lastRunTime, lastProcessedProjectID, batchSize}

	if lastRunTime.IsZero() {
		query = fmt.Sprintf(`
			SELECT %s
			FROM projects
			ORDER BY id
			LIMIT ?
		`, projectColumns)
		params = []interface{}{batchSize}
	}

	rows, err := e.db.Query(query, params...)
	if err != nil {
		e.logger.Error("Error al consultar proyectos: %v", err)
		return nil, fmt.Errorf("error de consulta de proyectos: %w", err)
	}
	defer rows.Close()

	var projects []models.ProjectStaging
	for rows.Next() {
		var p models.ProjectStaging
		var contractSigned, contractStart, contractEnd sql.NullTime
		var kickOff, plannedGoLive, confirmedGoLive sql.NullTime

		if err := rows.Scan(
			&p.ID, &p.Name, &p.Status, &p.Phase,
			&p.ExecutiveSummary, &p.ScopeDescription,
			&p.ContractEnded, &p.ValidationFlag, &p.StrategicDeployment,
			&p.CustomerID, &p.SolutionID, &p.WaveID, &p.PartnerID, &p.IndustryID,
			&contractSigned, &contractStart, &contractEnd,
			&kickOff, &plannedGoLive, &confirmedGoLive,
			&p.EscalationLevel, &p.StatusReason,
			&p.WavePartnerStatus, &p.StatusMatch, &p.ManualOverride,
			&p.ImpactoVenta, &p.UpdatedAt,
		); err != nil {
			e.logger.Error("Error al procesar una fila de proyecto: %v", err)
			return nil, fmt.Errorf("error de lectura de proyecto: %w", err)
		}

		// Los hitos pueden venir nulos del staging; el valor cero los representa
		p.ContractSigned = nullableDate(contractSigned)
		p.ContractStart = nullableDate(contractStart)
		p.ContractEnd = nullableDate(contractEnd)
		p.KickOff = nullableDate(kickOff)
		p.PlannedGoLive = nullableDate(plannedGoLive)
		p.ConfirmedGoLive = nullableDate(confirmedGoLive)

		projects = append(projects, p)
	}

	if err = rows.Err(); err != nil {
		e.logger.Error("Error tras iterar los proyectos: %v", err)
		return nil, fmt.Errorf("error tras iterar los proyectos: %w", err)
	}

	e.logger.Debug("Extraídos %d proyectos", len(projects))
	return projects, nil
}

// GetLastProjectUpdateTime obtiene el timestamp de la última modificación de proyectos
func (e *ProjectExtractor) GetLastProjectUpdateTime() (time.Time, error) {
	var lastUpdate sql.NullTime

	err := e.db.QueryRow("SELECT MAX(updated_at) FROM projects").Scan(&lastUpdate)
	if err != nil {
		if err == sql.ErrNoRows {
			return time.Time{}, nil
		}
		e.logger.Error("Error al obtener la última actualización de proyectos: %v", err)
		return time.Time{}, fmt.Errorf("error al obtener la última actualización: %w", err)
	}

	if !lastUpdate.Valid {
		return time.Time{}, nil
	}
	return lastUpdate.Time, nil
}

// GetLastProjectID obtiene el mayor ID de proyecto presente en el staging
func (e *ProjectExtractor) GetLastProjectID() (int, error) {
	var lastID sql.NullInt64

	err := e.db.QueryRow("SELECT MAX(id) FROM projects").Scan(&lastID)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("error al obtener el último ID de proyecto: %w", err)
	}

	return int(lastID.Int64), nil
}

// nullableDate convierte un sql.NullTime en time.Time, usando el valor cero para NULL
func nullableDate(t sql.NullTime) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}
