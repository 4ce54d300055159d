package extractors

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sapdash/proyectos_datamart/ETL/models"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// WaveExtractor extrae las waves de despliegue del staging
type WaveExtractor struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewWaveExtractor crea un nuevo WaveExtractor
func NewWaveExtractor(db *sql.DB, logger *utils.ETLLogger) *WaveExtractor {
	return &WaveExtractor{
		db:     db,
		logger: logger,
	}
}

// ExtractWaves extrae las waves modificadas desde la última corrida
func (e *WaveExtractor) ExtractWaves(lastRunTime time.Time, batchSize int) ([]models.WaveStaging, error) {
	e.logger.Debug("Inicio de extracción de waves")

	query := `
		SELECT id, name, COALESCE(stage, ''), COALESCE(status, ''),
			rise_entitlement, solex_flag, capp_flag,
			COALESCE(rollout_countries, ''), updated_at
		FROM waves
		WHERE updated_at > ?
		ORDER BY id
		LIMIT ?
	`
	params := []interface{}{lastRunTime, batchSize}

	if lastRunTime.IsZero() {
		query = `
			SELECT id, name, COALESCE(stage, ''), COALESCE(status, ''),
				rise_entitlement, solex_flag, capp_flag,
				COALESCE(rollout_countries, ''), updated_at
			FROM waves
			ORDER BY id
			LIMIT ?
		`
		params = []interface{}{batchSize}
	}

	rows, err := e.db.Query(query, params...)
	if err != nil {
		e.logger.Error("Error al consultar waves: %v", err)
		return nil, fmt.Errorf("error de consulta de waves: %w", err)
	}
	defer rows.Close()

	var waves []models.WaveStaging
	for rows.Next() {
		var w models.WaveStaging
		if err := rows.Scan(
			&w.ID, &w.Name, &w.Stage, &w.Status,
			&w.RISEEntitlement, &w.SOLEXFlag, &w.CAPPFlag,
			&w.RolloutCountries, &w.UpdatedAt,
		); err != nil {
			e.logger.Error("Error al procesar una fila de wave: %v", err)
			return nil, fmt.Errorf("error de lectura de wave: %w", err)
		}
		waves = append(waves, w)
	}

	if err = rows.Err(); err != nil {
		e.logger.Error("Error tras iterar las waves: %v", err)
		return nil, fmt.Errorf("error tras iterar las waves: %w", err)
	}

	e.logger.Debug("Extraídas %d waves", len(waves))
	return waves, nil
}
