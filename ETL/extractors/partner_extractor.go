package extractors

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sapdash/proyectos_datamart/ETL/models"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// PartnerExtractor extrae los partners de implementación del staging
type PartnerExtractor struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewPartnerExtractor crea un nuevo PartnerExtractor
func NewPartnerExtractor(db *sql.DB, logger *utils.ETLLogger) *PartnerExtractor {
	return &PartnerExtractor{
		db:     db,
		logger: logger,
	}
}

// ExtractPartners extrae los partners modificados desde la última corrida
func (e *PartnerExtractor) ExtractPartners(lastRunTime time.Time, batchSize int) ([]models.PartnerStaging, error) {
	e.logger.Debug("Inicio de extracción de partners")

	query := `
		SELECT id, main_partner, COALESCE(main_partner_id, ''),
			COALESCE(wave_partners, ''), COALESCE(wave_partner_ids, ''),
			last_changed_by_partner, updated_at
		FROM partners
		WHERE updated_at > ?
		ORDER BY id
		LIMIT ?
	`
	params := []interface{}{lastRunTime, batchSize}

	if lastRunTime.IsZero() {
		query = `
			SELECT id, main_partner, COALESCE(main_partner_id, ''),
				COALESCE(wave_partners, ''), COALESCE(wave_partner_ids, ''),
				last_changed_by_partner, updated_at
			FROM partners
			ORDER BY id
			LIMIT ?
		`
		params = []interface{}{batchSize}
	}

	rows, err := e.db.Query(query, params...)
	if err != nil {
		e.logger.Error("Error al consultar partners: %v", err)
		return nil, fmt.Errorf("error de consulta de partners: %w", err)
	}
	defer rows.Close()

	var partners []models.PartnerStaging
	for rows.Next() {
		var p models.PartnerStaging
		if err := rows.Scan(
			&p.ID, &p.MainPartner, &p.MainPartnerID,
			&p.WavePartners, &p.WavePartnerIDs,
			&p.LastChangedByPartner, &p.UpdatedAt,
		); err != nil {
			e.logger.Error("Error al procesar una fila de partner: %v", err)
			return nil, fmt.Errorf("error de lectura de partner: %w", err)
		}
		partners = append(partners, p)
	}

	if err = rows.Err(); err != nil {
		e.logger.Error("Error tras iterar los partners: %v", err)
		return nil, fmt.Errorf("error tras iterar los partners: %w", err)
	}

	e.logger.Debug("Extraídos %d partners", len(partners))
	return partners, nil
}
