package extractors

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sapdash/proyectos_datamart/ETL/models"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// CustomerExtractor extrae los clientes del staging
type CustomerExtractor struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewCustomerExtractor crea un nuevo CustomerExtractor
func NewCustomerExtractor(db *sql.DB, logger *utils.ETLLogger) *CustomerExtractor {
	return &CustomerExtractor{
		db:     db,
		logger: logger,
	}
}

// ExtractCustomers extrae los clientes modificados desde la última corrida
func (e *CustomerExtractor) ExtractCustomers(lastRunTime time.Time, batchSize int) ([]models.CustomerStaging, error) {
	e.logger.Debug("Inicio de extracción de clientes")

	query := `
		SELECT id, name, COALESCE(region, ''), COALESCE(country, ''),
			COALESCE(country_code, ''), COALESCE(market_unit, ''),
			scaleup_program, updated_at
		FROM customers
		WHERE updated_at > ?
		ORDER BY id
		LIMIT ?
	`
	params := []interface{}{lastRunTime, batchSize}

	if lastRunTime.IsZero() {
		query = `
			SELECT id, name, COALESCE(region, ''), COALESCE(country, ''),
				COALESCE(country_code, ''), COALESCE(market_unit, ''),
				scaleup_program, updated_at
			FROM customers
			ORDER BY id
			LIMIT ?
		`
		params = []interface{}{batchSize}
	}

	rows, err := e.db.Query(query, params...)
	if err != nil {
		e.logger.Error("Error al consultar clientes: %v", err)
		return nil, fmt.Errorf("error de consulta de clientes: %w", err)
	}
	defer rows.Close()

	var customers []models.CustomerStaging
	for rows.Next() {
		var c models.CustomerStaging
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Region, &c.Country,
			&c.CountryCode, &c.MarketUnit,
			&c.ScaleUpProgram, &c.UpdatedAt,
		); err != nil {
			e.logger.Error("Error al procesar una fila de cliente: %v", err)
			return nil, fmt.Errorf("error de lectura de cliente: %w", err)
		}
		customers = append(customers, c)
	}

	if err = rows.Err(); err != nil {
		e.logger.Error("Error tras iterar los clientes: %v", err)
		return nil, fmt.Errorf("error tras iterar los clientes: %w", err)
	}

	e.logger.Debug("Extraídos %d clientes", len(customers))
	return customers, nil
}
