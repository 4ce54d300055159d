package extractors

import (
	"database/sql"
	"fmt"

	"github.com/sapdash/proyectos_datamart/ETL/models"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// CatalogExtractor extrae los catálogos de soluciones e industrias del staging
// Son tablas pequeñas y estables: se extraen completas en cada corrida
type CatalogExtractor struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewCatalogExtractor crea un nuevo CatalogExtractor
func NewCatalogExtractor(db *sql.DB, logger *utils.ETLLogger) *CatalogExtractor {
	return &CatalogExtractor{
		db:     db,
		logger: logger,
	}
}

// ExtractSolutions extrae el catálogo completo de soluciones
func (e *CatalogExtractor) ExtractSolutions() ([]models.SolutionStaging, error) {
	e.logger.Debug("Inicio de extracción del catálogo de soluciones")

	rows, err := e.db.Query(`
		SELECT id, area, COALESCE(sub_area, ''), COALESCE(sub_area2, ''),
			COALESCE(logical_product, ''), rise_program, solex_program
		FROM solutions
		ORDER BY id
	`)
	if err != nil {
		e.logger.Error("Error al consultar soluciones: %v", err)
		return nil, fmt.Errorf("error de consulta de soluciones: %w", err)
	}
	defer rows.Close()

	var solutions []models.SolutionStaging
	for rows.Next() {
		var s models.SolutionStaging
		if err := rows.Scan(
			&s.ID, &s.Area, &s.SubArea, &s.SubArea2,
			&s.LogicalProduct, &s.RISEProgram, &s.SOLEXProgram,
		); err != nil {
			e.logger.Error("Error al procesar una fila de solución: %v", err)
			return nil, fmt.Errorf("error de lectura de solución: %w", err)
		}
		solutions = append(solutions, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error tras iterar las soluciones: %w", err)
	}

	e.logger.Debug("Extraídas %d soluciones", len(solutions))
	return solutions, nil
}

// ExtractIndustries extrae el catálogo completo de industrias
func (e *CatalogExtractor) ExtractIndustries() ([]models.IndustryStaging, error) {
	e.logger.Debug("Inicio de extracción del catálogo de industrias")

	rows, err := e.db.Query(`
		SELECT id, name, COALESCE(iss, ''), COALESCE(archetype, ''),
			COALESCE(sub_archetype, ''), COALESCE(tier, '')
		FROM industries
		ORDER BY id
	`)
	if err != nil {
		e.logger.Error("Error al consultar industrias: %v", err)
		return nil, fmt.Errorf("error de consulta de industrias: %w", err)
	}
	defer rows.Close()

	var industries []models.IndustryStaging
	for rows.Next() {
		var i models.IndustryStaging
		if err := rows.Scan(
			&i.ID, &i.Name, &i.ISS, &i.Archetype,
			&i.SubArchetype, &i.Tier,
		); err != nil {
			e.logger.Error("Error al procesar una fila de industria: %v", err)
			return nil, fmt.Errorf("error de lectura de industria: %w", err)
		}
		industries = append(industries, i)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error tras iterar las industrias: %w", err)
	}

	e.logger.Debug("Extraídas %d industrias", len(industries))
	return industries, nil
}
