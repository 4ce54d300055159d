package load

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sapdash/proyectos_datamart/ETL/models"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// CatalogLoader carga los catálogos Dim_Solucion y Dim_Industria
type CatalogLoader struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewCatalogLoader crea un nuevo CatalogLoader
func NewCatalogLoader(db *sql.DB, logger *utils.ETLLogger) *CatalogLoader {
	return &CatalogLoader{
		db:     db,
		logger: logger,
	}
}

// LoadSolutions inserta o actualiza las filas de Dim_Solucion
func (l *CatalogLoader) LoadSolutions(solutions []models.SolutionDimension) error {
	if len(solutions) == 0 {
		l.logger.Debug("Sin filas de Dim_Solucion para cargar")
		return nil
	}

	startTime := time.Now()
	l.logger.Info("Inicio de carga de Dim_Solucion (total: %d)", len(solutions))

	stmt, err := l.db.Prepare(`
		INSERT INTO Dim_Solucion
		(SolutionID, SolutionArea, SolutionSubArea, SolutionSubArea2,
		LogicalProduct, RISEProgram, SOLEXProgram)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(SolutionID) DO UPDATE SET
		SolutionArea = excluded.SolutionArea,
		SolutionSubArea = excluded.SolutionSubArea,
		SolutionSubArea2 = excluded.SolutionSubArea2,
		LogicalProduct = excluded.LogicalProduct,
		RISEProgram = excluded.RISEProgram,
		SOLEXProgram = excluded.SOLEXProgram
	`)
	if err != nil {
		return fmt.Errorf("error al preparar la consulta: %w", err)
	}
	defer stmt.Close()

	tx, err := l.db.Begin()
	if err != nil {
		return fmt.Errorf("error al iniciar la transacción: %w", err)
	}

	txStmt := tx.Stmt(stmt)
	defer txStmt.Close()

	processed := 0
	errors := 0

	for _, s := range solutions {
		_, err := txStmt.Exec(
			s.SolutionID,
			s.SolutionArea,
			s.SolutionSubArea,
			s.SolutionSubArea2,
			s.LogicalProduct,
			s.RISEProgram,
			s.SOLEXProgram,
		)
		if err != nil {
			l.logger.Error("Error al actualizar Dim_Solucion para la solución %d: %v", s.SolutionID, err)
			errors++
			continue
		}
		processed++
	}

	if errors > 0 {
		tx.Rollback()
		return fmt.Errorf("se produjeron %d errores al cargar Dim_Solucion", errors)
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return fmt.Errorf("error al confirmar la transacción: %w", err)
	}

	l.logger.Info("Carga de Dim_Solucion finalizada. Filas cargadas: %d. Duración: %v", processed, time.Since(startTime))
	return nil
}

// LoadIndustries inserta o actualiza las filas de Dim_Industria
func (l *CatalogLoader) LoadIndustries(industries []models.IndustryDimension) error {
	if len(industries) == 0 {
		l.logger.Debug("Sin filas de Dim_Industria para cargar")
		return nil
	}

	startTime := time.Now()
	l.logger.Info("Inicio de carga de Dim_Industria (total: %d)", len(industries))

	stmt, err := l.db.Prepare(`
		INSERT INTO Dim_Industria
		(IndustryID, IndustryName, ISS, Archetype, SubArchetype, Tier)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(IndustryID) DO UPDATE SET
		IndustryName = excluded.IndustryName,
		ISS = excluded.ISS,
		Archetype = excluded.Archetype,
		SubArchetype = excluded.SubArchetype,
		Tier = excluded.Tier
	`)
	if err != nil {
		return fmt.Errorf("error al preparar la consulta: %w", err)
	}
	defer stmt.Close()

	tx, err := l.db.Begin()
	if err != nil {
		return fmt.Errorf("error al iniciar la transacción: %w", err)
	}

	txStmt := tx.Stmt(stmt)
	defer txStmt.Close()

	processed := 0
	errors := 0

	for _, ind := range industries {
		_, err := txStmt.Exec(
			ind.IndustryID,
			ind.IndustryName,
			ind.ISS,
			ind.Archetype,
			ind.SubArchetype,
			ind.Tier,
		)
		if err != nil {
			l.logger.Error("Error al actualizar Dim_Industria para la industria %d: %v", ind.IndustryID, err)
			errors++
			continue
		}
		processed++
	}

	if errors > 0 {
		tx.Rollback()
		return fmt.Errorf("se produjeron %d errores al cargar Dim_Industria", errors)
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return fmt.Errorf("error al confirmar la transacción: %w", err)
	}

	l.logger.Info("Carga de Dim_Industria finalizada. Filas cargadas: %d. Duración: %v", processed, time.Since(startTime))
	return nil
}
