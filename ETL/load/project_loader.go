package load

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sapdash/proyectos_datamart/ETL/models"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// ProjectLoader carga las filas de Dim_Proyecto
type ProjectLoader struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewProjectLoader crea un nuevo ProjectLoader
func NewProjectLoader(db *sql.DB, logger *utils.ETLLogger) *ProjectLoader {
	return &ProjectLoader{
		db:     db,
		logger: logger,
	}
}

// Load inserta o actualiza las filas de Dim_Proyecto
func (l *ProjectLoader) Load(projects []models.ProjectDimension) error {
	if len(projects) == 0 {
		l.logger.Debug("Sin filas de Dim_Proyecto para cargar")
		return nil
	}

	startTime := time.Now()
	l.logger.Info("Inicio de carga de Dim_Proyecto (total: %d)", len(projects))

	stmt, err := l.db.Prepare(`
		INSERT INTO Dim_Proyecto
		(ProjectID, ProjectName, ProjectStatus, ProjectPhase, ExecutiveSummary,
		ContractEnded, ScopeDescription, ValidationFlag, StrategicDeployment)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(ProjectID) DO UPDATE SET
		ProjectName = excluded.ProjectName,
		ProjectStatus = excluded.ProjectStatus,
		ProjectPhase = excluded.ProjectPhase,
		ExecutiveSummary = excluded.ExecutiveSummary,
		ContractEnded = excluded.ContractEnded,
		ScopeDescription = excluded.ScopeDescription,
		ValidationFlag = excluded.ValidationFlag,
		StrategicDeployment = excluded.StrategicDeployment
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

	for _, p := range projects {
		_, err := txStmt.Exec(
			p.ProjectID,
			p.ProjectName,
			p.ProjectStatus,
			p.ProjectPhase,
			p.ExecutiveSummary,
			p.ContractEnded,
			p.ScopeDescription,
			p.ValidationFlag,
			p.StrategicDeployment,
		)
		if err != nil {
			l.logger.Error("Error al actualizar Dim_Proyecto para el proyecto %d: %v", p.ProjectID, err)
			errors++
			continue
		}

		processed++

		// Progreso cada 100 filas
		if processed%100 == 0 {
			l.logger.Debug("Cargados %d de %d proyectos...", processed, len(projects))
		}
	}

	if errors > 0 {
		tx.Rollback()
		return fmt.Errorf("se produjeron %d errores al cargar Dim_Proyecto", errors)
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return fmt.Errorf("error al confirmar la transacción: %w", err)
	}

	duration := time.Since(startTime)
	l.logger.Info("Carga de Dim_Proyecto finalizada. Filas cargadas: %d. Duración: %v", processed, duration)

	return nil
}
