package load

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sapdash/proyectos_datamart/ETL/models"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// FactLoader carga Fact_Proyectos y su tabla limpia Fact_Proyectos_LIMPIA
type FactLoader struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewFactLoader crea un nuevo FactLoader
func NewFactLoader(db *sql.DB, logger *utils.ETLLogger) *FactLoader {
	return &FactLoader{
		db:     db,
		logger: logger,
	}
}

const factUpsert = `
	INSERT INTO %s
	(ProjectID, DateKey, CustomerID, SolutionID, WaveID, PartnerID,
	IndustryID, RiskStatusID, DuracionDias, IndicadorRetraso, DiasRetraso,
	CriticalityLevel, StatusReason_Category, ProjectStatus_Flag,
	ImpactoVenta, FechaActualizacion)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(ProjectID) DO UPDATE SET
	DateKey = excluded.DateKey,
	CustomerID = excluded.CustomerID,
	SolutionID = excluded.SolutionID,
	WaveID = excluded.WaveID,
	PartnerID = excluded.PartnerID,
	IndustryID = excluded.IndustryID,
	RiskStatusID = excluded.RiskStatusID,
	DuracionDias = excluded.DuracionDias,
	IndicadorRetraso = excluded.IndicadorRetraso,
	DiasRetraso = excluded.DiasRetraso,
	CriticalityLevel = excluded.CriticalityLevel,
	StatusReason_Category = excluded.StatusReason_Category,
	ProjectStatus_Flag = excluded.ProjectStatus_Flag,
	ImpactoVenta = excluded.ImpactoVenta,
	FechaActualizacion = excluded.FechaActualizacion
`

// Load inserta o actualiza los hechos de proyecto
// Toda fila entra en Fact_Proyectos; solo las limpias entran además en
// Fact_Proyectos_LIMPIA. Una fila que dejó de ser limpia se retira de ella
func (l *FactLoader) Load(facts []models.ProjectFact) error {
	if len(facts) == 0 {
		l.logger.Debug("Sin hechos de proyecto para cargar")
		return nil
	}

	startTime := time.Now()
	l.logger.Info("Inicio de carga de Fact_Proyectos (total: %d)", len(facts))

	rawStmt, err := l.db.Prepare(fmt.Sprintf(factUpsert, "Fact_Proyectos"))
	if err != nil {
		return fmt.Errorf("error al preparar la consulta de Fact_Proyectos: %w", err)
	}
	defer rawStmt.Close()

	cleanStmt, err := l.db.Prepare(fmt.Sprintf(factUpsert, "Fact_Proyectos_LIMPIA"))
	if err != nil {
		return fmt.Errorf("error al preparar la consulta de Fact_Proyectos_LIMPIA: %w", err)
	}
	defer cleanStmt.Close()

	removeStmt, err := l.db.Prepare(`DELETE FROM Fact_Proyectos_LIMPIA WHERE ProjectID = ?`)
	if err != nil {
		return fmt.Errorf("error al preparar la limpieza de Fact_Proyectos_LIMPIA: %w", err)
	}
	defer removeStmt.Close()

	tx, err := l.db.Begin()
	if err != nil {
		return fmt.Errorf("error al iniciar la transacción: %w", err)
	}

	txRaw := tx.Stmt(rawStmt)
	defer txRaw.Close()
	txClean := tx.Stmt(cleanStmt)
	defer txClean.Close()
	txRemove := tx.Stmt(removeStmt)
	defer txRemove.Close()

	processed := 0
	cleanRows := 0
	skipped := 0
	errors := 0

	for _, f := range facts {
		// Filas con claves irresolubles violarían la integridad referencial
		// del datamart: se omiten y se reportan, sin abortar el lote
		if !hasResolvableKeys(f) {
			l.logger.Error("Proyecto %d omitido: claves de dimensión irresolubles", f.ProjectID)
			skipped++
			continue
		}

		args := []interface{}{
			f.ProjectID, f.DateKey, f.CustomerID, f.SolutionID, f.WaveID,
			f.PartnerID, f.IndustryID, f.RiskStatusID,
			f.DuracionDias, f.IndicadorRetraso, f.DiasRetraso,
			f.CriticalityLevel, f.StatusReasonCategory, f.ProjectStatusFlag,
			f.ImpactoVenta, f.FechaActualizacion,
		}

		if _, err := txRaw.Exec(args...); err != nil {
			l.logger.Error("Error al actualizar Fact_Proyectos para el proyecto %d: %v", f.ProjectID, err)
			errors++
			continue
		}

		if f.Limpio {
			if _, err := txClean.Exec(args...); err != nil {
				l.logger.Error("Error al actualizar Fact_Proyectos_LIMPIA para el proyecto %d: %v", f.ProjectID, err)
				errors++
				continue
			}
			cleanRows++
		} else {
			if _, err := txRemove.Exec(f.ProjectID); err != nil {
				l.logger.Error("Error al retirar el proyecto %d de Fact_Proyectos_LIMPIA: %v", f.ProjectID, err)
				errors++
				continue
			}
		}

		processed++

		if processed%100 == 0 {
			l.logger.Debug("Cargados %d de %d hechos...", processed, len(facts))
		}
	}

	if errors > 0 {
		tx.Rollback()
		return fmt.Errorf("se produjeron %d errores al cargar los hechos", errors)
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return fmt.Errorf("error al confirmar la transacción: %w", err)
	}

	duration := time.Since(startTime)
	l.logger.Info("Carga de hechos finalizada. Filas: %d (%d limpias, %d omitidas). Duración: %v",
		processed, cleanRows, skipped, duration)

	return nil
}

// hasResolvableKeys comprueba que todas las claves de dimensión del hecho
// tienen un valor asignado antes de intentar la inserción
func hasResolvableKeys(f models.ProjectFact) bool {
	return f.ProjectID > 0 &&
		f.DateKey > 0 &&
		f.CustomerID > 0 &&
		f.SolutionID > 0 &&
		f.WaveID > 0 &&
		f.PartnerID > 0 &&
		f.IndustryID > 0 &&
		f.RiskStatusID > 0
}
