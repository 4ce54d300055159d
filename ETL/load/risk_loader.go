package load

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sapdash/proyectos_datamart/ETL/models"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// RiskLoader carga las filas de Dim_Riesgo_Estado
type RiskLoader struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewRiskLoader crea un nuevo RiskLoader
func NewRiskLoader(db *sql.DB, logger *utils.ETLLogger) *RiskLoader {
	return &RiskLoader{
		db:     db,
		logger: logger,
	}
}

// Load inserta o actualiza las filas de Dim_Riesgo_Estado
// La clave es determinística (hash de la combinación), por lo que la
// carga repetida de la misma combinación es idempotente
func (l *RiskLoader) Load(states []models.RiskStatusDimension) error {
	if len(states) == 0 {
		l.logger.Debug("Sin filas de Dim_Riesgo_Estado para cargar")
		return nil
	}

	startTime := time.Now()
	l.logger.Info("Inicio de carga de Dim_Riesgo_Estado (total: %d)", len(states))

	stmt, err := l.db.Prepare(`
		INSERT INTO Dim_Riesgo_Estado
		(RiskStatusID, EscalationLevel, StatusReason, WavePartnerStatus,
		StatusMatch, ManualOverride)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(RiskStatusID) DO UPDATE SET
		EscalationLevel = excluded.EscalationLevel,
		StatusReason = excluded.StatusReason,
		WavePartnerStatus = excluded.WavePartnerStatus,
		StatusMatch = excluded.StatusMatch,
		ManualOverride = excluded.ManualOverride
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

	for _, s := range states {
		_, err := txStmt.Exec(
			s.RiskStatusID,
			s.EscalationLevel,
			s.StatusReason,
			s.WavePartnerStatus,
			s.StatusMatch,
			s.ManualOverride,
		)
		if err != nil {
			l.logger.Error("Error al actualizar Dim_Riesgo_Estado para la combinación %d: %v", s.RiskStatusID, err)
			errors++
			continue
		}
		processed++
	}

	if errors > 0 {
		tx.Rollback()
		return fmt.Errorf("se produjeron %d errores al cargar Dim_Riesgo_Estado", errors)
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return fmt.Errorf("error al confirmar la transacción: %w", err)
	}

	duration := time.Since(startTime)
	l.logger.Info("Carga de Dim_Riesgo_Estado finalizada. Filas cargadas: %d. Duración: %v", processed, duration)

	return nil
}
