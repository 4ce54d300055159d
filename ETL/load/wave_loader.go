package load

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sapdash/proyectos_datamart/ETL/models"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// WaveLoader carga las filas de Dim_Wave
type WaveLoader struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewWaveLoader crea un nuevo WaveLoader
func NewWaveLoader(db *sql.DB, logger *utils.ETLLogger) *WaveLoader {
	return &WaveLoader{
		db:     db,
		logger: logger,
	}
}

// Load inserta o actualiza las filas de Dim_Wave
func (l *WaveLoader) Load(waves []models.WaveDimension) error {
	if len(waves) == 0 {
		l.logger.Debug("Sin filas de Dim_Wave para cargar")
		return nil
	}

	startTime := time.Now()
	l.logger.Info("Inicio de carga de Dim_Wave (total: %d)", len(waves))

	stmt, err := l.db.Prepare(`
		INSERT INTO Dim_Wave
		(WaveID, WaveName, WaveStage, WaveStatus, RISEEntitlement,
		SOLEXFlag, CAPPFlag, RolloutCountries)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(WaveID) DO UPDATE SET
		WaveName = excluded.WaveName,
		WaveStage = excluded.WaveStage,
		WaveStatus = excluded.WaveStatus,
		RISEEntitlement = excluded.RISEEntitlement,
		SOLEXFlag = excluded.SOLEXFlag,
		CAPPFlag = excluded.CAPPFlag,
		RolloutCountries = excluded.RolloutCountries
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

	for _, w := range waves {
		_, err := txStmt.Exec(
			w.WaveID,
			w.WaveName,
			w.WaveStage,
			w.WaveStatus,
			w.RISEEntitlement,
			w.SOLEXFlag,
			w.CAPPFlag,
			w.RolloutCountries,
		)
		if err != nil {
			l.logger.Error("Error al actualizar Dim_Wave para la wave %d: %v", w.WaveID, err)
			errors++
			continue
		}

		processed++

		if processed%100 == 0 {
			l.logger.Debug("Cargadas %d de %d waves...", processed, len(waves))
		}
	}

	if errors > 0 {
		tx.Rollback()
		return fmt.Errorf("se produjeron %d errores al cargar Dim_Wave", errors)
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return fmt.Errorf("error al confirmar la transacción: %w", err)
	}

	duration := time.Since(startTime)
	l.logger.Info("Carga de Dim_Wave finalizada. Filas cargadas: %d. Duración: %v", processed, duration)

	return nil
}
