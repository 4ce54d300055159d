package load

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sapdash/proyectos_datamart/ETL/models"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// PartnerLoader carga las filas de Dim_Partner
type PartnerLoader struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewPartnerLoader crea un nuevo PartnerLoader
func NewPartnerLoader(db *sql.DB, logger *utils.ETLLogger) *PartnerLoader {
	return &PartnerLoader{
		db:     db,
		logger: logger,
	}
}

// Load inserta o actualiza las filas de Dim_Partner
func (l *PartnerLoader) Load(partners []models.PartnerDimension) error {
	if len(partners) == 0 {
		l.logger.Debug("Sin filas de Dim_Partner para cargar")
		return nil
	}

	startTime := time.Now()
	l.logger.Info("Inicio de carga de Dim_Partner (total: %d)", len(partners))

	stmt, err := l.db.Prepare(`
		INSERT INTO Dim_Partner
		(PartnerID, MainPartner, MainPartnerID, WavePartners,
		WavePartnerIDs, LastChangedByPartner)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(PartnerID) DO UPDATE SET
		MainPartner = excluded.MainPartner,
		MainPartnerID = excluded.MainPartnerID,
		WavePartners = excluded.WavePartners,
		WavePartnerIDs = excluded.WavePartnerIDs,
		LastChangedByPartner = excluded.LastChangedByPartner
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

	for _, p := range partners {
		_, err := txStmt.Exec(
			p.PartnerID,
			p.MainPartner,
			p.MainPartnerID,
			p.WavePartners,
			p.WavePartnerIDs,
			p.LastChangedByPartner,
		)
		if err != nil {
			l.logger.Error("Error al actualizar Dim_Partner para el partner %d: %v", p.PartnerID, err)
			errors++
			continue
		}

		processed++

		if processed%100 == 0 {
			l.logger.Debug("Cargados %d de %d partners...", processed, len(partners))
		}
	}

	if errors > 0 {
		tx.Rollback()
		return fmt.Errorf("se produjeron %d errores al cargar Dim_Partner", errors)
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return fmt.Errorf("error al confirmar la transacción: %w", err)
	}

	duration := time.Since(startTime)
	l.logger.Info("Carga de Dim_Partner finalizada. Filas cargadas: %d. Duración: %v", processed, duration)

	return nil
}
