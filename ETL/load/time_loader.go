package load

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sapdash/proyectos_datamart/ETL/models"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// TimeLoader carga las filas de Dim_Tiempo
type TimeLoader struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewTimeLoader crea un nuevo TimeLoader
func NewTimeLoader(db *sql.DB, logger *utils.ETLLogger) *TimeLoader {
	return &TimeLoader{
		db:     db,
		logger: logger,
	}
}

// Load inserta o actualiza las filas de Dim_Tiempo
// Los hitos ausentes (valor cero) se guardan como NULL
func (l *TimeLoader) Load(times []models.TimeDimension) error {
	if len(times) == 0 {
		l.logger.Debug("Sin filas de Dim_Tiempo para cargar")
		return nil
	}

	startTime := time.Now()
	l.logger.Info("Inicio de carga de Dim_Tiempo (total: %d)", len(times))

	stmt, err := l.db.Prepare(`
		INSERT INTO Dim_Tiempo
		(DateKey, ContractSigned, ContractStart, ContractEnd, KickOff,
		PlannedGoLive, ConfirmedGoLive, Año, Mes, Trimestre, NombreMes, DiaSemana)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(DateKey) DO UPDATE SET
		ContractSigned = excluded.ContractSigned,
		ContractStart = excluded.ContractStart,
		ContractEnd = excluded.ContractEnd,
		KickOff = excluded.KickOff,
		PlannedGoLive = excluded.PlannedGoLive,
		ConfirmedGoLive = excluded.ConfirmedGoLive,
		Año = excluded.Año,
		Mes = excluded.Mes,
		Trimestre = excluded.Trimestre,
		NombreMes = excluded.NombreMes,
		DiaSemana = excluded.DiaSemana
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

	for _, t := range times {
		_, err := txStmt.Exec(
			t.DateKey,
			nullTime(t.ContractSigned),
			nullTime(t.ContractStart),
			nullTime(t.ContractEnd),
			nullTime(t.KickOff),
			nullTime(t.PlannedGoLive),
			nullTime(t.ConfirmedGoLive),
			t.Anio,
			t.Mes,
			t.Trimestre,
			t.NombreMes,
			t.DiaSemana,
		)
		if err != nil {
			l.logger.Error("Error al actualizar Dim_Tiempo para la clave %d: %v", t.DateKey, err)
			errors++
			continue
		}

		processed++

		if processed%100 == 0 {
			l.logger.Debug("Cargadas %d de %d filas de tiempo...", processed, len(times))
		}
	}

	if errors > 0 {
		tx.Rollback()
		return fmt.Errorf("se produjeron %d errores al cargar Dim_Tiempo", errors)
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return fmt.Errorf("error al confirmar la transacción: %w", err)
	}

	duration := time.Since(startTime)
	l.logger.Info("Carga de Dim_Tiempo finalizada. Filas cargadas: %d. Duración: %v", processed, duration)

	return nil
}
