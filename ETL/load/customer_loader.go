package load

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sapdash/proyectos_datamart/ETL/models"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// CustomerLoader carga las filas de Dim_Cliente
type CustomerLoader struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewCustomerLoader crea un nuevo CustomerLoader
func NewCustomerLoader(db *sql.DB, logger *utils.ETLLogger) *CustomerLoader {
	return &CustomerLoader{
		db:     db,
		logger: logger,
	}
}

// Load inserta o actualiza las filas de Dim_Cliente
func (l *CustomerLoader) Load(customers []models.CustomerDimension) error {
	if len(customers) == 0 {
		l.logger.Debug("Sin filas de Dim_Cliente para cargar")
		return nil
	}

	startTime := time.Now()
	l.logger.Info("Inicio de carga de Dim_Cliente (total: %d)", len(customers))

	stmt, err := l.db.Prepare(`
		INSERT INTO Dim_Cliente
		(CustomerID, CustomerName, CustomerRegion, Country, CountryCode,
		MarketUnit, ScaleUpProgram)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(CustomerID) DO UPDATE SET
		CustomerName = excluded.CustomerName,
		CustomerRegion = excluded.CustomerRegion,
		Country = excluded.Country,
		CountryCode = excluded.CountryCode,
		MarketUnit = excluded.MarketUnit,
		ScaleUpProgram = excluded.ScaleUpProgram
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

	for _, c := range customers {
		_, err := txStmt.Exec(
			c.CustomerID,
			c.CustomerName,
			c.CustomerRegion,
			c.Country,
			c.CountryCode,
			c.MarketUnit,
			c.ScaleUpProgram,
		)
		if err != nil {
			l.logger.Error("Error al actualizar Dim_Cliente para el cliente %d: %v", c.CustomerID, err)
			errors++
			continue
		}

		processed++

		if processed%100 == 0 {
			l.logger.Debug("Cargados %d de %d clientes...", processed, len(customers))
		}
	}

	if errors > 0 {
		tx.Rollback()
		return fmt.Errorf("se produjeron %d errores al cargar Dim_Cliente", errors)
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return fmt.Errorf("error al confirmar la transacción: %w", err)
	}

	duration := time.Since(startTime)
	l.logger.Info("Carga de Dim_Cliente finalizada. Filas cargadas: %d. Duración: %v", processed, duration)

	return nil
}
