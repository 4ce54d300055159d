package linear_regression

import (
	"database/sql"
	"fmt"

	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// Repository persiste los pronósticos de tendencia en el datamart
type Repository struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewRepository crea un nuevo Repository
func NewRepository(db *sql.DB, logger *utils.ETLLogger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// CreatePredictionsTable crea la tabla de pronósticos si no existe
func (r *Repository) CreatePredictionsTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS delay_trend_predictions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		metric TEXT NOT NULL,
		target_month TIMESTAMP NOT NULL,
		predicted_value REAL NOT NULL,
		lower_bound REAL NOT NULL,
		upper_bound REAL NOT NULL,
		r2 REAL NOT NULL,
		confidence_level REAL NOT NULL,
		generated_at TIMESTAMP NOT NULL,
		UNIQUE (metric, target_month)
	);
	`

	if _, err := r.db.Exec(query); err != nil {
		return fmt.Errorf("error al crear la tabla delay_trend_predictions: %w", err)
	}

	return nil
}

// SavePredictions guarda los pronósticos generados, reemplazando los
// existentes para el mismo mes y métrica
func (r *Repository) SavePredictions(predictions []DelayTrendPrediction) error {
	if len(predictions) == 0 {
		r.logger.Debug("Sin pronósticos para guardar")
		return nil
	}

	stmt, err := r.db.Prepare(`
		INSERT INTO delay_trend_predictions
		(metric, target_month, predicted_value, lower_bound, upper_bound,
		r2, confidence_level, generated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(metric, target_month) DO UPDATE SET
		predicted_value = excluded.predicted_value,
		lower_bound = excluded.lower_bound,
		upper_bound = excluded.upper_bound,
		r2 = excluded.r2,
		confidence_level = excluded.confidence_level,
		generated_at = excluded.generated_at
	`)
	if err != nil {
		return fmt.Errorf("error al preparar la consulta de pronósticos: %w", err)
	}
	defer stmt.Close()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("error al iniciar la transacción: %w", err)
	}

	txStmt := tx.Stmt(stmt)
	defer txStmt.Close()

	for _, p := range predictions {
		if _, err := txStmt.Exec(
			p.Metric,
			p.TargetMonth,
			p.PredictedValue,
			p.LowerBound,
			p.UpperBound,
			p.R2,
			p.ConfidenceLevel,
			p.GeneratedAt,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("error al guardar el pronóstico de %s para %v: %w", p.Metric, p.TargetMonth, err)
		}
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return fmt.Errorf("error al confirmar la transacción: %w", err)
	}

	r.logger.Info("Guardados %d pronósticos de tendencia", len(predictions))
	return nil
}
