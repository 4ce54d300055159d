package partnerrank

import (
	"database/sql"
	"fmt"

	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// Repository persiste el ranking de riesgo por partner en el datamart
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

// CreateRankTable crea la tabla del ranking si no existe
func (r *Repository) CreateRankTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS partner_risk_rank (
		partner_id INTEGER PRIMARY KEY,
		main_partner TEXT NOT NULL,
		risk_score REAL NOT NULL,
		rank INTEGER NOT NULL,
		total_projects INTEGER NOT NULL,
		delayed_count INTEGER NOT NULL,
		critical_count INTEGER NOT NULL,
		sum_delay_days INTEGER NOT NULL,
		mean_delay_days REAL NOT NULL,
		calculated_at TIMESTAMP NOT NULL
	);
	`

	if _, err := r.db.Exec(query); err != nil {
		return fmt.Errorf("error al crear la tabla partner_risk_rank: %w", err)
	}

	return nil
}

// SaveRanking reemplaza el ranking completo por el recién calculado
func (r *Repository) SaveRanking(ranking []PartnerRisk) error {
	if len(ranking) == 0 {
		r.logger.Debug("Sin ranking de partners para guardar")
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("error al iniciar la transacción: %w", err)
	}

	// El ranking es una foto completa: se recalcula entero en cada corrida
	if _, err := tx.Exec("DELETE FROM partner_risk_rank"); err != nil {
		tx.Rollback()
		return fmt.Errorf("error al vaciar el ranking anterior: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO partner_risk_rank
		(partner_id, main_partner, risk_score, rank, total_projects,
		delayed_count, critical_count, sum_delay_days, mean_delay_days, calculated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("error al preparar la consulta del ranking: %w", err)
	}
	defer stmt.Close()

	for _, p := range ranking {
		if _, err := stmt.Exec(
			p.PartnerID,
			p.MainPartner,
			p.RiskScore,
			p.Rank,
			p.TotalProjects,
			p.DelayedCount,
			p.CriticalCount,
			p.SumDelayDays,
			p.MeanDelayDays,
			p.CalculatedAt,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("error al guardar el ranking del partner %d: %w", p.PartnerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return fmt.Errorf("error al confirmar la transacción: %w", err)
	}

	r.logger.Info("Ranking de riesgo guardado para %d partners", len(ranking))
	return nil
}
