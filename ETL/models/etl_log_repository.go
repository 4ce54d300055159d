package models

import (
	"database/sql"
	"fmt"
	"time"
)

// SQLiteETLLogRepository implementación de ETLLogRepository sobre el datamart SQLite
type SQLiteETLLogRepository struct {
	db *sql.DB
}

// NewSQLiteETLLogRepository crea un nuevo SQLiteETLLogRepository
func NewSQLiteETLLogRepository(db *sql.DB) *SQLiteETLLogRepository {
	return &SQLiteETLLogRepository{
		db: db,
	}
}

// CreateETLLogTable crea la tabla del journal de corridas ETL si no existe
func (r *SQLiteETLLogRepository) CreateETLLogTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS etl_run_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		start_time TIMESTAMP NOT NULL,
		end_time TIMESTAMP NULL,
		status TEXT NOT NULL DEFAULT 'in_progress'
			CHECK (status IN ('success', 'failed', 'in_progress')),
		projects_processed INTEGER DEFAULT 0,
		dimension_rows_loaded INTEGER DEFAULT 0,
		facts_loaded INTEGER DEFAULT 0,
		last_processed_project_id INTEGER DEFAULT 0,
		error_message TEXT,
		execution_time_seconds REAL
	);
	`

	_, err := r.db.Exec(query)
	if err != nil {
		return fmt.Errorf("error al crear la tabla etl_run_log: %w", err)
	}

	return nil
}

// CreateLogEntry crea un nuevo registro de corrida ETL
func (r *SQLiteETLLogRepository) CreateLogEntry(runID string, startTime time.Time) (int, error) {
	query := `
	INSERT INTO etl_run_log (run_id, start_time, status)
	VALUES (?, ?, 'in_progress')
	`

	result, err := r.db.Exec(query, runID, startTime)
	if err != nil {
		return 0, fmt.Errorf("error al crear el registro de corrida ETL: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error al obtener el ID del registro creado: %w", err)
	}

	return int(id), nil
}

// UpdateLogEntrySuccess actualiza el registro al terminar con éxito
func (r *SQLiteETLLogRepository) UpdateLogEntrySuccess(
	id int,
	endTime time.Time,
	projectsProcessed,
	dimensionRowsLoaded,
	factsLoaded,
	lastProcessedProjectID int) error {

	// Calculamos la duración a partir del start_time persistido
	var startTime time.Time
	err := r.db.QueryRow("SELECT start_time FROM etl_run_log WHERE id = ?", id).Scan(&startTime)
	if err != nil {
		return fmt.Errorf("error al obtener el inicio de la corrida ETL: %w", err)
	}

	executionTime := endTime.Sub(startTime).Seconds()

	query := `
	UPDATE etl_run_log
	SET
		end_time = ?,
		status = 'success',
		projects_processed = ?,
		dimension_rows_loaded = ?,
		facts_loaded = ?,
		last_processed_project_id = ?,
		execution_time_seconds = ?
	WHERE id = ?
	`

	_, err = r.db.Exec(
		query,
		endTime,
		projectsProcessed,
		dimensionRowsLoaded,
		factsLoaded,
		lastProcessedProjectID,
		executionTime,
		id,
	)
	if err != nil {
		return fmt.Errorf("error al actualizar el registro de corrida ETL: %w", err)
	}

	return nil
}

// UpdateLogEntryFailure actualiza el registro al terminar con error
func (r *SQLiteETLLogRepository) UpdateLogEntryFailure(id int, endTime time.Time, errorMessage string) error {
	var startTime time.Time
	err := r.db.QueryRow("SELECT start_time FROM etl_run_log WHERE id = ?", id).Scan(&startTime)
	if err != nil {
		return fmt.Errorf("error al obtener el inicio de la corrida ETL: %w", err)
	}

	executionTime := endTime.Sub(startTime).Seconds()

	query := `
	UPDATE etl_run_log
	SET
		end_time = ?,
		status = 'failed',
		error_message = ?,
		execution_time_seconds = ?
	WHERE id = ?
	`

	_, err = r.db.Exec(query, endTime, errorMessage, executionTime, id)
	if err != nil {
		return fmt.Errorf("error al actualizar el registro de corrida fallida: %w", err)
	}

	return nil
}

// GetLastSuccessfulRun obtiene la última corrida exitosa del journal
func (r *SQLiteETLLogRepository) GetLastSuccessfulRun() (*ETLRunLog, error) {
	query := `
	SELECT id, run_id, start_time, end_time, status,
		projects_processed, dimension_rows_loaded, facts_loaded,
		last_processed_project_id, execution_time_seconds
	FROM etl_run_log
	WHERE status = 'success'
	ORDER BY end_time DESC
	LIMIT 1
	`

	var runLog ETLRunLog
	err := r.db.QueryRow(query).Scan(
		&runLog.ID,
		&runLog.RunID,
		&runLog.StartTime,
		&runLog.EndTime,
		&runLog.Status,
		&runLog.ProjectsProcessed,
		&runLog.DimensionRowsLoaded,
		&runLog.FactsLoaded,
		&runLog.LastProcessedProjectID,
		&runLog.ExecutionTimeSeconds,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			// Todavía no hay corridas exitosas
			return nil, nil
		}
		return nil, fmt.Errorf("error al consultar la última corrida exitosa: %w", err)
	}

	return &runLog, nil
}

// GetRunStats obtiene las corridas ETL de los últimos días indicados
func (r *SQLiteETLLogRepository) GetRunStats(days int) ([]ETLRunLog, error) {
	query := `
	SELECT id, run_id, start_time, end_time, status,
		projects_processed, dimension_rows_loaded, facts_loaded,
		last_processed_project_id,
		COALESCE(error_message, ''), COALESCE(execution_time_seconds, 0)
	FROM etl_run_log
	WHERE start_time >= ?
	ORDER BY start_time DESC
	`

	since := time.Now().AddDate(0, 0, -days)
	rows, err := r.db.Query(query, since)
	if err != nil {
		return nil, fmt.Errorf("error al consultar las corridas ETL: %w", err)
	}
	defer rows.Close()

	var runs []ETLRunLog
	for rows.Next() {
		var runLog ETLRunLog
		var endTime sql.NullTime
		if err := rows.Scan(
			&runLog.ID,
			&runLog.RunID,
			&runLog.StartTime,
			&endTime,
			&runLog.Status,
			&runLog.ProjectsProcessed,
			&runLog.DimensionRowsLoaded,
			&runLog.FactsLoaded,
			&runLog.LastProcessedProjectID,
			&runLog.ErrorMessage,
			&runLog.ExecutionTimeSeconds,
		); err != nil {
			return nil, fmt.Errorf("error al procesar una fila del journal ETL: %w", err)
		}
		if endTime.Valid {
			runLog.EndTime = endTime.Time
		}
		runs = append(runs, runLog)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error tras iterar el journal ETL: %w", err)
	}

	return runs, nil
}
