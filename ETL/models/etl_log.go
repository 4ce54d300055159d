package models

import (
	"time"
)

// ETLRunLog representa el registro de una corrida del proceso ETL
type ETLRunLog struct {
	ID                     int       `json:"id"`
	RunID                  string    `json:"run_id"`
	StartTime              time.Time `json:"start_time"`
	EndTime                time.Time `json:"end_time"`
	Status                 string    `json:"status"` // "success", "failed", "in_progress"
	ProjectsProcessed      int       `json:"projects_processed"`
	DimensionRowsLoaded    int       `json:"dimension_rows_loaded"`
	FactsLoaded            int       `json:"facts_loaded"`
	LastProcessedProjectID int       `json:"last_processed_project_id"`
	ErrorMessage           string    `json:"error_message,omitempty"`
	ExecutionTimeSeconds   float64   `json:"execution_time_seconds"`
}

// ETLLogRepository define el repositorio del journal de corridas ETL
type ETLLogRepository interface {
	// CreateLogEntry crea un nuevo registro de corrida con estado in_progress
	CreateLogEntry(runID string, startTime time.Time) (int, error)

	// UpdateLogEntrySuccess actualiza el registro al terminar con éxito
	UpdateLogEntrySuccess(
		id int,
		endTime time.Time,
		projectsProcessed,
		dimensionRowsLoaded,
		factsLoaded,
		lastProcessedProjectID int) error

	// UpdateLogEntryFailure actualiza el registro al terminar con error
	UpdateLogEntryFailure(id int, endTime time.Time, errorMessage string) error

	// GetLastSuccessfulRun obtiene la última corrida exitosa
	GetLastSuccessfulRun() (*ETLRunLog, error)

	// GetRunStats obtiene las corridas de los últimos N días
	GetRunStats(days int) ([]ETLRunLog, error)
}
