package database

import (
	"time"
)

// ExceptionRow es una fila de excepción: un hecho limpio unido a sus
// dimensiones, para proyectos retrasados o pausados
type ExceptionRow struct {
	ProjectID     int     `json:"projectId"`
	ProjectName   string  `json:"projectName"`
	ProjectStatus string  `json:"projectStatus"`
	DuracionDias  int     `json:"duracionDias"`
	DiasRetraso   int     `json:"diasRetraso"`
	Retrasado     bool    `json:"retrasado"`
	ImpactoVenta  float64 `json:"impactoVenta"`

	CriticalityLevel     string `json:"criticalityLevel"`
	StatusReasonCategory string `json:"statusReasonCategory"`
	ProjectStatusFlag    string `json:"projectStatusFlag"`

	ContractSigned time.Time `json:"contractSigned,omitempty"`
	PlannedGoLive  time.Time `json:"plannedGoLive,omitempty"`
	Anio           int       `json:"anio"`
	Mes            int       `json:"mes"`
	Trimestre      int       `json:"trimestre"`

	CustomerRegion string `json:"customerRegion"`
	SolutionArea   string `json:"solutionArea"`
	IndustryName   string `json:"industryName"`
	ISS            string `json:"iss"`
	MainPartner    string `json:"mainPartner"`

	FechaActualizacion time.Time `json:"fechaActualizacion"`
}

// ProjectFactRow es un hecho limpio unido al proyecto y al tiempo,
// el contrato de columnas de la vista general del dashboard
type ProjectFactRow struct {
	ProjectID     int       `json:"projectId"`
	ProjectName   string    `json:"projectName"`
	ProjectStatus string    `json:"projectStatus"`
	DuracionDias  int       `json:"duracionDias"`
	DiasRetraso   int       `json:"diasRetraso"`
	Retrasado     bool      `json:"retrasado"`
	ImpactoVenta  float64   `json:"impactoVenta"`
	PlannedGoLive time.Time `json:"plannedGoLive,omitempty"`
	Anio          int       `json:"anio"`
	Mes           int       `json:"mes"`
	Trimestre     int       `json:"trimestre"`
}

// SummaryMetrics son los KPIs globales del datamart
type SummaryMetrics struct {
	TotalProjects    int     `json:"totalProjects"`
	DelayedProjects  int     `json:"delayedProjects"`
	PctAffected      float64 `json:"pctAffected"`
	AvgDelayDays     float64 `json:"avgDelayDays"`
	SalesAtRisk      float64 `json:"salesAtRisk"`
	CriticalProjects int     `json:"criticalProjects"`
}

// ETLStatus es el estado de la última corrida ETL registrada en el journal
type ETLStatus struct {
	RunID             string    `json:"runId"`
	Status            string    `json:"status"`
	StartTime         time.Time `json:"startTime"`
	EndTime           time.Time `json:"endTime,omitempty"`
	ProjectsProcessed int       `json:"projectsProcessed"`
	FactsLoaded       int       `json:"factsLoaded"`
	ErrorMessage      string    `json:"errorMessage,omitempty"`
}
