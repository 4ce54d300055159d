package models

import (
	"time"
)

// Niveles de criticidad operativa de un retraso
const (
	CriticalityCritico    = "Crítico"
	CriticalityModerado   = "Moderado"
	CriticalityLeve       = "Leve"
	CriticalitySinRetraso = "Sin retraso"
)

// ProjectDimension representa una fila de Dim_Proyecto
type ProjectDimension struct {
	ProjectID           int
	ProjectName         string
	ProjectStatus       string
	ProjectPhase        string
	ExecutiveSummary    string
	ContractEnded       bool
	ScopeDescription    string
	ValidationFlag      bool
	StrategicDeployment bool
}

// TimeDimension representa una fila de Dim_Tiempo
// DateKey es un entero AAAAMMDD que identifica el paquete de fechas del proyecto
type TimeDimension struct {
	DateKey         int
	ContractSigned  time.Time
	ContractStart   time.Time
	ContractEnd     time.Time
	KickOff         time.Time
	PlannedGoLive   time.Time
	ConfirmedGoLive time.Time
	Anio            int
	Mes             int
	Trimestre       int
	NombreMes       string
	DiaSemana       string
}

// CustomerDimension representa una fila de Dim_Cliente
type CustomerDimension struct {
	CustomerID     int
	CustomerName   string
	CustomerRegion string
	Country        string
	CountryCode    string
	MarketUnit     string
	ScaleUpProgram bool
}

// SolutionDimension representa una fila de Dim_Solucion
type SolutionDimension struct {
	SolutionID       int
	SolutionArea     string
	SolutionSubArea  string
	SolutionSubArea2 string
	LogicalProduct   string
	RISEProgram      bool
	SOLEXProgram     bool
}

// WaveDimension representa una fila de Dim_Wave
type WaveDimension struct {
	WaveID           int
	WaveName         string
	WaveStage        string
	WaveStatus       string
	RISEEntitlement  bool
	SOLEXFlag        bool
	CAPPFlag         bool
	RolloutCountries string
}

// PartnerDimension representa una fila de Dim_Partner
type PartnerDimension struct {
	PartnerID            int
	MainPartner          string
	MainPartnerID        string
	WavePartners         string
	WavePartnerIDs       string
	LastChangedByPartner bool
}

// IndustryDimension representa una fila de Dim_Industria
type IndustryDimension struct {
	IndustryID   int
	IndustryName string
	ISS          string
	Archetype    string
	SubArchetype string
	Tier         string
}

// RiskStatusDimension representa una fila de Dim_Riesgo_Estado
type RiskStatusDimension struct {
	RiskStatusID      int
	EscalationLevel   string
	StatusReason      string
	WavePartnerStatus string
	StatusMatch       bool
	ManualOverride    bool
}

// ProjectFact representa una fila de Fact_Proyectos
// ProjectID es a la vez clave primaria y FK 1:1 hacia Dim_Proyecto
type ProjectFact struct {
	ProjectID    int
	DateKey      int
	CustomerID   int
	SolutionID   int
	WaveID       int
	PartnerID    int
	IndustryID   int
	RiskStatusID int

	DuracionDias     int
	IndicadorRetraso bool
	DiasRetraso      int

	CriticalityLevel     string
	StatusReasonCategory string
	ProjectStatusFlag    string
	ImpactoVenta         float64

	FechaActualizacion time.Time

	// Limpio indica que la fila pasó las reglas de limpieza y
	// entra también en Fact_Proyectos_LIMPIA
	Limpio bool
}
