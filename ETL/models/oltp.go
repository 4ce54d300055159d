package models

import (
	"time"
)

// ProjectStaging representa una fila de la tabla projects del staging (OLTP)
type ProjectStaging struct {
	ID                  int
	Name                string
	Status              string
	Phase               string
	ExecutiveSummary    string
	ScopeDescription    string
	ContractEnded       bool
	ValidationFlag      bool
	StrategicDeployment bool

	// Claves foráneas hacia los catálogos del staging
	CustomerID int
	SolutionID int
	WaveID     int
	PartnerID  int
	IndustryID int

	// Hitos contractuales del proyecto
	ContractSigned  time.Time
	ContractStart   time.Time
	ContractEnd     time.Time
	KickOff         time.Time
	PlannedGoLive   time.Time
	ConfirmedGoLive time.Time

	// Estado de riesgo / escalación
	EscalationLevel   string
	StatusReason      string
	WavePartnerStatus string
	StatusMatch       bool
	ManualOverride    bool

	// Impacto comercial estimado (USD)
	ImpactoVenta float64

	UpdatedAt time.Time
}

// CustomerStaging representa una fila de la tabla customers del staging
type CustomerStaging struct {
	ID             int
	Name           string
	Region         string
	Country        string
	CountryCode    string
	MarketUnit     string
	ScaleUpProgram bool
	UpdatedAt      time.Time
}

// SolutionStaging representa una fila del catálogo de soluciones del staging
type SolutionStaging struct {
	ID             int
	Area           string
	SubArea        string
	SubArea2       string
	LogicalProduct string
	RISEProgram    bool
	SOLEXProgram   bool
}

// WaveStaging representa una fila de la tabla waves del staging
type WaveStaging struct {
	ID               int
	Name             string
	Stage            string
	Status           string
	RISEEntitlement  bool
	SOLEXFlag        bool
	CAPPFlag         bool
	RolloutCountries string
	UpdatedAt        time.Time
}

// PartnerStaging representa una fila de la tabla partners del staging
type PartnerStaging struct {
	ID                   int
	MainPartner          string
	MainPartnerID        string
	WavePartners         string
	WavePartnerIDs       string
	LastChangedByPartner bool
	UpdatedAt            time.Time
}

// IndustryStaging representa una fila del catálogo de industrias del staging
type IndustryStaging struct {
	ID           int
	Name         string
	ISS          string
	Archetype    string
	SubArchetype string
	Tier         string
}

// ExtractedData agrupa todo lo extraído del staging en una corrida ETL
type ExtractedData struct {
	Projects   []ProjectStaging
	Customers  []CustomerStaging
	Solutions  []SolutionStaging
	Waves      []WaveStaging
	Partners   []PartnerStaging
	Industries []IndustryStaging
	LastRunTS  time.Time
}

// ETLMetadata contiene los metadatos de incrementalidad de la extracción
type ETLMetadata struct {
	LastRunTimestamp       time.Time
	LastProcessedProjectID int
}
