package load

import (
	"database/sql"
	"fmt"

	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// Sentencias DDL del esquema estrella del datamart
// Las dimensiones se crean antes que los hechos para que las claves
// foráneas de Fact_Proyectos sean verificables desde la primera corrida
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS Dim_Proyecto (
		ProjectID INTEGER PRIMARY KEY,
		ProjectName TEXT NOT NULL,
		ProjectStatus TEXT NOT NULL,
		ProjectPhase TEXT NOT NULL,
		ExecutiveSummary TEXT,
		ContractEnded INTEGER NOT NULL DEFAULT 0 CHECK (ContractEnded IN (0, 1)),
		ScopeDescription TEXT,
		ValidationFlag INTEGER NOT NULL DEFAULT 0 CHECK (ValidationFlag IN (0, 1)),
		StrategicDeployment INTEGER NOT NULL DEFAULT 0 CHECK (StrategicDeployment IN (0, 1))
	)`,

	`CREATE TABLE IF NOT EXISTS Dim_Tiempo (
		DateKey INTEGER PRIMARY KEY,
		ContractSigned TIMESTAMP NULL,
		ContractStart TIMESTAMP NULL,
		ContractEnd TIMESTAMP NULL,
		KickOff TIMESTAMP NULL,
		PlannedGoLive TIMESTAMP NULL,
		ConfirmedGoLive TIMESTAMP NULL,
		Año INTEGER NOT NULL,
		Mes INTEGER NOT NULL,
		Trimestre INTEGER NOT NULL,
		NombreMes TEXT NOT NULL,
		DiaSemana TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS Dim_Cliente (
		CustomerID INTEGER PRIMARY KEY,
		CustomerName TEXT NOT NULL,
		CustomerRegion TEXT NOT NULL,
		Country TEXT NOT NULL,
		CountryCode TEXT,
		MarketUnit TEXT,
		ScaleUpProgram INTEGER NOT NULL DEFAULT 0 CHECK (ScaleUpProgram IN (0, 1))
	)`,

	`CREATE TABLE IF NOT EXISTS Dim_Solucion (
		SolutionID INTEGER PRIMARY KEY,
		SolutionArea TEXT NOT NULL,
		SolutionSubArea TEXT,
		SolutionSubArea2 TEXT,
		LogicalProduct TEXT,
		RISEProgram INTEGER NOT NULL DEFAULT 0 CHECK (RISEProgram IN (0, 1)),
		SOLEXProgram INTEGER NOT NULL DEFAULT 0 CHECK (SOLEXProgram IN (0, 1))
	)`,

	`CREATE TABLE IF NOT EXISTS Dim_Wave (
		WaveID INTEGER PRIMARY KEY,
		WaveName TEXT NOT NULL,
		WaveStage TEXT,
		WaveStatus TEXT,
		RISEEntitlement INTEGER NOT NULL DEFAULT 0 CHECK (RISEEntitlement IN (0, 1)),
		SOLEXFlag INTEGER NOT NULL DEFAULT 0 CHECK (SOLEXFlag IN (0, 1)),
		CAPPFlag INTEGER NOT NULL DEFAULT 0 CHECK (CAPPFlag IN (0, 1)),
		RolloutCountries TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS Dim_Partner (
		PartnerID INTEGER PRIMARY KEY,
		MainPartner TEXT NOT NULL,
		MainPartnerID TEXT,
		WavePartners TEXT,
		WavePartnerIDs TEXT,
		LastChangedByPartner INTEGER NOT NULL DEFAULT 0 CHECK (LastChangedByPartner IN (0, 1))
	)`,

	`CREATE TABLE IF NOT EXISTS Dim_Industria (
		IndustryID INTEGER PRIMARY KEY,
		IndustryName TEXT NOT NULL,
		ISS TEXT,
		Archetype TEXT,
		SubArchetype TEXT,
		Tier TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS Dim_Riesgo_Estado (
		RiskStatusID INTEGER PRIMARY KEY,
		EscalationLevel TEXT NOT NULL,
		StatusReason TEXT NOT NULL,
		WavePartnerStatus TEXT NOT NULL,
		StatusMatch INTEGER NOT NULL DEFAULT 0 CHECK (StatusMatch IN (0, 1)),
		ManualOverride INTEGER NOT NULL DEFAULT 0 CHECK (ManualOverride IN (0, 1))
	)`,

	`CREATE TABLE IF NOT EXISTS Fact_Proyectos (
		ProjectID INTEGER PRIMARY KEY REFERENCES Dim_Proyecto(ProjectID),
		DateKey INTEGER NOT NULL REFERENCES Dim_Tiempo(DateKey),
		CustomerID INTEGER NOT NULL REFERENCES Dim_Cliente(CustomerID),
		SolutionID INTEGER NOT NULL REFERENCES Dim_Solucion(SolutionID),
		WaveID INTEGER NOT NULL REFERENCES Dim_Wave(WaveID),
		PartnerID INTEGER NOT NULL REFERENCES Dim_Partner(PartnerID),
		IndustryID INTEGER NOT NULL REFERENCES Dim_Industria(IndustryID),
		RiskStatusID INTEGER NOT NULL REFERENCES Dim_Riesgo_Estado(RiskStatusID),
		DuracionDias INTEGER NOT NULL DEFAULT 0,
		IndicadorRetraso INTEGER NOT NULL DEFAULT 0 CHECK (IndicadorRetraso IN (0, 1)),
		DiasRetraso INTEGER NOT NULL DEFAULT 0,
		CriticalityLevel TEXT NOT NULL,
		StatusReason_Category TEXT NOT NULL,
		ProjectStatus_Flag TEXT NOT NULL,
		ImpactoVenta REAL NOT NULL DEFAULT 0,
		FechaActualizacion TIMESTAMP NOT NULL
	)`,

	// Tabla limpia que lee el dashboard: mismo contrato de columnas que
	// Fact_Proyectos, solo filas que pasaron las reglas de limpieza
	`CREATE TABLE IF NOT EXISTS Fact_Proyectos_LIMPIA (
		ProjectID INTEGER PRIMARY KEY REFERENCES Dim_Proyecto(ProjectID),
		DateKey INTEGER NOT NULL REFERENCES Dim_Tiempo(DateKey),
		CustomerID INTEGER NOT NULL REFERENCES Dim_Cliente(CustomerID),
		SolutionID INTEGER NOT NULL REFERENCES Dim_Solucion(SolutionID),
		WaveID INTEGER NOT NULL REFERENCES Dim_Wave(WaveID),
		PartnerID INTEGER NOT NULL REFERENCES Dim_Partner(PartnerID),
		IndustryID INTEGER NOT NULL REFERENCES Dim_Industria(IndustryID),
		RiskStatusID INTEGER NOT NULL REFERENCES Dim_Riesgo_Estado(RiskStatusID),
		DuracionDias INTEGER NOT NULL DEFAULT 0,
		IndicadorRetraso INTEGER NOT NULL DEFAULT 0 CHECK (IndicadorRetraso IN (0, 1)),
		DiasRetraso INTEGER NOT NULL DEFAULT 0,
		CriticalityLevel TEXT NOT NULL,
		StatusReason_Category TEXT NOT NULL,
		ProjectStatus_Flag TEXT NOT NULL,
		ImpactoVenta REAL NOT NULL DEFAULT 0,
		FechaActualizacion TIMESTAMP NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_fact_retraso ON Fact_Proyectos_LIMPIA (IndicadorRetraso, DiasRetraso)`,
	`CREATE INDEX IF NOT EXISTS idx_fact_partner ON Fact_Proyectos_LIMPIA (PartnerID)`,
	`CREATE INDEX IF NOT EXISTS idx_fact_customer ON Fact_Proyectos_LIMPIA (CustomerID)`,
}

// CreateSchema crea las tablas del esquema estrella si no existen
func CreateSchema(db *sql.DB, logger *utils.ETLLogger) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("error al crear el esquema del datamart: %w", err)
		}
	}

	logger.Debug("Esquema estrella verificado")
	return nil
}
