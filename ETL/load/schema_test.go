package load

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

func openTestDatamart(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// Una sola conexión para que el PRAGMA y los datos en memoria persistan
	db.SetMaxOpenConns(1)

	_, err = db.Exec("PRAGMA foreign_keys = ON")
	require.NoError(t, err)

	require.NoError(t, CreateSchema(db, utils.NewDiscardLogger()))
	return db
}

func insertDimensions(t *testing.T, db *sql.DB) {
	t.Helper()

	stmts := []string{
		`INSERT INTO Dim_Proyecto (ProjectID, ProjectName, ProjectStatus, ProjectPhase)
		 VALUES (1, 'Rollout Fase 1', 'En curso', 'Realize')`,
		`INSERT INTO Dim_Tiempo (DateKey, Año, Mes, Trimestre, NombreMes, DiaSemana)
		 VALUES (20250601, 2025, 6, 2, 'Junio', 'Domingo')`,
		`INSERT INTO Dim_Cliente (CustomerID, CustomerName, CustomerRegion, Country)
		 VALUES (10, 'ACME Corp', 'LATAM', 'México')`,
		`INSERT INTO Dim_Solucion (SolutionID, SolutionArea) VALUES (20, 'S/4HANA Cloud')`,
		`INSERT INTO Dim_Wave (WaveID, WaveName) VALUES (30, 'Wave 2025-Q2')`,
		`INSERT INTO Dim_Partner (PartnerID, MainPartner) VALUES (40, 'Partner Uno')`,
		`INSERT INTO Dim_Industria (IndustryID, IndustryName) VALUES (50, 'Retail')`,
		`INSERT INTO Dim_Riesgo_Estado (RiskStatusID, EscalationLevel, StatusReason, WavePartnerStatus)
		 VALUES (99, 'MaxAttention', 'Cliente pospuso', 'Red')`,
	}
	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
}

const insertFact = `
	INSERT INTO Fact_Proyectos (
		ProjectID, DateKey, CustomerID, SolutionID, WaveID, PartnerID,
		IndustryID, RiskStatusID, DuracionDias, IndicadorRetraso, DiasRetraso,
		CriticalityLevel, StatusReason_Category, ProjectStatus_Flag,
		ImpactoVenta, FechaActualizacion
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

func TestCreateSchemaEsIdempotente(t *testing.T) {
	db := openTestDatamart(t)

	// Una segunda pasada sobre el mismo archivo no debe fallar
	require.NoError(t, CreateSchema(db, utils.NewDiscardLogger()))
}

func TestFactRechazaClaveForaneaInexistente(t *testing.T) {
	db := openTestDatamart(t)
	insertDimensions(t, db)

	// WaveID 42 no existe en Dim_Wave: la fila debe rechazarse
	_, err := db.Exec(insertFact,
		1, 20250601, 10, 20, 42, 40, 50, 99,
		120, 1, 14, "Moderado", "Cliente", "Activo", 250000.0, time.Now())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "FOREIGN KEY")
}

func TestFactAceptaClavesResolubles(t *testing.T) {
	db := openTestDatamart(t)
	insertDimensions(t, db)

	_, err := db.Exec(insertFact,
		1, 20250601, 10, 20, 30, 40, 50, 99,
		120, 1, 14, "Moderado", "Cliente", "Activo", 250000.0, time.Now())
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM Fact_Proyectos").Scan(&count))
	assert.Equal(t, 1, count)
}
