package routes

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/sapdash/proyectos_datamart/ETL/load"
	"github.com/sapdash/proyectos_datamart/ETL/models"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
	"github.com/sapdash/proyectos_datamart/analytics"
	"github.com/sapdash/proyectos_datamart/database"
	"github.com/sapdash/proyectos_datamart/websocket"
)

// setupTestServer arma un datamart en memoria con dos proyectos de
// excepción y un router con todas las rutas registradas
func setupTestServer(t *testing.T) (*mux.Router, *sql.DB) {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	db.SetMaxOpenConns(1)

	logger := utils.NewDiscardLogger()
	require.NoError(t, load.CreateSchema(db, logger))
	require.NoError(t, models.NewSQLiteETLLogRepository(db).CreateETLLogTable())
	seedDatamart(t, db)

	router := mux.NewRouter()
	SetupRoutes(router, db, websocket.NewManager())
	return router, db
}

func seedDatamart(t *testing.T, db *sql.DB) {
	t.Helper()

	stmts := []string{
		`INSERT INTO Dim_Proyecto (ProjectID, ProjectName, ProjectStatus, ProjectPhase) VALUES
			(1, 'Rollout Andes', 'En curso', 'Realize'),
			(2, 'Rollout Pampa', 'Pausado', 'Deploy')`,
		`INSERT INTO Dim_Tiempo (DateKey, PlannedGoLive, Año, Mes, Trimestre, NombreMes, DiaSemana) VALUES
			(20250601, '2025-06-01 00:00:00', 2025, 6, 2, 'Junio', 'Domingo'),
			(20250710, '2025-07-10 00:00:00', 2025, 7, 3, 'Julio', 'Jueves')`,
		`INSERT INTO Dim_Cliente (CustomerID, CustomerName, CustomerRegion, Country) VALUES
			(10, 'ACME Corp', 'LATAM', 'México'),
			(11, 'Beta SA', 'EMEA', 'España')`,
		`INSERT INTO Dim_Solucion (SolutionID, SolutionArea) VALUES (20, 'S/4HANA Cloud')`,
		`INSERT INTO Dim_Wave (WaveID, WaveName) VALUES (30, 'Wave 2025-Q2')`,
		`INSERT INTO Dim_Partner (PartnerID, MainPartner) VALUES
			(40, 'Partner Uno'), (41, 'Partner Dos')`,
		`INSERT INTO Dim_Industria (IndustryID, IndustryName) VALUES (50, 'Retail')`,
		`INSERT INTO Dim_Riesgo_Estado (RiskStatusID, EscalationLevel, StatusReason, WavePartnerStatus)
			VALUES (99, 'MaxAttention', 'Cliente pospuso', 'Red')`,
		`INSERT INTO Fact_Proyectos_LIMPIA (ProjectID, DateKey, CustomerID, SolutionID, WaveID,
			PartnerID, IndustryID, RiskStatusID, DuracionDias, IndicadorRetraso, DiasRetraso,
			CriticalityLevel, StatusReason_Category, ProjectStatus_Flag, ImpactoVenta, FechaActualizacion) VALUES
			(1, 20250601, 10, 20, 30, 40, 50, 99, 300, 1, 44, 'Crítico', 'Cliente', 'Activo', 600000, '2025-07-15 00:00:00'),
			(2, 20250710, 11, 20, 30, 41, 50, 99, 200, 1, 12, 'Moderado', 'Partner', 'Pausado', 150000, '2025-07-15 00:00:00')`,
		`INSERT INTO etl_run_log (run_id, start_time, end_time, status, projects_processed, facts_loaded)
			VALUES ('run-abc', '2025-07-15 03:00:00', '2025-07-15 03:02:10', 'success', 2, 2)`,
	}
	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
}

func doGet(t *testing.T, router *mux.Router, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetProyectos(t *testing.T) {
	router, _ := setupTestServer(t)

	rec := doGet(t, router, "/api/proyectos")
	require.Equal(t, http.StatusOK, rec.Code)

	var facts []database.ProjectFactRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &facts))

	require.Len(t, facts, 2)
	assert.Equal(t, "Rollout Andes", facts[0].ProjectName)
}

func TestGetExceptions(t *testing.T) {
	router, _ := setupTestServer(t)

	rec := doGet(t, router, "/api/exceptions")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var page analytics.Page
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))

	require.Len(t, page.Rows, 2)
	assert.Equal(t, 2, page.TotalRows)
	assert.Equal(t, 1, page.TotalPages)

	// Ordenadas por días de retraso descendente
	assert.Equal(t, 1, page.Rows[0].ProjectID)
	assert.Equal(t, "Rollout Andes", page.Rows[0].ProjectName)
	assert.Equal(t, "LATAM", page.Rows[0].CustomerRegion)
	assert.Equal(t, "Partner Uno", page.Rows[0].MainPartner)
	assert.Equal(t, 44, page.Rows[0].DiasRetraso)
}

func TestGetExceptionsConFiltros(t *testing.T) {
	router, _ := setupTestServer(t)

	rec := doGet(t, router, "/api/exceptions?partner=Partner+Dos")
	require.Equal(t, http.StatusOK, rec.Code)

	var page analytics.Page
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Rows, 1)
	assert.Equal(t, 2, page.Rows[0].ProjectID)

	rec = doGet(t, router, "/api/exceptions?minDays=20")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Rows, 1)
	assert.Equal(t, 1, page.Rows[0].ProjectID)
}

func TestGetRetrasos(t *testing.T) {
	router, _ := setupTestServer(t)

	rec := doGet(t, router, "/api/retrasos")
	require.Equal(t, http.StatusOK, rec.Code)

	var view RetrasosResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))

	assert.Equal(t, 2, view.KPIs.TotalProyectos)
	assert.Equal(t, 2, view.KPIs.Retrasados)
	assert.Equal(t, 1, view.KPIs.Criticos)
	assert.Equal(t, "LATAM", view.KPIs.RegionTop)
	assert.Len(t, view.Acciones.Criticos, 1)
	assert.ElementsMatch(t, []string{"Partner Uno", "Partner Dos"}, view.Partners)
}

func TestGetRetrasosConFechaDeReferencia(t *testing.T) {
	router, _ := setupTestServer(t)

	// Contra el 11 de junio el proyecto 1 lleva 10 días y el 2 aún no vence
	rec := doGet(t, router, "/api/retrasos?hoy=2025-06-11")
	require.Equal(t, http.StatusOK, rec.Code)

	var view RetrasosResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))

	assert.Equal(t, 1, view.KPIs.Retrasados)
	assert.Equal(t, 10.0, view.KPIs.PromedioDias)
	assert.Equal(t, 0, view.KPIs.Criticos)

	// Las agregaciones cuentan solo los proyectos retrasados a esa fecha
	require.Len(t, view.PorPartner, 1)
	assert.Equal(t, "Partner Uno", view.PorPartner[0].Name)
}

func TestGetRetrasosFechaInvalida(t *testing.T) {
	router, _ := setupTestServer(t)

	rec := doGet(t, router, "/api/retrasos?hoy=11-06-2025")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetParadas(t *testing.T) {
	router, _ := setupTestServer(t)

	rec := doGet(t, router, "/api/paradas")
	require.Equal(t, http.StatusOK, rec.Code)

	var view ParadasResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))

	assert.Equal(t, 2, view.KPIs.TotalProyectos)
	assert.Equal(t, 1, view.KPIs.Criticos)
	assert.Equal(t, 750000.0, view.KPIs.VentasEnRiesgo)
	assert.Equal(t, 2, view.RegionPorEstado.Total)
	require.NotEmpty(t, view.TopImpacto)
	assert.Equal(t, 1, view.TopImpacto[0].ProjectID)
}

func TestGetSummary(t *testing.T) {
	router, _ := setupTestServer(t)

	rec := doGet(t, router, "/api/summary")
	require.Equal(t, http.StatusOK, rec.Code)

	var summary database.SummaryMetrics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))

	assert.Equal(t, 2, summary.TotalProjects)
	assert.Equal(t, 2, summary.DelayedProjects)
	assert.Equal(t, 100.0, summary.PctAffected)
	assert.Equal(t, 28.0, summary.AvgDelayDays)
	assert.Equal(t, 750000.0, summary.SalesAtRisk)
	assert.Equal(t, 1, summary.CriticalProjects)
}

func TestGetETLStatus(t *testing.T) {
	router, _ := setupTestServer(t)

	rec := doGet(t, router, "/api/etl/status")
	require.Equal(t, http.StatusOK, rec.Code)

	var status database.ETLStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))

	assert.Equal(t, "run-abc", status.RunID)
	assert.Equal(t, "success", status.Status)
	assert.Equal(t, 2, status.ProjectsProcessed)
}

func TestExportExceptionsCSV(t *testing.T) {
	router, _ := setupTestServer(t)

	rec := doGet(t, router, "/api/exceptions/export")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "excepciones.csv")

	body := rec.Body.String()
	assert.Contains(t, body, "ProjectID,ProjectName")
	assert.Contains(t, body, "Rollout Andes")
	assert.Contains(t, body, "Rollout Pampa")
}

func TestCORSPreflight(t *testing.T) {
	router, _ := setupTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/summary", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
