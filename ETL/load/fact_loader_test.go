package load

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sapdash/proyectos_datamart/ETL/models"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

func testFact(projectID int) models.ProjectFact {
	return models.ProjectFact{
		ProjectID:            projectID,
		DateKey:              20250601,
		CustomerID:           10,
		SolutionID:           20,
		WaveID:               30,
		PartnerID:            40,
		IndustryID:           50,
		RiskStatusID:         99,
		DuracionDias:         120,
		IndicadorRetraso:     true,
		DiasRetraso:          14,
		CriticalityLevel:     "Moderado",
		StatusReasonCategory: "Cliente",
		ProjectStatusFlag:    "Activo",
		ImpactoVenta:         250000,
		FechaActualizacion:   time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Limpio:               true,
	}
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&count))
	return count
}

func TestFactLoaderCargaLimpiaEnAmbasTablas(t *testing.T) {
	db := openTestDatamart(t)
	insertDimensions(t, db)

	loader := NewFactLoader(db, utils.NewDiscardLogger())
	require.NoError(t, loader.Load([]models.ProjectFact{testFact(1)}))

	assert.Equal(t, 1, countRows(t, db, "Fact_Proyectos"))
	assert.Equal(t, 1, countRows(t, db, "Fact_Proyectos_LIMPIA"))
}

func TestFactLoaderRetiraFilaQueDejoDeSerLimpia(t *testing.T) {
	db := openTestDatamart(t)
	insertDimensions(t, db)

	loader := NewFactLoader(db, utils.NewDiscardLogger())
	require.NoError(t, loader.Load([]models.ProjectFact{testFact(1)}))

	// En la siguiente corrida la fila ya no pasa las reglas de limpieza
	dirty := testFact(1)
	dirty.Limpio = false
	require.NoError(t, loader.Load([]models.ProjectFact{dirty}))

	assert.Equal(t, 1, countRows(t, db, "Fact_Proyectos"))
	assert.Equal(t, 0, countRows(t, db, "Fact_Proyectos_LIMPIA"))
}

func TestFactLoaderOmiteClavesIrresolubles(t *testing.T) {
	db := openTestDatamart(t)
	insertDimensions(t, db)

	unresolvable := testFact(2)
	unresolvable.WaveID = 0
	unresolvable.Limpio = false

	loader := NewFactLoader(db, utils.NewDiscardLogger())
	require.NoError(t, loader.Load([]models.ProjectFact{testFact(1), unresolvable}))

	// La fila irresoluble se omite sin abortar el lote
	assert.Equal(t, 1, countRows(t, db, "Fact_Proyectos"))
}

func TestFactLoaderUpsertActualizaMedidas(t *testing.T) {
	db := openTestDatamart(t)
	insertDimensions(t, db)

	loader := NewFactLoader(db, utils.NewDiscardLogger())
	require.NoError(t, loader.Load([]models.ProjectFact{testFact(1)}))

	updated := testFact(1)
	updated.DiasRetraso = 45
	updated.CriticalityLevel = "Crítico"
	require.NoError(t, loader.Load([]models.ProjectFact{updated}))

	var dias int
	var nivel string
	require.NoError(t, db.QueryRow(
		"SELECT DiasRetraso, CriticalityLevel FROM Fact_Proyectos_LIMPIA WHERE ProjectID = 1").
		Scan(&dias, &nivel))

	assert.Equal(t, 45, dias)
	assert.Equal(t, "Crítico", nivel)
	assert.Equal(t, 1, countRows(t, db, "Fact_Proyectos"))
}
