package linear_regression

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/sapdash/proyectos_datamart/ETL/load"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// seedMonthlySeries carga seis meses con un proyecto retrasado cada uno
// y un retraso medio que crece 5 días por mes
func seedMonthlySeries(t *testing.T, db *sql.DB) {
	t.Helper()

	for i := 0; i < 6; i++ {
		dateKey := 20250101 + i*100 // 20250101, 20250201, ...
		month := i + 1

		_, err := db.Exec(`INSERT INTO Dim_Tiempo (DateKey, Año, Mes, Trimestre, NombreMes, DiaSemana)
			VALUES (?, 2025, ?, ?, 'Mes', 'Día')`, dateKey, month, (month-1)/3+1)
		require.NoError(t, err)

		_, err = db.Exec(fmt.Sprintf(`INSERT INTO Fact_Proyectos_LIMPIA
			(ProjectID, DateKey, CustomerID, SolutionID, WaveID, PartnerID, IndustryID,
			RiskStatusID, DuracionDias, IndicadorRetraso, DiasRetraso, CriticalityLevel,
			StatusReason_Category, ProjectStatus_Flag, ImpactoVenta, FechaActualizacion)
			VALUES (%d, %d, 1, 1, 1, 1, 1, 1, 100, 1, %d, 'Moderado', 'Cliente', 'Activo', 0, '2025-07-01 00:00:00')`,
			i+1, dateKey, 10+i*5))
		require.NoError(t, err)
	}
}

func openForecastDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	db.SetMaxOpenConns(1)

	require.NoError(t, load.CreateSchema(db, utils.NewDiscardLogger()))
	return db
}

func TestRunWithCustomConfigPersistePronosticos(t *testing.T) {
	db := openForecastDB(t)
	seedMonthlySeries(t, db)

	cfg := Config{
		AnalysisMonths:  12,
		HorizonMonths:   3,
		ConfidenceLevel: 0.95,
		MinR2Threshold:  0.30,
	}
	require.NoError(t, RunWithCustomConfig(db, utils.NewDiscardLogger(), cfg))

	// El conteo mensual es constante (R²=0) y se descarta; el retraso
	// medio crece linealmente y produce un pronóstico por mes del horizonte
	var count int
	require.NoError(t, db.QueryRow(
		"SELECT COUNT(*) FROM delay_trend_predictions WHERE metric = ?",
		MetricMeanDelayDays).Scan(&count))
	assert.Equal(t, 3, count)

	require.NoError(t, db.QueryRow(
		"SELECT COUNT(*) FROM delay_trend_predictions WHERE metric = ?",
		MetricDelayedCount).Scan(&count))
	assert.Equal(t, 0, count)

	// El retraso medio sube 5 días por mes: el primer mes pronosticado
	// continúa la recta
	var predicted float64
	require.NoError(t, db.QueryRow(
		"SELECT predicted_value FROM delay_trend_predictions WHERE metric = ? ORDER BY target_month LIMIT 1",
		MetricMeanDelayDays).Scan(&predicted))
	assert.InDelta(t, 40, predicted, 0.5)
}

func TestRunWithCustomConfigSerieInsuficiente(t *testing.T) {
	db := openForecastDB(t)

	// Sin datos el pronóstico se omite sin error
	require.NoError(t, RunWithCustomConfig(db, utils.NewDiscardLogger(), DefaultConfig()))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM delay_trend_predictions").Scan(&count))
	assert.Equal(t, 0, count)
}

func TestGetMonthlyDelaySeriesRecortaAlPeriodo(t *testing.T) {
	db := openForecastDB(t)
	seedMonthlySeries(t, db)

	service := NewDataService(db, utils.NewDiscardLogger())

	series, err := service.GetMonthlyDelaySeries(4)
	require.NoError(t, err)
	require.Len(t, series, 4)

	// Se conservan los últimos meses del período
	assert.Equal(t, 3, int(series[0].Month.Month()))
	assert.Equal(t, 6, int(series[3].Month.Month()))
	assert.Equal(t, 1, series[0].DelayedCount)
	assert.InDelta(t, 20.0, series[0].MeanDelayDays, 0.001)
}
