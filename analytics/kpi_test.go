package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sapdash/proyectos_datamart/database"
)

func kpiRows() []database.ExceptionRow {
	return []database.ExceptionRow{
		{ProjectID: 1, CustomerRegion: "LATAM", MainPartner: "Partner Uno", DiasRetraso: 40, Retrasado: true, ImpactoVenta: 600000, DuracionDias: 300, Anio: 2025, Mes: 3, Trimestre: 1, ProjectStatusFlag: "Pausado", CriticalityLevel: SeverityCritico},
		{ProjectID: 2, CustomerRegion: "LATAM", MainPartner: "Partner Dos", DiasRetraso: 20, Retrasado: true, ImpactoVenta: 150000, DuracionDias: 200, Anio: 2025, Mes: 3, Trimestre: 1, ProjectStatusFlag: "Activo", CriticalityLevel: SeverityModerado},
		{ProjectID: 3, CustomerRegion: "EMEA", MainPartner: "Partner Uno", DiasRetraso: 6, Retrasado: true, ImpactoVenta: 50000, DuracionDias: 180, Anio: 2025, Mes: 4, Trimestre: 2, ProjectStatusFlag: "Activo", CriticalityLevel: SeverityLeve},
		{ProjectID: 4, CustomerRegion: "APJ", MainPartner: "Partner Tres", DiasRetraso: 0, Retrasado: false, ImpactoVenta: 0, DuracionDias: 120, Anio: 2024, Mes: 11, Trimestre: 4, ProjectStatusFlag: "Pausado", CriticalityLevel: SeveritySinRetraso},
	}
}

func TestComputeOperationalKPIs(t *testing.T) {
	k := ComputeOperationalKPIs(kpiRows())

	assert.Equal(t, 4, k.TotalProyectos)
	assert.Equal(t, 3, k.Retrasados)
	assert.Equal(t, 75.0, k.TasaRetraso)
	assert.Equal(t, 22.0, k.PromedioDias)
	assert.Equal(t, 1, k.Criticos)
	assert.Equal(t, "LATAM", k.RegionTop)
	assert.Equal(t, 60, k.RegionTopDias)
}

func TestComputeOperationalKPIsVacio(t *testing.T) {
	k := ComputeOperationalKPIs(nil)
	assert.Equal(t, 0, k.TotalProyectos)
	assert.Equal(t, 0.0, k.TasaRetraso)
	assert.Equal(t, 0.0, k.PromedioDias)
}

func TestComputeExecutiveKPIs(t *testing.T) {
	k := ComputeExecutiveKPIs(kpiRows())

	assert.Equal(t, 4, k.TotalProyectos)
	assert.Equal(t, 1, k.Criticos)
	assert.Equal(t, 75.0, k.PctConRetraso)
	assert.Equal(t, 22.0, k.PromedioDias)
	assert.Equal(t, 200.0, k.DuracionPromedio)
	assert.Equal(t, 800000.0, k.VentasEnRiesgo)
}

func TestByPartnerOrdenaPorDiasAcumulados(t *testing.T) {
	stats := ByPartner(kpiRows())

	// Partner Tres solo tiene un proyecto pausado sin retraso y queda fuera
	require.Len(t, stats, 2)

	assert.Equal(t, "Partner Uno", stats[0].Name)
	assert.Equal(t, 46, stats[0].SumDays)
	assert.Equal(t, 2, stats[0].Count)
	assert.Equal(t, 23.0, stats[0].MeanDays)

	assert.Equal(t, "Partner Dos", stats[1].Name)
}

func TestByRegionCuentaSoloRetrasados(t *testing.T) {
	regions := ByRegion(kpiRows())

	byName := make(map[string]GroupStat)
	for _, s := range regions {
		byName[s.Name] = s
	}

	assert.Equal(t, 2, byName["LATAM"].Count)
	assert.Equal(t, 1, byName["EMEA"].Count)

	// APJ solo aparece por un proyecto pausado sin días de retraso
	_, ok := byName["APJ"]
	assert.False(t, ok)
}

func TestByImpactRange(t *testing.T) {
	stats := ByImpactRange(kpiRows())

	byName := make(map[string]GroupStat)
	for _, s := range stats {
		byName[s.Name] = s
	}

	assert.Equal(t, 1, byName[ImpactAlto].Count)
	assert.Equal(t, 1, byName[ImpactMedio].Count)
	assert.Equal(t, 1, byName[ImpactBajo].Count)
	assert.Equal(t, 1, byName[ImpactSinValor].Count)
}

func TestTopByImpact(t *testing.T) {
	top := TopByImpact(kpiRows())
	require.NotEmpty(t, top)
	assert.Equal(t, 1, top[0].ProjectID)
	assert.Equal(t, 2, top[1].ProjectID)
}

func TestCompareRegions(t *testing.T) {
	regions := CompareRegions(kpiRows())
	require.Len(t, regions, 3)

	// LATAM encabeza por cantidad de proyectos
	assert.Equal(t, "LATAM", regions[0].Region)
	assert.Equal(t, 2, regions[0].Proyectos)
	assert.Equal(t, 2, regions[0].Retrasados)
	assert.Equal(t, 100.0, regions[0].PctRetrasados)
	assert.Equal(t, 30.0, regions[0].PromedioDias)
	assert.Equal(t, 750000.0, regions[0].VentasRiesgo)
}

func TestComputePriorityActions(t *testing.T) {
	actions := ComputePriorityActions(kpiRows())

	require.Len(t, actions.Criticos, 1)
	assert.Equal(t, 1, actions.Criticos[0].ProjectID)

	// Solo el retraso de 20 días queda en la banda de vigilancia 16-31
	require.Len(t, actions.Moderados, 1)
	assert.Equal(t, 2, actions.Moderados[0].ProjectID)
}

func TestComputePriorityActionsExcluyeElLimiteDe15Dias(t *testing.T) {
	rows := []database.ExceptionRow{
		{ProjectID: 1, DiasRetraso: 15, Retrasado: true},
		{ProjectID: 2, DiasRetraso: 16, Retrasado: true},
	}

	actions := ComputePriorityActions(rows)

	// La banda de vigilancia empieza pasados los 15 días
	require.Len(t, actions.Moderados, 1)
	assert.Equal(t, 2, actions.Moderados[0].ProjectID)
	assert.Empty(t, actions.Criticos)
}

func TestMonthlyTrend(t *testing.T) {
	// Solo las filas con retraso entran en la serie
	trend := MonthlyTrend(kpiRows())
	require.Len(t, trend, 2)

	// Orden cronológico
	assert.Equal(t, "2025-03", trend[0].Period)
	assert.Equal(t, 2, trend[0].Count)
	assert.Equal(t, 30.0, trend[0].MeanDays)
	assert.Equal(t, "2025-04", trend[1].Period)
	assert.Equal(t, 1, trend[1].Count)
}

func TestQuarterlyAndYearlyTrend(t *testing.T) {
	quarterly := QuarterlyTrend(kpiRows())
	require.Len(t, quarterly, 2)
	assert.Equal(t, "2025-T1", quarterly[0].Period)
	assert.Equal(t, "2025-T2", quarterly[1].Period)

	yearly := YearlyTrend(kpiRows())
	require.Len(t, yearly, 1)
	assert.Equal(t, "2025", yearly[0].Period)
	assert.Equal(t, 3, yearly[0].Count)
}

func TestRegionByStatusFlagPivot(t *testing.T) {
	pivot := RegionByStatusFlag(kpiRows())

	assert.Equal(t, 4, pivot.Total)
	assert.Equal(t, 1, pivot.Cells["LATAM"]["Pausado"])
	assert.Equal(t, 1, pivot.Cells["LATAM"]["Activo"])
	assert.Equal(t, 2, pivot.RowTotals["LATAM"])
	assert.Equal(t, 2, pivot.ColTotals["Pausado"])
	assert.ElementsMatch(t, []string{"APJ", "EMEA", "LATAM"}, pivot.Rows)
}

func TestCriticalityBySeverityPivot(t *testing.T) {
	pivot := CriticalityBySeverity(kpiRows())

	assert.Equal(t, 1, pivot.Cells[SeverityCritico][SeverityCritico])
	assert.Equal(t, 1, pivot.Cells[SeverityModerado][SeverityModerado])
	assert.Equal(t, 1, pivot.Cells[SeverityLeve][SeverityModerado])
	assert.Equal(t, 2, pivot.ColTotals[SeverityModerado])
}
