package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sapdash/proyectos_datamart/database"
)

func sampleRows() []database.ExceptionRow {
	return []database.ExceptionRow{
		{ProjectID: 1, ProjectName: "Rollout Andes", MainPartner: "Partner Uno", CustomerRegion: "LATAM", DiasRetraso: 40},
		{ProjectID: 2, ProjectName: "Rollout Pampa", MainPartner: "Partner Dos", CustomerRegion: "LATAM", DiasRetraso: 10},
		{ProjectID: 3, ProjectName: "Migración Norte", MainPartner: "Partner Uno", CustomerRegion: "EMEA", DiasRetraso: 3},
		{ProjectID: 4, ProjectName: "Upgrade Central", MainPartner: "Partner Tres", CustomerRegion: "APJ", DiasRetraso: 0},
	}
}

func projectIDs(rows []database.ExceptionRow) []int {
	ids := make([]int, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ProjectID)
	}
	return ids
}

func TestApplyFiltroPorPartner(t *testing.T) {
	out := Apply(sampleRows(), Filter{Partner: "Partner Uno"})
	assert.Equal(t, []int{1, 3}, projectIDs(out))
}

func TestApplyFiltroPorRegion(t *testing.T) {
	out := Apply(sampleRows(), Filter{Region: "LATAM"})
	assert.Equal(t, []int{1, 2}, projectIDs(out))
}

func TestApplyFiltroPorSeveridad(t *testing.T) {
	out := Apply(sampleRows(), Filter{Severity: SeverityCritico})
	assert.Equal(t, []int{1}, projectIDs(out))
}

func TestApplyBusquedaPorNombre(t *testing.T) {
	out := Apply(sampleRows(), Filter{Search: "rollout"})
	assert.Equal(t, []int{1, 2}, projectIDs(out))
}

func TestApplyMinimoDeDias(t *testing.T) {
	out := Apply(sampleRows(), Filter{MinDays: 10})
	assert.Equal(t, []int{1, 2}, projectIDs(out))
}

func TestApplyFiltrosCombinados(t *testing.T) {
	out := Apply(sampleRows(), Filter{Partner: "Partner Uno", Region: "LATAM", MinDays: 20})
	assert.Equal(t, []int{1}, projectIDs(out))
}

func TestPaginate(t *testing.T) {
	rows := make([]database.ExceptionRow, 0, 250)
	for i := 1; i <= 250; i++ {
		rows = append(rows, database.ExceptionRow{ProjectID: i, ProjectName: fmt.Sprintf("Proyecto %d", i)})
	}

	page := Paginate(rows, 1)
	require.Len(t, page.Rows, PageSize)
	assert.Equal(t, 1, page.Rows[0].ProjectID)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 250, page.TotalRows)

	page = Paginate(rows, 3)
	require.Len(t, page.Rows, 50)
	assert.Equal(t, 201, page.Rows[0].ProjectID)
}

func TestPaginateFueraDeRango(t *testing.T) {
	rows := sampleRows()

	// Páginas fuera de rango se ajustan al límite más cercano
	page := Paginate(rows, 99)
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Rows, 4)

	page = Paginate(rows, -1)
	assert.Equal(t, 1, page.Page)
}

func TestPaginateVacio(t *testing.T) {
	page := Paginate(nil, 1)
	assert.Empty(t, page.Rows)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 0, page.TotalRows)
}

func TestPartnersYRegionesDistintos(t *testing.T) {
	assert.Equal(t, []string{"Partner Dos", "Partner Tres", "Partner Uno"}, Partners(sampleRows()))
	assert.Equal(t, []string{"APJ", "EMEA", "LATAM"}, Regions(sampleRows()))
}
