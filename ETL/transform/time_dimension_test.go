package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sapdash/proyectos_datamart/ETL/models"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

func TestDateKey(t *testing.T) {
	assert.Equal(t, 20250601, DateKey(time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC)))
	assert.Equal(t, 20241231, DateKey(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, DateKey(time.Time{}))
}

func TestDateKeyForFallbacks(t *testing.T) {
	planned := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	contract := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	// Con go-live planificado manda esa fecha
	proj := models.ProjectStaging{PlannedGoLive: planned, ContractStart: contract, UpdatedAt: updated}
	assert.Equal(t, 20250601, DateKeyFor(proj))

	// Sin go-live cae al inicio del contrato
	proj.PlannedGoLive = time.Time{}
	assert.Equal(t, 20250210, DateKeyFor(proj))

	// Sin fechas contractuales cae al updated_at del staging
	proj.ContractStart = time.Time{}
	assert.Equal(t, 20250305, DateKeyFor(proj))

	// Sin ninguna fecha no hay clave
	proj.UpdatedAt = time.Time{}
	assert.Equal(t, 0, DateKeyFor(proj))
}

func TestTimeDimensionAtributos(t *testing.T) {
	p := NewTimeDimensionProcessor(utils.NewDiscardLogger())

	// 1 de junio de 2025 es domingo
	proj := models.ProjectStaging{
		ID:            1,
		PlannedGoLive: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	dims := p.Process([]models.ProjectStaging{proj})
	require.Len(t, dims, 1)

	assert.Equal(t, 20250601, dims[0].DateKey)
	assert.Equal(t, 2025, dims[0].Anio)
	assert.Equal(t, 6, dims[0].Mes)
	assert.Equal(t, 2, dims[0].Trimestre)
	assert.Equal(t, "Junio", dims[0].NombreMes)
	assert.Equal(t, "Domingo", dims[0].DiaSemana)
}

func TestTimeDimensionTrimestres(t *testing.T) {
	tests := []struct {
		month   time.Month
		quarter int
	}{
		{time.January, 1}, {time.March, 1},
		{time.April, 2}, {time.June, 2},
		{time.July, 3}, {time.September, 3},
		{time.October, 4}, {time.December, 4},
	}

	p := NewTimeDimensionProcessor(utils.NewDiscardLogger())
	for _, tt := range tests {
		proj := models.ProjectStaging{
			ID:            1,
			PlannedGoLive: time.Date(2025, tt.month, 10, 0, 0, 0, 0, time.UTC),
		}
		dims := p.Process([]models.ProjectStaging{proj})
		require.Len(t, dims, 1)
		assert.Equal(t, tt.quarter, dims[0].Trimestre, "mes: %v", tt.month)
	}
}

func TestTimeDimensionColisionGanaElUltimo(t *testing.T) {
	p := NewTimeDimensionProcessor(utils.NewDiscardLogger())

	shared := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	first := models.ProjectStaging{
		ID:            1,
		PlannedGoLive: shared,
		KickOff:       time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	second := models.ProjectStaging{
		ID:            2,
		PlannedGoLive: shared,
		KickOff:       time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC),
	}

	dims := p.Process([]models.ProjectStaging{first, second})
	require.Len(t, dims, 1)

	// Dos proyectos con la misma fecha de referencia: queda el último paquete
	assert.Equal(t, second.KickOff, dims[0].KickOff)
}

func TestTimeDimensionOmiteProyectosSinFecha(t *testing.T) {
	p := NewTimeDimensionProcessor(utils.NewDiscardLogger())

	dims := p.Process([]models.ProjectStaging{{ID: 7}})
	assert.Empty(t, dims)
}
