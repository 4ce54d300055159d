package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sapdash/proyectos_datamart/ETL/models"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

func TestRiskStatusIDDeterminista(t *testing.T) {
	proj := models.ProjectStaging{
		EscalationLevel:   "MaxAttention",
		StatusReason:      "Cliente pospuso la decisión",
		WavePartnerStatus: "Red",
		StatusMatch:       true,
	}

	first := RiskStatusID(proj)
	second := RiskStatusID(proj)

	// El mismo estado de riesgo produce la misma clave en cada corrida
	assert.Equal(t, first, second)
	assert.Positive(t, first)
}

func TestRiskStatusIDDistingueEstados(t *testing.T) {
	base := models.ProjectStaging{EscalationLevel: "MaxAttention"}
	other := models.ProjectStaging{EscalationLevel: "DeEscalated"}

	assert.NotEqual(t, RiskStatusID(base), RiskStatusID(other))

	// Los booleanos también participan de la clave
	flipped := base
	flipped.ManualOverride = true
	assert.NotEqual(t, RiskStatusID(base), RiskStatusID(flipped))
}

func TestRiskDimensionDeduplica(t *testing.T) {
	p := NewRiskDimensionProcessor(utils.NewDiscardLogger())

	shared := models.ProjectStaging{
		ID:                1,
		EscalationLevel:   "MaxAttention",
		StatusReason:      "Presupuesto congelado",
		WavePartnerStatus: "Red",
	}
	duplicate := shared
	duplicate.ID = 2

	distinct := shared
	distinct.ID = 3
	distinct.WavePartnerStatus = "Green"

	dims := p.Process([]models.ProjectStaging{shared, duplicate, distinct})
	require.Len(t, dims, 2)
}

func TestRiskDimensionValoresPorDefecto(t *testing.T) {
	p := NewRiskDimensionProcessor(utils.NewDiscardLogger())

	dims := p.Process([]models.ProjectStaging{{ID: 1}})
	require.Len(t, dims, 1)

	assert.Equal(t, "No Especificado", dims[0].EscalationLevel)
	assert.Equal(t, "No Especificado", dims[0].StatusReason)
	assert.Equal(t, "No Especificado", dims[0].WavePartnerStatus)
}
