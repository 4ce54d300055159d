package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sapdash/proyectos_datamart/database"
)

func TestOperationalSeverity(t *testing.T) {
	tests := []struct {
		days     int
		expected string
	}{
		{0, SeveritySinRetraso},
		{1, SeverityLeve},
		{7, SeverityLeve},
		{8, SeverityModerado},
		{31, SeverityModerado},
		{32, SeverityCritico},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, OperationalSeverity(tt.days), "días: %d", tt.days)
	}
}

func TestExecutiveSeverity(t *testing.T) {
	// La vista ejecutiva no distingue leve de moderado
	assert.Equal(t, SeveritySinRetraso, ExecutiveSeverity(0))
	assert.Equal(t, SeverityModerado, ExecutiveSeverity(1))
	assert.Equal(t, SeverityModerado, ExecutiveSeverity(31))
	assert.Equal(t, SeverityCritico, ExecutiveSeverity(32))
}

func TestImpactRange(t *testing.T) {
	tests := []struct {
		impact   float64
		expected string
	}{
		{0, ImpactSinValor},
		{0.5, ImpactBajo},
		{1, ImpactBajo},
		{100000, ImpactBajo},
		{100001, ImpactMedio},
		{500000, ImpactMedio},
		{500001, ImpactAlto},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ImpactRange(tt.impact), "impacto: %v", tt.impact)
	}
}

func TestRecomputeDelays(t *testing.T) {
	rows := []database.ExceptionRow{
		{
			ProjectID:        1,
			PlannedGoLive:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			DiasRetraso:      14,
			Retrasado:        true,
			CriticalityLevel: SeverityModerado,
		},
		{
			// Sin go-live planificado la fila no se recalcula
			ProjectID:   2,
			DiasRetraso: 5,
			Retrasado:   true,
		},
	}

	hoy := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	out := RecomputeDelays(rows, hoy)
	require.Len(t, out, 2)

	assert.Equal(t, 44, out[0].DiasRetraso)
	assert.Equal(t, SeverityCritico, out[0].CriticalityLevel)
	assert.Equal(t, 5, out[1].DiasRetraso)

	// Las filas originales quedan intactas
	assert.Equal(t, 14, rows[0].DiasRetraso)
}

func TestRecomputeDelaysNoProduceNegativos(t *testing.T) {
	rows := []database.ExceptionRow{{
		ProjectID:     1,
		PlannedGoLive: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		DiasRetraso:   10,
		Retrasado:     true,
	}}

	out := RecomputeDelays(rows, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 0, out[0].DiasRetraso)
	assert.False(t, out[0].Retrasado)
	assert.Equal(t, SeveritySinRetraso, out[0].CriticalityLevel)
}
