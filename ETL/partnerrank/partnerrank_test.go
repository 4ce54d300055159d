package partnerrank

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiskScoreSinProyectos(t *testing.T) {
	assert.Equal(t, 0.0, RiskScore(PartnerDelayStats{}))
}

func TestRiskScoreSinRetrasos(t *testing.T) {
	st := PartnerDelayStats{TotalProjects: 10}
	assert.Equal(t, 0.0, RiskScore(st))
}

func TestRiskScoreMaximo(t *testing.T) {
	// Todo retrasado, todo crítico y retraso medio saturado
	st := PartnerDelayStats{
		TotalProjects: 4,
		DelayedCount:  4,
		CriticalCount: 4,
		MeanDelayDays: 120,
	}
	assert.Equal(t, 100.0, RiskScore(st))
}

func TestRiskScorePonderaciones(t *testing.T) {
	// Mitad retrasado, sin críticos, 45 días promedio:
	// 0.5*0.5 + 0.3*(45/90) + 0.2*0 = 0.40
	st := PartnerDelayStats{
		TotalProjects: 10,
		DelayedCount:  5,
		MeanDelayDays: 45,
	}
	assert.Equal(t, 40.0, RiskScore(st))
}

func TestComputeRankingOrdenYPosiciones(t *testing.T) {
	now := time.Now()
	stats := []PartnerDelayStats{
		{PartnerID: 1, MainPartner: "Partner Uno", TotalProjects: 10, DelayedCount: 2, MeanDelayDays: 10},
		{PartnerID: 2, MainPartner: "Partner Dos", TotalProjects: 10, DelayedCount: 9, CriticalCount: 5, MeanDelayDays: 60},
		{PartnerID: 3, MainPartner: "Partner Tres", TotalProjects: 10, DelayedCount: 5, MeanDelayDays: 30},
	}

	ranking := ComputeRanking(stats, now)
	require.Len(t, ranking, 3)

	// El de mayor riesgo encabeza el ranking
	assert.Equal(t, 2, ranking[0].PartnerID)
	assert.Equal(t, 1, ranking[0].Rank)
	assert.Equal(t, 3, ranking[1].PartnerID)
	assert.Equal(t, 2, ranking[1].Rank)
	assert.Equal(t, 1, ranking[2].PartnerID)
	assert.Equal(t, 3, ranking[2].Rank)

	for _, r := range ranking {
		assert.Equal(t, now, r.CalculatedAt)
	}
}

func TestComputeRankingDesempatePorDiasAcumulados(t *testing.T) {
	stats := []PartnerDelayStats{
		{PartnerID: 1, TotalProjects: 10, DelayedCount: 5, MeanDelayDays: 30, SumDelayDays: 150},
		{PartnerID: 2, TotalProjects: 10, DelayedCount: 5, MeanDelayDays: 30, SumDelayDays: 300},
	}

	ranking := ComputeRanking(stats, time.Now())
	require.Len(t, ranking, 2)

	// A igual puntaje gana el que acumula más días de retraso
	assert.Equal(t, 2, ranking[0].PartnerID)
	assert.Equal(t, 1, ranking[1].PartnerID)
}
