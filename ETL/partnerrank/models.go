package partnerrank

import (
	"time"
)

// PartnerDelayStats son los agregados de retraso de un partner de implementación
type PartnerDelayStats struct {
	PartnerID     int
	MainPartner   string
	TotalProjects int
	DelayedCount  int
	CriticalCount int
	SumDelayDays  int
	MeanDelayDays float64
}

// PartnerRisk es el resultado del ranking: un puntaje de riesgo por partner
type PartnerRisk struct {
	PartnerID     int
	MainPartner   string
	RiskScore     float64 // 0-100, mayor es peor
	Rank          int
	TotalProjects int
	DelayedCount  int
	CriticalCount int
	SumDelayDays  int
	MeanDelayDays float64
	CalculatedAt  time.Time
}
