package transform

import (
	"strings"
	"time"

	"github.com/sapdash/proyectos_datamart/ETL/models"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// Categorías normalizadas del motivo de parada
const (
	ReasonCliente     = "Cliente"
	ReasonPartner     = "Partner"
	ReasonContractual = "Contractual"
	ReasonTecnico     = "Técnico"
	ReasonRecursos    = "Recursos"
	ReasonSinMotivo   = "Sin motivo"
	ReasonOtro        = "Otro"
)

// Banderas normalizadas del estado del proyecto
const (
	StatusActivo     = "Activo"
	StatusPausado    = "Pausado"
	StatusCancelado  = "Cancelado"
	StatusFinalizado = "Finalizado"
)

// ProjectFactProcessor construye las filas de Fact_Proyectos
type ProjectFactProcessor struct {
	criticalDays int
	moderateDays int
	logger       *utils.ETLLogger
}

// NewProjectFactProcessor crea un nuevo ProjectFactProcessor
func NewProjectFactProcessor(criticalDays, moderateDays int, logger *utils.ETLLogger) *ProjectFactProcessor {
	return &ProjectFactProcessor{
		criticalDays: criticalDays,
		moderateDays: moderateDays,
		logger:       logger,
	}
}

// Process convierte los proyectos del staging en hechos del esquema estrella
// hoy es la fecha de la corrida, contra la que corren los retrasos sin go-live confirmado
func (p *ProjectFactProcessor) Process(projects []models.ProjectStaging, hoy time.Time) ([]models.ProjectFact, error) {
	facts := make([]models.ProjectFact, 0, len(projects))
	limpios := 0

	for _, proj := range projects {
		fact := p.buildFact(proj, hoy)
		if fact.Limpio {
			limpios++
		}
		facts = append(facts, fact)
	}

	p.logger.Debug("Fact_Proyectos: %d hechos generados (%d limpios)", len(facts), limpios)
	return facts, nil
}

// buildFact calcula las medidas de un proyecto
func (p *ProjectFactProcessor) buildFact(proj models.ProjectStaging, hoy time.Time) models.ProjectFact {
	delayDays := p.delayDays(proj, hoy)

	updatedAt := proj.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = hoy
	}

	fact := models.ProjectFact{
		ProjectID:    proj.ID,
		DateKey:      DateKeyFor(proj),
		CustomerID:   proj.CustomerID,
		SolutionID:   proj.SolutionID,
		WaveID:       proj.WaveID,
		PartnerID:    proj.PartnerID,
		IndustryID:   proj.IndustryID,
		RiskStatusID: RiskStatusID(proj),

		DuracionDias:     durationDays(proj),
		IndicadorRetraso: delayDays > 0,
		DiasRetraso:      delayDays,

		CriticalityLevel:     p.criticality(delayDays),
		StatusReasonCategory: CategorizeStatusReason(proj.StatusReason),
		ProjectStatusFlag:    NormalizeStatusFlag(proj.Status),
		ImpactoVenta:         proj.ImpactoVenta,

		FechaActualizacion: updatedAt,
	}

	fact.Limpio = isClean(proj, fact)
	return fact
}

// delayDays calcula los días de retraso contra el go-live planificado
// Con go-live confirmado el retraso queda fijado; sin él, corre contra hoy
func (p *ProjectFactProcessor) delayDays(proj models.ProjectStaging, hoy time.Time) int {
	if proj.PlannedGoLive.IsZero() {
		return 0
	}

	reference := hoy
	if !proj.ConfirmedGoLive.IsZero() {
		reference = proj.ConfirmedGoLive
	}

	days := daysBetween(proj.PlannedGoLive, reference)
	if days < 0 {
		return 0
	}
	return days
}

// criticality clasifica el retraso en bandas operativas
func (p *ProjectFactProcessor) criticality(delayDays int) string {
	switch {
	case delayDays > p.criticalDays:
		return models.CriticalityCritico
	case delayDays > p.moderateDays:
		return models.CriticalityModerado
	case delayDays > 0:
		return models.CriticalityLeve
	default:
		return models.CriticalitySinRetraso
	}
}

// durationDays calcula la duración contractual del proyecto en días
func durationDays(proj models.ProjectStaging) int {
	switch {
	case !proj.ContractStart.IsZero() && !proj.ContractEnd.IsZero():
		return daysBetween(proj.ContractStart, proj.ContractEnd)
	case !proj.ContractStart.IsZero() && !proj.PlannedGoLive.IsZero():
		return daysBetween(proj.ContractStart, proj.PlannedGoLive)
	default:
		return 0
	}
}

// isClean aplica las reglas de limpieza: toda clave foránea resoluble
// y nombre presente. Solo las filas limpias entran en Fact_Proyectos_LIMPIA
func isClean(proj models.ProjectStaging, fact models.ProjectFact) bool {
	if strings.TrimSpace(proj.Name) == "" {
		return false
	}
	return proj.ID > 0 &&
		proj.CustomerID > 0 &&
		proj.SolutionID > 0 &&
		proj.WaveID > 0 &&
		proj.PartnerID > 0 &&
		proj.IndustryID > 0 &&
		fact.DateKey > 0
}

// CategorizeStatusReason normaliza el motivo de parada en una categoría cerrada
func CategorizeStatusReason(reason string) string {
	r := strings.ToLower(strings.TrimSpace(reason))
	if r == "" {
		return ReasonSinMotivo
	}

	switch {
	case containsAny(r, "cliente", "customer"):
		return ReasonCliente
	case containsAny(r, "partner", "socio"):
		return ReasonPartner
	case containsAny(r, "contrato", "contract", "presupuesto", "budget", "comercial"):
		return ReasonContractual
	case containsAny(r, "técnic", "tecnic", "technical", "integra", "migra"):
		return ReasonTecnico
	case containsAny(r, "recurso", "resource", "staffing", "equipo"):
		return ReasonRecursos
	default:
		return ReasonOtro
	}
}

// NormalizeStatusFlag reduce el estado libre del proyecto a una bandera cerrada
func NormalizeStatusFlag(status string) string {
	s := strings.ToLower(strings.TrimSpace(status))

	switch {
	case containsAny(s, "paus", "hold", "deten", "stop"):
		return StatusPausado
	case containsAny(s, "cancel"):
		return StatusCancelado
	case containsAny(s, "finaliz", "complet", "cerrado", "closed", "live"):
		return StatusFinalizado
	default:
		return StatusActivo
	}
}

// daysBetween devuelve los días completos entre dos fechas
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
