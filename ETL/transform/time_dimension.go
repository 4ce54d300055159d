package transform

import (
	"time"

	"github.com/sapdash/proyectos_datamart/ETL/models"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// Nombres de meses y días en el idioma del datamart
var (
	monthNames = []string{"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre"}
	dayNames = []string{"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}
)

// TimeDimensionProcessor construye las filas de Dim_Tiempo
// Cada fila es el paquete de hitos contractuales de un proyecto,
// identificado por la clave AAAAMMDD de su fecha de referencia
type TimeDimensionProcessor struct {
	logger *utils.ETLLogger
}

// NewTimeDimensionProcessor crea un nuevo TimeDimensionProcessor
func NewTimeDimensionProcessor(logger *utils.ETLLogger) *TimeDimensionProcessor {
	return &TimeDimensionProcessor{logger: logger}
}

// Process genera las filas de Dim_Tiempo para los proyectos extraídos
// Si dos proyectos comparten la misma fecha de referencia, gana el último
// paquete de hitos (igual que el upsert de la fase Load)
func (p *TimeDimensionProcessor) Process(projects []models.ProjectStaging) []models.TimeDimension {
	byKey := make(map[int]models.TimeDimension)
	var order []int

	for _, proj := range projects {
		key := DateKeyFor(proj)
		if key == 0 {
			p.logger.Debug("Proyecto %d sin fecha de referencia, se omite de Dim_Tiempo", proj.ID)
			continue
		}

		refDate := referenceDate(proj)
		dim := models.TimeDimension{
			DateKey:         key,
			ContractSigned:  proj.ContractSigned,
			ContractStart:   proj.ContractStart,
			ContractEnd:     proj.ContractEnd,
			KickOff:         proj.KickOff,
			PlannedGoLive:   proj.PlannedGoLive,
			ConfirmedGoLive: proj.ConfirmedGoLive,
			Anio:            refDate.Year(),
			Mes:             int(refDate.Month()),
			Trimestre:       (int(refDate.Month())-1)/3 + 1,
			NombreMes:       monthNames[int(refDate.Month())-1],
			DiaSemana:       dayNames[int(refDate.Weekday())],
		}

		if _, exists := byKey[key]; !exists {
			order = append(order, key)
		}
		byKey[key] = dim
	}

	dims := make([]models.TimeDimension, 0, len(byKey))
	for _, key := range order {
		dims = append(dims, byKey[key])
	}

	p.logger.Debug("Dim_Tiempo: %d filas generadas", len(dims))
	return dims
}

// DateKey convierte una fecha en su clave entera AAAAMMDD
func DateKey(t time.Time) int {
	if t.IsZero() {
		return 0
	}
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// DateKeyFor devuelve la clave de tiempo de un proyecto
// La fecha de referencia es el go-live planificado; si falta, el inicio
// del contrato; como último recurso, la fecha de actualización del staging
func DateKeyFor(p models.ProjectStaging) int {
	return DateKey(referenceDate(p))
}

func referenceDate(p models.ProjectStaging) time.Time {
	switch {
	case !p.PlannedGoLive.IsZero():
		return p.PlannedGoLive
	case !p.ContractStart.IsZero():
		return p.ContractStart
	default:
		return p.UpdatedAt
	}
}
