package transform

import (
	"strings"

	"github.com/sapdash/proyectos_datamart/ETL/models"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// Valor por defecto para atributos descriptivos vacíos
const noEspecificado = "No Especificado"

// ProjectDimensionProcessor construye las filas de Dim_Proyecto
type ProjectDimensionProcessor struct {
	logger *utils.ETLLogger
}

// NewProjectDimensionProcessor crea un nuevo ProjectDimensionProcessor
func NewProjectDimensionProcessor(logger *utils.ETLLogger) *ProjectDimensionProcessor {
	return &ProjectDimensionProcessor{logger: logger}
}

// Process convierte los proyectos del staging en filas de Dim_Proyecto
func (p *ProjectDimensionProcessor) Process(projects []models.ProjectStaging) []models.ProjectDimension {
	dims := make([]models.ProjectDimension, 0, len(projects))

	for _, proj := range projects {
		dims = append(dims, models.ProjectDimension{
			ProjectID:           proj.ID,
			ProjectName:         defaultIfEmpty(proj.Name),
			ProjectStatus:       defaultIfEmpty(proj.Status),
			ProjectPhase:        defaultIfEmpty(proj.Phase),
			ExecutiveSummary:    proj.ExecutiveSummary,
			ContractEnded:       proj.ContractEnded,
			ScopeDescription:    proj.ScopeDescription,
			ValidationFlag:      proj.ValidationFlag,
			StrategicDeployment: proj.StrategicDeployment,
		})
	}

	p.logger.Debug("Dim_Proyecto: %d filas generadas", len(dims))
	return dims
}

// defaultIfEmpty reemplaza cadenas vacías por el valor por defecto del datamart
func defaultIfEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return noEspecificado
	}
	return s
}
