package transform

import (
	"github.com/sapdash/proyectos_datamart/ETL/models"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// IndustryDimensionProcessor construye las filas de Dim_Industria
type IndustryDimensionProcessor struct {
	logger *utils.ETLLogger
}

// NewIndustryDimensionProcessor crea un nuevo IndustryDimensionProcessor
func NewIndustryDimensionProcessor(logger *utils.ETLLogger) *IndustryDimensionProcessor {
	return &IndustryDimensionProcessor{logger: logger}
}

// Process convierte el catálogo de industrias en filas de Dim_Industria
func (p *IndustryDimensionProcessor) Process(industries []models.IndustryStaging) []models.IndustryDimension {
	dims := make([]models.IndustryDimension, 0, len(industries))

	for _, i := range industries {
		dims = append(dims, models.IndustryDimension{
			IndustryID:   i.ID,
			IndustryName: defaultIfEmpty(i.Name),
			ISS:          i.ISS,
			Archetype:    defaultIfEmpty(i.Archetype),
			SubArchetype: i.SubArchetype,
			Tier:         i.Tier,
		})
	}

	p.logger.Debug("Dim_Industria: %d filas generadas", len(dims))
	return dims
}
