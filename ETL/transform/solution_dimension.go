package transform

import (
	"github.com/sapdash/proyectos_datamart/ETL/models"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// SolutionDimensionProcessor construye las filas de Dim_Solucion
type SolutionDimensionProcessor struct {
	logger *utils.ETLLogger
}

// NewSolutionDimensionProcessor crea un nuevo SolutionDimensionProcessor
func NewSolutionDimensionProcessor(logger *utils.ETLLogger) *SolutionDimensionProcessor {
	return &SolutionDimensionProcessor{logger: logger}
}

// Process convierte el catálogo de soluciones en filas de Dim_Solucion
func (p *SolutionDimensionProcessor) Process(solutions []models.SolutionStaging) []models.SolutionDimension {
	dims := make([]models.SolutionDimension, 0, len(solutions))

	for _, s := range solutions {
		dims = append(dims, models.SolutionDimension{
			SolutionID:       s.ID,
			SolutionArea:     defaultIfEmpty(s.Area),
			SolutionSubArea:  s.SubArea,
			SolutionSubArea2: s.SubArea2,
			LogicalProduct:   defaultIfEmpty(s.LogicalProduct),
			RISEProgram:      s.RISEProgram,
			SOLEXProgram:     s.SOLEXProgram,
		})
	}

	p.logger.Debug("Dim_Solucion: %d filas generadas", len(dims))
	return dims
}
