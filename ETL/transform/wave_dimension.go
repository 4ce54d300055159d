package transform

import (
	"github.com/sapdash/proyectos_datamart/ETL/models"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// WaveDimensionProcessor construye las filas de Dim_Wave
type WaveDimensionProcessor struct {
	logger *utils.ETLLogger
}

// NewWaveDimensionProcessor crea un nuevo WaveDimensionProcessor
func NewWaveDimensionProcessor(logger *utils.ETLLogger) *WaveDimensionProcessor {
	return &WaveDimensionProcessor{logger: logger}
}

// Process convierte las waves del staging en filas de Dim_Wave
func (p *WaveDimensionProcessor) Process(waves []models.WaveStaging) []models.WaveDimension {
	dims := make([]models.WaveDimension, 0, len(waves))

	for _, w := range waves {
		dims = append(dims, models.WaveDimension{
			WaveID:           w.ID,
			WaveName:         defaultIfEmpty(w.Name),
			WaveStage:        defaultIfEmpty(w.Stage),
			WaveStatus:       defaultIfEmpty(w.Status),
			RISEEntitlement:  w.RISEEntitlement,
			SOLEXFlag:        w.SOLEXFlag,
			CAPPFlag:         w.CAPPFlag,
			RolloutCountries: w.RolloutCountries,
		})
	}

	p.logger.Debug("Dim_Wave: %d filas generadas", len(dims))
	return dims
}
