package transform

import (
	"github.com/sapdash/proyectos_datamart/ETL/models"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// PartnerDimensionProcessor construye las filas de Dim_Partner
type PartnerDimensionProcessor struct {
	logger *utils.ETLLogger
}

// NewPartnerDimensionProcessor crea un nuevo PartnerDimensionProcessor
func NewPartnerDimensionProcessor(logger *utils.ETLLogger) *PartnerDimensionProcessor {
	return &PartnerDimensionProcessor{logger: logger}
}

// Process convierte los partners del staging en filas de Dim_Partner
func (p *PartnerDimensionProcessor) Process(partners []models.PartnerStaging) []models.PartnerDimension {
	dims := make([]models.PartnerDimension, 0, len(partners))

	for _, pt := range partners {
		dims = append(dims, models.PartnerDimension{
			PartnerID:            pt.ID,
			MainPartner:          defaultIfEmpty(pt.MainPartner),
			MainPartnerID:        pt.MainPartnerID,
			WavePartners:         pt.WavePartners,
			WavePartnerIDs:       pt.WavePartnerIDs,
			LastChangedByPartner: pt.LastChangedByPartner,
		})
	}

	p.logger.Debug("Dim_Partner: %d filas generadas", len(dims))
	return dims
}
