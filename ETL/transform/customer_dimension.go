package transform

import (
	"github.com/sapdash/proyectos_datamart/ETL/models"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// CustomerDimensionProcessor construye las filas de Dim_Cliente
type CustomerDimensionProcessor struct {
	logger *utils.ETLLogger
}

// NewCustomerDimensionProcessor crea un nuevo CustomerDimensionProcessor
func NewCustomerDimensionProcessor(logger *utils.ETLLogger) *CustomerDimensionProcessor {
	return &CustomerDimensionProcessor{logger: logger}
}

// Process convierte los clientes del staging en filas de Dim_Cliente
func (p *CustomerDimensionProcessor) Process(customers []models.CustomerStaging) []models.CustomerDimension {
	dims := make([]models.CustomerDimension, 0, len(customers))

	for _, c := range customers {
		dims = append(dims, models.CustomerDimension{
			CustomerID:     c.ID,
			CustomerName:   defaultIfEmpty(c.Name),
			CustomerRegion: defaultIfEmpty(c.Region),
			Country:        defaultIfEmpty(c.Country),
			CountryCode:    c.CountryCode,
			MarketUnit:     defaultIfEmpty(c.MarketUnit),
			ScaleUpProgram: c.ScaleUpProgram,
		})
	}

	p.logger.Debug("Dim_Cliente: %d filas generadas", len(dims))
	return dims
}
