package transform

import (
	"fmt"
	"time"

	"github.com/sapdash/proyectos_datamart/ETL/config"
	"github.com/sapdash/proyectos_datamart/ETL/models"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// Transformer coordina la fase Transform: convierte las filas del staging
// en las dimensiones y los hechos del esquema estrella
type Transformer struct {
	logger *utils.ETLLogger

	projectProcessor  *ProjectDimensionProcessor
	timeProcessor     *TimeDimensionProcessor
	customerProcessor *CustomerDimensionProcessor
	solutionProcessor *SolutionDimensionProcessor
	waveProcessor     *WaveDimensionProcessor
	partnerProcessor  *PartnerDimensionProcessor
	industryProcessor *IndustryDimensionProcessor
	riskProcessor     *RiskDimensionProcessor
	factProcessor     *ProjectFactProcessor
}

// NewTransformer crea un nuevo Transformer con los umbrales de la configuración
func NewTransformer(cfg config.ETLConfig, logger *utils.ETLLogger) *Transformer {
	return &Transformer{
		logger:            logger,
		projectProcessor:  NewProjectDimensionProcessor(logger),
		timeProcessor:     NewTimeDimensionProcessor(logger),
		customerProcessor: NewCustomerDimensionProcessor(logger),
		solutionProcessor: NewSolutionDimensionProcessor(logger),
		waveProcessor:     NewWaveDimensionProcessor(logger),
		partnerProcessor:  NewPartnerDimensionProcessor(logger),
		industryProcessor: NewIndustryDimensionProcessor(logger),
		riskProcessor:     NewRiskDimensionProcessor(logger),
		factProcessor: NewProjectFactProcessor(
			cfg.DelayThresholds.Critical,
			cfg.DelayThresholds.Moderate,
			logger,
		),
	}
}

// Transform ejecuta la fase Transform sobre los datos extraídos
func (t *Transformer) Transform(extracted *models.ExtractedData) (*models.TransformedData, error) {
	startTime := time.Now()
	t.logger.LogTransformStart()

	var transformed models.TransformedData

	// 1. Dimensiones descriptivas, una por entidad del staging
	transformed.Projects = t.projectProcessor.Process(extracted.Projects)
	transformed.Customers = t.customerProcessor.Process(extracted.Customers)
	transformed.Solutions = t.solutionProcessor.Process(extracted.Solutions)
	transformed.Waves = t.waveProcessor.Process(extracted.Waves)
	transformed.Partners = t.partnerProcessor.Process(extracted.Partners)
	transformed.Industries = t.industryProcessor.Process(extracted.Industries)

	// 2. Dimensión de tiempo: un paquete de fechas por proyecto, clave AAAAMMDD
	transformed.Times = t.timeProcessor.Process(extracted.Projects)

	// 3. Dimensión de estado de riesgo: combinaciones distintas de escalación
	transformed.RiskStates = t.riskProcessor.Process(extracted.Projects)

	// 4. Hechos: medidas de retraso, duración y criticidad por proyecto
	// La fecha de referencia se toma en cada corrida, no al crear el Transformer
	facts, err := t.factProcessor.Process(extracted.Projects, time.Now())
	if err != nil {
		return nil, fmt.Errorf("error al construir los hechos de proyecto: %w", err)
	}
	transformed.Facts = facts

	t.logger.LogTransformComplete(
		transformed.TotalDimensionRows(),
		len(transformed.Facts),
		time.Since(startTime),
	)

	return &transformed, nil
}
