package extractors

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sapdash/proyectos_datamart/ETL/models"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// Extractor coordina la extracción de datos del staging
type Extractor struct {
	db                *sql.DB
	logger            *utils.ETLLogger
	projectExtractor  *ProjectExtractor
	customerExtractor *CustomerExtractor
	waveExtractor     *WaveExtractor
	partnerExtractor  *PartnerExtractor
	catalogExtractor  *CatalogExtractor
	batchSize         int
}

// NewExtractor crea un nuevo Extractor
func NewExtractor(db *sql.DB, logger *utils.ETLLogger, batchSize int) *Extractor {
	return &Extractor{
		db:                db,
		logger:            logger,
		projectExtractor:  NewProjectExtractor(db, logger),
		customerExtractor: NewCustomerExtractor(db, logger),
		waveExtractor:     NewWaveExtractor(db, logger),
		partnerExtractor:  NewPartnerExtractor(db, logger),
		catalogExtractor:  NewCatalogExtractor(db, logger),
		batchSize:         batchSize,
	}
}

// Extract ejecuta la fase de extracción del ETL
// lastRunTime: fin de la última corrida exitosa, para extracción incremental
// lastProcessedProjectID: último proyecto procesado por esa corrida
func (e *Extractor) Extract(lastRunTime time.Time, lastProcessedProjectID int) (*models.ExtractedData, error) {
	startTime := time.Now()
	e.logger.LogExtractStart()

	var extractedData models.ExtractedData
	var err error

	// Extraemos los proyectos (incremental por updated_at / último ID)
	extractedData.Projects, err = e.projectExtractor.ExtractProjects(lastRunTime, lastProcessedProjectID, e.batchSize)
	if err != nil {
		e.logger.Error("Error al extraer proyectos: %v", err)
		return nil, fmt.Errorf("error de extracción de proyectos: %w", err)
	}

	// Extraemos los clientes
	extractedData.Customers, err = e.customerExtractor.ExtractCustomers(lastRunTime, e.batchSize)
	if err != nil {
		e.logger.Error("Error al extraer clientes: %v", err)
		return nil, fmt.Errorf("error de extracción de clientes: %w", err)
	}

	// Extraemos las waves
	extractedData.Waves, err = e.waveExtractor.ExtractWaves(lastRunTime, e.batchSize)
	if err != nil {
		e.logger.Error("Error al extraer waves: %v", err)
		return nil, fmt.Errorf("error de extracción de waves: %w", err)
	}

	// Extraemos los partners
	extractedData.Partners, err = e.partnerExtractor.ExtractPartners(lastRunTime, e.batchSize)
	if err != nil {
		e.logger.Error("Error al extraer partners: %v", err)
		return nil, fmt.Errorf("error de extracción de partners: %w", err)
	}

	// Los catálogos son pequeños: extracción completa en cada corrida
	extractedData.Solutions, err = e.catalogExtractor.ExtractSolutions()
	if err != nil {
		e.logger.Error("Error al extraer el catálogo de soluciones: %v", err)
		return nil, fmt.Errorf("error de extracción de soluciones: %w", err)
	}

	extractedData.Industries, err = e.catalogExtractor.ExtractIndustries()
	if err != nil {
		e.logger.Error("Error al extraer el catálogo de industrias: %v", err)
		return nil, fmt.Errorf("error de extracción de industrias: %w", err)
	}

	// Registramos el momento de la corrida
	extractedData.LastRunTS = time.Now()

	e.logger.LogExtractComplete(
		len(extractedData.Projects),
		len(extractedData.Customers),
		len(extractedData.Waves),
		len(extractedData.Partners),
		time.Since(startTime),
	)

	return &extractedData, nil
}

// GetETLMetadata obtiene los metadatos de incrementalidad del staging
func (e *Extractor) GetETLMetadata() (models.ETLMetadata, error) {
	var metadata models.ETLMetadata
	var err error

	metadata.LastRunTimestamp, err = e.projectExtractor.GetLastProjectUpdateTime()
	if err != nil {
		e.logger.Error("Error al obtener la última actualización de proyectos: %v", err)
		return metadata, err
	}

	metadata.LastProcessedProjectID, err = e.projectExtractor.GetLastProjectID()
	if err != nil {
		e.logger.Error("Error al obtener el último ID de proyecto: %v", err)
		return metadata, err
	}

	return metadata, nil
}
