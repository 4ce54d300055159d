package load

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sapdash/proyectos_datamart/ETL/models"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// LoadManager gestiona la fase Load del proceso ETL
type LoadManager struct {
	db     *sql.DB
	logger *utils.ETLLogger
	loader Loader
}

// NewLoadManager crea un nuevo LoadManager
func NewLoadManager(db *sql.DB, logger *utils.ETLLogger) *LoadManager {
	return &LoadManager{
		db:     db,
		logger: logger,
		loader: NewDatamartLoader(db, logger),
	}
}

// Load ejecuta la fase Load sobre los datos transformados
// Las dimensiones se cargan antes que los hechos para que la verificación
// de claves foráneas del datamart nunca rechace una fila por orden de carga
func (m *LoadManager) Load(transformedData *models.TransformedData) error {
	startTime := time.Now()
	m.logger.Info("Inicio de la fase Load (carga en el datamart)")

	// 1. Dimensión de proyectos
	if len(transformedData.Projects) > 0 {
		m.logger.Info("Cargando Dim_Proyecto...")
		if err := m.loader.LoadProjectDimension(transformedData.Projects); err != nil {
			m.logger.Error("Error al cargar Dim_Proyecto: %v", err)
			return fmt.Errorf("error al cargar Dim_Proyecto: %w", err)
		}
	}

	// 2. Dimensión de tiempo
	if len(transformedData.Times) > 0 {
		m.logger.Info("Cargando Dim_Tiempo...")
		if err := m.loader.LoadTimeDimension(transformedData.Times); err != nil {
			m.logger.Error("Error al cargar Dim_Tiempo: %v", err)
			return fmt.Errorf("error al cargar Dim_Tiempo: %w", err)
		}
	}

	// 3. Dimensión de clientes
	if len(transformedData.Customers) > 0 {
		m.logger.Info("Cargando Dim_Cliente...")
		if err := m.loader.LoadCustomerDimension(transformedData.Customers); err != nil {
			m.logger.Error("Error al cargar Dim_Cliente: %v", err)
			return fmt.Errorf("error al cargar Dim_Cliente: %w", err)
		}
	}

	// 4. Catálogo de soluciones
	if len(transformedData.Solutions) > 0 {
		m.logger.Info("Cargando Dim_Solucion...")
		if err := m.loader.LoadSolutionDimension(transformedData.Solutions); err != nil {
			m.logger.Error("Error al cargar Dim_Solucion: %v", err)
			return fmt.Errorf("error al cargar Dim_Solucion: %w", err)
		}
	}

	// 5. Dimensión de waves
	if len(transformedData.Waves) > 0 {
		m.logger.Info("Cargando Dim_Wave...")
		if err := m.loader.LoadWaveDimension(transformedData.Waves); err != nil {
			m.logger.Error("Error al cargar Dim_Wave: %v", err)
			return fmt.Errorf("error al cargar Dim_Wave: %w", err)
		}
	}

	// 6. Dimensión de partners
	if len(transformedData.Partners) > 0 {
		m.logger.Info("Cargando Dim_Partner...")
		if err := m.loader.LoadPartnerDimension(transformedData.Partners); err != nil {
			m.logger.Error("Error al cargar Dim_Partner: %v", err)
			return fmt.Errorf("error al cargar Dim_Partner: %w", err)
		}
	}

	// 7. Catálogo de industrias
	if len(transformedData.Industries) > 0 {
		m.logger.Info("Cargando Dim_Industria...")
		if err := m.loader.LoadIndustryDimension(transformedData.Industries); err != nil {
			m.logger.Error("Error al cargar Dim_Industria: %v", err)
			return fmt.Errorf("error al cargar Dim_Industria: %w", err)
		}
	}

	// 8. Dimensión de estados de riesgo
	if len(transformedData.RiskStates) > 0 {
		m.logger.Info("Cargando Dim_Riesgo_Estado...")
		if err := m.loader.LoadRiskDimension(transformedData.RiskStates); err != nil {
			m.logger.Error("Error al cargar Dim_Riesgo_Estado: %v", err)
			return fmt.Errorf("error al cargar Dim_Riesgo_Estado: %w", err)
		}
	}

	// 9. Hechos, al final: sus FKs ya existen en las dimensiones
	if len(transformedData.Facts) > 0 {
		m.logger.Info("Cargando Fact_Proyectos...")
		if err := m.loader.LoadProjectFacts(transformedData.Facts); err != nil {
			m.logger.Error("Error al cargar Fact_Proyectos: %v", err)
			return fmt.Errorf("error al cargar Fact_Proyectos: %w", err)
		}
	}

	duration := time.Since(startTime)
	m.logger.Info("Fase Load finalizada. Duración: %v", duration)

	return nil
}
