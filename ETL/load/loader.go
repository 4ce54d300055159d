package load

import (
	"database/sql"
	"time"

	"github.com/sapdash/proyectos_datamart/ETL/models"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// Loader define la carga de datos en el datamart
type Loader interface {
	// LoadProjectDimension carga las filas de Dim_Proyecto
	LoadProjectDimension(projects []models.ProjectDimension) error

	// LoadTimeDimension carga las filas de Dim_Tiempo
	LoadTimeDimension(times []models.TimeDimension) error

	// LoadCustomerDimension carga las filas de Dim_Cliente
	LoadCustomerDimension(customers []models.CustomerDimension) error

	// LoadSolutionDimension carga las filas de Dim_Solucion
	LoadSolutionDimension(solutions []models.SolutionDimension) error

	// LoadWaveDimension carga las filas de Dim_Wave
	LoadWaveDimension(waves []models.WaveDimension) error

	// LoadPartnerDimension carga las filas de Dim_Partner
	LoadPartnerDimension(partners []models.PartnerDimension) error

	// LoadIndustryDimension carga las filas de Dim_Industria
	LoadIndustryDimension(industries []models.IndustryDimension) error

	// LoadRiskDimension carga las filas de Dim_Riesgo_Estado
	LoadRiskDimension(states []models.RiskStatusDimension) error

	// LoadProjectFacts carga Fact_Proyectos y Fact_Proyectos_LIMPIA
	LoadProjectFacts(facts []models.ProjectFact) error
}

// DatamartLoader implementación de Loader sobre el datamart SQLite
type DatamartLoader struct {
	db     *sql.DB
	logger *utils.ETLLogger

	// Cargadores por tabla del esquema estrella
	projectLoader  *ProjectLoader
	timeLoader     *TimeLoader
	customerLoader *CustomerLoader
	catalogLoader  *CatalogLoader
	waveLoader     *WaveLoader
	partnerLoader  *PartnerLoader
	riskLoader     *RiskLoader
	factLoader     *FactLoader
}

// NewDatamartLoader crea un nuevo DatamartLoader
func NewDatamartLoader(db *sql.DB, logger *utils.ETLLogger) *DatamartLoader {
	loader := &DatamartLoader{
		db:     db,
		logger: logger,
	}

	loader.projectLoader = NewProjectLoader(db, logger)
	loader.timeLoader = NewTimeLoader(db, logger)
	loader.customerLoader = NewCustomerLoader(db, logger)
	loader.catalogLoader = NewCatalogLoader(db, logger)
	loader.waveLoader = NewWaveLoader(db, logger)
	loader.partnerLoader = NewPartnerLoader(db, logger)
	loader.riskLoader = NewRiskLoader(db, logger)
	loader.factLoader = NewFactLoader(db, logger)

	return loader
}

// LoadProjectDimension carga las filas de Dim_Proyecto
func (l *DatamartLoader) LoadProjectDimension(projects []models.ProjectDimension) error {
	return l.projectLoader.Load(projects)
}

// LoadTimeDimension carga las filas de Dim_Tiempo
func (l *DatamartLoader) LoadTimeDimension(times []models.TimeDimension) error {
	return l.timeLoader.Load(times)
}

// LoadCustomerDimension carga las filas de Dim_Cliente
func (l *DatamartLoader) LoadCustomerDimension(customers []models.CustomerDimension) error {
	return l.customerLoader.Load(customers)
}

// LoadSolutionDimension carga las filas de Dim_Solucion
func (l *DatamartLoader) LoadSolutionDimension(solutions []models.SolutionDimension) error {
	return l.catalogLoader.LoadSolutions(solutions)
}

// LoadWaveDimension carga las filas de Dim_Wave
func (l *DatamartLoader) LoadWaveDimension(waves []models.WaveDimension) error {
	return l.waveLoader.Load(waves)
}

// LoadPartnerDimension carga las filas de Dim_Partner
func (l *DatamartLoader) LoadPartnerDimension(partners []models.PartnerDimension) error {
	return l.partnerLoader.Load(partners)
}

// LoadIndustryDimension carga las filas de Dim_Industria
func (l *DatamartLoader) LoadIndustryDimension(industries []models.IndustryDimension) error {
	return l.catalogLoader.LoadIndustries(industries)
}

// LoadRiskDimension carga las filas de Dim_Riesgo_Estado
func (l *DatamartLoader) LoadRiskDimension(states []models.RiskStatusDimension) error {
	return l.riskLoader.Load(states)
}

// LoadProjectFacts carga los hechos en ambas tablas de hechos
func (l *DatamartLoader) LoadProjectFacts(facts []models.ProjectFact) error {
	return l.factLoader.Load(facts)
}

// nullTime convierte el valor cero de time.Time en NULL para SQLite
func nullTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}
