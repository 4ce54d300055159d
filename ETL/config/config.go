package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
)

// ETLConfig contiene la configuración del proceso ETL
type ETLConfig struct {
	// Conexión al staging (OLTP de origen, MySQL)
	StagingConfig DatabaseConfig `json:"staging_config"`

	// Ruta del datamart SQLite de destino
	DatamartPath string `json:"datamart_path" env:"DATAMART_PATH" envDefault:"datamart.sqlite"`

	// Intervalo entre corridas programadas del ETL
	RunInterval time.Duration `json:"run_interval" env:"ETL_RUN_INTERVAL" envDefault:"1h"`

	// Máximo de registros procesados por corrida
	BatchSize int `json:"batch_size" env:"ETL_BATCH_SIZE" envDefault:"5000"`

	// Umbrales de criticidad del retraso (en días)
	DelayThresholds struct {
		Critical int `json:"critical" env:"DELAY_CRITICAL_DAYS" envDefault:"31"` // >31 días: Crítico
		Moderate int `json:"moderate" env:"DELAY_MODERATE_DAYS" envDefault:"7"`  // 8-31 días: Moderado, 1-7: Leve
	} `json:"delay_thresholds"`

	// Parámetros del pronóstico de tendencia de retrasos
	Forecast struct {
		AnalysisMonths  int     `json:"analysis_months" env:"FORECAST_ANALYSIS_MONTHS" envDefault:"12"`
		HorizonMonths   int     `json:"horizon_months" env:"FORECAST_HORIZON_MONTHS" envDefault:"3"`
		ConfidenceLevel float64 `json:"confidence_level" env:"FORECAST_CONFIDENCE" envDefault:"0.95"`
		MinR2Threshold  float64 `json:"min_r2_threshold" env:"FORECAST_MIN_R2" envDefault:"0.30"`
	} `json:"forecast"`

	// Activa el log detallado (nivel debug)
	EnableDetailedLogging bool `json:"enable_detailed_logging" env:"ETL_VERBOSE" envDefault:"true"`
}

// DatabaseConfig contiene los parámetros de conexión a una base de datos
type DatabaseConfig struct {
	Driver   string `json:"driver" env:"STAGING_DRIVER" envDefault:"mysql"`
	Host     string `json:"host" env:"STAGING_HOST" envDefault:"localhost"`
	Port     int    `json:"port" env:"STAGING_PORT" envDefault:"3306"`
	User     string `json:"user" env:"STAGING_USER" envDefault:"root"`
	Password string `json:"password" env:"STAGING_PASSWORD" envDefault:""`
	DBName   string `json:"dbname" env:"STAGING_DBNAME" envDefault:"sap_rollout_staging"`
}

// Valores de configuración por defecto
var DefaultETLConfig = ETLConfig{
	StagingConfig: DatabaseConfig{
		Driver: "mysql",
		Host:   "localhost",
		Port:   3306,
		User:   "root",
		DBName: "sap_rollout_staging",
	},
	DatamartPath:          "datamart.sqlite",
	RunInterval:           1 * time.Hour,
	BatchSize:             5000,
	EnableDetailedLogging: true,
}

// GetConfig devuelve la configuración ETL, con las variables de
// entorno por encima de los valores por defecto
func GetConfig() ETLConfig {
	config := DefaultETLConfig
	config.DelayThresholds.Critical = 31
	config.DelayThresholds.Moderate = 7
	config.Forecast.AnalysisMonths = 12
	config.Forecast.HorizonMonths = 3
	config.Forecast.ConfidenceLevel = 0.95
	config.Forecast.MinR2Threshold = 0.30

	if err := env.Parse(&config); err != nil {
		log.Printf("No se pudieron leer las variables de entorno: %v. Se usan los valores por defecto.", err)
	}

	return config
}
