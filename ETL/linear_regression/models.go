package linear_regression

import (
	"time"
)

// Config contiene los parámetros del pronóstico de tendencia de retrasos
type Config struct {
	// Meses de historia a analizar
	AnalysisMonths int

	// Meses a pronosticar hacia adelante
	HorizonMonths int

	// Nivel de confianza del intervalo del pronóstico
	ConfidenceLevel float64

	// R² mínimo para persistir un pronóstico
	MinR2Threshold float64
}

// DefaultConfig devuelve la configuración por defecto del pronóstico
func DefaultConfig() Config {
	return Config{
		AnalysisMonths:  12,
		HorizonMonths:   3,
		ConfidenceLevel: 0.95,
		MinR2Threshold:  0.30,
	}
}

// DataPoint es un punto (x, y) de la serie mensual
// X es el índice del mes dentro del período analizado
type DataPoint struct {
	Date time.Time
	X    float64
	Y    float64
}

// RegressionResult contiene los coeficientes del ajuste por mínimos cuadrados
type RegressionResult struct {
	A           float64 // pendiente
	B           float64 // ordenada al origen
	R           float64 // correlación de Pearson
	R2          float64 // coeficiente de determinación
	PeriodStart time.Time
	PeriodEnd   time.Time
	DataPoints  []DataPoint
}

// MonthlyDelaySeries es la evolución mensual de los retrasos del datamart
type MonthlyDelaySeries struct {
	Month         time.Time
	DelayedCount  int
	MeanDelayDays float64
}

// DelayTrendPrediction es un pronóstico persistido en el datamart
type DelayTrendPrediction struct {
	Metric          string    // "delayed_count" o "mean_delay_days"
	TargetMonth     time.Time // mes pronosticado
	PredictedValue  float64
	LowerBound      float64
	UpperBound      float64
	R2              float64
	ConfidenceLevel float64
	GeneratedAt     time.Time
}
