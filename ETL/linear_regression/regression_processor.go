package linear_regression

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// Métricas pronosticadas por el procesador
const (
	MetricDelayedCount  = "delayed_count"
	MetricMeanDelayDays = "mean_delay_days"
)

// RunWithCustomConfig ejecuta el pronóstico de tendencia de retrasos
// sobre el datamart y persiste los resultados
func RunWithCustomConfig(db *sql.DB, logger *utils.ETLLogger, config Config) error {
	dataService := NewDataService(db, logger)
	repository := NewRepository(db, logger)

	if err := repository.CreatePredictionsTable(); err != nil {
		return fmt.Errorf("error al preparar la tabla de pronósticos: %w", err)
	}

	// Obtenemos la serie mensual del período de análisis
	series, err := dataService.GetMonthlyDelaySeries(config.AnalysisMonths)
	if err != nil {
		return fmt.Errorf("error al obtener la serie mensual: %w", err)
	}

	if len(series) < 2 {
		logger.Info("Serie mensual insuficiente para pronosticar (%d meses)", len(series))
		return nil
	}

	generatedAt := time.Now()
	var predictions []DelayTrendPrediction

	// Ajustamos y pronosticamos cada métrica por separado
	for _, metric := range []string{MetricDelayedCount, MetricMeanDelayDays} {
		points := seriesToPoints(series, metric)

		result, err := LinearRegression(points)
		if err != nil {
			logger.Error("No se pudo ajustar la métrica %s: %v", metric, err)
			continue
		}

		// Pronósticos con R² bajo no son útiles para el dashboard
		if result.R2 < config.MinR2Threshold {
			logger.Info("Métrica %s descartada: R²=%.3f por debajo del umbral %.2f",
				metric, result.R2, config.MinR2Threshold)
			continue
		}

		logger.Info("Métrica %s ajustada: pendiente=%.3f, R²=%.3f", metric, result.A, result.R2)

		// Pronosticamos los meses del horizonte
		lastMonth := series[len(series)-1].Month
		for h := 1; h <= config.HorizonMonths; h++ {
			x := float64(len(points) - 1 + h)
			lower, upper := CalculateConfidenceInterval(result, x, config.ConfidenceLevel)

			predictions = append(predictions, DelayTrendPrediction{
				Metric:          metric,
				TargetMonth:     lastMonth.AddDate(0, h, 0),
				PredictedValue:  clampNonNegative(Predict(result, x)),
				LowerBound:      clampNonNegative(lower),
				UpperBound:      clampNonNegative(upper),
				R2:              result.R2,
				ConfidenceLevel: config.ConfidenceLevel,
				GeneratedAt:     generatedAt,
			})
		}
	}

	return repository.SavePredictions(predictions)
}

// seriesToPoints convierte la serie mensual en puntos (índice, valor)
func seriesToPoints(series []MonthlyDelaySeries, metric string) []DataPoint {
	points := make([]DataPoint, 0, len(series))
	for i, s := range series {
		y := float64(s.DelayedCount)
		if metric == MetricMeanDelayDays {
			y = s.MeanDelayDays
		}
		points = append(points, DataPoint{
			Date: s.Month,
			X:    float64(i),
			Y:    y,
		})
	}
	return points
}

// clampNonNegative trunca a cero los valores negativos
// Un conteo o promedio de días de retraso nunca es negativo
func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
