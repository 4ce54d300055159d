package linear_regression

import (
	"fmt"
	"math"
)

// RoundToThousandth redondea a tres decimales
func RoundToThousandth(value float64) float64 {
	return math.Round(value*1000) / 1000
}

// LinearRegression ajusta una recta por mínimos cuadrados sobre los puntos
func LinearRegression(points []DataPoint) (*RegressionResult, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("la regresión lineal necesita al menos 2 puntos, recibidos: %d", len(points))
	}

	// Buscamos el período cubierto por la serie
	minDate := points[0].Date
	maxDate := points[0].Date
	for _, p := range points {
		if p.Date.Before(minDate) {
			minDate = p.Date
		}
		if p.Date.After(maxDate) {
			maxDate = p.Date
		}
	}

	// Mínimos cuadrados:
	// a = (n*sum(x*y) - sum(x)*sum(y)) / (n*sum(x^2) - (sum(x))^2)
	// b = (sum(y) - a*sum(x)) / n
	n := float64(len(points))
	sumX := 0.0
	sumY := 0.0
	sumXY := 0.0
	sumX2 := 0.0
	sumY2 := 0.0

	for _, p := range points {
		sumX += p.X
		sumY += p.Y
		sumXY += p.X * p.Y
		sumX2 += p.X * p.X
		sumY2 += p.Y * p.Y
	}

	denominator := n*sumX2 - sumX*sumX
	if math.Abs(denominator) < 1e-10 {
		return nil, fmt.Errorf("todos los X son iguales, no se puede calcular la pendiente")
	}

	a := (n*sumXY - sumX*sumY) / denominator
	b := (sumY - a*sumX) / n

	// Correlación de Pearson:
	// r = (n*sum(x*y) - sum(x)*sum(y)) / sqrt[(n*sum(x^2) - (sum(x))^2) * (n*sum(y^2) - (sum(y))^2)]
	numerator := n*sumXY - sumX*sumY
	denominator = math.Sqrt((n*sumX2 - sumX*sumX) * (n*sumY2 - sumY*sumY))

	var r float64
	if math.Abs(denominator) < 1e-10 {
		r = 0 // serie constante, sin correlación
	} else {
		r = numerator / denominator
	}

	r2 := r * r

	return &RegressionResult{
		A:           RoundToThousandth(a),
		B:           RoundToThousandth(b),
		R:           RoundToThousandth(r),
		R2:          RoundToThousandth(r2),
		PeriodStart: minDate,
		PeriodEnd:   maxDate,
		DataPoints:  points,
	}, nil
}

// Predict pronostica el valor Y para un X dado con el modelo ajustado
func Predict(result *RegressionResult, x float64) float64 {
	return RoundToThousandth(result.A*x + result.B)
}

// CalculateConfidenceInterval calcula el intervalo de confianza del pronóstico
// a partir del error estándar de la estimación
func CalculateConfidenceInterval(result *RegressionResult, x float64, confidenceLevel float64) (float64, float64) {
	n := float64(len(result.DataPoints))
	predicted := Predict(result, x)

	if n <= 2 {
		return predicted, predicted
	}

	// Media de X y sumas de cuadrados
	meanX := 0.0
	for _, p := range result.DataPoints {
		meanX += p.X
	}
	meanX /= n

	sumSqDevX := 0.0
	sumSqResiduals := 0.0
	for _, p := range result.DataPoints {
		predY := Predict(result, p.X)
		sumSqDevX += (p.X - meanX) * (p.X - meanX)
		sumSqResiduals += (p.Y - predY) * (p.Y - predY)
	}

	if sumSqDevX < 1e-10 {
		return predicted, predicted
	}

	// Error estándar de la estimación
	standardError := math.Sqrt(sumSqResiduals / (n - 2))

	// Error del pronóstico para el X dado
	predictionError := standardError * math.Sqrt(1+1/n+math.Pow(x-meanX, 2)/sumSqDevX)

	// Valor crítico aproximado según el nivel de confianza
	tValue := criticalValue(confidenceLevel)

	margin := tValue * predictionError
	return RoundToThousandth(predicted - margin), RoundToThousandth(predicted + margin)
}

// criticalValue aproxima el valor crítico de la normal estándar
// para los niveles de confianza habituales
func criticalValue(confidenceLevel float64) float64 {
	switch {
	case confidenceLevel >= 0.99:
		return 2.576
	case confidenceLevel >= 0.95:
		return 1.96
	case confidenceLevel >= 0.90:
		return 1.645
	default:
		return 1.282
	}
}
