package linear_regression

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linearSeries(t *testing.T, n int, slope, intercept float64) []DataPoint {
	t.Helper()

	points := make([]DataPoint, 0, n)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		points = append(points, DataPoint{
			X:    float64(i),
			Y:    slope*float64(i) + intercept,
			Date: base.AddDate(0, i, 0),
		})
	}
	return points
}

func TestLinearRegressionRectaPerfecta(t *testing.T) {
	points := linearSeries(t, 6, 2.5, 10)

	result, err := LinearRegression(points)
	require.NoError(t, err)

	assert.InDelta(t, 2.5, result.A, 0.001)
	assert.InDelta(t, 10, result.B, 0.001)
	assert.InDelta(t, 1.0, result.R2, 0.001)
	assert.Equal(t, points[0].Date, result.PeriodStart)
	assert.Equal(t, points[5].Date, result.PeriodEnd)
}

func TestLinearRegressionPendienteNegativa(t *testing.T) {
	points := linearSeries(t, 5, -3, 40)

	result, err := LinearRegression(points)
	require.NoError(t, err)

	assert.InDelta(t, -3, result.A, 0.001)
	assert.InDelta(t, -1.0, result.R, 0.001)
}

func TestLinearRegressionPuntosInsuficientes(t *testing.T) {
	_, err := LinearRegression(linearSeries(t, 1, 1, 0))
	assert.Error(t, err)
}

func TestLinearRegressionXConstante(t *testing.T) {
	points := []DataPoint{
		{X: 3, Y: 1},
		{X: 3, Y: 2},
		{X: 3, Y: 3},
	}
	_, err := LinearRegression(points)
	assert.Error(t, err)
}

func TestLinearRegressionSerieConstante(t *testing.T) {
	points := linearSeries(t, 4, 0, 7)

	result, err := LinearRegression(points)
	require.NoError(t, err)

	// Serie plana: pendiente y correlación nulas
	assert.InDelta(t, 0, result.A, 0.001)
	assert.InDelta(t, 0, result.R, 0.001)
}

func TestPredict(t *testing.T) {
	result := &RegressionResult{A: 2, B: 5}
	assert.InDelta(t, 25, Predict(result, 10), 0.001)
}

func TestCalculateConfidenceInterval(t *testing.T) {
	// Serie con ruido para que el error estándar no sea cero
	points := linearSeries(t, 8, 2, 10)
	points[2].Y += 3
	points[5].Y -= 2

	result, err := LinearRegression(points)
	require.NoError(t, err)

	predicted := Predict(result, 9)
	lower, upper := CalculateConfidenceInterval(result, 9, 0.95)

	assert.Less(t, lower, predicted)
	assert.Greater(t, upper, predicted)

	// Un nivel de confianza mayor ensancha el intervalo
	lower99, upper99 := CalculateConfidenceInterval(result, 9, 0.99)
	assert.Less(t, lower99, lower)
	assert.Greater(t, upper99, upper)
}

func TestCalculateConfidenceIntervalSinResiduos(t *testing.T) {
	// Con ajuste perfecto el intervalo colapsa en el pronóstico
	result, err := LinearRegression(linearSeries(t, 5, 1, 0))
	require.NoError(t, err)

	lower, upper := CalculateConfidenceInterval(result, 6, 0.95)
	assert.InDelta(t, lower, upper, 0.001)
}

func TestRoundToThousandth(t *testing.T) {
	assert.Equal(t, 1.235, RoundToThousandth(1.23456))
	assert.Equal(t, -0.5, RoundToThousandth(-0.4999))
}
