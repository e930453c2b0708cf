package health

import (
	"github.com/eldercare/backend/internal/domain"
	"github.com/eldercare/backend/pkg/utils"
)

// predictedMetrics is the fixed order in which predictions are emitted.
// Temperature, mood and sleep are tracked for insights only.
var predictedMetrics = []string{
	MetricHeartRate,
	MetricSystolic,
	MetricDiastolic,
	MetricSteps,
	MetricWeight,
	MetricRiskScore,
}

const (
	minPredictionPoints = 3
	minConfidence       = 60
	maxConfidence       = 95
)

// FitPredictions fits a least-squares line to each predicted metric and
// projects it one step ahead. Metrics with fewer than three non-null
// values are skipped.
//
// The x axis is the position within the non-null series, not the calendar
// offset, so irregular logging gaps are treated as equal steps.
func FitPredictions(trends []domain.TrendPoint) []domain.Prediction {
	predictions := []domain.Prediction{}
	for _, metric := range predictedMetrics {
		values := series(trends, metric)
		if len(values) < minPredictionPoints {
			continue
		}

		slope := Slope(values)
		last := values[len(values)-1]
		predictions = append(predictions, domain.Prediction{
			Metric:         metric,
			CurrentValue:   last,
			PredictedValue: utils.RoundTo(last+slope, 2),
			Trend:          trendLabel(slope),
			Confidence:     utils.ClampInt(len(values)*10, minConfidence, maxConfidence),
		})
	}
	return predictions
}

// Slope returns the ordinary least-squares slope of values against their
// index 0..n-1. A degenerate fit (fewer than two points) has slope 0.
func Slope(values []float64) float64 {
	n := float64(len(values))
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}

func trendLabel(slope float64) string {
	switch {
	case slope > 0:
		return domain.TrendIncreasing
	case slope < 0:
		return domain.TrendDecreasing
	default:
		return domain.TrendStable
	}
}
