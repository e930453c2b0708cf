package health

import "github.com/eldercare/backend/internal/domain"

// Metric names as they appear in trend points and predictions
const (
	MetricHeartRate   = "heartRate"
	MetricSystolic    = "systolic"
	MetricDiastolic   = "diastolic"
	MetricTemperature = "temperature"
	MetricSteps       = "steps"
	MetricWeight      = "weight"
	MetricMood        = "mood"
	MetricSleepHours  = "sleepHours"
	MetricRiskScore   = "riskScore"
)

type metricFunc func(domain.TrendPoint) *float64

var metricAccessors = map[string]metricFunc{
	MetricHeartRate:   func(p domain.TrendPoint) *float64 { return p.HeartRate },
	MetricSystolic:    func(p domain.TrendPoint) *float64 { return p.Systolic },
	MetricDiastolic:   func(p domain.TrendPoint) *float64 { return p.Diastolic },
	MetricTemperature: func(p domain.TrendPoint) *float64 { return p.Temperature },
	MetricSteps:       func(p domain.TrendPoint) *float64 { return p.Steps },
	MetricWeight:      func(p domain.TrendPoint) *float64 { return p.Weight },
	MetricMood:        func(p domain.TrendPoint) *float64 { return floatPtr(float64(p.Mood)) },
	MetricSleepHours:  func(p domain.TrendPoint) *float64 { return p.SleepHours },
	MetricRiskScore:   func(p domain.TrendPoint) *float64 { return floatPtr(float64(p.RiskScore)) },
}

// series returns the non-null values of a metric in point order
func series(points []domain.TrendPoint, metric string) []float64 {
	get := metricAccessors[metric]
	values := make([]float64, 0, len(points))
	for _, p := range points {
		if v := get(p); v != nil {
			values = append(values, *v)
		}
	}
	return values
}
