package domain

import "time"

// RiskLevel buckets a risk score
type RiskLevel string

const (
	RiskGreen  RiskLevel = "green"
	RiskYellow RiskLevel = "yellow"
	RiskRed    RiskLevel = "red"
)

// Trend direction labels for predictions
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// RiskAssessment is the score of a single sample
type RiskAssessment struct {
	Level   RiskLevel `json:"level"`
	Score   int       `json:"score"`
	Message string    `json:"message"`
}

// AggregateRiskAssessment combines the scores of a window of samples
type AggregateRiskAssessment struct {
	Level           RiskLevel  `json:"level"`
	Score           float64    `json:"score"`
	Message         string     `json:"message"`
	Recommendations []string   `json:"recommendations"`
	SampleCount     int        `json:"sampleCount"`
	LastUpdated     *time.Time `json:"lastUpdated,omitempty"`
}

// TrendPoint is one sample flattened for charting and fitting.
// Absent metrics are encoded as null, never omitted.
type TrendPoint struct {
	Date        string    `json:"date"`
	HeartRate   *float64  `json:"heartRate"`
	Systolic    *float64  `json:"systolic"`
	Diastolic   *float64  `json:"diastolic"`
	Temperature *float64  `json:"temperature"`
	Steps       *float64  `json:"steps"`
	Weight      *float64  `json:"weight"`
	Mood        int       `json:"mood"`
	SleepHours  *float64  `json:"sleepHours"`
	RiskScore   int       `json:"riskScore"`
	RiskLevel   RiskLevel `json:"riskLevel"`
}

// Prediction is a one-step-ahead linear projection of a metric
type Prediction struct {
	Metric         string  `json:"metric"`
	CurrentValue   float64 `json:"currentValue"`
	PredictedValue float64 `json:"predictedValue"`
	Trend          string  `json:"trend"`
	Confidence     int     `json:"confidence"`
}

// TrendReport is the full trends response for a reporting window
type TrendReport struct {
	Trends      []TrendPoint `json:"trends"`
	Predictions []Prediction `json:"predictions"`
	Insights    []string     `json:"insights"`
	Period      string       `json:"period,omitempty"`
	TotalLogs   int          `json:"totalLogs"`
}
