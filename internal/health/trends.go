package health

import (
	"github.com/eldercare/backend/internal/domain"
)

// MsgNoTrendData is the only insight of an empty reporting window
const MsgNoTrendData = "No health data available for analysis. Start logging your health metrics to see trends."

const isoDate = "2006-01-02"

var moodScores = map[domain.Mood]int{
	domain.MoodTerrible:  1,
	domain.MoodPoor:      2,
	domain.MoodOkay:      3,
	domain.MoodGood:      4,
	domain.MoodExcellent: 5,
}

const neutralMood = 3

// MoodScore maps a mood to its 1..5 ordinal; unknown or missing moods are neutral
func MoodScore(m domain.Mood) int {
	if score, ok := moodScores[m]; ok {
		return score
	}
	return neutralMood
}

// ExtractTrends flattens samples, already sorted oldest first, into trend points.
// Missing metrics stay nil so that every point has the same shape.
func ExtractTrends(samples []domain.VitalSample) []domain.TrendPoint {
	points := make([]domain.TrendPoint, 0, len(samples))
	for _, s := range samples {
		points = append(points, trendPoint(s))
	}
	return points
}

func trendPoint(s domain.VitalSample) domain.TrendPoint {
	risk := ScoreSample(s)
	v := s.Vitals

	p := domain.TrendPoint{
		Date:       s.Date.UTC().Format(isoDate),
		Mood:       MoodScore(s.Mood),
		SleepHours: copyFloat(s.SleepHours()),
		RiskScore:  risk.Score,
		RiskLevel:  risk.Level,
	}
	if v.HeartRate != nil {
		p.HeartRate = floatPtr(v.HeartRate.Value)
	}
	if v.BloodPressure != nil {
		p.Systolic = copyFloat(v.BloodPressure.Systolic)
		p.Diastolic = copyFloat(v.BloodPressure.Diastolic)
	}
	if v.Temperature != nil {
		p.Temperature = floatPtr(v.Temperature.Value)
	}
	if v.Steps != nil {
		p.Steps = floatPtr(float64(v.Steps.Value))
	}
	if v.Weight != nil {
		p.Weight = floatPtr(v.Weight.Value)
	}
	return p
}

// AnalyzeTrends runs the full pipeline over one reporting window.
// An empty window yields empty trends and predictions with a single insight.
func AnalyzeTrends(samples []domain.VitalSample) domain.TrendReport {
	if len(samples) == 0 {
		return domain.TrendReport{
			Trends:      []domain.TrendPoint{},
			Predictions: []domain.Prediction{},
			Insights:    []string{MsgNoTrendData},
		}
	}

	trends := ExtractTrends(samples)
	return domain.TrendReport{
		Trends:      trends,
		Predictions: FitPredictions(trends),
		Insights:    GenerateInsights(trends),
		TotalLogs:   len(samples),
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

// copyFloat returns a fresh pointer so trend points never alias sample fields
func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return floatPtr(*v)
}
