package health

import (
	"github.com/eldercare/backend/internal/domain"
	"github.com/eldercare/backend/pkg/utils"
)

// Empty-window copy for AnalyzeAggregateRisk
const (
	MsgNoRecentData = "No recent health data available. Please log your health information."
	RecStartLogging = "Start logging your daily health metrics"
)

const aggregateScoreDigits = 1

// AnalyzeAggregateRisk averages the per-sample scores of the given window.
// The caller chooses the window (typically the 7 most recent logs); order
// does not matter.
func AnalyzeAggregateRisk(samples []domain.VitalSample) domain.AggregateRiskAssessment {
	if len(samples) == 0 {
		return domain.AggregateRiskAssessment{
			Level:           domain.RiskGreen,
			Score:           0,
			Message:         MsgNoRecentData,
			Recommendations: []string{RecStartLogging},
			SampleCount:     0,
		}
	}

	scores := make([]float64, 0, len(samples))
	last := samples[0].Date
	for _, s := range samples {
		scores = append(scores, float64(ScoreSample(s).Score))
		if s.Date.After(last) {
			last = s.Date
		}
	}

	avg := utils.Mean(scores)
	level := LevelForScore(avg)

	return domain.AggregateRiskAssessment{
		Level:           level,
		Score:           utils.RoundTo(avg, aggregateScoreDigits),
		Message:         levelTable[level].Summary,
		Recommendations: Recommendations(level),
		SampleCount:     len(samples),
		LastUpdated:     &last,
	}
}
