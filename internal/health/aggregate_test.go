package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eldercare/backend/internal/domain"
)

func TestAnalyzeAggregateRisk_Empty(t *testing.T) {
	got := AnalyzeAggregateRisk(nil)

	assert.Equal(t, domain.AggregateRiskAssessment{
		Level:           domain.RiskGreen,
		Score:           0,
		Message:         MsgNoRecentData,
		Recommendations: []string{RecStartLogging},
		SampleCount:     0,
	}, got)
}

func TestAnalyzeAggregateRisk_AveragesScores(t *testing.T) {
	samples := []domain.VitalSample{
		newSample(day(2), withSteps(1500)),
		newSample(day(1), withSteps(1000)),
		newSample(day(0), withSteps(500)),
	}

	got := AnalyzeAggregateRisk(samples)

	assert.Equal(t, domain.RiskGreen, got.Level)
	assert.Equal(t, 1.0, got.Score)
	assert.Equal(t, 3, got.SampleCount)
	assert.Equal(t, "Your health indicators are looking good!", got.Message)
	assert.Len(t, got.Recommendations, 3)
	require.NotNil(t, got.LastUpdated)
	assert.Equal(t, day(2), *got.LastUpdated)
}

func TestAnalyzeAggregateRisk_Levels(t *testing.T) {
	tests := []struct {
		name    string
		samples []domain.VitalSample
		score   float64
		level   domain.RiskLevel
		recs    int
	}{
		{
			name: "rounds to one decimal",
			samples: []domain.VitalSample{
				newSample(day(0), withSymptoms("a", "b", "c")),
				newSample(day(1), withSymptoms("a", "b", "c")),
				newSample(day(2), withSymptoms("a", "b", "c", "d")),
			},
			score: 3.3,
			level: domain.RiskYellow,
			recs:  4,
		},
		{
			name: "red window",
			samples: []domain.VitalSample{
				newSample(day(0), withSymptoms("a", "b", "c", "d", "e", "f")),
				newSample(day(1), withHeartRate(120), withBloodPressure(f64(160), f64(100)), withSteps(100)),
			},
			score: 6,
			level: domain.RiskRed,
			recs:  4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeAggregateRisk(tt.samples)
			assert.Equal(t, tt.score, got.Score)
			assert.Equal(t, tt.level, got.Level)
			assert.Len(t, got.Recommendations, tt.recs)
		})
	}
}

func TestAnalyzeAggregateRisk_LastUpdatedIsNewest(t *testing.T) {
	samples := []domain.VitalSample{
		newSample(day(1)),
		newSample(day(5)),
		newSample(day(3)),
	}

	got := AnalyzeAggregateRisk(samples)
	require.NotNil(t, got.LastUpdated)
	assert.Equal(t, day(5), *got.LastUpdated)
}

func TestRecommendations_ReturnsCopy(t *testing.T) {
	recs := Recommendations(domain.RiskGreen)
	recs[0] = "changed"

	assert.Equal(t, "Continue maintaining your current healthy habits", Recommendations(domain.RiskGreen)[0])
}
