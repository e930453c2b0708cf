package health

import (
	"github.com/eldercare/backend/internal/domain"
	"github.com/eldercare/backend/pkg/utils"
)

// recentRiskWindow is how many trailing risk scores the risk insight averages
const recentRiskWindow = 7

// insightRule fires Text when Match holds for the average of a metric series
type insightRule struct {
	Match func(avg float64) bool
	Text  string
}

// insightBlock is evaluated only when its series has at least one value.
// At most one rule per block fires.
type insightBlock struct {
	Metric string
	Window int // 0 means the whole series
	Rules  []insightRule
}

var insightBlocks = []insightBlock{
	{
		Metric: MetricHeartRate,
		Rules: []insightRule{
			{func(avg float64) bool { return avg > 90 }, "Your average heart rate is elevated. Consider stress management techniques."},
			{func(avg float64) bool { return avg < 60 }, "Your heart rate is quite low. This could indicate good fitness or may need medical attention."},
		},
	},
	{
		Metric: MetricSystolic,
		Rules: []insightRule{
			{func(avg float64) bool { return avg > 140 }, "Your blood pressure readings are consistently high. Please consult your doctor."},
		},
	},
	{
		Metric: MetricSteps,
		Rules: []insightRule{
			{func(avg float64) bool { return avg < 3000 }, "Your daily activity is below recommended levels. Try to increase your daily steps."},
			{func(avg float64) bool { return avg > 8000 }, "Great job maintaining an active lifestyle! Keep up the good work."},
		},
	},
	{
		Metric: MetricMood,
		Rules: []insightRule{
			{func(avg float64) bool { return avg < 2.5 }, "Your mood has been consistently low. Consider talking to a healthcare professional."},
			{func(avg float64) bool { return avg > 4 }, "Your mood has been consistently positive. That's wonderful for your overall health!"},
		},
	},
	{
		Metric: MetricSleepHours,
		Rules: []insightRule{
			{func(avg float64) bool { return avg < 6 }, "You're not getting enough sleep. Aim for 7-9 hours per night for better health."},
			{func(avg float64) bool { return avg > 9 }, "You might be sleeping too much. Consider evaluating your sleep quality."},
		},
	},
	{
		Metric: MetricRiskScore,
		Window: recentRiskWindow,
		Rules: []insightRule{
			{func(avg float64) bool { return avg > 5 }, "Your recent health risk scores are elevated. Please schedule a check-up with your doctor."},
			{func(avg float64) bool { return avg < 2 }, "Your health metrics look great! Continue your healthy habits."},
		},
	},
}

// GenerateInsights evaluates the insight table against the averages of the
// trend series. Output order follows the table; nothing is deduplicated.
func GenerateInsights(trends []domain.TrendPoint) []string {
	insights := []string{}
	for _, block := range insightBlocks {
		values := series(trends, block.Metric)
		if block.Window > 0 {
			values = utils.LastN(values, block.Window)
		}
		if len(values) == 0 {
			continue
		}

		avg := utils.Mean(values)
		for _, rule := range block.Rules {
			if rule.Match(avg) {
				insights = append(insights, rule.Text)
				break
			}
		}
	}
	return insights
}
