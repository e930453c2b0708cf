package health

import "github.com/eldercare/backend/internal/domain"

const (
	greenMaxScore  = 2
	yellowMaxScore = 5
)

// levelText is the copy shown for one risk level. Sample is used for a
// single log, Summary and Recommendations for a window of logs.
type levelText struct {
	Sample          string
	Summary         string
	Recommendations []string
}

var levelTable = map[domain.RiskLevel]levelText{
	domain.RiskGreen: {
		Sample:  "Your health looks good! Keep up the great work.",
		Summary: "Your health indicators are looking good!",
		Recommendations: []string{
			"Continue maintaining your current healthy habits",
			"Keep up with regular exercise",
			"Stay hydrated and eat well",
		},
	},
	domain.RiskYellow: {
		Sample:  "Some health indicators need attention. Consider consulting your doctor.",
		Summary: "Some health indicators need attention.",
		Recommendations: []string{
			"Consider scheduling a check-up with your doctor",
			"Monitor your vitals more closely",
			"Ensure you're taking medications as prescribed",
			"Get adequate rest and sleep",
		},
	},
	domain.RiskRed: {
		Sample:  "Multiple health concerns detected. Please contact your healthcare provider immediately.",
		Summary: "Multiple health concerns detected.",
		Recommendations: []string{
			"Contact your healthcare provider immediately",
			"Review your medication schedule",
			"Consider emergency contact if symptoms worsen",
			"Rest and avoid strenuous activities",
		},
	},
}

// LevelForScore maps a score, single or averaged, to its risk level
func LevelForScore(score float64) domain.RiskLevel {
	switch {
	case score <= greenMaxScore:
		return domain.RiskGreen
	case score <= yellowMaxScore:
		return domain.RiskYellow
	default:
		return domain.RiskRed
	}
}

// Recommendations returns a copy of the recommendation list for a level
func Recommendations(level domain.RiskLevel) []string {
	recs := levelTable[level].Recommendations
	out := make([]string, len(recs))
	copy(out, recs)
	return out
}
