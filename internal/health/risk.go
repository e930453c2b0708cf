package health

import "github.com/eldercare/backend/internal/domain"

// ScoreSample computes the additive risk score of one sample. Each rule is
// evaluated independently and absent fields contribute nothing.
func ScoreSample(s domain.VitalSample) domain.RiskAssessment {
	score := 0
	v := s.Vitals

	if hr := v.HeartRate; hr != nil && (hr.Value < 60 || hr.Value > 100) {
		score += 2
	}

	if bp := v.BloodPressure; bp != nil && bp.Systolic != nil && bp.Diastolic != nil {
		sys, dia := *bp.Systolic, *bp.Diastolic
		if sys > 140 || dia > 90 {
			score += 3
		} else if sys < 90 || dia < 60 {
			score += 2
		}
	}

	if t := v.Temperature; t != nil && (t.Value > 100.4 || t.Value < 97) {
		score += 2
	}

	if st := v.Steps; st != nil && st.Value < 2000 {
		score += 1
	}

	if s.Mood == domain.MoodPoor || s.Mood == domain.MoodTerrible {
		score += 1
	}

	if h := s.SleepHours(); h != nil && (*h < 6 || *h > 9) {
		score += 1
	}

	score += len(s.Symptoms)

	level := LevelForScore(float64(score))
	return domain.RiskAssessment{
		Level:   level,
		Score:   score,
		Message: levelTable[level].Sample,
	}
}
