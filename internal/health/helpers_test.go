package health

import (
	"time"

	"github.com/eldercare/backend/internal/domain"
)

var baseDate = time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)

func f64(v float64) *float64 { return &v }

func day(n int) time.Time { return baseDate.AddDate(0, 0, n) }

func withHeartRate(v float64) func(*domain.VitalSample) {
	return func(s *domain.VitalSample) {
		s.Vitals.HeartRate = &domain.Reading{Value: v, Unit: domain.UnitHeartRate, Status: domain.StatusNormal}
	}
}

func withBloodPressure(sys, dia *float64) func(*domain.VitalSample) {
	return func(s *domain.VitalSample) {
		s.Vitals.BloodPressure = &domain.BloodPressure{Systolic: sys, Diastolic: dia, Unit: domain.UnitBloodPressure}
	}
}

func withTemperature(v float64) func(*domain.VitalSample) {
	return func(s *domain.VitalSample) {
		s.Vitals.Temperature = &domain.Reading{Value: v, Unit: domain.UnitTemperature}
	}
}

func withSteps(v int) func(*domain.VitalSample) {
	return func(s *domain.VitalSample) {
		s.Vitals.Steps = &domain.StepReading{Value: v, Unit: domain.UnitSteps}
	}
}

func withWeight(v float64) func(*domain.VitalSample) {
	return func(s *domain.VitalSample) {
		s.Vitals.Weight = &domain.Reading{Value: v, Unit: domain.UnitWeight}
	}
}

func withMood(m domain.Mood) func(*domain.VitalSample) {
	return func(s *domain.VitalSample) { s.Mood = m }
}

func withSleep(hours float64) func(*domain.VitalSample) {
	return func(s *domain.VitalSample) { s.Sleep = &domain.Sleep{Hours: f64(hours)} }
}

func withSymptoms(names ...string) func(*domain.VitalSample) {
	return func(s *domain.VitalSample) {
		for _, n := range names {
			s.Symptoms = append(s.Symptoms, domain.Symptom{Name: n, Severity: domain.SeverityMild})
		}
	}
}

func newSample(date time.Time, opts ...func(*domain.VitalSample)) domain.VitalSample {
	s := domain.VitalSample{Date: date}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
