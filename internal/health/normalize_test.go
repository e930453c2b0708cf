package health

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eldercare/backend/internal/domain"
)

func decodeObservation(t *testing.T, body string) domain.RawObservation {
	t.Helper()
	var raw domain.RawObservation
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return raw
}

func requireValidationError(t *testing.T, err error) *ValidationError {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	return verr
}

func TestNormalize_RejectsEmptyObservations(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no fields", `{}`},
		{"empty vitals block", `{"vitals":{}}`},
		{"blank values only", `{"vitals":{"heartRate":{"value":""},"bloodPressure":{"systolic":"","diastolic":null}},"sleep":{"hours":""}}`},
		{"whitespace notes", `{"notes":"   "}`},
		{"unnamed symptoms", `{"symptoms":[{"name":"  "}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(decodeObservation(t, tt.body))
			verr := requireValidationError(t, err)
			assert.Equal(t, []string{MsgNoMetrics}, verr.Messages)
		})
	}
}

func TestNormalize_ParsesLooselyTypedNumbers(t *testing.T) {
	raw := decodeObservation(t, `{
		"vitals": {
			"heartRate": {"value": "72"},
			"temperature": {"value": 98.6, "status": "high"},
			"steps": {"value": "1500.7"},
			"weight": {"value": " 150.5 ", "unit": "kg"}
		},
		"sleep": {"hours": "7.5", "quality": "good"}
	}`)

	s, err := Normalize(raw)
	require.NoError(t, err)

	require.NotNil(t, s.Vitals.HeartRate)
	assert.Equal(t, 72.0, s.Vitals.HeartRate.Value)
	assert.Equal(t, domain.UnitHeartRate, s.Vitals.HeartRate.Unit)
	assert.Equal(t, domain.StatusNormal, s.Vitals.HeartRate.Status)

	require.NotNil(t, s.Vitals.Temperature)
	assert.Equal(t, domain.StatusHigh, s.Vitals.Temperature.Status)

	require.NotNil(t, s.Vitals.Steps)
	assert.Equal(t, 1500, s.Vitals.Steps.Value)

	require.NotNil(t, s.Vitals.Weight)
	assert.Equal(t, 150.5, s.Vitals.Weight.Value)
	assert.Equal(t, "kg", s.Vitals.Weight.Unit)

	assert.Nil(t, s.Vitals.BloodPressure)
	require.NotNil(t, s.Sleep)
	assert.Equal(t, 7.5, *s.Sleep.Hours)
	assert.Equal(t, "good", s.Sleep.Quality)
	assert.True(t, s.Date.IsZero())
}

func TestNormalize_BloodPressureWithOneSide(t *testing.T) {
	s, err := Normalize(decodeObservation(t, `{"vitals":{"bloodPressure":{"systolic":"135"}}}`))
	require.NoError(t, err)

	bp := s.Vitals.BloodPressure
	require.NotNil(t, bp)
	require.NotNil(t, bp.Systolic)
	assert.Equal(t, 135.0, *bp.Systolic)
	assert.Nil(t, bp.Diastolic)
	assert.Equal(t, domain.UnitBloodPressure, bp.Unit)

	// one-sided blood pressure never scores
	assert.Equal(t, 0, ScoreSample(s).Score)
}

func TestNormalize_DroppedFieldsDoNotScoreAsZero(t *testing.T) {
	s, err := Normalize(decodeObservation(t, `{"vitals":{"heartRate":{"value":""},"steps":{"value":null}},"mood":"good"}`))
	require.NoError(t, err)

	assert.Nil(t, s.Vitals.HeartRate)
	assert.Nil(t, s.Vitals.Steps)
	assert.Equal(t, 0, ScoreSample(s).Score)
}

func TestNormalize_KeepsSymptomsMoodNotesAndDate(t *testing.T) {
	date := time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC)
	raw := domain.RawObservation{
		Date: &date,
		Symptoms: []domain.RawSymptom{
			{Name: " headache ", Severity: "mild"},
			{Name: ""},
			{Name: "dizziness", Severity: "severe", Notes: "after lunch"},
		},
		Mood:  "poor",
		Notes: "  felt tired  ",
	}

	s, err := Normalize(raw)
	require.NoError(t, err)

	require.Len(t, s.Symptoms, 2)
	assert.Equal(t, "headache", s.Symptoms[0].Name)
	assert.Equal(t, domain.SeveritySevere, s.Symptoms[1].Severity)
	assert.Equal(t, domain.MoodPoor, s.Mood)
	assert.Equal(t, "felt tired", s.Notes)
	assert.Equal(t, date, s.Date)
}

func TestNormalize_ReportsInvalidFields(t *testing.T) {
	raw := decodeObservation(t, `{
		"vitals": {"heartRate": {"value": "fast", "status": "critical"}},
		"symptoms": [{"name": "cough", "severity": "extreme"}],
		"mood": "great",
		"sleep": {"hours": "lots"}
	}`)

	_, err := Normalize(raw)
	verr := requireValidationError(t, err)

	assert.ElementsMatch(t, []string{
		"vitals.heartRate.status must be one of: normal, high, low",
		"symptoms[0].severity must be one of: mild, moderate, severe",
		"mood must be one of: excellent, good, okay, poor, terrible",
		"vitals.heartRate.value must be a number",
		"sleep.hours must be a number",
	}, verr.Messages)
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	raw := domain.RawObservation{
		Vitals: &domain.RawVitals{HeartRate: &domain.RawReading{Value: "80"}},
		Notes:  " note ",
	}

	_, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, domain.LooseNumber("80"), raw.Vitals.HeartRate.Value)
	assert.Equal(t, "", raw.Vitals.HeartRate.Status)
	assert.Equal(t, " note ", raw.Notes)
}

func TestNormalize_AcceptsPaddedEnumValues(t *testing.T) {
	raw := decodeObservation(t, `{
		"vitals": {
			"heartRate": {"value": 95, "status": " high "},
			"bloodPressure": {"systolic": 120, "diastolic": 80, "status": "normal "}
		},
		"symptoms": [{"name": "cough", "severity": " mild"}],
		"mood": " good ",
		"sleep": {"hours": 7, "quality": "fair\t"}
	}`)

	sample, err := Normalize(raw)
	require.NoError(t, err)

	assert.Equal(t, domain.MoodGood, sample.Mood)
	assert.Equal(t, domain.StatusHigh, sample.Vitals.HeartRate.Status)
	assert.Equal(t, domain.StatusNormal, sample.Vitals.BloodPressure.Status)
	require.Len(t, sample.Symptoms, 1)
	assert.Equal(t, domain.SeverityMild, sample.Symptoms[0].Severity)
	require.NotNil(t, sample.Sleep)
	assert.Equal(t, "fair", sample.Sleep.Quality)

	// the caller's payload is left as sent
	assert.Equal(t, " good ", raw.Mood)
	assert.Equal(t, " high ", raw.Vitals.HeartRate.Status)
	assert.Equal(t, "fair\t", raw.Sleep.Quality)
	assert.Equal(t, " mild", raw.Symptoms[0].Severity)
}

func TestNormalize_PaddedInvalidEnumStillRejected(t *testing.T) {
	_, err := Normalize(decodeObservation(t, `{"mood": " ecstatic "}`))
	verr := requireValidationError(t, err)
	assert.Equal(t, []string{"mood must be one of: excellent, good, okay, poor, terrible"}, verr.Messages)
}
