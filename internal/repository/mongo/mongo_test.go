package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/eldercare/backend/internal/domain"
)

func TestVitalSample_BSONRoundTrip(t *testing.T) {
	sys := 128.0
	hours := 6.5
	in := domain.VitalSample{
		ID:     "65f1c0ffee",
		UserID: "user-1",
		Date:   time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		Vitals: domain.Vitals{
			HeartRate:     &domain.Reading{Value: 72, Unit: domain.UnitHeartRate, Status: domain.StatusNormal},
			BloodPressure: &domain.BloodPressure{Systolic: &sys, Unit: domain.UnitBloodPressure, Status: domain.StatusNormal},
		},
		Symptoms: []domain.Symptom{{Name: "cough", Severity: domain.SeverityMild}},
		Mood:     domain.MoodGood,
		Sleep:    &domain.Sleep{Hours: &hours},
	}

	raw, err := bson.Marshal(in)
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))
	require.Equal(t, "65f1c0ffee", doc["_id"])
	require.Equal(t, "user-1", doc["userId"])
	require.NotContains(t, doc, "notes")

	var out domain.VitalSample
	require.NoError(t, bson.Unmarshal(raw, &out))
	require.Equal(t, in.Vitals.HeartRate, out.Vitals.HeartRate)
	require.Nil(t, out.Vitals.BloodPressure.Diastolic)
	require.Equal(t, sys, *out.Vitals.BloodPressure.Systolic)
	require.Equal(t, in.Symptoms, out.Symptoms)
	require.True(t, in.Date.Equal(out.Date))
}

func TestOwnedBy(t *testing.T) {
	require.Equal(t, bson.M{"_id": "abc", "userId": "u"}, ownedBy("u", "abc"))
}
