package service

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eldercare/backend/internal/domain"
)

func TestVitalsService_Ranges(t *testing.T) {
	svc := NewVitalsService(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		v := svc.GetCurrentVitals(context.Background())

		assert.True(t, v.IsMock)
		assert.GreaterOrEqual(t, v.HeartRate.Value, 60.0)
		assert.LessOrEqual(t, v.HeartRate.Value, 99.0)
		assert.GreaterOrEqual(t, *v.BloodPressure.Systolic, 110.0)
		assert.LessOrEqual(t, *v.BloodPressure.Systolic, 149.0)
		assert.GreaterOrEqual(t, *v.BloodPressure.Diastolic, 70.0)
		assert.LessOrEqual(t, *v.BloodPressure.Diastolic, 89.0)
		assert.GreaterOrEqual(t, v.Temperature.Value, 97.0)
		assert.LessOrEqual(t, v.Temperature.Value, 99.0)
		assert.GreaterOrEqual(t, v.Steps.Value, 2000)
		assert.LessOrEqual(t, v.Steps.Value, 6999)
		assert.GreaterOrEqual(t, v.Weight.Value, 140.0)
		assert.LessOrEqual(t, v.Weight.Value, 160.0)

		assert.Equal(t, heartRateStatus(v.HeartRate.Value), v.HeartRate.Status)
		assert.Equal(t, stepsStatus(v.Steps.Value), v.Steps.Status)
		assert.Equal(t, domain.StatusNormal, v.Weight.Status)
	}
}

func TestVitalsService_SeededIsDeterministic(t *testing.T) {
	a := NewVitalsService(rand.NewSource(7)).GetCurrentVitals(context.Background())
	b := NewVitalsService(rand.NewSource(7)).GetCurrentVitals(context.Background())

	assert.Equal(t, a.HeartRate, b.HeartRate)
	assert.Equal(t, a.Steps, b.Steps)
	assert.Equal(t, a.Weight, b.Weight)
}

func TestVitalStatusRules(t *testing.T) {
	assert.Equal(t, domain.StatusHigh, heartRateStatus(91))
	assert.Equal(t, domain.StatusNormal, heartRateStatus(90))
	assert.Equal(t, domain.StatusLow, heartRateStatus(69))

	assert.Equal(t, domain.StatusHigh, bloodPressureStatus(141, 80))
	assert.Equal(t, domain.StatusHigh, bloodPressureStatus(120, 91))
	assert.Equal(t, domain.StatusNormal, bloodPressureStatus(140, 90))

	assert.Equal(t, domain.StatusHigh, temperatureStatus(99.1))
	assert.Equal(t, domain.StatusLow, temperatureStatus(97.4))
	assert.Equal(t, domain.StatusNormal, temperatureStatus(98.6))

	assert.Equal(t, domain.StatusLow, stepsStatus(2999))
	assert.Equal(t, domain.StatusHigh, stepsStatus(6001))
	assert.Equal(t, domain.StatusNormal, stepsStatus(4500))
}
