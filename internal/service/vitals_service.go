package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/eldercare/backend/internal/domain"
	"github.com/eldercare/backend/pkg/utils"
)

// VitalsService simulates a connected device for the "current vitals" card.
// It is demo data only and shares nothing with risk scoring.
type VitalsService struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewVitalsService creates a simulator; src nil seeds from the clock
func NewVitalsService(src rand.Source) *VitalsService {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &VitalsService{rng: rand.New(src)}
}

// GetCurrentVitals returns a fresh random reading
func (s *VitalsService) GetCurrentVitals(ctx context.Context) domain.CurrentVitals {
	s.mu.Lock()
	heartRate := float64(60 + s.rng.Intn(40))   // 60-99 bpm
	systolic := float64(110 + s.rng.Intn(40))   // 110-149
	diastolic := float64(70 + s.rng.Intn(20))   // 70-89
	temperature := utils.RoundTo(97+s.rng.Float64()*2, 1)
	steps := 2000 + s.rng.Intn(5000)
	weight := utils.RoundTo(140+s.rng.Float64()*20, 1)
	s.mu.Unlock()

	return domain.CurrentVitals{
		HeartRate: domain.Reading{Value: heartRate, Unit: domain.UnitHeartRate, Status: heartRateStatus(heartRate)},
		BloodPressure: domain.BloodPressure{
			Systolic:  &systolic,
			Diastolic: &diastolic,
			Unit:      domain.UnitBloodPressure,
			Status:    bloodPressureStatus(systolic, diastolic),
		},
		Temperature: domain.Reading{Value: temperature, Unit: domain.UnitTemperature, Status: temperatureStatus(temperature)},
		Steps:       domain.StepReading{Value: steps, Unit: domain.UnitSteps, Status: stepsStatus(steps)},
		Weight:      domain.Reading{Value: weight, Unit: domain.UnitWeight, Status: domain.StatusNormal},
		Timestamp:   time.Now(),
		IsMock:      true,
	}
}

func heartRateStatus(bpm float64) domain.Status {
	switch {
	case bpm > 90:
		return domain.StatusHigh
	case bpm < 70:
		return domain.StatusLow
	default:
		return domain.StatusNormal
	}
}

func bloodPressureStatus(systolic, diastolic float64) domain.Status {
	if systolic > 140 || diastolic > 90 {
		return domain.StatusHigh
	}
	return domain.StatusNormal
}

func temperatureStatus(f float64) domain.Status {
	switch {
	case f > 99:
		return domain.StatusHigh
	case f < 97.5:
		return domain.StatusLow
	default:
		return domain.StatusNormal
	}
}

func stepsStatus(steps int) domain.Status {
	switch {
	case steps < 3000:
		return domain.StatusLow
	case steps > 6000:
		return domain.StatusHigh
	default:
		return domain.StatusNormal
	}
}
