package domain

import "time"

// CurrentVitals is a simulated device snapshot.
// It is demo data and never feeds risk scoring.
type CurrentVitals struct {
	HeartRate     Reading       `json:"heartRate"`
	BloodPressure BloodPressure `json:"bloodPressure"`
	Temperature   Reading       `json:"temperature"`
	Steps         StepReading   `json:"steps"`
	Weight        Reading       `json:"weight"`
	Timestamp     time.Time     `json:"timestamp"`
	IsMock        bool          `json:"is_mock"`
}
