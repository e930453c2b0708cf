package domain

import "time"

// Status is the caller-declared state of a single vital reading
type Status string

const (
	StatusNormal Status = "normal"
	StatusHigh   Status = "high"
	StatusLow    Status = "low"
)

// Mood is the self-reported mood of a health log
type Mood string

const (
	MoodExcellent Mood = "excellent"
	MoodGood      Mood = "good"
	MoodOkay      Mood = "okay"
	MoodPoor      Mood = "poor"
	MoodTerrible  Mood = "terrible"
)

// Severity of a reported symptom
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// Default units, matching what the frontend renders
const (
	UnitHeartRate     = "bpm"
	UnitBloodPressure = "mmHg"
	UnitTemperature   = "°F"
	UnitSteps         = "steps"
	UnitWeight        = "lbs"
)

// Reading is a single numeric vital
type Reading struct {
	Value  float64 `json:"value" bson:"value"`
	Unit   string  `json:"unit" bson:"unit"`
	Status Status  `json:"status" bson:"status"`
}

// StepReading is a daily step count
type StepReading struct {
	Value  int    `json:"value" bson:"value"`
	Unit   string `json:"unit" bson:"unit"`
	Status Status `json:"status" bson:"status"`
}

// BloodPressure holds systolic/diastolic; either side may be missing
type BloodPressure struct {
	Systolic  *float64 `json:"systolic,omitempty" bson:"systolic,omitempty"`
	Diastolic *float64 `json:"diastolic,omitempty" bson:"diastolic,omitempty"`
	Unit      string   `json:"unit" bson:"unit"`
	Status    Status   `json:"status" bson:"status"`
}

// Vitals groups the optional measured vitals of a log
type Vitals struct {
	HeartRate     *Reading       `json:"heartRate,omitempty" bson:"heartRate,omitempty"`
	BloodPressure *BloodPressure `json:"bloodPressure,omitempty" bson:"bloodPressure,omitempty"`
	Temperature   *Reading       `json:"temperature,omitempty" bson:"temperature,omitempty"`
	Steps         *StepReading   `json:"steps,omitempty" bson:"steps,omitempty"`
	Weight        *Reading       `json:"weight,omitempty" bson:"weight,omitempty"`
}

// IsEmpty reports whether no vital is present
func (v Vitals) IsEmpty() bool {
	return v.HeartRate == nil && v.BloodPressure == nil && v.Temperature == nil &&
		v.Steps == nil && v.Weight == nil
}

// Symptom is one reported symptom
type Symptom struct {
	Name     string   `json:"name" bson:"name"`
	Severity Severity `json:"severity,omitempty" bson:"severity,omitempty"`
	Notes    string   `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Sleep summarizes the previous night
type Sleep struct {
	Hours   *float64 `json:"hours,omitempty" bson:"hours,omitempty"`
	Quality string   `json:"quality,omitempty" bson:"quality,omitempty"`
}

// VitalSample is one logged health observation for a user.
// Samples are never mutated after they are scored; every derived
// value is recomputed from these fields.
type VitalSample struct {
	ID        string    `json:"id" bson:"_id"`
	UserID    string    `json:"userId" bson:"userId"`
	Date      time.Time `json:"date" bson:"date"`
	Vitals    Vitals    `json:"vitals" bson:"vitals"`
	Symptoms  []Symptom `json:"symptoms" bson:"symptoms"`
	Mood      Mood      `json:"mood,omitempty" bson:"mood,omitempty"`
	Sleep     *Sleep    `json:"sleep,omitempty" bson:"sleep,omitempty"`
	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// SleepHours returns the logged sleep duration, if any
func (s VitalSample) SleepHours() *float64 {
	if s.Sleep == nil {
		return nil
	}
	return s.Sleep.Hours
}
