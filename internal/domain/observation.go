package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// LooseNumber accepts a JSON number, a numeric string, or null.
// The raw text is kept so that blank input can be told apart from zero.
type LooseNumber string

// UnmarshalJSON implements json.Unmarshaler
func (n *LooseNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*n = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = LooseNumber(s)
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		*n = LooseNumber(data)
	default:
		return fmt.Errorf("domain: expected number or string, got %s", data)
	}
	return nil
}

// IsBlank reports whether no value was supplied
func (n LooseNumber) IsBlank() bool {
	return strings.TrimSpace(string(n)) == ""
}

// Float parses the value as a finite float64
func (n LooseNumber) Float() (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(string(n)), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("domain: %q is not a finite number", string(n))
	}
	return f, nil
}

// Int parses the value and truncates it toward zero
func (n LooseNumber) Int() (int, error) {
	f, err := n.Float()
	if err != nil {
		return 0, err
	}
	return int(math.Trunc(f)), nil
}

// RawReading is an unvalidated vital reading as posted by a client
type RawReading struct {
	Value  LooseNumber `json:"value"`
	Unit   string      `json:"unit,omitempty"`
	Status string      `json:"status,omitempty" validate:"omitempty,oneof=normal high low"`
}

// RawBloodPressure is an unvalidated blood pressure reading
type RawBloodPressure struct {
	Systolic  LooseNumber `json:"systolic"`
	Diastolic LooseNumber `json:"diastolic"`
	Unit      string      `json:"unit,omitempty"`
	Status    string      `json:"status,omitempty" validate:"omitempty,oneof=normal high low"`
}

// RawVitals is the unvalidated vitals block
type RawVitals struct {
	HeartRate     *RawReading       `json:"heartRate,omitempty"`
	BloodPressure *RawBloodPressure `json:"bloodPressure,omitempty"`
	Temperature   *RawReading       `json:"temperature,omitempty"`
	Steps         *RawReading       `json:"steps,omitempty"`
	Weight        *RawReading       `json:"weight,omitempty"`
}

// RawSymptom is an unvalidated symptom entry
type RawSymptom struct {
	Name     string `json:"name"`
	Severity string `json:"severity,omitempty" validate:"omitempty,oneof=mild moderate severe"`
	Notes    string `json:"notes,omitempty"`
}

// RawSleep is the unvalidated sleep block
type RawSleep struct {
	Hours   LooseNumber `json:"hours"`
	Quality string      `json:"quality,omitempty" validate:"omitempty,oneof=poor fair good excellent"`
}

// RawObservation is the loosely-typed payload of a health log request
type RawObservation struct {
	Date     *time.Time   `json:"date,omitempty"`
	Vitals   *RawVitals   `json:"vitals,omitempty"`
	Symptoms []RawSymptom `json:"symptoms,omitempty" validate:"dive"`
	Mood     string       `json:"mood,omitempty" validate:"omitempty,oneof=excellent good okay poor terrible"`
	Sleep    *RawSleep    `json:"sleep,omitempty"`
	Notes    string       `json:"notes,omitempty"`
}
