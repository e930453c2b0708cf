package health

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/eldercare/backend/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Normalize validates a raw observation and converts it into a sample.
// Blank values are dropped rather than read as zero, and statuses are kept
// as supplied (default normal). The sample's Date is left zero when the
// observation carries none; ID, UserID and timestamps are the caller's.
func Normalize(raw domain.RawObservation) (domain.VitalSample, error) {
	p := &parser{}
	raw = trimEnums(raw)

	if err := validate.Struct(raw); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				p.messages = append(p.messages, describeFieldError(fe))
			}
		} else {
			p.messages = append(p.messages, err.Error())
		}
	}

	var sample domain.VitalSample
	if raw.Date != nil {
		sample.Date = *raw.Date
	}

	if v := raw.Vitals; v != nil {
		sample.Vitals.HeartRate = p.reading("vitals.heartRate.value", v.HeartRate, domain.UnitHeartRate)
		sample.Vitals.BloodPressure = p.bloodPressure(v.BloodPressure)
		sample.Vitals.Temperature = p.reading("vitals.temperature.value", v.Temperature, domain.UnitTemperature)
		sample.Vitals.Steps = p.steps(v.Steps)
		sample.Vitals.Weight = p.reading("vitals.weight.value", v.Weight, domain.UnitWeight)
	}

	for _, s := range raw.Symptoms {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			continue
		}
		sample.Symptoms = append(sample.Symptoms, domain.Symptom{
			Name:     name,
			Severity: domain.Severity(s.Severity),
			Notes:    strings.TrimSpace(s.Notes),
		})
	}

	sample.Mood = domain.Mood(raw.Mood)
	sample.Sleep = p.sleep(raw.Sleep)
	sample.Notes = strings.TrimSpace(raw.Notes)

	if len(p.messages) > 0 {
		return domain.VitalSample{}, &ValidationError{Messages: p.messages}
	}
	if isEmptySample(sample) {
		return domain.VitalSample{}, &ValidationError{Messages: []string{MsgNoMetrics}}
	}

	return sample, nil
}

// trimEnums returns a copy of raw with its enum fields trimmed so that
// padded values validate. The caller's nested values are not modified.
func trimEnums(raw domain.RawObservation) domain.RawObservation {
	raw.Mood = strings.TrimSpace(raw.Mood)

	if raw.Sleep != nil {
		sleep := *raw.Sleep
		sleep.Quality = strings.TrimSpace(sleep.Quality)
		raw.Sleep = &sleep
	}

	if len(raw.Symptoms) > 0 {
		symptoms := make([]domain.RawSymptom, len(raw.Symptoms))
		for i, s := range raw.Symptoms {
			s.Severity = strings.TrimSpace(s.Severity)
			symptoms[i] = s
		}
		raw.Symptoms = symptoms
	}

	if raw.Vitals != nil {
		v := *raw.Vitals
		v.HeartRate = trimReading(v.HeartRate)
		v.Temperature = trimReading(v.Temperature)
		v.Steps = trimReading(v.Steps)
		v.Weight = trimReading(v.Weight)
		if v.BloodPressure != nil {
			bp := *v.BloodPressure
			bp.Status = strings.TrimSpace(bp.Status)
			v.BloodPressure = &bp
		}
		raw.Vitals = &v
	}

	return raw
}

func trimReading(r *domain.RawReading) *domain.RawReading {
	if r == nil {
		return nil
	}
	c := *r
	c.Status = strings.TrimSpace(c.Status)
	return &c
}

func isEmptySample(s domain.VitalSample) bool {
	return s.Vitals.IsEmpty() && len(s.Symptoms) == 0 && s.Mood == "" && s.Sleep == nil && s.Notes == ""
}

func describeFieldError(fe validator.FieldError) string {
	path := fe.Namespace()
	if i := strings.IndexByte(path, '.'); i >= 0 {
		path = path[i+1:]
	}
	if fe.Tag() == "oneof" {
		return fmt.Sprintf("%s must be one of: %s", path, strings.ReplaceAll(fe.Param(), " ", ", "))
	}
	return fmt.Sprintf("%s is invalid", path)
}

// parser collects conversion failures so that all of them can be reported at once
type parser struct {
	messages []string
}

func (p *parser) float(path string, n domain.LooseNumber) *float64 {
	if n.IsBlank() {
		return nil
	}
	f, err := n.Float()
	if err != nil {
		p.messages = append(p.messages, fmt.Sprintf("%s must be a number", path))
		return nil
	}
	return &f
}

func (p *parser) reading(path string, r *domain.RawReading, unit string) *domain.Reading {
	if r == nil {
		return nil
	}
	v := p.float(path, r.Value)
	if v == nil {
		return nil
	}
	return &domain.Reading{
		Value:  *v,
		Unit:   orDefault(r.Unit, unit),
		Status: statusOrNormal(r.Status),
	}
}

func (p *parser) steps(r *domain.RawReading) *domain.StepReading {
	if r == nil || r.Value.IsBlank() {
		return nil
	}
	n, err := r.Value.Int()
	if err != nil {
		p.messages = append(p.messages, "vitals.steps.value must be a number")
		return nil
	}
	return &domain.StepReading{
		Value:  n,
		Unit:   orDefault(r.Unit, domain.UnitSteps),
		Status: statusOrNormal(r.Status),
	}
}

func (p *parser) bloodPressure(r *domain.RawBloodPressure) *domain.BloodPressure {
	if r == nil {
		return nil
	}
	systolic := p.float("vitals.bloodPressure.systolic", r.Systolic)
	diastolic := p.float("vitals.bloodPressure.diastolic", r.Diastolic)
	if systolic == nil && diastolic == nil {
		return nil
	}
	return &domain.BloodPressure{
		Systolic:  systolic,
		Diastolic: diastolic,
		Unit:      orDefault(r.Unit, domain.UnitBloodPressure),
		Status:    statusOrNormal(r.Status),
	}
}

func (p *parser) sleep(r *domain.RawSleep) *domain.Sleep {
	if r == nil {
		return nil
	}
	hours := p.float("sleep.hours", r.Hours)
	quality := strings.TrimSpace(r.Quality)
	if hours == nil && quality == "" {
		return nil
	}
	return &domain.Sleep{Hours: hours, Quality: quality}
}

func orDefault(value, def string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return def
}

func statusOrNormal(s string) domain.Status {
	if s == "" {
		return domain.StatusNormal
	}
	return domain.Status(s)
}
