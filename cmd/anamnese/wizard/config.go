package wizard

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// AnswersFile is a pre-filled questionnaire, one mapping per section.
type AnswersFile struct {
	Personal     PersonalAnswers    `yaml:"personal"`
	Health       HealthAnswers      `yaml:"health,omitempty"`
	Activity     ActivityAnswers    `yaml:"activity"`
	Goals        GoalsAnswers       `yaml:"goals"`
	Lifestyle    LifestyleAnswers   `yaml:"lifestyle"`
	Measurements MeasurementAnswers `yaml:"measurements"`
}

// PersonalAnswers holds section 1.
type PersonalAnswers struct {
	FullName  string `yaml:"full_name"`
	BirthDate string `yaml:"birth_date"`
	Email     string `yaml:"email"`
	Phone     string `yaml:"phone"`
	Gender    string `yaml:"gender"`
}

// HealthAnswers holds section 2. Every field is optional.
type HealthAnswers struct {
	ChronicConditions  string `yaml:"chronic_conditions,omitempty"`
	Medications        string `yaml:"medications,omitempty"`
	Injuries           string `yaml:"injuries,omitempty"`
	Surgeries          string `yaml:"surgeries,omitempty"`
	PainAreas          string `yaml:"pain_areas,omitempty"`
	PainIntensity      int    `yaml:"pain_intensity,omitempty"`
	Allergies          string `yaml:"allergies,omitempty"`
	PregnantOrNursing  string `yaml:"pregnant_or_nursing,omitempty"`
	SmokingHistory     string `yaml:"smoking_history,omitempty"`
	AlcoholConsumption string `yaml:"alcohol_consumption,omitempty"`
}

// ActivityAnswers holds section 3. A missing weekly_frequency keeps the
// session default.
type ActivityAnswers struct {
	CurrentlyActive  string `yaml:"currently_active,omitempty"`
	ActivityType     string `yaml:"activity_type,omitempty"`
	ActivityDuration string `yaml:"activity_duration,omitempty"`
	ExperienceLevel  string `yaml:"experience_level"`
	WeeklyFrequency  *int   `yaml:"weekly_frequency,omitempty"`
	TrainingLocation string `yaml:"training_location"`
}

// GoalsAnswers holds section 4. Primary keeps the selection order.
type GoalsAnswers struct {
	Primary    []string `yaml:"primary"`
	Timeframe  string   `yaml:"timeframe"`
	Motivation string   `yaml:"motivation,omitempty"`
}

// LifestyleAnswers holds section 5.
type LifestyleAnswers struct {
	DailyRoutine     string `yaml:"daily_routine,omitempty"`
	SleepHours       string `yaml:"sleep_hours,omitempty"`
	NutritionQuality string `yaml:"nutrition_quality"`
	HomeEquipment    string `yaml:"home_equipment,omitempty"`
}

// MeasurementAnswers holds section 6. Height is in metres.
type MeasurementAnswers struct {
	HeightM         float64 `yaml:"height_m"`
	CurrentWeightKg float64 `yaml:"current_weight_kg"`
	DesiredWeightKg float64 `yaml:"desired_weight_kg"`
}

// LoadFromYAML reads an answers file.
func LoadFromYAML(path string) (*AnswersFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers file: %w", err)
	}
	f, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// ParseYAML decodes an answers document. Unknown keys are rejected so a
// misspelt field is not silently dropped; an empty document is valid.
func ParseYAML(data []byte) (*AnswersFile, error) {
	var f AnswersFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing answers: %w", err)
	}
	return &f, nil
}

// ToYAML encodes f as an answers document.
func (f *AnswersFile) ToYAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("encoding answers: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding answers: %w", err)
	}
	return buf.Bytes(), nil
}
