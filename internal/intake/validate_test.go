package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func completeAnswers() AnswerSet {
	a := NewAnswerSet()
	a.FullName = "Ana Souza"
	a.BirthDate = "1990-04-12"
	a.Email = "ana@example.com"
	a.Phone = "(11) 98765-4321"
	a.Gender = GenderFemale
	a.ExperienceLevel = ExperienceBeginner
	a.TrainingLocation = LocationHome
	a.PrimaryGoals = []Goal{GoalConditioning}
	a.Timeframe = Timeframe6To12Months
	a.NutritionQuality = NutritionExcellent
	a.HeightCm = 168
	a.CurrentWeightKg = 64
	a.DesiredWeightKg = 60
	return a
}

func TestValidateSection_Complete(t *testing.T) {
	a := completeAnswers()
	for _, s := range AllSections() {
		assert.True(t, ValidateSection(a, s), "section %v", s)
		assert.Empty(t, MissingFields(a, s), "section %v", s)
	}
}

func TestValidateSection_Empty(t *testing.T) {
	a := NewAnswerSet()
	for _, s := range AllSections() {
		want := s == SectionHealth
		assert.Equal(t, want, ValidateSection(a, s), "section %v", s)
	}
}

func TestValidateSection_OutOfRange(t *testing.T) {
	a := completeAnswers()
	assert.False(t, ValidateSection(a, 0))
	assert.False(t, ValidateSection(a, 7))
}

// Each required field, cleared on its own, must fail its section and be
// the only missing entry.
func TestValidateSection_EachRequiredField(t *testing.T) {
	for _, spec := range Fields() {
		if !spec.Required {
			continue
		}
		t.Run(string(spec.ID), func(t *testing.T) {
			a := completeAnswers()
			switch spec.Kind {
			case KindText:
				assert.NoError(t, a.Set(spec.ID, Text("")))
			case KindNumber:
				assert.NoError(t, a.Set(spec.ID, Number(0)))
			case KindGoals:
				assert.NoError(t, a.Set(spec.ID, Goals{}))
			}

			assert.False(t, ValidateSection(a, spec.Section))
			assert.Equal(t, []FieldID{spec.ID}, MissingFields(a, spec.Section))
		})
	}
}

func TestValidateSection_OptionalFieldsIgnored(t *testing.T) {
	a := completeAnswers()
	for _, spec := range Fields() {
		if spec.Required || spec.Kind != KindText {
			continue
		}
		assert.NoError(t, a.Set(spec.ID, Text("")))
	}
	for _, s := range AllSections() {
		assert.True(t, ValidateSection(a, s), "section %v", s)
	}
}

func TestValidateSection_NegativeMeasurement(t *testing.T) {
	a := completeAnswers()
	a.DesiredWeightKg = -1
	assert.False(t, ValidateSection(a, SectionMeasurements))
	assert.Equal(t, []FieldID{FieldDesiredWeight}, MissingFields(a, SectionMeasurements))
}
