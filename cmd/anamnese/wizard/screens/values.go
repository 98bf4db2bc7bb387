package screens

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mrsinham/anamnese/internal/intake"
)

// Recorder receives the answers typed into a section form. It is
// implemented by *intake.Controller.
type Recorder interface {
	Update(field intake.FieldID, value intake.FieldValue) error
	ToggleGoal(g intake.Goal)
	Answers() intake.AnswerSet
}

// values holds the form bindings of every field. huh binds inputs to
// strings, so numeric answers are kept as text until applied.
type values struct {
	fullName  string
	birthDate string
	email     string
	phone     string
	gender    intake.Gender

	chronicConditions  string
	medications        string
	injuries           string
	surgeries          string
	painAreas          string
	painIntensity      string
	allergies          string
	pregnantOrNursing  intake.YesNo
	smokingHistory     string
	alcoholConsumption string

	currentlyActive  intake.YesNo
	activityType     string
	activityDuration intake.ActivityDuration
	experienceLevel  intake.ExperienceLevel
	weeklyFrequency  int
	trainingLocation intake.TrainingLocation

	goals      []intake.Goal
	timeframe  intake.Timeframe
	motivation string

	dailyRoutine     string
	sleepHours       string
	nutritionQuality intake.NutritionQuality
	homeEquipment    string

	height        string
	currentWeight string
	desiredWeight string
}

func newValues(a intake.AnswerSet) *values {
	return &values{
		fullName:  a.FullName,
		birthDate: a.BirthDate,
		email:     a.Email,
		phone:     a.Phone,
		gender:    a.Gender,

		chronicConditions:  a.ChronicConditions,
		medications:        a.Medications,
		injuries:           a.Injuries,
		surgeries:          a.Surgeries,
		painAreas:          a.PainAreas,
		painIntensity:      strconv.Itoa(a.PainIntensity),
		allergies:          a.Allergies,
		pregnantOrNursing:  a.PregnantOrNursing,
		smokingHistory:     a.SmokingHistory,
		alcoholConsumption: a.AlcoholConsumption,

		currentlyActive:  a.CurrentlyActive,
		activityType:     a.ActivityType,
		activityDuration: a.ActivityDuration,
		experienceLevel:  a.ExperienceLevel,
		weeklyFrequency:  a.WeeklyFrequency,
		trainingLocation: a.TrainingLocation,

		goals:      append([]intake.Goal(nil), a.PrimaryGoals...),
		timeframe:  a.Timeframe,
		motivation: a.Motivation,

		dailyRoutine:     a.DailyRoutine,
		sleepHours:       a.SleepHours,
		nutritionQuality: a.NutritionQuality,
		homeEquipment:    a.HomeEquipment,

		height:        formatHeight(a.HeightCm),
		currentWeight: formatKg(a.CurrentWeightKg),
		desiredWeight: formatKg(a.DesiredWeightKg),
	}
}

type binding struct {
	id    intake.FieldID
	value func() (intake.FieldValue, error)
}

func text[T ~string](p *T) func() (intake.FieldValue, error) {
	return func() (intake.FieldValue, error) { return intake.Text(strings.TrimSpace(string(*p))), nil }
}

// bindings lists the scalar fields of section. Goals are applied
// separately so the selection order survives.
func (v *values) bindings(section intake.Section) []binding {
	switch section {
	case intake.SectionPersonal:
		return []binding{
			{intake.FieldFullName, text(&v.fullName)},
			{intake.FieldBirthDate, text(&v.birthDate)},
			{intake.FieldEmail, text(&v.email)},
			{intake.FieldPhone, text(&v.phone)},
			{intake.FieldGender, text(&v.gender)},
		}
	case intake.SectionHealth:
		return []binding{
			{intake.FieldChronicConditions, text(&v.chronicConditions)},
			{intake.FieldMedications, text(&v.medications)},
			{intake.FieldInjuries, text(&v.injuries)},
			{intake.FieldSurgeries, text(&v.surgeries)},
			{intake.FieldPainAreas, text(&v.painAreas)},
			{intake.FieldPainIntensity, func() (intake.FieldValue, error) {
				n, err := parsePain(v.painIntensity)
				return intake.Int(n), err
			}},
			{intake.FieldAllergies, text(&v.allergies)},
			{intake.FieldPregnantOrNursing, text(&v.pregnantOrNursing)},
			{intake.FieldSmokingHistory, text(&v.smokingHistory)},
			{intake.FieldAlcoholConsumption, text(&v.alcoholConsumption)},
		}
	case intake.SectionActivity:
		return []binding{
			{intake.FieldCurrentlyActive, text(&v.currentlyActive)},
			{intake.FieldActivityType, text(&v.activityType)},
			{intake.FieldActivityDuration, text(&v.activityDuration)},
			{intake.FieldExperienceLevel, text(&v.experienceLevel)},
			{intake.FieldWeeklyFrequency, func() (intake.FieldValue, error) { return intake.Int(v.weeklyFrequency), nil }},
			{intake.FieldTrainingLocation, text(&v.trainingLocation)},
		}
	case intake.SectionGoals:
		return []binding{
			{intake.FieldTimeframe, text(&v.timeframe)},
			{intake.FieldMotivation, text(&v.motivation)},
		}
	case intake.SectionLifestyle:
		return []binding{
			{intake.FieldDailyRoutine, text(&v.dailyRoutine)},
			{intake.FieldSleepHours, text(&v.sleepHours)},
			{intake.FieldNutritionQuality, text(&v.nutritionQuality)},
			{intake.FieldHomeEquipment, text(&v.homeEquipment)},
		}
	case intake.SectionMeasurements:
		return []binding{
			{intake.FieldHeight, func() (intake.FieldValue, error) {
				cm, err := parseHeight(v.height)
				return intake.Number(cm), err
			}},
			{intake.FieldCurrentWeight, func() (intake.FieldValue, error) {
				kg, err := parseKg(v.currentWeight)
				return intake.Number(kg), err
			}},
			{intake.FieldDesiredWeight, func() (intake.FieldValue, error) {
				kg, err := parseKg(v.desiredWeight)
				return intake.Number(kg), err
			}},
		}
	}
	return nil
}

// apply writes the section's answers into r. Every field that parses is
// written; the first parse error is returned.
func (v *values) apply(section intake.Section, r Recorder) error {
	var firstErr error
	for _, b := range v.bindings(section) {
		val, err := b.value()
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", b.id, err)
			}
			continue
		}
		if err := r.Update(b.id, val); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if section == intake.SectionGoals {
		applyGoals(r, v.goals)
	}
	return firstErr
}

// applyGoals turns the multi-select state into toggles: deselected
// goals are removed and new ones appended, so goals already chosen
// keep their place.
func applyGoals(r Recorder, selected []intake.Goal) {
	current := r.Answers()
	for _, g := range current.PrimaryGoals {
		if !containsGoal(selected, g) {
			r.ToggleGoal(g)
		}
	}
	for _, g := range selected {
		if !current.HasGoal(g) {
			r.ToggleGoal(g)
		}
	}
}

func containsGoal(goals []intake.Goal, g intake.Goal) bool {
	for _, have := range goals {
		if have == g {
			return true
		}
	}
	return false
}

func formatHeight(cm float64) string {
	if cm <= 0 {
		return ""
	}
	return intake.FormatMeters(cm)
}

func formatKg(kg float64) string {
	if kg <= 0 {
		return ""
	}
	return strconv.FormatFloat(kg, 'f', -1, 64)
}

// parseHeight reads metres; blank is zero, which fails the section gate.
func parseHeight(s string) (float64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	return intake.ParseMeters(s)
}

func parseKg(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return 0, nil
	}
	kg, err := strconv.ParseFloat(s, 64)
	if err != nil || kg < 0 {
		return 0, fmt.Errorf("informe um número, por exemplo 72.5")
	}
	return kg, nil
}

func parsePain(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return intake.MinPainIntensity, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < intake.MinPainIntensity || n > intake.MaxPainIntensity {
		return 0, fmt.Errorf("informe um número de %d a %d", intake.MinPainIntensity, intake.MaxPainIntensity)
	}
	return n, nil
}

func validateHeight(s string) error {
	_, err := parseHeight(s)
	if err != nil {
		return fmt.Errorf("altura em metros, por exemplo 1.75")
	}
	return nil
}

func validateKg(s string) error {
	_, err := parseKg(s)
	return err
}

func validatePain(s string) error {
	_, err := parsePain(s)
	return err
}

func validateSleep(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 12 {
		return fmt.Errorf("informe de 0 a 12 horas")
	}
	return nil
}

func validateDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return fmt.Errorf("use o formato AAAA-MM-DD")
	}
	return nil
}
