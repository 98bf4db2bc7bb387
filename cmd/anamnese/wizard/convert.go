package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mrsinham/anamnese/internal/intake"
	"github.com/mrsinham/anamnese/internal/util"
)

// rawAnswer is one answers-file entry before coercion.
type rawAnswer struct {
	path  string
	field intake.FieldID
	raw   string
}

func (f *AnswersFile) rawAnswers() []rawAnswer {
	out := []rawAnswer{}
	add := func(path string, field intake.FieldID, raw string) {
		if raw != "" {
			out = append(out, rawAnswer{path: path, field: field, raw: raw})
		}
	}
	num := func(v float64) string {
		if v == 0 {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	p := f.Personal
	add("personal.full_name", intake.FieldFullName, p.FullName)
	add("personal.birth_date", intake.FieldBirthDate, p.BirthDate)
	add("personal.email", intake.FieldEmail, p.Email)
	add("personal.phone", intake.FieldPhone, p.Phone)
	add("personal.gender", intake.FieldGender, p.Gender)

	h := f.Health
	add("health.chronic_conditions", intake.FieldChronicConditions, h.ChronicConditions)
	add("health.medications", intake.FieldMedications, h.Medications)
	add("health.injuries", intake.FieldInjuries, h.Injuries)
	add("health.surgeries", intake.FieldSurgeries, h.Surgeries)
	add("health.pain_areas", intake.FieldPainAreas, h.PainAreas)
	if h.PainIntensity != 0 {
		add("health.pain_intensity", intake.FieldPainIntensity, strconv.Itoa(h.PainIntensity))
	}
	add("health.allergies", intake.FieldAllergies, h.Allergies)
	add("health.pregnant_or_nursing", intake.FieldPregnantOrNursing, h.PregnantOrNursing)
	add("health.smoking_history", intake.FieldSmokingHistory, h.SmokingHistory)
	add("health.alcohol_consumption", intake.FieldAlcoholConsumption, h.AlcoholConsumption)

	a := f.Activity
	add("activity.currently_active", intake.FieldCurrentlyActive, a.CurrentlyActive)
	add("activity.activity_type", intake.FieldActivityType, a.ActivityType)
	add("activity.activity_duration", intake.FieldActivityDuration, a.ActivityDuration)
	add("activity.experience_level", intake.FieldExperienceLevel, a.ExperienceLevel)
	if a.WeeklyFrequency != nil {
		add("activity.weekly_frequency", intake.FieldWeeklyFrequency, strconv.Itoa(*a.WeeklyFrequency))
	}
	add("activity.training_location", intake.FieldTrainingLocation, a.TrainingLocation)

	g := f.Goals
	add("goals.primary", intake.FieldPrimaryGoals, strings.Join(g.Primary, ","))
	add("goals.timeframe", intake.FieldTimeframe, g.Timeframe)
	add("goals.motivation", intake.FieldMotivation, g.Motivation)

	l := f.Lifestyle
	add("lifestyle.daily_routine", intake.FieldDailyRoutine, l.DailyRoutine)
	add("lifestyle.sleep_hours", intake.FieldSleepHours, l.SleepHours)
	add("lifestyle.nutrition_quality", intake.FieldNutritionQuality, l.NutritionQuality)
	add("lifestyle.home_equipment", intake.FieldHomeEquipment, l.HomeEquipment)

	m := f.Measurements
	add("measurements.height_m", intake.FieldHeight, num(m.HeightM))
	add("measurements.current_weight_kg", intake.FieldCurrentWeight, num(m.CurrentWeightKg))
	add("measurements.desired_weight_kg", intake.FieldDesiredWeight, num(m.DesiredWeightKg))
	return out
}

// Assignments coerces the file into field updates with the same rules
// as --set flags. Blank entries are skipped so they keep their defaults.
func (f *AnswersFile) Assignments() ([]util.Assignment, error) {
	raws := f.rawAnswers()
	out := make([]util.Assignment, 0, len(raws))
	for _, r := range raws {
		info, err := util.GetFieldByName(string(r.field))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.path, err)
		}
		v, err := util.ParseFieldValue(info, r.raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.path, err)
		}
		out = append(out, util.Assignment{Field: r.field, Value: v})
	}
	return out, nil
}

// FromAnswerSet builds the answers document describing a.
func FromAnswerSet(a intake.AnswerSet) *AnswersFile {
	freq := a.WeeklyFrequency
	goals := make([]string, len(a.PrimaryGoals))
	for i, g := range a.PrimaryGoals {
		goals[i] = string(g)
	}

	return &AnswersFile{
		Personal: PersonalAnswers{
			FullName:  a.FullName,
			BirthDate: a.BirthDate,
			Email:     a.Email,
			Phone:     a.Phone,
			Gender:    string(a.Gender),
		},
		Health: HealthAnswers{
			ChronicConditions:  a.ChronicConditions,
			Medications:        a.Medications,
			Injuries:           a.Injuries,
			Surgeries:          a.Surgeries,
			PainAreas:          a.PainAreas,
			PainIntensity:      a.PainIntensity,
			Allergies:          a.Allergies,
			PregnantOrNursing:  string(a.PregnantOrNursing),
			SmokingHistory:     a.SmokingHistory,
			AlcoholConsumption: a.AlcoholConsumption,
		},
		Activity: ActivityAnswers{
			CurrentlyActive:  string(a.CurrentlyActive),
			ActivityType:     a.ActivityType,
			ActivityDuration: string(a.ActivityDuration),
			ExperienceLevel:  string(a.ExperienceLevel),
			WeeklyFrequency:  &freq,
			TrainingLocation: string(a.TrainingLocation),
		},
		Goals: GoalsAnswers{
			Primary:    goals,
			Timeframe:  string(a.Timeframe),
			Motivation: a.Motivation,
		},
		Lifestyle: LifestyleAnswers{
			DailyRoutine:     a.DailyRoutine,
			SleepHours:       a.SleepHours,
			NutritionQuality: string(a.NutritionQuality),
			HomeEquipment:    a.HomeEquipment,
		},
		Measurements: MeasurementAnswers{
			HeightM:         a.HeightCm / 100,
			CurrentWeightKg: a.CurrentWeightKg,
			DesiredWeightKg: a.DesiredWeightKg,
		},
	}
}

// NewController loads the file into a fresh controller at section 1.
func (f *AnswersFile) NewController(opts ...intake.Option) (*intake.Controller, error) {
	assignments, err := f.Assignments()
	if err != nil {
		return nil, err
	}
	c := intake.NewController(opts...)
	if err := util.ApplyAssignments(c, assignments); err != nil {
		return nil, err
	}
	return c, nil
}
