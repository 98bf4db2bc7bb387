package intake

import "slices"

const (
	MinPainIntensity = 0
	MaxPainIntensity = 10

	MinWeeklyFrequency     = 1
	MaxWeeklyFrequency     = 7
	DefaultWeeklyFrequency = 3
)

// AnswerSet is every field of the questionnaire for one session.
type AnswerSet struct {
	// Personal
	FullName  string
	BirthDate string
	Email     string
	Phone     string
	Gender    Gender

	// Health
	ChronicConditions  string
	Medications        string
	Injuries           string
	Surgeries          string
	PainAreas          string
	PainIntensity      int
	Allergies          string
	PregnantOrNursing  YesNo
	SmokingHistory     string
	AlcoholConsumption string

	// Activity
	CurrentlyActive  YesNo
	ActivityType     string
	ActivityDuration ActivityDuration
	ExperienceLevel  ExperienceLevel
	WeeklyFrequency  int
	TrainingLocation TrainingLocation

	// Goals. PrimaryGoals keeps the order in which goals were first selected.
	PrimaryGoals []Goal
	Timeframe    Timeframe
	Motivation   string

	// Lifestyle
	DailyRoutine     string
	SleepHours       string
	NutritionQuality NutritionQuality
	HomeEquipment    string

	// Measurements
	HeightCm        float64
	CurrentWeightKg float64
	DesiredWeightKg float64
}

// NewAnswerSet returns an answer set holding the session defaults.
func NewAnswerSet() AnswerSet {
	return AnswerSet{
		PainIntensity:   MinPainIntensity,
		WeeklyFrequency: DefaultWeeklyFrequency,
	}
}

// Clone returns a copy that shares no memory with a.
func (a AnswerSet) Clone() AnswerSet {
	a.PrimaryGoals = slices.Clone(a.PrimaryGoals)
	return a
}

// HasGoal reports whether g is currently selected.
func (a AnswerSet) HasGoal(g Goal) bool {
	return slices.Contains(a.PrimaryGoals, g)
}

// ToggleGoal removes g when selected and appends it otherwise.
func (a *AnswerSet) ToggleGoal(g Goal) {
	if i := slices.Index(a.PrimaryGoals, g); i >= 0 {
		a.PrimaryGoals = slices.Delete(a.PrimaryGoals, i, i+1)
		return
	}
	a.PrimaryGoals = append(a.PrimaryGoals, g)
}

// setGoals replaces the selection, dropping repeated entries and keeping
// the first occurrence of each.
func (a *AnswerSet) setGoals(goals []Goal) {
	out := make([]Goal, 0, len(goals))
	for _, g := range goals {
		if !slices.Contains(out, g) {
			out = append(out, g)
		}
	}
	a.PrimaryGoals = out
}

// IsActive reports whether the activity type and duration are relevant.
func (a *AnswerSet) IsActive() bool {
	return a.CurrentlyActive == Yes
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
