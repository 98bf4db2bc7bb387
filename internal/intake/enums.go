// Package intake implements the fitness intake questionnaire ("anamnese"):
// the answer set, the six-section wizard state machine and the summary
// derived from a completed answer set.
package intake

// Gender is the respondent's declared gender.
type Gender string

const (
	GenderMale   Gender = "masculino"
	GenderFemale Gender = "feminino"
	GenderOther  Gender = "outro"
)

// AllGenders returns all supported genders in form order.
func AllGenders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderOther}
}

// YesNo is a tri-state answer: unset, yes or no.
type YesNo string

const (
	Unset YesNo = ""
	Yes   YesNo = "sim"
	No    YesNo = "nao"
)

// ExperienceLevel is the self-reported training experience.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "iniciante"
	ExperienceIntermediate ExperienceLevel = "intermediario"
	ExperienceAdvanced     ExperienceLevel = "avancado"
	ExperienceVeryAdvanced ExperienceLevel = "muito-avancado"
)

// AllExperienceLevels returns all experience levels from least to most experienced.
func AllExperienceLevels() []ExperienceLevel {
	return []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced, ExperienceVeryAdvanced}
}

// TrainingLocation is where the respondent prefers to train.
type TrainingLocation string

const (
	LocationGym      TrainingLocation = "academia"
	LocationHome     TrainingLocation = "casa"
	LocationOutdoors TrainingLocation = "ar-livre"
)

// AllTrainingLocations returns all training locations in form order.
func AllTrainingLocations() []TrainingLocation {
	return []TrainingLocation{LocationGym, LocationHome, LocationOutdoors}
}

// ActivityDuration is how long the respondent has kept their current activity.
type ActivityDuration string

const (
	DurationUnder3Months ActivityDuration = "menos-3-meses"
	Duration3To6Months   ActivityDuration = "3-6-meses"
	Duration6To12Months  ActivityDuration = "6-12-meses"
	Duration1To2Years    ActivityDuration = "1-2-anos"
	DurationOver2Years   ActivityDuration = "mais-2-anos"
)

// AllActivityDurations returns all activity durations from shortest to longest.
func AllActivityDurations() []ActivityDuration {
	return []ActivityDuration{DurationUnder3Months, Duration3To6Months, Duration6To12Months, Duration1To2Years, DurationOver2Years}
}

// Goal is one of the primary training goals.
type Goal string

const (
	GoalLoseWeight    Goal = "emagrecer"
	GoalGainMass      Goal = "ganhar-massa"
	GoalConditioning  Goal = "condicionamento"
	GoalReducePain    Goal = "reduzir-dores"
	GoalStrength      Goal = "aumentar-forca"
	GoalGeneralHealth Goal = "saude-geral"
	GoalSpecificEvent Goal = "evento-especifico"
	GoalOther         Goal = "outro"
)

// AllGoals returns every goal known to the summary label table.
func AllGoals() []Goal {
	return []Goal{
		GoalLoseWeight, GoalGainMass, GoalConditioning, GoalReducePain,
		GoalStrength, GoalGeneralHealth, GoalSpecificEvent, GoalOther,
	}
}

// Timeframe is the horizon for reaching the goals.
type Timeframe string

const (
	Timeframe1To3Months  Timeframe = "1-3-meses"
	Timeframe3To6Months  Timeframe = "3-6-meses"
	Timeframe6To12Months Timeframe = "6-12-meses"
	TimeframeOver1Year   Timeframe = "mais-1-ano"
)

// AllTimeframes returns all timeframes from shortest to longest.
func AllTimeframes() []Timeframe {
	return []Timeframe{Timeframe1To3Months, Timeframe3To6Months, Timeframe6To12Months, TimeframeOver1Year}
}

// NutritionQuality is the self-assessed diet quality.
type NutritionQuality string

const (
	NutritionExcellent NutritionQuality = "excelente"
	NutritionGood      NutritionQuality = "boa"
	NutritionRegular   NutritionQuality = "regular"
	NutritionPoor      NutritionQuality = "ruim"
)

// AllNutritionQualities returns all nutrition qualities from best to worst.
func AllNutritionQualities() []NutritionQuality {
	return []NutritionQuality{NutritionExcellent, NutritionGood, NutritionRegular, NutritionPoor}
}

// BMICategory is the range a BMI value falls into.
type BMICategory int

const (
	BMIUnderweight BMICategory = iota
	BMINormal
	BMIOverweight
	BMIObese
)

// Label returns the display label of the category.
func (c BMICategory) Label() string {
	switch c {
	case BMIUnderweight:
		return "Magreza"
	case BMINormal:
		return "Normal"
	case BMIOverweight:
		return "Sobrepeso"
	default:
		return "Obesidade"
	}
}

// Tag returns the style tag renderers use for the category.
func (c BMICategory) Tag() string {
	switch c {
	case BMIUnderweight:
		return "bmi-underweight"
	case BMINormal:
		return "bmi-normal"
	case BMIOverweight:
		return "bmi-overweight"
	default:
		return "bmi-obese"
	}
}

// String implements fmt.Stringer.
func (c BMICategory) String() string { return c.Label() }
