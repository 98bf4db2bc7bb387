package util

import (
	"math"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/mrsinham/anamnese/internal/intake"
)

var (
	chronicConditions = []string{"hipertensão", "diabetes tipo 2", "asma", "hipotireoidismo", "colesterol alto"}
	medications       = []string{"losartana", "metformina", "levotiroxina", "sinvastatina"}
	injuries          = []string{"entorse no tornozelo", "tendinite no ombro", "lesão no menisco", "hérnia de disco"}
	surgeries         = []string{"apendicectomia", "cirurgia no joelho", "cesárea", "colecistectomia"}
	painAreas         = []string{"lombar", "joelho", "ombro", "cervical", "punho"}
	allergies         = []string{"dipirona", "penicilina", "lactose", "frutos do mar"}
	activityTypes     = []string{"musculação", "corrida", "natação", "ciclismo", "crossfit", "pilates"}
	routines          = []string{
		"Trabalho em escritório, sentado a maior parte do dia",
		"Trabalho em pé, com deslocamentos frequentes",
		"Home office com horários flexíveis",
		"Estudante, rotina com aulas pela manhã",
	}
	equipment  = []string{"halteres", "elásticos", "tapete de yoga", "barra fixa", "bicicleta ergométrica"}
	motivation = []string{
		"Quero ter mais disposição no dia a dia",
		"Recomendação médica",
		"Quero me preparar para uma prova de corrida",
		"Melhorar a autoestima",
	}
)

// optional returns a random element of values with probability p and "" otherwise.
func optional(rng *rand.Rand, values []string, p float64) string {
	if rng.Float64() >= p {
		return ""
	}
	return oneOf(rng, values)
}

// GenerateAnswers builds a complete answer set that passes validation of
// every section. The same seed always produces the same answers for the
// same now.
func GenerateAnswers(now time.Time, rng *rand.Rand) intake.AnswerSet {
	if rng == nil {
		rng = defaultRNG
	}

	a := intake.NewAnswerSet()

	a.Gender = oneOf(rng, intake.AllGenders())
	a.FullName = GenerateFullName(a.Gender, rng)
	a.BirthDate = GenerateBirthDate(now, rng)
	a.Email = GenerateEmail(a.FullName, rng)
	a.Phone = GeneratePhone(rng)

	a.ChronicConditions = optional(rng, chronicConditions, 0.3)
	if a.ChronicConditions != "" {
		a.Medications = optional(rng, medications, 0.8)
	}
	a.Injuries = optional(rng, injuries, 0.3)
	a.Surgeries = optional(rng, surgeries, 0.2)
	a.PainAreas = optional(rng, painAreas, 0.35)
	if a.PainAreas != "" {
		a.PainIntensity = 1 + rng.IntN(intake.MaxPainIntensity)
	}
	a.Allergies = optional(rng, allergies, 0.2)
	if a.Gender == intake.GenderFemale {
		a.PregnantOrNursing = pick(rng, []weighted[intake.YesNo]{{intake.No, 0.9}, {intake.Yes, 0.1}})
	}

	a.CurrentlyActive = pick(rng, []weighted[intake.YesNo]{{intake.Yes, 0.55}, {intake.No, 0.45}})
	if a.IsActive() {
		a.ActivityType = oneOf(rng, activityTypes)
		a.ActivityDuration = oneOf(rng, intake.AllActivityDurations())
	}
	a.ExperienceLevel = GenerateExperienceLevel(rng)
	a.WeeklyFrequency = intake.MinWeeklyFrequency + rng.IntN(intake.MaxWeeklyFrequency)
	a.TrainingLocation = GenerateTrainingLocation(rng)

	a.PrimaryGoals = GenerateGoals(rng)
	a.Timeframe = oneOf(rng, intake.AllTimeframes())
	a.Motivation = optional(rng, motivation, 0.6)

	a.DailyRoutine = optional(rng, routines, 0.7)
	if rng.Float64() < 0.8 {
		a.SleepHours = strconv.Itoa(5 + rng.IntN(5))
	}
	a.NutritionQuality = GenerateNutritionQuality(rng)
	if a.TrainingLocation == intake.LocationHome {
		a.HomeEquipment = oneOf(rng, equipment)
	}

	a.HeightCm, a.CurrentWeightKg, a.DesiredWeightKg = generateMeasurements(a.Gender, rng)
	return a
}

// generateMeasurements draws a height and a weight whose BMI lies
// between 17 and 38, and a desired weight within 15% of the current one.
func generateMeasurements(gender intake.Gender, rng *rand.Rand) (heightCm, weightKg, desiredKg float64) {
	mean := 170.0
	switch gender {
	case intake.GenderMale:
		mean = 176
	case intake.GenderFemale:
		mean = 163
	}
	heightCm = math.Round(mean + rng.NormFloat64()*7)
	heightCm = math.Max(145, math.Min(heightCm, 205))

	m := heightCm / 100
	bmi := 17 + rng.Float64()*21
	weightKg = math.Round(bmi*m*m*10) / 10

	factor := 0.85 + rng.Float64()*0.15
	if bmi < 20 {
		factor = 1 + rng.Float64()*0.15
	}
	desiredKg = math.Round(weightKg * factor)
	return heightCm, weightKg, desiredKg
}
