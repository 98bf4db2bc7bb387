// internal/util/choices.go
package util

import (
	"math/rand/v2"

	"github.com/mrsinham/anamnese/internal/intake"
)

// weighted pairs a value with its share of a distribution.
type weighted[T any] struct {
	value  T
	weight float64
}

// pick returns a value with probability proportional to its weight.
// The weights need not sum to one.
func pick[T any](rng *rand.Rand, options []weighted[T]) T {
	if rng == nil {
		rng = defaultRNG
	}

	total := 0.0
	for _, o := range options {
		total += o.weight
	}

	r := rng.Float64() * total
	for _, o := range options {
		if r < o.weight {
			return o.value
		}
		r -= o.weight
	}
	return options[len(options)-1].value
}

// GenerateExperienceLevel generates an experience level with realistic distribution.
// Distribution: 45% iniciante, 30% intermediario, 18% avancado, 7% muito-avancado
func GenerateExperienceLevel(rng *rand.Rand) intake.ExperienceLevel {
	return pick(rng, []weighted[intake.ExperienceLevel]{
		{intake.ExperienceBeginner, 0.45},
		{intake.ExperienceIntermediate, 0.30},
		{intake.ExperienceAdvanced, 0.18},
		{intake.ExperienceVeryAdvanced, 0.07},
	})
}

// GenerateTrainingLocation generates a training location.
// Distribution: 60% academia, 25% casa, 15% ar-livre
func GenerateTrainingLocation(rng *rand.Rand) intake.TrainingLocation {
	return pick(rng, []weighted[intake.TrainingLocation]{
		{intake.LocationGym, 0.60},
		{intake.LocationHome, 0.25},
		{intake.LocationOutdoors, 0.15},
	})
}

// GenerateNutritionQuality generates a self-assessed nutrition quality.
// Distribution: 10% excelente, 40% boa, 35% regular, 15% ruim
func GenerateNutritionQuality(rng *rand.Rand) intake.NutritionQuality {
	return pick(rng, []weighted[intake.NutritionQuality]{
		{intake.NutritionExcellent, 0.10},
		{intake.NutritionGood, 0.40},
		{intake.NutritionRegular, 0.35},
		{intake.NutritionPoor, 0.15},
	})
}

// GenerateGoals picks one to three distinct goals. Emagrecer and
// condicionamento are the most frequent picks.
func GenerateGoals(rng *rand.Rand) []intake.Goal {
	if rng == nil {
		rng = defaultRNG
	}

	options := []weighted[intake.Goal]{
		{intake.GoalLoseWeight, 0.30},
		{intake.GoalConditioning, 0.20},
		{intake.GoalGainMass, 0.15},
		{intake.GoalGeneralHealth, 0.15},
		{intake.GoalStrength, 0.08},
		{intake.GoalReducePain, 0.07},
		{intake.GoalSpecificEvent, 0.03},
		{intake.GoalOther, 0.02},
	}

	n := 1 + rng.IntN(3)
	goals := make([]intake.Goal, 0, n)
	for len(goals) < n {
		g := pick(rng, options)
		seen := false
		for _, have := range goals {
			if have == g {
				seen = true
				break
			}
		}
		if !seen {
			goals = append(goals, g)
		}
	}
	return goals
}

// oneOf returns a uniformly chosen element of values.
func oneOf[T any](rng *rand.Rand, values []T) T {
	if rng == nil {
		rng = defaultRNG
	}
	return values[rng.IntN(len(values))]
}
