package intake

// Summary label tables. Every member of the matching All* list has an
// entry; labels_test.go keeps them exhaustive.
var (
	experienceSummaryLabels = map[ExperienceLevel]string{
		ExperienceBeginner:     "INICIANTE",
		ExperienceIntermediate: "INTERMEDIÁRIO",
		ExperienceAdvanced:     "AVANÇADO",
		ExperienceVeryAdvanced: "MUITO AVANÇADO",
	}

	goalSummaryLabels = map[Goal]string{
		GoalLoseWeight:    "EMAGRECER",
		GoalGainMass:      "GANHAR MASSA",
		GoalConditioning:  "CONDICIONAMENTO",
		GoalReducePain:    "REDUZIR DORES",
		GoalStrength:      "AUMENTAR FORÇA",
		GoalGeneralHealth: "SAÚDE GERAL",
		GoalSpecificEvent: "EVENTO ESPECÍFICO",
		GoalOther:         "OUTRO",
	}
)

// Form option labels, as shown next to each choice while answering.
var (
	genderOptionLabels = map[Gender]string{
		GenderMale:   "Masculino",
		GenderFemale: "Feminino",
		GenderOther:  "Outro",
	}

	experienceOptionLabels = map[ExperienceLevel]string{
		ExperienceBeginner:     "Iniciante",
		ExperienceIntermediate: "Intermediário",
		ExperienceAdvanced:     "Avançado",
		ExperienceVeryAdvanced: "Muito Avançado",
	}

	locationOptionLabels = map[TrainingLocation]string{
		LocationGym:      "Academia",
		LocationHome:     "Casa",
		LocationOutdoors: "Ar Livre",
	}

	durationOptionLabels = map[ActivityDuration]string{
		DurationUnder3Months: "Menos de 3 meses",
		Duration3To6Months:   "3-6 meses",
		Duration6To12Months:  "6-12 meses",
		Duration1To2Years:    "1-2 anos",
		DurationOver2Years:   "Mais de 2 anos",
	}

	goalOptionLabels = map[Goal]string{
		GoalLoseWeight:    "Emagrecer",
		GoalGainMass:      "Ganhar Massa Muscular",
		GoalConditioning:  "Melhorar Condicionamento",
		GoalReducePain:    "Reduzir Dores",
		GoalStrength:      "Aumentar Força",
		GoalGeneralHealth: "Saúde Geral",
		GoalSpecificEvent: "Evento Específico",
		GoalOther:         "Outro",
	}

	timeframeOptionLabels = map[Timeframe]string{
		Timeframe1To3Months:  "1-3 meses",
		Timeframe3To6Months:  "3-6 meses",
		Timeframe6To12Months: "6-12 meses",
		TimeframeOver1Year:   "Mais de 1 ano",
	}

	nutritionOptionLabels = map[NutritionQuality]string{
		NutritionExcellent: "Excelente (Dieta balanceada, poucas exceções)",
		NutritionGood:      "Boa (Geralmente saudável, mas com deslizes)",
		NutritionRegular:   "Regular (Precisa de melhorias significativas)",
		NutritionPoor:      "Ruim (Alimentação desregrada, fast-food frequente)",
	}

	yesNoOptionLabels = map[YesNo]string{
		Yes: "Sim",
		No:  "Não",
	}
)

// lookup returns the label for key, or the raw key when it has none.
func lookup[K ~string](table map[K]string, key K) string {
	if label, ok := table[key]; ok {
		return label
	}
	return string(key)
}

// SummaryLabel returns the upper-case label used in the summary. Values
// outside the enumeration are returned verbatim.
func (e ExperienceLevel) SummaryLabel() string { return lookup(experienceSummaryLabels, e) }

// SummaryLabel returns the upper-case label used in the summary.
func (g Goal) SummaryLabel() string { return lookup(goalSummaryLabels, g) }

// Label returns the form option label.
func (g Gender) Label() string { return lookup(genderOptionLabels, g) }

// Label returns the form option label.
func (e ExperienceLevel) Label() string { return lookup(experienceOptionLabels, e) }

// Label returns the form option label.
func (l TrainingLocation) Label() string { return lookup(locationOptionLabels, l) }

// Label returns the form option label.
func (d ActivityDuration) Label() string { return lookup(durationOptionLabels, d) }

// Label returns the form option label.
func (g Goal) Label() string { return lookup(goalOptionLabels, g) }

// Label returns the form option label.
func (t Timeframe) Label() string { return lookup(timeframeOptionLabels, t) }

// Label returns the form option label.
func (n NutritionQuality) Label() string { return lookup(nutritionOptionLabels, n) }

// Label returns "Sim", "Não", or "" when unset.
func (y YesNo) Label() string { return lookup(yesNoOptionLabels, y) }

// Valid reports whether g is a member of the goal enumeration.
func (g Goal) Valid() bool {
	_, ok := goalSummaryLabels[g]
	return ok
}

// Valid reports whether e is a member of the experience enumeration.
func (e ExperienceLevel) Valid() bool {
	_, ok := experienceSummaryLabels[e]
	return ok
}
