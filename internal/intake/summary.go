package intake

import (
	"fmt"
	"strconv"
	"strings"
)

// GoalSeparator joins goal labels in the summary.
const GoalSeparator = " / "

// Fallbacks for optional lifestyle answers left blank.
const (
	NotInformed = "Não informado"
	NoEquipment = "Nenhum"
)

// NoLimitationsNotice is shown when the respondent reported no limitation.
const NoLimitationsNotice = "Nenhuma limitação relevante informada."

// Limitation is one reported health restriction.
type Limitation struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Item is one labelled line of a summary block.
type Item struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// BMIResult is the computed body mass index.
type BMIResult struct {
	Value    float64     `json:"value" yaml:"value"`
	Category BMICategory `json:"-" yaml:"-"`
	Label    string      `json:"category" yaml:"category"`
	Tag      string      `json:"tag" yaml:"tag"`
}

// Summary is the read-only report derived from a completed answer set.
type Summary struct {
	FullName        string       `json:"full_name" yaml:"full_name"`
	ExperienceLevel string       `json:"experience_level" yaml:"experience_level"`
	Goals           string       `json:"primary_goal" yaml:"primary_goal"`
	Limitations     []Limitation `json:"medical_limitations" yaml:"medical_limitations"`
	BMI             BMIResult    `json:"bmi" yaml:"bmi"`

	Measurements []Item `json:"measurements" yaml:"measurements"`
	Lifestyle    []Item `json:"lifestyle" yaml:"lifestyle"`
}

// Profile returns the general profile block: name, experience, goals.
func (s Summary) Profile() []Item {
	return []Item{
		{Label: "Nome", Value: s.FullName},
		{Label: "Nível de Experiência", Value: s.ExperienceLevel},
		{Label: "Objetivo Principal", Value: s.Goals},
	}
}

// Derive maps an answer set to its summary. It does not modify a and
// fails only with a *DomainError when the height makes the BMI undefined.
func Derive(a AnswerSet) (Summary, error) {
	bmi, err := ComputeBMI(a.HeightCm, a.CurrentWeightKg)
	if err != nil {
		return Summary{}, err
	}
	category := ClassifyBMI(bmi)

	return Summary{
		FullName:        a.FullName,
		ExperienceLevel: a.ExperienceLevel.SummaryLabel(),
		Goals:           goalsDisplay(a.PrimaryGoals),
		Limitations:     limitations(a),
		BMI: BMIResult{
			Value:    roundTenth(bmi),
			Category: category,
			Label:    category.Label(),
			Tag:      category.Tag(),
		},
		Measurements: []Item{
			{Label: "Altura", Value: FormatMeters(a.HeightCm) + " m"},
			{Label: "Peso Atual", Value: formatKg(a.CurrentWeightKg)},
			{Label: "Peso Desejado", Value: formatKg(a.DesiredWeightKg)},
			{Label: "IMC (Índice de Massa Corporal)", Value: fmt.Sprintf("%.1f %s", roundTenth(bmi), category.Label())},
		},
		Lifestyle: []Item{
			{Label: "Rotina Diária", Value: orDefault(a.DailyRoutine, NotInformed)},
			{Label: "Horas de Sono", Value: sleepDisplay(a.SleepHours)},
			{Label: "Qualidade da Nutrição", Value: string(a.NutritionQuality)},
			{Label: "Equipamento em Casa", Value: orDefault(a.HomeEquipment, NoEquipment)},
		},
	}, nil
}

func goalsDisplay(goals []Goal) string {
	labels := make([]string, len(goals))
	for i, g := range goals {
		labels[i] = g.SummaryLabel()
	}
	return strings.Join(labels, GoalSeparator)
}

// limitations checks the optional health fields in a fixed order.
func limitations(a AnswerSet) []Limitation {
	out := []Limitation{}
	add := func(label, value string) {
		if value != "" {
			out = append(out, Limitation{Label: label, Value: value})
		}
	}

	add("Condições Crônicas", a.ChronicConditions)
	add("Medicamentos", a.Medications)
	add("Lesões Anteriores", a.Injuries)
	add("Cirurgias Anteriores", a.Surgeries)
	if a.PainAreas != "" {
		add("Áreas de Dor", fmt.Sprintf("%s (intensidade %d/10)", a.PainAreas, a.PainIntensity))
	}
	add("Alergias", a.Allergies)
	if a.PregnantOrNursing == Yes {
		add("Condição Especial", "Grávida/Amamentando")
	}
	return out
}

func formatKg(kg float64) string {
	return strconv.FormatFloat(kg, 'f', -1, 64) + " kg"
}

func sleepDisplay(hours string) string {
	if hours == "" {
		return NotInformed
	}
	return hours + "h"
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
