package intake

import "fmt"

// FieldID names one attribute of the AnswerSet.
type FieldID string

const (
	FieldFullName  FieldID = "fullName"
	FieldBirthDate FieldID = "birthDate"
	FieldEmail     FieldID = "email"
	FieldPhone     FieldID = "phone"
	FieldGender    FieldID = "gender"

	FieldChronicConditions  FieldID = "chronicConditions"
	FieldMedications        FieldID = "medications"
	FieldInjuries           FieldID = "injuries"
	FieldSurgeries          FieldID = "surgeries"
	FieldPainAreas          FieldID = "painAreas"
	FieldPainIntensity      FieldID = "painIntensity"
	FieldAllergies          FieldID = "allergies"
	FieldPregnantOrNursing  FieldID = "pregnantOrNursing"
	FieldSmokingHistory     FieldID = "smokingHistory"
	FieldAlcoholConsumption FieldID = "alcoholConsumption"

	FieldCurrentlyActive  FieldID = "currentlyActive"
	FieldActivityType     FieldID = "activityType"
	FieldActivityDuration FieldID = "activityDuration"
	FieldExperienceLevel  FieldID = "experienceLevel"
	FieldWeeklyFrequency  FieldID = "weeklyFrequency"
	FieldTrainingLocation FieldID = "trainingLocation"

	FieldPrimaryGoals FieldID = "primaryGoals"
	FieldTimeframe    FieldID = "timeframe"
	FieldMotivation   FieldID = "motivation"

	FieldDailyRoutine     FieldID = "dailyRoutine"
	FieldSleepHours       FieldID = "sleepHours"
	FieldNutritionQuality FieldID = "nutritionQuality"
	FieldHomeEquipment    FieldID = "homeEquipment"

	FieldHeight        FieldID = "height"
	FieldCurrentWeight FieldID = "currentWeight"
	FieldDesiredWeight FieldID = "desiredWeight"
)

// FieldKind is the semantic type a field accepts.
type FieldKind int

const (
	KindText FieldKind = iota
	KindInt
	KindNumber
	KindGoals
)

// String implements fmt.Stringer.
func (k FieldKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInt:
		return "integer"
	case KindNumber:
		return "number"
	case KindGoals:
		return "goals"
	default:
		return "unknown"
	}
}

// FieldValue is a value already coerced to a field's semantic type.
// Implementations are Text, Int, Number and Goals.
type FieldValue interface {
	Kind() FieldKind
	fieldValue()
}

// Text is a string value; enum fields take their stored id as Text.
type Text string

// Int is an integer value.
type Int int

// Number is a decimal value. Height is in centimeters, weights in kilograms.
type Number float64

// Goals is a full goal selection.
type Goals []Goal

func (Text) Kind() FieldKind   { return KindText }
func (Int) Kind() FieldKind    { return KindInt }
func (Number) Kind() FieldKind { return KindNumber }
func (Goals) Kind() FieldKind  { return KindGoals }

func (Text) fieldValue()   {}
func (Int) fieldValue()    {}
func (Number) fieldValue() {}
func (Goals) fieldValue()  {}

// FieldSpec describes one field of the questionnaire.
type FieldSpec struct {
	ID       FieldID
	Section  Section
	Kind     FieldKind
	Required bool
	Label    string

	set func(a *AnswerSet, v FieldValue)
}

func text(set func(a *AnswerSet, s string)) func(*AnswerSet, FieldValue) {
	return func(a *AnswerSet, v FieldValue) { set(a, string(v.(Text))) }
}

func integer(set func(a *AnswerSet, n int)) func(*AnswerSet, FieldValue) {
	return func(a *AnswerSet, v FieldValue) { set(a, int(v.(Int))) }
}

func number(set func(a *AnswerSet, f float64)) func(*AnswerSet, FieldValue) {
	return func(a *AnswerSet, v FieldValue) { set(a, float64(v.(Number))) }
}

// fieldSpecs is in form order.
var fieldSpecs = []FieldSpec{
	{ID: FieldFullName, Section: SectionPersonal, Kind: KindText, Required: true, Label: "Nome Completo",
		set: text(func(a *AnswerSet, s string) { a.FullName = s })},
	{ID: FieldBirthDate, Section: SectionPersonal, Kind: KindText, Required: true, Label: "Data de Nascimento",
		set: text(func(a *AnswerSet, s string) { a.BirthDate = s })},
	{ID: FieldEmail, Section: SectionPersonal, Kind: KindText, Required: true, Label: "Email",
		set: text(func(a *AnswerSet, s string) { a.Email = s })},
	{ID: FieldPhone, Section: SectionPersonal, Kind: KindText, Required: true, Label: "Telefone",
		set: text(func(a *AnswerSet, s string) { a.Phone = s })},
	{ID: FieldGender, Section: SectionPersonal, Kind: KindText, Required: true, Label: "Gênero",
		set: text(func(a *AnswerSet, s string) { a.Gender = Gender(s) })},

	{ID: FieldChronicConditions, Section: SectionHealth, Kind: KindText, Label: "Condições Crônicas",
		set: text(func(a *AnswerSet, s string) { a.ChronicConditions = s })},
	{ID: FieldMedications, Section: SectionHealth, Kind: KindText, Label: "Medicamentos em Uso",
		set: text(func(a *AnswerSet, s string) { a.Medications = s })},
	{ID: FieldInjuries, Section: SectionHealth, Kind: KindText, Label: "Lesões Anteriores",
		set: text(func(a *AnswerSet, s string) { a.Injuries = s })},
	{ID: FieldSurgeries, Section: SectionHealth, Kind: KindText, Label: "Cirurgias Anteriores",
		set: text(func(a *AnswerSet, s string) { a.Surgeries = s })},
	{ID: FieldPainAreas, Section: SectionHealth, Kind: KindText, Label: "Áreas com Dor ou Desconforto",
		set: text(func(a *AnswerSet, s string) { a.PainAreas = s })},
	{ID: FieldPainIntensity, Section: SectionHealth, Kind: KindInt, Label: "Intensidade da Dor (0 a 10)",
		set: integer(func(a *AnswerSet, n int) { a.PainIntensity = clamp(n, MinPainIntensity, MaxPainIntensity) })},
	{ID: FieldAllergies, Section: SectionHealth, Kind: KindText, Label: "Alergias",
		set: text(func(a *AnswerSet, s string) { a.Allergies = s })},
	{ID: FieldPregnantOrNursing, Section: SectionHealth, Kind: KindText, Label: "Está grávida ou amamentando?",
		set: text(func(a *AnswerSet, s string) { a.PregnantOrNursing = YesNo(s) })},
	{ID: FieldSmokingHistory, Section: SectionHealth, Kind: KindText, Label: "Histórico de Tabagismo",
		set: text(func(a *AnswerSet, s string) { a.SmokingHistory = s })},
	{ID: FieldAlcoholConsumption, Section: SectionHealth, Kind: KindText, Label: "Consumo de Álcool",
		set: text(func(a *AnswerSet, s string) { a.AlcoholConsumption = s })},

	{ID: FieldCurrentlyActive, Section: SectionActivity, Kind: KindText, Label: "Você está atualmente ativo?",
		set: text(func(a *AnswerSet, s string) { a.CurrentlyActive = YesNo(s) })},
	{ID: FieldActivityType, Section: SectionActivity, Kind: KindText, Label: "Qual Atividade?",
		set: text(func(a *AnswerSet, s string) { a.ActivityType = s })},
	{ID: FieldActivityDuration, Section: SectionActivity, Kind: KindText, Label: "Há Quanto Tempo?",
		set: text(func(a *AnswerSet, s string) { a.ActivityDuration = ActivityDuration(s) })},
	{ID: FieldExperienceLevel, Section: SectionActivity, Kind: KindText, Required: true, Label: "Nível de Experiência",
		set: text(func(a *AnswerSet, s string) { a.ExperienceLevel = ExperienceLevel(s) })},
	{ID: FieldWeeklyFrequency, Section: SectionActivity, Kind: KindInt, Label: "Frequência Semanal Desejada",
		set: integer(func(a *AnswerSet, n int) { a.WeeklyFrequency = clamp(n, MinWeeklyFrequency, MaxWeeklyFrequency) })},
	{ID: FieldTrainingLocation, Section: SectionActivity, Kind: KindText, Required: true, Label: "Local de Treino Preferido",
		set: text(func(a *AnswerSet, s string) { a.TrainingLocation = TrainingLocation(s) })},

	{ID: FieldPrimaryGoals, Section: SectionGoals, Kind: KindGoals, Required: true, Label: "Objetivos Principais",
		set: func(a *AnswerSet, v FieldValue) { a.setGoals(v.(Goals)) }},
	{ID: FieldTimeframe, Section: SectionGoals, Kind: KindText, Required: true, Label: "Prazo para Atingir Objetivos",
		set: text(func(a *AnswerSet, s string) { a.Timeframe = Timeframe(s) })},
	{ID: FieldMotivation, Section: SectionGoals, Kind: KindText, Label: "O que te motiva?",
		set: text(func(a *AnswerSet, s string) { a.Motivation = s })},

	{ID: FieldDailyRoutine, Section: SectionLifestyle, Kind: KindText, Label: "Rotina Diária",
		set: text(func(a *AnswerSet, s string) { a.DailyRoutine = s })},
	{ID: FieldSleepHours, Section: SectionLifestyle, Kind: KindText, Label: "Horas de Sono por Noite",
		set: text(func(a *AnswerSet, s string) { a.SleepHours = s })},
	{ID: FieldNutritionQuality, Section: SectionLifestyle, Kind: KindText, Required: true, Label: "Qualidade da Nutrição",
		set: text(func(a *AnswerSet, s string) { a.NutritionQuality = NutritionQuality(s) })},
	{ID: FieldHomeEquipment, Section: SectionLifestyle, Kind: KindText, Label: "Equipamento de Treino em Casa",
		set: text(func(a *AnswerSet, s string) { a.HomeEquipment = s })},

	{ID: FieldHeight, Section: SectionMeasurements, Kind: KindNumber, Required: true, Label: "Altura (cm)",
		set: number(func(a *AnswerSet, f float64) { a.HeightCm = f })},
	{ID: FieldCurrentWeight, Section: SectionMeasurements, Kind: KindNumber, Required: true, Label: "Peso Atual (kg)",
		set: number(func(a *AnswerSet, f float64) { a.CurrentWeightKg = f })},
	{ID: FieldDesiredWeight, Section: SectionMeasurements, Kind: KindNumber, Required: true, Label: "Peso Desejado (kg)",
		set: number(func(a *AnswerSet, f float64) { a.DesiredWeightKg = f })},
}

var fieldIndex = func() map[FieldID]int {
	m := make(map[FieldID]int, len(fieldSpecs))
	for i, f := range fieldSpecs {
		m[f.ID] = i
	}
	return m
}()

// Fields returns the specs of every field in form order.
func Fields() []FieldSpec {
	out := make([]FieldSpec, len(fieldSpecs))
	copy(out, fieldSpecs)
	return out
}

// LookupField returns the spec for id.
func LookupField(id FieldID) (FieldSpec, bool) {
	i, ok := fieldIndex[id]
	if !ok {
		return FieldSpec{}, false
	}
	return fieldSpecs[i], true
}

// Set writes v into the field id of a. It performs no content
// validation; it fails only when id is unknown or v has the wrong kind.
func (a *AnswerSet) Set(id FieldID, v FieldValue) error {
	spec, ok := LookupField(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, id)
	}
	if v == nil || v.Kind() != spec.Kind {
		got := "nil"
		if v != nil {
			got = v.Kind().String()
		}
		return fmt.Errorf("%w: %s takes %s, got %s", ErrFieldKind, id, spec.Kind, got)
	}
	spec.set(a, v)
	return nil
}
