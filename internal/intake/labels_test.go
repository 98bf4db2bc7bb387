package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelTables_Exhaustive(t *testing.T) {
	for _, g := range AllGoals() {
		assert.Contains(t, goalSummaryLabels, g)
		assert.Contains(t, goalOptionLabels, g)
		assert.True(t, g.Valid())
	}
	for _, e := range AllExperienceLevels() {
		assert.Contains(t, experienceSummaryLabels, e)
		assert.Contains(t, experienceOptionLabels, e)
		assert.True(t, e.Valid())
	}
	for _, g := range AllGenders() {
		assert.Contains(t, genderOptionLabels, g)
	}
	for _, l := range AllTrainingLocations() {
		assert.Contains(t, locationOptionLabels, l)
	}
	for _, d := range AllActivityDurations() {
		assert.Contains(t, durationOptionLabels, d)
	}
	for _, tf := range AllTimeframes() {
		assert.Contains(t, timeframeOptionLabels, tf)
	}
	for _, n := range AllNutritionQualities() {
		assert.Contains(t, nutritionOptionLabels, n)
	}

	assert.Len(t, goalSummaryLabels, len(AllGoals()))
	assert.Len(t, experienceSummaryLabels, len(AllExperienceLevels()))
}

func TestSummaryLabels(t *testing.T) {
	assert.Equal(t, "INICIANTE", ExperienceBeginner.SummaryLabel())
	assert.Equal(t, "AVANÇADO", ExperienceAdvanced.SummaryLabel())
	assert.Equal(t, "GANHAR MASSA", GoalGainMass.SummaryLabel())
	assert.Equal(t, "SAÚDE GERAL", GoalGeneralHealth.SummaryLabel())
	assert.Equal(t, "EVENTO ESPECÍFICO", GoalSpecificEvent.SummaryLabel())
}

func TestLabels_FallBackToRawValue(t *testing.T) {
	assert.Equal(t, "desconhecido", Goal("desconhecido").SummaryLabel())
	assert.Equal(t, "elite", ExperienceLevel("elite").Label())
	assert.False(t, Goal("desconhecido").Valid())
	assert.False(t, ExperienceLevel("").Valid())
	assert.Equal(t, "", Unset.Label())
	assert.Equal(t, "Sim", Yes.Label())
	assert.Equal(t, "Não", No.Label())
}

func TestSection_Title(t *testing.T) {
	assert.Equal(t, "Dados Pessoais", SectionPersonal.Title())
	assert.Equal(t, "Medidas", SectionMeasurements.Title())
	assert.Equal(t, "Seção 7", Section(7).Title())
	assert.False(t, Section(0).Valid())
	assert.Len(t, AllSections(), NumSections)
}
