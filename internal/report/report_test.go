package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mrsinham/anamnese/internal/intake"
)

func sampleSummary(t *testing.T, withLimitations bool) intake.Summary {
	t.Helper()
	a := intake.NewAnswerSet()
	a.FullName = "Ana Souza"
	a.ExperienceLevel = intake.ExperienceIntermediate
	a.PrimaryGoals = []intake.Goal{intake.GoalConditioning, intake.GoalLoseWeight}
	a.NutritionQuality = intake.NutritionGood
	a.HeightCm = 175
	a.CurrentWeightKg = 70
	a.DesiredWeightKg = 66
	if withLimitations {
		a.ChronicConditions = "asma"
		a.PainAreas = "lombar"
		a.PainIntensity = 4
	}
	s, err := intake.Derive(a)
	require.NoError(t, err)
	return s
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"TXT", FormatText, false},
		{"yaml", FormatYAML, false},
		{" yml ", FormatYAML, false},
		{"JSON", FormatJSON, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownFormat)
				assert.Contains(t, err.Error(), "valid: text, yaml, json")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleSummary(t, false), FormatText))
	out := buf.String()

	for _, want := range []string{
		Title, BlockProfile, BlockLimitations, BlockMeasurements, BlockLifestyle,
		"Ana Souza", "INTERMEDIÁRIO", "CONDICIONAMENTO / EMAGRECER",
		intake.NoLimitationsNotice,
		"1.75 m", "70 kg", "66 kg", "22.9", "Normal",
		"Não informado", "boa", "Nenhum",
	} {
		assert.Contains(t, out, want)
	}
	assert.True(t, strings.HasSuffix(out, "\n"))
	// Writers that are not terminals get no escape sequences.
	assert.NotContains(t, out, "\x1b[")
}

func TestRender_TextBlockOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleSummary(t, true), FormatText))
	out := buf.String()

	last := -1
	for _, title := range []string{BlockProfile, BlockLimitations, BlockMeasurements, BlockLifestyle} {
		i := strings.Index(out, title)
		require.GreaterOrEqual(t, i, 0, title)
		assert.Greater(t, i, last, "%s out of order", title)
		last = i
	}
	assert.Contains(t, out, "lombar (intensidade 4/10)")
	assert.NotContains(t, out, intake.NoLimitationsNotice)
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleSummary(t, true), FormatYAML))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Ana Souza", got["full_name"])
	assert.Equal(t, "CONDICIONAMENTO / EMAGRECER", got["primary_goal"])

	bmi, ok := got["bmi"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 22.9, bmi["value"])
	assert.Equal(t, "Normal", bmi["category"])
	assert.Equal(t, "bmi-normal", bmi["tag"])

	limitations, ok := got["medical_limitations"].([]any)
	require.True(t, ok)
	assert.Len(t, limitations, 2)
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleSummary(t, false), FormatJSON))

	var got struct {
		FullName    string `json:"full_name"`
		Limitations []any  `json:"medical_limitations"`
		BMI         struct {
			Value    float64 `json:"value"`
			Category string  `json:"category"`
		} `json:"bmi"`
		Measurements []intake.Item `json:"measurements"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Ana Souza", got.FullName)
	assert.NotNil(t, got.Limitations)
	assert.Empty(t, got.Limitations)
	assert.Equal(t, 22.9, got.BMI.Value)
	assert.Equal(t, "Normal", got.BMI.Category)
	require.Len(t, got.Measurements, 4)
	assert.Equal(t, "Altura", got.Measurements[0].Label)

	// Accented text is not escaped.
	assert.Contains(t, buf.String(), "Índice")
}

func TestRender_UnknownFormat(t *testing.T) {
	err := Render(&bytes.Buffer{}, sampleSummary(t, false), Format("xml"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestView(t *testing.T) {
	out := View(sampleSummary(t, false))
	assert.Contains(t, out, Title)
	assert.Contains(t, out, "Ana Souza")
}
