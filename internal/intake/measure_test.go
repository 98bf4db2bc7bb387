package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMeters_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"1.75", 175},
		{"1,75", 175},
		{"1.63", 163},
		{"1.7", 170},
		{"2", 200},
		{" 1.80 ", 180},
		{".95", 95},
		{"1.635", 163.5},
	}

	for _, tc := range tests {
		got, err := ParseMeters(tc.input)
		require.NoError(t, err, "ParseMeters(%q)", tc.input)
		assert.Equal(t, tc.want, got, "ParseMeters(%q)", tc.input)
	}
}

func TestParseMeters_Invalid(t *testing.T) {
	for _, input := range []string{"", "abc", "-1.70", "1e2", "1.7.5", "+1.7", "0x1p3", "Inf", "NaN", ".", "1_70", "1.7 5"} {
		_, err := ParseMeters(input)
		assert.Error(t, err, "ParseMeters(%q)", input)
	}
}

func TestFormatMeters(t *testing.T) {
	assert.Equal(t, "1.75", FormatMeters(175))
	assert.Equal(t, "1.60", FormatMeters(160))
	assert.Equal(t, "0.00", FormatMeters(0))
}

func TestComputeBMI(t *testing.T) {
	bmi, err := ComputeBMI(200, 80)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, bmi, 1e-9)

	_, err = ComputeBMI(0, 80)
	assert.ErrorIs(t, err, ErrInvalidMeasurement)
	assert.Contains(t, err.Error(), "invalid-measurement")
}
