package intake

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// BMI thresholds, applied to the unrounded value.
const (
	bmiNormalFrom     = 18.5
	bmiOverweightFrom = 25.0
	bmiObeseFrom      = 30.0
)

// ParseMeters converts a height typed in metres ("1.75" or "1,75") to
// centimeters. The decimal point is shifted in the text before parsing,
// so "1.63" yields exactly 163 rather than 162.99999999999997.
func ParseMeters(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return 0, fmt.Errorf("empty height")
	}
	if !isDecimal(s) {
		return 0, fmt.Errorf("invalid height %q, use metres such as 1.75", s)
	}
	intPart, frac, _ := strings.Cut(s, ".")
	if intPart == "" {
		intPart = "0"
	}
	for len(frac) < 2 {
		frac += "0"
	}
	shifted := intPart + frac[:2]
	if rest := frac[2:]; rest != "" {
		shifted += "." + rest
	}
	cm, err := strconv.ParseFloat(shifted, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid height %q, use metres such as 1.75", s)
	}
	return cm, nil
}

// isDecimal reports whether s holds only digits with at most one '.'.
func isDecimal(s string) bool {
	digits, dots := 0, 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}

// FormatMeters renders a height in centimeters as metres with two decimals.
func FormatMeters(cm float64) string {
	return strconv.FormatFloat(cm/100, 'f', 2, 64)
}

// ComputeBMI returns weight / height², with height converted to metres.
// A non-positive height, or any input that makes the result non-finite,
// fails with a *DomainError.
func ComputeBMI(heightCm, weightKg float64) (float64, error) {
	if !(heightCm > 0) || math.IsInf(heightCm, 0) {
		return 0, &DomainError{Kind: KindInvalidMeasurement, Field: FieldHeight, Value: heightCm}
	}
	m := heightCm / 100
	bmi := weightKg / (m * m)
	if math.IsNaN(bmi) || math.IsInf(bmi, 0) {
		return 0, &DomainError{Kind: KindInvalidMeasurement, Field: FieldCurrentWeight, Value: weightKg}
	}
	return bmi, nil
}

// ClassifyBMI returns the category of an unrounded BMI value.
func ClassifyBMI(bmi float64) BMICategory {
	switch {
	case bmi < bmiNormalFrom:
		return BMIUnderweight
	case bmi < bmiOverweightFrom:
		return BMINormal
	case bmi < bmiObeseFrom:
		return BMIOverweight
	default:
		return BMIObese
	}
}

// roundTenth rounds to one decimal place, half away from zero.
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
