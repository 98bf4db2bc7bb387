// Package util provides helpers shared by the CLI and the wizard: sample
// answer generation and the field registry behind --set flags.
package util

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/mrsinham/anamnese/internal/intake"
)

// FieldInfo describes a field that can be set from the command line.
type FieldInfo struct {
	Name    string
	Spec    intake.FieldSpec
	Choices []string // allowed stored values; nil for free-form fields
}

// Assignment is one parsed "field=value" flag.
type Assignment struct {
	Field intake.FieldID
	Value intake.FieldValue
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

var yesNoChoices = []string{string(intake.Yes), string(intake.No)}

// fieldChoices lists the closed enumerations by field.
var fieldChoices = map[intake.FieldID][]string{
	intake.FieldGender:            stringsOf(intake.AllGenders()),
	intake.FieldPregnantOrNursing: yesNoChoices,
	intake.FieldCurrentlyActive:   yesNoChoices,
	intake.FieldActivityDuration:  stringsOf(intake.AllActivityDurations()),
	intake.FieldExperienceLevel:   stringsOf(intake.AllExperienceLevels()),
	intake.FieldTrainingLocation:  stringsOf(intake.AllTrainingLocations()),
	intake.FieldPrimaryGoals:      stringsOf(intake.AllGoals()),
	intake.FieldTimeframe:         stringsOf(intake.AllTimeframes()),
	intake.FieldNutritionQuality:  stringsOf(intake.AllNutritionQualities()),
}

// fieldRegistry maps normalized field names to their FieldInfo.
var fieldRegistry = func() map[string]FieldInfo {
	m := map[string]FieldInfo{}
	for _, spec := range intake.Fields() {
		m[normalizeName(string(spec.ID))] = FieldInfo{
			Name:    string(spec.ID),
			Spec:    spec,
			Choices: fieldChoices[spec.ID],
		}
	}
	return m
}()

// normalizeName folds case and drops separators, so "full_name",
// "fullName" and "FULL-NAME" are the same key.
func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(name)
}

// RegisteredFields returns every settable field in form order.
func RegisteredFields() []FieldInfo {
	specs := intake.Fields()
	out := make([]FieldInfo, 0, len(specs))
	for _, spec := range specs {
		out = append(out, fieldRegistry[normalizeName(string(spec.ID))])
	}
	return out
}

// GetFieldByName returns FieldInfo for a given field name.
// The lookup ignores case and separators. If the field is not found, an
// error is returned with a suggestion for the closest matching field name
// (using Levenshtein distance).
func GetFieldByName(name string) (FieldInfo, error) {
	normalizedName := normalizeName(name)

	if info, ok := fieldRegistry[normalizedName]; ok {
		return info, nil
	}

	if suggestion := findClosestFieldName(normalizedName); suggestion != "" {
		return FieldInfo{}, fmt.Errorf("unknown field %q, did you mean %q?", name, suggestion)
	}
	return FieldInfo{}, fmt.Errorf("unknown field %q", name)
}

// findClosestFieldName finds the closest matching field name using Levenshtein distance.
// Returns empty string if no close match is found (distance > 3).
func findClosestFieldName(input string) string {
	keys := make([]string, 0, len(fieldRegistry))
	for key := range fieldRegistry {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	best := closest(input, keys, 3)
	if best == "" {
		return ""
	}
	return fieldRegistry[best].Name
}

// closest returns the candidate nearest to input, or "" when none is
// within maxDistance. Ties go to the first candidate.
func closest(input string, candidates []string, maxDistance int) string {
	bestDistance := maxDistance + 1
	var bestMatch string

	for _, c := range candidates {
		if distance := levenshteinDistance(input, c); distance < bestDistance {
			bestDistance = distance
			bestMatch = c
		}
	}
	return bestMatch
}

// ParseSetFlags parses repeated "field=value" flags. Values are coerced to
// the field's kind: integers for pain intensity and frequency, metres for
// height, kilograms for weights and a comma-separated list for goals.
func ParseSetFlags(flags []string) ([]Assignment, error) {
	assignments := make([]Assignment, 0, len(flags))
	for _, f := range flags {
		name, raw, ok := strings.Cut(f, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set %q, expected field=value", f)
		}

		info, err := GetFieldByName(name)
		if err != nil {
			return nil, err
		}

		value, err := ParseFieldValue(info, raw)
		if err != nil {
			return nil, fmt.Errorf("--set %s: %w", info.Name, err)
		}
		assignments = append(assignments, Assignment{Field: info.Spec.ID, Value: value})
	}
	return assignments, nil
}

// ParseFieldValue converts raw text to a value of the field's kind.
func ParseFieldValue(info FieldInfo, raw string) (intake.FieldValue, error) {
	raw = strings.TrimSpace(raw)

	switch info.Spec.Kind {
	case intake.KindInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", raw)
		}
		return intake.Int(n), nil

	case intake.KindNumber:
		if info.Spec.ID == intake.FieldHeight {
			cm, err := intake.ParseMeters(raw)
			if err != nil {
				return nil, err
			}
			return intake.Number(cm), nil
		}
		kg, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
		if err != nil || math.IsNaN(kg) || math.IsInf(kg, 0) {
			return nil, fmt.Errorf("%q is not a number", raw)
		}
		return intake.Number(kg), nil

	case intake.KindGoals:
		var goals intake.Goals
		for _, part := range strings.Split(raw, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part == "" {
				continue
			}
			if err := checkChoice(part, info.Choices); err != nil {
				return nil, err
			}
			goals = append(goals, intake.Goal(part))
		}
		return goals, nil

	default:
		if info.Choices != nil && raw != "" {
			raw = strings.ToLower(raw)
			if err := checkChoice(raw, info.Choices); err != nil {
				return nil, err
			}
		}
		return intake.Text(raw), nil
	}
}

func checkChoice(value string, choices []string) error {
	if slices.Contains(choices, value) {
		return nil
	}
	if suggestion := closest(value, choices, 3); suggestion != "" {
		return fmt.Errorf("invalid value %q, did you mean %q? (valid: %s)", value, suggestion, strings.Join(choices, ", "))
	}
	return fmt.Errorf("invalid value %q (valid: %s)", value, strings.Join(choices, ", "))
}

// ApplyAssignments writes each assignment through the controller in order.
func ApplyAssignments(c *intake.Controller, assignments []Assignment) error {
	for _, a := range assignments {
		if err := c.Update(a.Field, a.Value); err != nil {
			return fmt.Errorf("setting %s: %w", a.Field, err)
		}
	}
	return nil
}

// levenshteinDistance calculates the Levenshtein distance between two strings.
// This is the minimum number of single-character edits (insertions, deletions,
// or substitutions) required to change one string into the other.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
