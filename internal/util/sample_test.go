package util

import (
	"math/rand/v2"
	"reflect"
	"testing"
	"time"

	"github.com/mrsinham/anamnese/internal/intake"
)

var sampleNow = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func TestGenerateAnswers_AlwaysValid(t *testing.T) {
	for seed := uint64(0); seed < 200; seed++ {
		a := GenerateAnswers(sampleNow, rand.New(rand.NewPCG(seed, seed)))

		for _, s := range intake.AllSections() {
			if !intake.ValidateSection(a, s) {
				t.Fatalf("seed %d: section %v invalid, missing %v", seed, s, intake.MissingFields(a, s))
			}
		}
		if a.PainIntensity < intake.MinPainIntensity || a.PainIntensity > intake.MaxPainIntensity {
			t.Errorf("seed %d: pain intensity %d out of range", seed, a.PainIntensity)
		}
		if a.WeeklyFrequency < intake.MinWeeklyFrequency || a.WeeklyFrequency > intake.MaxWeeklyFrequency {
			t.Errorf("seed %d: weekly frequency %d out of range", seed, a.WeeklyFrequency)
		}
		if !a.IsActive() && (a.ActivityType != "" || a.ActivityDuration != "") {
			t.Errorf("seed %d: inactive respondent has activity details", seed)
		}
		if _, err := intake.Derive(a); err != nil {
			t.Errorf("seed %d: Derive returned error: %v", seed, err)
		}
	}
}

func TestGenerateAnswers_Reproducible(t *testing.T) {
	a := GenerateAnswers(sampleNow, rand.New(rand.NewPCG(42, 42)))
	b := GenerateAnswers(sampleNow, rand.New(rand.NewPCG(42, 42)))
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different answers:\n%+v\n%+v", a, b)
	}
}

func TestGenerateAnswers_NoPregnancyForMen(t *testing.T) {
	for seed := uint64(0); seed < 100; seed++ {
		a := GenerateAnswers(sampleNow, rand.New(rand.NewPCG(seed, 1)))
		if a.Gender == intake.GenderMale && a.PregnantOrNursing != intake.Unset {
			t.Errorf("seed %d: male respondent has pregnancy answer %q", seed, a.PregnantOrNursing)
		}
	}
}

func TestGenerateMeasurements_BMIRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(8, 8))
	for i := 0; i < 500; i++ {
		h, w, d := generateMeasurements(intake.GenderOther, rng)
		if h < 145 || h > 205 {
			t.Fatalf("height %v out of range", h)
		}
		if d <= 0 {
			t.Fatalf("desired weight %v not positive", d)
		}
		bmi, err := intake.ComputeBMI(h, w)
		if err != nil {
			t.Fatal(err)
		}
		if bmi < 16.9 || bmi > 38.1 {
			t.Errorf("bmi %.2f outside 17-38 for %vcm %vkg", bmi, h, w)
		}
	}
}
