package wizard

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/mrsinham/anamnese/internal/intake"
	"github.com/mrsinham/anamnese/internal/util"
)

func TestNewController_CompleteFile(t *testing.T) {
	f, err := ParseYAML([]byte(completeAnswersYAML))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}

	c, err := f.NewController()
	if err != nil {
		t.Fatalf("NewController failed: %v", err)
	}

	if got := c.CurrentState(); got.Section != intake.FirstSection || got.SummaryActive {
		t.Errorf("Expected a fresh session at section 1, got %v", got)
	}

	a := c.Answers()
	if a.Gender != intake.GenderFemale {
		t.Errorf("Expected gender feminino, got %q", a.Gender)
	}
	if a.HeightCm != 163 {
		t.Errorf("Expected height 163 cm, got %v", a.HeightCm)
	}
	if a.WeeklyFrequency != 4 {
		t.Errorf("Expected weekly frequency 4, got %d", a.WeeklyFrequency)
	}
	want := []intake.Goal{intake.GoalConditioning, intake.GoalLoseWeight}
	if len(a.PrimaryGoals) != 2 || a.PrimaryGoals[0] != want[0] || a.PrimaryGoals[1] != want[1] {
		t.Errorf("Expected goals %v, got %v", want, a.PrimaryGoals)
	}

	for _, s := range intake.AllSections() {
		if !intake.ValidateSection(a, s) {
			t.Errorf("Section %v should validate", s)
		}
	}
}

func TestNewController_DefaultsKept(t *testing.T) {
	f, err := ParseYAML([]byte("personal:\n  full_name: Ana\n"))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	c, err := f.NewController()
	if err != nil {
		t.Fatalf("NewController failed: %v", err)
	}

	a := c.Answers()
	if a.WeeklyFrequency != intake.DefaultWeeklyFrequency {
		t.Errorf("Expected default weekly frequency, got %d", a.WeeklyFrequency)
	}
	if a.PainIntensity != 0 {
		t.Errorf("Expected pain intensity 0, got %d", a.PainIntensity)
	}
}

func TestAssignments_InvalidEnum(t *testing.T) {
	f, err := ParseYAML([]byte("activity:\n  experience_level: intermediaro\n"))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}

	_, err = f.Assignments()
	if err == nil {
		t.Fatal("Expected error for invalid experience level")
	}
	msg := err.Error()
	if !strings.Contains(msg, "activity.experience_level") {
		t.Errorf("Expected error to carry the file path, got: %v", msg)
	}
	if !strings.Contains(msg, `did you mean "intermediario"`) {
		t.Errorf("Expected a suggestion, got: %v", msg)
	}
}

func TestAssignments_InvalidGoal(t *testing.T) {
	f := &AnswersFile{Goals: GoalsAnswers{Primary: []string{"emagrecer", "voar"}}}
	if _, err := f.Assignments(); err == nil {
		t.Fatal("Expected error for unknown goal")
	}
}

func TestFromAnswerSet_RoundTrip(t *testing.T) {
	now := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)
	for seed := uint64(1); seed <= 25; seed++ {
		a := util.GenerateAnswers(now, rand.New(rand.NewPCG(seed, seed)))

		data, err := FromAnswerSet(a).ToYAML()
		if err != nil {
			t.Fatalf("seed %d: ToYAML failed: %v", seed, err)
		}
		f, err := ParseYAML(data)
		if err != nil {
			t.Fatalf("seed %d: ParseYAML failed: %v\n%s", seed, err, data)
		}
		c, err := f.NewController()
		if err != nil {
			t.Fatalf("seed %d: NewController failed: %v\n%s", seed, err, data)
		}

		want, err := intake.Derive(a)
		if err != nil {
			t.Fatalf("seed %d: Derive failed: %v", seed, err)
		}
		got, err := intake.Derive(c.Answers())
		if err != nil {
			t.Fatalf("seed %d: Derive of loaded answers failed: %v", seed, err)
		}
		if got.BMI != want.BMI || got.Goals != want.Goals || got.FullName != want.FullName {
			t.Errorf("seed %d: summary changed after round trip: got %+v, want %+v", seed, got.BMI, want.BMI)
		}
	}
}
