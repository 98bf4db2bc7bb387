package screens

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/mrsinham/anamnese/internal/intake"
)

func TestProgress_MarksSteps(t *testing.T) {
	out := Progress(intake.SectionActivity, false, 0)
	assert.Contains(t, out, "✓ 1 Dados Pessoais")
	assert.Contains(t, out, "✓ 2 Saúde")
	assert.Contains(t, out, "● 3 Atividade Física")
	assert.Contains(t, out, "○ 6 Medidas")
	assert.Contains(t, out, "2/6")
}

func TestProgress_SummaryCompletesAll(t *testing.T) {
	out := Progress(intake.LastSection, true, 0)
	assert.Equal(t, 6, strings.Count(out, "✓"))
	assert.Contains(t, out, "6/6")
}

func TestRenderProgressBar(t *testing.T) {
	bar := renderProgressBar(50, 10)
	assert.Equal(t, 5, strings.Count(bar, "█"))
	assert.Equal(t, 5, strings.Count(bar, "░"))

	bar = renderProgressBar(150, 10)
	assert.Equal(t, 10, strings.Count(bar, "█"))
}

func TestErrorScreen(t *testing.T) {
	s := NewErrorScreen(errors.New("invalid-measurement: height = 0"))
	assert.Contains(t, s.View(), "invalid-measurement")

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, s.Done())
	assert.NotNil(t, cmd)
}

func TestSectionScreen_Headings(t *testing.T) {
	for _, sec := range intake.AllSections() {
		s := NewSectionScreen(sec, intake.NewAnswerSet(), "")
		view := s.View()
		assert.Contains(t, view, sectionHeadings[sec], "section %v", sec)
		assert.Contains(t, view, sectionSubtitles[sec], "section %v", sec)
	}
}

func TestSectionScreen_FooterHidesPreviousOnFirst(t *testing.T) {
	first := NewSectionScreen(intake.FirstSection, intake.NewAnswerSet(), "")
	assert.NotContains(t, first.footer(), "seção anterior")

	second := NewSectionScreen(intake.SectionHealth, intake.NewAnswerSet(), "")
	assert.Contains(t, second.footer(), "ctrl+p: seção anterior")
}
