package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrsinham/anamnese/internal/intake"
	"github.com/mrsinham/anamnese/internal/teatest"
)

// maxPresses bounds every Enter loop; the longest walk through all six
// sections takes well under this.
const maxPresses = 200

func completeController(t *testing.T) *intake.Controller {
	t.Helper()
	f, err := ParseYAML([]byte(completeAnswersYAML))
	require.NoError(t, err)
	c, err := f.NewController()
	require.NoError(t, err)
	return c
}

func newDriver(t *testing.T, w *Wizard) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, w, teatest.WithSize(160, 50))
	d.DrainInit()
	return d
}

func section(w *Wizard) intake.Section {
	return w.Controller().CurrentState().Section
}

func TestWizard_WelcomeStarts(t *testing.T) {
	w := NewWizard(nil, false)
	d := newDriver(t, w)

	assert.Equal(t, PhaseWelcome, w.Phase())
	assert.Contains(t, d.View(), "Iniciar Avaliação")

	d.PressEnter()
	assert.Equal(t, PhaseSection, w.Phase())
	assert.Contains(t, d.View(), "Seção 1 de 6")
}

func TestWizard_WelcomeQuit(t *testing.T) {
	w := NewWizard(nil, false)
	d := newDriver(t, w)

	d.PressKey('q')
	assert.True(t, d.Quitting)
	res, err := w.Result()
	require.NoError(t, err)
	assert.True(t, res.Cancelled)
	assert.False(t, res.Exported)
}

func TestWizard_CompleteWalkthroughExports(t *testing.T) {
	w := NewWizard(completeController(t), true)
	d := newDriver(t, w)

	reached := d.EnterUntil(func() bool { return w.Phase() == PhaseSummary }, maxPresses)
	require.True(t, reached, "summary never reached; stuck at %v", w.Controller().CurrentState())

	state := w.Controller().CurrentState()
	assert.Equal(t, intake.LastSection, state.Section)
	assert.True(t, state.SummaryActive)

	view := d.View()
	assert.Contains(t, view, intake.CompletionNotice)
	assert.Contains(t, view, "Ana Souza")
	assert.Contains(t, view, "22.0")

	// "Exportar Sumário" is the default action.
	d.PressEnter()
	assert.True(t, d.Quitting)

	res, err := w.Result()
	require.NoError(t, err)
	assert.True(t, res.Exported)
	assert.Equal(t, "Ana Souza", res.Summary.FullName)
	assert.Equal(t, intake.BMINormal, res.Summary.BMI.Category)
	assert.Equal(t, "CONDICIONAMENTO / EMAGRECER", res.Summary.Goals)
}

func TestWizard_EmptySectionRejected(t *testing.T) {
	w := NewWizard(nil, true)
	d := newDriver(t, w)

	rejected := d.EnterUntil(func() bool { return w.sectionScreen.Notice() != "" }, 20)
	require.True(t, rejected)

	assert.Equal(t, PhaseSection, w.Phase())
	assert.Equal(t, intake.SectionPersonal, section(w))
	assert.Contains(t, w.sectionScreen.Notice(), intake.RequiredFieldsMessage)
	assert.Contains(t, w.sectionScreen.Notice(), "Nome Completo")
	assert.Contains(t, d.View(), intake.RequiredFieldsMessage)
}

func TestWizard_TypedValuesReachController(t *testing.T) {
	w := NewWizard(nil, true)
	d := newDriver(t, w)

	d.Type("Ana Souza")
	// ctrl+p records the form before retreating; section 1 stays put.
	d.PressCtrlP()

	assert.Equal(t, intake.SectionPersonal, section(w))
	assert.Equal(t, "Ana Souza", w.Controller().Answers().FullName)
	assert.Contains(t, d.View(), "Ana Souza")
}

func TestWizard_PreviousSection(t *testing.T) {
	w := NewWizard(completeController(t), true)
	d := newDriver(t, w)

	require.True(t, d.EnterUntil(func() bool { return section(w) == intake.SectionActivity }, maxPresses))

	d.PressCtrlP()
	assert.Equal(t, intake.SectionHealth, section(w))
	assert.Contains(t, d.View(), "Seção 2 de 6")

	d.PressCtrlP()
	d.PressCtrlP()
	assert.Equal(t, intake.SectionPersonal, section(w))
}

func TestWizard_SummaryBackReturnsToLastSection(t *testing.T) {
	w := NewWizard(completeController(t), true)
	d := newDriver(t, w)

	require.True(t, d.EnterUntil(func() bool { return w.Phase() == PhaseSummary }, maxPresses))

	d.PressEsc()
	assert.Equal(t, PhaseSection, w.Phase())
	assert.Equal(t, intake.State{Section: intake.LastSection}, w.Controller().CurrentState())

	// Submitting the last section again re-enters the summary.
	require.True(t, d.EnterUntil(func() bool { return w.Phase() == PhaseSummary }, maxPresses))
	assert.True(t, w.Controller().CurrentState().SummaryActive)
}

func TestWizard_SummaryCancel(t *testing.T) {
	w := NewWizard(completeController(t), true)
	d := newDriver(t, w)

	require.True(t, d.EnterUntil(func() bool { return w.Phase() == PhaseSummary }, maxPresses))

	// Options: export, back, cancel.
	d.PressDown()
	d.PressDown()
	d.PressEnter()

	assert.True(t, d.Quitting)
	res, err := w.Result()
	require.NoError(t, err)
	assert.True(t, res.Cancelled)
	assert.False(t, res.Exported)
}

func TestWizard_CtrlCCancels(t *testing.T) {
	w := NewWizard(completeController(t), true)
	d := newDriver(t, w)

	d.PressCtrlC()
	assert.True(t, d.Quitting)
	res, err := w.Result()
	require.NoError(t, err)
	assert.True(t, res.Cancelled)
}

func TestRejectionNotice(t *testing.T) {
	err := &intake.ValidationError{
		Section: intake.SectionMeasurements,
		Missing: []intake.FieldID{intake.FieldHeight, intake.FieldDesiredWeight},
	}
	got := rejectionNotice(err)
	assert.Contains(t, got, intake.RequiredFieldsMessage)
	assert.Contains(t, got, "Pendentes: Altura (cm), Peso Desejado (kg)")

	assert.Equal(t, intake.RequiredFieldsMessage, rejectionNotice(&intake.ValidationError{}))
}

func TestWizard_PreviousSectionReportsUnparsedValue(t *testing.T) {
	w := NewWizard(completeController(t), true)
	d := newDriver(t, w)

	require.True(t, d.EnterUntil(func() bool { return section(w) == intake.SectionMeasurements }, maxPresses))

	d.Type("x")
	d.PressCtrlP()

	assert.Equal(t, intake.SectionLifestyle, section(w))
	assert.Contains(t, w.sectionScreen.Notice(), "height")
	assert.Contains(t, d.View(), "invalid height")
	assert.Equal(t, 163.0, w.Controller().Answers().HeightCm, "unparsed height is not recorded")
}
