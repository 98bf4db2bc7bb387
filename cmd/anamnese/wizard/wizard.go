package wizard

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mrsinham/anamnese/cmd/anamnese/wizard/screens"
	"github.com/mrsinham/anamnese/internal/intake"
)

// Phase represents the current phase/screen of the wizard.
type Phase int

const (
	PhaseWelcome Phase = iota
	PhaseSection
	PhaseSummary
	PhaseError
)

// Wizard is the bubbletea model driving an intake.Controller: one form
// per section, then the summary screen.
type Wizard struct {
	controller *intake.Controller

	// Current phase
	phase Phase

	// Screen instances
	welcomeScreen *screens.WelcomeScreen
	sectionScreen *screens.SectionScreen
	summaryScreen *screens.SummaryScreen
	errorScreen   *screens.ErrorScreen

	// Window size
	width  int
	height int

	// Final state
	cancelled bool
	exported  bool
	summary   intake.Summary
	err       error
}

// NewWizard creates a wizard over c. With skipWelcome the first form is
// shown immediately.
func NewWizard(c *intake.Controller, skipWelcome bool) *Wizard {
	if c == nil {
		c = intake.NewController()
	}

	w := &Wizard{controller: c}
	if skipWelcome {
		w.phase = PhaseSection
		w.sectionScreen = screens.NewSectionScreen(c.CurrentState().Section, c.Answers(), "")
	} else {
		w.phase = PhaseWelcome
		w.welcomeScreen = screens.NewWelcomeScreen()
	}
	return w
}

// Init implements tea.Model.
func (w *Wizard) Init() tea.Cmd {
	if w.phase == PhaseSection {
		return w.sectionScreen.Init()
	}
	return w.welcomeScreen.Init()
}

// Update implements tea.Model.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window size for all phases
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		w.width = wsm.Width
		w.height = wsm.Height
	}

	switch w.phase {
	case PhaseWelcome:
		return w.updateWelcome(msg)
	case PhaseSection:
		return w.updateSection(msg)
	case PhaseSummary:
		return w.updateSummary(msg)
	case PhaseError:
		return w.updateError(msg)
	}

	return w, nil
}

// View implements tea.Model.
func (w *Wizard) View() string {
	switch w.phase {
	case PhaseWelcome:
		return w.welcomeScreen.View()
	case PhaseSection:
		return w.sectionScreen.View()
	case PhaseSummary:
		return w.summaryScreen.View()
	case PhaseError:
		return w.errorScreen.View()
	}

	return ""
}

// sized forwards the last known window size to a freshly built screen.
func (w *Wizard) sized(m tea.Model) {
	if w.width > 0 {
		m.Update(tea.WindowSizeMsg{Width: w.width, Height: w.height})
	}
}

func (w *Wizard) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := w.welcomeScreen.Update(msg)

	if w.welcomeScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.welcomeScreen.Done() {
		return w.transitionToSection("")
	}

	return w, cmd
}

// transitionToSection shows the form of the controller's current section.
func (w *Wizard) transitionToSection(notice string) (tea.Model, tea.Cmd) {
	w.phase = PhaseSection
	w.sectionScreen = screens.NewSectionScreen(w.controller.CurrentState().Section, w.controller.Answers(), notice)
	w.sized(w.sectionScreen)
	return w, w.sectionScreen.Init()
}

// updateSection handles updates while a section form is shown.
func (w *Wizard) updateSection(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.sectionScreen.Update(msg)
	if ss, ok := model.(*screens.SectionScreen); ok {
		w.sectionScreen = ss
	}

	if w.sectionScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.sectionScreen.Back() {
		// Keep what was typed and report what could not be parsed.
		notice := ""
		if err := w.sectionScreen.Apply(w.controller); err != nil {
			notice = err.Error()
		}
		w.controller.Retreat()
		return w.transitionToSection(notice)
	}

	if w.sectionScreen.Done() {
		return w.submitSection()
	}

	return w, cmd
}

// submitSection records the form and asks the controller to advance.
func (w *Wizard) submitSection() (tea.Model, tea.Cmd) {
	if err := w.sectionScreen.Apply(w.controller); err != nil {
		return w.transitionToSection(err.Error())
	}

	state, err := w.controller.Advance()
	if err != nil {
		return w.transitionToSection(rejectionNotice(err))
	}
	if state.SummaryActive {
		return w.transitionToSummary()
	}
	return w.transitionToSection("")
}

// rejectionNotice names the missing fields after the fixed message.
func rejectionNotice(err error) string {
	var verr *intake.ValidationError
	if !errors.As(err, &verr) {
		return err.Error()
	}

	labels := make([]string, 0, len(verr.Missing))
	for _, id := range verr.Missing {
		if spec, ok := intake.LookupField(id); ok {
			labels = append(labels, spec.Label)
		}
	}
	if len(labels) == 0 {
		return verr.Error()
	}
	return fmt.Sprintf("%s\nPendentes: %s", verr.Error(), strings.Join(labels, ", "))
}

// transitionToSummary moves to the summary screen.
func (w *Wizard) transitionToSummary() (tea.Model, tea.Cmd) {
	summary, err := w.controller.DeriveSummary()
	if err != nil {
		w.phase = PhaseError
		w.errorScreen = screens.NewErrorScreen(err)
		w.sized(w.errorScreen)
		return w, w.errorScreen.Init()
	}

	w.phase = PhaseSummary
	w.summary = summary
	w.summaryScreen = screens.NewSummaryScreen(summary)
	w.sized(w.summaryScreen)
	return w, w.summaryScreen.Init()
}

// updateSummary handles updates in the summary phase.
func (w *Wizard) updateSummary(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.summaryScreen.Update(msg)
	if ss, ok := model.(*screens.SummaryScreen); ok {
		w.summaryScreen = ss
	}

	if w.summaryScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.summaryScreen.Done() {
		switch w.summaryScreen.Action() {
		case screens.SummaryActionBack:
			w.controller.ReturnToLastSection()
			return w.transitionToSection("")

		case screens.SummaryActionExport:
			w.exported = true
			return w, tea.Quit

		case screens.SummaryActionCancel:
			w.cancelled = true
			return w, tea.Quit
		}
	}

	return w, cmd
}

// updateError handles updates in the error phase.
func (w *Wizard) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.errorScreen.Update(msg)
	if es, ok := model.(*screens.ErrorScreen); ok {
		w.errorScreen = es
	}

	if w.errorScreen.Done() {
		w.err = w.errorScreen.Err()
		return w, tea.Quit
	}

	return w, cmd
}

// Phase returns the current phase.
func (w *Wizard) Phase() Phase {
	return w.phase
}

// Controller returns the controller the wizard drives.
func (w *Wizard) Controller() *intake.Controller {
	return w.controller
}

// Result is the outcome of a finished wizard session.
type Result struct {
	// Exported is true when the user chose "Exportar Sumário".
	Exported  bool
	Cancelled bool
	Summary   intake.Summary
	Answers   intake.AnswerSet
}

// Result reports how the session ended.
func (w *Wizard) Result() (Result, error) {
	return Result{
		Exported:  w.exported,
		Cancelled: w.cancelled,
		Summary:   w.summary,
		Answers:   w.controller.Answers(),
	}, w.err
}

// RunOptions configures Run.
type RunOptions struct {
	// Answers pre-fills the forms; nil starts from the defaults.
	Answers   *AnswersFile
	Observer  intake.Observer
	AltScreen bool
	// SkipWelcome opens the first section directly.
	SkipWelcome bool
}

// Run starts the interactive questionnaire and blocks until it ends.
func Run(opts RunOptions) (Result, error) {
	controllerOpts := []intake.Option{intake.WithObserver(opts.Observer)}

	var c *intake.Controller
	if opts.Answers != nil {
		loaded, err := opts.Answers.NewController(controllerOpts...)
		if err != nil {
			return Result{}, fmt.Errorf("loading answers: %w", err)
		}
		c = loaded
	} else {
		c = intake.NewController(controllerOpts...)
	}

	var programOpts []tea.ProgramOption
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	w := NewWizard(c, opts.SkipWelcome)
	p := tea.NewProgram(w, programOpts...)

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("running wizard: %w", err)
	}

	if fw, ok := finalModel.(*Wizard); ok {
		return fw.Result()
	}
	return Result{}, nil
}
