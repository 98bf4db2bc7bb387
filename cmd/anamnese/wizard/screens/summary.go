package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/anamnese/cmd/anamnese/wizard/components"
	"github.com/mrsinham/anamnese/internal/intake"
	"github.com/mrsinham/anamnese/internal/report"
)

// SummaryAction represents the action selected on the summary screen
type SummaryAction int

const (
	// SummaryActionBack returns to the last section of the form
	SummaryActionBack SummaryAction = iota
	// SummaryActionExport ends the session and prints the summary
	SummaryActionExport
	// SummaryActionCancel exits without printing anything
	SummaryActionCancel
)

const (
	actionBack   = "back"
	actionExport = "export"
	actionCancel = "cancel"
)

// SummaryScreen displays the derived summary and the closing actions
type SummaryScreen struct {
	form      *huh.Form
	summary   intake.Summary
	action    string
	done      bool
	cancelled bool
	width     int
	height    int
}

// NewSummaryScreen creates a new summary screen
func NewSummaryScreen(summary intake.Summary) *SummaryScreen {
	s := &SummaryScreen{
		summary: summary,
		action:  actionExport,
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("action").
				Title("O que deseja fazer?").
				Options(
					huh.NewOption("Exportar Sumário", actionExport),
					huh.NewOption("Voltar ao Formulário", actionBack),
					huh.NewOption("Sair sem exportar", actionCancel),
				).
				Value(&s.action),
		),
	).WithShowHelp(false)

	return s
}

// Init implements tea.Model
func (s *SummaryScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *SummaryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			s.cancelled = true
			return s, tea.Quit
		case "esc":
			// Esc goes back instead of cancelling
			s.action = actionBack
			s.done = true
			return s, nil
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

// View implements tea.Model
func (s *SummaryScreen) View() string {
	if s.cancelled {
		return "Cancelado.\n"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		Progress(intake.LastSection, true, s.width),
		"",
		components.SuccessStyle.Render("✓ "+intake.CompletionNotice),
		"",
		report.View(s.summary),
		"",
		s.form.View(),
		"",
		components.HintStyle.Render("Enter: selecionar ação | Esc: voltar ao formulário"),
	)
}

// Done returns true once an action was chosen
func (s *SummaryScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user cancelled
func (s *SummaryScreen) Cancelled() bool {
	return s.cancelled
}

// Action returns the selected action
func (s *SummaryScreen) Action() SummaryAction {
	switch s.action {
	case actionBack:
		return SummaryActionBack
	case actionCancel:
		return SummaryActionCancel
	default:
		return SummaryActionExport
	}
}

// Summary returns the displayed summary
func (s *SummaryScreen) Summary() intake.Summary {
	return s.summary
}
