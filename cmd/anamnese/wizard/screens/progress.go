package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/anamnese/cmd/anamnese/wizard/components"
	"github.com/mrsinham/anamnese/internal/intake"
)

var (
	progressBarStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("63"))

	progressBarEmptyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	stepActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63")).
			Bold(true)

	stepCompletedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42"))

	stepPendingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))
)

// Progress renders the six-step indicator followed by a bar. Sections
// before current are completed; in summary mode all six are.
func Progress(current intake.Section, summary bool, width int) string {
	steps := make([]string, 0, intake.NumSections)
	completed := 0
	for _, s := range intake.AllSections() {
		label := fmt.Sprintf("%d %s", int(s), s.Title())
		switch {
		case summary || s < current:
			completed++
			steps = append(steps, stepCompletedStyle.Render("✓ "+label))
		case s == current:
			steps = append(steps, stepActiveStyle.Render("● "+label))
		default:
			steps = append(steps, stepPendingStyle.Render("○ "+label))
		}
	}

	barWidth := 36
	if width > 80 {
		barWidth = min(width/2, 60)
	}
	percent := float64(completed) / float64(intake.NumSections) * 100

	return strings.Join(steps, "  ") + "\n" + renderProgressBar(percent, barWidth) +
		stepPendingStyle.Render(fmt.Sprintf(" %d/%d", completed, intake.NumSections))
}

// renderProgressBar creates a visual progress bar
func renderProgressBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	empty := width - filled

	bar := progressBarStyle.Render("[" + strings.Repeat("█", filled))
	bar += progressBarEmptyStyle.Render(strings.Repeat("░", empty) + "]")

	return bar
}

// ErrorScreen displays an error that ends the session
type ErrorScreen struct {
	err    error
	done   bool
	width  int
	height int
}

var (
	errorTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	errorMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	errorHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)
)

// NewErrorScreen creates a new error screen
func NewErrorScreen(err error) *ErrorScreen {
	return &ErrorScreen{err: err}
}

// Init implements tea.Model
func (s *ErrorScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s *ErrorScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "enter", "q":
			s.done = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	}

	return s, nil
}

// View implements tea.Model
func (s *ErrorScreen) View() string {
	var sb strings.Builder

	sb.WriteString(errorTitleStyle.Render("✗ Não foi possível gerar o sumário"))
	sb.WriteString("\n\n")
	sb.WriteString(components.TitleStyle.Render("Erro:"))
	sb.WriteString("\n")
	if s.err != nil {
		sb.WriteString(errorMessageStyle.Render(s.err.Error()))
	}
	sb.WriteString("\n\n")
	sb.WriteString(errorHintStyle.Render("Pressione Enter para sair"))

	return sb.String()
}

// Done returns true once the error has been acknowledged
func (s *ErrorScreen) Done() bool {
	return s.done
}

// Err returns the displayed error
func (s *ErrorScreen) Err() error {
	return s.err
}
