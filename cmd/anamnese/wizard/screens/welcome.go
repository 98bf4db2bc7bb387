package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/anamnese/cmd/anamnese/wizard/components"
)

var (
	heroStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 4).
			Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(28)

	cardNumberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63")).
			Bold(true)

	buttonFocusedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("33")).
				Foreground(lipgloss.Color("255")).
				Padding(0, 2).
				Bold(true)
)

var welcomeCards = []struct{ title, text string }{
	{"Informações Pessoais", "Dados básicos e contato para iniciarmos sua avaliação"},
	{"Avaliação de Saúde", "Histórico médico e limitações para treinar com segurança"},
	{"Sumário Personalizado", "Receba um relatório completo com suas informações categorizadas"},
}

// WelcomeScreen is the landing screen shown before the first section.
type WelcomeScreen struct {
	done      bool
	cancelled bool
	width     int
}

// NewWelcomeScreen creates the landing screen
func NewWelcomeScreen() *WelcomeScreen {
	return &WelcomeScreen{}
}

// Init implements tea.Model
func (s *WelcomeScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s *WelcomeScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			s.cancelled = true
			return s, tea.Quit
		case "enter", " ":
			s.done = true
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
	}
	return s, nil
}

// View implements tea.Model
func (s *WelcomeScreen) View() string {
	cards := make([]string, len(welcomeCards))
	for i, c := range welcomeCards {
		cards[i] = cardStyle.Render(cardNumberStyle.Render(string(rune('1'+i))) + "\n" +
			lipgloss.NewStyle().Bold(true).Render(c.title) + "\n" +
			components.HintStyle.Render(c.text))
	}

	var sb strings.Builder
	sb.WriteString(heroStyle.Render("📋 Anamnese Completa"))
	sb.WriteString("\n\n")
	sb.WriteString(components.TitleStyle.Render("Como funciona?"))
	sb.WriteString("\n")
	sb.WriteString(components.SubtitleStyle.Width(84).Render(
		"Complete um questionário detalhado em 6 etapas para que possamos entender seu histórico de saúde, " +
			"nível de experiência e objetivos. Ao final, você receberá um sumário completo que guiará a criação " +
			"da sua ficha de treino personalizada."))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards[0], " ", cards[1], " ", cards[2]))
	sb.WriteString("\n\n")
	sb.WriteString(buttonFocusedStyle.Render("Iniciar Avaliação"))
	sb.WriteString("\n\n")
	sb.WriteString(components.HintStyle.Render("Enter: iniciar | q: sair"))
	return sb.String()
}

// Done returns true once the user started the questionnaire
func (s *WelcomeScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user cancelled
func (s *WelcomeScreen) Cancelled() bool {
	return s.cancelled
}
