package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/anamnese/cmd/anamnese/wizard/components"
	"github.com/mrsinham/anamnese/internal/intake"
)

// KeyMap holds the bindings handled around the huh form.
type KeyMap struct {
	Previous key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the section screen bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Previous: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "seção anterior")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "sair")),
	}
}

var sectionSubtitles = map[intake.Section]string{
	intake.SectionPersonal:     "Forneça suas informações básicas para iniciarmos a anamnese",
	intake.SectionHealth:       "Informações importantes para garantir sua segurança",
	intake.SectionActivity:     "Conte-nos sobre seu nível de atividade e preferências",
	intake.SectionGoals:        "Defina suas metas e motivações para treinar",
	intake.SectionLifestyle:    "Informações sobre sua rotina diária, sono e nutrição",
	intake.SectionMeasurements: "Informações para cálculo de IMC e acompanhamento",
}

// sectionHeadings are the form headings; the progress bar uses the
// shorter intake.Section titles.
var sectionHeadings = map[intake.Section]string{
	intake.SectionPersonal:     "Dados Pessoais",
	intake.SectionHealth:       "Saúde e Histórico Médico",
	intake.SectionActivity:     "Atividade Física",
	intake.SectionGoals:        "Objetivos",
	intake.SectionLifestyle:    "Estilo de Vida",
	intake.SectionMeasurements: "Medidas Corporais",
}

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// SectionScreen is the form of one questionnaire section.
type SectionScreen struct {
	section   intake.Section
	form      *huh.Form
	values    *values
	helpPanel *components.HelpPanel
	keys      KeyMap
	notice    string
	width     int
	height    int
	done      bool
	back      bool
	cancelled bool
}

// NewSectionScreen builds the form of section pre-filled with answers.
// A non-empty notice is shown under the form, typically the reason the
// previous submission was rejected.
func NewSectionScreen(section intake.Section, answers intake.AnswerSet, notice string) *SectionScreen {
	s := &SectionScreen{
		section:   section,
		values:    newValues(answers),
		helpPanel: components.NewHelpPanel(),
		keys:      DefaultKeyMap(),
		notice:    notice,
	}

	s.form = huh.NewForm(s.groups()...).
		WithShowHelp(false).
		WithShowErrors(true)

	return s
}

func (s *SectionScreen) groups() []*huh.Group {
	v := s.values
	switch s.section {
	case intake.SectionPersonal:
		return []*huh.Group{
			huh.NewGroup(
				input(intake.FieldFullName, &v.fullName, ""),
				input(intake.FieldBirthDate, &v.birthDate, "AAAA-MM-DD").Validate(validateDate),
				input(intake.FieldEmail, &v.email, "seu@email.com"),
				input(intake.FieldPhone, &v.phone, "(11) 98765-4321"),
				selectField(intake.FieldGender, &v.gender, intake.AllGenders()),
			),
		}

	case intake.SectionHealth:
		return []*huh.Group{
			huh.NewGroup(
				input(intake.FieldChronicConditions, &v.chronicConditions, "Ex: hipertensão, diabetes, asma"),
				input(intake.FieldMedications, &v.medications, ""),
				input(intake.FieldInjuries, &v.injuries, ""),
				input(intake.FieldSurgeries, &v.surgeries, ""),
			),
			huh.NewGroup(
				input(intake.FieldPainAreas, &v.painAreas, "Ex: lombar, joelho, ombro"),
				input(intake.FieldPainIntensity, &v.painIntensity, "0").
					Validate(validatePain).
					CharLimit(2),
				input(intake.FieldAllergies, &v.allergies, ""),
				yesNoSelect(intake.FieldPregnantOrNursing, &v.pregnantOrNursing, intake.No, intake.Yes),
				input(intake.FieldSmokingHistory, &v.smokingHistory, ""),
				input(intake.FieldAlcoholConsumption, &v.alcoholConsumption, ""),
			),
		}

	case intake.SectionActivity:
		return []*huh.Group{
			huh.NewGroup(
				yesNoSelect(intake.FieldCurrentlyActive, &v.currentlyActive, intake.Yes, intake.No),
			),
			huh.NewGroup(
				input(intake.FieldActivityType, &v.activityType, "Ex: musculação, corrida, yoga"),
				selectField(intake.FieldActivityDuration, &v.activityDuration, intake.AllActivityDurations()),
			).WithHideFunc(func() bool { return v.currentlyActive != intake.Yes }),
			huh.NewGroup(
				selectField(intake.FieldExperienceLevel, &v.experienceLevel, intake.AllExperienceLevels()),
				frequencySelect(&v.weeklyFrequency),
				selectField(intake.FieldTrainingLocation, &v.trainingLocation, intake.AllTrainingLocations()),
			),
		}

	case intake.SectionGoals:
		options := make([]huh.Option[intake.Goal], 0, len(intake.AllGoals()))
		for _, g := range intake.AllGoals() {
			options = append(options, huh.NewOption(g.Label(), g).Selected(containsGoal(v.goals, g)))
		}
		return []*huh.Group{
			huh.NewGroup(
				huh.NewMultiSelect[intake.Goal]().
					Key(string(intake.FieldPrimaryGoals)).
					Title(title(intake.FieldPrimaryGoals)).
					Options(options...).
					Value(&v.goals),
				selectField(intake.FieldTimeframe, &v.timeframe, intake.AllTimeframes()),
				huh.NewText().
					Key(string(intake.FieldMotivation)).
					Title(title(intake.FieldMotivation)).
					Lines(3).
					Value(&v.motivation),
			),
		}

	case intake.SectionLifestyle:
		return []*huh.Group{
			huh.NewGroup(
				huh.NewText().
					Key(string(intake.FieldDailyRoutine)).
					Title(title(intake.FieldDailyRoutine)).
					Placeholder("Descreva sua rotina de trabalho, horários, etc.").
					Lines(3).
					Value(&v.dailyRoutine),
				input(intake.FieldSleepHours, &v.sleepHours, "Ex: 7").Validate(validateSleep),
				selectField(intake.FieldNutritionQuality, &v.nutritionQuality, intake.AllNutritionQualities()),
				input(intake.FieldHomeEquipment, &v.homeEquipment, "Ex: halteres, elásticos, tapete"),
			),
		}

	case intake.SectionMeasurements:
		return []*huh.Group{
			huh.NewGroup(
				huh.NewInput().
					Key(string(intake.FieldHeight)).
					Title("Altura (m) *").
					Description("Em metros (ex: 1.75)").
					Value(&v.height).
					Validate(validateHeight),
				input(intake.FieldCurrentWeight, &v.currentWeight, "Ex: 75").Validate(validateKg),
				input(intake.FieldDesiredWeight, &v.desiredWeight, "Ex: 70").Validate(validateKg),
			),
		}
	}
	return nil
}

// title returns the field label, starred when the field is required.
func title(id intake.FieldID) string {
	spec, _ := intake.LookupField(id)
	if spec.Required {
		return spec.Label + " *"
	}
	return spec.Label
}

func input(id intake.FieldID, value *string, placeholder string) *huh.Input {
	return huh.NewInput().
		Key(string(id)).
		Title(title(id)).
		Placeholder(placeholder).
		Value(value)
}

type labelled interface {
	~string
	Label() string
}

// selectField offers "Selecione..." followed by every member of the
// enumeration, so an unanswered field stays unanswered.
func selectField[T labelled](id intake.FieldID, value *T, all []T) *huh.Select[T] {
	options := []huh.Option[T]{huh.NewOption("Selecione...", T(""))}
	for _, o := range all {
		options = append(options, huh.NewOption(o.Label(), o))
	}
	return huh.NewSelect[T]().
		Key(string(id)).
		Title(title(id)).
		Options(options...).
		Value(value)
}

func yesNoSelect(id intake.FieldID, value *intake.YesNo, order ...intake.YesNo) *huh.Select[intake.YesNo] {
	return selectField(id, value, order)
}

func frequencySelect(value *int) *huh.Select[int] {
	options := make([]huh.Option[int], 0, intake.MaxWeeklyFrequency)
	for n := intake.MinWeeklyFrequency; n <= intake.MaxWeeklyFrequency; n++ {
		options = append(options, huh.NewOption(fmt.Sprintf("%dx/semana", n), n))
	}
	return huh.NewSelect[int]().
		Key(string(intake.FieldWeeklyFrequency)).
		Title(title(intake.FieldWeeklyFrequency)).
		Options(options...).
		Value(value)
}

// Init implements tea.Model
func (s *SectionScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *SectionScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keys.Quit):
			s.cancelled = true
			return s, tea.Quit
		case key.Matches(msg, s.keys.Previous):
			s.back = true
			return s, nil
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.helpPanel.SetWidth(msg.Width / 3)
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	if focused := s.form.GetFocusedField(); focused != nil {
		s.helpPanel.SetField(focused.GetKey())
	}

	return s, cmd
}

// View implements tea.Model
func (s *SectionScreen) View() string {
	if s.cancelled {
		return "Cancelado.\n"
	}

	heading := components.TitleStyle.Render(fmt.Sprintf("Seção %d de %d: %s",
		int(s.section), intake.NumSections, sectionHeadings[s.section]))
	subtitle := components.SubtitleStyle.Render(sectionSubtitles[s.section])

	body := lipgloss.JoinHorizontal(lipgloss.Top, s.form.View(), "  ", s.helpPanel.View())

	parts := []string{Progress(s.section, false, s.width), "", heading, subtitle, body}
	if s.notice != "" {
		parts = append(parts, "", components.ErrorStyle.Render(s.notice))
	}
	parts = append(parts, "", s.footer())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *SectionScreen) footer() string {
	hints := []string{"enter: próximo campo"}
	switch s.section {
	case intake.SectionGoals:
		hints = append(hints, "espaço: marcar objetivo")
	case intake.LastSection:
		hints = append(hints, "enter no último campo: ✓ Gerar Resumo")
	}

	bindings := []key.Binding{s.keys.Previous, s.keys.Quit}
	if s.section == intake.FirstSection {
		bindings = bindings[1:]
	}
	for _, b := range bindings {
		hints = append(hints, b.Help().Key+": "+b.Help().Desc)
	}
	return footerStyle.Render(strings.Join(hints, " | "))
}

// Apply writes the form values into r. Fields that fail to parse are
// skipped and the first such error is returned.
func (s *SectionScreen) Apply(r Recorder) error {
	return s.values.apply(s.section, r)
}

// Section returns the section the screen edits.
func (s *SectionScreen) Section() intake.Section {
	return s.section
}

// Done returns true once the form has been submitted.
func (s *SectionScreen) Done() bool {
	return s.done
}

// Back returns true when the user asked for the previous section.
func (s *SectionScreen) Back() bool {
	return s.back
}

// Cancelled returns true if the user cancelled
func (s *SectionScreen) Cancelled() bool {
	return s.cancelled
}

// Notice returns the message shown under the form.
func (s *SectionScreen) Notice() string {
	return s.notice
}
