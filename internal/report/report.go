// Package report renders a derived intake summary for the terminal or as
// YAML and JSON documents.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/mrsinham/anamnese/internal/intake"
)

// Format is an output format of the summary.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats returns the supported formats, text first.
func Formats() []Format {
	return []Format{FormatText, FormatYAML, FormatJSON}
}

// ParseFormat accepts a format name in any case; "yml" is an alias of yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w %q (valid: text, yaml, json)", ErrUnknownFormat, s)
}

// Render writes s to w in format f.
func Render(w io.Writer, s intake.Summary, f Format) error {
	switch f {
	case FormatText:
		_, err := io.WriteString(w, newStyles(lipgloss.NewRenderer(w)).summary(s)+"\n")
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, string(f))
	}
}

// View renders the text summary with the default lipgloss renderer, for
// embedding in a TUI screen.
func View(s intake.Summary) string {
	return newStyles(lipgloss.DefaultRenderer()).summary(s)
}

// Title and subtitle of the text summary.
const (
	Title    = "Sumário da Avaliação"
	Subtitle = "Análise completa do seu perfil para criação do treino."
)

// Block titles of the text summary, in display order.
const (
	BlockProfile      = "Perfil Geral"
	BlockLimitations  = "Limitações e Cuidados"
	BlockMeasurements = "Medidas Corporais"
	BlockLifestyle    = "Estilo de Vida"
)

type styles struct {
	title    lipgloss.Style
	subtitle lipgloss.Style
	panel    lipgloss.Style
	heading  lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	muted    lipgloss.Style
	bmi      map[intake.BMICategory]lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	badge := func(color string) lipgloss.Style {
		return r.NewStyle().Bold(true).Padding(0, 1).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color(color))
	}
	return styles{
		title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		subtitle: r.NewStyle().Foreground(lipgloss.Color("244")),
		panel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2),
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		label:   r.NewStyle().Foreground(lipgloss.Color("244")),
		value:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		muted:   r.NewStyle().Italic(true).Foreground(lipgloss.Color("244")),
		bmi: map[intake.BMICategory]lipgloss.Style{
			intake.BMIUnderweight: badge("33"),
			intake.BMINormal:      badge("34"),
			intake.BMIOverweight:  badge("214"),
			intake.BMIObese:       badge("196"),
		},
	}
}

func (st styles) summary(s intake.Summary) string {
	limitations := make([]intake.Item, len(s.Limitations))
	for i, l := range s.Limitations {
		limitations[i] = intake.Item(l)
	}

	limitationBody := st.muted.Render(intake.NoLimitationsNotice)
	if len(limitations) > 0 {
		limitationBody = st.items(limitations, nil)
	}

	// The BMI line gets the category badge instead of the plain label.
	bmiLabel := ""
	if n := len(s.Measurements); n > 0 {
		bmiLabel = s.Measurements[n-1].Label
	}
	bmiValue := func(it intake.Item) string {
		if it.Label != bmiLabel {
			return st.value.Render(it.Value)
		}
		return st.value.Render(fmt.Sprintf("%.1f", s.BMI.Value)) + " " + st.bmi[s.BMI.Category].Render(s.BMI.Label)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		st.title.Render(Title),
		st.subtitle.Render(Subtitle),
		"",
		st.block(BlockProfile, st.items(s.Profile(), nil)),
		st.block(BlockLimitations, limitationBody),
		st.block(BlockMeasurements, st.items(s.Measurements, bmiValue)),
		st.block(BlockLifestyle, st.items(s.Lifestyle, nil)),
	)
}

func (st styles) block(title, body string) string {
	return st.panel.Render(st.heading.Render(title) + "\n\n" + body)
}

// items lays out label/value pairs with the labels padded to one column.
func (st styles) items(items []intake.Item, render func(intake.Item) string) string {
	width := 0
	for _, it := range items {
		width = max(width, lipgloss.Width(it.Label))
	}

	lines := make([]string, len(items))
	for i, it := range items {
		pad := strings.Repeat(" ", width-lipgloss.Width(it.Label))
		value := st.value.Render(it.Value)
		if render != nil {
			value = render(it)
		}
		lines[i] = st.label.Render(it.Label) + pad + "  " + value
	}
	return strings.Join(lines, "\n")
}
