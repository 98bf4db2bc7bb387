package intake

import "fmt"

// Section is one of the six fixed question groups, numbered from 1.
type Section int

const (
	SectionPersonal Section = iota + 1
	SectionHealth
	SectionActivity
	SectionGoals
	SectionLifestyle
	SectionMeasurements
)

const (
	// FirstSection is where every session starts.
	FirstSection = SectionPersonal
	// LastSection is the section whose completion enters summary mode.
	LastSection = SectionMeasurements
	// NumSections is the number of sections in the wizard.
	NumSections = int(LastSection)
)

var sectionTitles = [...]string{
	SectionPersonal:     "Dados Pessoais",
	SectionHealth:       "Saúde",
	SectionActivity:     "Atividade Física",
	SectionGoals:        "Objetivos",
	SectionLifestyle:    "Estilo de Vida",
	SectionMeasurements: "Medidas",
}

// AllSections returns the sections in wizard order.
func AllSections() []Section {
	return []Section{SectionPersonal, SectionHealth, SectionActivity, SectionGoals, SectionLifestyle, SectionMeasurements}
}

// Valid reports whether s is within 1..6.
func (s Section) Valid() bool {
	return s >= FirstSection && s <= LastSection
}

// Title returns the section title shown in the progress bar.
func (s Section) Title() string {
	if !s.Valid() {
		return fmt.Sprintf("Seção %d", int(s))
	}
	return sectionTitles[s]
}

// String implements fmt.Stringer.
func (s Section) String() string {
	return fmt.Sprintf("%d/%d %s", int(s), NumSections, s.Title())
}
