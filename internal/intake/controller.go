package intake

import (
	"slices"

	"github.com/google/uuid"
)

// State is a read-only snapshot of the wizard position.
type State struct {
	Section       Section
	SummaryActive bool
}

// String implements fmt.Stringer.
func (s State) String() string {
	if s.SummaryActive {
		return "summary"
	}
	return s.Section.String()
}

// Option configures a Controller.
type Option func(*Controller)

// WithObserver routes navigation events to obs.
func WithObserver(obs Observer) Option {
	return func(c *Controller) {
		if obs != nil {
			c.observer = obs
		}
	}
}

// WithAnswers starts the session from a pre-filled answer set instead of
// the defaults. The wizard still starts at section 1.
func WithAnswers(a AnswerSet) Option {
	return func(c *Controller) {
		c.answers = a.Clone()
	}
}

// Controller owns the answers and navigation state of one session.
// It is not safe for concurrent use; a session is driven by one event loop.
type Controller struct {
	id       string
	answers  AnswerSet
	state    State
	observer Observer
}

// NewController creates a session at section 1 with default answers.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		id:       uuid.NewString(),
		answers:  NewAnswerSet(),
		state:    State{Section: FirstSection},
		observer: NoopObserver{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID returns the session identifier used in log lines.
func (c *Controller) ID() string { return c.id }

// Update writes value into field. The value is not checked for content;
// an error means field is unknown or value has the wrong kind, and the
// answers are left unchanged.
func (c *Controller) Update(field FieldID, value FieldValue) error {
	return c.answers.Set(field, value)
}

// ToggleGoal adds goal to the selection, or removes it if present.
func (c *Controller) ToggleGoal(goal Goal) {
	c.answers.ToggleGoal(goal)
}

// Validate reports whether section has all its required fields.
func (c *Controller) Validate(section Section) bool {
	return ValidateSection(c.answers, section)
}

// Advance moves to the next section, or into summary mode from the last
// one. While the summary is active, the last section is validated again
// and summary mode is entered again. On failure the state is unchanged
// and a *ValidationError is returned.
func (c *Controller) Advance() (State, error) {
	from := c.state
	section := from.Section

	if missing := MissingFields(c.answers, section); len(missing) > 0 {
		c.notify(TransitionRejected, from, missing)
		return c.state, &ValidationError{Section: section, Missing: missing}
	}

	if section < LastSection && !from.SummaryActive {
		c.state.Section++
		c.notify(TransitionAdvance, from, nil)
		return c.state, nil
	}

	c.state = State{Section: LastSection, SummaryActive: true}
	c.notify(TransitionSummary, from, nil)
	return c.state, nil
}

// Retreat moves to the previous section. It does nothing at section 1
// or while the summary is active.
func (c *Controller) Retreat() State {
	from := c.state
	if from.SummaryActive || from.Section <= FirstSection {
		return c.state
	}
	c.state.Section--
	c.notify(TransitionRetreat, from, nil)
	return c.state
}

// ReturnToLastSection leaves summary mode and reopens the last section.
// Outside summary mode it does nothing.
func (c *Controller) ReturnToLastSection() State {
	from := c.state
	if !from.SummaryActive {
		return c.state
	}
	c.state = State{Section: LastSection}
	c.notify(TransitionReturn, from, nil)
	return c.state
}

// CurrentState returns the navigation snapshot.
func (c *Controller) CurrentState() State { return c.state }

// Answers returns a copy of the current answers.
func (c *Controller) Answers() AnswerSet { return c.answers.Clone() }

// DeriveSummary builds the summary from the current answers.
func (c *Controller) DeriveSummary() (Summary, error) {
	return Derive(c.answers)
}

func (c *Controller) notify(kind TransitionKind, from State, missing []FieldID) {
	c.observer.OnTransition(TransitionEvent{
		SessionID: c.id,
		Kind:      kind,
		From:      from,
		To:        c.state,
		Missing:   slices.Clone(missing),
	})
}
