package intake

import (
	"io"
	"log/slog"
)

// TransitionKind names a navigation command.
type TransitionKind string

const (
	TransitionAdvance  TransitionKind = "advance"
	TransitionRejected TransitionKind = "advance_rejected"
	TransitionRetreat  TransitionKind = "retreat"
	TransitionSummary  TransitionKind = "summary"
	TransitionReturn   TransitionKind = "return_to_last_section"
)

// TransitionEvent records one navigation command and its outcome.
type TransitionEvent struct {
	SessionID string
	Kind      TransitionKind
	From      State
	To        State
	Missing   []FieldID
}

// Observer receives navigation events for logging.
type Observer interface {
	OnTransition(event TransitionEvent)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnTransition(TransitionEvent) {}

// LogObserver writes navigation events with log/slog.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an Observer that logs events to w at level and above.
// A nil writer yields a NoopObserver.
func NewLogObserver(w io.Writer, level slog.Level) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &LogObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
	}
}

func (o *LogObserver) OnTransition(event TransitionEvent) {
	attrs := []any{
		"session", event.SessionID,
		"event", string(event.Kind),
		"from_section", int(event.From.Section),
		"to_section", int(event.To.Section),
		"summary", event.To.SummaryActive,
	}
	if event.Kind == TransitionRejected {
		missing := make([]string, len(event.Missing))
		for i, id := range event.Missing {
			missing[i] = string(id)
		}
		attrs = append(attrs, "missing", missing)
		o.logger.Warn("wizard_transition", attrs...)
		return
	}
	o.logger.Info("wizard_transition", attrs...)
}
