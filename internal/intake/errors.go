package intake

import (
	"errors"
	"fmt"
)

// RequiredFieldsMessage is the user-facing message of every ValidationError.
const RequiredFieldsMessage = "Por favor, preencha todos os campos obrigatórios (*) antes de continuar."

// CompletionNotice is shown once the summary has been generated.
const CompletionNotice = "Avaliação concluída! Sumário gerado com sucesso."

var (
	// ErrUnknownField indicates a field id outside the questionnaire.
	ErrUnknownField = errors.New("unknown field")

	// ErrFieldKind indicates a value whose kind does not match the field.
	ErrFieldKind = errors.New("wrong value kind for field")

	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("required fields missing")

	// ErrInvalidMeasurement matches a *DomainError raised for a
	// measurement that makes the BMI undefined.
	ErrInvalidMeasurement = errors.New("invalid measurement")
)

// ValidationError is returned by Advance when the current section has
// unmet required fields. The wizard state is left unchanged.
type ValidationError struct {
	Section Section
	Missing []FieldID
}

// Error returns the fixed user-facing message.
func (e *ValidationError) Error() string { return RequiredFieldsMessage }

// Is makes errors.Is(err, ErrValidation) succeed.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// DomainErrorKind tags the invariant a DomainError reports.
type DomainErrorKind string

// KindInvalidMeasurement is the only DomainErrorKind.
const KindInvalidMeasurement DomainErrorKind = "invalid-measurement"

// DomainError reports an invariant violation in the derived summary. It is
// unreachable through the wizard, whose section 6 gate guarantees
// positive measurements.
type DomainError struct {
	Kind  DomainErrorKind
	Field FieldID
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s = %v", e.Kind, e.Field, e.Value)
}

// Is makes errors.Is(err, ErrInvalidMeasurement) succeed.
func (e *DomainError) Is(target error) bool {
	return target == ErrInvalidMeasurement && e.Kind == KindInvalidMeasurement
}
