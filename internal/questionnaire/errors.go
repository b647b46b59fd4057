package questionnaire

import (
	"errors"
	"fmt"
	"strings"
)

// SchemaError is a fatal startup failure: the questionnaire definition
// itself is malformed. It is never returned from per-request paths.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string { return "malformed questionnaire schema: " + e.Reason }

// FieldError is a recoverable, per-question validation failure. A save
// attempt collects every FieldError before reporting, so the caller can
// surface all offending fields in one round.
type FieldError struct {
	QuestionID string `json:"question_id"`
	Reason     string `json:"reason"`
	Missing    bool   `json:"missing,omitempty"` // required question left empty
}

func (e FieldError) Error() string {
	return fmt.Sprintf("question %s: %s", e.QuestionID, e.Reason)
}

// FieldErrors accumulates per-field failures from one save attempt.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Error()
	}
	return strings.Join(parts, "; ")
}

// StoreError wraps a profile store failure. The session keeps its
// working state so the caller may retry without re-entering answers.
type StoreError struct {
	Cause error
}

func (e *StoreError) Error() string { return "profile store failure: " + e.Cause.Error() }
func (e *StoreError) Unwrap() error { return e.Cause }

// ErrSaveInFlight is returned when a second save is requested for a
// session whose previous save has not settled yet.
var ErrSaveInFlight = errors.New("a save for this session is already in flight")

// ErrUnknownQuestion is returned when input arrives for a question id
// the schema does not define.
var ErrUnknownQuestion = errors.New("unknown question id")
