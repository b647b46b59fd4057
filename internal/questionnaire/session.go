package questionnaire

import (
	"context"
	"sync"
)

// Role says on whose behalf an editor was opened. It is threaded
// explicitly through loading and saving rather than inferred from
// ambient auth state.
type Role string

const (
	RoleSelf  Role = "self"
	RoleAdmin Role = "admin"
)

type Status string

const (
	StatusIdle   Status = "idle"
	StatusSaving Status = "saving"
	StatusSaved  Status = "saved"
	StatusFailed Status = "failed"
)

// ProfileStore is the slice of the profile repository the session
// needs: a partial, upserting write of changed answers.
type ProfileStore interface {
	PatchAnswers(ctx context.Context, subjectID string, patch AnswerMap) error
}

// EditSession holds one open editor: the baseline snapshot taken at
// load time, the working copy the caller mutates, and the save state.
// It lives in memory only and is discarded when the editor closes.
type EditSession struct {
	mu         sync.Mutex
	registry   *Registry
	subjectID  string
	role       Role
	baseline   AnswerMap
	working    AnswerMap
	status     Status
	failReason string
}

// NewEditSession snapshots baseline for subjectID. The caller (the
// session loader) is responsible for seeding baseline with every known
// question id.
func NewEditSession(registry *Registry, subjectID string, role Role, baseline AnswerMap) *EditSession {
	return &EditSession{
		registry:  registry,
		subjectID: subjectID,
		role:      role,
		baseline:  baseline.Clone(),
		working:   baseline.Clone(),
		status:    StatusIdle,
	}
}

func (s *EditSession) SubjectID() string { return s.subjectID }
func (s *EditSession) Role() Role        { return s.role }

func (s *EditSession) Status() (Status, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, s.failReason
}

// Working returns a copy of the current working answers.
func (s *EditSession) Working() AnswerMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.working.Clone()
}

// Set coerces one raw input and stages it in the working copy. The
// returned error is a *FieldError for a rejected value, or
// ErrUnknownQuestion for an id outside the schema.
func (s *EditSession) Set(questionID string, raw Value) error {
	question, ok := s.registry.Find(questionID)
	if !ok {
		return ErrUnknownQuestion
	}
	canonical, fieldErr := Coerce(question, raw)
	if fieldErr != nil {
		return fieldErr
	}
	s.mu.Lock()
	s.working[questionID] = canonical
	s.mu.Unlock()
	return nil
}

// SetAll stages a batch of raw inputs, collecting every per-field
// rejection instead of stopping at the first. Accepted values are
// staged even when others in the same batch fail, so the caller can
// fix only the flagged fields.
func (s *EditSession) SetAll(raw AnswerMap) FieldErrors {
	var fieldErrs FieldErrors
	for id, value := range raw {
		if err := s.Set(id, value); err != nil {
			if fe, ok := err.(*FieldError); ok {
				fieldErrs = append(fieldErrs, *fe)
				continue
			}
			fieldErrs = append(fieldErrs, FieldError{QuestionID: id, Reason: "unknown question"})
		}
	}
	return fieldErrs
}

// Validate runs the save-time required gate over the whole working
// copy without saving, so callers can report required-field misses in
// the same batch as coercion failures from the same attempt.
func (s *EditSession) Validate() FieldErrors {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requiredErrsLocked()
}

func (s *EditSession) requiredErrsLocked() FieldErrors {
	var fieldErrs FieldErrors
	for _, category := range s.registry.Schema() {
		for _, question := range category.Questions {
			if fe := CheckRequired(question, s.working[question.ID]); fe != nil {
				fieldErrs = append(fieldErrs, *fe)
			}
		}
	}
	return fieldErrs
}

// Save runs the required-field gate over the whole working copy,
// computes the minimal patch against baseline, and writes it through
// the store. An empty patch reports success without a store call.
// Field errors abort before the store is touched; a store failure
// leaves working untouched so the caller can retry. Only one save per
// session may be in flight at a time.
func (s *EditSession) Save(ctx context.Context, store ProfileStore) (AnswerMap, error) {
	s.mu.Lock()
	if s.status == StatusSaving {
		s.mu.Unlock()
		return nil, ErrSaveInFlight
	}

	if fieldErrs := s.requiredErrsLocked(); len(fieldErrs) > 0 {
		s.mu.Unlock()
		return nil, fieldErrs
	}

	// Minimal diff: only keys whose working value differs from the
	// baseline snapshot. Unknown stored keys are never staged, so the
	// patch can never clobber them.
	patch := AnswerMap{}
	for id, value := range s.working {
		if !value.Equal(s.baseline[id]) {
			patch[id] = value
		}
	}

	if len(patch) == 0 {
		s.status = StatusSaved
		s.failReason = ""
		s.mu.Unlock()
		return patch, nil
	}

	s.status = StatusSaving
	s.mu.Unlock()

	err := store.PatchAnswers(ctx, s.subjectID, patch)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = StatusFailed
		s.failReason = err.Error()
		return nil, &StoreError{Cause: err}
	}

	// Fold only the written keys into baseline: edits staged while the
	// write was in flight stay pending for the next save.
	for id, value := range patch {
		s.baseline[id] = value
	}
	s.status = StatusSaved
	s.failReason = ""
	return patch, nil
}
