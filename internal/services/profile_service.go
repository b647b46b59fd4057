package services

import (
	"context"
	"log"
	"time"

	"housebase/internal/models/response_models"
	"housebase/internal/questionnaire"
	"housebase/internal/repositories"
	mem "housebase/pkg/memcache"
	"housebase/pkg/utils"
)

// editorTTL bounds how long an open editor survives between requests.
const editorTTL = 30 * time.Minute

type ProfileServiceInterface interface {
	GetSchema() questionnaire.Schema
	// OpenEditor loads the subject's stored answers (or a fresh empty
	// set for an unknown subject) and parks a live edit session.
	OpenEditor(ctx context.Context, subjectID string, role questionnaire.Role) (*response_models.EditorResponse, error)
	// SubmitAnswers stages raw answers into the session and saves the
	// diff against the load-time baseline.
	SubmitAnswers(ctx context.Context, sessionID string, answers questionnaire.AnswerMap) (*response_models.SaveResponse, error)
	GetProgress(ctx context.Context, subjectID string) (*response_models.ProgressResponse, error)
	// MarkAsLeft runs the configured mark-as-left follow-up for the
	// session's subject. Admin editors only; the follow-up itself is
	// owned by the soldier service.
	MarkAsLeft(ctx context.Context, sessionID string) error
	CloseEditor(sessionID string)
}

// MarkAsLeftFunc is an opaque follow-up invoked verbatim on an
// administrator's request.
type MarkAsLeftFunc func(ctx context.Context, subjectID string) error

type ProfileService struct {
	registry     *questionnaire.Registry
	profileRepo  repositories.ProfileRepository
	sessions     mem.EditSessionStore
	onMarkAsLeft MarkAsLeftFunc
}

func NewProfileService(
	registry *questionnaire.Registry,
	profileRepo repositories.ProfileRepository,
	sessions mem.EditSessionStore,
	onMarkAsLeft MarkAsLeftFunc,
) ProfileServiceInterface {
	return &ProfileService{
		registry:     registry,
		profileRepo:  profileRepo,
		sessions:     sessions,
		onMarkAsLeft: onMarkAsLeft,
	}
}

func (p *ProfileService) GetSchema() questionnaire.Schema {
	return p.registry.Schema()
}

func (p *ProfileService) OpenEditor(ctx context.Context, subjectID string, role questionnaire.Role) (*response_models.EditorResponse, error) {
	if subjectID == "" {
		return nil, utils.ErrInvalidInput
	}

	stored, found, err := p.profileRepo.GetAnswers(ctx, subjectID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	// A missing subject is a valid, fully-editable start state: every
	// known question present and unanswered. Stored keys the schema no
	// longer defines stay in the document but are not loaded into the
	// editor.
	baseline := p.registry.EmptyAnswers()
	if found {
		for id := range baseline {
			if value, ok := stored[id]; ok {
				baseline[id] = value
			}
		}
	}

	sessionID, err := utils.GenerateSecureToken(16)
	if err != nil {
		return nil, utils.ErrInternalError
	}

	session := questionnaire.NewEditSession(p.registry, subjectID, role, baseline)
	p.sessions.Put(sessionID, session, editorTTL)

	log.Printf("opened %s editor for subject %s (session %s)", role, subjectID, sessionID)

	return &response_models.EditorResponse{
		SessionID: sessionID,
		SubjectID: subjectID,
		Role:      string(role),
		Schema:    p.registry.Schema(),
		Answers:   session.Working(),
		Progress:  questionnaire.ComputeProgress(p.registry.Schema(), baseline),
	}, nil
}

func (p *ProfileService) SubmitAnswers(ctx context.Context, sessionID string, answers questionnaire.AnswerMap) (*response_models.SaveResponse, error) {
	session, ok := p.sessions.Get(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}

	// One save attempt reports every field-level problem together:
	// coercion rejections from this batch plus required questions still
	// empty after staging, so the client highlights all of them in one
	// round.
	if fieldErrs := session.SetAll(answers); len(fieldErrs) > 0 {
		return nil, append(fieldErrs, session.Validate()...)
	}

	patch, err := session.Save(ctx, p.profileRepo)
	if err != nil {
		return nil, err
	}

	status, _ := session.Status()
	return &response_models.SaveResponse{
		Saved:    patch,
		Progress: questionnaire.ComputeProgress(p.registry.Schema(), session.Working()),
		Status:   string(status),
	}, nil
}

func (p *ProfileService) GetProgress(ctx context.Context, subjectID string) (*response_models.ProgressResponse, error) {
	stored, _, err := p.profileRepo.GetAnswers(ctx, subjectID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.ProgressResponse{
		SubjectID: subjectID,
		Progress:  questionnaire.ComputeProgress(p.registry.Schema(), stored),
	}, nil
}

func (p *ProfileService) MarkAsLeft(ctx context.Context, sessionID string) error {
	session, ok := p.sessions.Get(sessionID)
	if !ok {
		return utils.ErrSessionNotFound
	}
	if session.Role() != questionnaire.RoleAdmin || p.onMarkAsLeft == nil {
		return utils.ErrInvalidInput
	}
	return p.onMarkAsLeft(ctx, session.SubjectID())
}

func (p *ProfileService) CloseEditor(sessionID string) {
	p.sessions.Remove(sessionID)
}
