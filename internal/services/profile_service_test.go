package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"housebase/internal/questionnaire"
	mem "housebase/pkg/memcache"
	"housebase/pkg/utils"
)

type fakeProfileRepo struct {
	docs     map[string]questionnaire.AnswerMap
	getErr   error
	patchErr error
	patches  int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{docs: map[string]questionnaire.AnswerMap{}}
}

func (f *fakeProfileRepo) GetAnswers(ctx context.Context, subjectID string) (questionnaire.AnswerMap, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	doc, ok := f.docs[subjectID]
	if !ok {
		return nil, false, nil
	}
	return doc.Clone(), true, nil
}

func (f *fakeProfileRepo) PatchAnswers(ctx context.Context, subjectID string, patch questionnaire.AnswerMap) error {
	if f.patchErr != nil {
		return f.patchErr
	}
	f.patches++
	doc, ok := f.docs[subjectID]
	if !ok {
		doc = questionnaire.AnswerMap{}
		f.docs[subjectID] = doc
	}
	for id, value := range patch {
		doc[id] = value
	}
	return nil
}

func newProfileService(t *testing.T, repo *fakeProfileRepo, onMarkAsLeft MarkAsLeftFunc) ProfileServiceInterface {
	t.Helper()
	registry, err := questionnaire.NewRegistry(questionnaire.Schema{
		{
			ID: "contact",
			Questions: []questionnaire.Question{
				{ID: "full_name", Type: questionnaire.TypeText, Required: true},
				{ID: "email", Type: questionnaire.TypeEmail},
				{ID: "langs", Type: questionnaire.TypeMultiSelect, Options: []string{"A", "B"}},
			},
		},
	})
	require.NoError(t, err)
	return NewProfileService(registry, repo, mem.NewEditSessions(), onMarkAsLeft)
}

func TestOpenEditorForUnknownSubjectStartsEmpty(t *testing.T) {
	service := newProfileService(t, newFakeProfileRepo(), nil)

	editor, err := service.OpenEditor(context.Background(), "S1", questionnaire.RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, editor.SessionID)
	assert.Len(t, editor.Answers, 3)
	assert.Equal(t, 0, editor.Progress.Answered)
	assert.Equal(t, 3, editor.Progress.Total)
}

func TestOpenEditorPrefillsStoredAnswersAndHidesRetiredKeys(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.docs["S1"] = questionnaire.AnswerMap{
		"email":       questionnaire.StringValue("a@b.com"),
		"old_retired": questionnaire.StringValue("keep me in storage"),
	}
	service := newProfileService(t, repo, nil)

	editor, err := service.OpenEditor(context.Background(), "S1", questionnaire.RoleSelf)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", editor.Answers["email"].Single)
	assert.NotContains(t, editor.Answers, "old_retired")
}

func TestSubmitAnswersSavesAndAdvancesProgress(t *testing.T) {
	repo := newFakeProfileRepo()
	service := newProfileService(t, repo, nil)

	editor, err := service.OpenEditor(context.Background(), "S1", questionnaire.RoleSelf)
	require.NoError(t, err)

	saved, err := service.SubmitAnswers(context.Background(), editor.SessionID, questionnaire.AnswerMap{
		"full_name": questionnaire.StringValue("Dana Levi"),
		"langs":     questionnaire.ListValue("B", "A"),
	})
	require.NoError(t, err)
	assert.Len(t, saved.Saved, 2)
	assert.Equal(t, 2, saved.Progress.Answered)
	assert.Equal(t, string(questionnaire.StatusSaved), saved.Status)
	assert.Equal(t, "Dana Levi", repo.docs["S1"]["full_name"].Single)

	// Submitting the same values again is an idempotent no-op.
	before := repo.patches
	saved, err = service.SubmitAnswers(context.Background(), editor.SessionID, questionnaire.AnswerMap{
		"full_name": questionnaire.StringValue("Dana Levi"),
	})
	require.NoError(t, err)
	assert.Empty(t, saved.Saved)
	assert.Equal(t, before, repo.patches)
}

func TestSubmitAnswersReportsAllFieldErrors(t *testing.T) {
	repo := newFakeProfileRepo()
	service := newProfileService(t, repo, nil)

	editor, err := service.OpenEditor(context.Background(), "S1", questionnaire.RoleSelf)
	require.NoError(t, err)

	_, err = service.SubmitAnswers(context.Background(), editor.SessionID, questionnaire.AnswerMap{
		"email": questionnaire.StringValue("nope"),
		"langs": questionnaire.ListValue("Z"),
	})
	var fieldErrs questionnaire.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 2)
	assert.Zero(t, repo.patches)
}

func TestSubmitAnswersReportsCoercionAndRequiredTogether(t *testing.T) {
	repo := newFakeProfileRepo()
	service := newProfileService(t, repo, nil)

	editor, err := service.OpenEditor(context.Background(), "S1", questionnaire.RoleSelf)
	require.NoError(t, err)

	// A bad email and a still-empty required full_name must both come
	// back from the same attempt, not one per round.
	_, err = service.SubmitAnswers(context.Background(), editor.SessionID, questionnaire.AnswerMap{
		"email": questionnaire.StringValue("nope"),
	})
	var fieldErrs questionnaire.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 2)

	byQuestion := map[string]questionnaire.FieldError{}
	for _, fe := range fieldErrs {
		byQuestion[fe.QuestionID] = fe
	}
	require.Contains(t, byQuestion, "email")
	require.Contains(t, byQuestion, "full_name")
	assert.False(t, byQuestion["email"].Missing)
	assert.True(t, byQuestion["full_name"].Missing)
	assert.Zero(t, repo.patches)
}

func TestSubmitAnswersRequiredGate(t *testing.T) {
	repo := newFakeProfileRepo()
	service := newProfileService(t, repo, nil)

	editor, err := service.OpenEditor(context.Background(), "S1", questionnaire.RoleSelf)
	require.NoError(t, err)

	_, err = service.SubmitAnswers(context.Background(), editor.SessionID, questionnaire.AnswerMap{
		"email": questionnaire.StringValue("a@b.com"),
	})
	var fieldErrs questionnaire.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "full_name", fieldErrs[0].QuestionID)
	assert.Zero(t, repo.patches)
}

func TestSubmitAnswersStoreFailureAllowsRetry(t *testing.T) {
	repo := newFakeProfileRepo()
	service := newProfileService(t, repo, nil)

	editor, err := service.OpenEditor(context.Background(), "S1", questionnaire.RoleSelf)
	require.NoError(t, err)

	repo.patchErr = errors.New("db down")
	_, err = service.SubmitAnswers(context.Background(), editor.SessionID, questionnaire.AnswerMap{
		"full_name": questionnaire.StringValue("Dana"),
	})
	var storeErr *questionnaire.StoreError
	require.ErrorAs(t, err, &storeErr)

	repo.patchErr = nil
	saved, err := service.SubmitAnswers(context.Background(), editor.SessionID, questionnaire.AnswerMap{})
	require.NoError(t, err)
	assert.Equal(t, "Dana", saved.Saved["full_name"].Single)
}

func TestSubmitAnswersUnknownSession(t *testing.T) {
	service := newProfileService(t, newFakeProfileRepo(), nil)

	_, err := service.SubmitAnswers(context.Background(), "missing", questionnaire.AnswerMap{})
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestMarkAsLeftRunsCallbackForAdminOnly(t *testing.T) {
	var calledFor string
	callback := func(ctx context.Context, subjectID string) error {
		calledFor = subjectID
		return nil
	}
	service := newProfileService(t, newFakeProfileRepo(), callback)

	adminEditor, err := service.OpenEditor(context.Background(), "S1", questionnaire.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, service.MarkAsLeft(context.Background(), adminEditor.SessionID))
	assert.Equal(t, "S1", calledFor)

	selfEditor, err := service.OpenEditor(context.Background(), "S2", questionnaire.RoleSelf)
	require.NoError(t, err)
	assert.Error(t, service.MarkAsLeft(context.Background(), selfEditor.SessionID))
	assert.Equal(t, "S1", calledFor)
}

func TestCloseEditorDropsSession(t *testing.T) {
	service := newProfileService(t, newFakeProfileRepo(), nil)

	editor, err := service.OpenEditor(context.Background(), "S1", questionnaire.RoleSelf)
	require.NoError(t, err)

	service.CloseEditor(editor.SessionID)
	_, err = service.SubmitAnswers(context.Background(), editor.SessionID, questionnaire.AnswerMap{})
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}
