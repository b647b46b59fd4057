package request_models

import "housebase/internal/questionnaire"

// OpenEditorRequest opens an admin editor for an explicit subject.
// Self editors take the subject from the token instead.
type OpenEditorRequest struct {
	SubjectID string `json:"subject_id" binding:"required"`
}

// SubmitAnswersRequest stages raw answers into an open session and
// triggers a save. Values are strings, or string arrays for
// multi-select questions.
type SubmitAnswersRequest struct {
	Answers questionnaire.AnswerMap `json:"answers" binding:"required"`
}
