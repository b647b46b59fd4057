package response_models

import "housebase/internal/questionnaire"

// EditorResponse is everything the presentation shell needs to render
// an open editor: the schema drives the widgets, the answers prefill
// them, and the session id addresses later submits.
type EditorResponse struct {
	SessionID string                  `json:"session_id"`
	SubjectID string                  `json:"subject_id"`
	Role      string                  `json:"role"`
	Schema    questionnaire.Schema    `json:"schema"`
	Answers   questionnaire.AnswerMap `json:"answers"`
	Progress  questionnaire.Progress  `json:"progress"`
}

type SaveResponse struct {
	Saved    questionnaire.AnswerMap `json:"saved"`
	Progress questionnaire.Progress  `json:"progress"`
	Status   string                  `json:"status"`
}

type ProgressResponse struct {
	SubjectID string                 `json:"subject_id"`
	Progress  questionnaire.Progress `json:"progress"`
}
