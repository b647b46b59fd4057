package db_models

import "housebase/internal/questionnaire"

// Profile is the stored questionnaire document for one subject. The
// answers column is the raw AnswerMap, including keys from retired
// questions, which are preserved but never rendered.
type Profile struct {
	BaseModel
	SubjectID string                  `gorm:"uniqueIndex"`
	Answers   questionnaire.AnswerMap `gorm:"type:jsonb"`
}
