package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"housebase/internal/models/db_models"
	"housebase/internal/questionnaire"
)

type ProfileRepository interface {
	// GetAnswers returns the stored answer document for a subject.
	// found is false when the subject has no profile yet; that is not
	// an error.
	GetAnswers(ctx context.Context, subjectID string) (questionnaire.AnswerMap, bool, error)
	// PatchAnswers upserts the given keys into the subject's document,
	// leaving every other stored key untouched.
	PatchAnswers(ctx context.Context, subjectID string, patch questionnaire.AnswerMap) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (p *profileRepository) GetAnswers(ctx context.Context, subjectID string) (questionnaire.AnswerMap, bool, error) {
	var profile db_models.Profile
	err := p.db.WithContext(ctx).First(&profile, "subject_id = ?", subjectID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	if profile.Answers == nil {
		profile.Answers = questionnaire.AnswerMap{}
	}
	return profile.Answers, true, nil
}

func (p *profileRepository) PatchAnswers(ctx context.Context, subjectID string, patch questionnaire.AnswerMap) error {
	if len(patch) == 0 {
		return nil
	}

	// Read-modify-write inside one transaction. Merging by key keeps
	// answers outside the patch (including retired question ids) as
	// they were; the last writer wins per key.
	return p.db.Transaction(func(tx *gorm.DB) error {
		var profile db_models.Profile
		err := tx.WithContext(ctx).First(&profile, "subject_id = ?", subjectID).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			profile = db_models.Profile{SubjectID: subjectID, Answers: questionnaire.AnswerMap{}}
		}
		if profile.Answers == nil {
			profile.Answers = questionnaire.AnswerMap{}
		}
		for id, value := range patch {
			profile.Answers[id] = value
		}
		return tx.WithContext(ctx).Save(&profile).Error
	})
}
