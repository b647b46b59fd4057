package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"housebase/internal/models/db_models"
)

type SoldierRepository interface {
	Insert(ctx context.Context, soldier *db_models.Soldier) error
	Update(ctx context.Context, soldier *db_models.Soldier) error
	FindById(ctx context.Context, id string) (*db_models.Soldier, error)
	FindByPersonalNumber(ctx context.Context, personalNumber string) (*db_models.Soldier, error)
	ListAll(ctx context.Context, page int, pageSize int) ([]db_models.Soldier, error)
	MarkAsLeft(ctx context.Context, id string) error
}

type soldierRepository struct {
	db *gorm.DB
}

func NewSoldierRepository(db *gorm.DB) SoldierRepository {
	return &soldierRepository{db: db}
}

func (s *soldierRepository) Insert(ctx context.Context, soldier *db_models.Soldier) error {
	return s.db.WithContext(ctx).Create(soldier).Error
}

func (s *soldierRepository) Update(ctx context.Context, soldier *db_models.Soldier) error {
	return s.db.WithContext(ctx).Save(soldier).Error
}

func (s *soldierRepository) FindById(ctx context.Context, id string) (*db_models.Soldier, error) {
	var soldier db_models.Soldier
	err := s.db.WithContext(ctx).First(&soldier, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &soldier, nil
}

func (s *soldierRepository) FindByPersonalNumber(ctx context.Context, personalNumber string) (*db_models.Soldier, error) {
	var soldier db_models.Soldier
	err := s.db.WithContext(ctx).First(&soldier, "personal_number = ?", personalNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &soldier, nil
}

func (s *soldierRepository) ListAll(ctx context.Context, page int, pageSize int) ([]db_models.Soldier, error) {
	var soldiers []db_models.Soldier
	err := s.db.WithContext(ctx).Scopes(func(db *gorm.DB) *gorm.DB {
		offset := (page - 1) * pageSize
		return db.Offset(offset).Limit(pageSize)
	}).Order("full_name asc").Find(&soldiers).Error
	if err != nil {
		return nil, err
	}
	return soldiers, nil
}

func (s *soldierRepository) MarkAsLeft(ctx context.Context, id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Model(&db_models.Soldier{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"active":  false,
				"left_at": time.Now().Unix(),
			}).Error
	})
}
