package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"housebase/internal/models/db_models"
	"housebase/internal/models/request_models"
	"housebase/pkg/utils"
)

type fakeSoldierRepo struct {
	soldiers []db_models.Soldier
}

func (f *fakeSoldierRepo) Insert(ctx context.Context, soldier *db_models.Soldier) error {
	soldier.ID = uuid.New()
	f.soldiers = append(f.soldiers, *soldier)
	return nil
}

func (f *fakeSoldierRepo) Update(ctx context.Context, soldier *db_models.Soldier) error {
	for i := range f.soldiers {
		if f.soldiers[i].ID == soldier.ID {
			f.soldiers[i] = *soldier
		}
	}
	return nil
}

func (f *fakeSoldierRepo) FindById(ctx context.Context, id string) (*db_models.Soldier, error) {
	for i := range f.soldiers {
		if f.soldiers[i].ID.String() == id {
			s := f.soldiers[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeSoldierRepo) FindByPersonalNumber(ctx context.Context, personalNumber string) (*db_models.Soldier, error) {
	for i := range f.soldiers {
		if f.soldiers[i].PersonalNumber == personalNumber {
			s := f.soldiers[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeSoldierRepo) ListAll(ctx context.Context, page int, pageSize int) ([]db_models.Soldier, error) {
	start := (page - 1) * pageSize
	if start >= len(f.soldiers) {
		return nil, nil
	}
	end := start + pageSize
	if end > len(f.soldiers) {
		end = len(f.soldiers)
	}
	return append([]db_models.Soldier{}, f.soldiers[start:end]...), nil
}

func (f *fakeSoldierRepo) MarkAsLeft(ctx context.Context, id string) error {
	for i := range f.soldiers {
		if f.soldiers[i].ID.String() == id {
			f.soldiers[i].Active = false
			f.soldiers[i].LeftAt = utils.NowUnixSeconds()
		}
	}
	return nil
}

func seededSoldierService() (SoldierServiceInterface, *fakeSoldierRepo) {
	repo := &fakeSoldierRepo{soldiers: []db_models.Soldier{
		{BaseModel: db_models.BaseModel{ID: uuid.New()}, FullName: "Dana Levi", PersonalNumber: "8123456", Room: "12", Active: true},
		{BaseModel: db_models.BaseModel{ID: uuid.New()}, FullName: "Noam Cohen", PersonalNumber: "8765432", Room: "7", Active: true},
		{BaseModel: db_models.BaseModel{ID: uuid.New()}, FullName: "Dana Mizrahi", PersonalNumber: "9111111", Room: "3", Active: true},
	}}
	return NewSoldierService(repo), repo
}

func TestSearchMatchesSubstringsCaseInsensitive(t *testing.T) {
	service, _ := seededSoldierService()

	results, err := service.Search(context.Background(), "dana")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = service.Search(context.Background(), "8123")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Dana Levi", results[0].FullName)
}

func TestSearchRequiresEveryWordToHit(t *testing.T) {
	service, _ := seededSoldierService()

	results, err := service.Search(context.Background(), "dana levi")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Dana Levi", results[0].FullName)

	results, err = service.Search(context.Background(), "dana shapiro")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchScansTheWholeRoster(t *testing.T) {
	repo := &fakeSoldierRepo{}
	for i := 0; i < searchPageSize*2; i++ {
		repo.soldiers = append(repo.soldiers, db_models.Soldier{
			BaseModel:      db_models.BaseModel{ID: uuid.New()},
			FullName:       "Resident Filler",
			PersonalNumber: "7" + uuid.NewString()[:6],
			Active:         true,
		})
	}
	// The only match sits past every full page.
	repo.soldiers = append(repo.soldiers, db_models.Soldier{
		BaseModel:      db_models.BaseModel{ID: uuid.New()},
		FullName:       "Dana Levi",
		PersonalNumber: "8123456",
		Active:         true,
	})
	service := NewSoldierService(repo)

	results, err := service.Search(context.Background(), "dana")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Dana Levi", results[0].FullName)
}

func TestSearchRejectsBlankQuery(t *testing.T) {
	service, _ := seededSoldierService()

	_, err := service.Search(context.Background(), "   ")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestCreateSoldierRejectsDuplicatePersonalNumber(t *testing.T) {
	service, _ := seededSoldierService()

	_, err := service.CreateSoldier(context.Background(), request_models.CreateSoldierRequest{
		FullName:       "Someone Else",
		PersonalNumber: "8123456",
	})
	assert.ErrorIs(t, err, utils.ErrSoldierAlreadyExists)
}

func TestMarkAsLeftFlagsSoldier(t *testing.T) {
	service, repo := seededSoldierService()
	id := repo.soldiers[0].ID.String()

	require.NoError(t, service.MarkAsLeft(context.Background(), id))

	soldier, err := service.GetSoldier(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, soldier.Active)
	assert.NotZero(t, soldier.LeftAt)

	err = service.MarkAsLeft(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrSoldierNotFound)
}
