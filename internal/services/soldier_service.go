package services

import (
	"context"
	"strings"

	"housebase/internal/models/db_models"
	"housebase/internal/models/request_models"
	"housebase/internal/models/response_models"
	"housebase/internal/repositories"
	"housebase/pkg/utils"
)

type SoldierServiceInterface interface {
	ListSoldiers(ctx context.Context, page int, pageSize int) ([]response_models.SoldierResponse, error)
	GetSoldier(ctx context.Context, id string) (*response_models.SoldierResponse, error)
	CreateSoldier(ctx context.Context, request request_models.CreateSoldierRequest) (*response_models.SoldierResponse, error)
	UpdateSoldier(ctx context.Context, id string, request request_models.UpdateSoldierRequest) (*response_models.SoldierResponse, error)
	// Search filters the full roster in memory: case-insensitive
	// substring match per field, every query word has to hit.
	Search(ctx context.Context, query string) ([]response_models.SoldierResponse, error)
	MarkAsLeft(ctx context.Context, id string) error
}

type SoldierService struct {
	soldierRepo repositories.SoldierRepository
}

func NewSoldierService(soldierRepo repositories.SoldierRepository) SoldierServiceInterface {
	return &SoldierService{
		soldierRepo: soldierRepo,
	}
}

const searchPageSize = 500

func (s *SoldierService) ListSoldiers(ctx context.Context, page int, pageSize int) ([]response_models.SoldierResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	soldiers, err := s.soldierRepo.ListAll(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.SoldierResponse, 0, len(soldiers))
	for _, soldier := range soldiers {
		responses = append(responses, toSoldierResponse(soldier))
	}
	return responses, nil
}

func (s *SoldierService) GetSoldier(ctx context.Context, id string) (*response_models.SoldierResponse, error) {
	soldier, err := s.soldierRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if soldier == nil {
		return nil, utils.ErrSoldierNotFound
	}
	response := toSoldierResponse(*soldier)
	return &response, nil
}

func (s *SoldierService) CreateSoldier(ctx context.Context, request request_models.CreateSoldierRequest) (*response_models.SoldierResponse, error) {
	existing, err := s.soldierRepo.FindByPersonalNumber(ctx, request.PersonalNumber)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrSoldierAlreadyExists
	}

	soldier := &db_models.Soldier{
		FullName:       request.FullName,
		PersonalNumber: request.PersonalNumber,
		Room:           request.Room,
		Phone:          request.Phone,
		Languages:      request.Languages,
		Active:         true,
	}
	if err := s.soldierRepo.Insert(ctx, soldier); err != nil {
		return nil, utils.ErrDatabaseError
	}

	response := toSoldierResponse(*soldier)
	return &response, nil
}

func (s *SoldierService) UpdateSoldier(ctx context.Context, id string, request request_models.UpdateSoldierRequest) (*response_models.SoldierResponse, error) {
	soldier, err := s.soldierRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if soldier == nil {
		return nil, utils.ErrSoldierNotFound
	}

	if request.FullName != "" {
		soldier.FullName = request.FullName
	}
	if request.Room != "" {
		soldier.Room = request.Room
	}
	if request.Phone != "" {
		soldier.Phone = request.Phone
	}
	if request.Languages != nil {
		soldier.Languages = request.Languages
	}

	if err := s.soldierRepo.Update(ctx, soldier); err != nil {
		return nil, utils.ErrDatabaseError
	}

	response := toSoldierResponse(*soldier)
	return &response, nil
}

func (s *SoldierService) Search(ctx context.Context, query string) ([]response_models.SoldierResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, utils.ErrInvalidInput
	}

	// Walk the whole roster page by page; a short page marks the end.
	matches := make([]response_models.SoldierResponse, 0)
	for page := 1; ; page++ {
		soldiers, err := s.soldierRepo.ListAll(ctx, page, searchPageSize)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		for _, soldier := range soldiers {
			if matchesSoldier(soldier, query) {
				matches = append(matches, toSoldierResponse(soldier))
			}
		}
		if len(soldiers) < searchPageSize {
			break
		}
	}
	return matches, nil
}

func (s *SoldierService) MarkAsLeft(ctx context.Context, id string) error {
	soldier, err := s.soldierRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if soldier == nil {
		return utils.ErrSoldierNotFound
	}
	if err := s.soldierRepo.MarkAsLeft(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// matchesSoldier checks every word of the query against the soldier's
// name, personal number and room. A word hits when it is a substring
// of any field, case-insensitive.
func matchesSoldier(soldier db_models.Soldier, query string) bool {
	fields := []string{
		strings.ToLower(soldier.FullName),
		strings.ToLower(soldier.PersonalNumber),
		strings.ToLower(soldier.Room),
	}

	for _, word := range strings.Fields(strings.ToLower(query)) {
		hit := false
		for _, field := range fields {
			if strings.Contains(field, word) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

func toSoldierResponse(soldier db_models.Soldier) response_models.SoldierResponse {
	return response_models.SoldierResponse{
		ID:             soldier.ID.String(),
		FullName:       soldier.FullName,
		PersonalNumber: soldier.PersonalNumber,
		Room:           soldier.Room,
		Phone:          soldier.Phone,
		Languages:      soldier.Languages,
		Active:         soldier.Active,
		LeftAt:         soldier.LeftAt,
	}
}
