package services

import (
	"context"

	"housebase/internal/models/db_models"
	"housebase/internal/models/request_models"
	"housebase/internal/models/response_models"
	"housebase/internal/repositories"
	"housebase/pkg/utils"
)

type EventServiceInterface interface {
	ListUpcoming(ctx context.Context) ([]response_models.EventResponse, error)
	CreateEvent(ctx context.Context, request request_models.CreateEventRequest, createdBy string) (*response_models.EventResponse, error)
	DeleteEvent(ctx context.Context, id string) error
}

type EventService struct {
	eventRepo repositories.EventRepository
}

func NewEventService(eventRepo repositories.EventRepository) EventServiceInterface {
	return &EventService{
		eventRepo: eventRepo,
	}
}

func (e *EventService) ListUpcoming(ctx context.Context) ([]response_models.EventResponse, error) {
	events, err := e.eventRepo.ListUpcoming(ctx, utils.NowUnixSeconds())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.EventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, response_models.EventResponse{
			ID:          event.ID.String(),
			Title:       event.Title,
			Description: event.Description,
			Location:    event.Location,
			StartsAt:    event.StartsAt,
			CreatedBy:   event.CreatedBy,
		})
	}
	return responses, nil
}

func (e *EventService) CreateEvent(ctx context.Context, request request_models.CreateEventRequest, createdBy string) (*response_models.EventResponse, error) {
	if request.StartsAt <= 0 {
		return nil, utils.ErrInvalidInput
	}

	event := &db_models.Event{
		Title:       request.Title,
		Description: request.Description,
		Location:    request.Location,
		StartsAt:    request.StartsAt,
		CreatedBy:   createdBy,
	}
	if err := e.eventRepo.Insert(ctx, event); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.EventResponse{
		ID:          event.ID.String(),
		Title:       event.Title,
		Description: event.Description,
		Location:    event.Location,
		StartsAt:    event.StartsAt,
		CreatedBy:   event.CreatedBy,
	}, nil
}

func (e *EventService) DeleteEvent(ctx context.Context, id string) error {
	event, err := e.eventRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if event == nil {
		return utils.ErrEventNotFound
	}
	if err := e.eventRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
