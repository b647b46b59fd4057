package event_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"housebase/internal/repositories"
	"housebase/internal/services"
)

var Module = fx.Provide(
	provideEventService, provideEventRepo)

func provideEventRepo(db *gorm.DB) repositories.EventRepository {
	return repositories.NewEventRepository(db)
}

func provideEventService(eventRepo repositories.EventRepository) services.EventServiceInterface {
	return services.NewEventService(eventRepo)
}
