package questionnaire_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"housebase/internal/questionnaire"
	"housebase/internal/repositories"
	"housebase/internal/services"
	mem "housebase/pkg/memcache"
)

var Module = fx.Provide(
	provideRegistry,
	provideEditSessions,
	provideProfileRepo,
	provideProfileService)

// provideRegistry fails app startup on a malformed schema.
func provideRegistry() (*questionnaire.Registry, error) {
	return questionnaire.NewRegistry(questionnaire.DefaultSchema())
}

func provideEditSessions() mem.EditSessionStore {
	return mem.NewEditSessions()
}

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepository {
	return repositories.NewProfileRepository(db)
}

func provideProfileService(
	registry *questionnaire.Registry,
	profileRepo repositories.ProfileRepository,
	sessions mem.EditSessionStore,
	soldierService services.SoldierServiceInterface,
) services.ProfileServiceInterface {
	// The admin editor's mark-as-left follow-up is the soldier
	// service's operation, handed in as an opaque callback.
	return services.NewProfileService(registry, profileRepo, sessions, soldierService.MarkAsLeft)
}
