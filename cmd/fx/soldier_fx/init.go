package soldier_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"housebase/internal/repositories"
	"housebase/internal/services"
)

var Module = fx.Provide(
	provideSoldierService, provideSoldierRepo)

func provideSoldierRepo(db *gorm.DB) repositories.SoldierRepository {
	return repositories.NewSoldierRepository(db)
}

func provideSoldierService(soldierRepo repositories.SoldierRepository) services.SoldierServiceInterface {
	return services.NewSoldierService(soldierRepo)
}
