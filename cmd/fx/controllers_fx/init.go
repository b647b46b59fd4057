package controllers_fx

import (
	"go.uber.org/fx"
	"housebase/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewProfileController),
	fx.Provide(controllers.NewSoldierController),
	fx.Provide(controllers.NewEventController))
