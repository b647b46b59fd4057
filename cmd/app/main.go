package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"housebase/cmd/fx/account_fx"
	"housebase/cmd/fx/controllers_fx"
	"housebase/cmd/fx/db_fx"
	"housebase/cmd/fx/event_fx"
	"housebase/cmd/fx/questionnaire_fx"
	"housebase/cmd/fx/soldier_fx"
	"housebase/internal/api/controllers"
	"housebase/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		soldier_fx.Module,
		event_fx.Module,
		questionnaire_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	profileController *controllers.ProfileController,
	soldierController *controllers.SoldierController,
	eventController *controllers.EventController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, profileController, soldierController, eventController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	profileController *controllers.ProfileController,
	soldierController *controllers.SoldierController,
	eventController *controllers.EventController) {

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)
	accountsGroup.POST("/elevate",
		middleware.JWTAuthMiddleware(), middleware.AdminCodeMiddleware(),
		accountController.Elevate)

	authed := r.Group("/", middleware.JWTAuthMiddleware())

	authed.GET("/questionnaire/schema", profileController.GetSchema)

	profileGroup := authed.Group("/profile")
	profileGroup.POST("/editor", profileController.OpenSelfEditor)
	profileGroup.POST("/editor/:sessionId", profileController.SubmitAnswers)
	profileGroup.DELETE("/editor/:sessionId", profileController.CloseEditor)
	profileGroup.GET("/progress", profileController.GetSelfProgress)

	adminGroup := authed.Group("/", middleware.RoleMiddleware("admin"))
	adminGroup.POST("/admin/profile/editor", profileController.OpenAdminEditor)
	adminGroup.POST("/admin/profile/editor/:sessionId/mark-left", profileController.MarkAsLeft)

	adminGroup.GET("/soldiers", soldierController.ListSoldiers)
	adminGroup.GET("/soldiers/search", soldierController.SearchSoldiers)
	adminGroup.GET("/soldiers/:id", soldierController.GetSoldier)
	adminGroup.POST("/soldiers", soldierController.CreateSoldier)
	adminGroup.PUT("/soldiers/:id", soldierController.UpdateSoldier)
	adminGroup.POST("/soldiers/:id/mark-left", soldierController.MarkAsLeft)

	authed.GET("/events", eventController.ListUpcoming)
	adminGroup.POST("/events", eventController.CreateEvent)
	adminGroup.DELETE("/events/:id", eventController.DeleteEvent)
}
