package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wayfare/cmd/fx/account_fx"
	"wayfare/cmd/fx/activity_fx"
	"wayfare/cmd/fx/controllers_fx"
	"wayfare/cmd/fx/db_fx"
	"wayfare/cmd/fx/geocode_fx"
	"wayfare/cmd/fx/itinerary_fx"
	"wayfare/cmd/fx/memcache_fx"
	"wayfare/cmd/fx/planner_fx"
	"wayfare/cmd/fx/redis_fx"
	"wayfare/cmd/fx/suggestion_fx"
	"wayfare/cmd/fx/travel_fx"
	"wayfare/internal/api/controllers"
	"wayfare/internal/infra"
	"wayfare/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		db_fx.Module,
		redis_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		itinerary_fx.Module,
		activity_fx.Module,
		travel_fx.Module,
		geocode_fx.Module,
		suggestion_fx.Module,
		planner_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController,
	activityController *controllers.ActivityController,
	plannerController *controllers.PlannerController,
	locationController *controllers.LocationController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		itineraryController,
		activityController,
		plannerController,
		locationController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController,
	activityController *controllers.ActivityController,
	plannerController *controllers.PlannerController,
	locationController *controllers.LocationController) {

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/register", accountController.Register)
	accountGroup.POST("/login", accountController.Login)

	itineraryGroup := r.Group("/itineraries")
	itineraryGroup.Use(middleware.JWTAuthMiddleware())
	itineraryGroup.GET("", itineraryController.ListByUser)
	itineraryGroup.POST("", itineraryController.Create)
	itineraryGroup.GET("/:itineraryId", itineraryController.GetById)
	itineraryGroup.PUT("/:itineraryId", itineraryController.Update)
	itineraryGroup.DELETE("/:itineraryId", itineraryController.Delete)
	itineraryGroup.GET("/:itineraryId/days", itineraryController.Days)

	activityGroup := r.Group("/activities")
	activityGroup.Use(middleware.JWTAuthMiddleware())
	activityGroup.GET("", activityController.ListByItinerary)
	activityGroup.POST("", activityController.Create)
	activityGroup.GET("/travel-time", activityController.TravelTime)
	activityGroup.GET("/budget/total/:itineraryId", activityController.TotalCost)
	activityGroup.GET("/budget/daily/:itineraryId", activityController.DailyCosts)
	activityGroup.GET("/budget/date/:itineraryId", activityController.CostForDate)
	activityGroup.GET("/:activityId", activityController.GetById)
	activityGroup.PUT("/:activityId", activityController.Update)
	activityGroup.DELETE("/:activityId", activityController.Delete)

	plannerGroup := r.Group("/planner")
	plannerGroup.Use(middleware.JWTAuthMiddleware())
	plannerGroup.GET("/:itineraryId", plannerController.LoadSession)
	plannerGroup.GET("/:itineraryId/days/:dayIndex", plannerController.DayView)
	plannerGroup.POST("/:itineraryId/activities", plannerController.AddActivity)
	plannerGroup.POST("/:itineraryId/activities/:activityId/schedule", plannerController.ScheduleActivity)
	plannerGroup.POST("/:itineraryId/activities/:activityId/unschedule", plannerController.UnscheduleActivity)
	plannerGroup.DELETE("/:itineraryId/activities/:activityId", plannerController.DeleteActivity)
	plannerGroup.PATCH("/:itineraryId/activities/:activityId", plannerController.EditActivity)
	plannerGroup.POST("/:itineraryId/save", plannerController.Save)

	locationGroup := r.Group("/locations")
	locationGroup.Use(middleware.JWTAuthMiddleware())
	locationGroup.GET("/search", locationController.Search)
	locationGroup.POST("/suggest", locationController.Suggest)
}
