package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/cmd/fx/account_fx"
	"globetrotter/cmd/fx/activity_fx"
	"globetrotter/cmd/fx/budget_fx"
	"globetrotter/cmd/fx/city_fx"
	"globetrotter/cmd/fx/controllers_fx"
	"globetrotter/cmd/fx/dashboard_fx"
	"globetrotter/cmd/fx/db_fx"
	"globetrotter/cmd/fx/favorite_fx"
	"globetrotter/cmd/fx/mail_fx"
	"globetrotter/cmd/fx/memcache_fx"
	"globetrotter/cmd/fx/stop_fx"
	"globetrotter/cmd/fx/trip_fx"
	"globetrotter/internal/api/controllers"
	"globetrotter/internal/infra"
	"globetrotter/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		account_fx.Module,
		trip_fx.Module,
		stop_fx.Module,
		activity_fx.Module,
		budget_fx.Module,
		city_fx.Module,
		favorite_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(Migrate),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func Migrate(db *gorm.DB) {
	infra.AutoMigrate(db)
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
	tripController *controllers.TripController,
	stopController *controllers.StopController,
	activityController *controllers.ActivityController,
	budgetController *controllers.BudgetController,
	cityController *controllers.CityController,
	favoriteController *controllers.FavoriteController,
	dashboardController *controllers.DashboardController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		accountController,
		tripController,
		stopController,
		activityController,
		budgetController,
		cityController,
		favoriteController,
		dashboardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	stopController *controllers.StopController,
	activityController *controllers.ActivityController,
	budgetController *controllers.BudgetController,
	cityController *controllers.CityController,
	favoriteController *controllers.FavoriteController,
	dashboardController *controllers.DashboardController) {

	auth := middleware.JWTAuthMiddleware()
	optionalAuth := middleware.OptionalJWTMiddleware()

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/forgot-password", accountController.ForgotPassword)
	accounts.POST("/reset-password", accountController.ResetPassword)
	accounts.GET("/me", auth, accountController.GetProfile)
	accounts.PUT("/me", auth, accountController.UpdateProfile)

	trips := r.Group("/trips")
	trips.POST("", auth, tripController.CreateTrip)
	trips.GET("", auth, tripController.GetTrips)
	trips.GET("/:tripId", optionalAuth, tripController.GetTripDetails)
	trips.PUT("/:tripId", auth, tripController.UpdateTrip)
	trips.DELETE("/:tripId", auth, tripController.DeleteTrip)
	trips.POST("/:tripId/clone", auth, tripController.CloneTrip)

	trips.GET("/:tripId/stops", optionalAuth, stopController.GetStops)
	trips.POST("/:tripId/stops", auth, stopController.AddStop)
	// reorder is registered before :stopId so gin does not shadow it
	trips.PUT("/:tripId/stops/reorder", auth, stopController.ReorderStops)
	trips.PUT("/:tripId/stops/:stopId", auth, stopController.UpdateStop)
	trips.DELETE("/:tripId/stops/:stopId", auth, stopController.DeleteStop)

	activities := r.Group("/activities")
	activities.POST("/stops/:stopId", auth, activityController.AddActivity)
	activities.PUT("/trip-activities/:id", auth, activityController.UpdateActivity)
	activities.DELETE("/trip-activities/:id", auth, activityController.DeleteActivity)

	budget := r.Group("/budget")
	budget.GET("/trips/:tripId", optionalAuth, budgetController.GetTripBudget)

	cities := r.Group("/cities")
	cities.GET("", cityController.ListCities)
	cities.GET("/meta/countries", cityController.ListCountries)
	cities.GET("/:id", cityController.GetCityById)

	favorites := r.Group("/favorites")
	favorites.GET("", auth, favoriteController.ListFavorites)
	favorites.POST("", auth, favoriteController.AddFavorite)
	favorites.DELETE("/:cityId", auth, favoriteController.RemoveFavorite)

	dashboard := r.Group("/dashboard")
	dashboard.GET("", auth, middleware.RoleMiddleware("admin"), dashboardController.GetDashboard)
}
