package stop_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
)

var Module = fx.Provide(provideStopRepo, provideStopService)

func provideStopRepo(db *gorm.DB) repositories.StopRepository {
	return repositories.NewStopRepository(db)
}

func provideStopService(stopRepo repositories.StopRepository, tripRepo repositories.TripRepository) services.StopServiceInterface {
	return services.NewStopService(stopRepo, tripRepo)
}
