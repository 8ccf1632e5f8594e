package city_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
	mem "globetrotter/pkg/memcache"
)

var Module = fx.Provide(provideCityRepo, provideCityService)

func provideCityRepo(db *gorm.DB) repositories.CityRepository {
	return repositories.NewCityRepository(db)
}

func provideCityService(cityRepo repositories.CityRepository, cache mem.ListCache) services.CityServiceInterface {
	return services.NewCityService(cityRepo, cache)
}
