package favorite_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
)

var Module = fx.Provide(provideFavoriteRepo, provideFavoriteService)

func provideFavoriteRepo(db *gorm.DB) repositories.FavoriteRepository {
	return repositories.NewFavoriteRepository(db)
}

func provideFavoriteService(favoriteRepo repositories.FavoriteRepository, cityRepo repositories.CityRepository) services.FavoriteServiceInterface {
	return services.NewFavoriteService(favoriteRepo, cityRepo)
}
