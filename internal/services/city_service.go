package services

import (
	"context"
	"time"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	mem "globetrotter/pkg/memcache"
	"globetrotter/pkg/utils"
)

const (
	countriesCacheKey = "cities:countries"
	countriesCacheTTL = 10 * time.Minute
)

type CityServiceInterface interface {
	ListCities(ctx context.Context, search string, country string, page int, pageSize int) ([]response_models.CityResponse, error)
	GetCityByID(ctx context.Context, cityID string) (*response_models.CityResponse, error)
	ListCountries(ctx context.Context) ([]string, error)
}

type CityService struct {
	cityRepo repositories.CityRepository
	cache    mem.ListCache
}

func NewCityService(cityRepo repositories.CityRepository, cache mem.ListCache) CityServiceInterface {
	return &CityService{
		cityRepo: cityRepo,
		cache:    cache,
	}
}

func (s *CityService) ListCities(ctx context.Context, search string, country string, page int, pageSize int) ([]response_models.CityResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	cities, err := s.cityRepo.List(ctx, search, country, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.CityResponse, 0, len(cities))
	for i := range cities {
		out = append(out, buildCityResponse(&cities[i]))
	}
	return out, nil
}

func (s *CityService) GetCityByID(ctx context.Context, cityID string) (*response_models.CityResponse, error) {
	city, err := s.cityRepo.GetByID(ctx, cityID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if city == nil {
		return nil, utils.ErrCityNotFound
	}

	out := buildCityResponse(city)
	return &out, nil
}

// ListCountries serves the distinct country list through a short TTL
// cache; the catalog is read-only so staleness is bounded and harmless.
func (s *CityService) ListCountries(ctx context.Context) ([]string, error) {
	if countries, ok := s.cache.Get(countriesCacheKey); ok {
		return countries, nil
	}

	countries, err := s.cityRepo.ListCountries(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.cache.Set(countriesCacheKey, countries, countriesCacheTTL)
	return countries, nil
}

func buildCityResponse(c *db_models.City) response_models.CityResponse {
	return response_models.CityResponse{
		ID:              c.ID,
		Name:            c.Name,
		Country:         c.Country,
		Region:          c.Region,
		AvgDailyCost:    c.AvgDailyCost,
		PopularityScore: c.PopularityScore,
		Description:     c.Description,
	}
}
