package services

import (
	"context"

	"github.com/google/uuid"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type FavoriteServiceInterface interface {
	ListFavorites(ctx context.Context, accountID string) ([]response_models.FavoriteResponse, error)
	AddFavorite(ctx context.Context, accountID string, cityID string) error
	RemoveFavorite(ctx context.Context, accountID string, cityID string) error
}

type FavoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	cityRepo     repositories.CityRepository
}

func NewFavoriteService(favoriteRepo repositories.FavoriteRepository, cityRepo repositories.CityRepository) FavoriteServiceInterface {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		cityRepo:     cityRepo,
	}
}

func (s *FavoriteService) ListFavorites(ctx context.Context, accountID string) ([]response_models.FavoriteResponse, error) {
	favorites, err := s.favoriteRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		f := &favorites[i]
		if f.City == nil {
			continue
		}
		out = append(out, response_models.FavoriteResponse{
			ID:   f.ID,
			City: buildCityResponse(f.City),
		})
	}
	return out, nil
}

func (s *FavoriteService) AddFavorite(ctx context.Context, accountID string, cityID string) error {
	account, city, err := parsePair(accountID, cityID)
	if err != nil {
		return err
	}

	existing, err := s.cityRepo.GetByID(ctx, cityID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrCityNotFound
	}

	favorite := &db_models.Favorite{
		AccountID: account,
		CityID:    city,
	}

	// The (account, city) pair carries a unique index; a duplicate
	// insert surfaces as a constraint error rather than a pre-check race.
	if err := s.favoriteRepo.Insert(ctx, favorite); err != nil {
		if repositories.IsUniqueViolation(err) {
			return utils.ErrDuplicateFavorite
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *FavoriteService) RemoveFavorite(ctx context.Context, accountID string, cityID string) error {
	account, city, err := parsePair(accountID, cityID)
	if err != nil {
		return err
	}

	removed, err := s.favoriteRepo.DeleteByPair(ctx, account, city)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !removed {
		return utils.ErrFavoriteNotFound
	}
	return nil
}

func parsePair(accountID string, cityID string) (uuid.UUID, uuid.UUID, error) {
	account, err := uuid.Parse(accountID)
	if err != nil {
		return uuid.Nil, uuid.Nil, utils.ErrInvalidInput
	}
	city, err := uuid.Parse(cityID)
	if err != nil {
		return uuid.Nil, uuid.Nil, utils.ErrInvalidInput
	}
	return account, city, nil
}
