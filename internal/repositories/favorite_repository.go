package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "globetrotter/internal/models/db_models"
)

type FavoriteRepository interface {
	Insert(ctx context.Context, favorite *dbm.Favorite) error
	DeleteByPair(ctx context.Context, accountID uuid.UUID, cityID uuid.UUID) (bool, error)
	ListByAccount(ctx context.Context, accountID string) ([]dbm.Favorite, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Insert(ctx context.Context, favorite *dbm.Favorite) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

func (r *favoriteRepository) DeleteByPair(ctx context.Context, accountID uuid.UUID, cityID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("account_id = ? AND city_id = ?", accountID, cityID).
		Delete(&dbm.Favorite{})

	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

func (r *favoriteRepository) ListByAccount(ctx context.Context, accountID string) ([]dbm.Favorite, error) {
	var favorites []dbm.Favorite
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Preload("City").
		Find(&favorites).Error

	if err != nil {
		return nil, err
	}

	return favorites, nil
}
