package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "globetrotter/internal/models/db_models"
)

type CityRepository interface {
	List(ctx context.Context, search string, country string, page int, pageSize int) ([]dbm.City, error)
	GetByID(ctx context.Context, cityID string) (*dbm.City, error)
	ListCountries(ctx context.Context) ([]string, error)
}

type cityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) CityRepository {
	return &cityRepository{db: db}
}

func (r *cityRepository) List(ctx context.Context, search string, country string, page int, pageSize int) ([]dbm.City, error) {

	q := r.db.WithContext(ctx).Model(&dbm.City{})

	if search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%")
	}
	if country != "" {
		q = q.Where("country = ?", country)
	}

	var cities []dbm.City
	err := q.
		Order("popularity_score DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&cities).Error

	if err != nil {
		return nil, err
	}

	return cities, nil
}

func (r *cityRepository) GetByID(ctx context.Context, cityID string) (*dbm.City, error) {
	var city dbm.City
	err := r.db.WithContext(ctx).
		Where("id = ?", cityID).
		First(&city).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &city, nil
}

func (r *cityRepository) ListCountries(ctx context.Context) ([]string, error) {
	var countries []string
	err := r.db.WithContext(ctx).
		Model(&dbm.City{}).
		Distinct("country").
		Order("country ASC").
		Pluck("country", &countries).Error

	if err != nil {
		return nil, err
	}

	return countries, nil
}
