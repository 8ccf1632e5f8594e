package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	dbm "globetrotter/internal/models/db_models"
	resp "globetrotter/internal/models/response_models"
)

type DashboardRepository interface {
	CountAccounts(ctx context.Context) (int64, error)
	CountAccountsCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)
	CountTrips(ctx context.Context) (int64, error)
	CountPublicTrips(ctx context.Context) (int64, error)
	CountTripsCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)
	CountStops(ctx context.Context) (int64, error)
	CountActivities(ctx context.Context) (int64, error)
	TopCitiesByStops(ctx context.Context, limit int) ([]resp.CityUsage, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) CountAccounts(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Account{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountAccountsCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Account{}).
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountTrips(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Trip{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountPublicTrips(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("is_public = ?", true).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountTripsCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountStops(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Stop{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountActivities(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.TripActivity{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) TopCitiesByStops(ctx context.Context, limit int) ([]resp.CityUsage, error) {
	var rows []resp.CityUsage
	err := r.db.WithContext(ctx).
		Model(&dbm.Stop{}).
		Select("cities.name AS city_name, cities.country AS country, COUNT(stops.id) AS stop_count").
		Joins("JOIN cities ON stops.city_id = cities.id").
		Where("stops.deleted_at IS NULL").
		Group("cities.name, cities.country").
		Order("stop_count DESC").
		Limit(limit).
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	return rows, nil
}
