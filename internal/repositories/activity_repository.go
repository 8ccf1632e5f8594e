package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "globetrotter/internal/models/db_models"
)

type ActivityRepository interface {
	Insert(ctx context.Context, activity *dbm.TripActivity) error
	Update(ctx context.Context, activity *dbm.TripActivity) error
	Delete(ctx context.Context, activityID string) error
	GetByID(ctx context.Context, activityID string) (*dbm.TripActivity, error)

	FindCatalogByID(ctx context.Context, catalogID string) (*dbm.CatalogActivity, error)

	// TripIDForActivity joins trip_activities -> stops to find the trip
	// a user-scheduled activity belongs to, for the ownership check.
	TripIDForActivity(ctx context.Context, activityID string) (string, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Insert(ctx context.Context, activity *dbm.TripActivity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) Update(ctx context.Context, activity *dbm.TripActivity) error {
	return r.db.WithContext(ctx).Save(activity).Error
}

func (r *activityRepository) Delete(ctx context.Context, activityID string) error {
	return r.db.WithContext(ctx).
		Delete(&dbm.TripActivity{}, "id = ?", activityID).Error
}

func (r *activityRepository) GetByID(ctx context.Context, activityID string) (*dbm.TripActivity, error) {
	var activity dbm.TripActivity
	err := r.db.WithContext(ctx).
		Where("id = ?", activityID).
		Preload("Activity").
		First(&activity).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &activity, nil
}

func (r *activityRepository) FindCatalogByID(ctx context.Context, catalogID string) (*dbm.CatalogActivity, error) {
	var catalog dbm.CatalogActivity
	err := r.db.WithContext(ctx).
		Where("id = ?", catalogID).
		First(&catalog).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &catalog, nil
}

func (r *activityRepository) TripIDForActivity(ctx context.Context, activityID string) (string, error) {
	var tripID string
	err := r.db.WithContext(ctx).
		Model(&dbm.TripActivity{}).
		Select("stops.trip_id").
		Joins("JOIN stops ON trip_activities.stop_id = stops.id").
		Where("trip_activities.id = ?", activityID).
		Scan(&tripID).Error

	if err != nil {
		return "", err
	}

	return tripID, nil
}
