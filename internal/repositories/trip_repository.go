package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "globetrotter/internal/models/db_models"
)

type TripRepository interface {
	Insert(ctx context.Context, trip *dbm.Trip) error
	Update(ctx context.Context, trip *dbm.Trip) error
	Delete(ctx context.Context, tripID uuid.UUID) error

	GetByID(ctx context.Context, tripID string) (*dbm.Trip, error)

	// GetDetailsByID loads the trip with stops ordered by order_index
	// and each stop's activities ordered by schedule.
	GetDetailsByID(ctx context.Context, tripID string) (*dbm.Trip, error)

	ListByAccount(ctx context.Context, accountID string, page int, pageSize int) ([]dbm.Trip, error)

	// GetOwnerID is the single authorization lookup used before every
	// stop/activity mutation.
	GetOwnerID(ctx context.Context, tripID string) (uuid.UUID, error)

	// Clone deep-copies the trip and all of its stops and activities
	// into a new private trip owned by newOwner, in one transaction.
	// Every row gets fresh identity; order_index and dates carry over.
	Clone(ctx context.Context, sourceID string, newOwner uuid.UUID, title string) (uuid.UUID, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Insert(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) Update(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

func (r *tripRepository) Delete(ctx context.Context, tripID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		subStopIDs := tx.Model(&dbm.Stop{}).
			Select("id").
			Where("trip_id = ?", tripID)

		if err := tx.Where("stop_id IN (?)", subStopIDs).
			Delete(&dbm.TripActivity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", tripID).
			Delete(&dbm.Stop{}).Error; err != nil {
			return err
		}
		return tx.Delete(&dbm.Trip{}, "id = ?", tripID).Error
	})
}

func (r *tripRepository) GetByID(ctx context.Context, tripID string) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Where("id = ?", tripID).
		First(&trip).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (r *tripRepository) GetDetailsByID(ctx context.Context, tripID string) (*dbm.Trip, error) {

	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Where("id = ?", tripID).
		Preload("Stops", func(db *gorm.DB) *gorm.DB {
			return db.Order("stops.order_index ASC")
		}).
		Preload("Stops.City").
		Preload("Stops.Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("trip_activities.scheduled_date ASC NULLS LAST, trip_activities.scheduled_time ASC")
		}).
		Preload("Stops.Activities.Activity").
		First(&trip).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (r *tripRepository) ListByAccount(ctx context.Context, accountID string, page int, pageSize int) ([]dbm.Trip, error) {

	var trips []dbm.Trip
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("start_date ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Preload("Stops").
		Find(&trips).Error

	if err != nil {
		return nil, err
	}

	return trips, nil
}

func (r *tripRepository) GetOwnerID(ctx context.Context, tripID string) (uuid.UUID, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Select("id", "account_id").
		Where("id = ?", tripID).
		First(&trip).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, nil
		}
		return uuid.Nil, err
	}

	return trip.AccountID, nil
}

func (r *tripRepository) Clone(ctx context.Context, sourceID string, newOwner uuid.UUID, title string) (uuid.UUID, error) {

	var outID uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var src dbm.Trip
		if err := tx.
			Where("id = ?", sourceID).
			Preload("Stops", func(db *gorm.DB) *gorm.DB {
				return db.Order("stops.order_index ASC")
			}).
			Preload("Stops.Activities").
			First(&src).Error; err != nil {
			return err
		}

		clone := src.CloneGraph(newOwner, title)
		if err := tx.Create(clone).Error; err != nil {
			return err
		}

		outID = clone.ID
		return nil
	})

	return outID, err
}
