package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbm "globetrotter/internal/models/db_models"
)

// ErrNotPermutation is returned by ApplyOrder when the payload does not
// cover exactly the trip's stop set as of the reorder transaction.
var ErrNotPermutation = errors.New("payload is not a permutation of the trip's stops")

type StopRepository interface {
	// InsertAtEnd assigns order_index = max+1 (0 on an empty trip) and
	// inserts, inside one transaction so a concurrent insert cannot
	// hand out the same index.
	InsertAtEnd(ctx context.Context, stop *dbm.Stop) error

	Update(ctx context.Context, stop *dbm.Stop) error

	// DeleteAndCloseGap removes the stop and its activities, then
	// shifts every later index down by one so the trip's indices stay
	// a contiguous 0..N-1 sequence.
	DeleteAndCloseGap(ctx context.Context, tripID uuid.UUID, stopID uuid.UUID) error

	// ApplyOrder locks the trip's stop rows, verifies orderedIDs is an
	// exact permutation of them, and sets each stop's order_index to
	// its position in orderedIDs, all in one transaction. A mismatch,
	// including one caused by a concurrent insert or delete, returns
	// ErrNotPermutation and leaves the indices untouched.
	ApplyOrder(ctx context.Context, tripID uuid.UUID, orderedIDs []uuid.UUID) error

	GetByID(ctx context.Context, stopID string) (*dbm.Stop, error)
	ListByTrip(ctx context.Context, tripID string) ([]dbm.Stop, error)
}

type stopRepository struct {
	db *gorm.DB
}

func NewStopRepository(db *gorm.DB) StopRepository {
	return &stopRepository{db: db}
}

func (r *stopRepository) InsertAtEnd(ctx context.Context, stop *dbm.Stop) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var next int
		err := tx.Model(&dbm.Stop{}).
			Where("trip_id = ?", stop.TripID).
			Select("COALESCE(MAX(order_index) + 1, 0)").
			Scan(&next).Error
		if err != nil {
			return err
		}

		stop.OrderIndex = next
		return tx.Create(stop).Error
	})
}

func (r *stopRepository) Update(ctx context.Context, stop *dbm.Stop) error {
	return r.db.WithContext(ctx).Save(stop).Error
}

func (r *stopRepository) DeleteAndCloseGap(ctx context.Context, tripID uuid.UUID, stopID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stop dbm.Stop
		if err := tx.
			Where("id = ? AND trip_id = ?", stopID, tripID).
			First(&stop).Error; err != nil {
			return err
		}

		if err := tx.Where("stop_id = ?", stop.ID).
			Delete(&dbm.TripActivity{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&stop).Error; err != nil {
			return err
		}

		return tx.Model(&dbm.Stop{}).
			Where("trip_id = ? AND order_index > ?", tripID, stop.OrderIndex).
			UpdateColumn("order_index", gorm.Expr("order_index - 1")).Error
	})
}

func (r *stopRepository) ApplyOrder(ctx context.Context, tripID uuid.UUID, orderedIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var currentIDs []uuid.UUID
		err := tx.Model(&dbm.Stop{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("trip_id = ?", tripID).
			Pluck("id", &currentIDs).Error
		if err != nil {
			return err
		}

		if !isPermutation(orderedIDs, currentIDs) {
			return ErrNotPermutation
		}

		for idx, id := range orderedIDs {
			err := tx.Model(&dbm.Stop{}).
				Where("id = ? AND trip_id = ?", id, tripID).
				UpdateColumn("order_index", idx).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// isPermutation checks set equality with no duplicates. A partial or
// foreign list would silently desync the index sequence.
func isPermutation(payload []uuid.UUID, current []uuid.UUID) bool {
	if len(payload) != len(current) {
		return false
	}

	seen := make(map[uuid.UUID]bool, len(current))
	for _, id := range current {
		seen[id] = true
	}
	for _, id := range payload {
		if !seen[id] {
			return false
		}
		delete(seen, id)
	}
	return len(seen) == 0
}

func (r *stopRepository) GetByID(ctx context.Context, stopID string) (*dbm.Stop, error) {
	var stop dbm.Stop
	err := r.db.WithContext(ctx).
		Where("id = ?", stopID).
		First(&stop).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &stop, nil
}

func (r *stopRepository) ListByTrip(ctx context.Context, tripID string) ([]dbm.Stop, error) {
	var stops []dbm.Stop
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("order_index ASC").
		Preload("City").
		Preload("Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("trip_activities.scheduled_date ASC NULLS LAST, trip_activities.scheduled_time ASC")
		}).
		Preload("Activities.Activity").
		Find(&stops).Error

	if err != nil {
		return nil, err
	}

	return stops, nil
}

