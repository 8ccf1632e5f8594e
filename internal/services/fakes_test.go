package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	dbm "globetrotter/internal/models/db_models"
	"globetrotter/internal/repositories"
)

// In-memory repository fakes. Insert paths assign fresh uuids the way
// the gorm BeforeCreate hook would.

type fakeTripRepo struct {
	trips map[uuid.UUID]*dbm.Trip
	stops *fakeStopRepo
}

func newFakeTripRepo(stops *fakeStopRepo) *fakeTripRepo {
	return &fakeTripRepo{
		trips: make(map[uuid.UUID]*dbm.Trip),
		stops: stops,
	}
}

func (f *fakeTripRepo) Insert(ctx context.Context, trip *dbm.Trip) error {
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	f.trips[trip.ID] = trip
	return nil
}

func (f *fakeTripRepo) Update(ctx context.Context, trip *dbm.Trip) error {
	f.trips[trip.ID] = trip
	return nil
}

func (f *fakeTripRepo) Delete(ctx context.Context, tripID uuid.UUID) error {
	delete(f.trips, tripID)
	if f.stops != nil {
		for id, s := range f.stops.stops {
			if s.TripID == tripID {
				delete(f.stops.stops, id)
			}
		}
	}
	return nil
}

func (f *fakeTripRepo) GetByID(ctx context.Context, tripID string) (*dbm.Trip, error) {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return nil, nil
	}
	trip, ok := f.trips[id]
	if !ok {
		return nil, nil
	}
	return trip, nil
}

func (f *fakeTripRepo) GetDetailsByID(ctx context.Context, tripID string) (*dbm.Trip, error) {
	trip, err := f.GetByID(ctx, tripID)
	if err != nil || trip == nil {
		return trip, err
	}
	if f.stops != nil {
		trip.Stops = f.stops.sortedByTrip(trip.ID)
	}
	return trip, nil
}

func (f *fakeTripRepo) ListByAccount(ctx context.Context, accountID string, page int, pageSize int) ([]dbm.Trip, error) {
	var out []dbm.Trip
	for _, t := range f.trips {
		if t.AccountID.String() == accountID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (f *fakeTripRepo) GetOwnerID(ctx context.Context, tripID string) (uuid.UUID, error) {
	trip, _ := f.GetByID(ctx, tripID)
	if trip == nil {
		return uuid.Nil, nil
	}
	return trip.AccountID, nil
}

func (f *fakeTripRepo) Clone(ctx context.Context, sourceID string, newOwner uuid.UUID, title string) (uuid.UUID, error) {
	src, _ := f.GetDetailsByID(ctx, sourceID)
	if src == nil {
		return uuid.Nil, nil
	}

	clone := src.CloneGraph(newOwner, title)
	clone.ID = uuid.New()
	for i := range clone.Stops {
		s := &clone.Stops[i]
		s.ID = uuid.New()
		s.TripID = clone.ID
		for j := range s.Activities {
			a := &s.Activities[j]
			a.ID = uuid.New()
			a.StopID = s.ID
		}
		if f.stops != nil {
			cp := *s
			f.stops.stops[cp.ID] = &cp
		}
	}

	// stop rows live in the stop table; GetByID does not preload them
	clone.Stops = nil
	f.trips[clone.ID] = clone
	return clone.ID, nil
}

type fakeStopRepo struct {
	stops map[uuid.UUID]*dbm.Stop
}

func newFakeStopRepo() *fakeStopRepo {
	return &fakeStopRepo{stops: make(map[uuid.UUID]*dbm.Stop)}
}

func (f *fakeStopRepo) sortedByTrip(tripID uuid.UUID) []dbm.Stop {
	var out []dbm.Stop
	for _, s := range f.stops {
		if s.TripID == tripID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out
}

func (f *fakeStopRepo) InsertAtEnd(ctx context.Context, stop *dbm.Stop) error {
	next := 0
	for _, s := range f.stops {
		if s.TripID == stop.TripID && s.OrderIndex >= next {
			next = s.OrderIndex + 1
		}
	}
	stop.OrderIndex = next
	if stop.ID == uuid.Nil {
		stop.ID = uuid.New()
	}
	f.stops[stop.ID] = stop
	return nil
}

func (f *fakeStopRepo) Update(ctx context.Context, stop *dbm.Stop) error {
	f.stops[stop.ID] = stop
	return nil
}

func (f *fakeStopRepo) DeleteAndCloseGap(ctx context.Context, tripID uuid.UUID, stopID uuid.UUID) error {
	removed, ok := f.stops[stopID]
	if !ok || removed.TripID != tripID {
		return nil
	}
	delete(f.stops, stopID)
	for _, s := range f.stops {
		if s.TripID == tripID && s.OrderIndex > removed.OrderIndex {
			s.OrderIndex--
		}
	}
	return nil
}

// ApplyOrder validates the payload against the trip's current stop set
// before writing, like the locked read in the gorm implementation.
func (f *fakeStopRepo) ApplyOrder(ctx context.Context, tripID uuid.UUID, orderedIDs []uuid.UUID) error {
	current := make(map[uuid.UUID]bool)
	for _, s := range f.stops {
		if s.TripID == tripID {
			current[s.ID] = true
		}
	}

	if len(orderedIDs) != len(current) {
		return repositories.ErrNotPermutation
	}
	for _, id := range orderedIDs {
		if !current[id] {
			return repositories.ErrNotPermutation
		}
		delete(current, id)
	}

	for idx, id := range orderedIDs {
		f.stops[id].OrderIndex = idx
	}
	return nil
}

func (f *fakeStopRepo) GetByID(ctx context.Context, stopID string) (*dbm.Stop, error) {
	id, err := uuid.Parse(stopID)
	if err != nil {
		return nil, nil
	}
	s, ok := f.stops[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (f *fakeStopRepo) ListByTrip(ctx context.Context, tripID string) ([]dbm.Stop, error) {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return nil, nil
	}
	return f.sortedByTrip(id), nil
}


type fakeActivityRepo struct {
	activities map[uuid.UUID]*dbm.TripActivity
	catalog    map[uuid.UUID]*dbm.CatalogActivity
	stops      *fakeStopRepo
}

func newFakeActivityRepo(stops *fakeStopRepo) *fakeActivityRepo {
	return &fakeActivityRepo{
		activities: make(map[uuid.UUID]*dbm.TripActivity),
		catalog:    make(map[uuid.UUID]*dbm.CatalogActivity),
		stops:      stops,
	}
}

func (f *fakeActivityRepo) Insert(ctx context.Context, activity *dbm.TripActivity) error {
	if activity.ID == uuid.Nil {
		activity.ID = uuid.New()
	}
	f.activities[activity.ID] = activity
	return nil
}

func (f *fakeActivityRepo) Update(ctx context.Context, activity *dbm.TripActivity) error {
	f.activities[activity.ID] = activity
	return nil
}

func (f *fakeActivityRepo) Delete(ctx context.Context, activityID string) error {
	id, err := uuid.Parse(activityID)
	if err != nil {
		return nil
	}
	delete(f.activities, id)
	return nil
}

func (f *fakeActivityRepo) GetByID(ctx context.Context, activityID string) (*dbm.TripActivity, error) {
	id, err := uuid.Parse(activityID)
	if err != nil {
		return nil, nil
	}
	a, ok := f.activities[id]
	if !ok {
		return nil, nil
	}
	return a, nil
}

func (f *fakeActivityRepo) FindCatalogByID(ctx context.Context, catalogID string) (*dbm.CatalogActivity, error) {
	id, err := uuid.Parse(catalogID)
	if err != nil {
		return nil, nil
	}
	c, ok := f.catalog[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (f *fakeActivityRepo) TripIDForActivity(ctx context.Context, activityID string) (string, error) {
	a, _ := f.GetByID(ctx, activityID)
	if a == nil {
		return "", nil
	}
	s, ok := f.stops.stops[a.StopID]
	if !ok {
		return "", nil
	}
	return s.TripID.String(), nil
}

// test data helpers

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

func floatPtr(v float64) *float64 { return &v }
