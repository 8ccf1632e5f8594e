package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	dbm "globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/pkg/utils"
)

func seedTrip(repo *fakeTripRepo, owner uuid.UUID, public bool) *dbm.Trip {
	trip := &dbm.Trip{
		AccountID: owner,
		Title:     "Baltic circuit",
		StartDate: day("2024-07-01"),
		EndDate:   day("2024-07-14"),
		IsPublic:  public,
	}
	trip.ID = uuid.New()
	repo.trips[trip.ID] = trip
	return trip
}

func seedStopWithActivities(repo *fakeStopRepo, tripID uuid.UUID, index int, activityCount int) *dbm.Stop {
	stop := &dbm.Stop{
		TripID:     tripID,
		CityName:   "Riga",
		StartDate:  day("2024-07-02"),
		EndDate:    day("2024-07-04"),
		OrderIndex: index,
	}
	stop.ID = uuid.New()
	for i := 0; i < activityCount; i++ {
		act := dbm.TripActivity{
			StopID:       stop.ID,
			ActivityName: "museum",
			CustomCost:   floatPtr(12),
		}
		act.ID = uuid.New()
		stop.Activities = append(stop.Activities, act)
	}
	repo.stops[stop.ID] = stop
	return stop
}

func TestCreateTrip(t *testing.T) {
	svc := NewTripService(newFakeTripRepo(newFakeStopRepo()))
	ctx := context.Background()
	owner := uuid.New().String()

	tests := []struct {
		name    string
		req     request_models.CreateTripRequest
		wantErr error
	}{
		{
			name: "valid trip",
			req:  request_models.CreateTripRequest{Title: "Alps", StartDate: "2024-08-01", EndDate: "2024-08-10"},
		},
		{
			name:    "end before start",
			req:     request_models.CreateTripRequest{Title: "Alps", StartDate: "2024-08-10", EndDate: "2024-08-01"},
			wantErr: utils.ErrInvalidDateRange,
		},
		{
			name:    "unparseable date",
			req:     request_models.CreateTripRequest{Title: "Alps", StartDate: "01/08/2024", EndDate: "2024-08-10"},
			wantErr: utils.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.CreateTrip(ctx, owner, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CreateTrip err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil {
				if resp.ID == uuid.Nil {
					t.Error("created trip has no id")
				}
				if resp.StartDate != "2024-08-01" || resp.EndDate != "2024-08-10" {
					t.Errorf("dates = %s..%s", resp.StartDate, resp.EndDate)
				}
			}
		})
	}
}

func TestGetTripDetailsVisibility(t *testing.T) {
	stopRepo := newFakeStopRepo()
	tripRepo := newFakeTripRepo(stopRepo)
	svc := NewTripService(tripRepo)
	ctx := context.Background()

	owner := uuid.New()
	private := seedTrip(tripRepo, owner, false)
	public := seedTrip(tripRepo, owner, true)
	stranger := uuid.New().String()

	tests := []struct {
		name      string
		tripID    string
		caller    string
		wantErr   error
		wantOwner bool
	}{
		{"owner reads private", private.ID.String(), owner.String(), nil, true},
		{"anonymous reads private", private.ID.String(), "", utils.ErrForbidden, false},
		{"stranger reads private", private.ID.String(), stranger, utils.ErrForbidden, false},
		{"anonymous reads public", public.ID.String(), "", nil, false},
		{"stranger reads public", public.ID.String(), stranger, nil, false},
		{"owner reads public", public.ID.String(), owner.String(), nil, true},
		{"unknown trip", uuid.New().String(), owner.String(), utils.ErrTripNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail, err := svc.GetTripDetails(ctx, tt.tripID, tt.caller)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("GetTripDetails err = %v, want %v", err, tt.wantErr)
			}
			if err == nil && detail.IsOwner != tt.wantOwner {
				t.Errorf("IsOwner = %v, want %v", detail.IsOwner, tt.wantOwner)
			}
		})
	}
}

func TestGetTripDetailsCounts(t *testing.T) {
	stopRepo := newFakeStopRepo()
	tripRepo := newFakeTripRepo(stopRepo)
	svc := NewTripService(tripRepo)

	owner := uuid.New()
	trip := seedTrip(tripRepo, owner, false)
	seedStopWithActivities(stopRepo, trip.ID, 0, 2)
	seedStopWithActivities(stopRepo, trip.ID, 1, 3)

	detail, err := svc.GetTripDetails(context.Background(), trip.ID.String(), owner.String())
	if err != nil {
		t.Fatalf("GetTripDetails: %v", err)
	}
	if detail.TotalStops != 2 || detail.TotalActivities != 5 {
		t.Errorf("counts = %d stops, %d activities, want 2 and 5", detail.TotalStops, detail.TotalActivities)
	}
	if detail.DurationDays != 14 {
		t.Errorf("DurationDays = %d, want 14", detail.DurationDays)
	}
}

func TestUpdateTrip(t *testing.T) {
	tripRepo := newFakeTripRepo(newFakeStopRepo())
	svc := NewTripService(tripRepo)
	ctx := context.Background()

	owner := uuid.New()
	trip := seedTrip(tripRepo, owner, false)

	newTitle := "Baltic circuit v2"
	resp, err := svc.UpdateTrip(ctx, trip.ID.String(), owner.String(), request_models.UpdateTripRequest{Title: &newTitle})
	if err != nil {
		t.Fatalf("UpdateTrip: %v", err)
	}
	if resp.Title != newTitle {
		t.Errorf("title = %q, want %q", resp.Title, newTitle)
	}
	if resp.StartDate != "2024-07-01" {
		t.Errorf("untouched start date changed: %s", resp.StartDate)
	}

	badEnd := "2024-06-01"
	if _, err := svc.UpdateTrip(ctx, trip.ID.String(), owner.String(), request_models.UpdateTripRequest{EndDate: &badEnd}); !errors.Is(err, utils.ErrInvalidDateRange) {
		t.Errorf("end moved before start: err = %v, want ErrInvalidDateRange", err)
	}

	if _, err := svc.UpdateTrip(ctx, trip.ID.String(), uuid.New().String(), request_models.UpdateTripRequest{Title: &newTitle}); !errors.Is(err, utils.ErrForbidden) {
		t.Errorf("non-owner update: err = %v, want ErrForbidden", err)
	}
}

func TestDeleteTripRemovesStops(t *testing.T) {
	stopRepo := newFakeStopRepo()
	tripRepo := newFakeTripRepo(stopRepo)
	svc := NewTripService(tripRepo)
	ctx := context.Background()

	owner := uuid.New()
	trip := seedTrip(tripRepo, owner, false)
	seedStopWithActivities(stopRepo, trip.ID, 0, 1)

	if err := svc.DeleteTrip(ctx, trip.ID.String(), uuid.New().String()); !errors.Is(err, utils.ErrForbidden) {
		t.Fatalf("non-owner delete: err = %v, want ErrForbidden", err)
	}

	if err := svc.DeleteTrip(ctx, trip.ID.String(), owner.String()); err != nil {
		t.Fatalf("DeleteTrip: %v", err)
	}
	if len(tripRepo.trips) != 0 {
		t.Error("trip still present after delete")
	}
	if len(stopRepo.stops) != 0 {
		t.Error("stops not cascaded on trip delete")
	}
}

func TestCloneTrip(t *testing.T) {
	stopRepo := newFakeStopRepo()
	tripRepo := newFakeTripRepo(stopRepo)
	svc := NewTripService(tripRepo)
	ctx := context.Background()

	owner := uuid.New()
	source := seedTrip(tripRepo, owner, true)
	seedStopWithActivities(stopRepo, source.ID, 0, 2)
	seedStopWithActivities(stopRepo, source.ID, 1, 0)
	seedStopWithActivities(stopRepo, source.ID, 2, 1)

	cloner := uuid.New()
	resp, err := svc.CloneTrip(ctx, source.ID.String(), cloner.String())
	if err != nil {
		t.Fatalf("CloneTrip: %v", err)
	}

	if resp.ID == source.ID {
		t.Fatal("clone reuses source id")
	}
	if resp.Title != "Baltic circuit (copy)" {
		t.Errorf("clone title = %q", resp.Title)
	}
	if resp.IsPublic {
		t.Error("clone should start private")
	}
	if resp.StopCount != 3 {
		t.Errorf("clone response StopCount = %d, want 3", resp.StopCount)
	}

	clone := tripRepo.trips[resp.ID]
	if clone == nil {
		t.Fatal("clone not persisted")
	}
	if clone.AccountID != cloner {
		t.Errorf("clone owner = %v, want %v", clone.AccountID, cloner)
	}
	if clone.StartDate != source.StartDate || clone.EndDate != source.EndDate {
		t.Error("clone dates differ from source")
	}

	srcStops := stopRepo.sortedByTrip(source.ID)
	cloneStops := stopRepo.sortedByTrip(resp.ID)
	if len(cloneStops) != len(srcStops) {
		t.Fatalf("clone has %d stops, want %d", len(cloneStops), len(srcStops))
	}
	for i := range cloneStops {
		if cloneStops[i].ID == srcStops[i].ID {
			t.Errorf("stop %d: clone reuses source stop id", i)
		}
		if cloneStops[i].OrderIndex != srcStops[i].OrderIndex {
			t.Errorf("stop %d: order index %d, want %d", i, cloneStops[i].OrderIndex, srcStops[i].OrderIndex)
		}
		if len(cloneStops[i].Activities) != len(srcStops[i].Activities) {
			t.Errorf("stop %d: %d activities, want %d", i, len(cloneStops[i].Activities), len(srcStops[i].Activities))
		}
		for j := range cloneStops[i].Activities {
			if cloneStops[i].Activities[j].ID == srcStops[i].Activities[j].ID {
				t.Errorf("stop %d activity %d: clone reuses source activity id", i, j)
			}
		}
	}
}

func TestCloneTripGating(t *testing.T) {
	tripRepo := newFakeTripRepo(newFakeStopRepo())
	svc := NewTripService(tripRepo)
	ctx := context.Background()

	owner := uuid.New()
	private := seedTrip(tripRepo, owner, false)

	if _, err := svc.CloneTrip(ctx, private.ID.String(), uuid.New().String()); !errors.Is(err, utils.ErrTripNotClonable) {
		t.Errorf("stranger clones private trip: err = %v, want ErrTripNotClonable", err)
	}

	// owners may duplicate their own private trips
	if _, err := svc.CloneTrip(ctx, private.ID.String(), owner.String()); err != nil {
		t.Errorf("owner clones own private trip: err = %v, want nil", err)
	}

	if _, err := svc.CloneTrip(ctx, uuid.New().String(), owner.String()); !errors.Is(err, utils.ErrTripNotFound) {
		t.Errorf("clone of unknown trip: err = %v, want ErrTripNotFound", err)
	}
}
