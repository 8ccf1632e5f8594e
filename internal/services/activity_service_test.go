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

type activityFixture struct {
	svc      ActivityServiceInterface
	actRepo  *fakeActivityRepo
	stopRepo *fakeStopRepo
	trip     *dbm.Trip
	stop     *dbm.Stop
	owner    string
}

func newActivityFixture(t *testing.T) *activityFixture {
	t.Helper()

	stopRepo := newFakeStopRepo()
	tripRepo := newFakeTripRepo(stopRepo)
	actRepo := newFakeActivityRepo(stopRepo)

	owner := uuid.New()
	trip := seedTrip(tripRepo, owner, false)
	stop := seedStopWithActivities(stopRepo, trip.ID, 0, 0)

	return &activityFixture{
		svc:      NewActivityService(actRepo, stopRepo, tripRepo),
		actRepo:  actRepo,
		stopRepo: stopRepo,
		trip:     trip,
		stop:     stop,
		owner:    owner.String(),
	}
}

func (f *activityFixture) seedCatalog(cost float64, category string) *dbm.CatalogActivity {
	entry := &dbm.CatalogActivity{
		Name:          "Old town walking tour",
		Category:      category,
		EstimatedCost: cost,
	}
	entry.ID = uuid.New()
	f.actRepo.catalog[entry.ID] = entry
	return entry
}

func TestAddActivityCostResolution(t *testing.T) {
	fix := newActivityFixture(t)
	ctx := context.Background()
	catalog := fix.seedCatalog(25, "culture")

	tests := []struct {
		name         string
		req          request_models.CreateActivityRequest
		wantCost     float64
		wantCategory string
	}{
		{
			name:         "custom cost wins over catalog",
			req:          request_models.CreateActivityRequest{Name: "tour", ActivityID: catalog.ID.String(), CustomCost: floatPtr(10)},
			wantCost:     10,
			wantCategory: "culture",
		},
		{
			name:         "catalog estimate when no override",
			req:          request_models.CreateActivityRequest{Name: "tour", ActivityID: catalog.ID.String()},
			wantCost:     25,
			wantCategory: "culture",
		},
		{
			name:         "free-form activity defaults to zero and other",
			req:          request_models.CreateActivityRequest{Name: "beach day"},
			wantCost:     0,
			wantCategory: "other",
		},
		{
			name:         "explicit zero override beats catalog",
			req:          request_models.CreateActivityRequest{Name: "tour", ActivityID: catalog.ID.String(), CustomCost: floatPtr(0)},
			wantCost:     0,
			wantCategory: "culture",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail, err := fix.svc.AddActivity(ctx, fix.stop.ID.String(), fix.owner, tt.req)
			if err != nil {
				t.Fatalf("AddActivity: %v", err)
			}
			if detail.Cost != tt.wantCost {
				t.Errorf("Cost = %v, want %v", detail.Cost, tt.wantCost)
			}
			if detail.Category != tt.wantCategory {
				t.Errorf("Category = %q, want %q", detail.Category, tt.wantCategory)
			}
			if detail.Status != "planned" {
				t.Errorf("Status = %q, want planned", detail.Status)
			}
		})
	}
}

func TestAddActivityErrors(t *testing.T) {
	fix := newActivityFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		stopID  string
		caller  string
		req     request_models.CreateActivityRequest
		wantErr error
	}{
		{
			name:    "unknown stop",
			stopID:  uuid.New().String(),
			caller:  fix.owner,
			req:     request_models.CreateActivityRequest{Name: "tour"},
			wantErr: utils.ErrStopNotFound,
		},
		{
			name:    "non-owner",
			stopID:  fix.stop.ID.String(),
			caller:  uuid.New().String(),
			req:     request_models.CreateActivityRequest{Name: "tour"},
			wantErr: utils.ErrForbidden,
		},
		{
			name:    "unknown catalog reference",
			stopID:  fix.stop.ID.String(),
			caller:  fix.owner,
			req:     request_models.CreateActivityRequest{Name: "tour", ActivityID: uuid.New().String()},
			wantErr: utils.ErrActivityNotFound,
		},
		{
			name:    "bad scheduled date",
			stopID:  fix.stop.ID.String(),
			caller:  fix.owner,
			req:     request_models.CreateActivityRequest{Name: "tour", ScheduledDate: "next tuesday"},
			wantErr: utils.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fix.svc.AddActivity(ctx, tt.stopID, tt.caller, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AddActivity err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateActivity(t *testing.T) {
	fix := newActivityFixture(t)
	ctx := context.Background()

	created, err := fix.svc.AddActivity(ctx, fix.stop.ID.String(), fix.owner, request_models.CreateActivityRequest{
		Name:          "kayaking",
		ScheduledDate: "2024-07-03",
		CustomCost:    floatPtr(30),
	})
	if err != nil {
		t.Fatalf("AddActivity: %v", err)
	}

	status := "done"
	detail, err := fix.svc.UpdateActivity(ctx, created.ID.String(), fix.owner, request_models.UpdateActivityRequest{Status: &status})
	if err != nil {
		t.Fatalf("UpdateActivity: %v", err)
	}
	if detail.Status != "done" {
		t.Errorf("Status = %q, want done", detail.Status)
	}
	if detail.Cost != 30 || detail.ScheduledDate != "2024-07-03" {
		t.Errorf("untouched fields changed: cost %v, date %s", detail.Cost, detail.ScheduledDate)
	}

	// clearing the date uses an explicit empty string
	empty := ""
	detail, err = fix.svc.UpdateActivity(ctx, created.ID.String(), fix.owner, request_models.UpdateActivityRequest{ScheduledDate: &empty})
	if err != nil {
		t.Fatalf("UpdateActivity: %v", err)
	}
	if detail.ScheduledDate != "" {
		t.Errorf("ScheduledDate = %q, want cleared", detail.ScheduledDate)
	}

	if _, err := fix.svc.UpdateActivity(ctx, created.ID.String(), uuid.New().String(), request_models.UpdateActivityRequest{Status: &status}); !errors.Is(err, utils.ErrForbidden) {
		t.Errorf("non-owner update: err = %v, want ErrForbidden", err)
	}
	if _, err := fix.svc.UpdateActivity(ctx, uuid.New().String(), fix.owner, request_models.UpdateActivityRequest{Status: &status}); !errors.Is(err, utils.ErrActivityNotFound) {
		t.Errorf("unknown activity update: err = %v, want ErrActivityNotFound", err)
	}
}

func TestDeleteActivity(t *testing.T) {
	fix := newActivityFixture(t)
	ctx := context.Background()

	created, err := fix.svc.AddActivity(ctx, fix.stop.ID.String(), fix.owner, request_models.CreateActivityRequest{Name: "ferry"})
	if err != nil {
		t.Fatalf("AddActivity: %v", err)
	}

	if err := fix.svc.DeleteActivity(ctx, created.ID.String(), uuid.New().String()); !errors.Is(err, utils.ErrForbidden) {
		t.Fatalf("non-owner delete: err = %v, want ErrForbidden", err)
	}

	if err := fix.svc.DeleteActivity(ctx, created.ID.String(), fix.owner); err != nil {
		t.Fatalf("DeleteActivity: %v", err)
	}
	if err := fix.svc.DeleteActivity(ctx, created.ID.String(), fix.owner); !errors.Is(err, utils.ErrActivityNotFound) {
		t.Errorf("second delete: err = %v, want ErrActivityNotFound", err)
	}
}
