package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, accountID string, request request_models.CreateTripRequest) (*response_models.TripResponse, error)
	GetTripsByAccount(ctx context.Context, accountID string, page int, pageSize int) ([]response_models.TripResponse, error)

	// GetTripDetails serves owners, and anyone at all when the trip is
	// public. callerID is "" for anonymous requests.
	GetTripDetails(ctx context.Context, tripID string, callerID string) (*response_models.TripDetailResponse, error)

	UpdateTrip(ctx context.Context, tripID string, accountID string, request request_models.UpdateTripRequest) (*response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, tripID string, accountID string) error
	CloneTrip(ctx context.Context, tripID string, accountID string) (*response_models.TripResponse, error)
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{
		tripRepo: tripRepo,
	}
}

func (t *TripService) CreateTrip(ctx context.Context, accountID string, request request_models.CreateTripRequest) (*response_models.TripResponse, error) {

	ownerID, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	start, end, err := parseDateRange(request.StartDate, request.EndDate)
	if err != nil {
		return nil, err
	}

	trip := &db_models.Trip{
		AccountID:     ownerID,
		Title:         request.Title,
		Description:   request.Description,
		StartDate:     start,
		EndDate:       end,
		IsPublic:      request.IsPublic,
		CoverPhotoURL: request.CoverPhotoURL,
	}

	if err := t.tripRepo.Insert(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := buildTripResponse(trip)
	return &out, nil
}

func (t *TripService) GetTripsByAccount(ctx context.Context, accountID string, page int, pageSize int) ([]response_models.TripResponse, error) {

	trips, err := t.tripRepo.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, buildTripResponse(&trips[i]))
	}
	return out, nil
}

func (t *TripService) GetTripDetails(ctx context.Context, tripID string, callerID string) (*response_models.TripDetailResponse, error) {
	trip, err := t.tripRepo.GetDetailsByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	isOwner := callerID != "" && trip.AccountID.String() == callerID
	if !trip.IsPublic && !isOwner {
		return nil, utils.ErrForbidden
	}

	out := buildTripDetailResponse(trip, isOwner)
	return out, nil
}

func (t *TripService) UpdateTrip(ctx context.Context, tripID string, accountID string, request request_models.UpdateTripRequest) (*response_models.TripResponse, error) {
	trip, err := t.requireOwnedTrip(ctx, tripID, accountID)
	if err != nil {
		return nil, err
	}

	if request.Title != nil {
		if *request.Title == "" {
			return nil, utils.ErrInvalidInput
		}
		trip.Title = *request.Title
	}
	if request.Description != nil {
		trip.Description = *request.Description
	}
	if request.StartDate != nil {
		start, err := utils.ParseDate(*request.StartDate)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		trip.StartDate = start
	}
	if request.EndDate != nil {
		end, err := utils.ParseDate(*request.EndDate)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		trip.EndDate = end
	}
	if trip.EndDate.Before(trip.StartDate) {
		return nil, utils.ErrInvalidDateRange
	}
	if request.IsPublic != nil {
		trip.IsPublic = *request.IsPublic
	}
	if request.CoverPhotoURL != nil {
		trip.CoverPhotoURL = *request.CoverPhotoURL
	}

	if err := t.tripRepo.Update(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := buildTripResponse(trip)
	return &out, nil
}

func (t *TripService) DeleteTrip(ctx context.Context, tripID string, accountID string) error {
	trip, err := t.requireOwnedTrip(ctx, tripID, accountID)
	if err != nil {
		return err
	}

	if err := t.tripRepo.Delete(ctx, trip.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (t *TripService) CloneTrip(ctx context.Context, tripID string, accountID string) (*response_models.TripResponse, error) {
	newOwner, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	source, err := t.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if source == nil {
		return nil, utils.ErrTripNotFound
	}

	// Owners may duplicate their own private trips; everyone else can
	// clone public trips only.
	if !source.IsPublic && source.AccountID != newOwner {
		return nil, utils.ErrTripNotClonable
	}

	cloneID, err := t.tripRepo.Clone(ctx, tripID, newOwner, source.Title+" (copy)")
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	// re-fetch with stops preloaded so the response reports the
	// copied stop count
	clone, err := t.tripRepo.GetDetailsByID(ctx, cloneID.String())
	if err != nil || clone == nil {
		return nil, utils.ErrDatabaseError
	}

	out := buildTripResponse(clone)
	return &out, nil
}

func (t *TripService) requireOwnedTrip(ctx context.Context, tripID string, accountID string) (*db_models.Trip, error) {
	trip, err := t.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if trip.AccountID.String() != accountID {
		return nil, utils.ErrForbidden
	}
	return trip, nil
}

func parseDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := utils.ParseDate(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, utils.ErrInvalidInput
	}
	end, err := utils.ParseDate(endStr)
	if err != nil {
		return time.Time{}, time.Time{}, utils.ErrInvalidInput
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, utils.ErrInvalidDateRange
	}
	return start, end, nil
}

func buildTripResponse(trip *db_models.Trip) response_models.TripResponse {
	return response_models.TripResponse{
		ID:            trip.ID,
		Title:         trip.Title,
		Description:   trip.Description,
		StartDate:     utils.FormatDate(trip.StartDate),
		EndDate:       utils.FormatDate(trip.EndDate),
		IsPublic:      trip.IsPublic,
		CoverPhotoURL: trip.CoverPhotoURL,
		StopCount:     len(trip.Stops),
	}
}

func buildTripDetailResponse(trip *db_models.Trip, isOwner bool) *response_models.TripDetailResponse {

	stops := make([]response_models.StopResponse, 0, len(trip.Stops))
	totalActivities := 0

	for i := range trip.Stops {
		s := &trip.Stops[i]

		activities := make([]response_models.ActivityDetail, 0, len(s.Activities))
		for j := range s.Activities {
			a := &s.Activities[j]
			activities = append(activities, response_models.ActivityDetail{
				ID:            a.ID,
				Name:          a.ActivityName,
				Category:      a.ResolvedCategory(),
				ScheduledDate: formatOptionalDate(a.ScheduledDate),
				ScheduledTime: a.ScheduledTime,
				Cost:          a.ResolvedCost(),
				Status:        a.Status,
				Notes:         a.Notes,
			})
		}
		totalActivities += len(activities)

		stop := response_models.StopResponse{
			ID:         s.ID,
			OrderIndex: s.OrderIndex,
			CityName:   stopCityName(s),
			StartDate:  utils.FormatDate(s.StartDate),
			EndDate:    utils.FormatDate(s.EndDate),
			Notes:      s.Notes,
			Activities: activities,
		}
		if s.City != nil {
			stop.City = &response_models.CitySummary{
				ID:           s.City.ID,
				Name:         s.City.Name,
				Country:      s.City.Country,
				AvgDailyCost: s.City.AvgDailyCost,
			}
		}
		stops = append(stops, stop)
	}

	return &response_models.TripDetailResponse{
		ID:              trip.ID,
		Title:           trip.Title,
		Description:     trip.Description,
		StartDate:       utils.FormatDate(trip.StartDate),
		EndDate:         utils.FormatDate(trip.EndDate),
		DurationDays:    utils.DaysInclusive(trip.StartDate, trip.EndDate),
		IsPublic:        trip.IsPublic,
		CoverPhotoURL:   trip.CoverPhotoURL,
		IsOwner:         isOwner,
		TotalStops:      len(stops),
		TotalActivities: totalActivities,
		Stops:           stops,
	}
}

func stopCityName(s *db_models.Stop) string {
	if s.City != nil {
		return s.City.Name
	}
	return s.CityName
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return utils.FormatDate(*t)
}
