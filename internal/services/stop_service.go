package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type StopServiceInterface interface {
	GetStops(ctx context.Context, tripID string, callerID string) ([]response_models.StopResponse, error)
	AddStop(ctx context.Context, tripID string, accountID string, request request_models.CreateStopRequest) (*response_models.StopResponse, error)
	UpdateStop(ctx context.Context, tripID string, stopID string, accountID string, request request_models.UpdateStopRequest) (*response_models.StopResponse, error)
	DeleteStop(ctx context.Context, tripID string, stopID string, accountID string) error
	ReorderStops(ctx context.Context, tripID string, accountID string, request request_models.ReorderStopsRequest) error
}

type StopService struct {
	stopRepo repositories.StopRepository
	tripRepo repositories.TripRepository
}

func NewStopService(stopRepo repositories.StopRepository, tripRepo repositories.TripRepository) StopServiceInterface {
	return &StopService{
		stopRepo: stopRepo,
		tripRepo: tripRepo,
	}
}

func (s *StopService) GetStops(ctx context.Context, tripID string, callerID string) ([]response_models.StopResponse, error) {
	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if !trip.IsPublic && trip.AccountID.String() != callerID {
		return nil, utils.ErrForbidden
	}

	stops, err := s.stopRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.StopResponse, 0, len(stops))
	for i := range stops {
		out = append(out, buildStopResponse(&stops[i]))
	}
	return out, nil
}

func (s *StopService) AddStop(ctx context.Context, tripID string, accountID string, request request_models.CreateStopRequest) (*response_models.StopResponse, error) {
	trip, err := s.requireOwnedTrip(ctx, tripID, accountID)
	if err != nil {
		return nil, err
	}

	start, end, err := parseDateRange(request.StartDate, request.EndDate)
	if err != nil {
		return nil, err
	}
	if start.Before(trip.StartDate) || end.After(trip.EndDate) {
		return nil, utils.ErrStopOutsideTrip
	}
	if request.CityID == "" && request.CityName == "" {
		return nil, utils.ErrInvalidInput
	}

	stop := &db_models.Stop{
		TripID:    trip.ID,
		CityName:  request.CityName,
		StartDate: start,
		EndDate:   end,
		Notes:     request.Notes,
	}
	if request.CityID != "" {
		cityID, err := uuid.Parse(request.CityID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		stop.CityID = &cityID
	}

	if err := s.stopRepo.InsertAtEnd(ctx, stop); err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := buildStopResponse(stop)
	return &out, nil
}

func (s *StopService) UpdateStop(ctx context.Context, tripID string, stopID string, accountID string, request request_models.UpdateStopRequest) (*response_models.StopResponse, error) {
	trip, err := s.requireOwnedTrip(ctx, tripID, accountID)
	if err != nil {
		return nil, err
	}

	stop, err := s.stopRepo.GetByID(ctx, stopID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if stop == nil || stop.TripID != trip.ID {
		return nil, utils.ErrStopNotFound
	}

	if request.CityID != nil {
		if *request.CityID == "" {
			stop.CityID = nil
		} else {
			cityID, err := uuid.Parse(*request.CityID)
			if err != nil {
				return nil, utils.ErrInvalidInput
			}
			stop.CityID = &cityID
		}
	}
	if request.CityName != nil {
		stop.CityName = *request.CityName
	}
	if request.StartDate != nil {
		start, err := utils.ParseDate(*request.StartDate)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		stop.StartDate = start
	}
	if request.EndDate != nil {
		end, err := utils.ParseDate(*request.EndDate)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		stop.EndDate = end
	}
	if request.Notes != nil {
		stop.Notes = *request.Notes
	}

	if stop.EndDate.Before(stop.StartDate) {
		return nil, utils.ErrInvalidDateRange
	}
	if stop.StartDate.Before(trip.StartDate) || stop.EndDate.After(trip.EndDate) {
		return nil, utils.ErrStopOutsideTrip
	}

	if err := s.stopRepo.Update(ctx, stop); err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := buildStopResponse(stop)
	return &out, nil
}

func (s *StopService) DeleteStop(ctx context.Context, tripID string, stopID string, accountID string) error {
	trip, err := s.requireOwnedTrip(ctx, tripID, accountID)
	if err != nil {
		return err
	}

	stop, err := s.stopRepo.GetByID(ctx, stopID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if stop == nil || stop.TripID != trip.ID {
		return utils.ErrStopNotFound
	}

	if err := s.stopRepo.DeleteAndCloseGap(ctx, trip.ID, stop.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *StopService) ReorderStops(ctx context.Context, tripID string, accountID string, request request_models.ReorderStopsRequest) error {
	trip, err := s.requireOwnedTrip(ctx, tripID, accountID)
	if err != nil {
		return err
	}

	orderedIDs := make([]uuid.UUID, 0, len(request.StopIDs))
	for _, raw := range request.StopIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return utils.ErrInvalidReorder
		}
		orderedIDs = append(orderedIDs, id)
	}

	// The permutation check happens inside ApplyOrder's transaction,
	// against the locked stop set, so a concurrent insert or delete
	// cannot slip past it.
	if err := s.stopRepo.ApplyOrder(ctx, trip.ID, orderedIDs); err != nil {
		if errors.Is(err, repositories.ErrNotPermutation) {
			return utils.ErrInvalidReorder
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *StopService) requireOwnedTrip(ctx context.Context, tripID string, accountID string) (*db_models.Trip, error) {
	trip, err := s.tripRepo.GetByID(ctx, tripID)
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

func buildStopResponse(s *db_models.Stop) response_models.StopResponse {

	activities := make([]response_models.ActivityDetail, 0, len(s.Activities))
	for i := range s.Activities {
		a := &s.Activities[i]
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

	out := response_models.StopResponse{
		ID:         s.ID,
		OrderIndex: s.OrderIndex,
		CityName:   stopCityName(s),
		StartDate:  utils.FormatDate(s.StartDate),
		EndDate:    utils.FormatDate(s.EndDate),
		Notes:      s.Notes,
		Activities: activities,
	}
	if s.City != nil {
		out.City = &response_models.CitySummary{
			ID:           s.City.ID,
			Name:         s.City.Name,
			Country:      s.City.Country,
			AvgDailyCost: s.City.AvgDailyCost,
		}
	}
	return out
}
