package services

import (
	"context"

	"github.com/google/uuid"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type ActivityServiceInterface interface {
	AddActivity(ctx context.Context, stopID string, accountID string, request request_models.CreateActivityRequest) (*response_models.ActivityDetail, error)
	UpdateActivity(ctx context.Context, activityID string, accountID string, request request_models.UpdateActivityRequest) (*response_models.ActivityDetail, error)
	DeleteActivity(ctx context.Context, activityID string, accountID string) error
}

type ActivityService struct {
	activityRepo repositories.ActivityRepository
	stopRepo     repositories.StopRepository
	tripRepo     repositories.TripRepository
}

func NewActivityService(
	activityRepo repositories.ActivityRepository,
	stopRepo repositories.StopRepository,
	tripRepo repositories.TripRepository,
) ActivityServiceInterface {
	return &ActivityService{
		activityRepo: activityRepo,
		stopRepo:     stopRepo,
		tripRepo:     tripRepo,
	}
}

func (s *ActivityService) AddActivity(ctx context.Context, stopID string, accountID string, request request_models.CreateActivityRequest) (*response_models.ActivityDetail, error) {

	stop, err := s.stopRepo.GetByID(ctx, stopID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if stop == nil {
		return nil, utils.ErrStopNotFound
	}

	if err := s.requireTripOwner(ctx, stop.TripID.String(), accountID); err != nil {
		return nil, err
	}

	activity := &db_models.TripActivity{
		StopID:        stop.ID,
		ActivityName:  request.Name,
		ScheduledTime: request.ScheduledTime,
		CustomCost:    request.CustomCost,
		Status:        "planned",
		Notes:         request.Notes,
	}

	if request.ScheduledDate != "" {
		date, err := utils.ParseDate(request.ScheduledDate)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		activity.ScheduledDate = &date
	}

	if request.ActivityID != "" {
		catalog, err := s.activityRepo.FindCatalogByID(ctx, request.ActivityID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if catalog == nil {
			return nil, utils.ErrActivityNotFound
		}
		activity.ActivityID = &catalog.ID
		activity.Activity = catalog
	}

	if err := s.activityRepo.Insert(ctx, activity); err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := buildActivityDetail(activity)
	return &out, nil
}

func (s *ActivityService) UpdateActivity(ctx context.Context, activityID string, accountID string, request request_models.UpdateActivityRequest) (*response_models.ActivityDetail, error) {

	activity, err := s.requireOwnedActivity(ctx, activityID, accountID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		if *request.Name == "" {
			return nil, utils.ErrInvalidInput
		}
		activity.ActivityName = *request.Name
	}
	if request.ScheduledDate != nil {
		if *request.ScheduledDate == "" {
			activity.ScheduledDate = nil
		} else {
			date, err := utils.ParseDate(*request.ScheduledDate)
			if err != nil {
				return nil, utils.ErrInvalidInput
			}
			activity.ScheduledDate = &date
		}
	}
	if request.ScheduledTime != nil {
		activity.ScheduledTime = *request.ScheduledTime
	}
	if request.CustomCost != nil {
		activity.CustomCost = request.CustomCost
	}
	if request.Status != nil {
		activity.Status = *request.Status
	}
	if request.Notes != nil {
		activity.Notes = *request.Notes
	}

	if err := s.activityRepo.Update(ctx, activity); err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := buildActivityDetail(activity)
	return &out, nil
}

func (s *ActivityService) DeleteActivity(ctx context.Context, activityID string, accountID string) error {
	if _, err := s.requireOwnedActivity(ctx, activityID, accountID); err != nil {
		return err
	}

	if err := s.activityRepo.Delete(ctx, activityID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// requireOwnedActivity re-verifies ownership on every mutation by
// joining the activity up to its trip's owner; nothing is cached.
func (s *ActivityService) requireOwnedActivity(ctx context.Context, activityID string, accountID string) (*db_models.TripActivity, error) {
	activity, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if activity == nil {
		return nil, utils.ErrActivityNotFound
	}

	tripID, err := s.activityRepo.TripIDForActivity(ctx, activityID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if tripID == "" {
		return nil, utils.ErrActivityNotFound
	}

	if err := s.requireTripOwner(ctx, tripID, accountID); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *ActivityService) requireTripOwner(ctx context.Context, tripID string, accountID string) error {
	ownerID, err := s.tripRepo.GetOwnerID(ctx, tripID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if ownerID == uuid.Nil {
		return utils.ErrTripNotFound
	}
	if ownerID.String() != accountID {
		return utils.ErrForbidden
	}
	return nil
}

func buildActivityDetail(a *db_models.TripActivity) response_models.ActivityDetail {
	return response_models.ActivityDetail{
		ID:            a.ID,
		Name:          a.ActivityName,
		Category:      a.ResolvedCategory(),
		ScheduledDate: formatOptionalDate(a.ScheduledDate),
		ScheduledTime: a.ScheduledTime,
		Cost:          a.ResolvedCost(),
		Status:        a.Status,
		Notes:         a.Notes,
	}
}
