package services

import (
	"context"
	"time"

	resp "globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

const topCitiesLimit = 10

type DashboardService interface {
	BuildDashboard(ctx context.Context, rng resp.TimeRange) (*resp.DashboardReport, error)
}

type dashboardService struct {
	repo repositories.DashboardRepository
}

func NewDashboardService(repo repositories.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo}
}

// normalizeRange ensures sane defaults and ordering
func normalizeRange(r resp.TimeRange) resp.TimeRange {
	out := r
	if out.End.IsZero() {
		out.End = time.Now().UTC()
	}
	if out.Start.IsZero() {
		out.Start = out.End.AddDate(0, 0, -30) // last 30 days default
	}
	if out.Start.After(out.End) {
		out.Start, out.End = out.End, out.Start
	}
	return out
}

func (s *dashboardService) BuildDashboard(ctx context.Context, rng resp.TimeRange) (*resp.DashboardReport, error) {
	rng = normalizeRange(rng)

	totalAccounts, err := s.repo.CountAccounts(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	newAccounts, err := s.repo.CountAccountsCreatedBetween(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	totalTrips, err := s.repo.CountTrips(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	publicTrips, err := s.repo.CountPublicTrips(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	newTrips, err := s.repo.CountTripsCreatedBetween(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	totalStops, err := s.repo.CountStops(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	totalActivities, err := s.repo.CountActivities(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	topCities, err := s.repo.TopCitiesByStops(ctx, topCitiesLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &resp.DashboardReport{
		GeneratedAt:     time.Now().UTC(),
		Range:           rng,
		TotalAccounts:   totalAccounts,
		NewAccounts:     newAccounts,
		TotalTrips:      totalTrips,
		PublicTrips:     publicTrips,
		NewTrips:        newTrips,
		TotalStops:      totalStops,
		TotalActivities: totalActivities,
		TopCities:       topCities,
	}, nil
}
