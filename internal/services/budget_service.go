package services

import (
	"context"
	"math"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

const (
	// Fallback daily spend when a stop has no catalog city or the city
	// has no cost data.
	defaultDailyCost = 100

	// Accommodation is estimated as a share of the per-city living cost.
	accommodationShare = 0.4

	// Flat per-leg surcharge, not distance based.
	transportPerStop = 50
)

type BudgetServiceInterface interface {
	GetTripBudget(ctx context.Context, tripID string, callerID string) (*response_models.BudgetReport, error)
}

type BudgetService struct {
	tripRepo    repositories.TripRepository
	accountRepo repositories.AccountRepository
}

func NewBudgetService(tripRepo repositories.TripRepository, accountRepo repositories.AccountRepository) BudgetServiceInterface {
	return &BudgetService{
		tripRepo:    tripRepo,
		accountRepo: accountRepo,
	}
}

func (b *BudgetService) GetTripBudget(ctx context.Context, tripID string, callerID string) (*response_models.BudgetReport, error) {
	trip, err := b.tripRepo.GetDetailsByID(ctx, tripID)
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

	currency := "USD"
	if isOwner {
		if account, err := b.accountRepo.FindById(ctx, callerID); err == nil && account != nil {
			currency = account.Currency
		}
	}

	return BuildBudgetReport(trip, currency), nil
}

// BuildBudgetReport derives the full cost breakdown for a trip. It is
// recomputed on every read and never persisted. Intermediate sums stay
// unrounded; math.Round is applied once per reported figure so rounding
// error cannot compound.
func BuildBudgetReport(trip *db_models.Trip, currency string) *response_models.BudgetReport {

	activitiesTotal := 0.0
	byCategory := make(map[string]float64)
	byCity := make([]response_models.CityCost, 0, len(trip.Stops))
	cityTotal := 0.0

	for i := range trip.Stops {
		s := &trip.Stops[i]

		for j := range s.Activities {
			a := &s.Activities[j]
			cost := a.ResolvedCost()
			activitiesTotal += cost
			byCategory[a.ResolvedCategory()] += cost
		}

		days := utils.DaysInclusive(s.StartDate, s.EndDate)
		daily := stopDailyCost(s)
		total := float64(days) * daily
		cityTotal += total

		byCity = append(byCity, response_models.CityCost{
			CityName:  stopCityName(s),
			Days:      days,
			DailyCost: daily,
			Total:     math.Round(total),
		})
	}

	accommodation := accommodationShare * cityTotal
	transport := float64(transportPerStop * len(trip.Stops))
	grandTotal := activitiesTotal + accommodation + transport

	tripDays := utils.DaysInclusive(trip.StartDate, trip.EndDate)
	daily := buildDailySeries(trip, tripDays, accommodation)

	rounded := make(map[string]float64, len(byCategory))
	for category, sum := range byCategory {
		rounded[category] = math.Round(sum)
	}

	return &response_models.BudgetReport{
		TripID:          trip.ID,
		Currency:        currency,
		ActivitiesTotal: math.Round(activitiesTotal),
		Accommodation:   math.Round(accommodation),
		Transport:       math.Round(transport),
		GrandTotal:      math.Round(grandTotal),
		ByCategory:      rounded,
		ByCity:          byCity,
		DailyCosts:      daily,
	}
}

// buildDailySeries emits one point per calendar day of the trip,
// whether or not a stop covers that day: the day's scheduled activity
// costs plus an even share of the accommodation estimate.
func buildDailySeries(trip *db_models.Trip, tripDays int, accommodation float64) []response_models.DailyCost {
	if tripDays <= 0 {
		return []response_models.DailyCost{}
	}

	dailyShare := accommodation / float64(tripDays)

	out := make([]response_models.DailyCost, 0, tripDays)
	for d := 0; d < tripDays; d++ {
		day := trip.StartDate.AddDate(0, 0, d)

		sum := dailyShare
		for i := range trip.Stops {
			for j := range trip.Stops[i].Activities {
				a := &trip.Stops[i].Activities[j]
				if a.ScheduledDate != nil && utils.SameDay(*a.ScheduledDate, day) {
					sum += a.ResolvedCost()
				}
			}
		}

		out = append(out, response_models.DailyCost{
			Date:   utils.FormatDate(day),
			Amount: math.Round(sum),
		})
	}
	return out
}

func stopDailyCost(s *db_models.Stop) float64 {
	if s.City != nil && s.City.AvgDailyCost > 0 {
		return s.City.AvgDailyCost
	}
	return defaultDailyCost
}
