package response_models

import "github.com/google/uuid"

type CitySummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Country      string    `json:"country"`
	AvgDailyCost float64   `json:"avg_daily_cost"`
}

type CityResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Country         string    `json:"country"`
	Region          string    `json:"region,omitempty"`
	AvgDailyCost    float64   `json:"avg_daily_cost"`
	PopularityScore float64   `json:"popularity_score"`
	Description     string    `json:"description,omitempty"`
}

type FavoriteResponse struct {
	ID   uuid.UUID    `json:"id"`
	City CityResponse `json:"city"`
}
