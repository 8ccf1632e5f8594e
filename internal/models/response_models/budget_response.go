package response_models

import "github.com/google/uuid"

// BudgetReport is derived on every read; nothing in it is persisted.
// All amounts are rounded to whole currency units at build time.
type BudgetReport struct {
	TripID          uuid.UUID          `json:"trip_id"`
	Currency        string             `json:"currency"`
	ActivitiesTotal float64            `json:"activities_total"`
	Accommodation   float64            `json:"accommodation_estimate"`
	Transport       float64            `json:"transport_estimate"`
	GrandTotal      float64            `json:"grand_total"`
	ByCategory      map[string]float64 `json:"by_category"`
	ByCity          []CityCost         `json:"by_city"`
	DailyCosts      []DailyCost        `json:"daily_costs"`
}

type CityCost struct {
	CityName  string  `json:"city_name"`
	Days      int     `json:"days"`
	DailyCost float64 `json:"daily_cost"`
	Total     float64 `json:"total"`
}

type DailyCost struct {
	Date   string  `json:"date"` // "2006-01-02"
	Amount float64 `json:"amount"`
}
