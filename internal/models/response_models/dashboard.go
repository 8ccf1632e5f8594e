package response_models

import "time"

type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type DashboardReport struct {
	GeneratedAt time.Time `json:"generated_at"`
	Range       TimeRange `json:"range"`

	TotalAccounts   int64 `json:"total_accounts"`
	NewAccounts     int64 `json:"new_accounts"`
	TotalTrips      int64 `json:"total_trips"`
	PublicTrips     int64 `json:"public_trips"`
	NewTrips        int64 `json:"new_trips"`
	TotalStops      int64 `json:"total_stops"`
	TotalActivities int64 `json:"total_activities"`

	TopCities []CityUsage `json:"top_cities"`
}

// CityUsage counts how many stops reference a catalog city.
type CityUsage struct {
	CityName  string `json:"city_name"`
	Country   string `json:"country"`
	StopCount int64  `json:"stop_count"`
}
