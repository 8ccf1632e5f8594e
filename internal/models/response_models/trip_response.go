package response_models

import (
	"github.com/google/uuid"
)

type TripResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	StartDate     string    `json:"start_date"` // "2006-01-02"
	EndDate       string    `json:"end_date"`
	IsPublic      bool      `json:"is_public"`
	CoverPhotoURL string    `json:"cover_photo_url,omitempty"`
	StopCount     int       `json:"stop_count"`
}

// Top-level payload returned to FE
type TripDetailResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	DurationDays  int       `json:"duration_days"` // inclusive of both boundary days
	IsPublic      bool      `json:"is_public"`
	CoverPhotoURL string    `json:"cover_photo_url,omitempty"`
	IsOwner       bool      `json:"is_owner"`

	// Quick stats
	TotalStops      int `json:"total_stops"`
	TotalActivities int `json:"total_activities"`

	Stops []StopResponse `json:"stops"`
}

// One stop in the itinerary, sorted by order_index
type StopResponse struct {
	ID         uuid.UUID         `json:"id"`
	OrderIndex int               `json:"order_index"`
	CityName   string            `json:"city_name"`
	City       *CitySummary      `json:"city,omitempty"`
	StartDate  string            `json:"start_date"`
	EndDate    string            `json:"end_date"`
	Notes      string            `json:"notes,omitempty"`
	Activities []ActivityDetail  `json:"activities"`
}

// Activity inside a stop
type ActivityDetail struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	ScheduledDate string    `json:"scheduled_date,omitempty"`
	ScheduledTime string    `json:"scheduled_time,omitempty"`
	Cost          float64   `json:"cost"` // resolved, see cost fallback chain
	Status        string    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
}
