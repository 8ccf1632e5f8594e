package request_models

type CreateStopRequest struct {
	CityID    string `json:"city_id" binding:"omitempty,uuid4"`
	CityName  string `json:"city_name"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Notes     string `json:"notes"`
}

type UpdateStopRequest struct {
	CityID    *string `json:"city_id" binding:"omitempty,uuid4"`
	CityName  *string `json:"city_name"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Notes     *string `json:"notes"`
}

// ReorderStopsRequest carries the complete new ordering: the list must
// be a permutation of the trip's current stop ids.
type ReorderStopsRequest struct {
	StopIDs []string `json:"stop_ids" binding:"required,min=1"`
}
