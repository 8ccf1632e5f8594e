package request_models

type CreateActivityRequest struct {
	ActivityID    string   `json:"activity_id" binding:"omitempty,uuid4"`
	Name          string   `json:"name" binding:"required"`
	ScheduledDate string   `json:"scheduled_date"`
	ScheduledTime string   `json:"scheduled_time"`
	CustomCost    *float64 `json:"custom_cost" binding:"omitempty,gte=0"`
	Notes         string   `json:"notes"`
}

type UpdateActivityRequest struct {
	Name          *string  `json:"name"`
	ScheduledDate *string  `json:"scheduled_date"`
	ScheduledTime *string  `json:"scheduled_time"`
	CustomCost    *float64 `json:"custom_cost" binding:"omitempty,gte=0"`
	Status        *string  `json:"status" binding:"omitempty,oneof=planned done skipped"`
	Notes         *string  `json:"notes"`
}
