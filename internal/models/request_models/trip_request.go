package request_models

type CreateTripRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	// Dates are calendar days, "2006-01-02"
	StartDate     string `json:"start_date" binding:"required"`
	EndDate       string `json:"end_date" binding:"required"`
	IsPublic      bool   `json:"is_public"`
	CoverPhotoURL string `json:"cover_photo_url"`
}

type UpdateTripRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`
	IsPublic      *bool   `json:"is_public"`
	CoverPhotoURL *string `json:"cover_photo_url"`
}
