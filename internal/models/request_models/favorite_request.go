package request_models

type AddFavoriteRequest struct {
	CityID string `json:"city_id" binding:"required,uuid4"`
}
