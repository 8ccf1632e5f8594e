package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type FavoriteController struct {
	favoriteService services.FavoriteServiceInterface
}

func NewFavoriteController(favoriteService services.FavoriteServiceInterface) *FavoriteController {
	return &FavoriteController{
		favoriteService: favoriteService,
	}
}

// ListFavorites godoc
// @Summary List the caller's favorite cities
// @Tags Favorites
// @Produce json
// @Success 200 {array} response_models.FavoriteResponse
// @Security BearerAuth
// @Router /favorites [get]
func (f *FavoriteController) ListFavorites(c *gin.Context) {
	favorites, err := f.favoriteService.ListFavorites(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, favorites, "Favorites fetched successfully")
}

// AddFavorite godoc
// @Summary Bookmark a city
// @Tags Favorites
// @Accept json
// @Produce json
// @Param request body request_models.AddFavoriteRequest true "Favorite payload"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /favorites [post]
func (f *FavoriteController) AddFavorite(c *gin.Context) {
	var req request_models.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := f.favoriteService.AddFavorite(c.Request.Context(), c.GetString("user_id"), req.CityID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, nil, "City added to favorites")
}

// RemoveFavorite godoc
// @Summary Remove a bookmarked city
// @Tags Favorites
// @Produce json
// @Param cityId path string true "City ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /favorites/{cityId} [delete]
func (f *FavoriteController) RemoveFavorite(c *gin.Context) {
	if err := f.favoriteService.RemoveFavorite(c.Request.Context(), c.GetString("user_id"), c.Param("cityId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "City removed from favorites")
}
