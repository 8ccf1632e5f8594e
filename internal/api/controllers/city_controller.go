package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"strconv"

	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type CityController struct {
	cityService services.CityServiceInterface
}

func NewCityController(cityService services.CityServiceInterface) *CityController {
	return &CityController{
		cityService: cityService,
	}
}

// ListCities godoc
// @Summary Browse the city catalog
// @Tags Cities
// @Produce json
// @Param search query string false "Name search"
// @Param country query string false "Country filter"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {array} response_models.CityResponse
// @Router /cities [get]
func (ct *CityController) ListCities(c *gin.Context) {

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size")
		return
	}

	cities, err := ct.cityService.ListCities(c.Request.Context(), c.Query("search"), c.Query("country"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cities, "Cities fetched successfully")
}

// GetCityById godoc
// @Summary Get one catalog city
// @Tags Cities
// @Produce json
// @Param id path string true "City ID"
// @Success 200 {object} response_models.CityResponse
// @Failure 404 {object} utils.APIResponse
// @Router /cities/{id} [get]
func (ct *CityController) GetCityById(c *gin.Context) {
	city, err := ct.cityService.GetCityByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, city, "City fetched successfully")
}

// ListCountries godoc
// @Summary List distinct countries present in the catalog
// @Tags Cities
// @Produce json
// @Success 200 {array} string
// @Router /cities/meta/countries [get]
func (ct *CityController) ListCountries(c *gin.Context) {
	countries, err := ct.cityService.ListCountries(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, countries, "Countries fetched successfully")
}
