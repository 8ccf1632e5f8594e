package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type StopController struct {
	stopService services.StopServiceInterface
}

func NewStopController(stopService services.StopServiceInterface) *StopController {
	return &StopController{
		stopService: stopService,
	}
}

// GetStops godoc
// @Summary List a trip's stops in itinerary order
// @Tags Stops
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {array} response_models.StopResponse
// @Failure 403 {object} utils.APIResponse
// @Router /trips/{tripId}/stops [get]
func (s *StopController) GetStops(c *gin.Context) {
	stops, err := s.stopService.GetStops(c.Request.Context(), c.Param("tripId"), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stops, "Stops fetched successfully")
}

// AddStop godoc
// @Summary Add a stop to the end of a trip's itinerary
// @Tags Stops
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.CreateStopRequest true "Stop payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/stops [post]
func (s *StopController) AddStop(c *gin.Context) {
	var req request_models.CreateStopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	stop, err := s.stopService.AddStop(c.Request.Context(), c.Param("tripId"), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, stop, "Stop added successfully")
}

// UpdateStop godoc
// @Summary Update a stop's city, dates or notes
// @Tags Stops
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param stopId path string true "Stop ID"
// @Param request body request_models.UpdateStopRequest true "Stop payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/stops/{stopId} [put]
func (s *StopController) UpdateStop(c *gin.Context) {
	var req request_models.UpdateStopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	stop, err := s.stopService.UpdateStop(c.Request.Context(), c.Param("tripId"), c.Param("stopId"), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stop, "Stop updated successfully")
}

// DeleteStop godoc
// @Summary Delete a stop and close the index gap
// @Tags Stops
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param stopId path string true "Stop ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/stops/{stopId} [delete]
func (s *StopController) DeleteStop(c *gin.Context) {
	err := s.stopService.DeleteStop(c.Request.Context(), c.Param("tripId"), c.Param("stopId"), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Stop deleted successfully")
}

// ReorderStops godoc
// @Summary Replace the itinerary order
// @Description The payload must list every stop id of the trip exactly once
// @Tags Stops
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.ReorderStopsRequest true "Complete new ordering"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/stops/reorder [put]
func (s *StopController) ReorderStops(c *gin.Context) {
	var req request_models.ReorderStopsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	err := s.stopService.ReorderStops(c.Request.Context(), c.Param("tripId"), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Stops reordered successfully")
}
