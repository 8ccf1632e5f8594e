package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type ActivityController struct {
	activityService services.ActivityServiceInterface
}

func NewActivityController(activityService services.ActivityServiceInterface) *ActivityController {
	return &ActivityController{
		activityService: activityService,
	}
}

// AddActivity godoc
// @Summary Attach an activity to a stop
// @Tags Activities
// @Accept json
// @Produce json
// @Param stopId path string true "Stop ID"
// @Param request body request_models.CreateActivityRequest true "Activity payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /activities/stops/{stopId} [post]
func (a *ActivityController) AddActivity(c *gin.Context) {
	var req request_models.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	activity, err := a.activityService.AddActivity(c.Request.Context(), c.Param("stopId"), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, activity, "Activity added successfully")
}

// UpdateActivity godoc
// @Summary Update a scheduled activity
// @Tags Activities
// @Accept json
// @Produce json
// @Param id path string true "Trip activity ID"
// @Param request body request_models.UpdateActivityRequest true "Activity payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /activities/trip-activities/{id} [put]
func (a *ActivityController) UpdateActivity(c *gin.Context) {
	var req request_models.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	activity, err := a.activityService.UpdateActivity(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity updated successfully")
}

// DeleteActivity godoc
// @Summary Remove a scheduled activity
// @Tags Activities
// @Produce json
// @Param id path string true "Trip activity ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /activities/trip-activities/{id} [delete]
func (a *ActivityController) DeleteActivity(c *gin.Context) {
	err := a.activityService.DeleteActivity(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Activity removed successfully")
}
