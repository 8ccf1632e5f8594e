package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"time"

	resp "globetrotter/internal/models/response_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetDashboard godoc
// @Summary Aggregate platform analytics (admin only)
// @Tags Dashboard
// @Produce json
// @Param start query string false "Range start (RFC3339)"
// @Param end query string false "Range end (RFC3339)"
// @Success 200 {object} response_models.DashboardReport
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (d *DashboardController) GetDashboard(c *gin.Context) {

	var rng resp.TimeRange
	if s := c.Query("start"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid start time (want RFC3339)")
			return
		}
		rng.Start = t
	}
	if s := c.Query("end"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid end time (want RFC3339)")
			return
		}
		rng.End = t
	}

	report, err := d.dashboardService.BuildDashboard(c.Request.Context(), rng)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Dashboard built successfully")
}
