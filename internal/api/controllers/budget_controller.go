package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type BudgetController struct {
	budgetService services.BudgetServiceInterface
}

func NewBudgetController(budgetService services.BudgetServiceInterface) *BudgetController {
	return &BudgetController{
		budgetService: budgetService,
	}
}

// GetTripBudget godoc
// @Summary Get the derived cost breakdown for a trip
// @Description Recomputed on every request; nothing is persisted
// @Tags Budget
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} response_models.BudgetReport
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /budget/trips/{tripId} [get]
func (b *BudgetController) GetTripBudget(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	report, err := b.budgetService.GetTripBudget(c.Request.Context(), tripID, c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Budget computed successfully")
}
