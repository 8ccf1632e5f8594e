package budget_fx

import (
	"go.uber.org/fx"

	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
)

var Module = fx.Provide(provideBudgetService)

func provideBudgetService(tripRepo repositories.TripRepository, accountRepo repositories.AccountRepository) services.BudgetServiceInterface {
	return services.NewBudgetService(tripRepo, accountRepo)
}
