package controllers_fx

import (
	"go.uber.org/fx"

	"globetrotter/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewAccountController,
	controllers.NewTripController,
	controllers.NewStopController,
	controllers.NewActivityController,
	controllers.NewBudgetController,
	controllers.NewCityController,
	controllers.NewFavoriteController,
	controllers.NewDashboardController,
)
