package utils

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidPage          = errors.New("invalid page parameter")
	ErrInvalidPageSize      = errors.New("invalid page size parameter")
	ErrInvalidDateRange     = errors.New("end date must not be before start date")
	ErrStopOutsideTrip      = errors.New("stop dates fall outside the trip date range")
	ErrInvalidReorder       = errors.New("reorder payload is not a permutation of the trip's stops")
	ErrInvalidResetToken    = errors.New("invalid or expired reset token")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrDuplicateFavorite    = errors.New("city already in favorites")
	ErrAccountNotFound      = errors.New("account not found")
	ErrTripNotFound         = errors.New("trip not found")
	ErrStopNotFound         = errors.New("stop not found")
	ErrActivityNotFound     = errors.New("activity not found")
	ErrCityNotFound         = errors.New("city not found")
	ErrFavoriteNotFound     = errors.New("favorite not found")
	ErrForbidden            = errors.New("forbidden")
	ErrTripNotClonable      = errors.New("trip is not public")
	ErrDatabaseError        = errors.New("database error")
)
