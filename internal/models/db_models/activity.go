package db_models

import (
	"github.com/google/uuid"
	"time"
)

// CatalogActivity is curated reference data: a suggested activity for a
// city with a default cost used when a trip activity has no override.
type CatalogActivity struct {
	BaseModel
	CityID        *uuid.UUID `gorm:"index"`
	Name          string
	Category      string
	EstimatedCost float64
	Description   string
}

func (CatalogActivity) TableName() string {
	return "activities"
}

type TripActivity struct {
	BaseModel
	StopID        uuid.UUID  `gorm:"index"`
	ActivityID    *uuid.UUID // optional catalog link, used for cost fallback
	ActivityName  string
	ScheduledDate *time.Time
	ScheduledTime string // "15:04", optional
	CustomCost    *float64
	Status        string `gorm:"default:planned"`
	Notes         string

	Activity *CatalogActivity `gorm:"foreignKey:ActivityID"`
}

// ResolvedCost is the cost fallback chain used identically by budget
// aggregation and display: explicit override, else catalog estimate,
// else zero.
func (a *TripActivity) ResolvedCost() float64 {
	if a.CustomCost != nil {
		return *a.CustomCost
	}
	if a.Activity != nil {
		return a.Activity.EstimatedCost
	}
	return 0
}

// ResolvedCategory groups unlinked activities under "other".
func (a *TripActivity) ResolvedCategory() string {
	if a.Activity != nil && a.Activity.Category != "" {
		return a.Activity.Category
	}
	return "other"
}
