package db_models

import (
	"github.com/google/uuid"
	"time"
)

// Stop is one city visit inside a trip. OrderIndex is dense and
// zero-based per trip: after every insert, delete and reorder the
// indices of a trip's stops must be exactly 0..N-1.
type Stop struct {
	BaseModel
	TripID     uuid.UUID  `gorm:"index"`
	CityID     *uuid.UUID // optional catalog link
	CityName   string     // free-text fallback when not linked
	StartDate  time.Time
	EndDate    time.Time
	OrderIndex int `gorm:"index"`
	Notes      string

	City       *City          `gorm:"foreignKey:CityID"`
	Activities []TripActivity `gorm:"foreignKey:StopID;constraint:OnDelete:CASCADE"`
}
