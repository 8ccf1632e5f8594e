package db_models

import (
	"github.com/google/uuid"
	"time"
)

type Trip struct {
	BaseModel
	AccountID     uuid.UUID `gorm:"index"`
	Title         string
	Description   string
	StartDate     time.Time
	EndDate       time.Time
	IsPublic      bool
	CoverPhotoURL string

	Stops []Stop `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
}

// CloneGraph builds a deep copy of the trip with its stops and
// activities for a new owner. All ids are zeroed so the insert hooks
// assign fresh identity; order_index and all dates carry over
// unchanged. The copy is always private.
func (t *Trip) CloneGraph(newOwner uuid.UUID, title string) *Trip {

	clone := &Trip{
		AccountID:     newOwner,
		Title:         title,
		Description:   t.Description,
		StartDate:     t.StartDate,
		EndDate:       t.EndDate,
		IsPublic:      false,
		CoverPhotoURL: t.CoverPhotoURL,
	}

	clone.Stops = make([]Stop, 0, len(t.Stops))
	for i := range t.Stops {
		s := &t.Stops[i]
		newStop := Stop{
			CityID:     s.CityID,
			CityName:   s.CityName,
			StartDate:  s.StartDate,
			EndDate:    s.EndDate,
			OrderIndex: s.OrderIndex,
			Notes:      s.Notes,
		}

		newStop.Activities = make([]TripActivity, 0, len(s.Activities))
		for j := range s.Activities {
			a := &s.Activities[j]
			newStop.Activities = append(newStop.Activities, TripActivity{
				ActivityID:    a.ActivityID,
				ActivityName:  a.ActivityName,
				ScheduledDate: a.ScheduledDate,
				ScheduledTime: a.ScheduledTime,
				CustomCost:    a.CustomCost,
				Status:        a.Status,
				Notes:         a.Notes,
			})
		}

		clone.Stops = append(clone.Stops, newStop)
	}

	return clone
}
