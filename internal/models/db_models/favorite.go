package db_models

import "github.com/google/uuid"

type Favorite struct {
	BaseModel
	AccountID uuid.UUID `gorm:"uniqueIndex:idx_account_city"`
	CityID    uuid.UUID `gorm:"uniqueIndex:idx_account_city"`

	City *City `gorm:"foreignKey:CityID"`
}
