package db_models

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	IsAdmin      bool

	// Preferences
	Currency           string `gorm:"default:USD"`
	EmailNotifications bool   `gorm:"default:true"`

	Trips     []Trip     `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	Favorites []Favorite `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}
