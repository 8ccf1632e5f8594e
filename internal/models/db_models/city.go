package db_models

// City is read-only catalog data, not user-owned.
type City struct {
	BaseModel
	Name            string
	Country         string `gorm:"index"`
	Region          string
	AvgDailyCost    float64
	PopularityScore float64
	Description     string
}
