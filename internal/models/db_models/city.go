package db_models

type City struct {
	BaseModel
	Name        string `gorm:"index;not null"`
	Country     string `gorm:"not null"`
	Region      string
	ImageURL    string
	CostIndex   string // budget, moderate, expensive, luxury
	Rating      float64
	Description string

	Activities []Activity `gorm:"foreignKey:CityID"`
}
