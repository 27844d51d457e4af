package db_models

import "github.com/google/uuid"

type Activity struct {
	BaseModel
	CityID          uuid.UUID `gorm:"type:uuid;not null"`
	Name            string    `gorm:"not null"`
	Description     string
	ImageURL        string
	DurationMinutes int
	Cost            float64 `gorm:"type:numeric(10,2)"`
	Category        string  // sightseeing, food, adventure, culture, ...

	City *City `gorm:"foreignKey:CityID"`
}
