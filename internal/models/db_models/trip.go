package db_models

import (
	"time"

	"github.com/google/uuid"
)

const (
	TripStatusDraft     = "draft"
	TripStatusUpcoming  = "upcoming"
	TripStatusOngoing   = "ongoing"
	TripStatusCompleted = "completed"
)

type Trip struct {
	BaseModel
	UserID          uuid.UUID `gorm:"type:uuid;index;not null"`
	Name            string    `gorm:"not null"`
	Description     string
	StartDate       *time.Time `gorm:"type:date"`
	EndDate         *time.Time `gorm:"type:date"`
	CoverImage      string
	Status          string `gorm:"default:draft"`
	IsPublic        bool   `gorm:"default:false"`
	ShareToken      *string `gorm:"uniqueIndex"`
	EstimatedBudget float64 `gorm:"type:numeric(12,2)"`

	Stops    []TripStop    `gorm:"foreignKey:TripID"`
	Expenses []TripExpense `gorm:"foreignKey:TripID"`
}

type TripStop struct {
	BaseModel
	TripID     uuid.UUID `gorm:"type:uuid;index;not null"`
	CityID     uuid.UUID `gorm:"type:uuid;not null"`
	OrderIndex int       `gorm:"default:0"`
	StartDate  *time.Time `gorm:"type:date"`
	EndDate    *time.Time `gorm:"type:date"`

	City       *City          `gorm:"foreignKey:CityID"`
	Activities []StopActivity `gorm:"foreignKey:StopID"`
}

type StopActivity struct {
	BaseModel
	StopID        uuid.UUID `gorm:"type:uuid;index;not null"`
	ActivityID    uuid.UUID `gorm:"type:uuid;not null"`
	ScheduledTime *string   // "15:04", optional
	Notes         string

	Activity *Activity `gorm:"foreignKey:ActivityID"`
}

type TripExpense struct {
	BaseModel
	TripID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Category string    `gorm:"not null"` // transport, accommodation, food, activities, other
	Amount   float64   `gorm:"type:numeric(10,2);not null"`
	Notes    string
}
