package db_models

type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Name         string
	AvatarURL    string
	Location     string
	Bio          string

	Trips []Trip `gorm:"foreignKey:UserID"`
}
