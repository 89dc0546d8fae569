package dbmodels

import (
	"survey-tools-backend/models"
	"time"
)

type User struct {
	BaseModel
	Email           string          `gorm:"type:varchar(255);uniqueIndex"`
	Password        string          `gorm:"type:varchar(128)"`
	Role            models.UserRole `gorm:"type:varchar(20)"`
	IsEmailVerified bool
	LastLogin       time.Time
}
