package dbmodels

import "time"

type EmailVerify struct {
	BaseModel
	Email         string `gorm:"type:varchar(255);index"`
	Code          string `gorm:"type:varchar(24);index"`
	DateGenerated time.Time
	DateExpires   time.Time
	DateUsed      time.Time
}
