package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OTP struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	PhoneNumber string    `gorm:"index;not null"`
	Code        string    `gorm:"type:varchar(4);not null"`
	IsVerified  bool      `gorm:"default:false"`
	CreatedAt   time.Time
}

func (o *OTP) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return
}
