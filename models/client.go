package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client type choices
const (
	ClientTypeRegular   = "Regular"
	ClientTypePremium   = "Premium"
	ClientTypeCorporate = "Corporate"
	ClientTypeWalkIn    = "Walk-in"
)

// Gender choices
const (
	GenderMale        = "Male"
	GenderFemale      = "Female"
	GenderUndisclosed = "Rather Not to Say"
)

func ValidClientType(t string) bool {
	switch t {
	case ClientTypeRegular, ClientTypePremium, ClientTypeCorporate, ClientTypeWalkIn:
		return true
	}
	return false
}

func ValidGender(g string) bool {
	switch g {
	case GenderMale, GenderFemale, GenderUndisclosed:
		return true
	}
	return false
}

type Client struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	BusinessID uuid.UUID `gorm:"type:uuid;index;not null"`

	ClientName   string     `gorm:"not null"`
	ClientType   string     `gorm:"type:varchar(50);not null"`
	ClientEmail  string     `gorm:"uniqueIndex;not null"`
	ClientPhone  string     `gorm:"uniqueIndex;not null"`
	ClientDOB    *time.Time `gorm:"type:date"`
	ClientGender string     `gorm:"type:varchar(20)"`

	Appointments []Appointment `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
}

func (cl *Client) BeforeCreate(tx *gorm.DB) (err error) {
	if cl.ID == uuid.Nil {
		cl.ID = uuid.New()
	}
	return
}
