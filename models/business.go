package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Business struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	PhoneNumber string    `gorm:"uniqueIndex;not null"`
	OwnerName   string    `gorm:"not null"`
	SalonName   string    `gorm:"not null"`
	OwnerEmail  string    `gorm:"not null"`
	GST         string
	SalonDesc   string `gorm:"type:text"`
	ProfileImg  string

	// Set through the OTP flow, never returned on the wire.
	Password string `json:"-"`

	Latitude  *float64
	Longitude *float64

	Categories   []ServiceCategory `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
	Services     []Service         `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
	Packages     []Package         `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
	Clients      []Client          `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
	TeamMembers  []TeamMember      `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
	Appointments []Appointment     `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`

	gorm.Model
}

func (b *Business) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
