package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is a customer-app account, distinct from a business-side Client.
type Customer struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key"`

	// Short public id, generated by rejection sampling against existing rows.
	CustomerID string `gorm:"uniqueIndex;not null"`

	Name       string     `gorm:"not null"`
	Email      string     `gorm:"uniqueIndex;not null"`
	Phone      string     `gorm:"uniqueIndex;not null"`
	DOB        *time.Time `gorm:"type:date"`
	ProfileImg string

	Bookings []Appointment `gorm:"foreignKey:CustomerID"`

	gorm.Model
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
