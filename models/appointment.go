package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment status choices
const (
	StatusScheduled = "Scheduled"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Payment status choices
const (
	PaymentPending   = "Pending"
	PaymentCompleted = "Completed"
	PaymentFailed    = "Failed"
)

// Pay mode choices
const (
	PayModeOnline  = "Online"
	PayModeOffline = "Offline"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	}
	return false
}

func ValidPayMode(m string) bool {
	return m == PayModeOnline || m == PayModeOffline
}

type Appointment struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	BusinessID uuid.UUID `gorm:"type:uuid;index;not null"`

	Services []Service `gorm:"many2many:appointment_services"`
	Packages []Package `gorm:"many2many:appointment_packages"`

	StaffID  *uuid.UUID `gorm:"type:uuid;index"`
	ClientID uuid.UUID  `gorm:"type:uuid;index;not null"`

	// Set when the appointment was booked through the customer app.
	CustomerID *uuid.UUID `gorm:"type:uuid;index"`

	AppointmentDate time.Time `gorm:"type:date;not null"`
	AppointmentTime string    `gorm:"type:varchar(8);not null"` // "15:04"

	Status        string `gorm:"type:varchar(20);default:'Scheduled'"`
	PaymentStatus string `gorm:"type:varchar(20);default:'Pending'"`
	PayMode       string `gorm:"type:varchar(10);default:'Offline'"`
	Notes         string `gorm:"type:text"`

	// Derived at write time from the selected services and packages.
	// Not recomputed when the catalog changes afterwards.
	TotalPrice     float64 `gorm:"type:decimal(10,2);not null"`
	DurationInMins int     `gorm:"not null"`

	Staff  *TeamMember
	Client Client
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
