package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Access type choices
const (
	AccessSuperAdmin = "Super Admin"
	AccessAdmin      = "Admin"
)

func ValidAccessType(a string) bool {
	return a == AccessSuperAdmin || a == AccessAdmin
}

type TeamMember struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	BusinessID uuid.UUID `gorm:"type:uuid;index;not null"`

	FirstName     string    `gorm:"not null"`
	LastName      string    `gorm:"not null"`
	PhoneNumber   string    `gorm:"uniqueIndex;not null"`
	MemberEmail   string    `gorm:"uniqueIndex;not null"`
	DateOfJoining time.Time `gorm:"type:date;not null"`
	AccessType    string    `gorm:"type:varchar(50);not null"`
	IsAvailable   bool      `gorm:"default:true"`
	ProfileImg    string

	// Deleting a member keeps the appointments, the staff reference is cleared.
	Appointments []Appointment `gorm:"foreignKey:StaffID;constraint:OnDelete:SET NULL"`
}

func (tm *TeamMember) BeforeCreate(tx *gorm.DB) (err error) {
	if tm.ID == uuid.Nil {
		tm.ID = uuid.New()
	}
	return
}
