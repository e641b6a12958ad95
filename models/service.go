package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service type choices
const (
	ServiceTypeBasic   = "Basic"
	ServiceTypePremium = "Premium"
	ServiceTypeAddOn   = "Add-on"
)

func ValidServiceType(t string) bool {
	switch t {
	case ServiceTypeBasic, ServiceTypePremium, ServiceTypeAddOn:
		return true
	}
	return false
}

type Service struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key"`
	BusinessID uuid.UUID  `gorm:"type:uuid;index;not null"`
	CategoryID *uuid.UUID `gorm:"type:uuid;index"`

	ServiceName    string  `gorm:"not null"`
	ServiceType    string  `gorm:"type:varchar(50);not null"`
	DurationInMins int     `gorm:"not null"`
	Price          float64 `gorm:"type:decimal(10,2);not null"`
	Rating         float64 `gorm:"type:decimal(3,1);default:0.0"`
	ProfileImg     string

	Category *ServiceCategory
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
