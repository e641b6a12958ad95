package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceCategory struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	BusinessID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name        string `gorm:"not null"`
	Description string `gorm:"type:text"`

	// Optional subcategory parent, same business only.
	ParentID *uuid.UUID `gorm:"type:uuid;index"`
	Parent   *ServiceCategory

	Services []Service `gorm:"foreignKey:CategoryID"`
}

func (sc *ServiceCategory) BeforeCreate(tx *gorm.DB) (err error) {
	if sc.ID == uuid.Nil {
		sc.ID = uuid.New()
	}
	return
}
