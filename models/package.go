package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Package struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	BusinessID uuid.UUID `gorm:"type:uuid;index;not null"`

	PackageName           string  `gorm:"not null"`
	PackageDurationInMins int     `gorm:"not null"`
	PackagePrice          float64 `gorm:"type:decimal(10,2);not null"`
}

func (p *Package) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
