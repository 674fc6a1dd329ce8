package types

import (
	"github.com/google/uuid"
)

type University struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string     `gorm:"uniqueIndex;not null;column:name" json:"name"`
	Location        string     `gorm:"not null;column:location" json:"location"`
	EstablishedYear int        `gorm:"not null;column:established_year" json:"established_year"`
	Faculties       []*Faculty `gorm:"constraint:OnDelete:CASCADE;foreignKey:UniversityID;references:ID" json:"faculties,omitempty"`
}

func (University) TableName() string { return "universities" }
