package types

import (
	"github.com/google/uuid"
)

type Faculty struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string        `gorm:"not null;column:name;uniqueIndex:uq_faculty_university" json:"name"`
	UniversityID uuid.UUID     `gorm:"type:uuid;not null;index;uniqueIndex:uq_faculty_university" json:"university_id"`
	University   *University   `gorm:"foreignKey:UniversityID;references:ID" json:"university,omitempty"`
	Departments  []*Department `gorm:"constraint:OnDelete:CASCADE;foreignKey:FacultyID;references:ID" json:"departments,omitempty"`
}

func (Faculty) TableName() string { return "faculties" }
