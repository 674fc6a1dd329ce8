package types

import (
	"github.com/google/uuid"
)

type Department struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null;column:name;uniqueIndex:uq_department_faculty" json:"name"`
	FacultyID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_department_faculty" json:"faculty_id"`
	Faculty   *Faculty  `gorm:"foreignKey:FacultyID;references:ID" json:"faculty,omitempty"`
}

func (Department) TableName() string { return "departments" }
