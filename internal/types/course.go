package types

import (
	"github.com/google/uuid"
)

type Course struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	CourseCode   string      `gorm:"uniqueIndex;not null;column:course_code" json:"course_code"`
	CourseTitle  string      `gorm:"not null;column:course_title" json:"course_title"`
	CreditUnits  int         `gorm:"not null;column:credit_units" json:"credit_units"`
	Semester     string      `gorm:"not null;column:semester" json:"semester"`
	DepartmentID uuid.UUID   `gorm:"type:uuid;not null;index" json:"department_id"`
	Department   *Department `gorm:"foreignKey:DepartmentID;references:ID" json:"department,omitempty"`
	LecturerID   *uuid.UUID  `gorm:"type:uuid;index" json:"lecturer_id,omitempty"`
	Lecturer     *Staff      `gorm:"foreignKey:LecturerID;references:ID" json:"lecturer,omitempty"`
}

func (Course) TableName() string { return "courses" }
