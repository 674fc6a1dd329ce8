package types

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	MatricNo     string      `gorm:"uniqueIndex;not null;column:matric_no" json:"matric_no"`
	FullName     string      `gorm:"not null;column:full_name" json:"full_name"`
	Gender       string      `gorm:"not null;column:gender" json:"gender"`
	Level        int         `gorm:"not null;column:level" json:"level"`
	PasswordHash string      `gorm:"not null;column:password_hash" json:"-"`
	DepartmentID uuid.UUID   `gorm:"type:uuid;not null;index" json:"department_id"`
	Department   *Department `gorm:"foreignKey:DepartmentID;references:ID" json:"department,omitempty"`
	AdvisorID    *uuid.UUID  `gorm:"type:uuid;index" json:"advisor_id,omitempty"`
	Advisor      *Staff      `gorm:"foreignKey:AdvisorID;references:ID" json:"advisor,omitempty"`
	CreatedAt    time.Time   `gorm:"not null" json:"created_at"`
}

func (Student) TableName() string { return "students" }
