package types

import (
	"time"

	"github.com/google/uuid"
)

type Staff struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	FullName     string      `gorm:"not null;column:full_name" json:"full_name"`
	Email        string      `gorm:"uniqueIndex;not null;column:email" json:"email"`
	PasswordHash string      `gorm:"not null;column:password_hash" json:"-"`
	Role         string      `gorm:"not null;column:role" json:"role"`
	DepartmentID *uuid.UUID  `gorm:"type:uuid;index" json:"department_id,omitempty"`
	Department   *Department `gorm:"foreignKey:DepartmentID;references:ID" json:"department,omitempty"`
	CreatedAt    time.Time   `gorm:"not null" json:"created_at"`
}

func (Staff) TableName() string { return "staff" }
