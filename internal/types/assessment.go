package types

import (
	"time"

	"github.com/google/uuid"
)

// Assessment holds the raw scores and derived grade for one enrollment.
// At most one per enrollment; re-uploads overwrite it in place.
type Assessment struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EnrollmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"enrollment_id"`
	CAScore      float64   `gorm:"not null;column:ca_score" json:"ca_score"`
	ExamScore    float64   `gorm:"not null;column:exam_score" json:"exam_score"`
	TotalScore   float64   `gorm:"not null;column:total_score" json:"total_score"`
	Grade        string    `gorm:"not null;column:grade" json:"grade"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

func (Assessment) TableName() string { return "assessments" }
