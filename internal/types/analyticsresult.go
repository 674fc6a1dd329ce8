package types

import (
	"time"

	"github.com/google/uuid"
)

// AnalyticsResult holds the derived risk classification for one
// enrollment. At most one per enrollment; DateComputed is refreshed on
// every recompute.
type AnalyticsResult struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EnrollmentID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"enrollment_id"`
	RiskLevel      string    `gorm:"not null;column:risk_level" json:"risk_level"`
	Recommendation string    `gorm:"not null;column:recommendation" json:"recommendation"`
	DateComputed   time.Time `gorm:"not null;column:date_computed" json:"date_computed"`
}

func (AnalyticsResult) TableName() string { return "analytics_results" }
