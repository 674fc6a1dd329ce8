package types

import (
	"github.com/google/uuid"
)

// Enrollment is one (student, course, session, semester) registration.
// The four-column unique index is what the ingestion pipeline's
// find-or-create relies on.
type Enrollment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_student_course_session" json:"student_id"`
	Student   *Student  `gorm:"foreignKey:StudentID;references:ID" json:"student,omitempty"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_student_course_session" json:"course_id"`
	Course    *Course   `gorm:"foreignKey:CourseID;references:ID" json:"course,omitempty"`
	Session   string    `gorm:"not null;column:session;uniqueIndex:uq_student_course_session" json:"session"`
	Semester  string    `gorm:"not null;column:semester;uniqueIndex:uq_student_course_session" json:"semester"`

	Assessment      *Assessment      `gorm:"constraint:OnDelete:CASCADE;foreignKey:EnrollmentID;references:ID" json:"assessment,omitempty"`
	AnalyticsResult *AnalyticsResult `gorm:"constraint:OnDelete:CASCADE;foreignKey:EnrollmentID;references:ID" json:"analytics_result,omitempty"`
}

func (Enrollment) TableName() string { return "enrollments" }
