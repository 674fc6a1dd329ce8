package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tekerra/acadlens-backend/internal/logger"
	"github.com/Tekerra/acadlens-backend/internal/types"
)

type EnrollmentRepo interface {
	// FindOrCreate resolves the unique (student, course, session,
	// semester) tuple, creating the row when absent. The bool reports
	// whether a new enrollment was created.
	FindOrCreate(ctx context.Context, tx *gorm.DB, studentID, courseID uuid.UUID, session, semester string) (*types.Enrollment, bool, error)
	ListByStudent(ctx context.Context, tx *gorm.DB, studentID uuid.UUID) ([]*types.Enrollment, error)
	ListByStudentWithHistory(ctx context.Context, tx *gorm.DB, studentID uuid.UUID) ([]*types.Enrollment, error)
}

type enrollmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEnrollmentRepo(db *gorm.DB, baseLog *logger.Logger) EnrollmentRepo {
	return &enrollmentRepo{db: db, log: baseLog.With("repo", "EnrollmentRepo")}
}

func (er *enrollmentRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return er.db
}

func (er *enrollmentRepo) FindOrCreate(ctx context.Context, tx *gorm.DB, studentID, courseID uuid.UUID, session, semester string) (*types.Enrollment, bool, error) {
	h := er.handle(tx).WithContext(ctx)

	var existing types.Enrollment
	err := h.Where("student_id = ? AND course_id = ? AND session = ? AND semester = ?",
		studentID, courseID, session, semester).
		First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	enrollment := &types.Enrollment{
		ID:        uuid.New(),
		StudentID: studentID,
		CourseID:  courseID,
		Session:   session,
		Semester:  semester,
	}
	if err := h.Create(enrollment).Error; err != nil {
		return nil, false, err
	}
	return enrollment, true, nil
}

func (er *enrollmentRepo) ListByStudent(ctx context.Context, tx *gorm.DB, studentID uuid.UUID) ([]*types.Enrollment, error) {
	var results []*types.Enrollment
	if err := er.handle(tx).WithContext(ctx).
		Where("student_id = ?", studentID).
		Preload("Course").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// ListByStudentWithHistory loads the full per-enrollment aggregate the
// personalization builder consumes: course, assessment and analytics
// result in one shot.
func (er *enrollmentRepo) ListByStudentWithHistory(ctx context.Context, tx *gorm.DB, studentID uuid.UUID) ([]*types.Enrollment, error) {
	var results []*types.Enrollment
	if err := er.handle(tx).WithContext(ctx).
		Where("student_id = ?", studentID).
		Preload("Course").
		Preload("Assessment").
		Preload("AnalyticsResult").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
