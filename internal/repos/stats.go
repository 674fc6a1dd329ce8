package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tekerra/acadlens-backend/internal/logger"
	"github.com/Tekerra/acadlens-backend/internal/types"
)

// GradeUnits pairs a grade with the course credit units behind it; the
// aggregation service turns these into a credit-weighted GPA.
type GradeUnits struct {
	Grade       string
	CreditUnits int
}

type SessionAverage struct {
	Session      string
	AverageScore float64
}

type GradeCount struct {
	Grade string
	Count int64
}

type CourseAverage struct {
	CourseID     uuid.UUID
	CourseCode   string
	AverageScore float64
}

// StatsRepo holds the read-only aggregate queries behind the cohort
// analytics endpoints. Everything here is plain joined SQL over the
// assessment/enrollment/course tables.
type StatsRepo interface {
	StudentGradeUnits(ctx context.Context, tx *gorm.DB, studentID uuid.UUID) ([]GradeUnits, error)
	CoursePassCounts(ctx context.Context, tx *gorm.DB, courseID uuid.UUID) (total, passed int64, err error)
	CourseAtRiskCount(ctx context.Context, tx *gorm.DB, courseID uuid.UUID) (int64, error)
	DepartmentAverage(ctx context.Context, tx *gorm.DB, departmentID uuid.UUID) (float64, error)
	FacultyPassCounts(ctx context.Context, tx *gorm.DB, facultyID uuid.UUID) (total, passed int64, err error)
	SessionAverages(ctx context.Context, tx *gorm.DB) ([]SessionAverage, error)
	GradeCounts(ctx context.Context, tx *gorm.DB, departmentID *uuid.UUID) ([]GradeCount, error)
	DepartmentSessionAverages(ctx context.Context, tx *gorm.DB, departmentID uuid.UUID) ([]SessionAverage, error)
	HighRiskCourses(ctx context.Context, tx *gorm.DB, departmentID uuid.UUID) ([]CourseAverage, error)
	DepartmentPassCounts(ctx context.Context, tx *gorm.DB, departmentID uuid.UUID) (total, passed int64, err error)
}

type statsRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStatsRepo(db *gorm.DB, baseLog *logger.Logger) StatsRepo {
	return &statsRepo{db: db, log: baseLog.With("repo", "StatsRepo")}
}

func (str *statsRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return str.db
}

func (str *statsRepo) StudentGradeUnits(ctx context.Context, tx *gorm.DB, studentID uuid.UUID) ([]GradeUnits, error) {
	var rows []GradeUnits
	if err := str.handle(tx).WithContext(ctx).
		Table("assessments").
		Select("assessments.grade AS grade, courses.credit_units AS credit_units").
		Joins("JOIN enrollments ON enrollments.id = assessments.enrollment_id").
		Joins("JOIN courses ON courses.id = enrollments.course_id").
		Where("enrollments.student_id = ?", studentID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (str *statsRepo) CoursePassCounts(ctx context.Context, tx *gorm.DB, courseID uuid.UUID) (int64, int64, error) {
	h := str.handle(tx).WithContext(ctx)

	var total int64
	if err := h.Model(&types.Assessment{}).
		Joins("JOIN enrollments ON enrollments.id = assessments.enrollment_id").
		Where("enrollments.course_id = ?", courseID).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}

	var passed int64
	if err := h.Model(&types.Assessment{}).
		Joins("JOIN enrollments ON enrollments.id = assessments.enrollment_id").
		Where("enrollments.course_id = ? AND assessments.total_score >= ?", courseID, 50).
		Count(&passed).Error; err != nil {
		return 0, 0, err
	}
	return total, passed, nil
}

func (str *statsRepo) CourseAtRiskCount(ctx context.Context, tx *gorm.DB, courseID uuid.UUID) (int64, error) {
	var count int64
	if err := str.handle(tx).WithContext(ctx).
		Model(&types.AnalyticsResult{}).
		Joins("JOIN enrollments ON enrollments.id = analytics_results.enrollment_id").
		Where("enrollments.course_id = ? AND analytics_results.risk_level IN ?", courseID, []string{"HIGH", "MEDIUM"}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (str *statsRepo) DepartmentAverage(ctx context.Context, tx *gorm.DB, departmentID uuid.UUID) (float64, error) {
	var avg *float64
	if err := str.handle(tx).WithContext(ctx).
		Table("assessments").
		Select("AVG(assessments.total_score)").
		Joins("JOIN enrollments ON enrollments.id = assessments.enrollment_id").
		Joins("JOIN courses ON courses.id = enrollments.course_id").
		Where("courses.department_id = ?", departmentID).
		Scan(&avg).Error; err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

func (str *statsRepo) FacultyPassCounts(ctx context.Context, tx *gorm.DB, facultyID uuid.UUID) (int64, int64, error) {
	h := str.handle(tx).WithContext(ctx)

	base := func() *gorm.DB {
		return h.Model(&types.Assessment{}).
			Joins("JOIN enrollments ON enrollments.id = assessments.enrollment_id").
			Joins("JOIN courses ON courses.id = enrollments.course_id").
			Joins("JOIN departments ON departments.id = courses.department_id").
			Where("departments.faculty_id = ?", facultyID)
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return 0, 0, err
	}
	var passed int64
	if err := base().Where("assessments.total_score >= ?", 50).Count(&passed).Error; err != nil {
		return 0, 0, err
	}
	return total, passed, nil
}

func (str *statsRepo) SessionAverages(ctx context.Context, tx *gorm.DB) ([]SessionAverage, error) {
	var rows []SessionAverage
	if err := str.handle(tx).WithContext(ctx).
		Table("enrollments").
		Select("enrollments.session AS session, AVG(assessments.total_score) AS average_score").
		Joins("JOIN assessments ON assessments.enrollment_id = enrollments.id").
		Group("enrollments.session").
		Order("enrollments.session asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (str *statsRepo) GradeCounts(ctx context.Context, tx *gorm.DB, departmentID *uuid.UUID) ([]GradeCount, error) {
	q := str.handle(tx).WithContext(ctx).
		Table("assessments").
		Select("assessments.grade AS grade, COUNT(*) AS count").
		Joins("JOIN enrollments ON enrollments.id = assessments.enrollment_id").
		Joins("JOIN courses ON courses.id = enrollments.course_id")
	if departmentID != nil {
		q = q.Where("courses.department_id = ?", *departmentID)
	}

	var rows []GradeCount
	if err := q.Group("assessments.grade").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (str *statsRepo) DepartmentSessionAverages(ctx context.Context, tx *gorm.DB, departmentID uuid.UUID) ([]SessionAverage, error) {
	var rows []SessionAverage
	if err := str.handle(tx).WithContext(ctx).
		Table("enrollments").
		Select("enrollments.session AS session, AVG(assessments.total_score) AS average_score").
		Joins("JOIN assessments ON assessments.enrollment_id = enrollments.id").
		Joins("JOIN courses ON courses.id = enrollments.course_id").
		Where("courses.department_id = ?", departmentID).
		Group("enrollments.session").
		Order("enrollments.session asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (str *statsRepo) HighRiskCourses(ctx context.Context, tx *gorm.DB, departmentID uuid.UUID) ([]CourseAverage, error) {
	var rows []CourseAverage
	if err := str.handle(tx).WithContext(ctx).
		Table("courses").
		Select("courses.id AS course_id, courses.course_code AS course_code, AVG(assessments.total_score) AS average_score").
		Joins("JOIN enrollments ON enrollments.course_id = courses.id").
		Joins("JOIN assessments ON assessments.enrollment_id = enrollments.id").
		Where("courses.department_id = ?", departmentID).
		Group("courses.id, courses.course_code").
		Having("AVG(assessments.total_score) < ?", 50).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (str *statsRepo) DepartmentPassCounts(ctx context.Context, tx *gorm.DB, departmentID uuid.UUID) (int64, int64, error) {
	h := str.handle(tx).WithContext(ctx)

	base := func() *gorm.DB {
		return h.Model(&types.Assessment{}).
			Joins("JOIN enrollments ON enrollments.id = assessments.enrollment_id").
			Joins("JOIN courses ON courses.id = enrollments.course_id").
			Where("courses.department_id = ?", departmentID)
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return 0, 0, err
	}
	var passed int64
	if err := base().Where("assessments.total_score >= ?", 50).Count(&passed).Error; err != nil {
		return 0, 0, err
	}
	return total, passed, nil
}
