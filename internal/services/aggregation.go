package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tekerra/acadlens-backend/internal/grading"
	"github.com/Tekerra/acadlens-backend/internal/logger"
	"github.com/Tekerra/acadlens-backend/internal/repos"
	"github.com/Tekerra/acadlens-backend/internal/types"
)

// DepartmentSnapshot is the HOD dashboard aggregate for one department.
type DepartmentSnapshot struct {
	AverageScore      float64            `json:"average_score"`
	PassRate          float64            `json:"pass_rate"`
	GradeDistribution map[string]int64   `json:"grade_distribution"`
	HighRiskCourses   []string           `json:"high_risk_courses"`
	PerformanceTrend  []types.TrendPoint `json:"performance_trend"`
}

// SystemStats is the admin-facing institution overview.
type SystemStats struct {
	Students         int64              `json:"students"`
	Faculties        int64              `json:"faculties"`
	Departments      int64              `json:"departments"`
	Courses          int64              `json:"courses"`
	InstitutionTrend []types.TrendPoint `json:"institution_trend"`
}

// ClassAnalyticsRow summarizes one course for the lecturer teaching it.
type ClassAnalyticsRow struct {
	CourseID       uuid.UUID `json:"course_id"`
	CourseCode     string    `json:"course_code"`
	CourseTitle    string    `json:"course_title"`
	PassRate       float64   `json:"pass_rate"`
	AtRiskStudents int64     `json:"at_risk_students"`
	Records        int64     `json:"records"`
}

// AggregationService computes cohort-level metrics: GPA estimates, pass
// rates, grade distributions and performance trends. Empty cohorts
// always yield zero values, never errors.
type AggregationService interface {
	StudentGPAEstimate(ctx context.Context, tx *gorm.DB, studentID uuid.UUID) (float64, error)
	CoursePassRate(ctx context.Context, tx *gorm.DB, courseID uuid.UUID) (float64, error)
	DepartmentAverage(ctx context.Context, tx *gorm.DB, departmentID uuid.UUID) (float64, error)
	FacultyPassRate(ctx context.Context, tx *gorm.DB, facultyID uuid.UUID) (float64, error)
	InstitutionTrend(ctx context.Context, tx *gorm.DB) ([]types.TrendPoint, error)
	GradeDistribution(ctx context.Context, tx *gorm.DB, departmentID *uuid.UUID) (map[string]int64, error)
	DepartmentSnapshot(ctx context.Context, tx *gorm.DB, departmentID uuid.UUID) (*DepartmentSnapshot, error)
	SystemStats(ctx context.Context, tx *gorm.DB) (*SystemStats, error)
	ClassAnalytics(ctx context.Context, tx *gorm.DB, lecturerID uuid.UUID) ([]ClassAnalyticsRow, error)
}

type aggregationService struct {
	log            *logger.Logger
	statsRepo      repos.StatsRepo
	studentRepo    repos.StudentRepo
	facultyRepo    repos.FacultyRepo
	departmentRepo repos.DepartmentRepo
	courseRepo     repos.CourseRepo
}

func NewAggregationService(
	baseLog *logger.Logger,
	statsRepo repos.StatsRepo,
	studentRepo repos.StudentRepo,
	facultyRepo repos.FacultyRepo,
	departmentRepo repos.DepartmentRepo,
	courseRepo repos.CourseRepo,
) AggregationService {
	return &aggregationService{
		log:            baseLog.With("service", "AggregationService"),
		statsRepo:      statsRepo,
		studentRepo:    studentRepo,
		facultyRepo:    facultyRepo,
		departmentRepo: departmentRepo,
		courseRepo:     courseRepo,
	}
}

// StudentGPAEstimate is the credit-weighted mean of grade points across
// every assessed enrollment the student has, on the 5.0 scale.
func (as *aggregationService) StudentGPAEstimate(ctx context.Context, tx *gorm.DB, studentID uuid.UUID) (float64, error) {
	rows, err := as.statsRepo.StudentGradeUnits(ctx, tx, studentID)
	if err != nil {
		return 0, err
	}
	var totalPoints float64
	var totalUnits int
	for _, row := range rows {
		totalPoints += grading.GradePoints[row.Grade] * float64(row.CreditUnits)
		totalUnits += row.CreditUnits
	}
	if totalUnits == 0 {
		return 0, nil
	}
	return grading.Round2(totalPoints / float64(totalUnits)), nil
}

func (as *aggregationService) CoursePassRate(ctx context.Context, tx *gorm.DB, courseID uuid.UUID) (float64, error) {
	total, passed, err := as.statsRepo.CoursePassCounts(ctx, tx, courseID)
	if err != nil {
		return 0, err
	}
	return passRate(total, passed), nil
}

func (as *aggregationService) DepartmentAverage(ctx context.Context, tx *gorm.DB, departmentID uuid.UUID) (float64, error) {
	avg, err := as.statsRepo.DepartmentAverage(ctx, tx, departmentID)
	if err != nil {
		return 0, err
	}
	return grading.Round2(avg), nil
}

func (as *aggregationService) FacultyPassRate(ctx context.Context, tx *gorm.DB, facultyID uuid.UUID) (float64, error) {
	total, passed, err := as.statsRepo.FacultyPassCounts(ctx, tx, facultyID)
	if err != nil {
		return 0, err
	}
	return passRate(total, passed), nil
}

func (as *aggregationService) InstitutionTrend(ctx context.Context, tx *gorm.DB) ([]types.TrendPoint, error) {
	rows, err := as.statsRepo.SessionAverages(ctx, tx)
	if err != nil {
		return nil, err
	}
	return trendPoints(rows), nil
}

func (as *aggregationService) GradeDistribution(ctx context.Context, tx *gorm.DB, departmentID *uuid.UUID) (map[string]int64, error) {
	rows, err := as.statsRepo.GradeCounts(ctx, tx, departmentID)
	if err != nil {
		return nil, err
	}
	dist := map[string]int64{}
	for _, row := range rows {
		dist[row.Grade] = row.Count
	}
	return dist, nil
}

func (as *aggregationService) DepartmentSnapshot(ctx context.Context, tx *gorm.DB, departmentID uuid.UUID) (*DepartmentSnapshot, error) {
	avg, err := as.statsRepo.DepartmentAverage(ctx, tx, departmentID)
	if err != nil {
		return nil, err
	}
	total, passed, err := as.statsRepo.DepartmentPassCounts(ctx, tx, departmentID)
	if err != nil {
		return nil, err
	}
	dist, err := as.GradeDistribution(ctx, tx, &departmentID)
	if err != nil {
		return nil, err
	}
	highRisk, err := as.statsRepo.HighRiskCourses(ctx, tx, departmentID)
	if err != nil {
		return nil, err
	}
	trend, err := as.statsRepo.DepartmentSessionAverages(ctx, tx, departmentID)
	if err != nil {
		return nil, err
	}

	snapshot := &DepartmentSnapshot{
		AverageScore:      grading.Round2(avg),
		PassRate:          passRate(total, passed),
		GradeDistribution: dist,
		HighRiskCourses:   []string{},
		PerformanceTrend:  trendPoints(trend),
	}
	for _, row := range highRisk {
		snapshot.HighRiskCourses = append(snapshot.HighRiskCourses, row.CourseCode)
	}
	return snapshot, nil
}

func (as *aggregationService) SystemStats(ctx context.Context, tx *gorm.DB) (*SystemStats, error) {
	students, err := as.studentRepo.Count(ctx, tx)
	if err != nil {
		return nil, err
	}
	faculties, err := as.facultyRepo.Count(ctx, tx)
	if err != nil {
		return nil, err
	}
	departments, err := as.departmentRepo.Count(ctx, tx)
	if err != nil {
		return nil, err
	}
	courses, err := as.courseRepo.Count(ctx, tx)
	if err != nil {
		return nil, err
	}
	trend, err := as.InstitutionTrend(ctx, tx)
	if err != nil {
		return nil, err
	}
	return &SystemStats{
		Students:         students,
		Faculties:        faculties,
		Departments:      departments,
		Courses:          courses,
		InstitutionTrend: trend,
	}, nil
}

func (as *aggregationService) ClassAnalytics(ctx context.Context, tx *gorm.DB, lecturerID uuid.UUID) ([]ClassAnalyticsRow, error) {
	courses, err := as.courseRepo.ListByLecturer(ctx, tx, lecturerID)
	if err != nil {
		return nil, err
	}
	rows := []ClassAnalyticsRow{}
	for _, course := range courses {
		total, passed, err := as.statsRepo.CoursePassCounts(ctx, tx, course.ID)
		if err != nil {
			return nil, err
		}
		atRisk, err := as.statsRepo.CourseAtRiskCount(ctx, tx, course.ID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, ClassAnalyticsRow{
			CourseID:       course.ID,
			CourseCode:     course.CourseCode,
			CourseTitle:    course.CourseTitle,
			PassRate:       passRate(total, passed),
			AtRiskStudents: atRisk,
			Records:        total,
		})
	}
	return rows, nil
}

func passRate(total, passed int64) float64 {
	if total == 0 {
		return 0
	}
	return grading.Round2(float64(passed) / float64(total) * 100)
}

func trendPoints(rows []repos.SessionAverage) []types.TrendPoint {
	points := make([]types.TrendPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, types.TrendPoint{
			Session:      row.Session,
			AverageScore: grading.Round2(row.AverageScore),
		})
	}
	return points
}
