package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tekerra/acadlens-backend/internal/types"
)

func recordScore(t *testing.T, db *gorm.DB, enrollmentID uuid.UUID, total float64, grade string) {
	t.Helper()
	assessment := &types.Assessment{
		ID:           uuid.New(),
		EnrollmentID: enrollmentID,
		CAScore:      total / 2,
		ExamScore:    total / 2,
		TotalScore:   total,
		Grade:        grade,
	}
	if err := db.Create(assessment).Error; err != nil {
		t.Fatalf("create assessment: %v", err)
	}
}

func TestStatsQueries(t *testing.T) {
	db := newTestDB(t)
	log := newTestLogger(t)
	ctx := context.Background()

	department := seedAcademicBase(t, db)
	student := seedStudent(t, db, department.ID, "CSC/2022/010")
	strongCourse := seedCourse(t, db, department.ID, "CSC410", 3, nil)
	weakCourse := seedCourse(t, db, department.ID, "CSC411", 2, nil)

	enrollmentRepo := NewEnrollmentRepo(db, log)
	e1, _, err := enrollmentRepo.FindOrCreate(ctx, nil, student.ID, strongCourse.ID, "2024/2025", "FIRST")
	if err != nil {
		t.Fatalf("enroll strong: %v", err)
	}
	e2, _, err := enrollmentRepo.FindOrCreate(ctx, nil, student.ID, weakCourse.ID, "2025/2026", "FIRST")
	if err != nil {
		t.Fatalf("enroll weak: %v", err)
	}
	recordScore(t, db, e1.ID, 80, "A")
	recordScore(t, db, e2.ID, 40, "E")

	repo := NewStatsRepo(db, log)

	units, err := repo.StudentGradeUnits(ctx, nil, student.ID)
	if err != nil {
		t.Fatalf("StudentGradeUnits: %v", err)
	}
	if len(units) != 2 {
		t.Fatalf("expected 2 grade rows, got %d", len(units))
	}
	gotUnits := map[string]int{}
	for _, row := range units {
		gotUnits[row.Grade] = row.CreditUnits
	}
	if gotUnits["A"] != 3 || gotUnits["E"] != 2 {
		t.Fatalf("unexpected grade units: %+v", gotUnits)
	}

	total, passed, err := repo.CoursePassCounts(ctx, nil, weakCourse.ID)
	if err != nil {
		t.Fatalf("CoursePassCounts: %v", err)
	}
	if total != 1 || passed != 0 {
		t.Fatalf("expected total=1 passed=0 for the weak course, got %d/%d", total, passed)
	}

	averages, err := repo.SessionAverages(ctx, nil)
	if err != nil {
		t.Fatalf("SessionAverages: %v", err)
	}
	if len(averages) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(averages))
	}
	if averages[0].Session != "2024/2025" || averages[1].Session != "2025/2026" {
		t.Fatalf("expected ascending session order, got %+v", averages)
	}
	if averages[0].AverageScore != 80 || averages[1].AverageScore != 40 {
		t.Fatalf("unexpected session averages: %+v", averages)
	}

	counts, err := repo.GradeCounts(ctx, nil, &department.ID)
	if err != nil {
		t.Fatalf("GradeCounts: %v", err)
	}
	gotCounts := map[string]int64{}
	for _, row := range counts {
		gotCounts[row.Grade] = row.Count
	}
	if gotCounts["A"] != 1 || gotCounts["E"] != 1 {
		t.Fatalf("unexpected grade counts: %+v", gotCounts)
	}

	highRisk, err := repo.HighRiskCourses(ctx, nil, department.ID)
	if err != nil {
		t.Fatalf("HighRiskCourses: %v", err)
	}
	if len(highRisk) != 1 || highRisk[0].CourseCode != "CSC411" {
		t.Fatalf("expected only CSC411 high-risk, got %+v", highRisk)
	}

	avg, err := repo.DepartmentAverage(ctx, nil, department.ID)
	if err != nil {
		t.Fatalf("DepartmentAverage: %v", err)
	}
	if avg != 60 {
		t.Fatalf("expected department average 60, got %v", avg)
	}
}
