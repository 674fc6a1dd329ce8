package repos

import (
	"context"
	"testing"

	"github.com/Tekerra/acadlens-backend/internal/types"
)

func TestEnrollmentFindOrCreate(t *testing.T) {
	db := newTestDB(t)
	log := newTestLogger(t)
	repo := NewEnrollmentRepo(db, log)
	ctx := context.Background()

	department := seedAcademicBase(t, db)
	student := seedStudent(t, db, department.ID, "CSC/2022/001")
	course := seedCourse(t, db, department.ID, "CSC401", 3, nil)

	first, created, err := repo.FindOrCreate(ctx, nil, student.ID, course.ID, "2025/2026", "FIRST")
	if err != nil {
		t.Fatalf("first FindOrCreate: %v", err)
	}
	if !created {
		t.Fatalf("expected first call to create")
	}

	second, created, err := repo.FindOrCreate(ctx, nil, student.ID, course.ID, "2025/2026", "FIRST")
	if err != nil {
		t.Fatalf("second FindOrCreate: %v", err)
	}
	if created {
		t.Fatalf("expected second call to reuse the row")
	}
	if first.ID != second.ID {
		t.Fatalf("expected same enrollment, got %s and %s", first.ID, second.ID)
	}

	var count int64
	if err := db.Model(&types.Enrollment{}).Count(&count).Error; err != nil {
		t.Fatalf("count enrollments: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 enrollment, got %d", count)
	}

	// A different session is a distinct enrollment.
	_, created, err = repo.FindOrCreate(ctx, nil, student.ID, course.ID, "2026/2027", "FIRST")
	if err != nil {
		t.Fatalf("third FindOrCreate: %v", err)
	}
	if !created {
		t.Fatalf("expected a new enrollment for a new session")
	}
}

func TestEnrollmentListByStudentWithHistory(t *testing.T) {
	db := newTestDB(t)
	log := newTestLogger(t)
	repo := NewEnrollmentRepo(db, log)
	ctx := context.Background()

	department := seedAcademicBase(t, db)
	student := seedStudent(t, db, department.ID, "CSC/2022/002")
	course := seedCourse(t, db, department.ID, "CSC402", 2, nil)

	enrollment, _, err := repo.FindOrCreate(ctx, nil, student.ID, course.ID, "2025/2026", "FIRST")
	if err != nil {
		t.Fatalf("FindOrCreate: %v", err)
	}

	assessmentRepo := NewAssessmentRepo(db, log)
	if err := assessmentRepo.Upsert(ctx, nil, &types.Assessment{
		EnrollmentID: enrollment.ID,
		CAScore:      25,
		ExamScore:    50,
		TotalScore:   75,
		Grade:        "A",
	}); err != nil {
		t.Fatalf("upsert assessment: %v", err)
	}

	rows, err := repo.ListByStudentWithHistory(ctx, nil, student.ID)
	if err != nil {
		t.Fatalf("ListByStudentWithHistory: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 enrollment, got %d", len(rows))
	}
	if rows[0].Course == nil || rows[0].Course.CourseCode != "CSC402" {
		t.Fatalf("expected course preloaded, got %+v", rows[0].Course)
	}
	if rows[0].Assessment == nil || rows[0].Assessment.Grade != "A" {
		t.Fatalf("expected assessment preloaded, got %+v", rows[0].Assessment)
	}
	if rows[0].AnalyticsResult != nil {
		t.Fatalf("expected no analytics result yet")
	}
}
