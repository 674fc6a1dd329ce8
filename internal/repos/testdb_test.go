package repos

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tekerra/acadlens-backend/internal/logger"
	"github.com/Tekerra/acadlens-backend/internal/types"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&types.University{},
		&types.Faculty{},
		&types.Department{},
		&types.Staff{},
		&types.Student{},
		&types.Course{},
		&types.Enrollment{},
		&types.Assessment{},
		&types.AnalyticsResult{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

// seedAcademicBase creates one university/faculty/department and
// returns the department for hanging students and courses off.
func seedAcademicBase(t *testing.T, db *gorm.DB) *types.Department {
	t.Helper()
	university := &types.University{ID: uuid.New(), Name: "Test University", Location: "Lagos", EstablishedYear: 1990}
	if err := db.Create(university).Error; err != nil {
		t.Fatalf("create university: %v", err)
	}
	faculty := &types.Faculty{ID: uuid.New(), Name: "Faculty of Science", UniversityID: university.ID}
	if err := db.Create(faculty).Error; err != nil {
		t.Fatalf("create faculty: %v", err)
	}
	department := &types.Department{ID: uuid.New(), Name: "Computer Science", FacultyID: faculty.ID}
	if err := db.Create(department).Error; err != nil {
		t.Fatalf("create department: %v", err)
	}
	return department
}

func seedStudent(t *testing.T, db *gorm.DB, departmentID uuid.UUID, matricNo string) *types.Student {
	t.Helper()
	student := &types.Student{
		ID:           uuid.New(),
		MatricNo:     matricNo,
		FullName:     "Test Student",
		Gender:       "F",
		Level:        400,
		PasswordHash: "x",
		DepartmentID: departmentID,
	}
	if err := db.Create(student).Error; err != nil {
		t.Fatalf("create student: %v", err)
	}
	return student
}

func seedCourse(t *testing.T, db *gorm.DB, departmentID uuid.UUID, code string, units int, lecturerID *uuid.UUID) *types.Course {
	t.Helper()
	course := &types.Course{
		ID:           uuid.New(),
		CourseCode:   code,
		CourseTitle:  "Course " + code,
		CreditUnits:  units,
		Semester:     "FIRST",
		DepartmentID: departmentID,
		LecturerID:   lecturerID,
	}
	if err := db.Create(course).Error; err != nil {
		t.Fatalf("create course: %v", err)
	}
	return course
}
