package services

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tekerra/acadlens-backend/internal/logger"
	"github.com/Tekerra/acadlens-backend/internal/repos"
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

type testEnv struct {
	db    *gorm.DB
	log   *logger.Logger
	repos struct {
		university repos.UniversityRepo
		faculty    repos.FacultyRepo
		department repos.DepartmentRepo
		staff      repos.StaffRepo
		student    repos.StudentRepo
		course     repos.CourseRepo
		enrollment repos.EnrollmentRepo
		assessment repos.AssessmentRepo
		analytics  repos.AnalyticsResultRepo
		stats      repos.StatsRepo
	}
	department *types.Department
	university *types.University
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{db: newTestDB(t), log: newTestLogger(t)}
	env.repos.university = repos.NewUniversityRepo(env.db, env.log)
	env.repos.faculty = repos.NewFacultyRepo(env.db, env.log)
	env.repos.department = repos.NewDepartmentRepo(env.db, env.log)
	env.repos.staff = repos.NewStaffRepo(env.db, env.log)
	env.repos.student = repos.NewStudentRepo(env.db, env.log)
	env.repos.course = repos.NewCourseRepo(env.db, env.log)
	env.repos.enrollment = repos.NewEnrollmentRepo(env.db, env.log)
	env.repos.assessment = repos.NewAssessmentRepo(env.db, env.log)
	env.repos.analytics = repos.NewAnalyticsResultRepo(env.db, env.log)
	env.repos.stats = repos.NewStatsRepo(env.db, env.log)

	env.university = &types.University{ID: uuid.New(), Name: "Test University", Location: "Lagos", EstablishedYear: 1990}
	if err := env.db.Create(env.university).Error; err != nil {
		t.Fatalf("create university: %v", err)
	}
	faculty := &types.Faculty{ID: uuid.New(), Name: "Faculty of Science", UniversityID: env.university.ID}
	if err := env.db.Create(faculty).Error; err != nil {
		t.Fatalf("create faculty: %v", err)
	}
	env.department = &types.Department{ID: uuid.New(), Name: "Computer Science", FacultyID: faculty.ID}
	if err := env.db.Create(env.department).Error; err != nil {
		t.Fatalf("create department: %v", err)
	}
	return env
}

func (env *testEnv) analyticsService() AnalyticsService {
	return NewAnalyticsService(env.log, env.repos.assessment, env.repos.analytics)
}

func (env *testEnv) aggregationService() AggregationService {
	return NewAggregationService(env.log, env.repos.stats, env.repos.student, env.repos.faculty, env.repos.department, env.repos.course)
}

func (env *testEnv) seedStudent(t *testing.T, matricNo string) *types.Student {
	t.Helper()
	student := &types.Student{
		ID:           uuid.New(),
		MatricNo:     matricNo,
		FullName:     "Student " + matricNo,
		Gender:       "M",
		Level:        400,
		PasswordHash: "x",
		DepartmentID: env.department.ID,
	}
	if err := env.db.Create(student).Error; err != nil {
		t.Fatalf("create student: %v", err)
	}
	return student
}

func (env *testEnv) seedCourse(t *testing.T, code string, units int, lecturerID *uuid.UUID) *types.Course {
	t.Helper()
	course := &types.Course{
		ID:           uuid.New(),
		CourseCode:   code,
		CourseTitle:  "Course " + code,
		CreditUnits:  units,
		Semester:     "FIRST",
		DepartmentID: env.department.ID,
		LecturerID:   lecturerID,
	}
	if err := env.db.Create(course).Error; err != nil {
		t.Fatalf("create course: %v", err)
	}
	return course
}

func (env *testEnv) seedLecturer(t *testing.T, email string) *types.Staff {
	t.Helper()
	deptID := env.department.ID
	staff := &types.Staff{
		ID:           uuid.New(),
		FullName:     "Lecturer",
		Email:        email,
		PasswordHash: "x",
		Role:         "LECTURER",
		DepartmentID: &deptID,
	}
	if err := env.db.Create(staff).Error; err != nil {
		t.Fatalf("create staff: %v", err)
	}
	return staff
}
