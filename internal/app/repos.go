package app

import (
	"gorm.io/gorm"

	"github.com/Tekerra/acadlens-backend/internal/logger"
	"github.com/Tekerra/acadlens-backend/internal/repos"
)

type Repos struct {
	University      repos.UniversityRepo
	Faculty         repos.FacultyRepo
	Department      repos.DepartmentRepo
	Staff           repos.StaffRepo
	Student         repos.StudentRepo
	Course          repos.CourseRepo
	Enrollment      repos.EnrollmentRepo
	Assessment      repos.AssessmentRepo
	AnalyticsResult repos.AnalyticsResultRepo
	Stats           repos.StatsRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		University:      repos.NewUniversityRepo(db, log),
		Faculty:         repos.NewFacultyRepo(db, log),
		Department:      repos.NewDepartmentRepo(db, log),
		Staff:           repos.NewStaffRepo(db, log),
		Student:         repos.NewStudentRepo(db, log),
		Course:          repos.NewCourseRepo(db, log),
		Enrollment:      repos.NewEnrollmentRepo(db, log),
		Assessment:      repos.NewAssessmentRepo(db, log),
		AnalyticsResult: repos.NewAnalyticsResultRepo(db, log),
		Stats:           repos.NewStatsRepo(db, log),
	}
}
