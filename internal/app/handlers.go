package app

import (
	"github.com/Tekerra/acadlens-backend/internal/handlers"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Admin    *handlers.AdminHandler
	HOD      *handlers.HODHandler
	Advisor  *handlers.AdvisorHandler
	Lecturer *handlers.LecturerHandler
	Student  *handlers.StudentHandler
}

func wireHandlers(s Services, r Repos) Handlers {
	return Handlers{
		Auth:     handlers.NewAuthHandler(s.Auth, s.Academic),
		Admin:    handlers.NewAdminHandler(s.Academic, s.Aggregation),
		HOD:      handlers.NewHODHandler(s.Aggregation, r.Staff, r.Stats),
		Advisor:  handlers.NewAdvisorHandler(r.Student),
		Lecturer: handlers.NewLecturerHandler(s.ResultsImport, s.Aggregation),
		Student:  handlers.NewStudentHandler(s.Personalization, r.Enrollment),
	}
}
