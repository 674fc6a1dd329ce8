package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/Tekerra/acadlens-backend/internal/apierr"
	"github.com/Tekerra/acadlens-backend/internal/grading"
)

func (env *testEnv) academicService() AcademicService {
	return NewAcademicService(
		env.db,
		env.log,
		env.repos.university,
		env.repos.faculty,
		env.repos.department,
		env.repos.staff,
		env.repos.course,
	)
}

func TestCreateUniversityAutoStructure(t *testing.T) {
	env := newTestEnv(t)
	svc := env.academicService()

	result, err := svc.CreateUniversity(context.Background(), &CreateUniversityInput{
		Name:            "Structure University",
		Location:        "Ibadan",
		EstablishedYear: 1998,
	})
	if err != nil {
		t.Fatalf("CreateUniversity: %v", err)
	}
	if result.AutoStructure.CreatedFaculties != 4 {
		t.Fatalf("expected 4 faculties created, got %d", result.AutoStructure.CreatedFaculties)
	}
	if result.AutoStructure.CreatedDepartments != 17 {
		t.Fatalf("expected 17 departments created, got %d", result.AutoStructure.CreatedDepartments)
	}

	structure, err := svc.UniversityStructure(context.Background(), result.University.ID)
	if err != nil {
		t.Fatalf("UniversityStructure: %v", err)
	}
	if len(structure.Faculties) != 4 {
		t.Fatalf("expected 4 faculties in structure, got %d", len(structure.Faculties))
	}
	var departments int
	for _, faculty := range structure.Faculties {
		departments += len(faculty.Departments)
	}
	if departments != 17 {
		t.Fatalf("expected 17 departments in structure, got %d", departments)
	}
}

func TestCreateUniversityConflict(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.academicService().CreateUniversity(context.Background(), &CreateUniversityInput{
		Name:            env.university.Name,
		Location:        "Lagos",
		EstablishedYear: 1990,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if apiErr := apierr.From(err); apiErr.Status != 409 || apiErr.Code != "university_exists" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}

func TestCreateStaffRejectsUnknownRole(t *testing.T) {
	env := newTestEnv(t)
	deptID := env.department.ID

	_, err := env.academicService().CreateStaff(context.Background(), &CreateStaffInput{
		FullName:     "Nobody",
		Email:        "nobody@test.edu",
		Role:         "JANITOR",
		Password:     "pass12345",
		DepartmentID: &deptID,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if apiErr := apierr.From(err); apiErr.Status != 400 {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}

func TestCreateStaffLowercasesEmail(t *testing.T) {
	env := newTestEnv(t)
	deptID := env.department.ID

	staff, err := env.academicService().CreateStaff(context.Background(), &CreateStaffInput{
		FullName:     "Dr. Ade",
		Email:        " Dr.Ade@Test.EDU ",
		Role:         grading.RoleLecturer,
		Password:     "pass12345",
		DepartmentID: &deptID,
	})
	if err != nil {
		t.Fatalf("CreateStaff: %v", err)
	}
	if staff.Email != "dr.ade@test.edu" {
		t.Fatalf("expected lowercased email, got %q", staff.Email)
	}
}

func TestCreateCourseUppercasesCode(t *testing.T) {
	env := newTestEnv(t)
	lecturer := env.seedLecturer(t, "course.owner@test.edu")

	course, err := env.academicService().CreateCourse(context.Background(), &CreateCourseInput{
		CourseCode:   "csc407",
		CourseTitle:  "Compiler Construction",
		CreditUnits:  3,
		Semester:     "SECOND",
		DepartmentID: env.department.ID,
		LecturerID:   &lecturer.ID,
	})
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}
	if course.CourseCode != "CSC407" {
		t.Fatalf("expected uppercased course code, got %q", course.CourseCode)
	}
}

func TestCreateCourseUnknownLecturer(t *testing.T) {
	env := newTestEnv(t)
	missing := uuid.New()

	_, err := env.academicService().CreateCourse(context.Background(), &CreateCourseInput{
		CourseCode:   "CSC408",
		CourseTitle:  "Distributed Systems",
		CreditUnits:  3,
		Semester:     "FIRST",
		DepartmentID: env.department.ID,
		LecturerID:   &missing,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if apiErr := apierr.From(err); apiErr.Status != 404 {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}

func TestBootstrapStructureIdempotent(t *testing.T) {
	env := newTestEnv(t)
	svc := env.academicService()

	first, err := svc.BootstrapStructure(context.Background(), &BootstrapStructureInput{})
	if err != nil {
		t.Fatalf("BootstrapStructure: %v", err)
	}
	if first.University.Name != "Future State University" {
		t.Fatalf("unexpected default university: %+v", first.University)
	}

	second, err := svc.BootstrapStructure(context.Background(), &BootstrapStructureInput{})
	if err != nil {
		t.Fatalf("BootstrapStructure rerun: %v", err)
	}
	if second.University.ID != first.University.ID ||
		second.Faculty.ID != first.Faculty.ID ||
		second.Department.ID != first.Department.ID {
		t.Fatal("expected rerun to reuse existing rows")
	}
}
