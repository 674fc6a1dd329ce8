package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tekerra/acadlens-backend/internal/apierr"
	"github.com/Tekerra/acadlens-backend/internal/grading"
	"github.com/Tekerra/acadlens-backend/internal/logger"
	"github.com/Tekerra/acadlens-backend/internal/normalization"
	"github.com/Tekerra/acadlens-backend/internal/repos"
	"github.com/Tekerra/acadlens-backend/internal/types"
	"github.com/Tekerra/acadlens-backend/internal/utils"
)

// defaultUniversityStructure seeds a new university with a standard
// faculty/department layout. Ordered so repeated runs create rows in a
// stable order.
var defaultUniversityStructure = []struct {
	Faculty     string
	Departments []string
}{
	{"Faculty of Science", []string{
		"Computer Science", "Mathematics", "Physics", "Chemistry", "Biological Sciences",
	}},
	{"Faculty of Engineering", []string{
		"Electrical Engineering", "Mechanical Engineering", "Civil Engineering", "Computer Engineering",
	}},
	{"Faculty of Social and Management Sciences", []string{
		"Economics", "Accounting", "Business Administration", "Political Science",
	}},
	{"Faculty of Arts and Humanities", []string{
		"English", "History and International Studies", "Philosophy", "Linguistics",
	}},
}

type CreateUniversityInput struct {
	Name            string `json:"name"`
	Location        string `json:"location"`
	EstablishedYear int    `json:"established_year"`
	AutoStructure   *bool  `json:"auto_structure,omitempty"`
}

type StructureResult struct {
	CreatedFaculties   int `json:"created_faculties"`
	CreatedDepartments int `json:"created_departments"`
}

type CreateUniversityResult struct {
	University    *types.University `json:"university"`
	AutoStructure StructureResult   `json:"auto_structure"`
}

type CreateStaffInput struct {
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	Password     string     `json:"password"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
}

type CreateCourseInput struct {
	CourseCode   string     `json:"course_code"`
	CourseTitle  string     `json:"course_title"`
	CreditUnits  int        `json:"credit_units"`
	Semester     string     `json:"semester"`
	DepartmentID uuid.UUID  `json:"department_id"`
	LecturerID   *uuid.UUID `json:"lecturer_id,omitempty"`
}

type DepartmentNode struct {
	DepartmentID uuid.UUID `json:"department_id"`
	Name         string    `json:"name"`
}

type FacultyNode struct {
	FacultyID   uuid.UUID        `json:"faculty_id"`
	Name        string           `json:"name"`
	Departments []DepartmentNode `json:"departments"`
}

type UniversityStructure struct {
	UniversityID    uuid.UUID     `json:"university_id"`
	Name            string        `json:"name"`
	Location        string        `json:"location"`
	EstablishedYear int           `json:"established_year"`
	Faculties       []FacultyNode `json:"faculties"`
}

type BootstrapStructureInput struct {
	UniversityName  string `json:"university_name"`
	Location        string `json:"location"`
	EstablishedYear int    `json:"established_year"`
	FacultyName     string `json:"faculty_name"`
	DepartmentName  string `json:"department_name"`
}

type BootstrapStructureResult struct {
	University *types.University `json:"university"`
	Faculty    *types.Faculty    `json:"faculty"`
	Department *types.Department `json:"department"`
}

// AcademicService manages the institution hierarchy and its staffing:
// universities, faculties, departments, staff accounts and courses.
type AcademicService interface {
	CreateUniversity(ctx context.Context, input *CreateUniversityInput) (*CreateUniversityResult, error)
	CreateFaculty(ctx context.Context, name string, universityID uuid.UUID) (*types.Faculty, error)
	CreateDepartment(ctx context.Context, name string, facultyID uuid.UUID) (*types.Department, error)
	CreateStaff(ctx context.Context, input *CreateStaffInput) (*types.Staff, error)
	CreateCourse(ctx context.Context, input *CreateCourseInput) (*types.Course, error)
	ListUniversities(ctx context.Context) ([]*types.University, error)
	ReferenceData(ctx context.Context) ([]UniversityStructure, error)
	UniversityStructure(ctx context.Context, universityID uuid.UUID) (*UniversityStructure, error)
	BootstrapStructure(ctx context.Context, input *BootstrapStructureInput) (*BootstrapStructureResult, error)
}

type academicService struct {
	db             *gorm.DB
	log            *logger.Logger
	universityRepo repos.UniversityRepo
	facultyRepo    repos.FacultyRepo
	departmentRepo repos.DepartmentRepo
	staffRepo      repos.StaffRepo
	courseRepo     repos.CourseRepo
}

func NewAcademicService(
	db *gorm.DB,
	baseLog *logger.Logger,
	universityRepo repos.UniversityRepo,
	facultyRepo repos.FacultyRepo,
	departmentRepo repos.DepartmentRepo,
	staffRepo repos.StaffRepo,
	courseRepo repos.CourseRepo,
) AcademicService {
	return &academicService{
		db:             db,
		log:            baseLog.With("service", "AcademicService"),
		universityRepo: universityRepo,
		facultyRepo:    facultyRepo,
		departmentRepo: departmentRepo,
		staffRepo:      staffRepo,
		courseRepo:     courseRepo,
	}
}

func (acs *academicService) CreateUniversity(ctx context.Context, input *CreateUniversityInput) (*CreateUniversityResult, error) {
	name := strings.TrimSpace(input.Name)
	existing, err := acs.universityRepo.GetByName(ctx, nil, name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apierr.Conflict("university_exists", fmt.Errorf("university %q already exists", name))
	}

	result := &CreateUniversityResult{}
	err = acs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		university := &types.University{
			Name:            name,
			Location:        strings.TrimSpace(input.Location),
			EstablishedYear: input.EstablishedYear,
		}
		if err := acs.universityRepo.Create(ctx, tx, university); err != nil {
			return err
		}
		result.University = university

		autoStructure := input.AutoStructure == nil || *input.AutoStructure
		if autoStructure {
			structure, err := acs.ensureUniversityStructure(ctx, tx, university.ID)
			if err != nil {
				return err
			}
			result.AutoStructure = *structure
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	acs.log.Info("University created",
		"university_id", result.University.ID,
		"name", result.University.Name,
		"created_faculties", result.AutoStructure.CreatedFaculties,
		"created_departments", result.AutoStructure.CreatedDepartments,
	)
	return result, nil
}

// ensureUniversityStructure is idempotent: rerunning it against a
// university that already has the template rows creates nothing.
func (acs *academicService) ensureUniversityStructure(ctx context.Context, tx *gorm.DB, universityID uuid.UUID) (*StructureResult, error) {
	result := &StructureResult{}
	for _, entry := range defaultUniversityStructure {
		faculty, err := acs.facultyRepo.GetByNameAndUniversity(ctx, tx, entry.Faculty, universityID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			faculty = &types.Faculty{Name: entry.Faculty, UniversityID: universityID}
			if err := acs.facultyRepo.Create(ctx, tx, faculty); err != nil {
				return nil, err
			}
			result.CreatedFaculties++
		}
		for _, deptName := range entry.Departments {
			_, err := acs.departmentRepo.GetByNameAndFaculty(ctx, tx, deptName, faculty.ID)
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			department := &types.Department{Name: deptName, FacultyID: faculty.ID}
			if err := acs.departmentRepo.Create(ctx, tx, department); err != nil {
				return nil, err
			}
			result.CreatedDepartments++
		}
	}
	return result, nil
}

func (acs *academicService) CreateFaculty(ctx context.Context, name string, universityID uuid.UUID) (*types.Faculty, error) {
	name = strings.TrimSpace(name)
	if _, err := acs.universityRepo.GetByID(ctx, nil, universityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("university_not_found", err)
		}
		return nil, err
	}
	existing, err := acs.facultyRepo.GetByNameAndUniversity(ctx, nil, name, universityID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apierr.Conflict("faculty_exists", fmt.Errorf("faculty %q already exists in university", name))
	}
	faculty := &types.Faculty{Name: name, UniversityID: universityID}
	if err := acs.facultyRepo.Create(ctx, nil, faculty); err != nil {
		return nil, err
	}
	return faculty, nil
}

func (acs *academicService) CreateDepartment(ctx context.Context, name string, facultyID uuid.UUID) (*types.Department, error) {
	name = strings.TrimSpace(name)
	if _, err := acs.facultyRepo.GetByID(ctx, nil, facultyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("faculty_not_found", err)
		}
		return nil, err
	}
	existing, err := acs.departmentRepo.GetByNameAndFaculty(ctx, nil, name, facultyID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apierr.Conflict("department_exists", fmt.Errorf("department %q already exists in faculty", name))
	}
	department := &types.Department{Name: name, FacultyID: facultyID}
	if err := acs.departmentRepo.Create(ctx, nil, department); err != nil {
		return nil, err
	}
	return department, nil
}

func (acs *academicService) CreateStaff(ctx context.Context, input *CreateStaffInput) (*types.Staff, error) {
	if !grading.StaffRoles[input.Role] {
		return nil, apierr.BadRequest("invalid_role", fmt.Errorf("invalid staff role %q", input.Role))
	}
	email := normalization.ParseInputString(input.Email)
	existing, err := acs.staffRepo.GetByEmail(ctx, nil, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apierr.Conflict("email_taken", fmt.Errorf("staff email %s already exists", email))
	}
	if input.DepartmentID != nil {
		if _, err := acs.departmentRepo.GetByID(ctx, nil, *input.DepartmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierr.NotFound("department_not_found", err)
			}
			return nil, err
		}
	}
	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	staff := &types.Staff{
		FullName:     input.FullName,
		Email:        email,
		PasswordHash: hash,
		Role:         input.Role,
		DepartmentID: input.DepartmentID,
	}
	if err := acs.staffRepo.Create(ctx, nil, staff); err != nil {
		return nil, err
	}
	acs.log.Info("Staff created", "staff_id", staff.ID, "role", staff.Role)
	return staff, nil
}

func (acs *academicService) CreateCourse(ctx context.Context, input *CreateCourseInput) (*types.Course, error) {
	courseCode := normalization.CourseCode(input.CourseCode)
	existing, err := acs.courseRepo.GetByCode(ctx, nil, courseCode)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apierr.Conflict("course_code_taken", fmt.Errorf("course code %s already exists", courseCode))
	}
	if _, err := acs.departmentRepo.GetByID(ctx, nil, input.DepartmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("department_not_found", err)
		}
		return nil, err
	}
	if input.LecturerID != nil {
		if _, err := acs.staffRepo.GetByID(ctx, nil, *input.LecturerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierr.NotFound("lecturer_not_found", err)
			}
			return nil, err
		}
	}
	course := &types.Course{
		CourseCode:   courseCode,
		CourseTitle:  input.CourseTitle,
		CreditUnits:  input.CreditUnits,
		Semester:     input.Semester,
		DepartmentID: input.DepartmentID,
		LecturerID:   input.LecturerID,
	}
	if err := acs.courseRepo.Create(ctx, nil, course); err != nil {
		return nil, err
	}
	acs.log.Info("Course created", "course_id", course.ID, "course_code", course.CourseCode)
	return course, nil
}

func (acs *academicService) ListUniversities(ctx context.Context) ([]*types.University, error) {
	return acs.universityRepo.ListOrderedByName(ctx, nil)
}

func (acs *academicService) ReferenceData(ctx context.Context) ([]UniversityStructure, error) {
	universities, err := acs.universityRepo.ListOrderedByName(ctx, nil)
	if err != nil {
		return nil, err
	}
	payload := []UniversityStructure{}
	for _, university := range universities {
		structure, err := acs.structureFor(ctx, university)
		if err != nil {
			return nil, err
		}
		payload = append(payload, *structure)
	}
	return payload, nil
}

func (acs *academicService) UniversityStructure(ctx context.Context, universityID uuid.UUID) (*UniversityStructure, error) {
	university, err := acs.universityRepo.GetByID(ctx, nil, universityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("university_not_found", err)
		}
		return nil, err
	}
	return acs.structureFor(ctx, university)
}

func (acs *academicService) structureFor(ctx context.Context, university *types.University) (*UniversityStructure, error) {
	structure := &UniversityStructure{
		UniversityID:    university.ID,
		Name:            university.Name,
		Location:        university.Location,
		EstablishedYear: university.EstablishedYear,
		Faculties:       []FacultyNode{},
	}
	faculties, err := acs.facultyRepo.ListByUniversity(ctx, nil, university.ID)
	if err != nil {
		return nil, err
	}
	for _, faculty := range faculties {
		node := FacultyNode{
			FacultyID:   faculty.ID,
			Name:        faculty.Name,
			Departments: []DepartmentNode{},
		}
		departments, err := acs.departmentRepo.ListByFaculty(ctx, nil, faculty.ID)
		if err != nil {
			return nil, err
		}
		for _, department := range departments {
			node.Departments = append(node.Departments, DepartmentNode{
				DepartmentID: department.ID,
				Name:         department.Name,
			})
		}
		structure.Faculties = append(structure.Faculties, node)
	}
	return structure, nil
}

func (acs *academicService) BootstrapStructure(ctx context.Context, input *BootstrapStructureInput) (*BootstrapStructureResult, error) {
	uniName := strings.TrimSpace(input.UniversityName)
	if uniName == "" {
		uniName = "Future State University"
	}
	location := strings.TrimSpace(input.Location)
	if location == "" {
		location = "Lagos"
	}
	establishedYear := input.EstablishedYear
	if establishedYear == 0 {
		establishedYear = 1992
	}
	facultyName := strings.TrimSpace(input.FacultyName)
	if facultyName == "" {
		facultyName = "Faculty of Science"
	}
	departmentName := strings.TrimSpace(input.DepartmentName)
	if departmentName == "" {
		departmentName = "Computer Science"
	}

	result := &BootstrapStructureResult{}
	err := acs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		university, err := acs.universityRepo.GetByName(ctx, tx, uniName)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			university = &types.University{Name: uniName, Location: location, EstablishedYear: establishedYear}
			if err := acs.universityRepo.Create(ctx, tx, university); err != nil {
				return err
			}
		}
		faculty, err := acs.facultyRepo.GetByNameAndUniversity(ctx, tx, facultyName, university.ID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			faculty = &types.Faculty{Name: facultyName, UniversityID: university.ID}
			if err := acs.facultyRepo.Create(ctx, tx, faculty); err != nil {
				return err
			}
		}
		department, err := acs.departmentRepo.GetByNameAndFaculty(ctx, tx, departmentName, faculty.ID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			department = &types.Department{Name: departmentName, FacultyID: faculty.ID}
			if err := acs.departmentRepo.Create(ctx, tx, department); err != nil {
				return err
			}
		}
		result.University = university
		result.Faculty = faculty
		result.Department = department
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
