package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tekerra/acadlens-backend/internal/grading"
	"github.com/Tekerra/acadlens-backend/internal/logger"
	"github.com/Tekerra/acadlens-backend/internal/repos"
	"github.com/Tekerra/acadlens-backend/internal/types"
	"github.com/Tekerra/acadlens-backend/internal/utils"
)

type BootstrapResult struct {
	Bootstrapped bool   `json:"bootstrapped"`
	Message      string `json:"message"`
}

// BootstrapService seeds a working demo institution: one university,
// faculty and department, one account per staff role, five students
// and their enrollments in a single course. Safe to run repeatedly.
type BootstrapService interface {
	EnsureDemoData(ctx context.Context) (*BootstrapResult, error)
}

type bootstrapService struct {
	db             *gorm.DB
	log            *logger.Logger
	universityRepo repos.UniversityRepo
	facultyRepo    repos.FacultyRepo
	departmentRepo repos.DepartmentRepo
	staffRepo      repos.StaffRepo
	studentRepo    repos.StudentRepo
	courseRepo     repos.CourseRepo
	enrollmentRepo repos.EnrollmentRepo
}

func NewBootstrapService(
	db *gorm.DB,
	baseLog *logger.Logger,
	universityRepo repos.UniversityRepo,
	facultyRepo repos.FacultyRepo,
	departmentRepo repos.DepartmentRepo,
	staffRepo repos.StaffRepo,
	studentRepo repos.StudentRepo,
	courseRepo repos.CourseRepo,
	enrollmentRepo repos.EnrollmentRepo,
) BootstrapService {
	return &bootstrapService{
		db:             db,
		log:            baseLog.With("service", "BootstrapService"),
		universityRepo: universityRepo,
		facultyRepo:    facultyRepo,
		departmentRepo: departmentRepo,
		staffRepo:      staffRepo,
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

func (bs *bootstrapService) EnsureDemoData(ctx context.Context) (*BootstrapResult, error) {
	createdAny := false
	err := bs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		university, created, err := bs.ensureUniversity(ctx, tx)
		if err != nil {
			return err
		}
		createdAny = createdAny || created

		faculty, created, err := bs.ensureFaculty(ctx, tx, "Faculty of Science", university.ID)
		if err != nil {
			return err
		}
		createdAny = createdAny || created

		department, created, err := bs.ensureDepartment(ctx, tx, "Computer Science", faculty.ID)
		if err != nil {
			return err
		}
		createdAny = createdAny || created

		if _, created, err = bs.ensureStaff(ctx, tx, "admin@university.edu", "System Administrator", grading.RoleAdmin, "admin123", nil); err != nil {
			return err
		}
		createdAny = createdAny || created
		if _, created, err = bs.ensureStaff(ctx, tx, "hod@university.edu", "Head of Department", grading.RoleHOD, "hod12345", &department.ID); err != nil {
			return err
		}
		createdAny = createdAny || created
		lecturer, created, err := bs.ensureStaff(ctx, tx, "lecturer@university.edu", "Course Lecturer", grading.RoleLecturer, "lecturer123", &department.ID)
		if err != nil {
			return err
		}
		createdAny = createdAny || created
		advisor, created, err := bs.ensureStaff(ctx, tx, "advisor@university.edu", "Course Advisor", grading.RoleCourseAdvisor, "advisor123", &department.ID)
		if err != nil {
			return err
		}
		createdAny = createdAny || created

		course, created, err := bs.ensureCourse(ctx, tx, department.ID, lecturer.ID)
		if err != nil {
			return err
		}
		createdAny = createdAny || created

		for idx := 1; idx <= 5; idx++ {
			student, created, err := bs.ensureStudent(ctx, tx, idx, department.ID, advisor.ID)
			if err != nil {
				return err
			}
			createdAny = createdAny || created

			_, enrolled, err := bs.enrollmentRepo.FindOrCreate(ctx, tx, student.ID, course.ID, "2025/2026", "FIRST")
			if err != nil {
				return err
			}
			createdAny = createdAny || enrolled
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if createdAny {
		bs.log.Info("Demo data bootstrapped")
	}
	return &BootstrapResult{Bootstrapped: createdAny, Message: "Demo data ready"}, nil
}

func (bs *bootstrapService) ensureUniversity(ctx context.Context, tx *gorm.DB) (*types.University, bool, error) {
	university, err := bs.universityRepo.GetByName(ctx, tx, "Future State University")
	if err == nil {
		return university, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	university = &types.University{
		Name:            "Future State University",
		Location:        "Lagos",
		EstablishedYear: 1992,
	}
	if err := bs.universityRepo.Create(ctx, tx, university); err != nil {
		return nil, false, err
	}
	return university, true, nil
}

func (bs *bootstrapService) ensureFaculty(ctx context.Context, tx *gorm.DB, name string, universityID uuid.UUID) (*types.Faculty, bool, error) {
	faculty, err := bs.facultyRepo.GetByNameAndUniversity(ctx, tx, name, universityID)
	if err == nil {
		return faculty, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	faculty = &types.Faculty{Name: name, UniversityID: universityID}
	if err := bs.facultyRepo.Create(ctx, tx, faculty); err != nil {
		return nil, false, err
	}
	return faculty, true, nil
}

func (bs *bootstrapService) ensureDepartment(ctx context.Context, tx *gorm.DB, name string, facultyID uuid.UUID) (*types.Department, bool, error) {
	department, err := bs.departmentRepo.GetByNameAndFaculty(ctx, tx, name, facultyID)
	if err == nil {
		return department, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	department = &types.Department{Name: name, FacultyID: facultyID}
	if err := bs.departmentRepo.Create(ctx, tx, department); err != nil {
		return nil, false, err
	}
	return department, true, nil
}

func (bs *bootstrapService) ensureStaff(ctx context.Context, tx *gorm.DB, email, fullName, role, password string, departmentID *uuid.UUID) (*types.Staff, bool, error) {
	staff, err := bs.staffRepo.GetByEmail(ctx, tx, email)
	if err == nil {
		return staff, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, false, err
	}
	staff = &types.Staff{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		DepartmentID: departmentID,
	}
	if err := bs.staffRepo.Create(ctx, tx, staff); err != nil {
		return nil, false, err
	}
	return staff, true, nil
}

func (bs *bootstrapService) ensureCourse(ctx context.Context, tx *gorm.DB, departmentID, lecturerID uuid.UUID) (*types.Course, bool, error) {
	course, err := bs.courseRepo.GetByCode(ctx, tx, "CSC401")
	if err == nil {
		return course, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	course = &types.Course{
		CourseCode:   "CSC401",
		CourseTitle:  "Advanced Data Analytics",
		CreditUnits:  3,
		Semester:     "FIRST",
		DepartmentID: departmentID,
		LecturerID:   &lecturerID,
	}
	if err := bs.courseRepo.Create(ctx, tx, course); err != nil {
		return nil, false, err
	}
	return course, true, nil
}

func (bs *bootstrapService) ensureStudent(ctx context.Context, tx *gorm.DB, idx int, departmentID, advisorID uuid.UUID) (*types.Student, bool, error) {
	matricNo := fmt.Sprintf("CSC/2022/10%d", idx)
	student, err := bs.studentRepo.GetByMatricNo(ctx, tx, matricNo)
	if err == nil {
		return student, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	hash, err := utils.HashPassword("student123")
	if err != nil {
		return nil, false, err
	}
	gender := "F"
	if idx%2 == 1 {
		gender = "M"
	}
	student = &types.Student{
		MatricNo:     matricNo,
		FullName:     fmt.Sprintf("Student %d", idx),
		Gender:       gender,
		Level:        400,
		PasswordHash: hash,
		DepartmentID: departmentID,
		AdvisorID:    &advisorID,
	}
	if err := bs.studentRepo.Create(ctx, tx, student); err != nil {
		return nil, false, err
	}
	return student, true, nil
}
