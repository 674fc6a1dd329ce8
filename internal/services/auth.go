package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tekerra/acadlens-backend/internal/apierr"
	"github.com/Tekerra/acadlens-backend/internal/grading"
	"github.com/Tekerra/acadlens-backend/internal/logger"
	"github.com/Tekerra/acadlens-backend/internal/normalization"
	"github.com/Tekerra/acadlens-backend/internal/repos"
	"github.com/Tekerra/acadlens-backend/internal/requestdata"
	"github.com/Tekerra/acadlens-backend/internal/types"
	"github.com/Tekerra/acadlens-backend/internal/utils"
)

type JWTClaims struct {
	jwt.RegisteredClaims
	Role         string     `json:"role"`
	UserType     string     `json:"user_type"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
	UniversityID uuid.UUID  `json:"university_id"`
}

type LoginInput struct {
	Identifier   string    `json:"identifier"`
	Password     string    `json:"password"`
	UniversityID uuid.UUID `json:"university_id"`
}

type LoginUser struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	UniversityID   uuid.UUID `json:"university_id"`
	UniversityName string    `json:"university_name"`
}

type LoginResult struct {
	AccessToken string    `json:"access_token"`
	User        LoginUser `json:"user"`
}

type RegisterStudentInput struct {
	MatricNo     string     `json:"matric_no"`
	FullName     string     `json:"full_name"`
	Gender       string     `json:"gender"`
	Level        int        `json:"level"`
	DepartmentID uuid.UUID  `json:"department_id"`
	AdvisorID    *uuid.UUID `json:"advisor_id,omitempty"`
	Password     string     `json:"password"`
}

// Profile is the "who am I" view for the authenticated principal.
type Profile struct {
	ID           uuid.UUID  `json:"id"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email,omitempty"`
	MatricNo     string     `json:"matric_no,omitempty"`
	Role         string     `json:"role"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
	UniversityID uuid.UUID  `json:"university_id"`
	UserType     string     `json:"user_type"`
}

// AuthService resolves credentials against both principal tables:
// staff log in by email, students by matric number, and the token is
// scoped to the university the caller selected at login.
type AuthService interface {
	Login(ctx context.Context, input *LoginInput) (*LoginResult, error)
	RegisterStudent(ctx context.Context, input *RegisterStudentInput) (*types.Student, error)
	Profile(ctx context.Context, rd *requestdata.RequestData) (*Profile, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type authService struct {
	db             *gorm.DB
	log            *logger.Logger
	staffRepo      repos.StaffRepo
	studentRepo    repos.StudentRepo
	universityRepo repos.UniversityRepo
	facultyRepo    repos.FacultyRepo
	departmentRepo repos.DepartmentRepo
	jwtSecretKey   string
	accessTTL      time.Duration
}

func NewAuthService(
	db *gorm.DB,
	baseLog *logger.Logger,
	staffRepo repos.StaffRepo,
	studentRepo repos.StudentRepo,
	universityRepo repos.UniversityRepo,
	facultyRepo repos.FacultyRepo,
	departmentRepo repos.DepartmentRepo,
	jwtSecretKey string,
	accessTTL time.Duration,
) AuthService {
	return &authService{
		db:             db,
		log:            baseLog.With("service", "AuthService"),
		staffRepo:      staffRepo,
		studentRepo:    studentRepo,
		universityRepo: universityRepo,
		facultyRepo:    facultyRepo,
		departmentRepo: departmentRepo,
		jwtSecretKey:   jwtSecretKey,
		accessTTL:      accessTTL,
	}
}

func (as *authService) Login(ctx context.Context, input *LoginInput) (*LoginResult, error) {
	university, err := as.universityRepo.GetByID(ctx, nil, input.UniversityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("university_not_found", err)
		}
		return nil, err
	}

	staff, err := as.staffRepo.GetByEmail(ctx, nil, normalization.ParseInputString(input.Identifier))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if staff != nil && utils.CheckPassword(staff.PasswordHash, input.Password) {
		staffUniID, err := as.universityIDForDepartment(ctx, staff.DepartmentID)
		if err != nil {
			return nil, err
		}
		if staffUniID != nil && *staffUniID != university.ID {
			return nil, apierr.Forbidden("wrong_university", fmt.Errorf("staff account does not belong to the selected university"))
		}
		token, err := as.generateAccessToken(staff.ID, staff.Role, "staff", staff.DepartmentID, university.ID)
		if err != nil {
			return nil, err
		}
		return &LoginResult{
			AccessToken: token,
			User: LoginUser{
				ID:             staff.ID,
				Name:           staff.FullName,
				Role:           staff.Role,
				UniversityID:   university.ID,
				UniversityName: university.Name,
			},
		}, nil
	}

	student, err := as.studentRepo.GetByMatricNo(ctx, nil, normalization.MatricNo(input.Identifier))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if student != nil && utils.CheckPassword(student.PasswordHash, input.Password) {
		studentUniID, err := as.universityIDForDepartment(ctx, &student.DepartmentID)
		if err != nil {
			return nil, err
		}
		if studentUniID == nil || *studentUniID != university.ID {
			return nil, apierr.Forbidden("wrong_university", fmt.Errorf("student account does not belong to the selected university"))
		}
		deptID := student.DepartmentID
		token, err := as.generateAccessToken(student.ID, grading.RoleStudent, "student", &deptID, university.ID)
		if err != nil {
			return nil, err
		}
		return &LoginResult{
			AccessToken: token,
			User: LoginUser{
				ID:             student.ID,
				Name:           student.FullName,
				Role:           grading.RoleStudent,
				UniversityID:   university.ID,
				UniversityName: university.Name,
			},
		}, nil
	}

	return nil, apierr.Unauthorized("invalid_credentials", fmt.Errorf("invalid credentials"))
}

func (as *authService) RegisterStudent(ctx context.Context, input *RegisterStudentInput) (*types.Student, error) {
	matricNo := normalization.MatricNo(input.MatricNo)
	existing, err := as.studentRepo.GetByMatricNo(ctx, nil, matricNo)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apierr.Conflict("matric_no_taken", fmt.Errorf("student with matric_no=%s already exists", matricNo))
	}
	if _, err := as.departmentRepo.GetByID(ctx, nil, input.DepartmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("department_not_found", err)
		}
		return nil, err
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	student := &types.Student{
		MatricNo:     matricNo,
		FullName:     input.FullName,
		Gender:       input.Gender,
		Level:        input.Level,
		PasswordHash: hash,
		DepartmentID: input.DepartmentID,
		AdvisorID:    input.AdvisorID,
	}
	if err := as.studentRepo.Create(ctx, nil, student); err != nil {
		return nil, err
	}
	as.log.Info("Student registered", "student_id", student.ID, "matric_no", student.MatricNo)
	return student, nil
}

func (as *authService) Profile(ctx context.Context, rd *requestdata.RequestData) (*Profile, error) {
	if rd == nil {
		return nil, apierr.Unauthorized("missing_request_data", fmt.Errorf("no request data in context"))
	}
	if rd.UniversityID == nil {
		return nil, apierr.Unauthorized("missing_university", fmt.Errorf("token carries no university"))
	}
	if rd.UserType == "staff" {
		staff, err := as.staffRepo.GetByID(ctx, nil, rd.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierr.NotFound("user_not_found", err)
			}
			return nil, err
		}
		return &Profile{
			ID:           staff.ID,
			FullName:     staff.FullName,
			Email:        staff.Email,
			Role:         staff.Role,
			DepartmentID: staff.DepartmentID,
			UniversityID: *rd.UniversityID,
			UserType:     "staff",
		}, nil
	}
	student, err := as.studentRepo.GetByID(ctx, nil, rd.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("user_not_found", err)
		}
		return nil, err
	}
	deptID := student.DepartmentID
	return &Profile{
		ID:           student.ID,
		FullName:     student.FullName,
		MatricNo:     student.MatricNo,
		Role:         grading.RoleStudent,
		DepartmentID: &deptID,
		UniversityID: *rd.UniversityID,
		UserType:     "student",
	}, nil
}

// universityIDForDepartment walks department -> faculty -> university.
// A nil department (e.g. an ADMIN staff account) yields nil, meaning
// the account is not pinned to any university.
func (as *authService) universityIDForDepartment(ctx context.Context, departmentID *uuid.UUID) (*uuid.UUID, error) {
	if departmentID == nil {
		return nil, nil
	}
	department, err := as.departmentRepo.GetByID(ctx, nil, *departmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	faculty, err := as.facultyRepo.GetByID(ctx, nil, department.FacultyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	uniID := faculty.UniversityID
	return &uniID, nil
}

func (as *authService) generateAccessToken(subjectID uuid.UUID, role, userType string, departmentID *uuid.UUID, universityID uuid.UUID) (string, error) {
	claims := JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(as.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Role:         role,
		UserType:     userType,
		DepartmentID: departmentID,
		UniversityID: universityID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}

func (as *authService) ParseToken(tokenString string) (*JWTClaims, error) {
	parsedToken, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil {
		return nil, apierr.Unauthorized("invalid_token", fmt.Errorf("parse token: %w", err))
	}
	claims, ok := parsedToken.Claims.(*JWTClaims)
	if !ok || !parsedToken.Valid {
		return nil, apierr.Unauthorized("invalid_token", fmt.Errorf("invalid or expired token"))
	}
	return claims, nil
}
