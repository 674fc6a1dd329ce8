package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Tekerra/acadlens-backend/internal/apierr"
	"github.com/Tekerra/acadlens-backend/internal/grading"
	"github.com/Tekerra/acadlens-backend/internal/types"
	"github.com/Tekerra/acadlens-backend/internal/utils"
)

func (env *testEnv) authService() AuthService {
	return NewAuthService(
		env.db,
		env.log,
		env.repos.staff,
		env.repos.student,
		env.repos.university,
		env.repos.faculty,
		env.repos.department,
		"test-secret",
		time.Hour,
	)
}

func (env *testEnv) seedStaffWithPassword(t *testing.T, email, password, role string) *types.Staff {
	t.Helper()
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	deptID := env.department.ID
	staff := &types.Staff{
		ID:           uuid.New(),
		FullName:     "Staff " + email,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		DepartmentID: &deptID,
	}
	if err := env.db.Create(staff).Error; err != nil {
		t.Fatalf("create staff: %v", err)
	}
	return staff
}

func (env *testEnv) seedStudentWithPassword(t *testing.T, matricNo, password string) *types.Student {
	t.Helper()
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	student := &types.Student{
		ID:           uuid.New(),
		MatricNo:     matricNo,
		FullName:     "Student " + matricNo,
		Gender:       "F",
		Level:        300,
		PasswordHash: hash,
		DepartmentID: env.department.ID,
	}
	if err := env.db.Create(student).Error; err != nil {
		t.Fatalf("create student: %v", err)
	}
	return student
}

func TestLoginStaffByEmail(t *testing.T) {
	env := newTestEnv(t)
	staff := env.seedStaffWithPassword(t, "lecturer@test.edu", "lecturer123", grading.RoleLecturer)
	svc := env.authService()

	result, err := svc.Login(context.Background(), &LoginInput{
		Identifier:   "  Lecturer@Test.edu ",
		Password:     "lecturer123",
		UniversityID: env.university.ID,
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.User.ID != staff.ID || result.User.Role != grading.RoleLecturer {
		t.Fatalf("unexpected user: %+v", result.User)
	}

	claims, err := svc.ParseToken(result.AccessToken)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Subject != staff.ID.String() || claims.UserType != "staff" || claims.UniversityID != env.university.ID {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.DepartmentID == nil || *claims.DepartmentID != env.department.ID {
		t.Fatalf("expected department in claims, got %+v", claims.DepartmentID)
	}
}

func TestLoginStudentByMatricNo(t *testing.T) {
	env := newTestEnv(t)
	student := env.seedStudentWithPassword(t, "CSC/2022/110", "student123")
	svc := env.authService()

	result, err := svc.Login(context.Background(), &LoginInput{
		Identifier:   "csc/2022/110",
		Password:     "student123",
		UniversityID: env.university.ID,
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.User.ID != student.ID || result.User.Role != grading.RoleStudent {
		t.Fatalf("unexpected user: %+v", result.User)
	}

	claims, err := svc.ParseToken(result.AccessToken)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserType != "student" || claims.Role != grading.RoleStudent {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLoginWrongUniversity(t *testing.T) {
	env := newTestEnv(t)
	env.seedStudentWithPassword(t, "CSC/2022/111", "student123")

	other := &types.University{ID: uuid.New(), Name: "Other University", Location: "Abuja", EstablishedYear: 2001}
	if err := env.db.Create(other).Error; err != nil {
		t.Fatalf("create university: %v", err)
	}

	_, err := env.authService().Login(context.Background(), &LoginInput{
		Identifier:   "CSC/2022/111",
		Password:     "student123",
		UniversityID: other.ID,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	apiErr := apierr.From(err)
	if apiErr.Status != 403 || apiErr.Code != "wrong_university" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.seedStudentWithPassword(t, "CSC/2022/112", "student123")

	_, err := env.authService().Login(context.Background(), &LoginInput{
		Identifier:   "CSC/2022/112",
		Password:     "wrong",
		UniversityID: env.university.ID,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	apiErr := apierr.From(err)
	if apiErr.Status != 401 || apiErr.Code != "invalid_credentials" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}

func TestLoginUnknownUniversity(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.authService().Login(context.Background(), &LoginInput{
		Identifier:   "anyone@test.edu",
		Password:     "whatever",
		UniversityID: uuid.New(),
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if apiErr := apierr.From(err); apiErr.Status != 404 {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.authService().ParseToken("not.a.token")
	if err == nil {
		t.Fatal("expected error")
	}
	if apiErr := apierr.From(err); apiErr.Status != 401 || apiErr.Code != "invalid_token" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}

func TestRegisterStudentConflict(t *testing.T) {
	env := newTestEnv(t)
	env.seedStudentWithPassword(t, "CSC/2022/113", "student123")
	svc := env.authService()

	_, err := svc.RegisterStudent(context.Background(), &RegisterStudentInput{
		MatricNo:     "csc/2022/113",
		FullName:     "Duplicate",
		Gender:       "M",
		Level:        200,
		DepartmentID: env.department.ID,
		Password:     "pass12345",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if apiErr := apierr.From(err); apiErr.Status != 409 || apiErr.Code != "matric_no_taken" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}

func TestRegisterStudentNormalizesMatric(t *testing.T) {
	env := newTestEnv(t)
	svc := env.authService()

	student, err := svc.RegisterStudent(context.Background(), &RegisterStudentInput{
		MatricNo:     " csc/2022/114 ",
		FullName:     "New Student",
		Gender:       "F",
		Level:        100,
		DepartmentID: env.department.ID,
		Password:     "pass12345",
	})
	if err != nil {
		t.Fatalf("RegisterStudent: %v", err)
	}
	if student.MatricNo != "CSC/2022/114" {
		t.Fatalf("expected normalized matric, got %q", student.MatricNo)
	}
	if student.ID == uuid.Nil {
		t.Fatal("expected assigned id")
	}
}
