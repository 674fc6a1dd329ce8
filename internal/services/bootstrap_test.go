package services

import (
	"context"
	"testing"

	"github.com/Tekerra/acadlens-backend/internal/types"
)

func (env *testEnv) bootstrapService() BootstrapService {
	return NewBootstrapService(
		env.db,
		env.log,
		env.repos.university,
		env.repos.faculty,
		env.repos.department,
		env.repos.staff,
		env.repos.student,
		env.repos.course,
		env.repos.enrollment,
	)
}

func TestEnsureDemoDataIdempotent(t *testing.T) {
	env := newTestEnv(t)
	svc := env.bootstrapService()

	first, err := svc.EnsureDemoData(context.Background())
	if err != nil {
		t.Fatalf("EnsureDemoData: %v", err)
	}
	if !first.Bootstrapped {
		t.Fatal("expected first run to create demo data")
	}

	second, err := svc.EnsureDemoData(context.Background())
	if err != nil {
		t.Fatalf("EnsureDemoData rerun: %v", err)
	}
	if second.Bootstrapped {
		t.Fatal("expected rerun to create nothing")
	}

	var students int64
	if err := env.db.Model(&types.Student{}).Where("matric_no LIKE ?", "CSC/2022/1%").Count(&students).Error; err != nil {
		t.Fatalf("count students: %v", err)
	}
	if students != 5 {
		t.Fatalf("expected 5 demo students, got %d", students)
	}

	var enrollments int64
	if err := env.db.Model(&types.Enrollment{}).Count(&enrollments).Error; err != nil {
		t.Fatalf("count enrollments: %v", err)
	}
	if enrollments != 5 {
		t.Fatalf("expected 5 demo enrollments, got %d", enrollments)
	}
}
