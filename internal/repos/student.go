package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tekerra/acadlens-backend/internal/logger"
	"github.com/Tekerra/acadlens-backend/internal/types"
)

type StudentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, student *types.Student) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Student, error)
	GetByMatricNo(ctx context.Context, tx *gorm.DB, matricNo string) (*types.Student, error)
	ListByAdvisor(ctx context.Context, tx *gorm.DB, advisorID uuid.UUID) ([]*types.Student, error)
	ListAtRiskByAdvisor(ctx context.Context, tx *gorm.DB, advisorID uuid.UUID) ([]*types.Student, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type studentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStudentRepo(db *gorm.DB, baseLog *logger.Logger) StudentRepo {
	return &studentRepo{db: db, log: baseLog.With("repo", "StudentRepo")}
}

func (sr *studentRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return sr.db
}

func (sr *studentRepo) Create(ctx context.Context, tx *gorm.DB, student *types.Student) error {
	if student.ID == uuid.Nil {
		student.ID = uuid.New()
	}
	return sr.handle(tx).WithContext(ctx).Create(student).Error
}

func (sr *studentRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Student, error) {
	var result types.Student
	if err := sr.handle(tx).WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (sr *studentRepo) GetByMatricNo(ctx context.Context, tx *gorm.DB, matricNo string) (*types.Student, error) {
	var result types.Student
	if err := sr.handle(tx).WithContext(ctx).
		Where("matric_no = ?", matricNo).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (sr *studentRepo) ListByAdvisor(ctx context.Context, tx *gorm.DB, advisorID uuid.UUID) ([]*types.Student, error) {
	var results []*types.Student
	if err := sr.handle(tx).WithContext(ctx).
		Where("advisor_id = ?", advisorID).
		Order("matric_no asc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// ListAtRiskByAdvisor returns advisees with at least one HIGH or MEDIUM
// analytics result.
func (sr *studentRepo) ListAtRiskByAdvisor(ctx context.Context, tx *gorm.DB, advisorID uuid.UUID) ([]*types.Student, error) {
	var results []*types.Student
	if err := sr.handle(tx).WithContext(ctx).
		Distinct("students.*").
		Joins("JOIN enrollments ON enrollments.student_id = students.id").
		Joins("JOIN analytics_results ON analytics_results.enrollment_id = enrollments.id").
		Where("students.advisor_id = ? AND analytics_results.risk_level IN ?", advisorID, []string{"HIGH", "MEDIUM"}).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *studentRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	var count int64
	if err := sr.handle(tx).WithContext(ctx).
		Model(&types.Student{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
