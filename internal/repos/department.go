package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tekerra/acadlens-backend/internal/logger"
	"github.com/Tekerra/acadlens-backend/internal/types"
)

type DepartmentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, department *types.Department) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Department, error)
	GetByNameAndFaculty(ctx context.Context, tx *gorm.DB, name string, facultyID uuid.UUID) (*types.Department, error)
	ListByFaculty(ctx context.Context, tx *gorm.DB, facultyID uuid.UUID) ([]*types.Department, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type departmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDepartmentRepo(db *gorm.DB, baseLog *logger.Logger) DepartmentRepo {
	return &departmentRepo{db: db, log: baseLog.With("repo", "DepartmentRepo")}
}

func (dr *departmentRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return dr.db
}

func (dr *departmentRepo) Create(ctx context.Context, tx *gorm.DB, department *types.Department) error {
	if department.ID == uuid.Nil {
		department.ID = uuid.New()
	}
	return dr.handle(tx).WithContext(ctx).Create(department).Error
}

func (dr *departmentRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Department, error) {
	var result types.Department
	if err := dr.handle(tx).WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (dr *departmentRepo) GetByNameAndFaculty(ctx context.Context, tx *gorm.DB, name string, facultyID uuid.UUID) (*types.Department, error) {
	var result types.Department
	if err := dr.handle(tx).WithContext(ctx).
		Where("name = ? AND faculty_id = ?", name, facultyID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (dr *departmentRepo) ListByFaculty(ctx context.Context, tx *gorm.DB, facultyID uuid.UUID) ([]*types.Department, error) {
	var results []*types.Department
	if err := dr.handle(tx).WithContext(ctx).
		Where("faculty_id = ?", facultyID).
		Order("name asc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (dr *departmentRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	var count int64
	if err := dr.handle(tx).WithContext(ctx).
		Model(&types.Department{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
