package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tekerra/acadlens-backend/internal/logger"
	"github.com/Tekerra/acadlens-backend/internal/types"
)

type StaffRepo interface {
	Create(ctx context.Context, tx *gorm.DB, staff *types.Staff) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Staff, error)
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.Staff, error)
	ListByDepartmentAndRole(ctx context.Context, tx *gorm.DB, departmentID uuid.UUID, role string) ([]*types.Staff, error)
}

type staffRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStaffRepo(db *gorm.DB, baseLog *logger.Logger) StaffRepo {
	return &staffRepo{db: db, log: baseLog.With("repo", "StaffRepo")}
}

func (sr *staffRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return sr.db
}

func (sr *staffRepo) Create(ctx context.Context, tx *gorm.DB, staff *types.Staff) error {
	if staff.ID == uuid.Nil {
		staff.ID = uuid.New()
	}
	return sr.handle(tx).WithContext(ctx).Create(staff).Error
}

func (sr *staffRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Staff, error) {
	var result types.Staff
	if err := sr.handle(tx).WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (sr *staffRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.Staff, error) {
	var result types.Staff
	if err := sr.handle(tx).WithContext(ctx).
		Where("email = ?", email).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (sr *staffRepo) ListByDepartmentAndRole(ctx context.Context, tx *gorm.DB, departmentID uuid.UUID, role string) ([]*types.Staff, error) {
	var results []*types.Staff
	if err := sr.handle(tx).WithContext(ctx).
		Where("department_id = ? AND role = ?", departmentID, role).
		Order("full_name asc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
