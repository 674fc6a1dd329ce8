package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tekerra/acadlens-backend/internal/logger"
	"github.com/Tekerra/acadlens-backend/internal/types"
)

type UniversityRepo interface {
	Create(ctx context.Context, tx *gorm.DB, university *types.University) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.University, error)
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.University, error)
	ListOrderedByName(ctx context.Context, tx *gorm.DB) ([]*types.University, error)
}

type universityRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUniversityRepo(db *gorm.DB, baseLog *logger.Logger) UniversityRepo {
	return &universityRepo{db: db, log: baseLog.With("repo", "UniversityRepo")}
}

func (ur *universityRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return ur.db
}

func (ur *universityRepo) Create(ctx context.Context, tx *gorm.DB, university *types.University) error {
	if university.ID == uuid.Nil {
		university.ID = uuid.New()
	}
	return ur.handle(tx).WithContext(ctx).Create(university).Error
}

func (ur *universityRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.University, error) {
	var result types.University
	if err := ur.handle(tx).WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (ur *universityRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.University, error) {
	var result types.University
	if err := ur.handle(tx).WithContext(ctx).
		Where("name = ?", name).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (ur *universityRepo) ListOrderedByName(ctx context.Context, tx *gorm.DB) ([]*types.University, error) {
	var results []*types.University
	if err := ur.handle(tx).WithContext(ctx).
		Order("name asc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
