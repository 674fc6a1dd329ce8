package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tekerra/acadlens-backend/internal/logger"
	"github.com/Tekerra/acadlens-backend/internal/types"
)

type FacultyRepo interface {
	Create(ctx context.Context, tx *gorm.DB, faculty *types.Faculty) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Faculty, error)
	GetByNameAndUniversity(ctx context.Context, tx *gorm.DB, name string, universityID uuid.UUID) (*types.Faculty, error)
	ListByUniversity(ctx context.Context, tx *gorm.DB, universityID uuid.UUID) ([]*types.Faculty, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type facultyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFacultyRepo(db *gorm.DB, baseLog *logger.Logger) FacultyRepo {
	return &facultyRepo{db: db, log: baseLog.With("repo", "FacultyRepo")}
}

func (fr *facultyRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return fr.db
}

func (fr *facultyRepo) Create(ctx context.Context, tx *gorm.DB, faculty *types.Faculty) error {
	if faculty.ID == uuid.Nil {
		faculty.ID = uuid.New()
	}
	return fr.handle(tx).WithContext(ctx).Create(faculty).Error
}

func (fr *facultyRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Faculty, error) {
	var result types.Faculty
	if err := fr.handle(tx).WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (fr *facultyRepo) GetByNameAndUniversity(ctx context.Context, tx *gorm.DB, name string, universityID uuid.UUID) (*types.Faculty, error) {
	var result types.Faculty
	if err := fr.handle(tx).WithContext(ctx).
		Where("name = ? AND university_id = ?", name, universityID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (fr *facultyRepo) ListByUniversity(ctx context.Context, tx *gorm.DB, universityID uuid.UUID) ([]*types.Faculty, error) {
	var results []*types.Faculty
	if err := fr.handle(tx).WithContext(ctx).
		Where("university_id = ?", universityID).
		Order("name asc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (fr *facultyRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	var count int64
	if err := fr.handle(tx).WithContext(ctx).
		Model(&types.Faculty{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
